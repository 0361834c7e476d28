// Package errors provides structured error types for better observability
// and programmatic error handling across revtag.
//
// Parse failures and acquisition failures use separate codes so callers can
// tell a malformed revision string apart from a git invocation that never
// produced one.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeMalformedInteger,
//	    "failed to parse distance",
//	    cause,
//	    map[string]any{
//	        "field": "distance",
//	        "input": raw,
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeToolInvocation) {
//	    // git was not available
//	}
package errors
