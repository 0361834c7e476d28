// Package describe obtains revisions from git by running `git describe --tags`.
//
// The git invocation is a Runner, so callers and tests can substitute their
// own:
//
//	d := describe.New(describe.WithDir("/src/repo"), describe.WithArgs("--match", "v*"))
//	t, err := d.Describe(ctx)
//
// Failures to run git carry code TOOL_INVOCATION and invalid UTF-8 output
// carries code ENCODING. Both are distinct from the parse error codes,
// which are passed through unchanged.
package describe
