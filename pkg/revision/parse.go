// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package revision

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	rterrors "github.com/NVIDIA/revtag/pkg/errors"
)

// Sentinel errors for use with errors.Is. Matching is by error code, so any
// parse failure of the same class matches regardless of field or input.
var (
	ErrMissingField          = rterrors.New(rterrors.ErrCodeMissingField, "missing version field")
	ErrMalformedInteger      = rterrors.New(rterrors.ErrCodeMalformedInteger, "malformed integer")
	ErrMalformedCommitPrefix = rterrors.New(rterrors.ErrCodeMalformedCommitPrefix, "invalid commit format (no 'g' prefix)")
)

// Field names reported in parse error context.
const (
	FieldMajor    = "major"
	FieldMinor    = "minor"
	FieldPatch    = "patch"
	FieldDistance = "distance"
	FieldCommit   = "commit"
)

// maxCommitDigits is the number of hex digits that fit a uint32.
const maxCommitDigits = 8

// Parse parses a `git describe --tags` revision string into a Tag.
// Supported forms: "v1.2.3", "v1.2.3-4", "v1.2.3-g1a2b3c4", "v1.2.3-4-g1a2b3c4".
// Trailing whitespace and a single leading "v" are stripped. Commit hex beyond
// the eighth digit is ignored.
//
// Errors are *errors.StructuredError values with code MISSING_FIELD,
// MALFORMED_INTEGER or MALFORMED_COMMIT_PREFIX and a "field" context key.
// No partial Tag is returned on failure.
func Parse(s string) (Tag, error) {
	input := s
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	s = strings.TrimPrefix(s, "v")

	majStr, rest, ok := strings.Cut(s, ".")
	if !ok {
		return Tag{}, missingField(FieldMajor, input)
	}
	major, err := parseDecimal(FieldMajor, majStr, input)
	if err != nil {
		return Tag{}, err
	}

	minStr, rest, ok := strings.Cut(rest, ".")
	if !ok {
		return Tag{}, missingField(FieldMinor, input)
	}
	minor, err := parseDecimal(FieldMinor, minStr, input)
	if err != nil {
		return Tag{}, err
	}

	patchStr, rest, _ := strings.Cut(rest, "-")
	patch, err := parseDecimal(FieldPatch, patchStr, input)
	if err != nil {
		return Tag{}, err
	}

	t := Tag{Major: major, Minor: minor, Patch: patch}
	if rest == "" {
		return t, nil
	}

	var commitStr string
	var hasCommit bool

	if distStr, c, ok := strings.Cut(rest, "-"); ok {
		if !strings.HasPrefix(c, "g") {
			return Tag{}, rterrors.NewWithContext(rterrors.ErrCodeMalformedCommitPrefix,
				"invalid commit format (no 'g' prefix)",
				map[string]any{"field": FieldCommit, "input": input})
		}
		if t.Distance, err = parseDecimal(FieldDistance, distStr, input); err != nil {
			return Tag{}, err
		}
		commitStr, hasCommit = c[1:], true
	} else if c, ok := strings.CutPrefix(rest, "g"); ok {
		commitStr, hasCommit = c, true
	} else if t.Distance, err = parseDecimal(FieldDistance, rest, input); err != nil {
		return Tag{}, err
	}

	if hasCommit {
		v, err := parseCommit(commitStr, input)
		if err != nil {
			return Tag{}, err
		}
		t.Commit = SomeCommit(v)
	}

	return t, nil
}

// MustParse parses a revision string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return t
}

func missingField(field, input string) error {
	return rterrors.NewWithContext(rterrors.ErrCodeMissingField,
		fmt.Sprintf("no %s version", field),
		map[string]any{"field": field, "input": input})
}

// parseDecimal accepts ASCII digits only; signs are rejected.
func parseDecimal(field, s, input string) (uint16, error) {
	if s == "" || s[0] == '+' {
		return 0, malformed(field, s, input, strconv.ErrSyntax)
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, malformed(field, s, input, err)
	}
	return uint16(n), nil
}

func parseCommit(s, input string) (uint32, error) {
	if len(s) > maxCommitDigits {
		s = s[:maxCommitDigits]
	}
	if s == "" || s[0] == '+' {
		return 0, malformed(FieldCommit, s, input, strconv.ErrSyntax)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, malformed(FieldCommit, s, input, err)
	}
	return uint32(n), nil
}

func malformed(field, value, input string, cause error) error {
	return rterrors.WrapWithContext(rterrors.ErrCodeMalformedInteger,
		fmt.Sprintf("failed to parse %s %q", field, value),
		cause,
		map[string]any{"field": field, "input": input})
}
