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
	"strconv"
	"strings"
)

// Commit is an optional abbreviated commit identifier.
// Value is only meaningful when Valid is true.
type Commit struct {
	Value uint32
	Valid bool
}

// SomeCommit returns a present commit with the given value.
func SomeCommit(v uint32) Commit {
	return Commit{Value: v, Valid: true}
}

// Tag is a parsed `git describe --tags` revision: the dotted triplet of the
// nearest tag, the number of commits since that tag and, optionally, the
// abbreviated commit it was described from.
//
// Tag is an immutable value. Ordering (Compare, Less) ignores Commit while
// Equal does not; see Compare for details.
type Tag struct {
	Major    uint16
	Minor    uint16
	Patch    uint16
	Distance uint16
	Commit   Commit
}

// New creates a Tag without a commit.
func New(major, minor, patch, distance uint16) Tag {
	return Tag{
		Major:    major,
		Minor:    minor,
		Patch:    patch,
		Distance: distance,
	}
}

// WithCommit returns a copy of t with the commit set to c.
func (t Tag) WithCommit(c uint32) Tag {
	t.Commit = SomeCommit(c)
	return t
}

// WithoutCommit returns a copy of t with no commit.
func (t Tag) WithoutCommit() Tag {
	t.Commit = Commit{}
	return t
}

// IsExact returns true if t names a tag exactly: no distance and no commit.
func (t Tag) IsExact() bool {
	return t.Distance == 0 && !t.Commit.Valid
}

// String returns the canonical form v{major}.{minor}.{patch}-{distance},
// followed by -g{commit} in unpadded lowercase hex when a commit is present.
// The result is not necessarily the string t was parsed from.
func (t Tag) String() string {
	var b strings.Builder
	b.Grow(32)
	b.WriteByte('v')
	b.WriteString(strconv.FormatUint(uint64(t.Major), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(t.Minor), 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(uint64(t.Patch), 10))
	b.WriteByte('-')
	b.WriteString(strconv.FormatUint(uint64(t.Distance), 10))
	if t.Commit.Valid {
		b.WriteString("-g")
		b.WriteString(strconv.FormatUint(uint64(t.Commit.Value), 16))
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (t *Tag) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
