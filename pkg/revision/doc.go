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

// Package revision parses, orders, formats and binary-encodes revision
// identifiers produced by `git describe --tags`.
//
// # Overview
//
// A revision such as "v0.9.8-760-gabcd1234" names the nearest tag (0.9.8),
// the number of commits since that tag (760) and the abbreviated commit
// (abcd1234). Parse turns it into a Tag:
//
//	t, err := revision.Parse("v0.9.8-760-gabcd1234")
//	// t == Tag{Major: 0, Minor: 9, Patch: 8, Distance: 760, Commit: SomeCommit(0xabcd1234)}
//
// Accepted forms:
//
//	v1.2.3              exact tag
//	v1.2.3-4            distance only
//	v1.2.3-gabc1234     commit only
//	v1.2.3-4-gabc1234   distance and commit
//
// The leading "v" and trailing whitespace are optional. Commit hex is
// case-insensitive and only its first eight digits are used.
//
// # Ordering and Equality
//
// Compare orders by (major, minor, patch, distance) and ignores the commit.
// Equal includes the commit. This means two tags can compare as 0 yet not be
// Equal:
//
//	a := revision.MustParse("v1.0.0-3-gaaaa")
//	b := revision.MustParse("v1.0.0-3-gbbbb")
//	revision.Compare(a, b) // 0
//	revision.Equal(a, b)   // false
//
// # Binary Record
//
// Encode and Decode convert a Tag to and from a fixed 16-byte little-endian
// record:
//
//	offset  width  field
//	0       2      major
//	2       2      minor
//	4       2      patch
//	6       2      distance
//	8       4      commit (0 when absent)
//	12      4      presence flag (1 when a commit is present)
//
// Decode accepts any 16 bytes and treats any nonzero presence word as
// present. Encode always writes 0 or 1, so Decode(Encode(t)) is Equal to t.
//
// # Formatting
//
// String returns the canonical form "v1.2.3-4" or "v1.2.3-4-gabc1234".
// Distance is always written and the commit is unpadded lowercase hex, so
// the canonical form may differ from the parsed input.
//
// All functions in this package are pure and safe for concurrent use.
package revision
