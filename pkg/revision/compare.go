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
	"cmp"
	"slices"
)

// Key packs major, minor, patch and distance into one integer, most
// significant first. Comparing keys numerically orders tags the same way
// Compare does.
func (t Tag) Key() uint64 {
	return uint64(t.Major)<<48 | uint64(t.Minor)<<32 | uint64(t.Patch)<<16 | uint64(t.Distance)
}

// Compare returns -1 if a < b, 0 if a and b have the same position, and 1 if
// a > b, ordering lexicographically by major, minor, patch and distance.
//
// The commit is not part of the ordering. Two tags that differ only in their
// commit compare as 0 here but are not Equal.
func Compare(a, b Tag) int {
	return cmp.Compare(a.Key(), b.Key())
}

// Equal reports whether a and b have identical fields, including the commit.
// A tag with a commit never equals one without. Two absent commits are equal
// regardless of any stale Value.
func Equal(a, b Tag) bool {
	if a.Key() != b.Key() || a.Commit.Valid != b.Commit.Valid {
		return false
	}
	return !a.Commit.Valid || a.Commit.Value == b.Commit.Value
}

// Compare compares t to other; see Compare.
func (t Tag) Compare(other Tag) int {
	return Compare(t, other)
}

// Less reports whether t orders before other. Commit is ignored.
func (t Tag) Less(other Tag) bool {
	return Compare(t, other) < 0
}

// Equal reports whether t and other are identical including the commit.
func (t Tag) Equal(other Tag) bool {
	return Equal(t, other)
}

// Sort sorts tags in ascending order. Tags that compare equal keep their
// relative order.
func Sort(tags []Tag) {
	slices.SortStableFunc(tags, Compare)
}

// Max returns the greatest tag and true, or the zero Tag and false when tags
// is empty. Among tags that compare equal the first one wins.
func Max(tags []Tag) (Tag, bool) {
	if len(tags) == 0 {
		return Tag{}, false
	}
	best := tags[0]
	for _, t := range tags[1:] {
		if Compare(t, best) > 0 {
			best = t
		}
	}
	return best, true
}
