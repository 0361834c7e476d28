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
	"encoding/binary"
	"fmt"

	rterrors "github.com/NVIDIA/revtag/pkg/errors"
)

// Size is the length of the binary record in bytes.
const Size = 16

// Record layout, little-endian.
const (
	offMajor    = 0
	offMinor    = 2
	offPatch    = 4
	offDistance = 6
	offCommit   = 8
	// The presence flag takes a whole word to keep the record word aligned.
	offHasCommit = 12
)

// Encode returns the 16-byte record for t. The commit word is zero and the
// presence word is 0 when t has no commit; otherwise the presence word is 1.
func Encode(t Tag) [Size]byte {
	var b [Size]byte
	binary.LittleEndian.PutUint16(b[offMajor:], t.Major)
	binary.LittleEndian.PutUint16(b[offMinor:], t.Minor)
	binary.LittleEndian.PutUint16(b[offPatch:], t.Patch)
	binary.LittleEndian.PutUint16(b[offDistance:], t.Distance)
	if t.Commit.Valid {
		binary.LittleEndian.PutUint32(b[offCommit:], t.Commit.Value)
		binary.LittleEndian.PutUint32(b[offHasCommit:], 1)
	}
	return b
}

// Decode returns the Tag stored in a 16-byte record. Every input decodes:
// any nonzero presence word means a commit is present, and the commit word
// is ignored when the presence word is zero.
func Decode(b [Size]byte) Tag {
	t := Tag{
		Major:    binary.LittleEndian.Uint16(b[offMajor:]),
		Minor:    binary.LittleEndian.Uint16(b[offMinor:]),
		Patch:    binary.LittleEndian.Uint16(b[offPatch:]),
		Distance: binary.LittleEndian.Uint16(b[offDistance:]),
	}
	if binary.LittleEndian.Uint32(b[offHasCommit:]) != 0 {
		t.Commit = SomeCommit(binary.LittleEndian.Uint32(b[offCommit:]))
	}
	return t
}

// DecodeSlice decodes a record held in a slice, which must be exactly Size bytes long.
func DecodeSlice(b []byte) (Tag, error) {
	if len(b) != Size {
		return Tag{}, rterrors.NewWithContext(rterrors.ErrCodeInvalidRequest,
			fmt.Sprintf("revision record must be %d bytes, got %d", Size, len(b)),
			map[string]any{"length": len(b)})
	}
	return Decode([Size]byte(b)), nil
}

// Bytes is shorthand for Encode(t).
func (t Tag) Bytes() [Size]byte {
	return Encode(t)
}
