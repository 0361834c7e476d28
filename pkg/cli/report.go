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


package cli

import (
	"encoding/hex"
	"strconv"

	"github.com/NVIDIA/revtag/pkg/header"
	"github.com/NVIDIA/revtag/pkg/revision"
)

// Item describes one revision in every report.
type Item struct {
	Input    string       `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty"`
	Revision revision.Tag `json:"revision" yaml:"revision" toml:"revision"`
	Major    uint16       `json:"major" yaml:"major" toml:"major"`
	Minor    uint16       `json:"minor" yaml:"minor" toml:"minor"`
	Patch    uint16       `json:"patch" yaml:"patch" toml:"patch"`
	Distance uint16       `json:"distance" yaml:"distance" toml:"distance"`
	Commit   string       `json:"commit,omitempty" yaml:"commit,omitempty" toml:"commit,omitempty"`
	Exact    bool         `json:"exact" yaml:"exact" toml:"exact"`
	Record   string       `json:"record" yaml:"record" toml:"record"`
}

func newItem(input string, t revision.Tag) Item {
	it := Item{
		Input:    input,
		Revision: t,
		Major:    t.Major,
		Minor:    t.Minor,
		Patch:    t.Patch,
		Distance: t.Distance,
		Exact:    t.IsExact(),
		Record:   encodeHex(t),
	}
	if t.Commit.Valid {
		it.Commit = strconv.FormatUint(uint64(t.Commit.Value), 16)
	}
	return it
}

func encodeHex(t revision.Tag) string {
	b := revision.Encode(t)
	return hex.EncodeToString(b[:])
}

// RevisionReport is written by parse and decode for a single revision.
type RevisionReport struct {
	header.Header `json:",inline" yaml:",inline"`
	Item          `json:",inline" yaml:",inline"`
}

// RevisionListReport is written by parse with several inputs and by sort.
type RevisionListReport struct {
	header.Header `json:",inline" yaml:",inline"`
	Items         []Item `json:"items" yaml:"items" toml:"items"`
}

// ComparisonReport is written by compare.
type ComparisonReport struct {
	header.Header `json:",inline" yaml:",inline"`
	A             Item `json:"a" yaml:"a" toml:"a"`
	B             Item `json:"b" yaml:"b" toml:"b"`
	// Order is -1, 0 or 1 as in revision.Compare; commits are ignored.
	Order int    `json:"order" yaml:"order" toml:"order"`
	Which string `json:"which" yaml:"which" toml:"which"`
	// Equal includes the commit.
	Equal bool `json:"equal" yaml:"equal" toml:"equal"`
}

// DescribeItem is one described repository.
type DescribeItem struct {
	Dir  string `json:"dir" yaml:"dir" toml:"dir"`
	Item `json:",inline" yaml:",inline"`
}

// DescribeReport is written by describe.
type DescribeReport struct {
	header.Header `json:",inline" yaml:",inline"`
	Items         []DescribeItem `json:"items" yaml:"items" toml:"items"`
}

// ImageItem is one parsed image reference.
type ImageItem struct {
	Reference  string `json:"reference" yaml:"reference" toml:"reference"`
	Registry   string `json:"registry" yaml:"registry" toml:"registry"`
	Repository string `json:"repository" yaml:"repository" toml:"repository"`
	Item       `json:",inline" yaml:",inline"`
}

// ImageReport is written by image.
type ImageReport struct {
	header.Header `json:",inline" yaml:",inline"`
	Items         []ImageItem `json:"items" yaml:"items" toml:"items"`
}

func newHeader(kind header.Kind) header.Header {
	var h header.Header
	h.Init(kind, header.APIVersion, version)
	return h
}

func whichNewer(order int) string {
	switch {
	case order < 0:
		return "b"
	case order > 0:
		return "a"
	default:
		return "same"
	}
}
