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

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/revtag/pkg/revision"
)

// Test data structures
type testBuild struct {
	Name     string       `json:"name" yaml:"name" toml:"name"`
	Revision revision.Tag `json:"revision" yaml:"revision" toml:"revision"`
}

// testBuildList wraps builds because a TOML document must be a table.
type testBuildList struct {
	Builds []testBuild `json:"builds" yaml:"builds" toml:"builds"`
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected Format
	}{
		{"json lowercase", "builds.json", FormatJSON},
		{"json uppercase", "BUILDS.JSON", FormatJSON},
		{"yaml extension", "builds.yaml", FormatYAML},
		{"yml extension", "builds.yml", FormatYAML},
		{"table extension", "output.table", FormatTable},
		{"txt extension", "output.txt", FormatTable},
		{"toml extension", "builds.toml", FormatTOML},
		{"unknown extension defaults to json", "file.unknown", FormatJSON},
		{"path with directories", "/path/to/builds.yaml", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatFromPath(tt.path)
			if result != tt.expected {
				t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestNewReader(t *testing.T) {
	t.Run("table format returns error", func(t *testing.T) {
		reader, err := NewReader(FormatTable, strings.NewReader("data"))
		if err == nil {
			t.Fatal("Expected error for table format")
		}
		if reader != nil {
			t.Error("Expected nil reader for unsupported format")
		}
	})

	t.Run("unknown format returns error", func(t *testing.T) {
		_, err := NewReader(Format("invalid"), strings.NewReader("data"))
		if err == nil || !strings.Contains(err.Error(), "unknown format") {
			t.Errorf("Expected unknown format error, got: %v", err)
		}
	})
}

func TestReader_DeserializeRevisions(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"json", FormatJSON, `[{"name":"nightly","revision":"v0.9.8-760-gabcd1234"},{"name":"release","revision":"v1.0.0"}]`},
		{"yaml", FormatYAML, "- name: nightly\n  revision: v0.9.8-760-gabcd1234\n- name: release\n  revision: v1.0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}

			var result []testBuild
			if err := reader.Deserialize(&result); err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}
			if len(result) != 2 {
				t.Fatalf("Expected 2 items, got %d", len(result))
			}
			if !result[0].Revision.Equal(revision.MustParse("v0.9.8-760-gabcd1234")) {
				t.Errorf("Unexpected first revision: %v", result[0].Revision)
			}
			if result[1].Revision.String() != "v1.0.0-0" {
				t.Errorf("Unexpected second revision: %v", result[1].Revision)
			}
		})
	}
}

func TestReader_DeserializeTOML(t *testing.T) {
	input := "[[builds]]\nname = \"nightly\"\nrevision = \"v0.9.8-760-gabcd1234\"\n"
	reader, err := NewReader(FormatTOML, strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	var result testBuildList
	if err := reader.Deserialize(&result); err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if len(result.Builds) != 1 || result.Builds[0].Name != "nightly" {
		t.Fatalf("Unexpected data: %+v", result)
	}
	if result.Builds[0].Revision.Distance != 760 {
		t.Errorf("Unexpected revision: %v", result.Builds[0].Revision)
	}
}

func TestReader_DeserializeInvalidRevision(t *testing.T) {
	reader, err := NewReader(FormatYAML, strings.NewReader("- name: bad\n  revision: v1.2\n"))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	var result []testBuild
	if err := reader.Deserialize(&result); err == nil {
		t.Fatal("Expected error for invalid revision")
	}
}

func TestReader_DeserializeNilChecks(t *testing.T) {
	t.Run("nil reader", func(t *testing.T) {
		var reader *Reader
		var result testBuild
		err := reader.Deserialize(&result)
		if err == nil || !strings.Contains(err.Error(), "reader is nil") {
			t.Errorf("Expected nil reader error, got: %v", err)
		}
	})

	t.Run("nil input", func(t *testing.T) {
		reader := &Reader{format: FormatJSON}
		var result testBuild
		err := reader.Deserialize(&result)
		if err == nil || !strings.Contains(err.Error(), "input source is nil") {
			t.Errorf("Expected nil input error, got: %v", err)
		}
	})

	t.Run("close nil reader", func(t *testing.T) {
		var reader *Reader
		if err := reader.Close(); err != nil {
			t.Errorf("Close on nil reader: %v", err)
		}
	})
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "revisions.yaml")
	if err := os.WriteFile(path, []byte("- v1.0.0\n- v0.9.8-760-gabcd1234\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tags, err := FromFile[[]revision.Tag](path)
	if err != nil {
		t.Fatalf("FromFile failed: %v", err)
	}
	if len(*tags) != 2 {
		t.Fatalf("Expected 2 revisions, got %d", len(*tags))
	}
	if (*tags)[1].Distance != 760 {
		t.Errorf("Unexpected revision: %v", (*tags)[1])
	}

	if _, err := FromFile[[]revision.Tag](filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	tablePath := filepath.Join(dir, "revisions.txt")
	if err := os.WriteFile(tablePath, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile[[]revision.Tag](tablePath); err == nil {
		t.Error("Expected error for table format")
	}
}
