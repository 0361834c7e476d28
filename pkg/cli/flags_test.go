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
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/revtag/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    serializer.Format
		wantErr bool
	}{
		{"yaml", "yaml", serializer.FormatYAML, false},
		{"json", "json", serializer.FormatJSON, false},
		{"table", "table", serializer.FormatTable, false},
		{"upper case", "JSON", serializer.FormatJSON, false},
		{"unknown", "xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got serializer.Format
			var err error
			cmd := &cli.Command{
				Name:  "test",
				Flags: []cli.Flag{&cli.StringFlag{Name: "format"}},
				Action: func(_ context.Context, cmd *cli.Command) error {
					got, err = parseOutputFormat(cmd)
					return nil
				},
			}
			if runErr := cmd.Run(context.Background(), []string{"test", "--format", tt.format}); runErr != nil {
				t.Fatalf("run failed: %v", runErr)
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseOutputFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}
