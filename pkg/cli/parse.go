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
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	rterrors "github.com/NVIDIA/revtag/pkg/errors"
	"github.com/NVIDIA/revtag/pkg/header"
	"github.com/NVIDIA/revtag/pkg/revision"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse revisions and show their fields and binary record.",
		ArgsUsage: "<revision>...",
		Description: `Parses each argument as a git describe revision, for example:

  revtag parse v0.9.8-760-gabcd1234 v1.0.0

A single revision produces a Revision report, several produce a RevisionList.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return rterrors.New(rterrors.ErrCodeInvalidRequest, "at least one revision is required")
			}

			items := make([]Item, 0, len(args))
			for _, arg := range args {
				t, err := revision.Parse(arg)
				if err != nil {
					return err
				}
				items = append(items, newItem(arg, t))
			}
			slog.Debug("parsed revisions", "count", len(items))

			if len(items) == 1 {
				return writeReport(ctx, cmd, RevisionReport{
					Header: newHeader(header.KindRevision),
					Item:   items[0],
				})
			}
			return writeReport(ctx, cmd, RevisionListReport{
				Header: newHeader(header.KindRevisionList),
				Items:  items,
			})
		},
	}
}

func encodeCmd() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Print the 16-byte record of revisions as hex.",
		ArgsUsage: "<revision>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return rterrors.New(rterrors.ErrCodeInvalidRequest, "at least one revision is required")
			}

			w := cmd.Root().Writer
			for _, arg := range args {
				t, err := revision.Parse(arg)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(w, encodeHex(t)); err != nil {
					return fmt.Errorf("failed to write record: %w", err)
				}
			}
			return nil
		},
	}
}

func decodeCmd() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode a 32-character hex record into a revision.",
		ArgsUsage: "<hex>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return rterrors.New(rterrors.ErrCodeInvalidRequest, "exactly one hex record is required")
			}
			in := strings.TrimSpace(cmd.Args().First())

			t, err := decodeHex(in)
			if err != nil {
				return err
			}

			return writeReport(ctx, cmd, RevisionReport{
				Header: newHeader(header.KindRevision),
				Item:   newItem(in, t),
			})
		},
	}
}

func decodeHex(s string) (revision.Tag, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
	if err != nil {
		return revision.Tag{}, rterrors.WrapWithContext(rterrors.ErrCodeInvalidRequest,
			"record is not valid hex", err, map[string]any{"input": s})
	}
	return revision.DecodeSlice(b)
}
