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
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	rterrors "github.com/NVIDIA/revtag/pkg/errors"
	"github.com/NVIDIA/revtag/pkg/header"
	"github.com/NVIDIA/revtag/pkg/revision"
	"github.com/NVIDIA/revtag/pkg/serializer"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Compare two revisions.",
		ArgsUsage: "<a> <b>",
		Description: `Compares two revisions by major, minor, patch and distance.

The commit does not affect the order, so v1.0.0-3-gaaa and v1.0.0-3-gbbb
compare as the same, but they are not equal.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return rterrors.New(rterrors.ErrCodeInvalidRequest, "exactly two revisions are required")
			}

			as, bs := cmd.Args().Get(0), cmd.Args().Get(1)
			a, err := revision.Parse(as)
			if err != nil {
				return err
			}
			b, err := revision.Parse(bs)
			if err != nil {
				return err
			}

			order := revision.Compare(a, b)
			return writeReport(ctx, cmd, ComparisonReport{
				Header: newHeader(header.KindComparison),
				A:      newItem(as, a),
				B:      newItem(bs, b),
				Order:  order,
				Which:  whichNewer(order),
				Equal:  revision.Equal(a, b),
			})
		},
	}
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Sort revisions from oldest to newest.",
		ArgsUsage: "[revision]...",
		Description: `Sorts revisions given as arguments and, with --file, read from a YAML or
JSON list, or a TOML document with a "revisions" array. Revisions that
compare the same keep their input order.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML, JSON or TOML file with a list of revisions",
			},
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Sort from newest to oldest",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			inputs, tags, err := collectRevisions(cmd)
			if err != nil {
				return err
			}

			idx := make([]int, len(tags))
			for i := range idx {
				idx[i] = i
			}
			slices.SortStableFunc(idx, func(x, y int) int {
				c := revision.Compare(tags[x], tags[y])
				if cmd.Bool("reverse") {
					return -c
				}
				return c
			})

			items := make([]Item, 0, len(idx))
			for _, i := range idx {
				items = append(items, newItem(inputs[i], tags[i]))
			}

			return writeReport(ctx, cmd, RevisionListReport{
				Header: newHeader(header.KindRevisionList),
				Items:  items,
			})
		},
	}
}

// collectRevisions parses the positional arguments followed by the --file list.
func collectRevisions(cmd *cli.Command) ([]string, []revision.Tag, error) {
	var inputs []string
	var tags []revision.Tag

	for _, arg := range cmd.Args().Slice() {
		t, err := revision.Parse(arg)
		if err != nil {
			return nil, nil, err
		}
		inputs = append(inputs, arg)
		tags = append(tags, t)
	}

	if path := cmd.String("file"); path != "" {
		list, err := readRevisionFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read revisions from %s: %w", path, err)
		}
		for _, t := range list {
			inputs = append(inputs, t.String())
			tags = append(tags, t)
		}
	}

	if len(tags) == 0 {
		return nil, nil, rterrors.New(rterrors.ErrCodeInvalidRequest, "no revisions given")
	}
	return inputs, tags, nil
}

// revisionFile is the TOML form of a revision list, which cannot be a bare array:
//
//	revisions = ["v1.0.0", "v1.1.0-3-gabc"]
type revisionFile struct {
	Revisions []revision.Tag `json:"revisions" yaml:"revisions" toml:"revisions"`
}

func readRevisionFile(path string) ([]revision.Tag, error) {
	if serializer.FormatFromPath(path) == serializer.FormatTOML {
		f, err := serializer.FromFile[revisionFile](path)
		if err != nil {
			return nil, err
		}
		return f.Revisions, nil
	}
	list, err := serializer.FromFile[[]revision.Tag](path)
	if err != nil {
		return nil, err
	}
	return *list, nil
}
