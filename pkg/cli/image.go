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

	"github.com/urfave/cli/v3"

	rterrors "github.com/NVIDIA/revtag/pkg/errors"
	"github.com/NVIDIA/revtag/pkg/header"
	"github.com/NVIDIA/revtag/pkg/revision/image"
)

func imageCmd() *cli.Command {
	return &cli.Command{
		Name:      "image",
		Usage:     "Parse revisions from OCI image reference tags.",
		ArgsUsage: "<reference>...",
		Description: `Parses image references whose tag is a revision:

  revtag image ghcr.io/nvidia/app:v1.2.0-3-gabc1234

With --latest, all references must name the same repository and only the
one with the highest revision is reported.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "latest",
				Usage: "Report only the reference with the highest revision",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			refs := cmd.Args().Slice()
			if len(refs) == 0 {
				return rterrors.New(rterrors.ErrCodeInvalidRequest, "at least one image reference is required")
			}

			var results []image.Result
			if cmd.Bool("latest") {
				r, err := image.Latest(refs)
				if err != nil {
					return err
				}
				results = []image.Result{r}
			} else {
				for _, ref := range refs {
					r, err := image.ParseReference(ref)
					if err != nil {
						return err
					}
					results = append(results, r)
				}
			}

			items := make([]ImageItem, 0, len(results))
			for _, r := range results {
				items = append(items, ImageItem{
					Reference:  r.Reference,
					Registry:   r.Registry,
					Repository: r.Repository,
					Item:       newItem("", r.Tag),
				})
			}

			return writeReport(ctx, cmd, ImageReport{
				Header: newHeader(header.KindImage),
				Items:  items,
			})
		},
	}
}
