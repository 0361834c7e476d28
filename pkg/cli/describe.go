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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/revtag/pkg/defaults"
	rterrors "github.com/NVIDIA/revtag/pkg/errors"
	"github.com/NVIDIA/revtag/pkg/header"
	"github.com/NVIDIA/revtag/pkg/revision/describe"
)

func describeCmd() *cli.Command {
	return &cli.Command{
		Name:  "describe",
		Usage: "Run git describe --tags in repositories and parse the result.",
		Description: `Runs 'git describe --tags' in each --dir (default: the current directory)
and reports the parsed revision.

  revtag describe --dir ./repo-a --dir ./repo-b --args=--match --args='v*'`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "dir",
				Aliases: []string{"C"},
				Usage:   "Repository directory, may be repeated (default: current directory)",
				Sources: cli.EnvVars("REVTAG_DIR"),
			},
			&cli.StringSliceFlag{
				Name:  "args",
				Usage: "Extra argument passed to git describe, may be repeated",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIDescribeTimeout,
				Usage: "Timeout for each git invocation (0 disables)",
			},
			&cli.IntFlag{
				Name:  "parallel",
				Value: defaults.GitDescribeParallelism,
				Usage: "Maximum number of concurrent git invocations",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			timeout := cmd.Duration("timeout")
			if timeout < 0 || timeout > defaults.CLIMaxDescribeTimeout {
				return rterrors.NewWithContext(rterrors.ErrCodeInvalidRequest,
					"timeout out of range", map[string]any{
						"timeout": timeout.String(),
						"max":     defaults.CLIMaxDescribeTimeout.String(),
					})
			}

			dirs := cmd.StringSlice("dir")
			if len(dirs) == 0 {
				dirs = []string{""}
			}

			results, err := describe.DescribeAll(ctx, dirs, int(cmd.Int("parallel")),
				describe.WithRunner(gitRunner),
				describe.WithArgs(cmd.StringSlice("args")...),
				describe.WithTimeout(timeout),
			)
			if err != nil {
				return err
			}
			slog.Debug("described repositories", "count", len(results))

			items := make([]DescribeItem, 0, len(results))
			for _, r := range results {
				dir := r.Dir
				if dir == "" {
					dir = "."
				}
				items = append(items, DescribeItem{Dir: dir, Item: newItem(r.Raw, r.Tag)})
			}

			return writeReport(ctx, cmd, DescribeReport{
				Header: newHeader(header.KindDescribe),
				Items:  items,
			})
		},
	}
}
