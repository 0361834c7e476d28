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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/revtag/pkg/logging"
	"github.com/NVIDIA/revtag/pkg/revision/describe"
)

const (
	name           = "revtag"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"

	// gitRunner is replaced in tests so no git process is started.
	gitRunner describe.Runner = describe.GitRunner
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Parse, compare and encode git describe revisions",
		Flags:                 globalFlags(),
		Description: `revtag works with revisions produced by 'git describe --tags',
such as v0.9.8-760-gabcd1234 (tag 0.9.8, 760 commits later, at commit abcd1234).

Revisions are ordered by major, minor, patch and distance. The commit is not
part of the ordering but is part of equality.

Each revision has a fixed 16-byte binary record, shown as 32 hex characters.`,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
			logStartup(logLevel)
			return ctx, nil
		},
		Commands: []*cli.Command{
			parseCmd(),
			encodeCmd(),
			decodeCmd(),
			compareCmd(),
			sortCmd(),
			describeCmd(),
			imageCmd(),
		},
	}
}

// logStartup records build info; version is already attached by the logger.
func logStartup(logLevel string) {
	slog.Debug("starting",
		"name", name,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
}

// Execute runs the revtag command line and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
