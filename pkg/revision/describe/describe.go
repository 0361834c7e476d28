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

package describe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/revtag/pkg/defaults"
	rterrors "github.com/NVIDIA/revtag/pkg/errors"
	"github.com/NVIDIA/revtag/pkg/revision"
)

const (
	// DefaultTimeout bounds a single git invocation.
	DefaultTimeout = defaults.GitDescribeTimeout

	// DefaultParallelism is used by DescribeAll when limit is not positive.
	DefaultParallelism = defaults.GitDescribeParallelism
)

// Runner runs git with args in dir and returns its standard output.
type Runner func(ctx context.Context, dir string, args ...string) ([]byte, error)

// GitRunner runs the git binary found in PATH.
func GitRunner(ctx context.Context, dir string, args ...string) ([]byte, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return nil, fmt.Errorf("git not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, gitError(args, err)
	}
	return out, nil
}

// gitError adds the stderr of a failed git process to err when present.
func gitError(args []string, err error) error {
	var ee *exec.ExitError
	if errors.As(err, &ee) && len(ee.Stderr) > 0 {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err,
			strings.TrimSpace(string(ee.Stderr)))
	}
	return fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
}

// Option is a functional option for configuring a Describer.
type Option func(*Describer)

// WithRunner replaces the git runner. Tests use this to avoid running git.
func WithRunner(r Runner) Option {
	return func(d *Describer) {
		if r != nil {
			d.run = r
		}
	}
}

// WithDir sets the working directory git runs in. Empty means the current directory.
func WithDir(dir string) Option {
	return func(d *Describer) {
		d.dir = dir
	}
}

// WithArgs appends extra arguments to `git describe --tags`, e.g. "--match", "v*".
func WithArgs(args ...string) Option {
	return func(d *Describer) {
		d.args = append(d.args, args...)
	}
}

// WithTimeout bounds each invocation. Zero or negative disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Describer) {
		d.timeout = timeout
	}
}

// Describer obtains the current revision from git.
type Describer struct {
	run     Runner
	dir     string
	args    []string
	timeout time.Duration
}

// New creates a Describer that runs git from PATH unless WithRunner is given.
func New(opts ...Option) *Describer {
	d := &Describer{
		run:     GitRunner,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Args returns the full argument list passed to git.
func (d *Describer) Args() []string {
	return append([]string{"describe", "--tags"}, d.args...)
}

// Raw runs git describe and returns its output with trailing whitespace removed.
//
// A runner failure is reported with code TOOL_INVOCATION and output that is not
// valid UTF-8 with code ENCODING.
func (d *Describer) Raw(ctx context.Context) (string, error) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	args := d.Args()
	slog.Debug("running git", "dir", d.dir, "args", args)

	out, err := d.run(ctx, d.dir, args...)
	if err != nil {
		return "", rterrors.WrapWithContext(rterrors.ErrCodeToolInvocation,
			"failed to execute git describe", err,
			map[string]any{"dir": d.dir, "args": args})
	}
	if !utf8.Valid(out) {
		return "", rterrors.NewWithContext(rterrors.ErrCodeEncoding,
			"git describe output is not valid UTF-8",
			map[string]any{"dir": d.dir, "length": len(out)})
	}

	return strings.TrimRightFunc(string(out), unicode.IsSpace), nil
}

// Describe runs git describe and parses the result. Parse failures are
// returned unchanged, so they keep their parse error codes.
func (d *Describer) Describe(ctx context.Context) (revision.Tag, error) {
	raw, err := d.Raw(ctx)
	if err != nil {
		return revision.Tag{}, err
	}

	t, err := revision.Parse(raw)
	if err != nil {
		return revision.Tag{}, err
	}

	slog.Debug("described revision", "dir", d.dir, "raw", raw, "revision", t.String())
	return t, nil
}

// Result is the outcome of describing one directory.
type Result struct {
	Dir string       `json:"dir" yaml:"dir"`
	Raw string       `json:"raw" yaml:"raw"`
	Tag revision.Tag `json:"revision" yaml:"revision"`
}

// DescribeAll describes each directory with at most limit concurrent git
// invocations and returns results in the order of dirs. The first failure
// cancels the remaining work and is returned.
func DescribeAll(ctx context.Context, dirs []string, limit int, opts ...Option) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultParallelism
	}

	results := make([]Result, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, dir := range dirs {
		g.Go(func() error {
			d := New(append(slices.Clip(opts), WithDir(dir))...)
			raw, err := d.Raw(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", dir, err)
			}
			t, err := revision.Parse(raw)
			if err != nil {
				return fmt.Errorf("%s: %w", dir, err)
			}
			results[i] = Result{Dir: dir, Raw: raw, Tag: t}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
