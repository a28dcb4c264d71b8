// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/onetimevar/analyzer"
)

var (
	// ErrFindings is returned when single-use variables were reported and not fixed,
	// with --fix when some of them have no fix.
	ErrFindings = errors.New("single-use variables found")

	// ErrFormat is returned for an unknown output format.
	ErrFormat = errors.New("unknown output format")
)

const checkLongDescription = `Check JavaScript files for variables that are only used once.

Directories are searched recursively for .js, .cjs, .mjs and .jsx files,
skipping hidden directories and node_modules.`

// fileResult is the outcome of checking one file.
type fileResult struct {
	file        string
	perm        fs.FileMode
	src, fixed  []byte
	diagnostics []analyzer.Diagnostic
	remaining   []analyzer.Diagnostic // after fixing
}

func (r fileResult) changed() bool {
	return r.fixed != nil && !bytes.Equal(r.src, r.fixed)
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] path...",
		Short: "Report variables that are only used once",
		Long:  checkLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, v, args)
		},
	}

	flags := cmd.Flags()

	flags.Bool(fixFlagName, false, "apply suggested fixes to the files")
	flags.Bool(diffFlagName, false, "print suggested fixes as unified diffs instead of applying them")

	flags.StringP(formatFlagName, "f", defaultFormat, "output format: text, json or yaml")
	bindFlagToConfig(v, flags.Lookup(formatFlagName), formatKey)

	flags.IntP(jobsFlagName, "j", runtime.GOMAXPROCS(0), "number of files checked concurrently")
	bindFlagToConfig(v, flags.Lookup(jobsFlagName), jobsKey)

	registerRuleFlags(v, flags)

	cmd.MarkFlagsMutuallyExclusive(fixFlagName, diffFlagName)

	return cmd
}

func runCheck(cmd *cobra.Command, v *viper.Viper, args []string) error {
	ctx := cmd.Context()

	fix, _ := cmd.Flags().GetBool(fixFlagName)
	diff, _ := cmd.Flags().GetBool(diffFlagName)

	logger, closer := newLogger(v, cmd.ErrOrStderr())
	defer func() { _ = closer.Close() }()

	s, err := ruleSettings(v)
	if err != nil {
		return fmt.Errorf("onetimevar: invalid rule options: %w", err)
	}

	opts := analyzer.Options(s.Options())
	logger.LogAttrs(ctx, slog.LevelDebug, "Checking files", opts.LogAttr(), slog.Int("paths", len(args)))

	a := analyzer.New(opts, analyzer.WithLogger(logger))

	files, err := collectFiles(args)
	if err != nil {
		return fmt.Errorf("onetimevar: %w", err)
	}

	results, err := checkFiles(ctx, a, files, fix || diff, v.GetInt(jobsKey))
	if err != nil {
		return err
	}

	if diff {
		for _, r := range results {
			if !r.changed() {
				continue
			}

			if err := writeDiff(cmd.OutOrStdout(), r); err != nil {
				return err
			}
		}

		return nil
	}

	if err := writeDiagnostics(cmd.OutOrStdout(), v.GetString(formatKey), results); err != nil {
		return err
	}

	if fix {
		if err := writeFixes(logger, results); err != nil {
			return err
		}
	}

	for _, r := range results {
		if fix && len(r.remaining) > 0 || !fix && len(r.diagnostics) > 0 {
			return ErrFindings
		}
	}

	return nil
}

// checkFiles runs the analyzer on all files, at most jobs at a time.
// Results are in the order of files.
func checkFiles(ctx context.Context, a *analyzer.Analyzer, files []string, fix bool, jobs int) ([]fileResult, error) {
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, file := range files {
		g.Go(func() error {
			r, err := checkFile(ctx, a, file, fix)
			if err != nil {
				return err
			}

			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func checkFile(ctx context.Context, a *analyzer.Analyzer, file string, fix bool) (fileResult, error) {
	info, err := os.Stat(file)
	if err != nil {
		return fileResult{}, fmt.Errorf("onetimevar: %w", err)
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return fileResult{}, fmt.Errorf("onetimevar: %w", err)
	}

	r := fileResult{file: file, perm: info.Mode().Perm(), src: src}

	if fix {
		var fixed *analyzer.FixResult

		fixed, err = a.Fix(ctx, file, src)
		if err == nil {
			r.fixed, r.diagnostics, r.remaining = fixed.Src, fixed.Diagnostics, fixed.Remaining
		}
	} else {
		var result *analyzer.Result

		result, err = a.Run(ctx, file, src)
		if err == nil {
			r.diagnostics = result.Diagnostics
		}
	}

	return r, err
}

// writeFixes writes the fixed source of all changed files.
func writeFixes(logger *slog.Logger, results []fileResult) error {
	for _, r := range results {
		if !r.changed() {
			continue
		}

		if err := os.WriteFile(r.file, r.fixed, r.perm); err != nil {
			return fmt.Errorf("onetimevar: %w", err)
		}

		logger.Info("Fixed file", slog.String("file", r.file))
	}

	return nil
}
