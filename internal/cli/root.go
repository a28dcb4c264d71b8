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

// Package cli implements the onetimevar command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes of [Execute].
const (
	ExitOK       = 0
	ExitError    = 1
	ExitFindings = 3
)

const rootLongDescription = `onetimevar reports JavaScript variables that are read exactly once
and suggests inlining their initializer at the read.

Options are read from flags, ONETIMEVAR_ environment variables and a
.onetimevar.yaml configuration file in the current directory.`

// NewRootCmd returns the onetimevar root command with all subcommands.
//
// Every command tree owns its configuration, so multiple trees can run concurrently.
func NewRootCmd() *cobra.Command {
	v := newConfig()

	var configFile string

	cmd := &cobra.Command{
		Use:           "onetimevar",
		Short:         "Single-use variable detector for JavaScript",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := readConfig(v, configFile); err != nil {
				return fmt.Errorf("onetimevar: can't read configuration: %w", err)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd, v, &configFile)

	cmd.AddCommand(newCheckCmd(v))

	return cmd
}

func configureRootFlags(cmd *cobra.Command, v *viper.Viper, configFile *string) {
	flags := cmd.PersistentFlags()

	flags.StringVar(configFile, configFlagName, "", "configuration file (default .onetimevar.yaml)")

	flags.String(logFileFlagName, "", `log file, "-" for the error output`)
	bindFlagToConfig(v, flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolP(verboseFlagName, "v", false, "log debug output")
	bindFlagToConfig(v, flags.Lookup(verboseFlagName), logVerboseKey)
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)

	switch {
	case err == nil:
		return ExitOK

	case errors.Is(err, ErrFindings):
		return ExitFindings

	default:
		_, _ = fmt.Fprintln(stderr, "Error:", err)

		return ExitError
	}
}
