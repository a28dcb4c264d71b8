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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName = ".onetimevar"
	envPrefix      = "ONETIMEVAR"

	configFlagName  = "config"
	logFileFlagName = "log-file"
	verboseFlagName = "verbose"
	fixFlagName     = "fix"
	diffFlagName    = "diff"
	formatFlagName  = "format"
	jobsFlagName    = "jobs"

	formatKey      = "output.format"
	jobsKey        = "run.jobs"
	ruleKeyPrefix  = "rules."
	logFilenameKey = "log.filename"
	logLevelKey    = "log.level"
	logVerboseKey  = "log.verbose"

	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultFormat        = formatText
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true

	// stderrLog as log file name writes the log to the error output.
	stderrLog = "-"
)

// newConfig returns a configuration reading .onetimevar.yaml and ONETIMEVAR_ environment variables.
func newConfig() *viper.Viper {
	v := viper.New()

	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(formatKey, defaultFormat)
	v.SetDefault(logLevelKey, slog.LevelInfo.String())
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)

	return v
}

// readConfig reads the configuration file. A missing default configuration file is not an error.
func readConfig(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))

		return
	}

	cobra.CheckErr(v.BindPFlag(key, flag))
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// newLogger configures the logger of a command run.
//
// By default nothing is logged. A log file name of "-" logs to stderr,
// other names to a rotating log file.
func newLogger(v *viper.Viper, stderr io.Writer) (*slog.Logger, io.Closer) {
	var w io.WriteCloser

	switch logPath := strings.TrimSpace(v.GetString(logFilenameKey)); logPath {
	case "":
		return slog.New(slog.DiscardHandler), nopWriteCloser{io.Discard}

	case stderrLog:
		w = nopWriteCloser{stderr}

	default:
		w = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    v.GetInt(logMaxSizeKey),
			MaxBackups: v.GetInt(logMaxBackupsKey),
			MaxAge:     v.GetInt(logMaxAgeKey),
			Compress:   v.GetBool(logCompressKey),
		}
	}

	logLevel := parseSlogLevel(v.GetString(logLevelKey), slog.LevelInfo)
	if v.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel})

	return slog.New(handler), w
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
