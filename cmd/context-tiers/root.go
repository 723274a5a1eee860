// Copyright 2025 walteh LLC
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

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/context-tiers/cmd/context-tiers/commands"
	"github.com/walteh/context-tiers/cmd/context-tiers/opts"
	"github.com/walteh/context-tiers/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree. Diagnostics go to stderr; command
// output goes to the writer set with SetOut.
func newRootCmd(stderr io.Writer) *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "context-tiers",
		Short: "Classify files as HOT, WARM or COLD from an inline marker",
		Long: `context-tiers reads the "@byt3-tier <HOT|WARM|COLD>" marker from the first
4096 bytes of text files and reports, lists or bundles files per tier.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// flags parsed fine; from here on errors are not usage problems
			cmd.SilenceUsage = true

			logger := setupLogging(stderr, rootOpts.Debug)
			ctx := logger.WithContext(cmd.Context())
			cmd.SetContext(ctx)

			if err := loadRootOpts(cmd, rootOpts); err != nil {
				return err
			}

			logger.Debug().Str("root", rootOpts.Root).Str("config", rootOpts.ConfigFile).Msg("initialized")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = false
			return errors.New("a command is required: status, list or bundle")
		},
	}

	addRootFlags(cmd, rootOpts)

	cmd.AddCommand(
		commands.NewStatusCmd(rootOpts),
		commands.NewListCmd(rootOpts),
		commands.NewBundleCmd(rootOpts),
		commands.NewVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.Root, "root", "r", "", "tree root (default: current directory)")
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: <root>/"+config.DefaultFile+" if present)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// loadRootOpts resolves the root and loads the configuration
func loadRootOpts(cmd *cobra.Command, o *opts.RootOpts) error {
	if o.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Errorf("getting working directory: %w", err)
		}
		o.Root = wd
	}

	root, err := filepath.Abs(o.Root)
	if err != nil {
		return errors.Errorf("getting absolute root path: %w", err)
	}
	o.Root = root

	path, required := o.ConfigFile, true
	if path == "" {
		path, required = filepath.Join(root, config.DefaultFile), false
	}

	cfg, err := config.Load(cmd.Context(), path, required)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	o.ConfigFile = path
	o.Config = cfg

	return nil
}

// setupLogging configures zerolog based on flags
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
