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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/context-tiers/cmd/context-tiers/opts"
	"github.com/walteh/context-tiers/pkg/config"
	"github.com/walteh/context-tiers/pkg/log"
	"github.com/walteh/context-tiers/pkg/operation"
	"github.com/walteh/context-tiers/pkg/status"
	"github.com/walteh/context-tiers/pkg/tier"
	"gitlab.com/tozd/go/errors"
)

// NewBundleCmd creates a new bundle command
func NewBundleCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		t       = tier.Hot
		out     string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Copy the files of one tier into a directory",
		Long: `Bundle copies every file marked with the requested tier into the output
directory, keeping its path relative to the root.
It will:
1. Create the output directory if needed
2. Overwrite files that already exist there
3. Keep file modes and modification times
Files copied before a failure are left in place.`,
		Example: "  context-tiers bundle --tier hot --out .context/hot",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			dir := out
			if dir == "" {
				dir = opts.Config.Out
			}

			var console *log.Logger
			if verbose {
				console = log.New(cmd.OutOrStdout(), *zerolog.Ctx(ctx))
			}

			op, err := opts.Operator(operation.Options{Console: console})
			if err != nil {
				return err
			}

			res, err := op.Bundle(ctx, t, dir)
			if err != nil {
				return errors.Errorf("bundling %s files: %w", t, err)
			}

			return status.WriteBundle(cmd.OutOrStdout(), status.NewDefaultFormatter(), res)
		},
	}

	cmd.Flags().VarP(&t, "tier", "t", "tier to bundle (HOT, WARM or COLD)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output directory (defaults to the config out, or "+config.DefaultOut+")")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each copied file")

	return cmd
}
