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
	"github.com/spf13/cobra"
	"github.com/walteh/context-tiers/cmd/context-tiers/opts"
	"github.com/walteh/context-tiers/pkg/operation"
	"github.com/walteh/context-tiers/pkg/status"
	"github.com/walteh/context-tiers/pkg/tier"
	"gitlab.com/tozd/go/errors"
)

// NewListCmd creates a new list command
func NewListCmd(opts *opts.RootOpts) *cobra.Command {
	t := tier.Hot

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the files of one tier",
		Long: `List prints the root-relative path of every file marked with the
requested tier, one per line, sorted. An empty tier prints nothing.`,
		Example: "  context-tiers list --tier warm",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, err := opts.Operator(operation.Options{})
			if err != nil {
				return err
			}

			files, err := op.List(ctx, t)
			if err != nil {
				return errors.Errorf("listing %s files: %w", t, err)
			}

			return status.WriteList(cmd.OutOrStdout(), files)
		},
	}

	cmd.Flags().VarP(&t, "tier", "t", "tier to list (HOT, WARM or COLD)")

	return cmd
}
