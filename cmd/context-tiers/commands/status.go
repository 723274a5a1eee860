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
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show file, size and token totals per tier",
		Long: `Status scans the tree and reports, for HOT, WARM and COLD:
1. The number of marked files
2. Their total size in KB
3. An approximate token count (characters / 4)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			op, err := opts.Operator(operation.Options{})
			if err != nil {
				return err
			}

			report, err := op.Status(ctx)
			if err != nil {
				return errors.Errorf("computing status: %w", err)
			}

			return status.WriteStatus(cmd.OutOrStdout(), status.NewDefaultFormatter(), report)
		},
	}

	return cmd
}
