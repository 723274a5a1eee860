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

package operation

import (
	"context"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/walteh/context-tiers/pkg/tier"
)

// charsPerToken is the divisor of the token heuristic
const charsPerToken = 4

// 📊 TierStats holds the totals for one tier
type TierStats struct {
	Tier   tier.Tier
	Files  int   // files classified in the tier
	Bytes  int64 // total raw size of the readable files
	Tokens int   // approximate token count
}

// KiB returns the byte total in kibibytes
func (s TierStats) KiB() float64 {
	return float64(s.Bytes) / 1024
}

// 📊 StatusReport holds per-tier totals in HOT, WARM, COLD order
type StatusReport struct {
	Root  string
	Tiers []TierStats
}

// ApproxTokens estimates tokens from a decoded character count. Any non-empty
// text counts as at least one token.
func ApproxTokens(chars int) int {
	if chars <= 0 {
		return 0
	}
	if n := chars / charsPerToken; n > 0 {
		return n
	}
	return 1
}

// 🔍 Status re-reads every tiered file in full and totals its size and tokens.
// Files that cannot be read contribute nothing.
func (op *operator) Status(ctx context.Context) (*StatusReport, error) {
	logger := zerolog.Ctx(ctx)

	res, err := op.scan(ctx)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{Root: op.root}
	for _, t := range tier.All() {
		stats := TierStats{Tier: t}
		files := res.Files(t)
		stats.Files = len(files)

		for _, f := range files {
			data, err := util.ReadFile(op.source, f)
			if err != nil {
				logger.Debug().Err(err).Str("path", f).Msg("skipping unreadable file in totals")
				continue
			}
			stats.Bytes += int64(len(data))
			stats.Tokens += ApproxTokens(utf8.RuneCountInString(tier.Decode(data)))
		}

		report.Tiers = append(report.Tiers, stats)
	}

	return report, nil
}
