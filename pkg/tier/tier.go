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

// Package tier defines the HOT/WARM/COLD classification and the rules that
// decide which files carry one.
package tier

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Tier is the priority classification of a file
type Tier string

const (
	// None means no recognized marker was found
	None Tier = ""
	Hot  Tier = "HOT"  // always relevant
	Warm Tier = "WARM" // occasionally relevant
	Cold Tier = "COLD" // rarely relevant
)

// ErrInvalidTier is returned when a name is not one of HOT, WARM or COLD
var ErrInvalidTier = errors.Base("invalid tier")

// All returns the tiers in reporting order
func All() []Tier {
	return []Tier{Hot, Warm, Cold}
}

// Valid reports whether t is one of the three known tiers
func (t Tier) Valid() bool {
	switch t {
	case Hot, Warm, Cold:
		return true
	default:
		return false
	}
}

// String returns the tier name, or "NONE" for unmarked files
func (t Tier) String() string {
	if t == None {
		return "NONE"
	}
	return string(t)
}

// 🔍 Parse normalizes a tier name case-insensitively
func Parse(s string) (Tier, error) {
	t := Tier(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return None, errors.WithDetails(ErrInvalidTier, "tier", s)
	}
	return t, nil
}

// Set implements pflag.Value so invalid names fail during flag parsing
func (t *Tier) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return errors.Errorf("%q must be one of HOT, WARM, COLD: %w", s, err)
	}
	*t = parsed
	return nil
}

// Type implements pflag.Value
func (t *Tier) Type() string {
	return "tier"
}
