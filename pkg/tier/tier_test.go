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

package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Tier
		wantErr bool
	}{
		{name: "upper", input: "HOT", want: Hot},
		{name: "lower", input: "warm", want: Warm},
		{name: "mixed_with_space", input: " CoLd ", want: Cold},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "lukewarm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTier)
				assert.Equal(t, None, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTierFlagValue(t *testing.T) {
	var tr Tier = Hot

	require.NoError(t, tr.Set("cold"))
	assert.Equal(t, Cold, tr)
	assert.Equal(t, "tier", tr.Type())

	err := tr.Set("tepid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTier)
	assert.Equal(t, Cold, tr, "failed Set must not change the value")
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "HOT", Hot.String())
	assert.Equal(t, "NONE", None.String())
	assert.False(t, None.Valid())
	assert.Equal(t, []Tier{Hot, Warm, Cold}, All())
}
