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

package opts

import (
	"github.com/walteh/context-tiers/pkg/config"
	"github.com/walteh/context-tiers/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands. It is filled in
// once the root flags are parsed and is read-only afterwards.
type RootOpts struct {
	Root       string // absolute tree root
	ConfigFile string // config file path, empty for the default lookup
	Debug      bool
	Config     *config.Config
}

// Operator builds an operator for the root using the loaded configuration
func (o *RootOpts) Operator(opts operation.Options) (operation.Operator, error) {
	if o.Config == nil {
		return nil, errors.Errorf("config not loaded")
	}

	excluder, err := o.Config.Excluder()
	if err != nil {
		return nil, errors.Errorf("building excluder: %w", err)
	}

	opts.Root = o.Root
	opts.Excluder = excluder
	opts.Detector = o.Config.Detector()

	op, err := operation.New(opts)
	if err != nil {
		return nil, errors.Errorf("creating operator: %w", err)
	}
	return op, nil
}
