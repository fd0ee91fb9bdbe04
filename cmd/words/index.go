// Copyright 2023 The triedex Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package words implements the subcommands working with the word
// occurrence index.
package words

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/wema/triedex/cmd/flags"
	"github.com/wema/triedex/internal/config"
	"github.com/wema/triedex/internal/dataset"
	"github.com/wema/triedex/internal/index"
	"github.com/wema/triedex/internal/logging"
	"github.com/wema/triedex/internal/x/errorchain"
)

// buildIndex assembles the effective configuration, applies the command
// line overrides and indexes the configured word list.
func buildIndex(cmd *cobra.Command) (*index.WordIndex, error) {
	configPath, _ := cmd.Flags().GetString(flags.Config)
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)

	conf, err := config.NewConfiguration(
		config.ConfigurationPath(configPath),
		config.EnvVarPrefix(envPrefix),
	)
	if err != nil {
		return nil, err
	}

	logging.ConfigureLogging(conf.Log)

	if file, _ := cmd.Flags().GetString(flags.File); len(file) != 0 {
		conf.Words.File = file
	}

	if encoding, _ := cmd.Flags().GetString(flags.Encoding); len(encoding) != 0 {
		if conf.Words.Encoding, err = dataset.ParseEncoding(encoding); err != nil {
			return nil, err
		}
	}

	if len(conf.Words.File) == 0 {
		return nil, errorchain.NewWithMessage(config.ErrConfiguration,
			"no word list configured - use --file or set words.file")
	}

	idx := index.NewWordIndex()

	if err := dataset.ReadWordsFile(conf.Words.File, conf.Words.Encoding, idx.Add); err != nil {
		return nil, err
	}

	log.Debug().
		Str("_file", conf.Words.File).
		Int("_distinct", idx.Distinct()).
		Msg("Word index ready")

	return idx, nil
}
