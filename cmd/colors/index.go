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

// Package colors implements the subcommands working with the color
// code index.
package colors

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
// line overrides and indexes the configured color table.
func buildIndex(cmd *cobra.Command) (*index.ColorIndex, error) {
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

	if err := applyOverrides(cmd, &conf.Colors); err != nil {
		return nil, err
	}

	if len(conf.Colors.File) == 0 {
		return nil, errorchain.NewWithMessage(config.ErrConfiguration,
			"no color table configured - use --file or set colors.file")
	}

	idx := index.NewColorIndex()

	err = dataset.ReadColorsFile(
		conf.Colors.File, conf.Colors.Encoding, rune(conf.Colors.Separator), conf.Colors.Language, idx.Add)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("_file", conf.Colors.File).
		Str("_language", string(conf.Colors.Language)).
		Int("_distinct", idx.Distinct()).
		Msg("Color index ready")

	return idx, nil
}

func applyOverrides(cmd *cobra.Command, conf *config.ColorsConfig) error {
	var err error

	if file, _ := cmd.Flags().GetString(flags.File); len(file) != 0 {
		conf.File = file
	}

	if encoding, _ := cmd.Flags().GetString(flags.Encoding); len(encoding) != 0 {
		if conf.Encoding, err = dataset.ParseEncoding(encoding); err != nil {
			return err
		}
	}

	if separator, _ := cmd.Flags().GetString(flags.Separator); len(separator) != 0 {
		chars := []rune(separator)
		if len(chars) != 1 {
			return errorchain.NewWithMessagef(config.ErrConfiguration,
				"separator must be a single character, got %q", separator)
		}

		conf.Separator = config.Separator(chars[0])
	}

	if language, _ := cmd.Flags().GetString(flags.Language); len(language) != 0 {
		if conf.Language, err = dataset.ParseLanguage(language); err != nil {
			return err
		}
	}

	return nil
}
