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

// Package config assembles the effective configuration from built-in
// defaults, an optional YAML file and TRIEDEXCFG_ environment variables,
// in that order of precedence.
package config

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/wema/triedex/internal/dataset"
	"github.com/wema/triedex/internal/logging"
)

var ErrConfiguration = errors.New("configuration error")

type (
	// Separator is the single column separator rune of the color table.
	Separator rune

	WordsConfig struct {
		File     string           `koanf:"file"`
		Encoding dataset.Encoding `koanf:"encoding" validate:"oneof=utf-8 latin-1"`
	}

	ColorsConfig struct {
		File      string           `koanf:"file"`
		Encoding  dataset.Encoding `koanf:"encoding" validate:"oneof=utf-8 latin-1"`
		Separator Separator        `koanf:"separator,string"`
		Language  dataset.Language `koanf:"language" validate:"oneof=english german french italian"`
	}

	Configuration struct {
		Log    logging.LogConfig `koanf:"log"`
		Words  WordsConfig       `koanf:"words"`
		Colors ColorsConfig      `koanf:"colors"`
	}
)

func (s Separator) String() string { return string(rune(s)) }

func defaultConfiguration() Configuration {
	return Configuration{
		Log: logging.LogConfig{
			Format: logging.LogTextFormat,
			Level:  zerolog.InfoLevel,
		},
		Words: WordsConfig{
			Encoding: dataset.UTF8,
		},
		Colors: ColorsConfig{
			Encoding:  dataset.UTF8,
			Separator: ',',
			Language:  dataset.English,
		},
	}
}
