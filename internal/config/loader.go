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

package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/wema/triedex/internal/x/errorchain"
)

const defaultEnvPrefix = "TRIEDEXCFG_"

type (
	opts struct {
		configFile string
		envPrefix  string
	}

	Option func(*opts)
)

// ConfigurationPath sets the path to the YAML configuration file. Without
// it only defaults and environment variables are considered.
func ConfigurationPath(path string) Option {
	return func(o *opts) {
		configFile := strings.TrimSpace(path)
		if len(configFile) != 0 {
			o.configFile = configFile
		}
	}
}

// EnvVarPrefix overrides the default TRIEDEXCFG_ prefix of the considered
// environment variables.
func EnvVarPrefix(prefix string) Option {
	return func(o *opts) {
		envPrefix := strings.TrimSpace(prefix)
		if len(envPrefix) != 0 {
			o.envPrefix = envPrefix
		}
	}
}

// NewConfiguration assembles the effective configuration by loading and
// merging the available sources in increasing order of precedence:
// built-in defaults, the optional YAML file and environment variables.
func NewConfiguration(options ...Option) (Configuration, error) {
	o := opts{envPrefix: defaultEnvPrefix}

	for _, option := range options {
		option(&o)
	}

	result := defaultConfiguration()

	parser := koanf.New(".")

	if err := parser.Load(structs.Provider(result, "koanf"), nil); err != nil {
		return Configuration{}, errorchain.
			NewWithMessage(ErrConfiguration, "failed to load configuration defaults").
			CausedBy(err)
	}

	if len(o.configFile) != 0 {
		raw, err := os.ReadFile(o.configFile)
		if err != nil {
			return Configuration{}, errorchain.
				NewWithMessagef(ErrConfiguration, "failed to read config file %s", o.configFile).
				CausedBy(err)
		}

		if err := parser.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
			return Configuration{}, errorchain.
				NewWithMessagef(ErrConfiguration, "failed to parse config file %s", o.configFile).
				CausedBy(err)
		}
	}

	if err := parser.Load(envProvider(o.envPrefix), nil); err != nil {
		return Configuration{}, errorchain.
			NewWithMessage(ErrConfiguration, "failed to load environment variables").
			CausedBy(err)
	}

	err := parser.UnmarshalWithConf("", &result, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				logLevelDecodeHookFunc,
				logFormatDecodeHookFunc,
				languageDecodeHookFunc,
				encodingDecodeHookFunc,
				separatorDecodeHookFunc,
			),
			Result:           &result,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return Configuration{}, errorchain.
			NewWithMessage(ErrConfiguration, "failed to unmarshal configuration").
			CausedBy(err)
	}

	if err := result.Validate(); err != nil {
		return Configuration{}, err
	}

	return result, nil
}

func envProvider(prefix string) koanf.Provider {
	return env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			newKey := strings.ReplaceAll(
				strings.ToLower(strings.TrimPrefix(key, prefix)), "_", ".")

			return newKey, toRealType(val)
		},
	})
}

func toRealType(val string) any {
	var parsed map[string]any

	// the yaml parser "guesses" the type and converts the given string to it.
	yamlv3.Unmarshal([]byte("val: "+val), &parsed) // nolint: errcheck

	return parsed["val"]
}
