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
	"reflect"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/wema/triedex/internal/dataset"
	"github.com/wema/triedex/internal/logging"
	"github.com/wema/triedex/internal/x"
	"github.com/wema/triedex/internal/x/errorchain"
)

// Decode zerolog levels from strings.
// nolint: cyclop
func logLevelDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}

	if to != reflect.TypeOf(zerolog.Level(0)) {
		return data, nil
	}

	switch data {
	case "panic":
		return zerolog.PanicLevel, nil
	case "fatal":
		return zerolog.FatalLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "disabled":
		return zerolog.Disabled, nil
	default:
		return zerolog.InfoLevel, nil
	}
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.String && to.Name() == "LogFormat" {
		return x.IfThenElse(data == "json", logging.LogJSONFormat, logging.LogTextFormat), nil
	}

	return data, nil
}

func languageDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(dataset.Language("")) {
		return data, nil
	}

	return dataset.ParseLanguage(data.(string)) // nolint: forcetypeassert
}

func encodingDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(dataset.Encoding("")) {
		return data, nil
	}

	return dataset.ParseEncoding(data.(string)) // nolint: forcetypeassert
}

func separatorDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(Separator(0)) {
		return data, nil
	}

	value := data.(string) // nolint: forcetypeassert
	if utf8.RuneCountInString(value) != 1 {
		return nil, errorchain.NewWithMessagef(ErrConfiguration,
			"separator must be a single character, got %q", value)
	}

	char, _ := utf8.DecodeRuneInString(value)

	return Separator(char), nil
}
