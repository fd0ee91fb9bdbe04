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
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wema/triedex/internal/x/errorchain"
)

var validate = newValidator() // nolint: gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0] // nolint: mnd
		if len(name) == 0 {
			return fld.Name
		}

		return name
	})

	return v
}

// Validate checks the assembled configuration for unsupported values.
func (c Configuration) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errorchain.
			NewWithMessage(ErrConfiguration, "configuration validation failed").
			CausedBy(err)
	}

	return nil
}
