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

package dataset

import (
	"errors"
	"strings"

	"github.com/wema/triedex/internal/x/errorchain"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language selects the display name column of the color table.
type Language string

const (
	English Language = "english"
	German  Language = "german"
	French  Language = "french"
	Italian Language = "italian"
)

// Column layout of the color table. The hex code always lives in column 2,
// the display names in the columns around it.
const hexColumn = 2

var nameColumns = map[Language]int{ // nolint: gochecknoglobals
	English: 0,
	German:  1,
	French:  3,
	Italian: 4,
}

func Languages() []Language {
	return []Language{English, German, French, Italian}
}

func ParseLanguage(value string) (Language, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(value)))

	if _, known := nameColumns[lang]; !known {
		return "", errorchain.NewWithMessagef(ErrUnsupportedLanguage,
			"%q is not one of %v", value, Languages())
	}

	return lang, nil
}
