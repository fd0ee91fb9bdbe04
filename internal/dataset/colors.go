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
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/wema/triedex/internal/hexcolor"
	"github.com/wema/triedex/internal/x/errorchain"
)

var ErrDatasetMalformed = errors.New("dataset malformed")

// Colors reads a delimited color table and calls fn once per usable row
// with the normalized hex code and the display name in the requested
// language. Rows without a '#'-prefixed hex cell (header rows included),
// with too few columns, or with an empty name cell are skipped with a
// warning instead of failing the whole load.
func Colors(source io.Reader, separator rune, lang Language, fn func(hex, name string)) error {
	nameColumn, known := nameColumns[lang]
	if !known {
		return errorchain.NewWithMessagef(ErrUnsupportedLanguage, "%q", lang)
	}

	reader := csv.NewReader(source)
	reader.Comma = separator
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return errorchain.NewWithMessagef(ErrDatasetMalformed,
				"line %d is not parsable", line).CausedBy(err)
		}

		if len(record) <= hexColumn || len(record) <= nameColumn {
			log.Warn().Int("_line", line).Msg("Skipping row with too few columns")

			continue
		}

		hexCell := strings.TrimSpace(record[hexColumn])
		if !strings.HasPrefix(hexCell, "#") {
			log.Warn().Int("_line", line).Msg("Skipping row without '#'-prefixed hex cell")

			continue
		}

		name := strings.TrimSpace(record[nameColumn])
		if len(name) == 0 {
			log.Warn().Int("_line", line).Msg("Skipping row with empty name cell")

			continue
		}

		fn(hexcolor.Normalize(hexCell), name)
	}
}

// ReadColorsFile loads a delimited color table file.
func ReadColorsFile(
	path string,
	enc Encoding,
	separator rune,
	lang Language,
	fn func(hex, name string),
) error {
	file, err := os.Open(path)
	if err != nil {
		return errorchain.NewWithMessagef(ErrDatasetUnreadable,
			"failed to open color dataset %s", path).CausedBy(err)
	}
	defer file.Close()

	log.Debug().
		Str("_file", path).
		Str("_encoding", string(enc)).
		Str("_language", string(lang)).
		Msg("Loading color dataset")

	return Colors(enc.wrap(file), separator, lang, fn)
}
