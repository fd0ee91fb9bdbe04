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

// Package dataset reads the word and color source files and feeds their
// validated records to a caller supplied sink, typically an index insert.
package dataset

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/wema/triedex/internal/x/errorchain"
)

var ErrDatasetUnreadable = errors.New("dataset unreadable")

// Words tokenizes free text into lowercase words and calls fn once per
// token. A word is a run of letters, with apostrophes kept if surrounded
// by letters ("lord's"). Everything else separates words.
func Words(source io.Reader, fn func(word string)) error {
	reader := bufio.NewReader(source)

	var current []rune

	flush := func() {
		word := strings.TrimRight(string(current), "'")
		if len(word) != 0 {
			fn(strings.ToLower(word))
		}

		current = current[:0]
	}

	for {
		char, _, err := reader.ReadRune()
		if errors.Is(err, io.EOF) {
			flush()

			return nil
		}

		if err != nil {
			return errorchain.New(ErrDatasetUnreadable).CausedBy(err)
		}

		switch {
		case unicode.IsLetter(char):
			current = append(current, char)
		case char == '\'' && len(current) != 0:
			current = append(current, char)
		default:
			flush()
		}
	}
}

// ReadWordsFile loads a dictionary text file. Missing or unreadable files
// are fatal startup conditions and are reported as errors, not retried.
func ReadWordsFile(path string, enc Encoding, fn func(word string)) error {
	file, err := os.Open(path)
	if err != nil {
		return errorchain.NewWithMessagef(ErrDatasetUnreadable,
			"failed to open word dataset %s", path).CausedBy(err)
	}
	defer file.Close()

	log.Debug().Str("_file", path).Str("_encoding", string(enc)).Msg("Loading word dataset")

	return Words(enc.wrap(file), fn)
}
