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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		text     string
		expected []string
	}{
		"simple sentence": {
			text:     "In the beginning God created",
			expected: []string{"in", "the", "beginning", "god", "created"},
		},
		"punctuation separates": {
			text:     "hello, world; hello!",
			expected: []string{"hello", "world", "hello"},
		},
		"digits separate": {
			text:     "2level42up",
			expected: []string{"level", "up"},
		},
		"interior apostrophe kept": {
			text:     "the lord's word",
			expected: []string{"the", "lord's", "word"},
		},
		"leading and trailing apostrophes dropped": {
			text:     "'tis words' end",
			expected: []string{"tis", "words", "end"},
		},
		"newlines and tabs": {
			text:     "one\ttwo\nthree\r\nfour",
			expected: []string{"one", "two", "three", "four"},
		},
		"non ascii letters": {
			text:     "über straße",
			expected: []string{"über", "straße"},
		},
		"empty input": {
			text:     "",
			expected: nil,
		},
		"separators only": {
			text:     " \t\n.,;!?",
			expected: nil,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			var words []string

			err := Words(strings.NewReader(tc.text), func(word string) {
				words = append(words, word)
			})

			require.NoError(t, err)
			assert.Equal(t, tc.expected, words)
		})
	}
}

func TestReadWordsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello hello world"), 0o600))

	var words []string

	err := ReadWordsFile(path, UTF8, func(word string) { words = append(words, word) })

	require.NoError(t, err)
	assert.Equal(t, []string{"hello", "hello", "world"}, words)
}

func TestReadWordsFileWithLatin1Encoding(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "words.txt")
	// "café" in ISO 8859-1
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9}, 0o600))

	var words []string

	err := ReadWordsFile(path, Latin1, func(word string) { words = append(words, word) })

	require.NoError(t, err)
	assert.Equal(t, []string{"café"}, words)
}

func TestReadWordsFileNotExisting(t *testing.T) {
	t.Parallel()

	err := ReadWordsFile(filepath.Join(t.TempDir(), "no-such-file"), UTF8, func(string) {})

	require.Error(t, err)
	require.ErrorIs(t, err, ErrDatasetUnreadable)
}

func TestParseEncoding(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		value    string
		expected Encoding
		fails    bool
	}{
		"utf-8":               {value: "utf-8", expected: UTF8},
		"latin-1":             {value: "latin-1", expected: Latin1},
		"mixed case, padded":  {value: " UTF-8 ", expected: UTF8},
		"unsupported charset": {value: "utf-16", fails: true},
		"empty":               {value: "", fails: true},
	} {
		t.Run(uc, func(t *testing.T) {
			enc, err := ParseEncoding(tc.value)

			if tc.fails {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrUnsupportedEncoding)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, enc)
		})
	}
}
