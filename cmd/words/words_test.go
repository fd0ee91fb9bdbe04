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

package words

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wema/triedex/cmd/flags"
)

// registerIndexFlags mirrors the persistent flags the parent words
// command provides.
func registerIndexFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().StringP(flags.File, "f", "", "")
	cmd.Flags().String(flags.Encoding, "", "")

	return cmd
}

func writeWordsFile(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestCountCommand(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		args   func(t *testing.T) []string
		assert func(t *testing.T, err error, result string)
	}{
		"no word list configured": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{}
			},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "no word list configured")
			},
		},
		"word list file does not exist": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", "/does/not/exist"}
			},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "failed to open word dataset")
			},
		},
		"unsupported encoding": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", writeWordsFile(t, []byte("hello")), "--" + flags.Encoding, "utf-16"}
			},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "unsupported encoding")
			},
		},
		"counts for the given words": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", writeWordsFile(t, []byte("Hello, hello world!")), "hello", "mars"}
			},
			assert: func(t *testing.T, err error, result string) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "hello: 2\nmars: 0\n", result)
			},
		},
		"distinct count without arguments": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", writeWordsFile(t, []byte("Hello, hello world!"))}
			},
			assert: func(t *testing.T, err error, result string) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "2\n", result)
			},
		},
		"latin-1 encoded word list": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{
					"-f", writeWordsFile(t, []byte{'c', 'a', 'f', 0xe9}),
					"--" + flags.Encoding, "latin-1",
					"café",
				}
			},
			assert: func(t *testing.T, err error, result string) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "café: 1\n", result)
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			cmd := registerIndexFlags(NewCountCommand())
			cmd.SetArgs(tc.args(t))

			var out bytes.Buffer
			cmd.SetOut(&out)

			// WHEN
			err := cmd.Execute()

			// THEN
			tc.assert(t, err, out.String())
		})
	}
}

func TestDumpCommand(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := registerIndexFlags(NewDumpCommand())
	cmd.SetArgs([]string{"-f", writeWordsFile(t, []byte("hi"))})

	var out bytes.Buffer
	cmd.SetOut(&out)

	// WHEN
	err := cmd.Execute()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "└── h\n    └── i ← \"hi\" (1)\n", out.String())
}

func TestQueryCommand(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := registerIndexFlags(NewQueryCommand())
	cmd.SetArgs([]string{"-f", writeWordsFile(t, []byte("Hello hello world"))})
	cmd.SetIn(strings.NewReader("count hello\nsearch mars\nexit\n"))

	var out bytes.Buffer
	cmd.SetOut(&out)

	// WHEN
	err := cmd.Execute()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "words> 2\nwords> not found\nwords> ", out.String())
}

func TestQueryCommandWithJSONOutput(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := registerIndexFlags(NewQueryCommand())
	cmd.SetArgs([]string{
		"-f", writeWordsFile(t, []byte("Hello hello world")),
		"--" + flags.JSONOutput,
	})
	cmd.SetIn(strings.NewReader("count hello\nexit\n"))

	var out bytes.Buffer
	cmd.SetOut(&out)

	// WHEN
	err := cmd.Execute()

	// THEN
	require.NoError(t, err)
	assert.JSONEq(t, `{"key": "hello", "count": 2}`,
		strings.TrimPrefix(strings.TrimSuffix(out.String(), "\nwords> "), "words> "))
}
