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

package colors

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

const colorRows = `english,german,hex,french,italian
Red,Rot,#FF0000,Rouge,Rosso
Green,Grün,#00FF00,Vert,Verde
Blue,Blau,#0000FF,Bleu,Blu
`

// registerIndexFlags mirrors the persistent flags the parent colors
// command provides.
func registerIndexFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().StringP(flags.File, "f", "", "")
	cmd.Flags().String(flags.Encoding, "", "")
	cmd.Flags().String(flags.Separator, "", "")
	cmd.Flags().String(flags.Language, "", "")

	return cmd
}

func writeColorsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "colors.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLookupCommand(t *testing.T) {
	t.Parallel()

	testFile := writeColorsFile(t, colorRows)

	for uc, tc := range map[string]struct {
		args   func(t *testing.T) []string
		assert func(t *testing.T, err error, result string)
	}{
		"no color table configured": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"#ff0000"}
			},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "no color table configured")
			},
		},
		"no color code given": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", testFile}
			},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "accepts 1 arg(s), received 0")
			},
		},
		"malformed color code": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", testFile, "xyz"}
			},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "invalid hex value")
			},
		},
		"unknown color code": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", testFile, "#aabbcc"}
			},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "unknown color")
			},
		},
		"known color code with default language": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", testFile, "#FF0000"}
			},
			assert: func(t *testing.T, err error, result string) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "Red: rgb(255, 0, 0)\n", result)
			},
		},
		"known color code with language override": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", testFile, "--" + flags.Language, "german", "#0000ff"}
			},
			assert: func(t *testing.T, err error, result string) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "Blau: rgb(0, 0, 255)\n", result)
			},
		},
		"known color code rendered as JSON": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", testFile, "--" + flags.JSONOutput, "00ff00"}
			},
			assert: func(t *testing.T, err error, result string) {
				t.Helper()

				require.NoError(t, err)
				assert.JSONEq(t,
					`{"hex": "00ff00", "name": "Green", "count": 1, "channels": {"r": 0, "g": 255, "b": 0}}`,
					result)
			},
		},
		"semicolon separated table": {
			args: func(t *testing.T) []string {
				t.Helper()

				table := strings.ReplaceAll(colorRows, ",", ";")

				return []string{
					"-f", writeColorsFile(t, table),
					"--" + flags.Separator, ";",
					"ff0000",
				}
			},
			assert: func(t *testing.T, err error, result string) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "Red: rgb(255, 0, 0)\n", result)
			},
		},
		"separator with multiple characters": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", testFile, "--" + flags.Separator, "--", "ff0000"}
			},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "single character")
			},
		},
		"unsupported language": {
			args: func(t *testing.T) []string {
				t.Helper()

				return []string{"-f", testFile, "--" + flags.Language, "klingon", "ff0000"}
			},
			assert: func(t *testing.T, err error, _ string) {
				t.Helper()

				require.Error(t, err)
				require.ErrorContains(t, err, "unsupported language")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			// GIVEN
			cmd := registerIndexFlags(NewLookupCommand())
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

func TestColorsDumpCommand(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := registerIndexFlags(NewDumpCommand())
	cmd.SetArgs([]string{"-f", writeColorsFile(t, "english,german,hex,french,italian\nRed,Rot,#FF0000,Rouge,Rosso\n")})

	var out bytes.Buffer
	cmd.SetOut(&out)

	// WHEN
	err := cmd.Execute()

	// THEN
	require.NoError(t, err)
	assert.Contains(t, out.String(), `0 ← "ff0000" (1) [Red]`)
}

func TestColorsQueryCommand(t *testing.T) {
	t.Parallel()

	// GIVEN
	cmd := registerIndexFlags(NewQueryCommand())
	cmd.SetArgs([]string{"-f", writeColorsFile(t, colorRows)})
	cmd.SetIn(strings.NewReader("get ff0000\nrgb xyz\nexit\n"))

	var out bytes.Buffer
	cmd.SetOut(&out)

	// WHEN
	err := cmd.Execute()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "colors> Red (1)\ncolors> invalid hex value entered\ncolors> ", out.String())
}
