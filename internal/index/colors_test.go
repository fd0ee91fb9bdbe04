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

package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wema/triedex/internal/hexcolor"
)

func TestColorIndexLookup(t *testing.T) {
	t.Parallel()

	idx := NewColorIndex()
	idx.Add("#FF0000", "Red")
	idx.Add("00ff00", "Green")

	name, count, ok := idx.Lookup("ff0000")
	require.True(t, ok)
	assert.Equal(t, "Red", name)
	assert.Equal(t, 1, count)

	name, _, ok = idx.Lookup("#00FF00")
	require.True(t, ok)
	assert.Equal(t, "Green", name)

	_, _, ok = idx.Lookup("0000ff")
	assert.False(t, ok)
}

func TestColorIndexRepeatedAddKeepsFirstName(t *testing.T) {
	t.Parallel()

	idx := NewColorIndex()
	idx.Add("ff0000", "Red")
	idx.Add("#FF0000", "Crimson")

	name, count, ok := idx.Lookup("ff0000")
	require.True(t, ok)
	assert.Equal(t, "Red", name)
	assert.Equal(t, 2, count)
	assert.Equal(t, 1, idx.Distinct())
}

func TestColorIndexResolve(t *testing.T) {
	t.Parallel()

	idx := NewColorIndex()
	idx.Add("ff0000", "Red")

	for uc, tc := range map[string]struct {
		hex      string
		expected ColorInfo
		expErr   error
	}{
		"known color": {
			hex: "#FF0000",
			expected: ColorInfo{
				Hex:      "ff0000",
				Name:     "Red",
				Count:    1,
				Channels: hexcolor.RGB{R: 255},
			},
		},
		"well-formed but not indexed": {hex: "0000ff", expErr: ErrUnknownColor},
		"malformed code":              {hex: "xyz", expErr: hexcolor.ErrInvalidHex},
		"empty code":                  {hex: "", expErr: hexcolor.ErrInvalidHex},
	} {
		t.Run(uc, func(t *testing.T) {
			info, err := idx.Resolve(tc.hex)

			if tc.expErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.expErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, info)
		})
	}
}

func TestColorIndexRemove(t *testing.T) {
	t.Parallel()

	idx := NewColorIndex()
	idx.Add("ff0000", "Red")

	require.True(t, idx.Remove("#FF0000"))
	require.False(t, idx.Remove("ff0000"))
	assert.True(t, idx.Empty())
}

func TestColorIndexHasPrefix(t *testing.T) {
	t.Parallel()

	idx := NewColorIndex()
	idx.Add("ff0000", "Red")

	assert.True(t, idx.HasPrefix("#FF"))
	assert.True(t, idx.HasPrefix("ff0000"))
	assert.False(t, idx.HasPrefix("0f"))
}

func TestColorIndexDump(t *testing.T) {
	t.Parallel()

	idx := NewColorIndex()
	idx.Add("ab", "Red")

	var out strings.Builder

	require.NoError(t, idx.Dump(&out))
	assert.Equal(t, "└── a\n    └── b ← \"ab\" (1) [Red]\n", out.String())
}
