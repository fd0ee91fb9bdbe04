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
	"errors"
	"io"

	"github.com/wema/triedex/internal/hexcolor"
	"github.com/wema/triedex/internal/trie"
	"github.com/wema/triedex/internal/x/errorchain"
)

var ErrUnknownColor = errors.New("unknown color")

// ColorInfo is the full answer to a color query: the normalized code, the
// display name recorded first, how often the code occurred in the dataset
// and the decoded channel values.
type ColorInfo struct {
	Hex      string       `json:"hex"`
	Name     string       `json:"name"`
	Count    int          `json:"count"`
	Channels hexcolor.RGB `json:"channels"`
}

// ColorIndex maps normalized hex codes to display names.
type ColorIndex struct {
	tree *trie.Trie[string]
}

func NewColorIndex() *ColorIndex {
	return &ColorIndex{tree: trie.New[string]()}
}

// Add records a display name for the given code. The code is normalized
// first, so "#FF0000" and "ff0000" are the same entry. A repeated code
// raises its occurrence count, the name recorded first wins.
func (i *ColorIndex) Add(hex, name string) {
	i.tree.Insert(hexcolor.Normalize(hex), name)
}

// Lookup returns the display name and the occurrence count for a code.
func (i *ColorIndex) Lookup(hex string) (string, int, bool) {
	entry, ok := i.tree.Get(hexcolor.Normalize(hex))
	if !ok {
		return "", 0, false
	}

	return entry.Value, entry.Count, true
}

// Resolve decodes the code into its RGB channels and combines them with
// the indexed name. A malformed code results in an error wrapping
// hexcolor.ErrInvalidHex, a well-formed but unknown one in an error
// wrapping ErrUnknownColor.
func (i *ColorIndex) Resolve(hex string) (ColorInfo, error) {
	normalized := hexcolor.Normalize(hex)

	channels, err := hexcolor.Decode(normalized)
	if err != nil {
		return ColorInfo{}, err
	}

	entry, ok := i.tree.Get(normalized)
	if !ok {
		return ColorInfo{}, errorchain.NewWithMessagef(ErrUnknownColor, "%s", normalized)
	}

	return ColorInfo{
		Hex:      normalized,
		Name:     entry.Value,
		Count:    entry.Count,
		Channels: channels,
	}, nil
}

func (i *ColorIndex) HasPrefix(prefix string) bool {
	return i.tree.StartsWith(hexcolor.Normalize(prefix))
}

func (i *ColorIndex) Remove(hex string) bool {
	return i.tree.Delete(hexcolor.Normalize(hex))
}

func (i *ColorIndex) Distinct() int {
	return i.tree.Len()
}

func (i *ColorIndex) Empty() bool {
	return i.tree.Empty()
}

func (i *ColorIndex) Dump(out io.Writer) error {
	return i.tree.Dump(out, trie.WithValueFormatter[string](func(name string) string { return name }))
}
