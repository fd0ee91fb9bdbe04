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

// Package index offers the two domain views on the prefix tree: a word
// frequency index and a hex color lookup table.
package index

import (
	"io"

	"github.com/wema/triedex/internal/trie"
)

// WordIndex counts word occurrences. It is a thin facade over the trie,
// so callers never deal with node internals.
type WordIndex struct {
	tree *trie.Trie[struct{}]
}

func NewWordIndex() *WordIndex {
	return &WordIndex{tree: trie.New[struct{}]()}
}

func (i *WordIndex) Add(word string) {
	i.tree.Insert(word, struct{}{})
}

// Contains reports whether word itself was added, not just a longer word
// starting with it.
func (i *WordIndex) Contains(word string) bool {
	return i.tree.Search(word)
}

func (i *WordIndex) HasPrefix(prefix string) bool {
	return i.tree.StartsWith(prefix)
}

// Count returns how often word was added, 0 if never.
func (i *WordIndex) Count(word string) int {
	entry, ok := i.tree.Get(word)
	if !ok {
		return 0
	}

	return entry.Count
}

// CountPrefix returns the total number of added words starting with
// prefix, duplicates included.
func (i *WordIndex) CountPrefix(prefix string) int {
	return i.tree.CountWithPrefix(prefix)
}

// Remove forgets word entirely, with all its occurrences. It reports
// whether the word was present.
func (i *WordIndex) Remove(word string) bool {
	return i.tree.Delete(word)
}

// Distinct returns the number of different words in the index.
func (i *WordIndex) Distinct() int {
	return i.tree.Len()
}

func (i *WordIndex) Empty() bool {
	return i.tree.Empty()
}

func (i *WordIndex) Dump(out io.Writer) error {
	return i.tree.Dump(out)
}
