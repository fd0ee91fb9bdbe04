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

package trie

import (
	"fmt"
	"io"
)

type (
	dumpSettings[V any] struct {
		formatValue func(V) string
	}

	DumpOption[V any] func(*dumpSettings[V])
)

// WithValueFormatter renders the value recorded for each terminal node
// next to its occurrence count. Without it only the count is shown.
func WithValueFormatter[V any](format func(V) string) DumpOption[V] {
	return func(s *dumpSettings[V]) {
		s.formatValue = format
	}
}

// Dump writes a tree rendering of the trie to w, one rune per level,
// children in lexicographic order. Terminal nodes are annotated with the
// full key spelled by their path and the occurrence count, e.g.
//
//	├── h
//	│   ├── e
//	│   │   └── l
//	│   │       └── l ← "hell" (1)
//	│   │           └── o ← "hello" (2)
//	└── w
//	    └── o ← "wo" (1) [wonder]
func (t *Trie[V]) Dump(w io.Writer, opts ...DumpOption[V]) error {
	settings := &dumpSettings[V]{}

	for _, opt := range opts {
		opt(settings)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.root.terminal {
		if _, err := fmt.Fprintf(w, "← %s\n", t.root.annotation(nil, settings)); err != nil {
			return err
		}
	}

	return t.root.dump(w, nil, "", settings)
}

func (n *node[V]) dump(w io.Writer, path []rune, indent string, settings *dumpSettings[V]) error {
	edges := n.sortedEdges()

	for idx, char := range edges {
		connector, continuation := "├── ", "│   "
		if idx == len(edges)-1 {
			connector, continuation = "└── ", "    "
		}

		child := n.children[char]
		childPath := append(path, char)

		line := string(char)
		if child.terminal {
			line += " ← " + child.annotation(childPath, settings)
		}

		if _, err := fmt.Fprintf(w, "%s%s%s\n", indent, connector, line); err != nil {
			return err
		}

		if err := child.dump(w, childPath, indent+continuation, settings); err != nil {
			return err
		}
	}

	return nil
}

func (n *node[V]) annotation(path []rune, settings *dumpSettings[V]) string {
	out := fmt.Sprintf("%q (%d)", string(path), n.count)

	if settings.formatValue != nil {
		out += " [" + settings.formatValue(n.value) + "]"
	}

	return out
}
