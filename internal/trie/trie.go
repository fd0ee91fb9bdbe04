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

// Package trie implements a character-level prefix tree with per-key
// occurrence counting and an optional value recorded at the moment a key
// first becomes terminal. Mutations are guarded by a single lock, queries
// run under a shared read lock.
package trie

import (
	"slices"
	"sync"
)

type (
	// Entry is a snapshot of the data attached to a terminal node.
	Entry[V any] struct {
		Count int
		Value V
	}

	node[V any] struct {
		children map[rune]*node[V]
		terminal bool
		count    int
		value    V
	}

	Trie[V any] struct {
		mu   sync.RWMutex
		root *node[V]
		size int
	}
)

func New[V any]() *Trie[V] {
	return &Trie[V]{root: newNode[V]()}
}

func newNode[V any]() *node[V] {
	return &node[V]{children: make(map[rune]*node[V])}
}

// Insert adds key to the trie, creating path nodes on demand. The first
// insertion of a key records value and sets its occurrence count to 1.
// Every further insertion of the same key only increments the count, the
// recorded value is kept. The empty key marks the root terminal.
func (t *Trie[V]) Insert(key string, value V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := t.root

	for _, char := range key {
		child, ok := current.children[char]
		if !ok {
			child = newNode[V]()
			current.children[char] = child
		}

		current = child
	}

	if current.terminal {
		current.count++

		return
	}

	current.terminal = true
	current.count = 1
	current.value = value
	t.size++
}

// Search reports whether key was inserted. A key present only as a strict
// prefix of longer keys yields false.
func (t *Trie[V]) Search(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	found := t.root.lookup(key)

	return found != nil && found.terminal
}

// StartsWith reports whether at least one inserted key has the given
// prefix, the prefix itself included if it was inserted.
func (t *Trie[V]) StartsWith(prefix string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.root.lookup(prefix) != nil
}

// Get returns a copy of the occurrence count and the value recorded for
// key. The second return value is false if key was never inserted.
func (t *Trie[V]) Get(key string) (Entry[V], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	found := t.root.lookup(key)
	if found == nil || !found.terminal {
		return Entry[V]{}, false
	}

	return Entry[V]{Count: found.count, Value: found.value}, true
}

// Delete removes key from the trie and prunes every node on its path that
// became non-terminal and childless, stopping at the first ancestor which
// is itself terminal or still has other children. Other keys, including
// prefixes and extensions of key, are left untouched. Deleting an absent
// key is a no-op and yields false.
func (t *Trie[V]) Delete(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	deleted, _ := t.root.remove([]rune(key))
	if deleted {
		t.size--
	}

	return deleted
}

// Len returns the number of distinct keys in the trie.
func (t *Trie[V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.size
}

// Empty reports whether the trie is equivalent to a freshly constructed
// one.
func (t *Trie[V]) Empty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return !t.root.terminal && len(t.root.children) == 0
}

// CountWithPrefix returns the sum of the occurrence counts of all keys
// having the given prefix.
func (t *Trie[V]) CountWithPrefix(prefix string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	found := t.root.lookup(prefix)
	if found == nil {
		return 0
	}

	return found.sumCounts()
}

// Walk visits every key in lexicographic rune order and stops as soon as
// fn returns false.
func (t *Trie[V]) Walk(fn func(key string, entry Entry[V]) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	t.root.walk(nil, fn)
}

func (t *Trie[V]) Clone() *Trie[V] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return &Trie[V]{root: t.root.clone(), size: t.size}
}

func (n *node[V]) lookup(key string) *node[V] {
	current := n

	for _, char := range key {
		child, ok := current.children[char]
		if !ok {
			return nil
		}

		current = child
	}

	return current
}

// remove reports whether a key was deleted and whether the node it was
// called on became prunable, so the caller can drop the edge to it. The
// prune signal propagates upward only while the unwound nodes are neither
// terminal nor have children left.
func (n *node[V]) remove(key []rune) (deleted, prune bool) {
	if len(key) == 0 {
		if !n.terminal {
			return false, false
		}

		var zero V

		n.terminal = false
		n.count = 0
		n.value = zero

		return true, len(n.children) == 0
	}

	child, ok := n.children[key[0]]
	if !ok {
		return false, false
	}

	deleted, prune = child.remove(key[1:])
	if prune {
		delete(n.children, key[0])

		return deleted, !n.terminal && len(n.children) == 0
	}

	return deleted, false
}

func (n *node[V]) sumCounts() int {
	sum := n.count

	for _, child := range n.children {
		sum += child.sumCounts()
	}

	return sum
}

func (n *node[V]) walk(prefix []rune, fn func(string, Entry[V]) bool) bool {
	if n.terminal && !fn(string(prefix), Entry[V]{Count: n.count, Value: n.value}) {
		return false
	}

	for _, char := range n.sortedEdges() {
		if !n.children[char].walk(append(prefix, char), fn) {
			return false
		}
	}

	return true
}

func (n *node[V]) sortedEdges() []rune {
	edges := make([]rune, 0, len(n.children))

	for char := range n.children {
		edges = append(edges, char)
	}

	slices.Sort(edges)

	return edges
}

func (n *node[V]) clone() *node[V] {
	out := &node[V]{
		children: make(map[rune]*node[V], len(n.children)),
		terminal: n.terminal,
		count:    n.count,
		value:    n.value,
	}

	for char, child := range n.children {
		out.children[char] = child.clone()
	}

	return out
}
