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

package repl

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/wema/triedex/internal/hexcolor"
	"github.com/wema/triedex/internal/index"
	"github.com/wema/triedex/internal/x"
)

type (
	foundResult struct {
		Key   string `json:"key"`
		Found bool   `json:"found"`
	}

	countResult struct {
		Key   string `json:"key"`
		Count int    `json:"count"`
	}

	deleteResult struct {
		Key     string `json:"key"`
		Deleted bool   `json:"deleted"`
	}

	sizeResult struct {
		Keys int `json:"keys"`
	}

	colorResult struct {
		index.ColorInfo

		Found bool `json:"found"`
	}

	failureResult struct {
		Error string `json:"error"`
	}
)

// respond writes the result of a single command: the human readable text,
// or the payload as a JSON line if jsonOut is set.
func respond(out io.Writer, jsonOut bool, payload any, text string) error {
	if !jsonOut {
		_, err := fmt.Fprintln(out, text)

		return err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(raw))

	return err
}

// ForWords assembles the command set of the word index prompt.
func ForWords(idx *index.WordIndex, jsonOut bool) []Command {
	return []Command{
		{
			Name: "search", Usage: "search <word>", Help: "checks if the word was indexed",
			Run: func(out io.Writer, arg string) error {
				found := idx.Contains(arg)

				return respond(out, jsonOut,
					foundResult{Key: arg, Found: found},
					x.IfThenElse(found, "found", "not found"))
			},
		},
		{
			Name: "prefix", Usage: "prefix <chars>", Help: "checks if any word starts with the given characters",
			Run: func(out io.Writer, arg string) error {
				found := idx.HasPrefix(arg)

				return respond(out, jsonOut,
					foundResult{Key: arg, Found: found},
					x.IfThenElse(found, "found", "not found"))
			},
		},
		{
			Name: "count", Usage: "count <word>", Help: "shows how often the word occurred",
			Run: func(out io.Writer, arg string) error {
				count := idx.Count(arg)

				return respond(out, jsonOut,
					countResult{Key: arg, Count: count},
					strconv.Itoa(count))
			},
		},
		{
			Name: "total", Usage: "total <chars>", Help: "sums the occurrences of all words with the given prefix",
			Run: func(out io.Writer, arg string) error {
				count := idx.CountPrefix(arg)

				return respond(out, jsonOut,
					countResult{Key: arg, Count: count},
					strconv.Itoa(count))
			},
		},
		{
			Name: "delete", Usage: "delete <word>", Help: "removes the word with all its occurrences",
			Run: func(out io.Writer, arg string) error {
				deleted := idx.Remove(arg)

				return respond(out, jsonOut,
					deleteResult{Key: arg, Deleted: deleted},
					x.IfThenElse(deleted, "deleted", "nothing to delete"))
			},
		},
		{
			Name: "len", Usage: "len", Help: "shows the number of distinct words",
			Run: func(out io.Writer, _ string) error {
				size := idx.Distinct()

				return respond(out, jsonOut, sizeResult{Keys: size}, strconv.Itoa(size))
			},
		},
		{
			Name: "dump", Usage: "dump", Help: "renders the whole tree",
			Run: func(out io.Writer, _ string) error {
				return idx.Dump(out)
			},
		},
	}
}

// ForColors assembles the command set of the color index prompt.
func ForColors(idx *index.ColorIndex, jsonOut bool) []Command {
	return []Command{
		{
			Name: "search", Usage: "search <hex>", Help: "checks if the color code was indexed",
			Run: func(out io.Writer, arg string) error {
				_, _, found := idx.Lookup(arg)

				return respond(out, jsonOut,
					foundResult{Key: hexcolor.Normalize(arg), Found: found},
					x.IfThenElse(found, "found", "not found"))
			},
		},
		{
			Name: "prefix", Usage: "prefix <chars>", Help: "checks if any color code starts with the given characters",
			Run: func(out io.Writer, arg string) error {
				found := idx.HasPrefix(arg)

				return respond(out, jsonOut,
					foundResult{Key: hexcolor.Normalize(arg), Found: found},
					x.IfThenElse(found, "found", "not found"))
			},
		},
		{
			Name: "get", Usage: "get <hex>", Help: "shows the color name and occurrence count",
			Run: func(out io.Writer, arg string) error {
				name, count, found := idx.Lookup(arg)
				if !found {
					return respond(out, jsonOut,
						foundResult{Key: hexcolor.Normalize(arg), Found: false},
						"not found")
				}

				return respond(out, jsonOut,
					colorResult{
						ColorInfo: index.ColorInfo{Hex: hexcolor.Normalize(arg), Name: name, Count: count},
						Found:     true,
					},
					fmt.Sprintf("%s (%d)", name, count))
			},
		},
		{
			Name: "rgb", Usage: "rgb <hex>", Help: "decodes the code into its decimal channel values",
			Run: func(out io.Writer, arg string) error {
				info, err := idx.Resolve(arg)

				switch {
				case errors.Is(err, hexcolor.ErrInvalidHex):
					return respond(out, jsonOut,
						failureResult{Error: "invalid hex value entered"},
						"invalid hex value entered")
				case errors.Is(err, index.ErrUnknownColor):
					return respond(out, jsonOut,
						foundResult{Key: hexcolor.Normalize(arg), Found: false},
						"not found")
				case err != nil:
					return err
				}

				return respond(out, jsonOut,
					colorResult{ColorInfo: info, Found: true},
					fmt.Sprintf("%s: %s", info.Name, info.Channels))
			},
		},
		{
			Name: "delete", Usage: "delete <hex>", Help: "removes the color code",
			Run: func(out io.Writer, arg string) error {
				deleted := idx.Remove(arg)

				return respond(out, jsonOut,
					deleteResult{Key: hexcolor.Normalize(arg), Deleted: deleted},
					x.IfThenElse(deleted, "deleted", "nothing to delete"))
			},
		},
		{
			Name: "len", Usage: "len", Help: "shows the number of distinct color codes",
			Run: func(out io.Writer, _ string) error {
				size := idx.Distinct()

				return respond(out, jsonOut, sizeResult{Keys: size}, strconv.Itoa(size))
			},
		},
		{
			Name: "dump", Usage: "dump", Help: "renders the whole tree",
			Run: func(out io.Writer, _ string) error {
				return idx.Dump(out)
			},
		},
	}
}
