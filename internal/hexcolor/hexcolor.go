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

// Package hexcolor converts 6-digit hexadecimal color codes into their
// decimal channel values.
package hexcolor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wema/triedex/internal/x/errorchain"
)

var ErrInvalidHex = errors.New("invalid hex value")

const codeLength = 6

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Normalize strips a leading '#' and lowercases the code. It is applied
// to every hex string before it is used as a trie key, so "#FF0000",
// "FF0000" and "ff0000" address the same entry.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimPrefix(code, "#"))
}

// Decode parses a normalized or raw color code into its three channels.
// Anything but exactly six hex digits results in an error wrapping
// ErrInvalidHex.
func Decode(code string) (RGB, error) {
	normalized := Normalize(code)

	if len(normalized) != codeLength {
		return RGB{}, errorchain.NewWithMessagef(ErrInvalidHex,
			"expected %d hex digits, got %d", codeLength, len(normalized))
	}

	var channels [3]uint8

	for idx := range channels {
		value, err := strconv.ParseUint(normalized[2*idx:2*idx+2], 16, 8)
		if err != nil {
			return RGB{}, errorchain.NewWithMessagef(ErrInvalidHex,
				"%q is not hexadecimal", normalized[2*idx:2*idx+2])
		}

		channels[idx] = uint8(value)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
