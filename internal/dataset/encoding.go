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
	"errors"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/wema/triedex/internal/x/errorchain"
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Encoding names the character set a dataset file is stored in. Older
// dictionary and color table exports come as ISO 8859-1.
type Encoding string

const (
	UTF8   Encoding = "utf-8"
	Latin1 Encoding = "latin-1"
)

func ParseEncoding(value string) (Encoding, error) {
	enc := Encoding(strings.ToLower(strings.TrimSpace(value)))

	switch enc {
	case UTF8, Latin1:
		return enc, nil
	default:
		return "", errorchain.NewWithMessagef(ErrUnsupportedEncoding,
			"%q is not one of [%s %s]", value, UTF8, Latin1)
	}
}

func (e Encoding) wrap(source io.Reader) io.Reader {
	if e == Latin1 {
		return charmap.ISO8859_1.NewDecoder().Reader(source)
	}

	return source
}
