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

package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogging uses the given conf to configure the global log.Logger
// variable. Diagnostics go to stderr, so dataset dumps and query results
// on stdout stay machine readable.
func ConfigureLogging(conf LogConfig) {
	zerolog.SetGlobalLevel(conf.Level)

	if conf.Format == LogTextFormat {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		return
	}

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}
