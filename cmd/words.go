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

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wema/triedex/cmd/flags"
	"github.com/wema/triedex/cmd/words"
)

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(newWordsCmd())
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Commands for working with the word occurrence index",
	}

	flags.RegisterGlobalFlags(cmd)

	cmd.PersistentFlags().StringP(flags.File, "f", "",
		"Path to the text file to index.\nOverrides the configured words.file value.")
	cmd.PersistentFlags().String(flags.Encoding, "",
		"Encoding of the text file (utf-8 or latin-1).\nOverrides the configured words.encoding value.")

	cmd.AddCommand(words.NewQueryCommand())
	cmd.AddCommand(words.NewCountCommand())
	cmd.AddCommand(words.NewDumpCommand())

	return cmd
}
