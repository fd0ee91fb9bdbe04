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

	"github.com/wema/triedex/cmd/colors"
	"github.com/wema/triedex/cmd/flags"
)

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(newColorsCmd())
}

func newColorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "Commands for working with the color code index",
	}

	flags.RegisterGlobalFlags(cmd)

	cmd.PersistentFlags().StringP(flags.File, "f", "",
		"Path to the color table to index.\nOverrides the configured colors.file value.")
	cmd.PersistentFlags().String(flags.Encoding, "",
		"Encoding of the color table (utf-8 or latin-1).\nOverrides the configured colors.encoding value.")
	cmd.PersistentFlags().String(flags.Separator, "",
		"Column separator of the color table.\nOverrides the configured colors.separator value.")
	cmd.PersistentFlags().String(flags.Language, "",
		"Language of the color names to index (english, german,\nfrench or italian). Overrides the configured\ncolors.language value.")

	cmd.AddCommand(colors.NewQueryCommand())
	cmd.AddCommand(colors.NewLookupCommand())
	cmd.AddCommand(colors.NewDumpCommand())

	return cmd
}
