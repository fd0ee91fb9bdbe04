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

package colors

import (
	"github.com/spf13/cobra"

	"github.com/wema/triedex/cmd/flags"
	"github.com/wema/triedex/internal/repl"
)

// NewQueryCommand represents the "colors query" command.
func NewQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query",
		Short:   "Starts an interactive prompt for querying the color index",
		Example: "triedex colors query -f colors.csv --language german",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := buildIndex(cmd)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool(flags.JSONOutput)

			return repl.New("colors> ", repl.ForColors(idx, jsonOut)...).
				Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool(flags.JSONOutput, false, "Render query results as JSON")

	return cmd
}
