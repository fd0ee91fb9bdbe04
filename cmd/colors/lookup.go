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
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/wema/triedex/cmd/flags"
)

// NewLookupCommand represents the "colors lookup" command.
func NewLookupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lookup <hex>",
		Short:   "Resolves a hex color code to its name and channel values",
		Example: "triedex colors lookup -f colors.csv '#ff0000'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := buildIndex(cmd)
			if err != nil {
				return err
			}

			info, err := idx.Resolve(args[0])
			if err != nil {
				return err
			}

			if jsonOut, _ := cmd.Flags().GetBool(flags.JSONOutput); jsonOut {
				raw, err := json.Marshal(info)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), string(raw))

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", info.Name, info.Channels)

			return nil
		},
	}

	cmd.Flags().Bool(flags.JSONOutput, false, "Render the result as JSON")

	return cmd
}
