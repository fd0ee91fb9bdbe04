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

package words

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCountCommand represents the "words count" command.
func NewCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "count [word ...]",
		Short:   "Shows how often the given words occurred, or the number of distinct words",
		Example: "triedex words count -f faust.txt der die das",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := buildIndex(cmd)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), idx.Distinct())

				return nil
			}

			for _, word := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", word, idx.Count(word))
			}

			return nil
		},
	}
}
