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
	"github.com/spf13/cobra"
)

// NewDumpCommand represents the "words dump" command.
func NewDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dump",
		Short:   "Renders the word index tree",
		Example: "triedex words dump -f faust.txt",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := buildIndex(cmd)
			if err != nil {
				return err
			}

			return idx.Dump(cmd.OutOrStdout())
		},
	}
}
