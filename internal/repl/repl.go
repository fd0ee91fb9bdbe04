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

// Package repl drives the interactive query prompt. It reads one command
// per line from the given reader and writes every result to the given
// writer, so it is fully scriptable and testable without a terminal.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type Command struct {
	Name  string
	Usage string
	Help  string
	Run   func(out io.Writer, arg string) error
}

type REPL struct {
	prompt   string
	commands []Command
}

func New(prompt string, commands ...Command) *REPL {
	return &REPL{prompt: prompt, commands: commands}
}

// Run processes commands until "exit", "quit" or the end of the input.
// Command failures are reported to out and do not terminate the loop;
// only a broken input stream does.
func (r *REPL) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, r.prompt)

		if !scanner.Scan() {
			fmt.Fprintln(out)

			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		name, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch name {
		case "exit", "quit":
			return nil
		case "help":
			r.printHelp(out)

			continue
		}

		command, known := r.lookup(name)
		if !known {
			fmt.Fprintf(out, "unknown command %q - type 'help' for a list of commands\n", name)

			continue
		}

		if err := command.Run(out, arg); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func (r *REPL) lookup(name string) (Command, bool) {
	for _, command := range r.commands {
		if command.Name == name {
			return command, true
		}
	}

	return Command{}, false
}

func (r *REPL) printHelp(out io.Writer) {
	for _, command := range r.commands {
		fmt.Fprintf(out, "  %-18s %s\n", command.Usage, command.Help)
	}

	fmt.Fprintf(out, "  %-18s %s\n", "help", "shows this help")
	fmt.Fprintf(out, "  %-18s %s\n", "exit", "leaves the prompt")
}
