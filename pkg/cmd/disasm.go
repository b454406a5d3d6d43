// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/intcode/program"
	"github.com/consensys/go-intcode/pkg/util/termio"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] program_file",
	Short: "disassemble a program.",
	Long: `Print a listing of a given program, with one instruction per line.
	Words which cannot be decoded as instructions are listed as data.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filename = checkArgs(cmd, args)
			rom      = memory.NewRom(readProgram(filename)...)
			colour   = termio.IsTerminal(os.Stdout) && !GetFlag(cmd, "no-colour")
			width    uint
		)
		//
		lines := instruction.Disassemble(rom)
		// Determine width of raw words column
		for _, line := range lines {
			width = max(width, uint(len(program.Format(line.Words))))
		}
		//
		for _, line := range lines {
			text := line.Text
			//
			if colour && line.IsData() {
				text = termio.NewAnsiEscape().FgColour(termio.TERM_CYAN).Apply(text)
			}
			//
			raw := program.Format(line.Words)
			fmt.Printf("%6d: %s%s  %s\n", line.Address, raw, strings.Repeat(" ", int(width)-len(raw)), text)
		}
	},
}

func init() {
	rootCmd.AddCommand(disasmCmd)
	disasmCmd.Flags().Bool("no-colour", false, "disable coloured output")
}
