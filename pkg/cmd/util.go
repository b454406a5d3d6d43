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
	"strconv"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/intcode/program"
	"github.com/consensys/go-intcode/pkg/util/source"
	"github.com/consensys/go-intcode/pkg/util/termio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// EXIT_USAGE is the exit code for a malformed command line.
const EXIT_USAGE = 1

// EXIT_INPUT is the exit code for a program file which cannot be read or
// parsed, or for malformed flag values.
const EXIT_INPUT = 2

// EXIT_EXECUTION is the exit code for a program which fails during execution.
const EXIT_EXECUTION = 3

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_INPUT)
	}

	return r
}

// GetUint gets an expected unsigned integer flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_INPUT)
	}

	return r
}

// GetInt gets an expected integer flag, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_INPUT)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_INPUT)
	}

	return r
}

// GetStringArray gets an expected string array flag, or exits if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(EXIT_INPUT)
	}

	return r
}

// Check the command was given exactly one program file, and configure logging.
func checkArgs(cmd *cobra.Command, args []string) string {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(EXIT_USAGE)
	}
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	return args[0]
}

// Read a program file and construct an engine from it, exiting if the file
// cannot be read or parsed.
func readEngine(filename string, opts ...machine.Option) *machine.Engine {
	return machine.NewFromWords(readProgram(filename), opts...)
}

// Read and parse a program file, exiting if this fails.
func readProgram(filename string) []int64 {
	_, words, err := program.ReadFile(filename)
	//
	if err != nil {
		var synErr *source.SyntaxError
		//
		if errors.As(err, &synErr) {
			printSyntaxError(synErr)
		} else {
			fmt.Println(err)
		}
		//
		os.Exit(EXIT_INPUT)
	}
	//
	log.Debugf("read %d words from %s", len(words), filename)
	//
	return words
}

// Report an error arising during execution, and exit.
func exitWithError(err error) {
	log.Error(err)
	os.Exit(EXIT_EXECUTION)
}

// Parse a comma-separated list of integers given as a flag value, such as
// "1,2,3".  An empty string gives an empty list.
func parseValues(flag string, text string) []int64 {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	//
	values, err := program.Parse(text)
	//
	if err != nil {
		fmt.Printf("invalid --%s value: %s\n", flag, err)
		os.Exit(EXIT_INPUT)
	}
	//
	return values
}

// Parse a memory assignment of the form "address=value".
func parsePoke(text string) (uint, int64) {
	var (
		address uint64
		value   int64
	)
	//
	split := strings.SplitN(text, "=", 2)
	err := errors.Errorf("expected address=value, got \"%s\"", text)
	//
	if len(split) == 2 {
		if address, err = strconv.ParseUint(strings.TrimSpace(split[0]), 10, 64); err == nil {
			value, err = strconv.ParseInt(strings.TrimSpace(split[1]), 10, 64)
		}
	}
	//
	if err != nil {
		fmt.Printf("invalid --poke value: %s\n", err)
		os.Exit(EXIT_INPUT)
	}
	//
	return uint(address), value
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	var (
		span      = err.Span()
		line      = err.FirstEnclosingLine()
		highlight = strings.Repeat("^", max(1, span.Length()))
	)
	// Print error + line number
	fmt.Printf("%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line
	fmt.Println(line.String())
	// Print indent
	fmt.Print(strings.Repeat(" ", max(0, span.Start()-line.Start())))
	// Print highlight
	if termio.IsTerminal(os.Stdout) {
		highlight = termio.BoldAnsiEscape().FgColour(termio.TERM_RED).Apply(highlight)
	}
	//
	fmt.Println(highlight)
}
