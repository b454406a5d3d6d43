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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/util"
	"github.com/consensys/go-intcode/pkg/util/termio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program_file",
	Short: "execute a program.",
	Long: `Execute a given program until it halts, printing every value it outputs.
	Input values can be supplied up front, or entered interactively
	whenever the program waits for input.`,
	Run: func(cmd *cobra.Command, args []string) {
		var console *termio.Console
		//
		filename := checkArgs(cmd, args)
		trace := GetFlag(cmd, "trace")
		inputs := parseValues("input", GetString(cmd, "input"))
		maxSteps := GetUint(cmd, "max-steps")
		interactive := GetFlag(cmd, "interactive") || (len(inputs) == 0 && termio.IsTerminal(os.Stdin))
		//
		if trace {
			log.SetLevel(log.DebugLevel)
		}
		//
		engine := readEngine(filename, machine.WithTrace(trace), machine.WithInput(inputs...))
		//
		for _, poke := range GetStringArray(cmd, "poke") {
			address, value := parsePoke(poke)
			//
			if err := engine.Poke(address, value); err != nil {
				fmt.Printf("invalid --poke value: %s\n", err)
				os.Exit(EXIT_INPUT)
			}
		}
		//
		if interactive {
			var err error
			//
			if console, err = termio.NewConsole("input> "); err != nil {
				fmt.Println(err)
				os.Exit(EXIT_USAGE)
			}
		}
		//
		stats := util.NewPerfStats()
		state, err := runInteractive(engine, maxSteps, console)
		//
		if console != nil {
			if rerr := console.Restore(); rerr != nil {
				log.Warn(rerr)
			}
		}
		//
		stats.LogSteps("run", engine.Steps())
		printOutputs(engine, nil)
		//
		if GetFlag(cmd, "memory") {
			fmt.Println(engine.DumpMemory())
		}
		//
		if err != nil {
			exitWithError(err)
		} else if state == machine.WAIT {
			exitWithError(errors.Errorf("program waiting for input at %d", engine.Cursor()))
		}
	},
}

// Run an engine until it halts, or until it waits for input which cannot be
// supplied.  When a console is given, input is read from it line by line and
// outputs are echoed as they arise.  A non-zero step limit bounds the total
// number of instructions executed.
func runInteractive(engine *machine.Engine, maxSteps uint, console *termio.Console) (machine.State, error) {
	for {
		state, err := runLimited(engine, maxSteps)
		//
		if err != nil || state != machine.WAIT || console == nil {
			return state, err
		}
		//
		printOutputs(engine, console)
		//
		line, err := console.ReadLine()
		//
		if errors.Is(err, io.EOF) {
			return state, nil
		} else if err != nil {
			return state, err
		}
		//
		value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		//
		if err != nil {
			if err = console.Println(fmt.Sprintf("invalid integer \"%s\"", line)); err != nil {
				return state, err
			}
			//
			continue
		}
		//
		engine.PushInput(value)
	}
}

func runLimited(engine *machine.Engine, maxSteps uint) (machine.State, error) {
	if maxSteps == 0 {
		return engine.Run()
	} else if engine.Steps() >= maxSteps {
		return engine.State(), errors.Errorf("step limit (%d) reached", maxSteps)
	}
	//
	_, state, err := engine.Execute(maxSteps - engine.Steps())
	//
	if err == nil && state == machine.NEXT {
		return state, errors.Errorf("step limit (%d) reached", maxSteps)
	}
	//
	return state, err
}

// Print (and drain) all outputs of a given engine, either to a console or to
// stdout.
func printOutputs(engine *machine.Engine, console *termio.Console) {
	for _, output := range engine.Outputs() {
		if console == nil {
			fmt.Println(output)
		} else if err := console.Println(strconv.FormatInt(output, 10)); err != nil {
			log.Warn(err)
		}
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("input", "", "comma-separated input values (e.g. 1,2,3)")
	runCmd.Flags().StringArray("poke", []string{}, "set memory before execution (e.g. 1=12)")
	runCmd.Flags().Uint("max-steps", 0, "maximum number of instructions to execute (0 for no limit)")
	runCmd.Flags().Bool("trace", false, "log each instruction as it is executed")
	runCmd.Flags().Bool("interactive", false, "read input values from the terminal")
	runCmd.Flags().Bool("memory", false, "print final memory contents")
}
