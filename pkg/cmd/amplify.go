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

	"github.com/consensys/go-intcode/pkg/intcode/drive"
	"github.com/spf13/cobra"
)

var amplifyCmd = &cobra.Command{
	Use:   "amplify [flags] program_file",
	Short: "find the highest thruster signal from a chain of amplifiers.",
	Long: `Run a chain of amplifiers, each a copy of the given program, over every
	ordering of the phase settings and report the highest signal.  With
	--feedback, the amplifiers are connected in a ring.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filename = checkArgs(cmd, args)
			feedback = GetFlag(cmd, "feedback")
			phases   = parseValues("phases", GetString(cmd, "phases"))
			engine   = readEngine(filename)
		)
		//
		if len(phases) == 0 && feedback {
			phases = []int64{5, 6, 7, 8, 9}
		} else if len(phases) == 0 {
			phases = []int64{0, 1, 2, 3, 4}
		}
		//
		signal, order, err := drive.MaxSignal(engine, phases, feedback)
		//
		if err != nil {
			exitWithError(err)
		}
		//
		fmt.Printf("%d (phases %v)\n", signal, order)
	},
}

func init() {
	rootCmd.AddCommand(amplifyCmd)
	amplifyCmd.Flags().Bool("feedback", false, "connect amplifiers in a feedback ring")
	amplifyCmd.Flags().String("phases", "", "comma-separated phase settings (default 0-4, or 5-9 with --feedback)")
}
