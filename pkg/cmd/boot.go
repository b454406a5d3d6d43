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

var bootCmd = &cobra.Command{
	Use:   "boot [flags] program_file",
	Short: "run a program with boot parameters.",
	Long: `Run a program after setting its boot parameters (i.e. the noun and verb at
	addresses 1 and 2), and print the value left at address 0.  With
	--target, search instead for the parameters which produce a given
	value, printing 100*noun+verb.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filename = checkArgs(cmd, args)
			engine   = readEngine(filename)
		)
		//
		if cmd.Flags().Changed("target") {
			result, err := drive.SearchBoot(engine, GetInt(cmd, "target"), GetInt(cmd, "limit"))
			//
			if err != nil {
				exitWithError(err)
			}
			//
			fmt.Println(result)
		} else {
			result, err := drive.RunBoot(engine, GetInt(cmd, "noun"), GetInt(cmd, "verb"))
			//
			if err != nil {
				exitWithError(err)
			}
			//
			fmt.Println(result)
		}
	},
}

func init() {
	rootCmd.AddCommand(bootCmd)
	bootCmd.Flags().Int64("noun", 12, "value for address 1")
	bootCmd.Flags().Int64("verb", 2, "value for address 2")
	bootCmd.Flags().Int64("target", 0, "search for parameters producing this value")
	bootCmd.Flags().Int64("limit", 100, "exclusive upper bound on searched parameters")
}
