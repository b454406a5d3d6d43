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

var paintCmd = &cobra.Command{
	Use:   "paint [flags] program_file",
	Short: "paint a hull using a robot controlled by a program.",
	Long: `Run a hull painting robot controlled by the given program, then print the
	number of panels painted followed by the hull itself.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filename = checkArgs(cmd, args)
			brain    = drive.NewEngineBrain(readEngine(filename))
			start    = drive.BLACK
		)
		//
		if GetFlag(cmd, "white") {
			start = drive.WHITE
		}
		//
		hull, err := drive.Paint(brain, start)
		//
		if err != nil {
			exitWithError(err)
		}
		//
		fmt.Printf("%d panels painted\n", hull.Painted())
		fmt.Print(hull.Render())
	},
}

func init() {
	rootCmd.AddCommand(paintCmd)
	paintCmd.Flags().Bool("white", false, "start the robot on a white panel")
}
