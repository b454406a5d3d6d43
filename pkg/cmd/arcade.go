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

	"github.com/consensys/go-intcode/pkg/intcode/drive"
	"github.com/consensys/go-intcode/pkg/util/termio"
	"github.com/spf13/cobra"
)

var arcadeCmd = &cobra.Command{
	Use:   "arcade [flags] program_file",
	Short: "run an arcade cabinet program.",
	Long: `Run an arcade cabinet program and report the number of blocks on screen.
	With --play, the game is played in free play mode (with the joystick
	tracking the ball) and the final score is reported instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filename = checkArgs(cmd, args)
			engine   = readEngine(filename)
			show     = GetFlag(cmd, "show")
		)
		//
		if !GetFlag(cmd, "play") {
			screen, err := drive.Draw(engine)
			//
			if err != nil {
				exitWithError(err)
			} else if show {
				fmt.Print(screen.Render())
			}
			//
			fmt.Printf("%d blocks\n", screen.CountTiles(drive.BLOCK))
			//
			return
		}
		//
		var observer func(*drive.Screen)
		//
		if show && termio.IsTerminal(os.Stdout) {
			observer = func(screen *drive.Screen) {
				// Clear screen and home cursor
				fmt.Print("\033[2J\033[H")
				fmt.Print(screen.Render())
				fmt.Printf("score: %d\n", screen.Score())
			}
		}
		//
		score, err := drive.Play(engine, observer)
		//
		if err != nil {
			exitWithError(err)
		}
		//
		fmt.Printf("final score %d\n", score)
	},
}

func init() {
	rootCmd.AddCommand(arcadeCmd)
	arcadeCmd.Flags().Bool("play", false, "play the game in free play mode")
	arcadeCmd.Flags().Bool("show", false, "render the screen")
}
