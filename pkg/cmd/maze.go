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

	"github.com/consensys/go-intcode/pkg/intcode/drive"
	"github.com/consensys/go-intcode/pkg/util"
	"github.com/consensys/go-intcode/pkg/util/termio"
	"github.com/spf13/cobra"
)

var mazeCmd = &cobra.Command{
	Use:   "maze [flags] program_file",
	Short: "explore a maze using a repair droid controlled by a program.",
	Long: `Explore the entire maze reachable by a repair droid controlled by the given
	program, then report the length of the shortest path to the oxygen
	system and the time taken for oxygen to fill the maze.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			filename = checkArgs(cmd, args)
			droid    = drive.NewEngineDroid(readEngine(filename))
			stats    = util.NewPerfStats()
		)
		//
		maze, err := drive.Explore(droid)
		//
		if err != nil {
			exitWithError(err)
		}
		//
		stats.Log("exploration")
		//
		if GetFlag(cmd, "show") {
			printMaze(maze)
		}
		//
		path, err := maze.ShortestPath()
		if err != nil {
			exitWithError(err)
		}
		//
		fill, err := maze.FillTime()
		if err != nil {
			exitWithError(err)
		}
		//
		fmt.Printf("shortest path %d moves\n", path)
		fmt.Printf("oxygen fills in %d minutes\n", fill)
	},
}

// Print a maze, highlighting the start and oxygen system when attached to a
// terminal.  Mazes wider than the terminal are not rendered.
func printMaze(maze *drive.Maze) {
	var (
		text     = maze.Render()
		width, _ = termio.GetSize(os.Stdout)
	)
	//
	if n := strings.Index(text, "\n"); n > int(width) {
		fmt.Printf("(maze too wide to render: %d columns)\n", n)
		return
	}
	//
	if termio.IsTerminal(os.Stdout) {
		text = strings.ReplaceAll(text, "D", termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW).Apply("D"))
		text = strings.ReplaceAll(text, "O", termio.BoldAnsiEscape().FgColour(termio.TERM_GREEN).Apply("O"))
	}
	//
	fmt.Print(text)
}

func init() {
	rootCmd.AddCommand(mazeCmd)
	mazeCmd.Flags().Bool("show", false, "render the explored maze")
}
