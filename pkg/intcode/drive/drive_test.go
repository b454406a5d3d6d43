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
package drive

import (
	"strings"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// ===================================================================
// Boot
// ===================================================================

func Test_Boot_00(t *testing.T) {
	assert := assert.New(t)
	//
	result, err := RunBoot(check_Engine(t, "1,0,0,0,99"), 4, 4)
	assert.NoError(err)
	assert.Equal(int64(198), result)
}

func Test_Boot_01(t *testing.T) {
	assert := assert.New(t)
	engine := check_Engine(t, "1,0,0,0,99")
	//
	result, err := SearchBoot(engine, 198, 5)
	assert.NoError(err)
	assert.Equal(int64(404), result)
	// Search leaves the engine untouched
	assert.Equal("1,0,0,0,99", engine.DumpMemory())
}

func Test_Boot_02(t *testing.T) {
	assert := assert.New(t)
	//
	_, err := SearchBoot(check_Engine(t, "1,0,0,0,99"), 12345, 5)
	assert.Error(err)
}

func Test_Boot_03(t *testing.T) {
	assert := assert.New(t)
	// Waiting for input is not a valid boot
	_, err := RunBoot(check_Engine(t, "3,0,99"), 0, 0)
	assert.Error(err)
}

func Test_Boot_04(t *testing.T) {
	assert := assert.New(t)
	// A zero product falls through to a write beyond the memory limit, so every
	// pair with a zero parameter fails and is skipped.
	engine := check_Engine(t, "1102,0,0,0,1005,0,11,1101,0,0,4611686018427387904,99")
	//
	_, err := RunBoot(engine.Clone(), 0, 3)
	assert.Error(err)
	//
	result, err := SearchBoot(engine, 6, 10)
	assert.NoError(err)
	assert.Equal(int64(106), result)
}

// ===================================================================
// Amplifiers
// ===================================================================

func Test_Amplifier_00(t *testing.T) {
	check_Chain(t, "3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0", 43210, 4, 3, 2, 1, 0)
}

func Test_Amplifier_01(t *testing.T) {
	check_Chain(t, "3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0",
		54321, 0, 1, 2, 3, 4)
}

func Test_Amplifier_02(t *testing.T) {
	check_Chain(t, "3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33,1002,33,7,33,1,33,31,31,1,32,31,31,4,"+
		"31,99,0,0,0", 65210, 1, 0, 4, 3, 2)
}

func Test_Amplifier_03(t *testing.T) {
	check_Feedback(t, "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5",
		139629729, 9, 8, 7, 6, 5)
}

func Test_Amplifier_04(t *testing.T) {
	check_Feedback(t, "3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54,-5,54,1105,1,12,1,"+
		"53,54,53,1008,54,0,55,1001,55,1,55,2,53,55,53,4,53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10",
		18216, 9, 7, 8, 5, 6)
}

func Test_Amplifier_05(t *testing.T) {
	assert := assert.New(t)
	// Ring which never produces output deadlocks
	_, err := RunFeedback(check_Engine(t, "3,0,3,0,99"), []int64{1, 2})
	assert.Error(err)
}

func Test_Amplifier_06(t *testing.T) {
	assert := assert.New(t)
	// Failures identify the phases
	_, _, err := MaxSignal(check_Engine(t, "3,0,42"), []int64{0, 1}, false)
	assert.Error(err)
	assert.Contains(err.Error(), "phases [0 1]")
}

// ===================================================================
// Robot
// ===================================================================

func Test_Robot_00(t *testing.T) {
	assert := assert.New(t)
	brain := &replayBrain{moves: [][2]int64{{1, 0}, {0, 0}, {1, 0}, {1, 0}, {0, 1}, {1, 0}, {1, 0}}}
	//
	hull, err := Paint(brain, BLACK)
	assert.NoError(err)
	assert.Equal(uint(6), hull.Painted())
	// Robot returns to the origin after four moves, and repaints it black
	assert.Equal([]Colour{BLACK, BLACK, BLACK, BLACK, WHITE, BLACK, BLACK}, brain.seen)
	assert.Equal(BLACK, hull.Colour(Point{0, 0}))
	assert.Equal(WHITE, hull.Colour(Point{-1, 1}))
}

func Test_Robot_01(t *testing.T) {
	assert := assert.New(t)
	// Paints white then turns left, paints black then turns left, halts
	brain := NewEngineBrain(check_Engine(t, "3,100,104,1,104,0,3,100,104,0,104,0,99"))
	//
	hull, err := Paint(brain, WHITE)
	assert.NoError(err)
	assert.Equal(uint(2), hull.Painted())
	assert.Equal(WHITE, hull.Colour(Point{0, 0}))
	assert.Equal(BLACK, hull.Colour(Point{-1, 0}))
	assert.Equal(" #\n", hull.Render())
}

func Test_Robot_02(t *testing.T) {
	assert := assert.New(t)
	// Brain producing a single output is malformed
	_, err := Paint(NewEngineBrain(check_Engine(t, "3,100,104,1,99")), BLACK)
	assert.Error(err)
}

func Test_Robot_03(t *testing.T) {
	assert := assert.New(t)
	//
	var heading Heading
	//
	assert.Equal(Point{-1, 0}, heading.Turn(0).Offset())
	assert.Equal(Point{1, 0}, heading.Turn(1).Offset())
	assert.Equal(Point{0, 1}, heading.Turn(1).Turn(1).Offset())
	assert.Equal(heading, heading.Turn(0).Turn(0).Turn(0).Turn(0))
}

func Test_Robot_04(t *testing.T) {
	assert := assert.New(t)
	// Starting panel is not painted by the robot
	hull, err := Paint(&replayBrain{}, WHITE)
	assert.NoError(err)
	assert.Equal(uint(0), hull.Painted())
	assert.Equal(WHITE, hull.Colour(Point{0, 0}))
	assert.Equal("#\n", hull.Render())
}

func Test_Robot_05(t *testing.T) {
	assert := assert.New(t)
	// Repainting the starting panel counts it once
	hull, err := Paint(&replayBrain{moves: [][2]int64{{1, 0}, {1, 0}, {1, 0}, {1, 0}, {0, 0}}}, WHITE)
	assert.NoError(err)
	assert.Equal(uint(4), hull.Painted())
	assert.Equal(BLACK, hull.Colour(Point{0, 0}))
}

// ===================================================================
// Arcade
// ===================================================================

func Test_Arcade_00(t *testing.T) {
	assert := assert.New(t)
	//
	screen, err := Draw(check_Engine(t, "104,1,104,2,104,3,104,6,104,5,104,4,99"))
	assert.NoError(err)
	assert.Equal(uint(1), screen.CountTiles(PADDLE))
	assert.Equal(uint(1), screen.CountTiles(BALL))
	assert.Equal(uint(0), screen.CountTiles(BLOCK))
	assert.Equal(Point{6, 5}, screen.Find(BALL).Unwrap())
}

func Test_Arcade_01(t *testing.T) {
	assert := assert.New(t)
	screen := NewScreen()
	//
	assert.NoError(screen.Update([]int64{0, 0, 2, 1, 0, 2, 2, 0, 1, -1, 0, 77}))
	assert.Equal(uint(2), screen.CountTiles(BLOCK))
	assert.Equal(int64(77), screen.Score())
	assert.Equal("==#\n", screen.Render())
	// Blocks are cleared by drawing empty tiles
	assert.NoError(screen.Update([]int64{0, 0, 0}))
	assert.Equal(uint(1), screen.CountTiles(BLOCK))
	// Malformed updates
	assert.Error(screen.Update([]int64{0, 0}))
	assert.Error(screen.Update([]int64{0, 0, 9}))
}

func Test_Arcade_02(t *testing.T) {
	assert := assert.New(t)
	// Address zero selects free play, and the score is its square
	score, err := Play(check_Engine(t, "1,0,0,20,104,-1,104,0,4,20,99"), nil)
	assert.NoError(err)
	assert.Equal(int64(4), score)
}

func Test_Arcade_03(t *testing.T) {
	assert := assert.New(t)
	// Draws paddle at x=1 and ball at x=5, then scores the joystick input
	var (
		engine = check_Engine(t, "1,0,0,60,104,1,104,1,104,3,104,5,104,1,104,4,3,50,104,-1,104,0,4,50,99")
		frames int
	)
	//
	score, err := Play(engine, func(screen *Screen) {
		frames++
		assert.Equal(uint(1), screen.CountTiles(PADDLE))
	})
	assert.NoError(err)
	assert.Equal(1, frames)
	assert.Equal(int64(1), score)
}

func Test_Arcade_04(t *testing.T) {
	assert := assert.New(t)
	//
	_, err := Draw(check_Engine(t, "3,0,99"))
	assert.Error(err)
}

// ===================================================================
// Maze
// ===================================================================

func Test_Maze_00(t *testing.T) {
	maze := check_Explore(t,
		"#####",
		"#D..#",
		"#.#.#",
		"#..O#",
		"#####")
	//
	check_Maze(t, maze, 4, 4)
}

func Test_Maze_01(t *testing.T) {
	maze := check_Explore(t,
		" ##   ",
		"#D.## ",
		"#.#..#",
		"#.O.# ",
		" ###  ")
	//
	check_Maze(t, maze, 3, 4)
}

func Test_Maze_02(t *testing.T) {
	assert := assert.New(t)
	// No oxygen system
	maze := check_Explore(t,
		"###",
		"#D#",
		"###")
	//
	_, err := maze.ShortestPath()
	assert.Error(err)
	_, err = maze.FillTime()
	assert.Error(err)
	assert.Equal(uint(5), maze.Size())
}

func Test_Maze_03(t *testing.T) {
	assert := assert.New(t)
	// Renders relative to the starting position
	maze := check_Explore(t,
		"####",
		"#DO#",
		"####")
	//
	assert.Equal(" ## \n#DO#\n ## \n", maze.Render())
}

func Test_Maze_04(t *testing.T) {
	assert := assert.New(t)
	// Reports a wall, an open cell and then the oxygen system
	droid := NewEngineDroid(check_Engine(t, "3,20,104,0,3,20,104,1,3,20,104,2,99"))
	//
	for _, expected := range []Cell{BLOCKED, OPEN, OXYGEN} {
		cell, err := droid.Move(NORTH)
		assert.NoError(err)
		assert.Equal(expected, cell)
	}
	// Program has halted
	_, err := droid.Move(NORTH)
	assert.Error(err)
}

func Test_Maze_05(t *testing.T) {
	assert := assert.New(t)
	//
	for _, dir := range directions {
		assert.Equal(Point{}, dir.Offset().Add(dir.Reverse().Offset()))
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Engine(t *testing.T, text string) *machine.Engine {
	engine, err := machine.New(text)
	//
	if err != nil {
		t.Fatalf("parsing %s: %s", text, err)
	}
	//
	return engine
}

func check_Chain(t *testing.T, text string, expected int64, phases ...int64) {
	check_Amplifiers(t, text, false, expected, phases)
}

func check_Feedback(t *testing.T, text string, expected int64, phases ...int64) {
	check_Amplifiers(t, text, true, expected, phases)
}

func check_Amplifiers(t *testing.T, text string, feedback bool, expected int64, phases []int64) {
	var (
		assert = assert.New(t)
		engine = check_Engine(t, text)
		run    = RunChain
		set    = []int64{0, 1, 2, 3, 4}
	)
	//
	if feedback {
		run, set = RunFeedback, []int64{5, 6, 7, 8, 9}
	}
	//
	signal, err := run(engine, phases)
	assert.NoError(err)
	assert.Equal(expected, signal)
	//
	best, order, err := MaxSignal(engine, set, feedback)
	assert.NoError(err)
	assert.Equal(expected, best)
	assert.Equal(phases, order)
}

func check_Explore(t *testing.T, rows ...string) *Maze {
	droid := newGridDroid(rows)
	//
	maze, err := Explore(droid)
	//
	if err != nil {
		t.Fatalf("exploring: %s", err)
	} else if droid.pos != droid.start {
		t.Fatalf("droid did not return to start (at %s)", droid.pos)
	}
	//
	return maze
}

func check_Maze(t *testing.T, maze *Maze, path uint, fill uint) {
	assert := assert.New(t)
	//
	actualPath, err := maze.ShortestPath()
	assert.NoError(err)
	assert.Equal(path, actualPath)
	//
	actualFill, err := maze.FillTime()
	assert.NoError(err)
	assert.Equal(fill, actualFill)
}

// replayBrain replays a fixed sequence of paint and turn instructions,
// recording the colours it observes.
type replayBrain struct {
	moves [][2]int64
	seen  []Colour
}

func (p *replayBrain) Think(colour Colour) (Colour, int64, bool, error) {
	if len(p.moves) == 0 {
		return BLACK, 0, true, nil
	}
	//
	move := p.moves[0]
	p.moves = p.moves[1:]
	p.seen = append(p.seen, colour)
	//
	return move[0], move[1], false, nil
}

// gridDroid moves around a maze described by rows of text, where 'D' marks the
// start and 'O' the oxygen system.  Any cell other than '.', 'D' or 'O' is a
// wall.
type gridDroid struct {
	rows  []string
	start Point
	pos   Point
}

func newGridDroid(rows []string) *gridDroid {
	for y, row := range rows {
		if x := strings.IndexByte(row, 'D'); x >= 0 {
			return &gridDroid{rows, Point{x, y}, Point{x, y}}
		}
	}
	//
	panic("maze has no start")
}

func (p *gridDroid) Move(dir Direction) (Cell, error) {
	next := p.pos.Add(dir.Offset())
	//
	if next.Y < 0 || next.Y >= len(p.rows) || next.X < 0 || next.X >= len(p.rows[next.Y]) {
		return BLOCKED, errors.Errorf("droid left the maze at %s", next)
	}
	//
	switch p.rows[next.Y][next.X] {
	case '.', 'D':
		p.pos = next
		return OPEN, nil
	case 'O':
		p.pos = next
		return OXYGEN, nil
	default:
		return BLOCKED, nil
	}
}
