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
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/util"
	"github.com/consensys/go-intcode/pkg/util/collection/queue"
	"github.com/consensys/go-intcode/pkg/util/collection/stack"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Direction of a movement command, using the codes understood by the repair
// droid.
type Direction int64

// NORTH moves up.
const NORTH Direction = 1

// SOUTH moves down.
const SOUTH Direction = 2

// WEST moves left.
const WEST Direction = 3

// EAST moves right.
const EAST Direction = 4

var directions = []Direction{NORTH, EAST, SOUTH, WEST}

// Reverse returns the opposite direction.
func (p Direction) Reverse() Direction {
	switch p {
	case NORTH:
		return SOUTH
	case SOUTH:
		return NORTH
	case WEST:
		return EAST
	default:
		return WEST
	}
}

// Offset returns the movement corresponding to a single step in this
// direction.
func (p Direction) Offset() Point {
	switch p {
	case NORTH:
		return Point{0, -1}
	case SOUTH:
		return Point{0, 1}
	case WEST:
		return Point{-1, 0}
	default:
		return Point{1, 0}
	}
}

// Cell of the maze, which also doubles as the status reported by the droid
// after a movement command.
type Cell int64

// BLOCKED indicates a wall, which the droid could not move into.
const BLOCKED Cell = 0

// OPEN indicates the droid moved into an open cell.
const OPEN Cell = 1

// OXYGEN indicates the droid moved into the cell holding the oxygen system.
const OXYGEN Cell = 2

// Droid is a remote controlled repair droid, which reports the outcome of each
// movement command.
type Droid interface {
	Move(dir Direction) (Cell, error)
}

// EngineDroid is a droid driven by a program, which receives each movement
// command as an input and responds with a single status output.
type EngineDroid struct {
	engine *machine.Engine
}

// NewEngineDroid constructs a droid driven by the given engine.
func NewEngineDroid(engine *machine.Engine) *EngineDroid {
	return &EngineDroid{engine}
}

// Move implementation for the Droid interface.
func (p *EngineDroid) Move(dir Direction) (Cell, error) {
	p.engine.PushInput(int64(dir))
	//
	if _, err := p.engine.Run(); err != nil {
		return BLOCKED, err
	}
	//
	status := p.engine.PopOutput()
	//
	if status.IsEmpty() {
		return BLOCKED, errors.New("droid reported no status")
	} else if s := status.Unwrap(); s < int64(BLOCKED) || s > int64(OXYGEN) {
		return BLOCKED, errors.Errorf("unknown droid status %d", s)
	}
	//
	return Cell(status.Unwrap()), nil
}

// Maze is the map built up by exploring with a droid.  Positions are relative
// to where the droid started, which is the origin.
type Maze struct {
	cells  map[Point]Cell
	oxygen util.Option[Point]
}

// Cell returns the contents of a given position, if it has been explored.
func (p *Maze) Cell(pos Point) util.Option[Cell] {
	if cell, ok := p.cells[pos]; ok {
		return util.Some(cell)
	}
	//
	return util.None[Cell]()
}

// Oxygen returns the position of the oxygen system, if it was found.
func (p *Maze) Oxygen() util.Option[Point] {
	return p.oxygen
}

// Size returns the number of explored positions (including walls).
func (p *Maze) Size() uint {
	return uint(len(p.cells))
}

// Render the maze as text, with the starting position marked 'D'.
func (p *Maze) Render() string {
	return render(p.cells, " ", func(pos Point, cell Cell) string {
		switch {
		case pos == Point{}:
			return "D"
		case cell == BLOCKED:
			return "#"
		case cell == OXYGEN:
			return "O"
		default:
			return "."
		}
	})
}

// Explore the entire maze reachable by a given droid.  This proceeds depth
// first, where the droid retraces its steps (recorded on a stack) whenever it
// reaches a position with no unexplored neighbours.  Exploration finishes once
// the droid is back at the origin with nothing left to explore.
func Explore(droid Droid) (*Maze, error) {
	var (
		maze  = &Maze{map[Point]Cell{{}: OPEN}, util.None[Point]()}
		path  = stack.NewStack[Direction]()
		pos   Point
		moves uint
		depth uint
	)
	//
	for {
		moved := false
		//
		for _, dir := range directions {
			next := pos.Add(dir.Offset())
			//
			if _, known := maze.cells[next]; known {
				continue
			}
			//
			cell, err := droid.Move(dir)
			moves++
			//
			if err != nil {
				return nil, errors.Wrapf(err, "moving %s from %s", dir, pos)
			}
			//
			maze.cells[next] = cell
			//
			if cell != BLOCKED {
				if cell == OXYGEN {
					maze.oxygen = util.Some(next)
				}
				//
				pos, moved = next, true
				//
				path.Push(dir)
				depth = max(depth, path.Len())
				//
				break
			}
		}
		//
		if moved {
			continue
		} else if path.IsEmpty() {
			log.Debugf("explored %d cells in %d moves (depth %d)", maze.Size(), moves, depth)
			//
			return maze, nil
		}
		// Backtrack
		back := path.Pop().Reverse()
		cell, err := droid.Move(back)
		moves++
		//
		if err != nil {
			return nil, errors.Wrapf(err, "backtracking %s from %s", back, pos)
		} else if cell == BLOCKED {
			return nil, errors.Errorf("backtracking %s from %s: path blocked", back, pos)
		}
		//
		pos = pos.Add(back.Offset())
	}
}

// ShortestPath returns the fewest movement commands needed to reach the oxygen
// system from the origin.
func (p *Maze) ShortestPath() (uint, error) {
	oxygen, ok := p.oxygen.Get()
	//
	if !ok {
		return 0, errors.New("oxygen system not found")
	}
	//
	distances := p.distances(Point{})
	//
	if d, ok := distances[oxygen]; ok {
		return d, nil
	}
	//
	return 0, errors.New("oxygen system unreachable")
}

// FillTime returns the number of minutes taken for oxygen to spread from the
// oxygen system to every open cell, where it spreads one cell per minute.
func (p *Maze) FillTime() (uint, error) {
	var time uint
	//
	oxygen, ok := p.oxygen.Get()
	//
	if !ok {
		return 0, errors.New("oxygen system not found")
	}
	//
	for _, d := range p.distances(oxygen) {
		time = max(time, d)
	}
	//
	return time, nil
}

// distances computes, by breadth-first search, the distance from a given
// position to every reachable open cell.
func (p *Maze) distances(from Point) map[Point]uint {
	var (
		distances = map[Point]uint{from: 0}
		worklist  = queue.NewQueue(from)
	)
	//
	for !worklist.IsEmpty() {
		pos := worklist.Pop()
		//
		for _, dir := range directions {
			next := pos.Add(dir.Offset())
			//
			if _, seen := distances[next]; seen {
				continue
			} else if cell, ok := p.cells[next]; ok && cell != BLOCKED {
				distances[next] = distances[pos] + 1
				worklist.Push(next)
			}
		}
	}
	//
	return distances
}

func (p Direction) String() string {
	switch p {
	case NORTH:
		return "north"
	case SOUTH:
		return "south"
	case WEST:
		return "west"
	case EAST:
		return "east"
	default:
		return fmt.Sprintf("direction%d", int64(p))
	}
}
