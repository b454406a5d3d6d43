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
	"github.com/consensys/go-intcode/pkg/intcode/machine"
	"github.com/consensys/go-intcode/pkg/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Tile drawn on the arcade screen.
type Tile = int64

// EMPTY tiles are blank.
const EMPTY Tile = 0

// WALL tiles are indestructible.
const WALL Tile = 1

// BLOCK tiles are destroyed by the ball.
const BLOCK Tile = 2

// PADDLE is the horizontal paddle controlled by the joystick.
const PADDLE Tile = 3

// BALL bounces off walls, blocks and the paddle.
const BALL Tile = 4

// FREE_PLAY is the value stored at address zero to play without inserting
// quarters.
const FREE_PLAY = 2

// Position at which the score is drawn, rather than a tile.
var scorePosition = Point{-1, 0}

// Screen is the display of the arcade cabinet, built from the draw
// instructions output by its program.
type Screen struct {
	tiles map[Point]Tile
	score int64
}

// NewScreen constructs a blank screen.
func NewScreen() *Screen {
	return &Screen{make(map[Point]Tile), 0}
}

// Update the screen from a sequence of draw instructions, each of which is an
// (x, y, tile) triple.  A triple drawn at (-1, 0) sets the score instead.
func (p *Screen) Update(outputs []int64) error {
	if len(outputs)%3 != 0 {
		return errors.Errorf("incomplete draw instruction (%d values)", len(outputs))
	}
	//
	for i := 0; i < len(outputs); i += 3 {
		var (
			pos  = Point{int(outputs[i]), int(outputs[i+1])}
			tile = outputs[i+2]
		)
		//
		if pos == scorePosition {
			p.score = tile
		} else if tile < EMPTY || tile > BALL {
			return errors.Errorf("unknown tile %d at %s", tile, pos)
		} else {
			p.tiles[pos] = tile
		}
	}
	//
	return nil
}

// Score returns the most recently drawn score.
func (p *Screen) Score() int64 {
	return p.score
}

// CountTiles returns the number of cells currently showing a given tile.
func (p *Screen) CountTiles(tile Tile) uint {
	var count uint
	//
	for _, t := range p.tiles {
		if t == tile {
			count++
		}
	}
	//
	return count
}

// Find the position of some cell showing a given tile, if one exists.
func (p *Screen) Find(tile Tile) util.Option[Point] {
	for pos, t := range p.tiles {
		if t == tile {
			return util.Some(pos)
		}
	}
	//
	return util.None[Point]()
}

// Render the screen as text.
func (p *Screen) Render() string {
	return render(p.tiles, " ", func(_ Point, tile Tile) string {
		return [...]string{" ", "#", "=", "-", "o"}[tile]
	})
}

// Draw runs an arcade program to completion, without any joystick input, and
// returns the resulting screen.
func Draw(engine *machine.Engine) (*Screen, error) {
	var screen = NewScreen()
	//
	state, err := engine.Run()
	//
	if err != nil {
		return nil, errors.Wrap(err, "drawing screen")
	} else if state != machine.EXIT {
		return nil, errors.New("drawing screen: program waiting for joystick input")
	}
	//
	return screen, screen.Update(engine.Outputs())
}

// Play an arcade program in free play mode, steering the paddle towards the
// ball until the program halts, and return the final score.  The optional
// observer is called with the screen each time the program waits for the
// joystick.
func Play(engine *machine.Engine, observer func(*Screen)) (int64, error) {
	var screen = NewScreen()
	//
	if err := engine.Poke(0, FREE_PLAY); err != nil {
		return 0, errors.Wrap(err, "enabling free play")
	}
	//
	for frames := 0; ; frames++ {
		state, err := engine.Run()
		//
		if err != nil {
			return 0, errors.Wrapf(err, "frame %d", frames)
		} else if err = screen.Update(engine.Outputs()); err != nil {
			return 0, errors.Wrapf(err, "frame %d", frames)
		} else if state == machine.EXIT {
			log.Debugf("game over after %d frames (score %d)", frames, screen.Score())
			//
			return screen.Score(), nil
		}
		//
		if observer != nil {
			observer(screen)
		}
		//
		engine.PushInput(joystick(screen))
	}
}

// Determine the joystick position (-1 left, 0 neutral, 1 right) which moves the
// paddle towards the ball.
func joystick(screen *Screen) int64 {
	ball, ok1 := screen.Find(BALL).Get()
	paddle, ok2 := screen.Find(PADDLE).Get()
	//
	switch {
	case !ok1 || !ok2 || ball.X == paddle.X:
		return 0
	case ball.X < paddle.X:
		return -1
	default:
		return 1
	}
}
