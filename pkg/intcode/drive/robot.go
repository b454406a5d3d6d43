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
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Colour of a hull panel.
type Colour = int64

// BLACK is the colour of every panel which has not been painted.
const BLACK Colour = 0

// WHITE panels form the registration identifier.
const WHITE Colour = 1

// Heading of the painting robot, given as a clockwise quarter turn count from
// north.
type Heading uint8

// Offsets for each heading, in clockwise order.
var headings = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Turn the heading left (for code 0) or right (otherwise).
func (p Heading) Turn(code int64) Heading {
	if code == 0 {
		return (p + 3) % 4
	}
	//
	return (p + 1) % 4
}

// Offset returns the movement corresponding to a single step in this heading.
func (p Heading) Offset() Point {
	return headings[p%4]
}

// Brain controls the painting robot.  Given the colour of the panel beneath the
// robot, it returns the colour to paint that panel and the direction to turn
// (0 for left, 1 for right).  Once the brain has finished, done is reported.
type Brain interface {
	Think(colour Colour) (paint Colour, turn int64, done bool, err error)
}

// EngineBrain is a brain driven by a program.  Each camera reading is supplied
// as an input, and the program responds with two outputs (the paint colour and
// the turn direction).
type EngineBrain struct {
	engine *machine.Engine
}

// NewEngineBrain constructs a brain which is driven by the given engine.
func NewEngineBrain(engine *machine.Engine) *EngineBrain {
	return &EngineBrain{engine}
}

// Think implementation for the Brain interface.
func (p *EngineBrain) Think(colour Colour) (Colour, int64, bool, error) {
	p.engine.PushInput(colour)
	//
	state, err := p.engine.Run()
	//
	if err != nil {
		return BLACK, 0, true, err
	}
	//
	outputs := p.engine.Outputs()
	//
	switch {
	case len(outputs) == 0 && state == machine.EXIT:
		return BLACK, 0, true, nil
	case len(outputs) != 2:
		return BLACK, 0, true, errors.Errorf("expected paint and turn, got %v", outputs)
	}
	//
	return outputs[0], outputs[1], false, nil
}

// Hull records the colour of every panel which has been painted or which
// started out white, along with which panels have been painted at least once.
type Hull struct {
	panels  map[Point]Colour
	painted map[Point]bool
}

// NewHull constructs a hull on which nothing has been painted.
func NewHull() *Hull {
	return &Hull{make(map[Point]Colour), make(map[Point]bool)}
}

// Colour returns the current colour of a given panel.
func (p *Hull) Colour(panel Point) Colour {
	return p.panels[panel]
}

// Paint a given panel.
func (p *Hull) Paint(panel Point, colour Colour) {
	p.panels[panel] = colour
	p.painted[panel] = true
}

// Painted returns the number of panels painted at least once.  The colour a
// panel starts with does not count as painting it.
func (p *Hull) Painted() uint {
	return uint(len(p.painted))
}

// Render the hull as text, with white panels shown as '#'.
func (p *Hull) Render() string {
	return render(p.panels, " ", func(_ Point, colour Colour) string {
		if colour == WHITE {
			return "#"
		}
		//
		return " "
	})
}

// Paint the hull by moving a robot under the control of a given brain.  The
// robot starts at the origin facing north, on a panel of the given colour.
func Paint(brain Brain, start Colour) (*Hull, error) {
	var (
		hull     = NewHull()
		position Point
		heading  Heading
	)
	//
	if start != BLACK {
		hull.panels[position] = start
	}
	//
	for steps := 0; ; steps++ {
		paint, turn, done, err := brain.Think(hull.Colour(position))
		//
		if err != nil {
			return nil, errors.Wrapf(err, "robot at %s after %d moves", position, steps)
		} else if done {
			log.Debugf("robot finished after %d moves (%d panels painted)", steps, hull.Painted())
			//
			return hull, nil
		}
		//
		hull.Paint(position, paint)
		heading = heading.Turn(turn)
		position = position.Add(heading.Offset())
	}
}
