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
	"math"
	"strings"
)

// Point identifies a cell on a two-dimensional grid.  Coordinates follow screen
// convention, such that y increases downwards.
type Point struct {
	X int
	Y int
}

// Add returns the point offset from this one by the given amount.
func (p Point) Add(offset Point) Point {
	return Point{p.X + offset.X, p.Y + offset.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// bounds determines the smallest rectangle enclosing all the given points,
// returned as its top-left and bottom-right corners (inclusive).
func bounds[T any](cells map[Point]T) (Point, Point) {
	var (
		lo = Point{math.MaxInt, math.MaxInt}
		hi = Point{math.MinInt, math.MinInt}
	)
	//
	for p := range cells {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	//
	return lo, hi
}

// render a grid of cells as text, one row per line.  Cells absent from the map
// are rendered using the given blank string.
func render[T any](cells map[Point]T, blank string, fn func(Point, T) string) string {
	var builder strings.Builder
	//
	if len(cells) == 0 {
		return ""
	}
	//
	lo, hi := bounds(cells)
	//
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			p := Point{x, y}
			//
			if cell, ok := cells[p]; ok {
				builder.WriteString(fn(p, cell))
			} else {
				builder.WriteString(blank)
			}
		}
		//
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
