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
package machine

import (
	"errors"
	"fmt"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
	"github.com/consensys/go-intcode/pkg/intcode/program"
	"github.com/consensys/go-intcode/pkg/util"
	"github.com/consensys/go-intcode/pkg/util/collection/queue"
)

// ErrFaulted is returned when stepping an engine whose previous step failed.
// The engine must be reset before it can be used again.
var ErrFaulted = errors.New("engine faulted (reset required)")

// Option configures an engine at construction.
type Option func(*Engine)

// WithTrace enables (or disables) logging of each instruction prior to its
// execution.  Trace lines are logged at debug level.
func WithTrace(trace bool) Option {
	return func(p *Engine) {
		p.trace = trace
	}
}

// WithInput preloads the input queue with the given values.
func WithInput(values ...int64) Option {
	return func(p *Engine) {
		p.inputs.PushAll(values...)
	}
}

// Engine is a single executing program.  Each engine owns its memory, cursor,
// relative base and both queues exclusively, such that several engines can be
// composed by a driver without interfering with one another.
type Engine struct {
	// Initial snapshot of the program, as restored by Reset.
	snapshot memory.Rom
	// Working memory
	memory *memory.Ram
	// Address of the next instruction to decode.
	cursor uint
	// Offset for relative operands.
	base int64
	// Values yet to be consumed by input instructions.
	inputs *queue.Queue[int64]
	// Values produced by output instructions, and not yet popped.
	outputs *queue.Queue[int64]
	// Outcome of the most recent step.
	state State
	// Set when a step has failed.
	faulted bool
	// Number of instructions completed.
	steps uint
	// Enables per-instruction logging.
	trace bool
}

// New constructs an engine from the textual form of a program, such as
// "1,0,0,0,99".
func New(text string, opts ...Option) (*Engine, error) {
	words, err := program.Parse(text)
	//
	if err != nil {
		return nil, err
	}
	//
	return NewFromWords(words, opts...), nil
}

// NewFromWords constructs an engine from an already parsed program.  The given
// slice is copied, hence may be reused by the caller.
func NewFromWords(words []int64, opts ...Option) *Engine {
	var engine = &Engine{
		snapshot: memory.NewRom(words...),
		memory:   memory.NewRam(words...),
		inputs:   queue.NewQueue[int64](),
		outputs:  queue.NewQueue[int64](),
		state:    NEXT,
	}
	//
	for _, opt := range opts {
		opt(engine)
	}
	//
	return engine
}

// ============================================================================
// Mutation
// ============================================================================

// PushInput appends a value to the tail of the input queue.
func (p *Engine) PushInput(value int64) {
	p.inputs.Push(value)
}

// PushInputs appends zero or more values to the tail of the input queue, in
// order.
func (p *Engine) PushInputs(values ...int64) {
	p.inputs.PushAll(values...)
}

// Poke writes a value directly into working memory, growing it as necessary.
// This is typically used for setting boot parameters before a run.  Addresses
// beyond memory.MAX_ADDRESS are rejected.
func (p *Engine) Poke(address uint, value int64) error {
	if address > memory.MAX_ADDRESS {
		return fmt.Errorf("cannot poke address %d (limit %d)", address, memory.MAX_ADDRESS)
	}
	//
	p.memory.Write(address, value)
	//
	return nil
}

// Reset restores working memory to the initial snapshot, and zeroes the
// cursor, relative base and both queues.  This also clears any fault.
func (p *Engine) Reset() {
	p.memory.Reset(p.snapshot)
	p.cursor = 0
	p.base = 0
	p.inputs.Clear()
	p.outputs.Clear()
	p.state = NEXT
	p.faulted = false
	p.steps = 0
}

// Clone returns a deep copy of this engine, which shares no mutable state with
// it.
func (p *Engine) Clone() *Engine {
	var engine = *p
	//
	engine.memory = p.memory.Clone()
	engine.inputs = p.inputs.Clone()
	engine.outputs = p.outputs.Clone()
	//
	return &engine
}

// ============================================================================
// Observation
// ============================================================================

// PopOutput removes the earliest produced value from the output queue, or
// returns an empty option if there is none.
func (p *Engine) PopOutput() util.Option[int64] {
	if p.outputs.IsEmpty() {
		return util.None[int64]()
	}
	//
	return util.Some(p.outputs.Pop())
}

// Outputs drains the output queue, returning its values in the order they were
// produced.
func (p *Engine) Outputs() []int64 {
	var items = p.outputs.Items()
	//
	p.outputs.Clear()
	//
	return items
}

// PendingInputs returns the number of values in the input queue.
func (p *Engine) PendingInputs() uint {
	return p.inputs.Len()
}

// PeekMemory reads the value at a given address in working memory.
func (p *Engine) PeekMemory(address uint) int64 {
	return p.memory.Read(address)
}

// DumpMemory returns working memory in program text format.
func (p *Engine) DumpMemory() string {
	return program.Format(p.memory.Contents())
}

// DumpOutput returns the (undrained) output queue in program text format.
func (p *Engine) DumpOutput() string {
	return program.Format(p.outputs.Items())
}

// Memory returns a copy of the contents of working memory.
func (p *Engine) Memory() []int64 {
	return p.memory.Contents()
}

// Cursor returns the address of the next instruction to be decoded.
func (p *Engine) Cursor() uint {
	return p.cursor
}

// RelativeBase returns the current offset applied to relative operands.
func (p *Engine) RelativeBase() int64 {
	return p.base
}

// State returns the outcome of the most recent step.
func (p *Engine) State() State {
	return p.state
}

// Steps returns the number of instructions completed since construction (or
// the last reset).  Attempts which suspended are not counted.
func (p *Engine) Steps() uint {
	return p.steps
}

// IsFaulted determines whether a previous step failed.
func (p *Engine) IsFaulted() bool {
	return p.faulted
}
