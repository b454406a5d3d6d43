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
	"github.com/consensys/go-intcode/pkg/intcode/instruction"
	log "github.com/sirupsen/logrus"
)

var exit = instruction.Instruction{Opcode: instruction.EXIT}

// Run the engine until it either suspends waiting for input, or halts.
func (p *Engine) Run() (State, error) {
	for {
		if _, state, err := p.Step(); err != nil || state != NEXT {
			return state, err
		}
	}
}

// Execute the engine for at most the given number of instructions, stopping
// early if it suspends waiting for input or halts.  This returns the number of
// instructions actually completed, along with the resulting state.  When the
// limit is reached the state is NEXT.
func (p *Engine) Execute(limit uint) (uint, State, error) {
	var (
		nsteps uint
		state  = p.state
		err    error
	)
	//
	for nsteps < limit {
		before := p.steps
		//
		if _, state, err = p.Step(); err != nil {
			return nsteps, state, err
		}
		// update the tally
		nsteps += p.steps - before
		// check for suspension or termination
		if state != NEXT {
			return nsteps, state, nil
		}
	}
	//
	return nsteps, NEXT, nil
}

// Step decodes and executes the instruction at the cursor, returning the
// instruction and the resulting state.  An input instruction encountering an
// empty queue performs no mutation and returns WAIT, such that the same
// instruction is attempted again by the next step.  Once halted, every step
// returns EXIT.  Any error is fatal, and every subsequent step fails with
// ErrFaulted until the engine is reset.
func (p *Engine) Step() (instruction.Instruction, State, error) {
	if p.faulted {
		return instruction.Instruction{}, p.state, ErrFaulted
	} else if p.state == EXIT {
		return exit, EXIT, nil
	} else if p.cursor >= p.memory.Len() {
		// Running off the end of the program halts it
		return exit, p.halt(), nil
	}
	//
	insn, err := instruction.Decode(p.memory, p.cursor)
	//
	if err != nil {
		p.faulted = true
		//
		return insn, p.state, err
	}
	//
	if p.trace {
		log.WithFields(log.Fields{"pc": p.cursor, "rb": p.base}).Debug(insn.String())
	}
	//
	if p.state, err = p.execute(insn); err != nil {
		p.faulted = true
	}
	//
	return insn, p.state, err
}

func (p *Engine) halt() State {
	p.state = EXIT
	p.steps++
	//
	return EXIT
}

// execute a single decoded instruction.  Nothing is mutated unless every
// operand resolves successfully.
func (p *Engine) execute(insn instruction.Instruction) (State, error) {
	var (
		ops  = insn.Operands
		next = p.cursor + insn.Width()
	)
	//
	switch insn.Opcode {
	case instruction.ADD, instruction.MUL, instruction.LESS_THAN, instruction.EQUALS:
		lhs, rhs, err := p.load2(ops[0], ops[1])
		//
		if err != nil {
			return p.state, err
		} else if err = p.store(ops[2], compute(insn.Opcode, lhs, rhs)); err != nil {
			return p.state, err
		}
	case instruction.INPUT:
		if p.inputs.IsEmpty() {
			return WAIT, nil
		}
		// Resolve destination before consuming input
		address, err := p.destination(ops[0])
		//
		if err != nil {
			return p.state, err
		}
		//
		p.memory.Write(address, p.inputs.Pop())
	case instruction.OUTPUT:
		value, err := p.load(ops[0])
		//
		if err != nil {
			return p.state, err
		}
		//
		p.outputs.Push(value)
	case instruction.JUMP_IF_TRUE, instruction.JUMP_IF_FALSE:
		cond, target, err := p.load2(ops[0], ops[1])
		//
		if err != nil {
			return p.state, err
		} else if (cond != 0) == (insn.Opcode == instruction.JUMP_IF_TRUE) {
			if target < 0 {
				return p.state, &AddressError{p.cursor, target}
			}
			//
			next = uint(target)
		}
	case instruction.ADJUST_RELATIVE_BASE:
		offset, err := p.load(ops[0])
		//
		if err != nil {
			return p.state, err
		}
		//
		p.base += offset
	case instruction.EXIT:
		return p.halt(), nil
	default:
		// Unreachable since the decoder only produces recognised opcodes
		panic("unknown opcode " + insn.Opcode.String())
	}
	//
	p.cursor = next
	p.steps++
	//
	return NEXT, nil
}

func (p *Engine) load2(lhs instruction.Operand, rhs instruction.Operand) (int64, int64, error) {
	l, err := p.load(lhs)
	//
	if err != nil {
		return 0, 0, err
	}
	//
	r, err := p.load(rhs)
	//
	return l, r, err
}

func compute(opcode instruction.Opcode, lhs int64, rhs int64) int64 {
	switch opcode {
	case instruction.ADD:
		return lhs + rhs
	case instruction.MUL:
		return lhs * rhs
	case instruction.LESS_THAN:
		return bool2word(lhs < rhs)
	default:
		return bool2word(lhs == rhs)
	}
}

func bool2word(b bool) int64 {
	if b {
		return 1
	}
	//
	return 0
}
