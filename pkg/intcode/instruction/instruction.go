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
package instruction

import (
	"fmt"
	"strings"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// Word is the result of decoding a single instruction word, prior to reading
// any of its operands.
type Word struct {
	Opcode Opcode
	// Modes holds the mode digits present in the instruction word, least
	// significant first.  Operands without a digit are in POSITION mode.
	Modes []Mode
}

// Mode returns the addressing mode of the ith operand.
func (p Word) Mode(i uint) Mode {
	if i < uint(len(p.Modes)) {
		return p.Modes[i]
	}
	//
	return POSITION
}

// Operand is a single operand of a decoded instruction: its raw value, as
// found in memory, together with how that value is to be interpreted.
type Operand struct {
	Value int64
	Mode  Mode
	Kind  Kind
}

func (p Operand) String() string {
	switch p.Mode {
	case IMMEDIATE:
		return fmt.Sprintf("[%d]", p.Value)
	case RELATIVE:
		if p.Value < 0 {
			return fmt.Sprintf("rb%d", p.Value)
		}
		//
		return fmt.Sprintf("rb+%d", p.Value)
	default:
		return fmt.Sprintf("%d", p.Value)
	}
}

// Instruction is a fully decoded instruction, consisting of an opcode and
// exactly as many operands as that opcode requires.
type Instruction struct {
	Opcode   Opcode
	Operands []Operand
}

// Width returns the number of words this instruction occupies in memory.
func (p Instruction) Width() uint {
	return p.Opcode.Width()
}

// String provides the human readable (disassembled) form of this instruction,
// such as "ADD 8, [10], 8".
func (p Instruction) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.Opcode.String())
	//
	for i, operand := range p.Operands {
		if i == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(operand.String())
	}
	//
	return builder.String()
}

// DecodeWord decodes a single instruction word into its opcode and addressing
// modes.  The opcode is the word modulo 100, with the remaining decimal digits
// giving the mode of each operand in turn (least significant first).
func DecodeWord(word int64) (Word, error) {
	var (
		opcode = Opcode(word % 100)
		modes  []Mode
	)
	//
	if word < 0 {
		return Word{}, &DecodeError{word, "negative instruction word"}
	} else if !opcode.IsValid() {
		return Word{}, &DecodeError{word, fmt.Sprintf("unknown opcode %d", word%100)}
	}
	//
	for rest := word / 100; rest > 0; rest /= 10 {
		mode := Mode(rest % 10)
		//
		if mode > RELATIVE {
			return Word{}, &DecodeError{word, fmt.Sprintf("unknown addressing mode %d", rest%10)}
		}
		//
		modes = append(modes, mode)
	}
	//
	return Word{opcode, modes}, nil
}

// Decode the instruction located at a given address in memory.  This reads the
// instruction word and then as many operands as its opcode requires, where
// operands extending beyond the extent of the memory read as zero.  An error is
// returned if the instruction word cannot be decoded, or if a destination
// operand is in IMMEDIATE mode (which has no meaningful interpretation).
func Decode(mem memory.ReadOnlyMemory, address uint) (Instruction, error) {
	var word, err = DecodeWord(mem.Read(address))
	//
	if err != nil {
		return Instruction{}, err
	}
	//
	operands := make([]Operand, word.Opcode.Arity())
	//
	for i := range operands {
		var (
			kind = word.Opcode.Operand(uint(i))
			mode = word.Mode(uint(i))
		)
		//
		if kind == WRITE && mode == IMMEDIATE {
			return Instruction{}, &DecodeError{mem.Read(address),
				fmt.Sprintf("operand %d of %s is a destination in immediate mode", i, word.Opcode)}
		}
		//
		operands[i] = Operand{mem.Read(address + 1 + uint(i)), mode, kind}
	}
	//
	return Instruction{word.Opcode, operands}, nil
}

// DecodeError reports an instruction word which is malformed, for example
// because its opcode is unknown.  Such errors are fatal to execution.
type DecodeError struct {
	// Word which could not be decoded.
	Word int64
	// Message describing the problem.
	msg string
}

// Message returns the message to be reported.
func (p *DecodeError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *DecodeError) Error() string {
	return fmt.Sprintf("invalid instruction %d (%s)", p.Word, p.msg)
}
