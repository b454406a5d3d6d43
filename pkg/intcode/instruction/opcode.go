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

import "fmt"

// Opcode identifies the operation performed by an instruction, as encoded in
// the low two decimal digits of an instruction word.
type Opcode uint8

// ADD stores the sum of two read operands at a write operand.
const ADD Opcode = 1

// MUL stores the product of two read operands at a write operand.
const MUL Opcode = 2

// INPUT takes the next value from the input queue and stores it at a write
// operand.  This is the only instruction which can suspend execution.
const INPUT Opcode = 3

// OUTPUT appends a read operand to the output queue.
const OUTPUT Opcode = 4

// JUMP_IF_TRUE moves the cursor to its second read operand if its first is
// non-zero.
const JUMP_IF_TRUE Opcode = 5

// JUMP_IF_FALSE moves the cursor to its second read operand if its first is
// zero.
const JUMP_IF_FALSE Opcode = 6

// LESS_THAN stores 1 at a write operand if its first read operand is less than
// its second, and 0 otherwise.
const LESS_THAN Opcode = 7

// EQUALS stores 1 at a write operand if its two read operands are equal, and 0
// otherwise.
const EQUALS Opcode = 8

// ADJUST_RELATIVE_BASE adds its read operand to the relative base.
const ADJUST_RELATIVE_BASE Opcode = 9

// EXIT terminates execution.
const EXIT Opcode = 99

// Kind distinguishes operands which are read (i.e. supply a value) from those
// which are written (i.e. supply a destination address).
type Kind uint8

// READ indicates an operand which supplies a value.
const READ Kind = 0

// WRITE indicates an operand which supplies a destination address.
const WRITE Kind = 1

// A signature describes the fixed shape of an opcode: its mnemonic, and the kind
// of each operand in order.
type signature struct {
	mnemonic string
	operands []Kind
}

// Table of all recognised opcodes, indexed by opcode value.  Entries without a
// mnemonic are unused opcode values.
var signatures = [100]signature{
	ADD:                  {"ADD", []Kind{READ, READ, WRITE}},
	MUL:                  {"MUL", []Kind{READ, READ, WRITE}},
	INPUT:                {"STORE", []Kind{WRITE}},
	OUTPUT:               {"SHOW", []Kind{READ}},
	JUMP_IF_TRUE:         {"JMPT", []Kind{READ, READ}},
	JUMP_IF_FALSE:        {"JMPF", []Kind{READ, READ}},
	LESS_THAN:            {"LT", []Kind{READ, READ, WRITE}},
	EQUALS:               {"EQ", []Kind{READ, READ, WRITE}},
	ADJUST_RELATIVE_BASE: {"ARB", []Kind{READ}},
	EXIT:                 {"EXIT", nil},
}

// IsValid determines whether this is a recognised opcode.
func (p Opcode) IsValid() bool {
	return int(p) < len(signatures) && signatures[p].mnemonic != ""
}

// Arity returns the number of operands taken by this opcode.
func (p Opcode) Arity() uint {
	return uint(len(p.signature().operands))
}

// Width returns the number of words occupied by an instruction with this
// opcode, including the instruction word itself.
func (p Opcode) Width() uint {
	return p.Arity() + 1
}

// Operand returns the kind of the ith operand of this opcode.
func (p Opcode) Operand(i uint) Kind {
	return p.signature().operands[i]
}

func (p Opcode) String() string {
	if p.IsValid() {
		return signatures[p].mnemonic
	}
	//
	return fmt.Sprintf("OP%d", uint8(p))
}

func (p Opcode) signature() signature {
	if !p.IsValid() {
		panic(fmt.Sprintf("unknown opcode %d", uint8(p)))
	}
	//
	return signatures[p]
}
