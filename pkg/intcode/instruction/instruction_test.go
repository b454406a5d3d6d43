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
	"errors"
	"slices"
	"testing"

	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

func Test_DecodeWord_00(t *testing.T) {
	check_DecodeWord(t, 1002, MUL, POSITION, IMMEDIATE)
}

func Test_DecodeWord_01(t *testing.T) {
	check_DecodeWord(t, 1, ADD)
}

func Test_DecodeWord_02(t *testing.T) {
	check_DecodeWord(t, 99, EXIT)
}

func Test_DecodeWord_03(t *testing.T) {
	check_DecodeWord(t, 21101, ADD, IMMEDIATE, IMMEDIATE, RELATIVE)
}

func Test_DecodeWord_04(t *testing.T) {
	check_DecodeWord(t, 204, OUTPUT, RELATIVE)
}

func Test_DecodeWord_05(t *testing.T) {
	check_DecodeWord(t, 109, ADJUST_RELATIVE_BASE, IMMEDIATE)
}

func Test_DecodeWord_06(t *testing.T) {
	// Absent digits default to position
	word, err := DecodeWord(1008)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	for i, expected := range []Mode{POSITION, IMMEDIATE, POSITION} {
		if word.Mode(uint(i)) != expected {
			t.Errorf("operand %d: expected %s, got %s", i, expected, word.Mode(uint(i)))
		}
	}
}

func Test_DecodeWord_07(t *testing.T) {
	for _, word := range []int64{0, 10, 42, 98, 100, 1010} {
		check_DecodeWordError(t, word)
	}
}

func Test_DecodeWord_08(t *testing.T) {
	// Bad mode digits
	for _, word := range []int64{301, 1301, 20901, 9999} {
		check_DecodeWordError(t, word)
	}
}

func Test_DecodeWord_09(t *testing.T) {
	check_DecodeWordError(t, -1)
	check_DecodeWordError(t, -99)
}

func Test_Opcode_00(t *testing.T) {
	var widths = map[Opcode]uint{
		ADD: 4, MUL: 4, INPUT: 2, OUTPUT: 2, JUMP_IF_TRUE: 3, JUMP_IF_FALSE: 3,
		LESS_THAN: 4, EQUALS: 4, ADJUST_RELATIVE_BASE: 2, EXIT: 1,
	}
	//
	for op, width := range widths {
		if !op.IsValid() {
			t.Errorf("%s should be valid", op)
		} else if op.Width() != width {
			t.Errorf("%s: expected width %d, got %d", op, width, op.Width())
		}
	}
	//
	for op := Opcode(0); op < 100; op++ {
		if _, ok := widths[op]; !ok && op.IsValid() {
			t.Errorf("%s should not be valid", op)
		}
	}
}

func Test_Opcode_01(t *testing.T) {
	var mnemonics = map[Opcode]string{
		ADD: "ADD", MUL: "MUL", INPUT: "STORE", OUTPUT: "SHOW", JUMP_IF_TRUE: "JMPT", JUMP_IF_FALSE: "JMPF",
		LESS_THAN: "LT", EQUALS: "EQ", ADJUST_RELATIVE_BASE: "ARB", EXIT: "EXIT",
	}
	//
	for op, mnemonic := range mnemonics {
		if op.String() != mnemonic {
			t.Errorf("expected mnemonic %s, got %s", mnemonic, op.String())
		}
	}
}

func Test_Decode_00(t *testing.T) {
	check_Decode(t, "ADD 8, [10], 8", 1001, 8, 10, 8)
}

func Test_Decode_01(t *testing.T) {
	check_Decode(t, "ADD 0, 2, 2", 1, 0, 2, 2)
}

func Test_Decode_02(t *testing.T) {
	check_Decode(t, "SHOW 1", 4, 1)
}

func Test_Decode_03(t *testing.T) {
	check_Decode(t, "JMPT [8], [9]", 1105, 8, 9)
}

func Test_Decode_04(t *testing.T) {
	check_Decode(t, "ARB [1]", 109, 1)
}

func Test_Decode_05(t *testing.T) {
	check_Decode(t, "SHOW rb-1", 204, -1)
}

func Test_Decode_06(t *testing.T) {
	check_Decode(t, "STORE rb+3", 203, 3)
}

func Test_Decode_07(t *testing.T) {
	check_Decode(t, "EQ 100, [16], 100", 1008, 100, 16, 100)
}

func Test_Decode_08(t *testing.T) {
	check_Decode(t, "EXIT", 99)
}

func Test_Decode_09(t *testing.T) {
	// Operands beyond the end of memory read as zero
	check_Decode(t, "MUL 0, 0, 0", 2)
}

func Test_Decode_10(t *testing.T) {
	var decErr *DecodeError
	// Destinations cannot be immediate
	for _, word := range []int64{10001, 103, 11107, 11108} {
		_, err := Decode(memory.NewRam(word, 0, 0, 0), 0)
		//
		if !errors.As(err, &decErr) {
			t.Errorf("decoding %d: expected decode error, got %v", word, err)
		}
	}
}

func Test_Decode_11(t *testing.T) {
	// Decoding at an offset
	var mem = memory.NewRam(1, 0, 0, 0, 104, 50, 99)
	//
	insn, err := Decode(mem, 4)
	//
	if err != nil {
		t.Fatal(err)
	} else if insn.String() != "SHOW [50]" || insn.Width() != 2 {
		t.Errorf("unexpected instruction %s", insn)
	}
}

func Test_Disassemble_00(t *testing.T) {
	check_Disassemble(t, []int64{1, 0, 0, 0, 99}, "ADD 0, 0, 0", "EXIT")
}

func Test_Disassemble_01(t *testing.T) {
	check_Disassemble(t, []int64{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8},
		"STORE 9", "EQ 9, 10, 9", "SHOW 9", "EXIT", "DATA -1", "EQ 0, 0, 0")
}

func Test_Disassemble_02(t *testing.T) {
	check_Disassemble(t, []int64{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99},
		"ARB [1]", "SHOW rb-1", "ADD 100, [1], 100", "EQ 100, [16], 101", "JMPF 101, [0]", "EXIT")
}

func Test_Disassemble_03(t *testing.T) {
	lines := Disassemble(memory.NewRam(42, 99))
	//
	if len(lines) != 2 || !lines[0].IsData() || lines[1].IsData() || lines[1].Address != 1 {
		t.Errorf("unexpected listing %v", lines)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_DecodeWord(t *testing.T, word int64, opcode Opcode, modes ...Mode) {
	actual, err := DecodeWord(word)
	//
	if err != nil {
		t.Errorf("decoding %d: unexpected error %s", word, err)
	} else if actual.Opcode != opcode {
		t.Errorf("decoding %d: expected opcode %s, got %s", word, opcode, actual.Opcode)
	} else if !slices.Equal(actual.Modes, modes) {
		t.Errorf("decoding %d: expected modes %v, got %v", word, modes, actual.Modes)
	}
}

func check_DecodeWordError(t *testing.T, word int64) {
	var decErr *DecodeError
	//
	_, err := DecodeWord(word)
	//
	if !errors.As(err, &decErr) {
		t.Errorf("decoding %d: expected decode error, got %v", word, err)
	} else if decErr.Word != word {
		t.Errorf("decoding %d: error reports word %d", word, decErr.Word)
	}
}

func check_Decode(t *testing.T, expected string, words ...int64) {
	insn, err := Decode(memory.NewRam(words...), 0)
	//
	if err != nil {
		t.Errorf("decoding %v: unexpected error %s", words, err)
	} else if insn.String() != expected {
		t.Errorf("decoding %v: expected \"%s\", got \"%s\"", words, expected, insn.String())
	}
}

func check_Disassemble(t *testing.T, words []int64, expected ...string) {
	var (
		lines  = Disassemble(memory.NewRam(words...))
		actual []string
	)
	//
	for _, line := range lines {
		actual = append(actual, line.Text)
	}
	//
	if !slices.Equal(actual, expected) {
		t.Errorf("expected listing %v, got %v", expected, actual)
	}
}
