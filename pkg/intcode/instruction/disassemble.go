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

	"github.com/consensys/go-intcode/pkg/intcode/memory"
)

// Line is a single entry in a disassembly listing.  This corresponds either to
// a decoded instruction, or to a single word which could not be decoded (and
// is therefore presumed to be data).
type Line struct {
	// Address of the first word covered by this line.
	Address uint
	// Words covered by this line.
	Words []int64
	// Text of this line, which is either a disassembled instruction or a
	// "DATA" directive.
	Text string
}

// IsData determines whether this line holds an undecodable word, rather than
// an instruction.
func (p Line) IsData() bool {
	return len(p.Words) == 1 && p.Text == dataText(p.Words[0])
}

// Disassemble a memory by sweeping linearly from address zero to its extent.
// Since instructions and data are freely mixed, this is only a best-effort
// listing: words which cannot be decoded are listed as data, and the sweep
// resumes at the following word.
func Disassemble(mem memory.ReadOnlyMemory) []Line {
	var lines []Line
	//
	for address := uint(0); address < mem.Len(); {
		insn, err := Decode(mem, address)
		//
		if err != nil {
			word := mem.Read(address)
			lines = append(lines, Line{address, []int64{word}, dataText(word)})
			address++
			//
			continue
		}
		//
		words := make([]int64, insn.Width())
		//
		for i := range words {
			words[i] = mem.Read(address + uint(i))
		}
		//
		lines = append(lines, Line{address, words, insn.String()})
		address += insn.Width()
	}
	//
	return lines
}

func dataText(word int64) string {
	return fmt.Sprintf("DATA %d", word)
}
