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
package memory

import "slices"

// Ram is a flat-slice implementation of Memory backed by an []int64.  The
// backing slice is grown on demand when an address beyond its extent is
// written, such that programs can freely use scratch locations past the end of
// their own code.
type Ram struct {
	data []int64
}

// NewRam constructs a random-access memory whose initial contents are a copy
// of the given words.
func NewRam(init ...int64) *Ram {
	return &Ram{slices.Clone(init)}
}

// Read implementation for ReadOnlyMemory interface.
func (p *Ram) Read(address uint) int64 {
	if address < uint(len(p.data)) {
		return p.data[address]
	}
	//
	return 0
}

// Write implementation for Memory interface.
func (p *Ram) Write(address uint, value int64) {
	if n := uint(len(p.data)); address >= n {
		p.data = slices.Grow(p.data, int(address+1-n))[:address+1]
		// Spare capacity may hold stale words from before a reset
		clear(p.data[n:])
	}
	//
	p.data[address] = value
}

// Len implementation for ReadOnlyMemory interface.
func (p *Ram) Len() uint {
	return uint(len(p.data))
}

// Contents implementation for Memory interface.  The returned slice is a copy,
// hence modifying it does not affect this memory.
func (p *Ram) Contents() []int64 {
	return slices.Clone(p.data)
}

// Reset the contents of this memory to match those of the given read-only
// memory.  The extent of this memory becomes that of the snapshot.
func (p *Ram) Reset(snapshot Rom) {
	p.data = append(p.data[:0], snapshot.words...)
}

// Clone returns a memory with the same contents which shares no storage with
// this one.
func (p *Ram) Clone() *Ram {
	return &Ram{slices.Clone(p.data)}
}
