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

// Rom (Read-Only Memory) holds the words of a program as originally loaded.
// Its contents never change, hence it serves as the snapshot from which a
// machine's working memory is restored on reset.  Since it is immutable, a
// single Rom may safely be shared between any number of machines.
type Rom struct {
	words []int64
}

// NewRom constructs a read-only memory holding a copy of the given words.
func NewRom(words ...int64) Rom {
	return Rom{slices.Clone(words)}
}

// Read implementation for ReadOnlyMemory interface.
func (p Rom) Read(address uint) int64 {
	if address < uint(len(p.words)) {
		return p.words[address]
	}
	//
	return 0
}

// Len implementation for ReadOnlyMemory interface.
func (p Rom) Len() uint {
	return uint(len(p.words))
}

// Contents returns a copy of the words held in this memory.
func (p Rom) Contents() []int64 {
	return slices.Clone(p.words)
}
