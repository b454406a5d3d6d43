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

// MAX_ADDRESS is the highest address which a program may write.  Memory is
// held densely, hence writes beyond this would demand unreasonable amounts of
// storage.
const MAX_ADDRESS = uint(1<<24) - 1

// ReadOnlyMemory represents a form of memory that can only be read, but never
// written.  All locations at or beyond the extent of the memory hold zero, so
// reading can never fail.
type ReadOnlyMemory interface {
	// Read the word at a given address.  Addresses at or beyond the current
	// extent read as zero.
	Read(address uint) int64
	// Len returns the extent of this memory.  That is, one past the highest
	// address which has been given a value.
	Len() uint
}

// Memory represents (in many ways) the simplest form of memory which can be
// read or written without restrictions.  Initially, all locations can be
// considered to hold zero.  Thus, reading a location which has not yet been
// written will return zero; otherwise, it will return the last value written.
// The extent of a memory never shrinks, and always covers every address ever
// written.
type Memory interface {
	ReadOnlyMemory
	// Write a given value to a given address, overwriting the previous value
	// stored at that address.  Writing beyond the current extent grows the
	// memory, zero-filling all intermediate locations.
	Write(address uint, value int64)
	// Return the contents of this memory, from address zero up to its
	// extent.
	Contents() []int64
}
