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
package util

import "slices"

// Permutations enumerates every ordering of the given items, calling fn for
// each.  Orderings are produced in lexicographic order of item positions, so
// the first ordering is items itself and the last is its reverse.  Each
// ordering passed to fn is a fresh slice which fn may retain.  Enumeration
// stops early if fn returns false.
func Permutations[T any](items []T, fn func([]T) bool) {
	var indices = make([]int, len(items))
	//
	for i := range indices {
		indices[i] = i
	}
	//
	for {
		ith := make([]T, len(items))
		//
		for i, j := range indices {
			ith[i] = items[j]
		}
		//
		if !fn(ith) || !nextPermutation(indices) {
			return
		}
	}
}

// Factorial returns n! for small n, as used to size permutation searches.
func Factorial(n uint) uint {
	var r uint = 1
	//
	for i := uint(2); i <= n; i++ {
		r *= i
	}
	//
	return r
}

// Rearrange indices into the lexicographically next ordering, returning false
// when they are already in the last (i.e. descending) ordering.
func nextPermutation(indices []int) bool {
	// Find rightmost ascent
	i := len(indices) - 2
	for i >= 0 && indices[i] >= indices[i+1] {
		i--
	}
	//
	if i < 0 {
		return false
	}
	// Find rightmost element larger than the pivot
	j := len(indices) - 1
	for indices[j] <= indices[i] {
		j--
	}
	//
	indices[i], indices[j] = indices[j], indices[i]
	slices.Reverse(indices[i+1:])
	//
	return true
}
