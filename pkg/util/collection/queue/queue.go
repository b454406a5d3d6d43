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
package queue

import "slices"

// Queue represents an unbounded FIFO queue which is implemented using an
// array.  Items are removed in exactly the order they were added.  Popped
// slots at the front are reclaimed lazily, once they account for at least half
// of the backing array.
type Queue[T any] struct {
	items []T
	// Index of the current head within items.
	head int
}

// NewQueue returns a queue initialised with the given items, where the first
// item given is the first to be popped.
func NewQueue[T any](items ...T) *Queue[T] {
	return &Queue[T]{slices.Clone(items), 0}
}

// IsEmpty checks whether or not there are still items in the queue.
func (p *Queue[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of items in the queue.
func (p *Queue[T]) Len() uint {
	return uint(len(p.items) - p.head)
}

// Push a new item onto the back of the queue.
func (p *Queue[T]) Push(item T) {
	p.items = append(p.items, item)
}

// PushAll pushes zero or more items onto the back of the queue, such that the
// first given is the first of them to be popped.
func (p *Queue[T]) PushAll(items ...T) {
	p.items = append(p.items, items...)
}

// Peek at the nth item from the front of the queue.
func (p *Queue[T]) Peek(offset uint) T {
	var n = p.head + int(offset)
	//
	if n >= len(p.items) {
		panic("peek out-of-bounds")
	}
	//
	return p.items[n]
}

// Pop the first item off the front of the queue.  Popping an empty queue is a
// programming error and panics.
func (p *Queue[T]) Pop() T {
	var empty T
	//
	if p.IsEmpty() {
		panic("cannot pop from empty queue")
	}
	//
	item := p.items[p.head]
	// Release reference held by the vacated slot
	p.items[p.head] = empty
	p.head++
	// Compact once the dead prefix dominates
	if p.head == len(p.items) {
		p.items, p.head = p.items[:0], 0
	} else if p.head >= len(p.items)/2 && p.head >= 32 {
		p.items, p.head = slices.Clone(p.items[p.head:]), 0
	}
	//
	return item
}

// Clear removes all items from the queue.
func (p *Queue[T]) Clear() {
	p.items, p.head = nil, 0
}

// Items returns a copy of the queue contents, ordered from front to back.
func (p *Queue[T]) Items() []T {
	return slices.Clone(p.items[p.head:])
}

// Clone returns a queue holding the same items which shares no storage with
// this one.
func (p *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{slices.Clone(p.items[p.head:]), 0}
}
