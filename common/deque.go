/*
 * Segno - The statically typed interoperable programming language
 *
 * Copyright Segno Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

const minDequeCapacity = 16

// Deque is a double-ended queue backed by a ring buffer.
// The zero value is an empty deque ready for use.
//
// Clear keeps the allocated buffer,
// so a deque can be reused across many fill/drain cycles
// without re-allocating.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

func (d *Deque[T]) Len() int {
	return d.count
}

func (d *Deque[T]) IsEmpty() bool {
	return d.count == 0
}

// PushFront prepends an element to the front of the deque.
func (d *Deque[T]) PushFront(element T) {
	d.growIfFull()
	d.head = d.wrap(d.head - 1)
	d.buf[d.head] = element
	d.count++
}

// PushBack appends an element to the back of the deque.
func (d *Deque[T]) PushBack(element T) {
	d.growIfFull()
	d.buf[d.wrap(d.head+d.count)] = element
	d.count++
}

// PopFront removes and returns the front element.
// The second result is false if the deque is empty.
func (d *Deque[T]) PopFront() (element T, ok bool) {
	if d.count == 0 {
		return
	}
	element = d.buf[d.head]
	var zero T
	d.buf[d.head] = zero
	d.head = d.wrap(d.head + 1)
	d.count--
	return element, true
}

// PopBack removes and returns the back element.
// The second result is false if the deque is empty.
func (d *Deque[T]) PopBack() (element T, ok bool) {
	if d.count == 0 {
		return
	}
	tail := d.wrap(d.head + d.count - 1)
	element = d.buf[tail]
	var zero T
	d.buf[tail] = zero
	d.count--
	return element, true
}

// Clear removes all elements, keeping the allocated buffer.
func (d *Deque[T]) Clear() {
	var zero T
	for i := 0; i < d.count; i++ {
		d.buf[d.wrap(d.head+i)] = zero
	}
	d.head = 0
	d.count = 0
}

func (d *Deque[T]) wrap(index int) int {
	// len(d.buf) is always a power of two
	return index & (len(d.buf) - 1)
}

func (d *Deque[T]) growIfFull() {
	if d.count < len(d.buf) {
		return
	}

	newCapacity := minDequeCapacity
	if len(d.buf) > 0 {
		newCapacity = len(d.buf) * 2
	}

	newBuf := make([]T, newCapacity)
	for i := 0; i < d.count; i++ {
		newBuf[i] = d.buf[d.wrap(d.head+i)]
	}
	d.buf = newBuf
	d.head = 0
}
