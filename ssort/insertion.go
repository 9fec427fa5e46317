// Copyright 2025 go-samplesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ssort

import "cmp"

// hole is the slot of the element currently being inserted. elem is the
// lifted value and pos the gap it will be written back to; data[pos] holds a
// stale copy of a neighbour until fill runs.
type hole[T any] struct {
	data []T
	elem T
	pos  int
}

// fill writes the lifted element into the gap. It is deferred so that the
// slice stays a permutation of its input when a comparison panics.
func (h *hole[T]) fill() {
	h.data[h.pos] = h.elem
}

// InsertionSort sorts data in ascending order by inserting each element into
// the sorted prefix before it. Elements are moved one slot at a time through
// a single hole, so each insertion writes every shifted element exactly once.
//
// The sort is stable, allocates nothing and runs in O(n²); use it for slices
// of a few dozen elements.
func InsertionSort[T cmp.Ordered](data []T) {
	for i := 1; i < len(data); i++ {
		insertOrdered(data, i)
	}
}

// insertOrdered moves data[i] into place within the sorted prefix data[:i].
func insertOrdered[T cmp.Ordered](data []T, i int) {
	h := hole[T]{data: data, elem: data[i], pos: i}
	defer h.fill()

	for j := i - 1; j >= 0 && data[j] > h.elem; j-- {
		data[j+1] = data[j]
		h.pos = j
	}
}

// InsertionSortFunc sorts data in ascending order as determined by cmp, which
// must return a negative number when a < b, a positive number when a > b and
// zero otherwise. Like InsertionSort it is stable and allocation-free.
//
// If cmp panics the panic propagates to the caller, and data is left holding
// a permutation of its original elements, possibly unsorted.
func InsertionSortFunc[T any](data []T, cmp func(a, b T) int) {
	for i := 1; i < len(data); i++ {
		insertFunc(data, i, cmp)
	}
}

func insertFunc[T any](data []T, i int, cmp func(a, b T) int) {
	h := hole[T]{data: data, elem: data[i], pos: i}
	defer h.fill()

	for j := i - 1; j >= 0 && cmp(data[j], h.elem) > 0; j-- {
		data[j+1] = data[j]
		h.pos = j
	}
}
