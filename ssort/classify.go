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

import (
	"cmp"

	"github.com/ajroetker/go-samplesort/dispatch"
)

// Chunk bounds for the unrolled classification loop. The running tree
// indices of one chunk live in a stack array of maxChunkSize entries.
const (
	minChunkSize = 160
	maxChunkSize = 640
)

// defaultChunkSize keeps 40 vector registers' worth of 32-bit indices in
// flight: 160 for 16-byte vectors, 320 for AVX2 and 640 for AVX-512.
var defaultChunkSize = chunkSizeForWidth(dispatch.CurrentWidth())

func chunkSizeForWidth(width int) int {
	return min(max(40*(width/4), minChunkSize), maxChunkSize)
}

// descend moves from node r to its left child 2r+1 when v < tree[r] and to
// its right child 2r+2 otherwise. Ties go right, so a value equal to a
// splitter lands in the bucket that starts at that splitter.
func descend[T cmp.Ordered](tree []T, r uint32, v T) uint32 {
	var right uint32
	if v >= tree[r] {
		right = 1
	}
	return 2*r + 1 + right
}

// Classify computes the bucket in [0, 2^depth) of every element of data
// against a tree produced by BuildTree for the same depth, and calls
// sink(pos, bucket) once per element in ascending position order.
//
// Elements are processed in fixed-size chunks, one tree level at a time
// across the whole chunk, so the comparisons within a level do not depend
// on each other. Results do not depend on the chunk size.
//
// Classify panics if depth is out of range, tree holds fewer than
// 2^depth-1 elements, or sink is nil.
func Classify[T cmp.Ordered](data []T, depth int, tree []T, sink func(pos, bucket int)) {
	checkDepth(depth)
	checkTree(len(tree), depth)
	if sink == nil {
		failf(ErrNilSink, "Classify")
	}
	classify(data, depth, tree[:treeSize(depth)], defaultChunkSize, sink)
}

// classify assumes len(tree) == 2^depth-1 and 0 < chunk <= maxChunkSize.
func classify[T cmp.Ordered](data []T, depth int, tree []T, chunk int, sink func(pos, bucket int)) {
	firstLeaf := uint32(len(tree))
	var idx [maxChunkSize]uint32

	start := 0
	for ; start+chunk <= len(data); start += chunk {
		block := data[start : start+chunk]
		r := idx[:len(block)]
		clear(r)
		for range depth {
			for x, v := range block {
				r[x] = descend(tree, r[x], v)
			}
		}
		for x, leaf := range r {
			sink(start+x, int(leaf-firstLeaf))
		}
	}

	// Tail shorter than a chunk.
	for x := start; x < len(data); x++ {
		sink(x, classifyOne(tree, depth, data[x]))
	}
}

func classifyOne[T cmp.Ordered](tree []T, depth int, v T) int {
	var r uint32
	for range depth {
		r = descend(tree, r, v)
	}
	return int(r) - len(tree)
}
