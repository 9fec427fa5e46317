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
	"slices"
)

// MaxDepth is the deepest classification tree supported, giving 65536 buckets.
const MaxDepth = 16

// treeSize returns the number of nodes in a complete tree with depth levels,
// which is also the breadth-first index of the first node on level depth.
// The builder places level l at tree[treeSize(l):treeSize(l+1)]; the
// classifier's descend keeps that invariant because the children of node
// treeSize(l)+j are treeSize(l+1)+2j and treeSize(l+1)+2j+1.
func treeSize(depth int) int {
	return 1<<depth - 1
}

func checkDepth(depth int) {
	if depth < 1 || depth > MaxDepth {
		failf(ErrDepth, "%d not in [1, %d]", depth, MaxDepth)
	}
}

func checkSample(m, depth int) {
	if (m+1)&m != 0 {
		failf(ErrSampleSize, "length %d is not 2^k-1", m)
	}
	if m < treeSize(depth) {
		failf(ErrSampleSize, "length %d too short for depth %d", m, depth)
	}
}

func checkTree(n, depth int) {
	if n < treeSize(depth) {
		failf(ErrTreeSize, "length %d, depth %d needs %d", n, depth, treeSize(depth))
	}
}

// BuildTree writes the splitters of a depth-level classification tree into
// tree[:2^depth-1], choosing them from sample so that the tree cuts the
// sample into 2^depth equally sized runs.
//
// sample must be sorted in ascending order and have length 2^k-1 with
// k >= depth; tree must hold at least 2^depth-1 elements. Level 0 receives
// the median of sample, level 1 the two quartiles, and so on, each level
// stored left to right after the previous one. Values are copied; tree does
// not alias sample afterwards.
//
// BuildTree panics if the lengths or depth are invalid. Sortedness is only
// verified when built with the ssortdebug tag.
func BuildTree[T cmp.Ordered](sample []T, depth int, tree []T) {
	checkDepth(depth)
	checkSample(len(sample), depth)
	checkTree(len(tree), depth)
	if debugChecks && !slices.IsSorted(sample) {
		failf(ErrUnsortedSample, "BuildTree")
	}
	buildTree(sample, depth, tree[:treeSize(depth)])
}

// buildTree assumes validated input.
func buildTree[T cmp.Ordered](sample []T, depth int, tree []T) {
	m := len(sample)
	start, step := m/2, m+1
	for level := range depth {
		out := tree[treeSize(level):treeSize(level+1)]
		j := 0
		for x := start; x < m; x += step {
			out[j] = sample[x]
			j++
		}
		start /= 2
		step /= 2
	}
}
