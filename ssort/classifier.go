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

const (
	// defaultOversampling draws 2^2 = 4 sample elements per bucket.
	defaultOversampling = 2
	maxOversampling     = 8

	// Samples up to this length are sorted with InsertionSort.
	sampleInsertionThreshold = 64
)

// Option configures a Classifier.
type Option func(*classifierConfig)

type classifierConfig struct {
	oversampling int
	chunk        int
}

func defaultClassifierConfig() classifierConfig {
	return classifierConfig{
		oversampling: defaultOversampling,
		chunk:        defaultChunkSize,
	}
}

// WithOversampling makes SampleClassifier draw 2^(depth+shift)-1 sample
// elements instead of the default 2^(depth+2)-1. Larger samples give more
// evenly sized buckets at the cost of sorting a bigger sample. The shift is
// clamped to [0, 8] and reduced further when data is too small.
func WithOversampling(shift int) Option {
	return func(c *classifierConfig) {
		c.oversampling = min(max(shift, 0), maxOversampling)
	}
}

// WithChunkSize overrides the number of elements classified per unrolled
// chunk, which by default depends on the detected vector width. It only
// affects speed. n is clamped to [1, 640].
func WithChunkSize(n int) Option {
	return func(c *classifierConfig) {
		c.chunk = min(max(n, 1), maxChunkSize)
	}
}

// Classifier holds a classification tree and assigns values to its
// 2^depth buckets. It is immutable and safe for concurrent use.
type Classifier[T cmp.Ordered] struct {
	depth int
	tree  []T
	chunk int
}

// NewClassifier builds a classifier of the given depth from a sorted sample
// of length 2^k-1, k >= depth. It panics under the same conditions as
// BuildTree. WithOversampling has no effect here.
func NewClassifier[T cmp.Ordered](sortedSample []T, depth int, opts ...Option) *Classifier[T] {
	cfg := defaultClassifierConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newClassifier(sortedSample, depth, cfg)
}

func newClassifier[T cmp.Ordered](sortedSample []T, depth int, cfg classifierConfig) *Classifier[T] {
	checkDepth(depth)
	tree := make([]T, treeSize(depth))
	BuildTree(sortedSample, depth, tree)
	return &Classifier[T]{depth: depth, tree: tree, chunk: cfg.chunk}
}

// SampleClassifier draws a random sample from data, sorts it and builds a
// classifier of the given depth from it. The sample is moved to the front of
// data, so data is permuted but keeps its elements.
//
// It panics with ErrSampleSize when data holds fewer than 2^depth-1
// elements.
func SampleClassifier[T cmp.Ordered](data []T, depth int, rng IndexSource, opts ...Option) *Classifier[T] {
	checkDepth(depth)
	cfg := defaultClassifierConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(data) < treeSize(depth) {
		failf(ErrSampleSize, "%d elements cannot supply a sample for depth %d", len(data), depth)
	}
	sampleDepth := depth + cfg.oversampling
	for sampleDepth > depth && treeSize(sampleDepth) > len(data) {
		sampleDepth--
	}

	sample := SelectSample(data, treeSize(sampleDepth), rng)
	sortSample(sample)
	return newClassifier(sample, depth, cfg)
}

func sortSample[T cmp.Ordered](sample []T) {
	if len(sample) <= sampleInsertionThreshold {
		InsertionSort(sample)
		return
	}
	slices.Sort(sample)
}

// Depth returns the number of tree levels.
func (c *Classifier[T]) Depth() int {
	return c.depth
}

// NumBuckets returns 2^Depth().
func (c *Classifier[T]) NumBuckets() int {
	return 1 << c.depth
}

// Splitters returns a copy of the tree in breadth-first order.
func (c *Classifier[T]) Splitters() []T {
	return slices.Clone(c.tree)
}

// Bucket returns the bucket of a single value.
func (c *Classifier[T]) Bucket(v T) int {
	return classifyOne(c.tree, c.depth, v)
}

// Classify calls sink(pos, bucket) for every element of data in ascending
// position order. It panics if sink is nil.
func (c *Classifier[T]) Classify(data []T, sink func(pos, bucket int)) {
	if sink == nil {
		failf(ErrNilSink, "Classifier.Classify")
	}
	classify(data, c.depth, c.tree, c.chunk, sink)
}

// Counts returns how many elements of data fall into each bucket.
func (c *Classifier[T]) Counts(data []T) []int {
	counts := make([]int, c.NumBuckets())
	classify(data, c.depth, c.tree, c.chunk, func(_, bucket int) {
		counts[bucket]++
	})
	return counts
}
