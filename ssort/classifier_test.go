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
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassifier(t *testing.T) {
	c := NewClassifier([]int{1, 3, 4, 4, 6, 7, 8}, 3)

	assert.Equal(t, 3, c.Depth())
	assert.Equal(t, 8, c.NumBuckets())
	assert.Equal(t, []int{4, 3, 7, 1, 4, 6, 8}, c.Splitters())

	splitters := c.Splitters()
	splitters[0] = 100
	assert.Equal(t, 4, c.Splitters()[0], "Splitters must return a copy")

	data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	assert.Equal(t, []int{1, 2, 1, 0, 2, 1, 1, 2}, c.Counts(data))
	for v, want := range []int{0, 1, 1, 2, 4, 4, 5, 6, 7, 7} {
		assert.Equal(t, want, c.Bucket(v), "Bucket(%d)", v)
	}
}

func TestNewClassifierPreconditions(t *testing.T) {
	requirePanicsWith(t, ErrDepth, func() { NewClassifier([]int{1}, 0) })
	requirePanicsWith(t, ErrSampleSize, func() { NewClassifier([]int{1, 2}, 1) })
	requirePanicsWith(t, ErrSampleSize, func() { NewClassifier([]int{1, 2, 3}, 3) })
}

func TestClassifierBucketMatchesClassify(t *testing.T) {
	rng := newRand(31)
	data := randomInts(rng, 3000, 1<<16)
	c := SampleClassifier(data, 5, rng)

	c.Classify(data, func(pos, bucket int) {
		require.Equal(t, c.Bucket(data[pos]), bucket, "pos=%d", pos)
	})
}

func TestSampleClassifierBalanced(t *testing.T) {
	const n = 100_000
	rng := newRand(2025)
	data := randomInts(rng, n, 1_000_000)
	orig := slices.Clone(data)

	c := SampleClassifier(data, 4, rng)
	requireSameElements(t, orig, data)

	// Default oversampling draws 2^(4+2)-1 elements and sorts them in place.
	assert.True(t, slices.IsSorted(data[:treeSize(6)]), "sample prefix not sorted")

	counts := c.Counts(data)
	require.Len(t, counts, 16)
	total := 0
	for b, cnt := range counts {
		assert.Positive(t, cnt, "bucket %d empty", b)
		assert.Less(t, cnt, n/2, "bucket %d holds %d of %d elements", b, cnt, n)
		total += cnt
	}
	assert.Equal(t, n, total)
}

func TestSampleClassifierMonotone(t *testing.T) {
	rng := newRand(606)
	data := randomInts(rng, 20_000, 500) // many duplicates
	c := SampleClassifier(data, 6, rng)

	slices.Sort(data)
	prev := 0
	for _, v := range data {
		b := c.Bucket(v)
		require.GreaterOrEqual(t, b, prev, "value %d moved to an earlier bucket", v)
		prev = b
	}
}

func TestSampleClassifierSampleSize(t *testing.T) {
	tests := []struct {
		name      string
		n, depth  int
		opts      []Option
		wantDraws int
	}{
		{"default", 1000, 3, nil, 31},
		{"no_oversampling", 1000, 3, []Option{WithOversampling(0)}, 7},
		{"negative_clamped", 1000, 3, []Option{WithOversampling(-4)}, 7},
		{"more_oversampling", 1000, 3, []Option{WithOversampling(3)}, 63},
		{"shrinks_to_fit", 100, 3, []Option{WithOversampling(100)}, 63},
		{"small_data", 10, 2, nil, 7},
		{"exact_fit", 7, 3, nil, 7},
		{"large_sample_uses_stdlib_sort", 5000, 5, nil, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := randomInts(newRand(uint64(tt.n)), tt.n, 1000)
			src := &countingSource{src: newRand(9)}

			c := SampleClassifier(data, tt.depth, src, tt.opts...)

			assert.Len(t, src.bounds, tt.wantDraws)
			assert.True(t, slices.IsSorted(data[:tt.wantDraws]), "sample prefix not sorted")
			assert.Equal(t, tt.depth, c.Depth())
		})
	}
}

func TestSampleClassifierTooLittleData(t *testing.T) {
	requirePanicsWith(t, ErrSampleSize, func() {
		SampleClassifier([]int{1, 2}, 2, newRand(1))
	})
	requirePanicsWith(t, ErrDepth, func() {
		SampleClassifier([]int{1, 2}, 0, newRand(1))
	})
}

func TestClassifierChunkSizeOption(t *testing.T) {
	rng := newRand(17)
	sample := randomInts(rng, treeSize(5), 1<<20)
	slices.Sort(sample)
	data := randomInts(rng, 2500, 1<<20)

	ref := NewClassifier(sample, 5)
	want := ref.Counts(data)

	for _, chunk := range []int{-3, 0, 1, 5, 160, 333, 640, 10_000} {
		c := NewClassifier(sample, 5, WithChunkSize(chunk))
		assert.Equal(t, want, c.Counts(data), "chunk=%d", chunk)
	}
}

func TestWithChunkSizeClamps(t *testing.T) {
	cfg := defaultClassifierConfig()
	WithChunkSize(0)(&cfg)
	assert.Equal(t, 1, cfg.chunk)
	WithChunkSize(1 << 20)(&cfg)
	assert.Equal(t, maxChunkSize, cfg.chunk)
	WithOversampling(99)(&cfg)
	assert.Equal(t, maxOversampling, cfg.oversampling)
}

func TestClassifierConcurrentUse(t *testing.T) {
	rng := newRand(4)
	data := randomInts(rng, 10_000, 1<<16)
	c := SampleClassifier(data, 6, rng)
	want := c.Counts(data)

	var wg sync.WaitGroup
	results := make([][]int, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = c.Counts(data)
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
}

func TestClassifierNilSink(t *testing.T) {
	c := NewClassifier([]int{1, 2, 3}, 1)
	requirePanicsWith(t, ErrNilSink, func() { c.Classify([]int{1}, nil) })
}
