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

// Package ssort provides the building blocks of an in-place, branch-efficient
// multi-way sample sort (super scalar sample sort / IPS4o style).
//
// # Components
//
//   - InsertionSort and InsertionSortFunc: the small-slice base case. The
//     element being inserted is lifted into a hole that is always written
//     back, even when a comparison panics.
//   - SelectSample: a partial Fisher-Yates shuffle that moves a uniform
//     random sample to the front of a slice without allocating.
//   - BuildTree: lays out splitters chosen from a sorted sample of length
//     2^k-1 as a complete binary search tree in breadth-first order.
//   - Classify: assigns every element to one of 2^depth buckets by
//     descending the tree, processing fixed-size chunks level by level so
//     that comparisons of different elements are independent.
//   - Classifier: bundles sampling, sample sorting and tree construction
//     into a reusable value.
//
// # Example Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/ajroetker/go-samplesort/ssort"
//	)
//
//	func Histogram(data []uint64) []int {
//	    rng := rand.New(rand.NewPCG(1, 2))
//	    c := ssort.SampleClassifier(data, 4, rng) // 16 buckets
//	    return c.Counts(data)
//	}
//
// # Preconditions
//
// Sample and tree lengths are caller contracts. Public entry points check
// them once and panic with an error wrapping ErrDepth, ErrSampleSize,
// ErrTreeSize or ErrNilSink; the inner loops run without further checks.
// Building with the ssortdebug tag additionally verifies that samples passed
// to BuildTree are sorted.
//
// Floating point NaNs are not totally ordered. Sorting or classifying them
// gives an unspecified order but never loses or duplicates an element.
package ssort
