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
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// newRand returns a deterministic generator for reproducible tests.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func randomInts(rng *rand.Rand, n, limit int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.IntN(limit)
	}
	return data
}

// requireSameElements fails unless got is a permutation of want.
func requireSameElements[T cmp.Ordered](t *testing.T, want, got []T) {
	t.Helper()
	w := slices.Clone(want)
	g := slices.Clone(got)
	slices.Sort(w)
	slices.Sort(g)
	require.Equal(t, w, g, "multiset changed")
}

// requirePanicsWith runs fn and checks that it panics with an error wrapping sentinel.
func requirePanicsWith(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected panic wrapping %v", sentinel)
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	require.True(t, errors.Is(err, sentinel), "panic %v does not wrap %v", err, sentinel)
}
