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

// IndexSource draws uniformly distributed integers. IntN returns a value in
// [0, n) and is only called with n > 0. *math/rand/v2.Rand satisfies it.
type IndexSource interface {
	IntN(n int) int
}

// IndexSourceFunc adapts an ordinary function to IndexSource.
type IndexSourceFunc func(n int) int

// IntN calls f(n).
func (f IndexSourceFunc) IntN(n int) int {
	return f(n)
}

// SelectSample moves a uniformly random subset of min(k, len(data)) elements,
// in random order, to the front of data and returns that prefix. It performs
// exactly one draw from rng and one swap per sampled element and does not
// allocate. The remaining elements are permuted by the swaps.
//
// A k of zero or less selects nothing.
func SelectSample[T any](data []T, k int, rng IndexSource) []T {
	n := len(data)
	k = max(0, min(k, n))
	for i := range k {
		r := i + rng.IntN(n-i)
		data[i], data[r] = data[r], data[i]
	}
	return data[:k]
}
