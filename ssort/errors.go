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
	"errors"
	"fmt"
)

// Precondition violations. Functions in this package panic with an error
// wrapping one of these; recover and use errors.Is to tell them apart.
var (
	ErrDepth          = errors.New("ssort: depth out of range")
	ErrSampleSize     = errors.New("ssort: invalid sample size")
	ErrTreeSize       = errors.New("ssort: tree slice too short")
	ErrUnsortedSample = errors.New("ssort: sample is not sorted")
	ErrNilSink        = errors.New("ssort: nil sink")
)

func failf(sentinel error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...))
}
