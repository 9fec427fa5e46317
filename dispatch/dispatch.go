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

// Package dispatch detects the vector instruction set of the running CPU.
//
// The classifier in package ssort does not emit SIMD instructions itself; it
// structures its inner loop so the compiler and the out-of-order core can
// overlap independent comparisons. The register width reported here decides
// how many elements are kept in flight per classification chunk.
//
// Detection can be disabled with the SSORT_NO_SIMD environment variable, which
// forces the scalar level regardless of CPU capabilities.
package dispatch

import (
	"os"
	"strconv"
)

// Level represents the vector instruction set detected at startup.
type Level int

const (
	// Scalar indicates no usable vector unit, or SSORT_NO_SIMD is set.
	Scalar Level = iota

	// SSE2 indicates SSE2 instructions (x86-64 baseline).
	SSE2

	// AVX2 indicates AVX2 instructions (256-bit).
	AVX2

	// AVX512 indicates AVX-512 foundation instructions (512-bit).
	AVX512

	// NEON indicates ARM Advanced SIMD (128-bit).
	NEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case Scalar:
		return "scalar"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the vector register width in bytes for the level.
// Scalar reports 16 so that sizing decisions stay identical to SSE2/NEON.
func (l Level) Width() int {
	switch l {
	case AVX2:
		return 32
	case AVX512:
		return 64
	default:
		return 16
	}
}

// noSimdEnvVar is the environment variable that forces scalar mode.
const noSimdEnvVar = "SSORT_NO_SIMD"

// currentLevel is set by init() in dispatch_*.go files.
var currentLevel Level

// CurrentLevel returns the instruction set detected for this process.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns a human-readable name for the current level,
// for example "avx2", "neon" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether SSORT_NO_SIMD is set.
// Values that parse as a bool are honoured; any other non-empty value counts as true.
func NoSimdEnv() bool {
	val := os.Getenv(noSimdEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
