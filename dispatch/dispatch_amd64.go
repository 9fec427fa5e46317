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

//go:build amd64

package dispatch

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = Scalar
		return
	}
	currentLevel = detectX86(cpu.X86.HasAVX512F, cpu.X86.HasAVX2, cpu.X86.HasSSE2)
}

// detectX86 picks the widest level among the reported features.
func detectX86(hasAVX512F, hasAVX2, hasSSE2 bool) Level {
	switch {
	case hasAVX512F:
		return AVX512
	case hasAVX2:
		return AVX2
	case hasSSE2:
		return SSE2
	default:
		return Scalar
	}
}
