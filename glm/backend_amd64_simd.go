// Copyright 2025 go-glm Authors
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

//go:build amd64 && goexperiment.simd

package glm

import "simd/archsimd"

func init() {
	currentBackend = BackendAVX
	currentWidth = 32
	currentName = "avx2"
}

// HasAVX2 reports whether the CPU supports AVX2, independent of which
// backend was compiled in.
func HasAVX2() bool {
	return archsimd.X86.AVX2()
}

// HasAVX512 reports whether the CPU supports the AVX-512 foundation set.
// The library never emits AVX-512; this is informational only.
func HasAVX512() bool {
	return archsimd.X86.AVX512()
}
