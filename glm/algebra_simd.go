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

// SIMD lane bridges for the algebra layer, routing to the AVX kernels in
// algebra_avx2.go.

func dotImpl4(a, b [4]float64) float64 { return dotAVX2(a, b) }
func normImpl4(a [4]float64) float64 { return normAVX2(a) }
func normalizeImpl4(a [4]float64) [4]float64 { return normalizeAVX2(a) }
func crossImpl(a, b [4]float64) [4]float64 { return crossAVX2(a, b) }

func transpose4Impl(m [16]float64) [16]float64 { return transpose4AVX2(m) }
func transpose3Impl(m [12]float64) [12]float64 { return transpose3AVX2(m) }

func det2Impl(m [4]float64) float64 { return det2AVX2(m) }
func det3Impl(m [12]float64) float64 { return det3AVX2(m) }
func det4Impl(m [16]float64) float64 { return det4AVX2(m) }

func inverse2Impl(m [4]float64) [4]float64 { return inverse2AVX2(m) }
func inverse3Impl(m [12]float64) [12]float64 { return inverse3AVX2(m) }
func inverse4Impl(m [16]float64) [16]float64 { return inverse4AVX2(m) }

func matMul2Impl(a, b [4]float64) [4]float64 { return matMul2AVX2(a, b) }
func matMul3Impl(a, b [12]float64) [12]float64 { return matMul3AVX2(a, b) }
func matMul4Impl(a, b [16]float64) [16]float64 { return matMul4AVX2(a, b) }

func matVec2Impl(m, v [4]float64) [4]float64 { return matVec2AVX2(m, v) }
func matVec3Impl(m [12]float64, v [4]float64) [4]float64 { return matVec3AVX2(m, v) }
func matVec4Impl(m [16]float64, v [4]float64) [4]float64 { return matVec4AVX2(m, v) }
