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

// SIMD lane bridges for the arithmetic layer. Selection happens at build
// time: compiling with GOEXPERIMENT=simd on amd64 routes every float64
// operation through the AVX kernels in arith_avx2.go.

func addImpl4(a, b [4]float64) [4]float64 { return addAVX2(a, b) }
func subImpl4(a, b [4]float64) [4]float64 { return subAVX2(a, b) }
func mulImpl4(a, b [4]float64) [4]float64 { return mulAVX2(a, b) }
func divImpl4(a, b [4]float64) [4]float64 { return divAVX2(a, b) }
func absImpl4(a [4]float64) [4]float64 { return absAVX2(a) }
func signImpl4(a [4]float64) [4]float64 { return signAVX2(a) }
func floorImpl4(a [4]float64) [4]float64 { return floorAVX2(a) }
func ceilImpl4(a [4]float64) [4]float64 { return ceilAVX2(a) }
func roundImpl4(a [4]float64) [4]float64 { return roundAVX2(a) }

func clampImpl4(a [4]float64, lo, hi float64) [4]float64 { return clampAVX2(a, lo, hi) }
