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

import (
	"math"

	"simd/archsimd"
)

// AVX2 kernels for elementwise arithmetic on Float64x4. Floor and Ceil are
// not exposed by archsimd, so those kernels round elementwise through memory
// like the pure-Go bridges do.

var (
	zeroF64x4   = archsimd.BroadcastFloat64x4(0)
	oneF64x4    = archsimd.BroadcastFloat64x4(1)
	negOneF64x4 = archsimd.BroadcastFloat64x4(-1)
)

func addAVX2(a, b [4]float64) [4]float64 {
	var r [4]float64
	av := archsimd.LoadFloat64x4Slice(a[:])
	bv := archsimd.LoadFloat64x4Slice(b[:])
	av.Add(bv).StoreSlice(r[:])
	return r
}

func subAVX2(a, b [4]float64) [4]float64 {
	var r [4]float64
	av := archsimd.LoadFloat64x4Slice(a[:])
	bv := archsimd.LoadFloat64x4Slice(b[:])
	av.Sub(bv).StoreSlice(r[:])
	return r
}

func mulAVX2(a, b [4]float64) [4]float64 {
	var r [4]float64
	av := archsimd.LoadFloat64x4Slice(a[:])
	bv := archsimd.LoadFloat64x4Slice(b[:])
	av.Mul(bv).StoreSlice(r[:])
	return r
}

func divAVX2(a, b [4]float64) [4]float64 {
	var r [4]float64
	av := archsimd.LoadFloat64x4Slice(a[:])
	bv := archsimd.LoadFloat64x4Slice(b[:])
	av.Div(bv).StoreSlice(r[:])
	return r
}

func absAVX2(a [4]float64) [4]float64 {
	var r [4]float64
	archsimd.LoadFloat64x4Slice(a[:]).Abs().StoreSlice(r[:])
	return r
}

// signAVX2 builds the result with two masked merges. NaN compares false
// against zero on both sides, so NaN lanes come out as 0.
func signAVX2(a [4]float64) [4]float64 {
	var r [4]float64
	v := archsimd.LoadFloat64x4Slice(a[:])
	s := oneF64x4.Merge(zeroF64x4, v.Greater(zeroF64x4))
	s = negOneF64x4.Merge(s, v.Less(zeroF64x4))
	s.StoreSlice(r[:])
	return r
}

func floorAVX2(a [4]float64) [4]float64 {
	var r [4]float64
	for i, x := range a {
		r[i] = math.Floor(x)
	}
	return r
}

func ceilAVX2(a [4]float64) [4]float64 {
	var r [4]float64
	for i, x := range a {
		r[i] = math.Ceil(x)
	}
	return r
}

func roundAVX2(a [4]float64) [4]float64 {
	var r [4]float64
	archsimd.LoadFloat64x4Slice(a[:]).RoundToEven().StoreSlice(r[:])
	return r
}

func clampAVX2(a [4]float64, lo, hi float64) [4]float64 {
	var r [4]float64
	v := archsimd.LoadFloat64x4Slice(a[:])
	lov := archsimd.BroadcastFloat64x4(lo)
	hiv := archsimd.BroadcastFloat64x4(hi)
	v.Max(lov).Min(hiv).StoreSlice(r[:])
	return r
}
