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

// rotateAVX2 assembles the Rodrigues rotation from the dyadic n*n', the
// identity and the cross-product matrix K, scaled by (1-cos), cos and sin.
// The axis is normalized with the refined reciprocal square root.
func rotateAVX2(axis [4]float64, s, c float64) [16]float64 {
	v := archsimd.LoadFloat64x4Slice(axis[:])
	nv := v.Mul(rsqrtNR(dotBroadcast(v, v)))
	var n [4]float64
	nv.StoreSlice(n[:])
	k := [3][4]float64{
		{0, -n[2], n[1], 0},
		{n[2], 0, -n[0], 0},
		{-n[1], n[0], 0, 0},
	}
	e := [3][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
	sv := archsimd.BroadcastFloat64x4(s)
	cv := archsimd.BroadcastFloat64x4(c)
	omc := archsimd.BroadcastFloat64x4(1 - c)
	var r [16]float64
	for i := range 3 {
		row := nv.Mul(archsimd.BroadcastFloat64x4(n[i])).Mul(omc)
		row = archsimd.LoadFloat64x4Slice(e[i][:]).MulAdd(cv, row)
		row = archsimd.LoadFloat64x4Slice(k[i][:]).MulAdd(sv, row)
		row.StoreSlice(r[4*i : 4*i+4])
	}
	r[15] = 1
	return r
}
