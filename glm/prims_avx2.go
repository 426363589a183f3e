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

// Lane permutation and reduction building blocks shared by the algebra
// kernels. archsimd exposes Reverse but no general shuffles, so the rest
// go through a store/permute/load round-trip and rely on the compiler to
// keep the temporaries in registers.

var (
	negHalfF64x4     = archsimd.BroadcastFloat64x4(-0.5)
	threeHalvesF64x4 = archsimd.BroadcastFloat64x4(1.5)
)

// lane0 extracts the first lane through memory.
func lane0(v archsimd.Float64x4) float64 {
	var t [4]float64
	v.StoreSlice(t[:])
	return t[0]
}

// swapPairs swaps lanes within each 128-bit half: {a, b, c, d} -> {b, a, d, c}.
func swapPairs(v archsimd.Float64x4) archsimd.Float64x4 {
	var t [4]float64
	v.StoreSlice(t[:])
	t[0], t[1] = t[1], t[0]
	t[2], t[3] = t[3], t[2]
	return archsimd.LoadFloat64x4Slice(t[:])
}

// swapHalves exchanges the 128-bit halves: {a, b, c, d} -> {c, d, a, b}.
func swapHalves(v archsimd.Float64x4) archsimd.Float64x4 {
	var t [4]float64
	v.StoreSlice(t[:])
	t[0], t[2] = t[2], t[0]
	t[1], t[3] = t[3], t[1]
	return archsimd.LoadFloat64x4Slice(t[:])
}

// shuffleYZX rotates the first three lanes left: {x, y, z, w} -> {y, z, x, w}.
func shuffleYZX(v archsimd.Float64x4) archsimd.Float64x4 {
	var t [4]float64
	v.StoreSlice(t[:])
	t[0], t[1], t[2] = t[1], t[2], t[0]
	return archsimd.LoadFloat64x4Slice(t[:])
}

// shuffleZXY rotates the first three lanes right: {x, y, z, w} -> {z, x, y, w}.
func shuffleZXY(v archsimd.Float64x4) archsimd.Float64x4 {
	var t [4]float64
	v.StoreSlice(t[:])
	t[0], t[1], t[2] = t[2], t[0], t[1]
	return archsimd.LoadFloat64x4Slice(t[:])
}

// interleaveLo picks the even lanes of each half: {a0, b0, a2, b2}.
func interleaveLo(a, b archsimd.Float64x4) archsimd.Float64x4 {
	var ta, tb, t [4]float64
	a.StoreSlice(ta[:])
	b.StoreSlice(tb[:])
	t[0], t[1], t[2], t[3] = ta[0], tb[0], ta[2], tb[2]
	return archsimd.LoadFloat64x4Slice(t[:])
}

// interleaveHi picks the odd lanes of each half: {a1, b1, a3, b3}.
func interleaveHi(a, b archsimd.Float64x4) archsimd.Float64x4 {
	var ta, tb, t [4]float64
	a.StoreSlice(ta[:])
	b.StoreSlice(tb[:])
	t[0], t[1], t[2], t[3] = ta[1], tb[1], ta[3], tb[3]
	return archsimd.LoadFloat64x4Slice(t[:])
}

// concatLowerLower joins the lower halves of a and b: {a0, a1, b0, b1}.
func concatLowerLower(a, b archsimd.Float64x4) archsimd.Float64x4 {
	var ta, tb, t [4]float64
	a.StoreSlice(ta[:])
	b.StoreSlice(tb[:])
	t[0], t[1], t[2], t[3] = ta[0], ta[1], tb[0], tb[1]
	return archsimd.LoadFloat64x4Slice(t[:])
}

// concatUpperUpper joins the upper halves of a and b: {a2, a3, b2, b3}.
func concatUpperUpper(a, b archsimd.Float64x4) archsimd.Float64x4 {
	var ta, tb, t [4]float64
	a.StoreSlice(ta[:])
	b.StoreSlice(tb[:])
	t[0], t[1], t[2], t[3] = ta[2], ta[3], tb[2], tb[3]
	return archsimd.LoadFloat64x4Slice(t[:])
}

// dotBroadcast multiplies lanewise and reduces with two shuffled adds, so
// every lane of the result holds the full horizontal dot product.
func dotBroadcast(a, b archsimd.Float64x4) archsimd.Float64x4 {
	p := a.Mul(b)
	s := p.Add(swapPairs(p))
	return s.Add(swapHalves(s))
}

// det2Broadcast treats v as a packed 2x2 matrix {a, b, c, d} and returns
// ad - bc in every lane.
func det2Broadcast(v archsimd.Float64x4) archsimd.Float64x4 {
	p := v.Mul(v.Reverse())
	d := p.Sub(swapPairs(p))
	return archsimd.BroadcastFloat64x4(lane0(d))
}

// rsqrtNR computes 1/sqrt(x) per lane from a single-precision seed refined
// by three Newton-Raphson steps, y <- y * (1.5 - 0.5*x*y*y).
func rsqrtNR(x archsimd.Float64x4) archsimd.Float64x4 {
	var t [4]float64
	x.StoreSlice(t[:])
	for i, e := range t {
		t[i] = float64(float32(1 / math.Sqrt(e)))
	}
	y := archsimd.LoadFloat64x4Slice(t[:])
	for range 3 {
		f := negHalfF64x4.MulAdd(x.Mul(y).Mul(y), threeHalvesF64x4)
		y = y.Mul(f)
	}
	return y
}
