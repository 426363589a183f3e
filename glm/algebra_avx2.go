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

// AVX2 kernels for the algebra layer. The 4x4 determinant and inverse gather
// 2x2 minors from non-adjacent lane pairs; archsimd has no general shuffle,
// so the minors and cofactors are computed through memory and only the divide
// by the determinant stays vectorized.

// crossV is the vector-level cross product: two rotations, two multiplies
// and a subtract. Lane 3 cancels to zero.
func crossV(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return shuffleYZX(a).Mul(shuffleZXY(b)).Sub(shuffleZXY(a).Mul(shuffleYZX(b)))
}

func dotAVX2(a, b [4]float64) float64 {
	av := archsimd.LoadFloat64x4Slice(a[:])
	bv := archsimd.LoadFloat64x4Slice(b[:])
	return lane0(dotBroadcast(av, bv))
}

func normAVX2(a [4]float64) float64 {
	v := archsimd.LoadFloat64x4Slice(a[:])
	return lane0(dotBroadcast(v, v).Sqrt())
}

func normalizeAVX2(a [4]float64) [4]float64 {
	var r [4]float64
	v := archsimd.LoadFloat64x4Slice(a[:])
	v.Mul(rsqrtNR(dotBroadcast(v, v))).StoreSlice(r[:])
	return r
}

func crossAVX2(a, b [4]float64) [4]float64 {
	var r [4]float64
	av := archsimd.LoadFloat64x4Slice(a[:])
	bv := archsimd.LoadFloat64x4Slice(b[:])
	crossV(av, bv).StoreSlice(r[:])
	return r
}

// transpose4AVX2 runs the classic 4x4 network: two interleaves per row pair
// followed by two cross-lane half concatenations per output pair.
func transpose4AVX2(m [16]float64) [16]float64 {
	r0 := archsimd.LoadFloat64x4Slice(m[0:4])
	r1 := archsimd.LoadFloat64x4Slice(m[4:8])
	r2 := archsimd.LoadFloat64x4Slice(m[8:12])
	r3 := archsimd.LoadFloat64x4Slice(m[12:16])
	t0 := interleaveLo(r0, r1)
	t1 := interleaveHi(r0, r1)
	t2 := interleaveLo(r2, r3)
	t3 := interleaveHi(r2, r3)
	var r [16]float64
	concatLowerLower(t0, t2).StoreSlice(r[0:4])
	concatLowerLower(t1, t3).StoreSlice(r[4:8])
	concatUpperUpper(t0, t2).StoreSlice(r[8:12])
	concatUpperUpper(t1, t3).StoreSlice(r[12:16])
	return r
}

// transpose3AVX2 augments with a fourth zero row, transposes 4x4 and drops
// the extra column, which lands in the pad lanes as zero.
func transpose3AVX2(m [12]float64) [12]float64 {
	var m4 [16]float64
	copy(m4[0:12], m[:])
	t := transpose4AVX2(m4)
	var r [12]float64
	copy(r[:], t[0:12])
	return r
}

func det2AVX2(m [4]float64) float64 {
	return lane0(det2Broadcast(archsimd.LoadFloat64x4Slice(m[:])))
}

func det3AVX2(m [12]float64) float64 {
	r0 := archsimd.LoadFloat64x4Slice(m[0:4])
	r1 := archsimd.LoadFloat64x4Slice(m[4:8])
	r2 := archsimd.LoadFloat64x4Slice(m[8:12])
	return lane0(dotBroadcast(r0, crossV(r1, r2)))
}

func det4AVX2(m [16]float64) float64 {
	s0 := m[0]*m[5] - m[1]*m[4]
	s1 := m[0]*m[6] - m[2]*m[4]
	s2 := m[0]*m[7] - m[3]*m[4]
	s3 := m[1]*m[6] - m[2]*m[5]
	s4 := m[1]*m[7] - m[3]*m[5]
	s5 := m[2]*m[7] - m[3]*m[6]
	c5 := m[10]*m[15] - m[11]*m[14]
	c4 := m[9]*m[15] - m[11]*m[13]
	c3 := m[9]*m[14] - m[10]*m[13]
	c2 := m[8]*m[15] - m[11]*m[12]
	c1 := m[8]*m[14] - m[10]*m[12]
	c0 := m[8]*m[13] - m[9]*m[12]
	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

func inverse2AVX2(m [4]float64) [4]float64 {
	v := archsimd.LoadFloat64x4Slice(m[:])
	d := det2Broadcast(v)
	if lane0(d) == 0 {
		return [4]float64{}
	}
	adj := [4]float64{m[3], -m[1], -m[2], m[0]}
	var r [4]float64
	archsimd.LoadFloat64x4Slice(adj[:]).Div(d).StoreSlice(r[:])
	return r
}

func inverse3AVX2(m [12]float64) [12]float64 {
	r0 := archsimd.LoadFloat64x4Slice(m[0:4])
	r1 := archsimd.LoadFloat64x4Slice(m[4:8])
	r2 := archsimd.LoadFloat64x4Slice(m[8:12])
	x12 := crossV(r1, r2)
	d := dotBroadcast(r0, x12)
	if lane0(d) == 0 {
		return [12]float64{}
	}
	// The adjugate's columns are the three cross products; write them as
	// rows, transpose, then divide by the determinant.
	var adj [12]float64
	x12.StoreSlice(adj[0:4])
	crossV(r2, r0).StoreSlice(adj[4:8])
	crossV(r0, r1).StoreSlice(adj[8:12])
	t := transpose3AVX2(adj)
	var r [12]float64
	for i := 0; i < 12; i += 4 {
		archsimd.LoadFloat64x4Slice(t[i : i+4]).Div(d).StoreSlice(r[i : i+4])
	}
	return r
}

func inverse4AVX2(m [16]float64) [16]float64 {
	s0 := m[0]*m[5] - m[1]*m[4]
	s1 := m[0]*m[6] - m[2]*m[4]
	s2 := m[0]*m[7] - m[3]*m[4]
	s3 := m[1]*m[6] - m[2]*m[5]
	s4 := m[1]*m[7] - m[3]*m[5]
	s5 := m[2]*m[7] - m[3]*m[6]
	c5 := m[10]*m[15] - m[11]*m[14]
	c4 := m[9]*m[15] - m[11]*m[13]
	c3 := m[9]*m[14] - m[10]*m[13]
	c2 := m[8]*m[15] - m[11]*m[12]
	c1 := m[8]*m[14] - m[10]*m[12]
	c0 := m[8]*m[13] - m[9]*m[12]
	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return [16]float64{}
	}
	adj := [16]float64{
		m[5]*c5 - m[6]*c4 + m[7]*c3,
		-m[1]*c5 + m[2]*c4 - m[3]*c3,
		m[13]*s5 - m[14]*s4 + m[15]*s3,
		-m[9]*s5 + m[10]*s4 - m[11]*s3,
		-m[4]*c5 + m[6]*c2 - m[7]*c1,
		m[0]*c5 - m[2]*c2 + m[3]*c1,
		-m[12]*s5 + m[14]*s2 - m[15]*s1,
		m[8]*s5 - m[10]*s2 + m[11]*s1,
		m[4]*c4 - m[5]*c2 + m[7]*c0,
		-m[0]*c4 + m[1]*c2 - m[3]*c0,
		m[12]*s4 - m[13]*s2 + m[15]*s0,
		-m[8]*s4 + m[9]*s2 - m[11]*s0,
		-m[4]*c3 + m[5]*c1 - m[6]*c0,
		m[0]*c3 - m[1]*c1 + m[2]*c0,
		-m[12]*s3 + m[13]*s1 - m[14]*s0,
		m[8]*s3 - m[9]*s1 + m[10]*s0,
	}
	dv := archsimd.BroadcastFloat64x4(det)
	var r [16]float64
	for i := 0; i < 16; i += 4 {
		archsimd.LoadFloat64x4Slice(adj[i : i+4]).Div(dv).StoreSlice(r[i : i+4])
	}
	return r
}

// matMul2AVX2 multiplies two packed 2x2 matrices in a single register with
// duplicated half products.
func matMul2AVX2(a, b [4]float64) [4]float64 {
	av := archsimd.LoadFloat64x4Slice(a[:])
	bv := archsimd.LoadFloat64x4Slice(b[:])
	lo := concatLowerLower(bv, bv)
	hi := concatUpperUpper(bv, bv)
	var r [4]float64
	interleaveHi(av, av).MulAdd(hi, interleaveLo(av, av).Mul(lo)).StoreSlice(r[:])
	return r
}

func matMul3AVX2(a, b [12]float64) [12]float64 {
	b0 := archsimd.LoadFloat64x4Slice(b[0:4])
	b1 := archsimd.LoadFloat64x4Slice(b[4:8])
	b2 := archsimd.LoadFloat64x4Slice(b[8:12])
	var r [12]float64
	for i := range 3 {
		acc := archsimd.BroadcastFloat64x4(a[4*i]).Mul(b0)
		acc = archsimd.BroadcastFloat64x4(a[4*i+1]).MulAdd(b1, acc)
		acc = archsimd.BroadcastFloat64x4(a[4*i+2]).MulAdd(b2, acc)
		acc.StoreSlice(r[4*i : 4*i+4])
	}
	return r
}

func matMul4AVX2(a, b [16]float64) [16]float64 {
	b0 := archsimd.LoadFloat64x4Slice(b[0:4])
	b1 := archsimd.LoadFloat64x4Slice(b[4:8])
	b2 := archsimd.LoadFloat64x4Slice(b[8:12])
	b3 := archsimd.LoadFloat64x4Slice(b[12:16])
	var r [16]float64
	for i := range 4 {
		acc := archsimd.BroadcastFloat64x4(a[4*i]).Mul(b0)
		acc = archsimd.BroadcastFloat64x4(a[4*i+1]).MulAdd(b1, acc)
		acc = archsimd.BroadcastFloat64x4(a[4*i+2]).MulAdd(b2, acc)
		acc = archsimd.BroadcastFloat64x4(a[4*i+3]).MulAdd(b3, acc)
		acc.StoreSlice(r[4*i : 4*i+4])
	}
	return r
}

func matVec2AVX2(m, v [4]float64) [4]float64 {
	mv := archsimd.LoadFloat64x4Slice(m[:])
	vv := archsimd.LoadFloat64x4Slice(v[:])
	p := mv.Mul(concatLowerLower(vv, vv))
	var t [4]float64
	p.Add(swapPairs(p)).StoreSlice(t[:])
	return [4]float64{t[0], t[2], 0, 0}
}

func matVec3AVX2(m [12]float64, v [4]float64) [4]float64 {
	vv := archsimd.LoadFloat64x4Slice(v[:])
	var r [4]float64
	for i := range 3 {
		r[i] = lane0(dotBroadcast(archsimd.LoadFloat64x4Slice(m[4*i:4*i+4]), vv))
	}
	return r
}

func matVec4AVX2(m [16]float64, v [4]float64) [4]float64 {
	vv := archsimd.LoadFloat64x4Slice(v[:])
	var r [4]float64
	for i := range 4 {
		r[i] = lane0(dotBroadcast(archsimd.LoadFloat64x4Slice(m[4*i:4*i+4]), vv))
	}
	return r
}
