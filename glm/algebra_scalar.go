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

//go:build !amd64 || !goexperiment.simd

package glm

import "math"

// Scalar lane bridges for the algebra layer. Vector lanes are padded with
// zeros, so the 4-wide formulas hold for every shape; matrix lanes address
// element (i, j) at 4*i+j with zeroed pads, except the packed 2x2 layout
// {a, b, c, d}.

func dotImpl4(a, b [4]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func normImpl4(a [4]float64) float64 {
	return math.Sqrt(dotImpl4(a, a))
}

func normalizeImpl4(a [4]float64) [4]float64 {
	n := normImpl4(a)
	return [4]float64{a[0] / n, a[1] / n, a[2] / n, a[3] / n}
}

func crossImpl(a, b [4]float64) [4]float64 {
	return [4]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
		0,
	}
}

func transpose4Impl(m [16]float64) [16]float64 {
	var r [16]float64
	for i := range 4 {
		for j := range 4 {
			r[4*j+i] = m[4*i+j]
		}
	}
	return r
}

func transpose3Impl(m [12]float64) [12]float64 {
	var r [12]float64
	for i := range 3 {
		for j := range 3 {
			r[4*j+i] = m[4*i+j]
		}
	}
	return r
}

func det2Impl(m [4]float64) float64 {
	return m[0]*m[3] - m[1]*m[2]
}

func det3Impl(m [12]float64) float64 {
	return m[0]*(m[5]*m[10]-m[6]*m[9]) -
		m[1]*(m[4]*m[10]-m[6]*m[8]) +
		m[2]*(m[4]*m[9]-m[5]*m[8])
}

func det4Impl(m [16]float64) float64 {
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

func inverse2Impl(m [4]float64) [4]float64 {
	d := det2Impl(m)
	if d == 0 {
		return [4]float64{}
	}
	return [4]float64{m[3] / d, -m[1] / d, -m[2] / d, m[0] / d}
}

func inverse3Impl(m [12]float64) [12]float64 {
	c00 := m[5]*m[10] - m[6]*m[9]
	c01 := m[6]*m[8] - m[4]*m[10]
	c02 := m[4]*m[9] - m[5]*m[8]
	d := m[0]*c00 + m[1]*c01 + m[2]*c02
	if d == 0 {
		return [12]float64{}
	}
	c10 := m[2]*m[9] - m[1]*m[10]
	c11 := m[0]*m[10] - m[2]*m[8]
	c12 := m[1]*m[8] - m[0]*m[9]
	c20 := m[1]*m[6] - m[2]*m[5]
	c21 := m[2]*m[4] - m[0]*m[6]
	c22 := m[0]*m[5] - m[1]*m[4]
	return [12]float64{
		c00 / d, c10 / d, c20 / d, 0,
		c01 / d, c11 / d, c21 / d, 0,
		c02 / d, c12 / d, c22 / d, 0,
	}
}

func inverse4Impl(m [16]float64) [16]float64 {
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
	d := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if d == 0 {
		return [16]float64{}
	}
	return [16]float64{
		(m[5]*c5 - m[6]*c4 + m[7]*c3) / d,
		(-m[1]*c5 + m[2]*c4 - m[3]*c3) / d,
		(m[13]*s5 - m[14]*s4 + m[15]*s3) / d,
		(-m[9]*s5 + m[10]*s4 - m[11]*s3) / d,
		(-m[4]*c5 + m[6]*c2 - m[7]*c1) / d,
		(m[0]*c5 - m[2]*c2 + m[3]*c1) / d,
		(-m[12]*s5 + m[14]*s2 - m[15]*s1) / d,
		(m[8]*s5 - m[10]*s2 + m[11]*s1) / d,
		(m[4]*c4 - m[5]*c2 + m[7]*c0) / d,
		(-m[0]*c4 + m[1]*c2 - m[3]*c0) / d,
		(m[12]*s4 - m[13]*s2 + m[15]*s0) / d,
		(-m[8]*s4 + m[9]*s2 - m[11]*s0) / d,
		(-m[4]*c3 + m[5]*c1 - m[6]*c0) / d,
		(m[0]*c3 - m[1]*c1 + m[2]*c0) / d,
		(-m[12]*s3 + m[13]*s1 - m[14]*s0) / d,
		(m[8]*s3 - m[9]*s1 + m[10]*s0) / d,
	}
}

func matMul2Impl(a, b [4]float64) [4]float64 {
	return [4]float64{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
	}
}

func matMul3Impl(a, b [12]float64) [12]float64 {
	var r [12]float64
	for i := range 3 {
		for j := range 3 {
			r[4*i+j] = a[4*i]*b[j] + a[4*i+1]*b[4+j] + a[4*i+2]*b[8+j]
		}
	}
	return r
}

func matMul4Impl(a, b [16]float64) [16]float64 {
	var r [16]float64
	for i := range 4 {
		for j := range 4 {
			r[4*i+j] = a[4*i]*b[j] + a[4*i+1]*b[4+j] + a[4*i+2]*b[8+j] + a[4*i+3]*b[12+j]
		}
	}
	return r
}

func matVec2Impl(m, v [4]float64) [4]float64 {
	return [4]float64{
		m[0]*v[0] + m[1]*v[1],
		m[2]*v[0] + m[3]*v[1],
		0,
		0,
	}
}

func matVec3Impl(m [12]float64, v [4]float64) [4]float64 {
	var r [4]float64
	for i := range 3 {
		r[i] = m[4*i]*v[0] + m[4*i+1]*v[1] + m[4*i+2]*v[2]
	}
	return r
}

func matVec4Impl(m [16]float64, v [4]float64) [4]float64 {
	var r [4]float64
	for i := range 4 {
		r[i] = m[4*i]*v[0] + m[4*i+1]*v[1] + m[4*i+2]*v[2] + m[4*i+3]*v[3]
	}
	return r
}
