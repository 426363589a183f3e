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

package glm

import "math"

// Linear-algebra layer: dot products, norms, cross products, matrix products
// and inverses. The operations are defined for every element type but are
// meant for the float instantiations; integer results follow Go's integer
// arithmetic (square roots truncate, divisions round toward zero).

func sqrtElem[T Element](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.Sqrt(float64(v)))).(T)
	case float64:
		return any(math.Sqrt(v)).(T)
	}
	return T(math.Sqrt(float64(x)))
}

// Vec2 algebra.

// Dot returns the dot product of v and o.
func (v Vec2[T]) Dot(o Vec2[T]) T { return vec2Dot(v, o) }

// Norm returns the Euclidean length, the square root of v.Dot(v).
func (v Vec2[T]) Norm() T { return vec2Norm(v) }

// Normalized returns v scaled to unit length. Normalizing the zero vector
// yields non-finite components.
func (v Vec2[T]) Normalized() Vec2[T] { return vec2Normalize(v) }

// Distance returns the Euclidean distance between v and o.
func (v Vec2[T]) Distance(o Vec2[T]) T { return v.Sub(o).Norm() }

func vec2Dot[T Element](a, b Vec2[T]) T {
	if af, ok := any(a).(Vec2[float64]); ok {
		bf := any(b).(Vec2[float64])
		return any(dotImpl4(vec2Lanes(af), vec2Lanes(bf))).(T)
	}
	return a.X*b.X + a.Y*b.Y
}

func vec2Norm[T Element](v Vec2[T]) T {
	if vf, ok := any(v).(Vec2[float64]); ok {
		return any(normImpl4(vec2Lanes(vf))).(T)
	}
	return sqrtElem(v.Dot(v))
}

func vec2Normalize[T Element](v Vec2[T]) Vec2[T] {
	if vf, ok := any(v).(Vec2[float64]); ok {
		r := vec2FromLanes(normalizeImpl4(vec2Lanes(vf)))
		return any(r).(Vec2[T])
	}
	return v.DivS(v.Norm())
}

// Vec3 algebra.

// Dot returns the dot product of v and o. The pad lane holds zero on both
// sides and never contributes.
func (v Vec3[T]) Dot(o Vec3[T]) T { return vec3Dot(v, o) }

// Norm returns the Euclidean length, the square root of v.Dot(v).
func (v Vec3[T]) Norm() T { return vec3Norm(v) }

// Normalized returns v scaled to unit length. Normalizing the zero vector
// yields non-finite components.
func (v Vec3[T]) Normalized() Vec3[T] { return vec3Normalize(v) }

// Distance returns the Euclidean distance between v and o.
func (v Vec3[T]) Distance(o Vec3[T]) T { return v.Sub(o).Norm() }

// Cross returns the cross product v x o. The result's pad lane is zero.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] { return vec3Cross(v, o) }

func vec3Dot[T Element](a, b Vec3[T]) T {
	if af, ok := any(a).(Vec3[float64]); ok {
		bf := any(b).(Vec3[float64])
		return any(dotImpl4(vec3Lanes(af), vec3Lanes(bf))).(T)
	}
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func vec3Norm[T Element](v Vec3[T]) T {
	if vf, ok := any(v).(Vec3[float64]); ok {
		return any(normImpl4(vec3Lanes(vf))).(T)
	}
	return sqrtElem(v.Dot(v))
}

func vec3Normalize[T Element](v Vec3[T]) Vec3[T] {
	if vf, ok := any(v).(Vec3[float64]); ok {
		r := vec3FromLanes(normalizeImpl4(vec3Lanes(vf)))
		return any(r).(Vec3[T])
	}
	return v.DivS(v.Norm())
}

func vec3Cross[T Element](a, b Vec3[T]) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		bf := any(b).(Vec3[float64])
		r := vec3FromLanes(crossImpl(vec3Lanes(af), vec3Lanes(bf)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Vec4 algebra.

// Dot returns the dot product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T { return vec4Dot(v, o) }

// Norm returns the Euclidean length, the square root of v.Dot(v).
func (v Vec4[T]) Norm() T { return vec4Norm(v) }

// Normalized returns v scaled to unit length. Normalizing the zero vector
// yields non-finite components.
func (v Vec4[T]) Normalized() Vec4[T] { return vec4Normalize(v) }

// Distance returns the Euclidean distance between v and o.
func (v Vec4[T]) Distance(o Vec4[T]) T { return v.Sub(o).Norm() }

func vec4Dot[T Element](a, b Vec4[T]) T {
	if af, ok := any(a).(Vec4[float64]); ok {
		bf := any(b).(Vec4[float64])
		return any(dotImpl4(vec4Lanes(af), vec4Lanes(bf))).(T)
	}
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func vec4Norm[T Element](v Vec4[T]) T {
	if vf, ok := any(v).(Vec4[float64]); ok {
		return any(normImpl4(vec4Lanes(vf))).(T)
	}
	return sqrtElem(v.Dot(v))
}

func vec4Normalize[T Element](v Vec4[T]) Vec4[T] {
	if vf, ok := any(v).(Vec4[float64]); ok {
		r := vec4FromLanes(normalizeImpl4(vec4Lanes(vf)))
		return any(r).(Vec4[T])
	}
	return v.DivS(v.Norm())
}

// Mat2 algebra.

// Mul returns the matrix product m * o.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] { return mat2Mul(m, o) }

// Div returns m multiplied by the inverse of o.
func (m Mat2[T]) Div(o Mat2[T]) Mat2[T] { return m.Mul(o.Inverse()) }

// MulVec applies m to the column vector v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] { return mat2MulVec(m, v) }

// Transposed returns the transpose. The operation is a pure permutation and
// is exact on both backends.
func (m Mat2[T]) Transposed() Mat2[T] {
	return Mat2[T]{
		Vec2[T]{X: m[0].X, Y: m[1].X},
		Vec2[T]{X: m[0].Y, Y: m[1].Y},
	}
}

// Det returns the determinant.
func (m Mat2[T]) Det() T { return mat2Det(m) }

// Inverse returns the inverse, the adjugate over the determinant. A singular
// matrix yields the all-zero matrix.
func (m Mat2[T]) Inverse() Mat2[T] { return mat2Inverse(m) }

// MulAssign right-multiplies by o in place and returns the receiver.
func (m *Mat2[T]) MulAssign(o Mat2[T]) *Mat2[T] { *m = m.Mul(o); return m }

// DivAssign right-multiplies by the inverse of o in place and returns the
// receiver.
func (m *Mat2[T]) DivAssign(o Mat2[T]) *Mat2[T] { *m = m.Div(o); return m }

func mat2Mul[T Element](a, b Mat2[T]) Mat2[T] {
	if af, ok := any(a).(Mat2[float64]); ok {
		bf := any(b).(Mat2[float64])
		r := mat2FromLanes(matMul2Impl(mat2Lanes(af), mat2Lanes(bf)))
		return any(r).(Mat2[T])
	}
	var r Mat2[T]
	for i := range 2 {
		r[i] = b[0].MulS(a[i].X).Add(b[1].MulS(a[i].Y))
	}
	return r
}

func mat2MulVec[T Element](m Mat2[T], v Vec2[T]) Vec2[T] {
	if mf, ok := any(m).(Mat2[float64]); ok {
		vf := any(v).(Vec2[float64])
		r := vec2FromLanes(matVec2Impl(mat2Lanes(mf), vec2Lanes(vf)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: m[0].Dot(v), Y: m[1].Dot(v)}
}

func mat2Det[T Element](m Mat2[T]) T {
	if mf, ok := any(m).(Mat2[float64]); ok {
		return any(det2Impl(mat2Lanes(mf))).(T)
	}
	return m[0].X*m[1].Y - m[0].Y*m[1].X
}

func mat2Inverse[T Element](m Mat2[T]) Mat2[T] {
	if mf, ok := any(m).(Mat2[float64]); ok {
		r := mat2FromLanes(inverse2Impl(mat2Lanes(mf)))
		return any(r).(Mat2[T])
	}
	d := m.Det()
	if d == 0 {
		return Mat2[T]{}
	}
	return Mat2[T]{
		Vec2[T]{X: m[1].Y / d, Y: -m[0].Y / d},
		Vec2[T]{X: -m[1].X / d, Y: m[0].X / d},
	}
}

// Mat3 algebra.

// Mul returns the matrix product m * o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] { return mat3Mul(m, o) }

// Div returns m multiplied by the inverse of o.
func (m Mat3[T]) Div(o Mat3[T]) Mat3[T] { return m.Mul(o.Inverse()) }

// MulVec applies m to the column vector v. The result's pad lane is zero.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] { return mat3MulVec(m, v) }

// Transposed returns the transpose, exact on both backends. The SIMD path
// augments to a fourth zero row, runs the 4x4 lane transpose and drops the
// extra column.
func (m Mat3[T]) Transposed() Mat3[T] { return mat3Transpose(m) }

// Det returns the determinant by cofactor expansion along the first row.
func (m Mat3[T]) Det() T { return mat3Det(m) }

// Inverse returns the inverse, the adjugate over the determinant. A singular
// matrix yields the all-zero matrix.
func (m Mat3[T]) Inverse() Mat3[T] { return mat3Inverse(m) }

// MulAssign right-multiplies by o in place and returns the receiver.
func (m *Mat3[T]) MulAssign(o Mat3[T]) *Mat3[T] { *m = m.Mul(o); return m }

// DivAssign right-multiplies by the inverse of o in place and returns the
// receiver.
func (m *Mat3[T]) DivAssign(o Mat3[T]) *Mat3[T] { *m = m.Div(o); return m }

func mat3Mul[T Element](a, b Mat3[T]) Mat3[T] {
	if af, ok := any(a).(Mat3[float64]); ok {
		bf := any(b).(Mat3[float64])
		r := mat3FromLanes(matMul3Impl(mat3Lanes(af), mat3Lanes(bf)))
		return any(r).(Mat3[T])
	}
	var r Mat3[T]
	for i := range 3 {
		r[i] = b[0].MulS(a[i].X).Add(b[1].MulS(a[i].Y)).Add(b[2].MulS(a[i].Z))
	}
	return r
}

func mat3MulVec[T Element](m Mat3[T], v Vec3[T]) Vec3[T] {
	if mf, ok := any(m).(Mat3[float64]); ok {
		vf := any(v).(Vec3[float64])
		r := vec3FromLanes(matVec3Impl(mat3Lanes(mf), vec3Lanes(vf)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: m[0].Dot(v), Y: m[1].Dot(v), Z: m[2].Dot(v)}
}

func mat3Transpose[T Element](m Mat3[T]) Mat3[T] {
	if mf, ok := any(m).(Mat3[float64]); ok {
		r := mat3FromLanes(transpose3Impl(mat3Lanes(mf)))
		return any(r).(Mat3[T])
	}
	return Mat3[T]{
		Vec3[T]{X: m[0].X, Y: m[1].X, Z: m[2].X},
		Vec3[T]{X: m[0].Y, Y: m[1].Y, Z: m[2].Y},
		Vec3[T]{X: m[0].Z, Y: m[1].Z, Z: m[2].Z},
	}
}

func mat3Det[T Element](m Mat3[T]) T {
	if mf, ok := any(m).(Mat3[float64]); ok {
		return any(det3Impl(mat3Lanes(mf))).(T)
	}
	return m[0].X*(m[1].Y*m[2].Z-m[1].Z*m[2].Y) -
		m[0].Y*(m[1].X*m[2].Z-m[1].Z*m[2].X) +
		m[0].Z*(m[1].X*m[2].Y-m[1].Y*m[2].X)
}

func mat3Inverse[T Element](m Mat3[T]) Mat3[T] {
	if mf, ok := any(m).(Mat3[float64]); ok {
		r := mat3FromLanes(inverse3Impl(mat3Lanes(mf)))
		return any(r).(Mat3[T])
	}
	c00 := m[1].Y*m[2].Z - m[1].Z*m[2].Y
	c01 := m[1].Z*m[2].X - m[1].X*m[2].Z
	c02 := m[1].X*m[2].Y - m[1].Y*m[2].X
	d := m[0].X*c00 + m[0].Y*c01 + m[0].Z*c02
	if d == 0 {
		return Mat3[T]{}
	}
	c10 := m[0].Z*m[2].Y - m[0].Y*m[2].Z
	c11 := m[0].X*m[2].Z - m[0].Z*m[2].X
	c12 := m[0].Y*m[2].X - m[0].X*m[2].Y
	c20 := m[0].Y*m[1].Z - m[0].Z*m[1].Y
	c21 := m[0].Z*m[1].X - m[0].X*m[1].Z
	c22 := m[0].X*m[1].Y - m[0].Y*m[1].X
	return Mat3[T]{
		Vec3[T]{X: c00 / d, Y: c10 / d, Z: c20 / d},
		Vec3[T]{X: c01 / d, Y: c11 / d, Z: c21 / d},
		Vec3[T]{X: c02 / d, Y: c12 / d, Z: c22 / d},
	}
}

// Mat4 algebra.

// Mul returns the matrix product m * o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] { return mat4Mul(m, o) }

// Div returns m multiplied by the inverse of o.
func (m Mat4[T]) Div(o Mat4[T]) Mat4[T] { return m.Mul(o.Inverse()) }

// MulVec applies m to the column vector v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] { return mat4MulVec(m, v) }

// Transposed returns the transpose, exact on both backends.
func (m Mat4[T]) Transposed() Mat4[T] { return mat4Transpose(m) }

// Det returns the determinant, arranged as six products of 2x2 minors.
func (m Mat4[T]) Det() T { return mat4Det(m) }

// Inverse returns the inverse, the adjugate over the determinant. A singular
// matrix yields the all-zero matrix.
func (m Mat4[T]) Inverse() Mat4[T] { return mat4Inverse(m) }

// MulAssign right-multiplies by o in place and returns the receiver.
func (m *Mat4[T]) MulAssign(o Mat4[T]) *Mat4[T] { *m = m.Mul(o); return m }

// DivAssign right-multiplies by the inverse of o in place and returns the
// receiver.
func (m *Mat4[T]) DivAssign(o Mat4[T]) *Mat4[T] { *m = m.Div(o); return m }

func mat4Mul[T Element](a, b Mat4[T]) Mat4[T] {
	if af, ok := any(a).(Mat4[float64]); ok {
		bf := any(b).(Mat4[float64])
		r := mat4FromLanes(matMul4Impl(mat4Lanes(af), mat4Lanes(bf)))
		return any(r).(Mat4[T])
	}
	var r Mat4[T]
	for i := range 4 {
		r[i] = b[0].MulS(a[i].X).
			Add(b[1].MulS(a[i].Y)).
			Add(b[2].MulS(a[i].Z)).
			Add(b[3].MulS(a[i].W))
	}
	return r
}

func mat4MulVec[T Element](m Mat4[T], v Vec4[T]) Vec4[T] {
	if mf, ok := any(m).(Mat4[float64]); ok {
		vf := any(v).(Vec4[float64])
		r := vec4FromLanes(matVec4Impl(mat4Lanes(mf), vec4Lanes(vf)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{X: m[0].Dot(v), Y: m[1].Dot(v), Z: m[2].Dot(v), W: m[3].Dot(v)}
}

func mat4Transpose[T Element](m Mat4[T]) Mat4[T] {
	if mf, ok := any(m).(Mat4[float64]); ok {
		r := mat4FromLanes(transpose4Impl(mat4Lanes(mf)))
		return any(r).(Mat4[T])
	}
	return Mat4[T]{
		Vec4[T]{X: m[0].X, Y: m[1].X, Z: m[2].X, W: m[3].X},
		Vec4[T]{X: m[0].Y, Y: m[1].Y, Z: m[2].Y, W: m[3].Y},
		Vec4[T]{X: m[0].Z, Y: m[1].Z, Z: m[2].Z, W: m[3].Z},
		Vec4[T]{X: m[0].W, Y: m[1].W, Z: m[2].W, W: m[3].W},
	}
}

func mat4Det[T Element](m Mat4[T]) T {
	if mf, ok := any(m).(Mat4[float64]); ok {
		return any(det4Impl(mat4Lanes(mf))).(T)
	}
	s0 := m[0].X*m[1].Y - m[0].Y*m[1].X
	s1 := m[0].X*m[1].Z - m[0].Z*m[1].X
	s2 := m[0].X*m[1].W - m[0].W*m[1].X
	s3 := m[0].Y*m[1].Z - m[0].Z*m[1].Y
	s4 := m[0].Y*m[1].W - m[0].W*m[1].Y
	s5 := m[0].Z*m[1].W - m[0].W*m[1].Z
	c5 := m[2].Z*m[3].W - m[2].W*m[3].Z
	c4 := m[2].Y*m[3].W - m[2].W*m[3].Y
	c3 := m[2].Y*m[3].Z - m[2].Z*m[3].Y
	c2 := m[2].X*m[3].W - m[2].W*m[3].X
	c1 := m[2].X*m[3].Z - m[2].Z*m[3].X
	c0 := m[2].X*m[3].Y - m[2].Y*m[3].X
	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

func mat4Inverse[T Element](m Mat4[T]) Mat4[T] {
	if mf, ok := any(m).(Mat4[float64]); ok {
		r := mat4FromLanes(inverse4Impl(mat4Lanes(mf)))
		return any(r).(Mat4[T])
	}
	s0 := m[0].X*m[1].Y - m[0].Y*m[1].X
	s1 := m[0].X*m[1].Z - m[0].Z*m[1].X
	s2 := m[0].X*m[1].W - m[0].W*m[1].X
	s3 := m[0].Y*m[1].Z - m[0].Z*m[1].Y
	s4 := m[0].Y*m[1].W - m[0].W*m[1].Y
	s5 := m[0].Z*m[1].W - m[0].W*m[1].Z
	c5 := m[2].Z*m[3].W - m[2].W*m[3].Z
	c4 := m[2].Y*m[3].W - m[2].W*m[3].Y
	c3 := m[2].Y*m[3].Z - m[2].Z*m[3].Y
	c2 := m[2].X*m[3].W - m[2].W*m[3].X
	c1 := m[2].X*m[3].Z - m[2].Z*m[3].X
	c0 := m[2].X*m[3].Y - m[2].Y*m[3].X
	d := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if d == 0 {
		return Mat4[T]{}
	}
	return Mat4[T]{
		Vec4[T]{
			X: (m[1].Y*c5 - m[1].Z*c4 + m[1].W*c3) / d,
			Y: (-m[0].Y*c5 + m[0].Z*c4 - m[0].W*c3) / d,
			Z: (m[3].Y*s5 - m[3].Z*s4 + m[3].W*s3) / d,
			W: (-m[2].Y*s5 + m[2].Z*s4 - m[2].W*s3) / d,
		},
		Vec4[T]{
			X: (-m[1].X*c5 + m[1].Z*c2 - m[1].W*c1) / d,
			Y: (m[0].X*c5 - m[0].Z*c2 + m[0].W*c1) / d,
			Z: (-m[3].X*s5 + m[3].Z*s2 - m[3].W*s1) / d,
			W: (m[2].X*s5 - m[2].Z*s2 + m[2].W*s1) / d,
		},
		Vec4[T]{
			X: (m[1].X*c4 - m[1].Y*c2 + m[1].W*c0) / d,
			Y: (-m[0].X*c4 + m[0].Y*c2 - m[0].W*c0) / d,
			Z: (m[3].X*s4 - m[3].Y*s2 + m[3].W*s0) / d,
			W: (-m[2].X*s4 + m[2].Y*s2 - m[2].W*s0) / d,
		},
		Vec4[T]{
			X: (-m[1].X*c3 + m[1].Y*c1 - m[1].Z*c0) / d,
			Y: (m[0].X*c3 - m[0].Y*c1 + m[0].Z*c0) / d,
			Z: (-m[3].X*s3 + m[3].Y*s1 - m[3].Z*s0) / d,
			W: (m[2].X*s3 - m[2].Y*s1 + m[2].Z*s0) / d,
		},
	}
}
