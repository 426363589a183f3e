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

// Package glm provides fixed-size 2/3/4-dimensional vector and matrix algebra
// with two interchangeable backends: a generic scalar implementation for any
// element type, and AVX double-precision kernels selected at build time.
//
// Building with GOEXPERIMENT=simd on amd64 routes every float64 operation
// through 256-bit archsimd kernels; every other build (and every non-float64
// element type) uses the scalar reference implementation. Both backends
// produce the same results up to floating-point rounding, so the scalar path
// doubles as the test oracle.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-glm/glm"
//
//	v := glm.NewVec3(1.0, 2.0, 3.0)
//	n := v.Normalized()
//	m := glm.Rotate(glm.NewVec3(0.0, 0.0, 1.0), math.Pi/2)
//	w := m.MulVec(glm.NewVec4(n.X, n.Y, n.Z, 1))
package glm

//go:generate go run ../cmd/glmgen -output aliases.go

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Element is a constraint for all types usable as vector/matrix elements.
// The elementwise arithmetic layer accepts any Element; the algebra and
// transform layers require Floats.
type Element interface {
	Floats | Integers
}

// Vec2 is a 2-dimensional vector occupying two lanes.
type Vec2[T Element] struct {
	X, Y T
}

// Vec3 is a 3-dimensional vector stored in four lanes. The fourth lane is
// padding: it is a blank field that cannot be written through the API, is
// ignored by ==, and reads as zero after every operation in this package.
// The padded layout lets float64 values map directly onto 256-bit registers.
type Vec3[T Element] struct {
	X, Y, Z T
	_       T
}

// Vec4 is a 4-dimensional vector occupying four lanes.
type Vec4[T Element] struct {
	X, Y, Z, W T
}

// Mat2 is a row-major 2x2 matrix: two Vec2 rows.
type Mat2[T Element] [2]Vec2[T]

// Mat3 is a row-major 3x3 matrix: three Vec3 rows. Each row carries the Vec3
// pad lane, so the matrix occupies 12 lanes of storage.
type Mat3[T Element] [3]Vec3[T]

// Mat4 is a row-major 4x4 matrix: four Vec4 rows.
type Mat4[T Element] [4]Vec4[T]

// NewVec2 returns the vector (x, y).
func NewVec2[T Element](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// NewVec3 returns the vector (x, y, z) with a zero pad lane.
func NewVec3[T Element](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// NewVec4 returns the vector (x, y, z, w).
func NewVec4[T Element](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// NewMat2 returns the matrix with the given rows.
func NewMat2[T Element](r0, r1 Vec2[T]) Mat2[T] {
	return Mat2[T]{r0, r1}
}

// NewMat3 returns the matrix with the given rows.
func NewMat3[T Element](r0, r1, r2 Vec3[T]) Mat3[T] {
	return Mat3[T]{r0, r1, r2}
}

// NewMat4 returns the matrix with the given rows.
func NewMat4[T Element](r0, r1, r2, r3 Vec4[T]) Mat4[T] {
	return Mat4[T]{r0, r1, r2, r3}
}

// At returns the i-th component. It panics if i is not 0 or 1.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic("glm: Vec2 index out of range")
}

// SetAt sets the i-th component. It panics if i is not 0 or 1.
func (v *Vec2[T]) SetAt(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		panic("glm: Vec2 index out of range")
	}
}

// At returns the i-th component. It panics unless 0 <= i <= 2; the pad lane
// is not addressable.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("glm: Vec3 index out of range")
}

// SetAt sets the i-th component. It panics unless 0 <= i <= 2.
func (v *Vec3[T]) SetAt(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panic("glm: Vec3 index out of range")
	}
}

// At returns the i-th component. It panics unless 0 <= i <= 3.
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic("glm: Vec4 index out of range")
}

// SetAt sets the i-th component. It panics unless 0 <= i <= 3.
func (v *Vec4[T]) SetAt(i int, x T) {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	case 3:
		v.W = x
	default:
		panic("glm: Vec4 index out of range")
	}
}

// Vec2FromSlice returns a vector whose components are copied from s.
// Missing elements are zero.
func Vec2FromSlice[T Element](s []T) Vec2[T] {
	var v Vec2[T]
	for i := 0; i < len(s) && i < 2; i++ {
		v.SetAt(i, s[i])
	}
	return v
}

// Vec3FromSlice returns a vector whose components are copied from s.
// Missing elements are zero. The slice form has no pad slot.
func Vec3FromSlice[T Element](s []T) Vec3[T] {
	var v Vec3[T]
	for i := 0; i < len(s) && i < 3; i++ {
		v.SetAt(i, s[i])
	}
	return v
}

// Vec4FromSlice returns a vector whose components are copied from s.
// Missing elements are zero.
func Vec4FromSlice[T Element](s []T) Vec4[T] {
	var v Vec4[T]
	for i := 0; i < len(s) && i < 4; i++ {
		v.SetAt(i, s[i])
	}
	return v
}

// StoreSlice writes the components to dst, stopping at len(dst).
func (v Vec2[T]) StoreSlice(dst []T) {
	for i := 0; i < len(dst) && i < 2; i++ {
		dst[i] = v.At(i)
	}
}

// StoreSlice writes the components to dst, stopping at len(dst).
// The pad lane is not written.
func (v Vec3[T]) StoreSlice(dst []T) {
	for i := 0; i < len(dst) && i < 3; i++ {
		dst[i] = v.At(i)
	}
}

// StoreSlice writes the components to dst, stopping at len(dst).
func (v Vec4[T]) StoreSlice(dst []T) {
	for i := 0; i < len(dst) && i < 4; i++ {
		dst[i] = v.At(i)
	}
}

// At returns the element at row i, column j. It panics when out of range.
func (m Mat2[T]) At(i, j int) T {
	return m[i].At(j)
}

// SetAt sets the element at row i, column j. It panics when out of range.
func (m *Mat2[T]) SetAt(i, j int, x T) {
	m[i].SetAt(j, x)
}

// Row returns row i.
func (m Mat2[T]) Row(i int) Vec2[T] {
	return m[i]
}

// SetRow replaces row i.
func (m *Mat2[T]) SetRow(i int, r Vec2[T]) {
	m[i] = r
}

// At returns the element at row i, column j. It panics when out of range.
func (m Mat3[T]) At(i, j int) T {
	return m[i].At(j)
}

// SetAt sets the element at row i, column j. It panics when out of range.
func (m *Mat3[T]) SetAt(i, j int, x T) {
	m[i].SetAt(j, x)
}

// Row returns row i.
func (m Mat3[T]) Row(i int) Vec3[T] {
	return m[i]
}

// SetRow replaces row i.
func (m *Mat3[T]) SetRow(i int, r Vec3[T]) {
	m[i] = r
}

// At returns the element at row i, column j. It panics when out of range.
func (m Mat4[T]) At(i, j int) T {
	return m[i].At(j)
}

// SetAt sets the element at row i, column j. It panics when out of range.
func (m *Mat4[T]) SetAt(i, j int, x T) {
	m[i].SetAt(j, x)
}

// Row returns row i.
func (m Mat4[T]) Row(i int) Vec4[T] {
	return m[i]
}

// SetRow replaces row i.
func (m *Mat4[T]) SetRow(i int, r Vec4[T]) {
	m[i] = r
}

// Mat2FromSlice returns a matrix filled row-major from s.
// Missing elements are zero.
func Mat2FromSlice[T Element](s []T) Mat2[T] {
	var m Mat2[T]
	for i := 0; i < len(s) && i < 4; i++ {
		m.SetAt(i/2, i%2, s[i])
	}
	return m
}

// Mat3FromSlice returns a matrix filled row-major from s (9 payload
// elements, no pad slots). Missing elements are zero.
func Mat3FromSlice[T Element](s []T) Mat3[T] {
	var m Mat3[T]
	for i := 0; i < len(s) && i < 9; i++ {
		m.SetAt(i/3, i%3, s[i])
	}
	return m
}

// Mat4FromSlice returns a matrix filled row-major from s.
// Missing elements are zero.
func Mat4FromSlice[T Element](s []T) Mat4[T] {
	var m Mat4[T]
	for i := 0; i < len(s) && i < 16; i++ {
		m.SetAt(i/4, i%4, s[i])
	}
	return m
}

// StoreSlice writes the matrix row-major to dst, stopping at len(dst).
func (m Mat2[T]) StoreSlice(dst []T) {
	for i := 0; i < len(dst) && i < 4; i++ {
		dst[i] = m.At(i/2, i%2)
	}
}

// StoreSlice writes the payload row-major to dst (9 elements, no pad
// slots), stopping at len(dst).
func (m Mat3[T]) StoreSlice(dst []T) {
	for i := 0; i < len(dst) && i < 9; i++ {
		dst[i] = m.At(i/3, i%3)
	}
}

// StoreSlice writes the matrix row-major to dst, stopping at len(dst).
func (m Mat4[T]) StoreSlice(dst []T) {
	for i := 0; i < len(dst) && i < 16; i++ {
		dst[i] = m.At(i/4, i%4)
	}
}
