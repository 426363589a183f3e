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

import (
	"math"
	"math/rand"
	"testing"
)

// closeMat4 reports whether two matrices agree within tol at every entry.
func closeMat4(a, b Mat4[float64], tol float64) bool {
	for i := range 4 {
		for j := range 4 {
			if math.Abs(a.At(i, j)-b.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

func closeMat3(a, b Mat3[float64], tol float64) bool {
	for i := range 3 {
		for j := range 3 {
			if math.Abs(a.At(i, j)-b.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

func closeMat2(a, b Mat2[float64], tol float64) bool {
	for i := range 2 {
		for j := range 2 {
			if math.Abs(a.At(i, j)-b.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

// dominantMat4 returns a random matrix with a heavy diagonal, so it is
// comfortably invertible.
func dominantMat4() Mat4[float64] {
	m := randMat4()
	for i := range 4 {
		m.SetAt(i, i, m.At(i, i)+8)
	}
	return m
}

func dominantMat3() Mat3[float64] {
	m := Mat3[float64]{randVec3(), randVec3(), randVec3()}
	for i := range 3 {
		m.SetAt(i, i, m.At(i, i)+8)
	}
	return m
}

// TestDot tests the inner product on known values and its symmetry and
// bilinearity on random ones.
func TestDot(t *testing.T) {
	a := NewVec3(1.0, 2.0, 3.0)
	b := NewVec3(4.0, 5.0, 6.0)
	if got := a.Dot(b); got != 32 { // 1*4 + 2*5 + 3*6
		t.Errorf("dot: got %v, want 32", got)
	}
	if got := NewVec2(1.0, 1.0).Dot(NewVec2(0.0, 1.0)); got != 1 {
		t.Errorf("dot2: got %v, want 1", got)
	}
	if got := NewVec3(1.0, 1.0, 1.0).Dot(NewVec3(1.0, 1.0, 1.0)); got != 3 {
		t.Errorf("dot3 ones: got %v, want 3", got)
	}
	if got := NewVec2(3.0, 4.0).Dot(NewVec2(3.0, 4.0)); got != 25 {
		t.Errorf("dot2 self: got %v, want 25", got)
	}
	if got := NewVec4(1.0, 0.0, -1.0, 2.0).Dot(NewVec4(2.0, 7.0, 2.0, 0.5)); got != 1 {
		t.Errorf("dot4: got %v, want 1", got)
	}
	for range 50 {
		x, y, z := randVec3(), randVec3(), randVec3()
		s := rand.Float64()*4 - 2
		if d1, d2 := x.Dot(y), y.Dot(x); math.Abs(d1-d2) > 1e-12 {
			t.Errorf("dot symmetry: %v vs %v", d1, d2)
		}
		lhs := x.Add(y.MulS(s)).Dot(z)
		rhs := x.Dot(z) + s*y.Dot(z)
		if math.Abs(lhs-rhs) > 1e-9 {
			t.Errorf("dot bilinearity: %v vs %v", lhs, rhs)
		}
	}
}

// TestNorm tests the Euclidean norm, distance and integer truncation.
func TestNorm(t *testing.T) {
	if got := NewVec2(3.0, 4.0).Norm(); got != 5 {
		t.Errorf("norm: got %v, want 5", got)
	}
	if got := NewVec3(2.0, 3.0, 6.0).Norm(); got != 7 { // 4+9+36 = 49
		t.Errorf("norm3: got %v, want 7", got)
	}
	if got := NewVec3(1.0, 2.0, 3.0).Distance(NewVec3(1.0, 2.0, 3.0)); got != 0 {
		t.Errorf("distance self: got %v, want 0", got)
	}
	if got := NewVec2(0.0, 0.0).Distance(NewVec2(3.0, 4.0)); got != 5 {
		t.Errorf("distance: got %v, want 5", got)
	}
	if got := NewVec3(0.0, 0.0, 0.0).Distance(NewVec3(1.0, 2.0, 2.0)); got != 3 { // 1+4+4 = 9
		t.Errorf("distance3: got %v, want 3", got)
	}
	// Integer norms truncate toward zero.
	if got := NewVec2(int32(3), 3).Norm(); got != 4 { // sqrt(18) = 4.24..
		t.Errorf("int norm: got %v, want 4", got)
	}
	for range 50 {
		x, y := randVec3(), randVec3()
		if d := math.Abs(x.Norm() - x.Distance(Vec3[float64]{})); d > 1e-12 {
			t.Errorf("norm vs distance to zero: off by %v", d)
		}
		if d := math.Abs(x.Distance(y) - y.Distance(x)); d > 1e-12 {
			t.Errorf("distance symmetry: off by %v", d)
		}
		if d := math.Abs(x.Distance(y) - x.Sub(y).Norm()); d > 1e-12 {
			t.Errorf("distance vs norm of difference: off by %v", d)
		}
	}
}

// TestNormalized tests unit length, direction, and the zero-vector case.
func TestNormalized(t *testing.T) {
	// The reciprocal square root path refines a single precision seed, so
	// normalize carries a 1e-6 tolerance floor.
	for range 50 {
		v := randVec3().AddS(0.25)
		n := v.Normalized()
		if math.Abs(n.Norm()-1) > 1e-6 {
			t.Errorf("normalized norm: got %v for %v", n.Norm(), v)
		}
		want := v.DivS(v.Norm())
		if n.Sub(want).Abs().Norm() > 1e-6 {
			t.Errorf("normalized direction: got %v, want %v", n, want)
		}
	}
	// The zero vector has no direction; lanes come back non-finite.
	z := NewVec3(0.0, 0.0, 0.0).Normalized()
	for i := range 3 {
		if e := z.At(i); !math.IsNaN(e) && !math.IsInf(e, 0) {
			t.Errorf("normalized zero lane %d: got %v, want non-finite", i, e)
		}
	}
}

// TestCross tests the cross product on basis vectors and its properties.
func TestCross(t *testing.T) {
	x := NewVec3(1.0, 0.0, 0.0)
	y := NewVec3(0.0, 1.0, 0.0)
	z := NewVec3(0.0, 0.0, 1.0)
	if got := x.Cross(y); got != z {
		t.Errorf("x cross y: got %v, want %v", got, z)
	}
	if got := y.Cross(z); got != x {
		t.Errorf("y cross z: got %v, want %v", got, x)
	}
	if got := z.Cross(x); got != y {
		t.Errorf("z cross x: got %v, want %v", got, y)
	}
	for range 50 {
		a, b := randVec3(), randVec3()
		c := a.Cross(b)
		if math.Abs(c.Dot(a)) > 1e-9 || math.Abs(c.Dot(b)) > 1e-9 {
			t.Errorf("cross not perpendicular: %v for %v x %v", c, a, b)
		}
		if got := b.Cross(a).Add(c); got.Abs().Norm() > 1e-12 {
			t.Errorf("cross antisymmetry: %v", got)
		}
		if got := a.Cross(a); got.Abs().Norm() > 1e-12 {
			t.Errorf("a cross a: got %v", got)
		}
	}
}

// TestMatMul tests the matrix product on known values and the identity.
func TestMatMul(t *testing.T) {
	a := NewMat3(
		NewVec3(1.0, 2.0, 3.0),
		NewVec3(4.0, 5.0, 6.0),
		NewVec3(7.0, 8.0, 10.0),
	)
	id := Identity3[float64]()
	if got := a.Mul(id); got != a {
		t.Errorf("a*I: got %v", got)
	}
	if got := id.Mul(a); got != a {
		t.Errorf("I*a: got %v", got)
	}
	b := NewMat3(
		NewVec3(1.0, 0.0, 1.0),
		NewVec3(0.0, 1.0, 0.0),
		NewVec3(2.0, 0.0, 1.0),
	)
	// Row 0: (1+0+6, 0+2+0, 1+0+3) and so on.
	want := NewMat3(
		NewVec3(7.0, 2.0, 4.0),
		NewVec3(16.0, 5.0, 10.0),
		NewVec3(27.0, 8.0, 17.0),
	)
	if got := a.Mul(b); got != want {
		t.Errorf("a*b: got %v, want %v", got, want)
	}
	// Associativity on random input.
	for range 20 {
		x, y, z := randMat4(), randMat4(), randMat4()
		if !closeMat4(x.Mul(y).Mul(z), x.Mul(y.Mul(z)), 1e-9) {
			t.Errorf("matmul associativity failed")
		}
	}
}

// TestMatVec tests the matrix-vector product.
func TestMatVec(t *testing.T) {
	m := NewMat2(NewVec2(1.0, 2.0), NewVec2(3.0, 4.0))
	if got := m.MulVec(NewVec2(5.0, 6.0)); got != NewVec2(17.0, 39.0) {
		t.Errorf("mat2 mulvec: got %v, want (17, 39)", got)
	}
	m3 := NewMat3(
		NewVec3(1.0, 0.0, 0.0),
		NewVec3(0.0, 2.0, 0.0),
		NewVec3(0.0, 0.0, 3.0),
	)
	if got := m3.MulVec(NewVec3(1.0, 1.0, 1.0)); got != NewVec3(1.0, 2.0, 3.0) {
		t.Errorf("diag mulvec: got %v", got)
	}
	// (M*N)v == M(Nv) on random input.
	for range 20 {
		a, b, v := randMat4(), randMat4(), randVec4()
		l := a.Mul(b).MulVec(v)
		r := a.MulVec(b.MulVec(v))
		if l.Sub(r).Abs().Norm() > 1e-9 {
			t.Errorf("matvec compose: %v vs %v", l, r)
		}
	}
}

// TestTranspose tests known values and the involution property.
func TestTranspose(t *testing.T) {
	m := NewMat2(NewVec2(1.0, 2.0), NewVec2(3.0, 4.0))
	if got := m.Transposed(); got != NewMat2(NewVec2(1.0, 3.0), NewVec2(2.0, 4.0)) {
		t.Errorf("transpose2: got %v", got)
	}
	m3 := NewMat3(
		NewVec3(1.0, 2.0, 3.0),
		NewVec3(4.0, 5.0, 6.0),
		NewVec3(7.0, 8.0, 9.0),
	)
	want3 := NewMat3(
		NewVec3(1.0, 4.0, 7.0),
		NewVec3(2.0, 5.0, 8.0),
		NewVec3(3.0, 6.0, 9.0),
	)
	if got := m3.Transposed(); got != want3 {
		t.Errorf("transpose3: got %v", got)
	}
	for range 20 {
		m4 := randMat4()
		if got := m4.Transposed().Transposed(); got != m4 {
			t.Errorf("transpose involution: got %v, want %v", got, m4)
		}
	}
	// (AB)^T == B^T A^T.
	a, b := randMat4(), randMat4()
	if !closeMat4(a.Mul(b).Transposed(), b.Transposed().Mul(a.Transposed()), 1e-9) {
		t.Errorf("transpose of product failed")
	}
}

// TestDet tests determinants on known matrices and the product rule.
func TestDet(t *testing.T) {
	if got := NewMat2(NewVec2(1.0, 2.0), NewVec2(3.0, 4.0)).Det(); got != -2 {
		t.Errorf("det2: got %v, want -2", got)
	}
	m3 := NewMat3(
		NewVec3(2.0, 0.0, 0.0),
		NewVec3(0.0, 3.0, 0.0),
		NewVec3(0.0, 0.0, 4.0),
	)
	if got := m3.Det(); got != 24 {
		t.Errorf("det3 diag: got %v, want 24", got)
	}
	d := Identity4[float64]()
	d.SetAt(0, 0, 2)
	d.SetAt(1, 1, 3)
	d.SetAt(2, 2, 4)
	d.SetAt(3, 3, 5)
	if got := d.Det(); got != 120 {
		t.Errorf("det4 diag: got %v, want 120", got)
	}
	if got := Identity4[float64]().Det(); got != 1 {
		t.Errorf("det4 identity: got %v, want 1", got)
	}
	for range 20 {
		a, b := randMat4(), randMat4()
		if got, want := a.Mul(b).Det(), a.Det()*b.Det(); math.Abs(got-want) > 1e-6 {
			t.Errorf("det product rule: got %v, want %v", got, want)
		}
	}
}

// TestInverse tests known inverses and M * M^-1 == I on random matrices.
func TestInverse(t *testing.T) {
	m := NewMat2(NewVec2(1.0, 2.0), NewVec2(3.0, 4.0))
	want := NewMat2(NewVec2(-2.0, 1.0), NewVec2(1.5, -0.5))
	if got := m.Inverse(); !closeMat2(got, want, 1e-12) {
		t.Errorf("inverse2: got %v, want %v", got, want)
	}
	for range 30 {
		a := dominantMat4()
		if got := a.Mul(a.Inverse()); !closeMat4(got, Identity4[float64](), 1e-10) {
			t.Errorf("mat4 m*inv: got %v", got)
		}
		if got := a.Inverse().Mul(a); !closeMat4(got, Identity4[float64](), 1e-10) {
			t.Errorf("mat4 inv*m: got %v", got)
		}
	}
	for range 30 {
		a := dominantMat3()
		if got := a.Mul(a.Inverse()); !closeMat3(got, Identity3[float64](), 1e-10) {
			t.Errorf("mat3 m*inv: got %v", got)
		}
	}
	// Div is multiplication by the inverse, so a.Div(a) is the identity.
	a := dominantMat4()
	if got := a.Div(a); !closeMat4(got, Identity4[float64](), 1e-10) {
		t.Errorf("a/a: got %v", got)
	}
}

// TestSingularInverse tests that singular matrices invert to the zero matrix.
func TestSingularInverse(t *testing.T) {
	s2 := NewMat2(NewVec2(1.0, 2.0), NewVec2(2.0, 4.0))
	if got := s2.Inverse(); got != (Mat2[float64]{}) {
		t.Errorf("singular inverse2: got %v, want zero", got)
	}
	s3 := NewMat3(
		NewVec3(1.0, 2.0, 3.0),
		NewVec3(1.0, 2.0, 3.0),
		NewVec3(4.0, 5.0, 6.0),
	)
	if got := s3.Inverse(); got != (Mat3[float64]{}) {
		t.Errorf("singular inverse3: got %v, want zero", got)
	}
	// Small integer entries keep the determinant cancellation exact.
	s4 := NewMat4(
		NewVec4(1.0, 2.0, 3.0, 4.0),
		NewVec4(5.0, 6.0, 7.0, 8.0),
		NewVec4(1.0, 2.0, 3.0, 4.0),
		NewVec4(9.0, 8.0, 7.0, 1.0),
	)
	if got := s4.Inverse(); got != (Mat4[float64]{}) {
		t.Errorf("singular inverse4: got %v, want zero", got)
	}
	if got := (Mat3[float64]{}).Det(); got != 0 {
		t.Errorf("zero det: got %v", got)
	}
}

// TestMulAssign tests the in-place algebra forms.
func TestMulAssign(t *testing.T) {
	a := dominantMat4()
	b := dominantMat4()
	c := a
	c.MulAssign(b)
	if !closeMat4(c, a.Mul(b), 0) {
		t.Errorf("mulassign: got %v, want %v", c, a.Mul(b))
	}
	c.DivAssign(b)
	if !closeMat4(c, a, 1e-9) {
		t.Errorf("divassign round trip: got %v, want %v", c, a)
	}
}
