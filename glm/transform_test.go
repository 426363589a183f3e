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

// point extends a position to homogeneous coordinates with w = 1.
func point(v Vec3[float64]) Vec4[float64] {
	return NewVec4(v.X, v.Y, v.Z, 1)
}

// dir extends a direction to homogeneous coordinates with w = 0.
func dir(v Vec3[float64]) Vec4[float64] {
	return NewVec4(v.X, v.Y, v.Z, 0)
}

func closeVec4(a, b Vec4[float64], tol float64) bool {
	return a.Sub(b).Abs().Norm() <= tol
}

// TestTranslate tests that translation moves points and ignores directions.
func TestTranslate(t *testing.T) {
	m := Translate(NewVec3(1.0, 2.0, 3.0))
	if got := m.MulVec(point(NewVec3(4.0, 5.0, 6.0))); got != NewVec4(5.0, 7.0, 9.0, 1.0) {
		t.Errorf("translate point: got %v", got)
	}
	d := dir(NewVec3(4.0, 5.0, 6.0))
	if got := m.MulVec(d); got != d {
		t.Errorf("translate direction: got %v, want %v", got, d)
	}
	if got := m.At(0, 3); got != 1 {
		t.Errorf("translate m(0,3): got %v", got)
	}
	if got := m.Det(); got != 1 {
		t.Errorf("translate det: got %v, want 1", got)
	}
}

// TestScale tests the diagonal scale matrix.
func TestScale(t *testing.T) {
	m := Scale(NewVec3(2.0, 3.0, 4.0))
	if got := m.MulVec(point(NewVec3(1.0, 1.0, 1.0))); got != NewVec4(2.0, 3.0, 4.0, 1.0) {
		t.Errorf("scale point: got %v", got)
	}
	if got := m.Det(); got != 24 {
		t.Errorf("scale det: got %v, want 24", got)
	}
	if got := m.MulVec(NewVec4(0.0, 0.0, 0.0, 1.0)); got != NewVec4(0.0, 0.0, 0.0, 1.0) {
		t.Errorf("scale origin: got %v", got)
	}
}

// TestRotate tests quarter turns about the z axis against literal results.
func TestRotate(t *testing.T) {
	r := Rotate(NewVec3(0.0, 0.0, 1.0), math.Pi/2)
	if got := r.MulVec(dir(NewVec3(1.0, 0.0, 0.0))); !closeVec4(got, NewVec4(0.0, 1.0, 0.0, 0.0), 1e-12) {
		t.Errorf("rotate x: got %v, want (0,1,0,0)", got)
	}
	if got := r.MulVec(dir(NewVec3(0.0, 1.0, 0.0))); !closeVec4(got, NewVec4(-1.0, 0.0, 0.0, 0.0), 1e-12) {
		t.Errorf("rotate y: got %v, want (-1,0,0,0)", got)
	}
	// The rotation axis stays fixed and w passes through.
	if got := r.MulVec(point(NewVec3(0.0, 0.0, 5.0))); !closeVec4(got, NewVec4(0.0, 0.0, 5.0, 1.0), 1e-12) {
		t.Errorf("rotate axis point: got %v", got)
	}
	if got := Rotate(NewVec3(3.0, -1.0, 2.0), 0.0); got != Identity4[float64]() {
		t.Errorf("rotate by zero: got %v", got)
	}
}

// TestRotateProperties tests orthonormality, length preservation and
// angle addition on random axes.
func TestRotateProperties(t *testing.T) {
	for range 30 {
		axis := randVec3().AddS(0.5)
		theta := rand.Float64() * 2 * math.Pi
		r := Rotate(axis, theta)
		if !closeMat4(r.Mul(r.Transposed()), Identity4[float64](), 1e-6) {
			t.Errorf("r*rT: got %v for axis %v theta %v", r.Mul(r.Transposed()), axis, theta)
		}
		if got := r.Det(); math.Abs(got-1) > 1e-6 {
			t.Errorf("rotation det: got %v", got)
		}
		v := dir(randVec3())
		if got := r.MulVec(v).Norm(); math.Abs(got-v.Norm()) > 1e-6 {
			t.Errorf("rotation norm: got %v, want %v", got, v.Norm())
		}
		a := rand.Float64() * 3
		b := rand.Float64() * 3
		lhs := Rotate(axis, a).Mul(Rotate(axis, b))
		if !closeMat4(lhs, Rotate(axis, a+b), 1e-6) {
			t.Errorf("angle addition failed for axis %v", axis)
		}
	}
	// Axis length does not matter: doubling is exact on both backends.
	if got := Rotate(NewVec3(0.0, 0.0, 2.0), 1.0); !closeMat4(got, Rotate(NewVec3(0.0, 0.0, 1.0), 1.0), 1e-12) {
		t.Errorf("axis scaling changed the rotation")
	}
}

// TestRotateFloat32 tests the generic path on float32 elements.
func TestRotateFloat32(t *testing.T) {
	r := Rotate(NewVec3[float32](0, 0, 1), float32(math.Pi/2))
	got := r.MulVec(NewVec4[float32](1, 0, 0, 0))
	if math.Abs(float64(got.X)) > 1e-6 || math.Abs(float64(got.Y)-1) > 1e-6 {
		t.Errorf("float32 rotate: got %v", got)
	}
}

// TestAlign tests direction alignment including the degenerate cases.
func TestAlign(t *testing.T) {
	if got := Align(NewVec3(2.0, 0.0, 0.0), NewVec3(5.0, 0.0, 0.0)); got != Identity4[float64]() {
		t.Errorf("align codirectional: got %v", got)
	}
	v := NewVec3(1.0, 2.0, 2.0)
	if got := Align(v, v); got != Identity4[float64]() {
		t.Errorf("align self: got %v", got)
	}
	if got := Align(v, v.Neg()); got != Identity4[float64]().Neg() {
		t.Errorf("align antiparallel: got %v", got)
	}
	// x to y is the quarter turn about z.
	r := Align(NewVec3(1.0, 0.0, 0.0), NewVec3(0.0, 1.0, 0.0))
	if got := r.MulVec(dir(NewVec3(1.0, 0.0, 0.0))); !closeVec4(got, NewVec4(0.0, 1.0, 0.0, 0.0), 1e-12) {
		t.Errorf("align x to y: got %v", got)
	}
	for range 30 {
		a := randVec3().AddS(0.5)
		b := randVec3().SubS(0.5)
		m := Align(a, b)
		got := m.MulVec(dir(a.Normalized()))
		want := dir(b.Normalized())
		if !closeVec4(got, want, 1e-6) {
			t.Errorf("align %v to %v: got %v, want %v", a, b, got, want)
		}
	}
}

// TestLookAt tests the canonical view and the general camera contract.
func TestLookAt(t *testing.T) {
	// A camera at the origin looking down -z is the identity view.
	if got := LookAt(NewVec3(0.0, 0.0, 0.0), NewVec3(0.0, 0.0, -1.0), NewVec3(0.0, 1.0, 0.0)); got != Identity4[float64]() {
		t.Errorf("canonical lookat: got %v", got)
	}
	eye := NewVec3(3.0, 4.0, 5.0)
	ctr := NewVec3(0.0, 1.0, -2.0)
	up := NewVec3(0.0, 1.0, 0.0)
	m := LookAt(eye, ctr, up)
	// The eye maps to the origin.
	if got := m.MulVec(point(eye)); !closeVec4(got, NewVec4(0.0, 0.0, 0.0, 1.0), 1e-6) {
		t.Errorf("eye to origin: got %v", got)
	}
	// The center lands on the -z axis at its distance from the eye.
	d := ctr.Distance(eye)
	if got := m.MulVec(point(ctr)); !closeVec4(got, NewVec4(0.0, 0.0, -d, 1.0), 1e-6) {
		t.Errorf("center on -z: got %v, want (0,0,%v,1)", got, -d)
	}
	// The rotation block is orthonormal.
	basis := Mat4[float64]{m[0], m[1], m[2], NewVec4(0.0, 0.0, 0.0, 1.0)}
	for i := range 3 {
		basis[i].W = 0
	}
	if !closeMat4(basis.Mul(basis.Transposed()), Identity4[float64](), 1e-6) {
		t.Errorf("view basis not orthonormal: %v", basis)
	}
}

// TestPerspective tests the projection entries and the depth mapping.
func TestPerspective(t *testing.T) {
	m := Perspective(math.Pi/2, 2.0, 1.0, 3.0)
	if got := m.At(0, 0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("m(0,0): got %v, want 0.5", got)
	}
	if got := m.At(1, 1); math.Abs(got-1) > 1e-12 {
		t.Errorf("m(1,1): got %v, want 1", got)
	}
	if got := m.At(2, 2); got != -2 { // -(3+1)/(3-1)
		t.Errorf("m(2,2): got %v, want -2", got)
	}
	if got := m.At(2, 3); got != -3 { // -2*3*1/(3-1)
		t.Errorf("m(2,3): got %v, want -3", got)
	}
	if got := m.At(3, 2); got != -1 {
		t.Errorf("m(3,2): got %v, want -1", got)
	}
	if got := m.At(3, 3); got != 0 {
		t.Errorf("m(3,3): got %v, want 0", got)
	}
	// Near and far plane centers project to depth -1 and +1.
	near := m.MulVec(NewVec4(0.0, 0.0, -1.0, 1.0))
	if got := near.Z / near.W; got != -1 {
		t.Errorf("near depth: got %v, want -1", got)
	}
	far := m.MulVec(NewVec4(0.0, 0.0, -3.0, 1.0))
	if got := far.Z / far.W; got != 1 {
		t.Errorf("far depth: got %v, want 1", got)
	}
}

// TestOrtho tests the symmetric unit cube and a general box.
func TestOrtho(t *testing.T) {
	want := Identity4[float64]()
	want.SetAt(2, 2, -1)
	if got := Ortho(-1.0, 1.0, -1.0, 1.0, -1.0, 1.0); got != want {
		t.Errorf("unit ortho: got %v, want %v", got, want)
	}
	m := Ortho(0.0, 2.0, 0.0, 4.0, 0.5, 10.0)
	hi := m.MulVec(NewVec4(2.0, 4.0, -10.0, 1.0))
	if !closeVec4(hi, NewVec4(1.0, 1.0, 1.0, 1.0), 1e-12) {
		t.Errorf("ortho far corner: got %v", hi)
	}
	lo := m.MulVec(NewVec4(0.0, 0.0, -0.5, 1.0))
	if !closeVec4(lo, NewVec4(-1.0, -1.0, -1.0, 1.0), 1e-12) {
		t.Errorf("ortho near corner: got %v", lo)
	}
}

// TestTransformCompose tests a translate * rotate * scale pipeline against
// stepwise application.
func TestTransformCompose(t *testing.T) {
	for range 20 {
		tr := randVec3()
		axis := randVec3().AddS(0.5)
		theta := rand.Float64() * 2
		sc := randVec3().Abs().AddS(0.5)
		m := Translate(tr).Mul(Rotate(axis, theta)).Mul(Scale(sc))
		p := randVec3()
		rp := Rotate(axis, theta).MulVec(point(p.Mul(sc)))
		want := NewVec4(rp.X+tr.X, rp.Y+tr.Y, rp.Z+tr.Z, 1)
		if got := m.MulVec(point(p)); !closeVec4(got, want, 1e-9) {
			t.Errorf("compose: got %v, want %v", got, want)
		}
	}
}
