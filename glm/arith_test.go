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

func randVec3() Vec3[float64] {
	return NewVec3(rand.Float64()*4-2, rand.Float64()*4-2, rand.Float64()*4-2)
}

func randVec4() Vec4[float64] {
	return NewVec4(rand.Float64()*4-2, rand.Float64()*4-2, rand.Float64()*4-2, rand.Float64()*4-2)
}

func randMat4() Mat4[float64] {
	return Mat4[float64]{randVec4(), randVec4(), randVec4(), randVec4()}
}

// TestVec3Arithmetic tests the binary elementwise operations on float64.
func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1.0, -2.0, 3.0)
	b := NewVec3(4.0, 0.5, -2.0)
	tests := []struct {
		name string
		got  Vec3[float64]
		want Vec3[float64]
	}{
		{"add", a.Add(b), NewVec3(5.0, -1.5, 1.0)},
		{"sub", a.Sub(b), NewVec3(-3.0, -2.5, 5.0)},
		{"mul", a.Mul(b), NewVec3(4.0, -1.0, -6.0)},
		{"div", a.Div(b), NewVec3(0.25, -4.0, -1.5)},
		{"adds", a.AddS(1), NewVec3(2.0, -1.0, 4.0)},
		{"subs", a.SubS(1), NewVec3(0.0, -3.0, 2.0)},
		{"muls", a.MulS(-2), NewVec3(-2.0, 4.0, -6.0)},
		{"divs", a.DivS(2), NewVec3(0.5, -1.0, 1.5)},
		{"neg", a.Neg(), NewVec3(-1.0, 2.0, -3.0)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

// TestArithmeticIntegerTypes covers the arithmetic layer across the integer
// element types.
func TestArithmeticIntegerTypes(t *testing.T) {
	checkInts[int16](t)
	checkInts[int32](t)
	checkInts[int64](t)
	checkUints[uint16](t)
	checkUints[uint32](t)
	checkUints[uint64](t)
}

func checkInts[T SignedInts](t *testing.T) {
	t.Helper()
	a := NewVec4(T(6), -3, 0, 9)
	b := NewVec4(T(2), 3, 5, -3)
	if got := a.Add(b); got != NewVec4(T(8), 0, 5, 6) {
		t.Errorf("int add: got %v", got)
	}
	if got := a.Mul(b); got != NewVec4(T(12), -9, 0, -27) {
		t.Errorf("int mul: got %v", got)
	}
	if got := a.Div(b); got != NewVec4(T(3), -1, 0, -3) {
		t.Errorf("int div: got %v", got)
	}
	if got := a.Abs(); got != NewVec4(T(6), 3, 0, 9) {
		t.Errorf("int abs: got %v", got)
	}
	if got := a.Sign(); got != NewVec4(T(1), -1, 0, 1) {
		t.Errorf("int sign: got %v", got)
	}
	// Floor, Ceil and Round are the identity on integers.
	if got := a.Floor(); got != a {
		t.Errorf("int floor: got %v", got)
	}
	if got := a.Clamp(-2, 5); got != NewVec4(T(5), -2, 0, 5) {
		t.Errorf("int clamp: got %v", got)
	}
}

func checkUints[T UnsignedInts](t *testing.T) {
	t.Helper()
	a := NewVec2(T(6), 3)
	b := NewVec2(T(2), 3)
	if got := a.Sub(b); got != NewVec2(T(4), 0) {
		t.Errorf("uint sub: got %v", got)
	}
	if got := a.Sign(); got != NewVec2(T(1), 1) {
		t.Errorf("uint sign: got %v", got)
	}
	m := Ones2[T]()
	if got := m.MulS(7).At(1, 0); got != 7 {
		t.Errorf("uint mat muls: got %v", got)
	}
}

// TestAddSubRoundTrip tests (x + s) - s == x and (x * s) / s == x on
// random inputs. The multiplicative form is exact when s is a power of two.
func TestAddSubRoundTrip(t *testing.T) {
	for range 50 {
		x := randVec4()
		s := rand.Float64() * 8
		if got := x.AddS(s).SubS(s); got.Sub(x).Abs().Norm() > 1e-12 {
			t.Errorf("(x+s)-s: got %v, want %v (s=%v)", got, x, s)
		}
		if got := x.MulS(4).DivS(4); got != x {
			t.Errorf("(x*4)/4: got %v, want %v", got, x)
		}
	}
}

// TestAbsSign tests abs and sign on mixed-sign input, including zero.
func TestAbsSign(t *testing.T) {
	v := NewVec4(-1.5, 0.0, 2.25, -0.0)
	if got := v.Abs(); got != NewVec4(1.5, 0.0, 2.25, 0.0) {
		t.Errorf("abs: got %v", got)
	}
	if got := v.Sign(); got != NewVec4(-1.0, 0.0, 1.0, 0.0) {
		t.Errorf("sign: got %v", got)
	}
}

// TestFloorCeilRound tests the three rounding modes; round is half to even.
func TestFloorCeilRound(t *testing.T) {
	v := NewVec4(1.5, 2.5, -0.5, -1.7)
	if got := v.Floor(); got != NewVec4(1.0, 2.0, -1.0, -2.0) {
		t.Errorf("floor: got %v", got)
	}
	if got := v.Ceil(); got != NewVec4(2.0, 3.0, 0.0, -1.0) {
		t.Errorf("ceil: got %v", got)
	}
	// Half to even: 1.5 -> 2, 2.5 -> 2, -0.5 -> 0, -1.7 -> -2.
	if got := v.Round(); got != NewVec4(2.0, 2.0, 0.0, -2.0) {
		t.Errorf("round: got %v", got)
	}
	if got := NewVec2(0.5, 3.5).Round(); got != NewVec2(0.0, 4.0) {
		t.Errorf("round halves: got %v", got)
	}
}

// TestClamp tests clamping with broadcast scalar bounds.
func TestClamp(t *testing.T) {
	v := NewVec4(-3.0, 0.25, 0.75, 3.0)
	if got := v.Clamp(0, 1); got != NewVec4(0.0, 0.25, 0.75, 1.0) {
		t.Errorf("clamp: got %v", got)
	}
	m := NewMat2(NewVec2(-5.0, 5.0), NewVec2(0.5, -0.5))
	if got := m.Clamp(-1, 1); got != NewMat2(NewVec2(-1.0, 1.0), NewVec2(0.5, -0.5)) {
		t.Errorf("mat clamp: got %v", got)
	}
}

// TestLerp tests interpolation, exactness at the endpoints included.
func TestLerp(t *testing.T) {
	lo := NewVec3(0.1, -2.0, 7.3)
	hi := NewVec3(0.9, 2.0, -1.1)
	if got := lo.Lerp(hi, 0); got != lo {
		t.Errorf("lerp(0): got %v, want lo %v", got, lo)
	}
	if got := lo.Lerp(hi, 1); got != hi {
		t.Errorf("lerp(1): got %v, want hi %v", got, hi)
	}
	mid := lo.Lerp(hi, 0.5)
	want := NewVec3(0.5, 0.0, 3.1)
	if mid.Sub(want).Abs().Norm() > 1e-12 {
		t.Errorf("lerp(0.5): got %v, want %v", mid, want)
	}
}

// TestCompoundOps tests the in-place forms and their receiver chaining.
func TestCompoundOps(t *testing.T) {
	v := NewVec3(1.0, 2.0, 3.0)
	v.AddAssign(NewVec3(1.0, 1.0, 1.0)).MulSAssign(2)
	if v != NewVec3(4.0, 6.0, 8.0) {
		t.Errorf("chained compound: got %v", v)
	}
	v.Inc()
	if v != NewVec3(5.0, 7.0, 9.0) {
		t.Errorf("inc: got %v", v)
	}
	v.Dec()
	v.Dec()
	if v != NewVec3(3.0, 5.0, 7.0) {
		t.Errorf("dec: got %v", v)
	}

	m := Identity2[float64]()
	m.AddSAssign(1)
	if m != NewMat2(NewVec2(2.0, 1.0), NewVec2(1.0, 2.0)) {
		t.Errorf("mat adds assign: got %v", m)
	}
	m.SubAssign(Ones2[float64]())
	if m != Identity2[float64]() {
		t.Errorf("mat sub assign: got %v", m)
	}
}

// TestMatrixElementwise tests that CompMul is the Hadamard product while
// Mul stays the matrix product.
func TestMatrixElementwise(t *testing.T) {
	a := NewMat2(NewVec2(1.0, 2.0), NewVec2(3.0, 4.0))
	b := NewMat2(NewVec2(5.0, 6.0), NewVec2(7.0, 8.0))
	if got := a.CompMul(b); got != NewMat2(NewVec2(5.0, 12.0), NewVec2(21.0, 32.0)) {
		t.Errorf("compmul: got %v", got)
	}
	// 1*5+2*7 = 19, 1*6+2*8 = 22, 3*5+4*7 = 43, 3*6+4*8 = 50
	if got := a.Mul(b); got != NewMat2(NewVec2(19.0, 22.0), NewVec2(43.0, 50.0)) {
		t.Errorf("mul: got %v", got)
	}
	if got := a.CompDiv(a); got != Ones2[float64]() {
		t.Errorf("compdiv self: got %v", got)
	}
	sum := a.Add(b)
	if sum != NewMat2(NewVec2(6.0, 8.0), NewVec2(10.0, 12.0)) {
		t.Errorf("mat add: got %v", sum)
	}
}

// TestMat4Elementwise spot-checks the 4x4 shape via random identities.
func TestMat4Elementwise(t *testing.T) {
	for range 20 {
		m := randMat4()
		if got := m.Sub(m); got != (Mat4[float64]{}) {
			t.Errorf("m-m: got %v", got)
		}
		if got := m.Neg().Neg(); got != m {
			t.Errorf("double neg: got %v, want %v", got, m)
		}
		if got := m.Abs().Sign().Abs(); sumMat4(got) > 16 {
			t.Errorf("abs/sign range: got %v", got)
		}
	}
}

func sumMat4(m Mat4[float64]) float64 {
	var s float64
	for i := range 4 {
		for j := range 4 {
			s += math.Abs(m.At(i, j))
		}
	}
	return s
}
