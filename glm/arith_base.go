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

// This file holds the elementwise arithmetic layer for every vector and
// matrix shape. The generic bodies are the scalar reference; float64
// operands take a fast path through the lane bridges (addImpl4 and friends),
// whose implementation is selected at build time in arith_simd.go or
// arith_scalar.go.

// Elementwise helpers shared by the generic paths. Floor, Ceil and Round
// are the identity on integer element types.

func floorElem[T Element](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.Floor(float64(v)))).(T)
	case float64:
		return any(math.Floor(v)).(T)
	}
	return x
}

func ceilElem[T Element](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.Ceil(float64(v)))).(T)
	case float64:
		return any(math.Ceil(v)).(T)
	}
	return x
}

func roundElem[T Element](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(float32(math.RoundToEven(float64(v)))).(T)
	case float64:
		return any(math.RoundToEven(v)).(T)
	}
	return x
}

func absElem[T Element](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func signElem[T Element](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		// Untyped -1 is not representable for unsigned T; this branch is
		// unreachable there, so negate a value instead of a constant.
		one := T(1)
		return -one
	}
	return 0
}

func clampElem[T Element](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Vec2 arithmetic.

// Add returns the elementwise sum v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return vec2Add(v, o) }

// Sub returns the elementwise difference v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return vec2Sub(v, o) }

// Mul returns the elementwise product v * o.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return vec2Mul(v, o) }

// Div returns the elementwise quotient v / o. Division by zero follows the
// element type's semantics.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return vec2Div(v, o) }

// AddS adds s to every component.
func (v Vec2[T]) AddS(s T) Vec2[T] { return vec2Add(v, Vec2[T]{X: s, Y: s}) }

// SubS subtracts s from every component.
func (v Vec2[T]) SubS(s T) Vec2[T] { return vec2Sub(v, Vec2[T]{X: s, Y: s}) }

// MulS multiplies every component by s.
func (v Vec2[T]) MulS(s T) Vec2[T] { return vec2Mul(v, Vec2[T]{X: s, Y: s}) }

// DivS divides every component by s.
func (v Vec2[T]) DivS(s T) Vec2[T] { return vec2Div(v, Vec2[T]{X: s, Y: s}) }

// Neg returns the vector multiplied by -1.
func (v Vec2[T]) Neg() Vec2[T] { return vec2Sub(Vec2[T]{}, v) }

// Abs returns the componentwise absolute value, max(-x, x).
func (v Vec2[T]) Abs() Vec2[T] { return vec2Abs(v) }

// Sign maps each component to -1, 0 or +1. NaN maps to 0 on both backends.
func (v Vec2[T]) Sign() Vec2[T] { return vec2Sign(v) }

// Floor rounds each component down to an integer value.
func (v Vec2[T]) Floor() Vec2[T] { return vec2Floor(v) }

// Ceil rounds each component up to an integer value.
func (v Vec2[T]) Ceil() Vec2[T] { return vec2Ceil(v) }

// Round rounds each component half to even.
func (v Vec2[T]) Round() Vec2[T] { return vec2Round(v) }

// Clamp limits each component to [lo, hi].
func (v Vec2[T]) Clamp(lo, hi T) Vec2[T] { return vec2Clamp(v, lo, hi) }

// Lerp interpolates (1-alpha)*v + alpha*hi. The result is exactly v at
// alpha = 0 and exactly hi at alpha = 1.
func (v Vec2[T]) Lerp(hi Vec2[T], alpha T) Vec2[T] {
	return v.MulS(1 - alpha).Add(hi.MulS(alpha))
}

// AddAssign adds o in place and returns the receiver.
func (v *Vec2[T]) AddAssign(o Vec2[T]) *Vec2[T] { *v = v.Add(o); return v }

// SubAssign subtracts o in place and returns the receiver.
func (v *Vec2[T]) SubAssign(o Vec2[T]) *Vec2[T] { *v = v.Sub(o); return v }

// MulAssign multiplies elementwise in place and returns the receiver.
func (v *Vec2[T]) MulAssign(o Vec2[T]) *Vec2[T] { *v = v.Mul(o); return v }

// DivAssign divides elementwise in place and returns the receiver.
func (v *Vec2[T]) DivAssign(o Vec2[T]) *Vec2[T] { *v = v.Div(o); return v }

// AddSAssign adds s to every component in place and returns the receiver.
func (v *Vec2[T]) AddSAssign(s T) *Vec2[T] { *v = v.AddS(s); return v }

// SubSAssign subtracts s in place and returns the receiver.
func (v *Vec2[T]) SubSAssign(s T) *Vec2[T] { *v = v.SubS(s); return v }

// MulSAssign multiplies by s in place and returns the receiver.
func (v *Vec2[T]) MulSAssign(s T) *Vec2[T] { *v = v.MulS(s); return v }

// DivSAssign divides by s in place and returns the receiver.
func (v *Vec2[T]) DivSAssign(s T) *Vec2[T] { *v = v.DivS(s); return v }

// Inc adds one to every component and returns the receiver.
func (v *Vec2[T]) Inc() *Vec2[T] { v.X++; v.Y++; return v }

// Dec subtracts one from every component and returns the receiver.
func (v *Vec2[T]) Dec() *Vec2[T] { v.X--; v.Y--; return v }

func vec2Add[T Element](a, b Vec2[T]) Vec2[T] {
	if af, ok := any(a).(Vec2[float64]); ok {
		bf := any(b).(Vec2[float64])
		r := vec2FromLanes(addImpl4(vec2Lanes(af), vec2Lanes(bf)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: a.X + b.X, Y: a.Y + b.Y}
}

func vec2Sub[T Element](a, b Vec2[T]) Vec2[T] {
	if af, ok := any(a).(Vec2[float64]); ok {
		bf := any(b).(Vec2[float64])
		r := vec2FromLanes(subImpl4(vec2Lanes(af), vec2Lanes(bf)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: a.X - b.X, Y: a.Y - b.Y}
}

func vec2Mul[T Element](a, b Vec2[T]) Vec2[T] {
	if af, ok := any(a).(Vec2[float64]); ok {
		bf := any(b).(Vec2[float64])
		r := vec2FromLanes(mulImpl4(vec2Lanes(af), vec2Lanes(bf)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: a.X * b.X, Y: a.Y * b.Y}
}

func vec2Div[T Element](a, b Vec2[T]) Vec2[T] {
	if af, ok := any(a).(Vec2[float64]); ok {
		bf := any(b).(Vec2[float64])
		r := vec2FromLanes(divImpl4(vec2Lanes(af), vec2Lanes(bf)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: a.X / b.X, Y: a.Y / b.Y}
}

func vec2Abs[T Element](a Vec2[T]) Vec2[T] {
	if af, ok := any(a).(Vec2[float64]); ok {
		r := vec2FromLanes(absImpl4(vec2Lanes(af)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: absElem(a.X), Y: absElem(a.Y)}
}

func vec2Sign[T Element](a Vec2[T]) Vec2[T] {
	if af, ok := any(a).(Vec2[float64]); ok {
		r := vec2FromLanes(signImpl4(vec2Lanes(af)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: signElem(a.X), Y: signElem(a.Y)}
}

func vec2Floor[T Element](a Vec2[T]) Vec2[T] {
	if af, ok := any(a).(Vec2[float64]); ok {
		r := vec2FromLanes(floorImpl4(vec2Lanes(af)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: floorElem(a.X), Y: floorElem(a.Y)}
}

func vec2Ceil[T Element](a Vec2[T]) Vec2[T] {
	if af, ok := any(a).(Vec2[float64]); ok {
		r := vec2FromLanes(ceilImpl4(vec2Lanes(af)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: ceilElem(a.X), Y: ceilElem(a.Y)}
}

func vec2Round[T Element](a Vec2[T]) Vec2[T] {
	if af, ok := any(a).(Vec2[float64]); ok {
		r := vec2FromLanes(roundImpl4(vec2Lanes(af)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: roundElem(a.X), Y: roundElem(a.Y)}
}

func vec2Clamp[T Element](a Vec2[T], lo, hi T) Vec2[T] {
	if af, ok := any(a).(Vec2[float64]); ok {
		r := vec2FromLanes(clampImpl4(vec2Lanes(af), any(lo).(float64), any(hi).(float64)))
		return any(r).(Vec2[T])
	}
	return Vec2[T]{X: clampElem(a.X, lo, hi), Y: clampElem(a.Y, lo, hi)}
}

// Vec3 arithmetic. Every operation leaves the pad lane zero.

// Add returns the elementwise sum v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return vec3Add(v, o) }

// Sub returns the elementwise difference v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return vec3Sub(v, o) }

// Mul returns the elementwise product v * o.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { return vec3Mul(v, o) }

// Div returns the elementwise quotient v / o.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { return vec3Div(v, o) }

// AddS adds s to every component.
func (v Vec3[T]) AddS(s T) Vec3[T] { return vec3Add(v, Vec3[T]{X: s, Y: s, Z: s}) }

// SubS subtracts s from every component.
func (v Vec3[T]) SubS(s T) Vec3[T] { return vec3Sub(v, Vec3[T]{X: s, Y: s, Z: s}) }

// MulS multiplies every component by s.
func (v Vec3[T]) MulS(s T) Vec3[T] { return vec3Mul(v, Vec3[T]{X: s, Y: s, Z: s}) }

// DivS divides every component by s.
func (v Vec3[T]) DivS(s T) Vec3[T] { return vec3Div(v, Vec3[T]{X: s, Y: s, Z: s}) }

// Neg returns the vector multiplied by -1.
func (v Vec3[T]) Neg() Vec3[T] { return vec3Sub(Vec3[T]{}, v) }

// Abs returns the componentwise absolute value.
func (v Vec3[T]) Abs() Vec3[T] { return vec3Abs(v) }

// Sign maps each component to -1, 0 or +1.
func (v Vec3[T]) Sign() Vec3[T] { return vec3Sign(v) }

// Floor rounds each component down to an integer value.
func (v Vec3[T]) Floor() Vec3[T] { return vec3Floor(v) }

// Ceil rounds each component up to an integer value.
func (v Vec3[T]) Ceil() Vec3[T] { return vec3Ceil(v) }

// Round rounds each component half to even.
func (v Vec3[T]) Round() Vec3[T] { return vec3Round(v) }

// Clamp limits each component to [lo, hi].
func (v Vec3[T]) Clamp(lo, hi T) Vec3[T] { return vec3Clamp(v, lo, hi) }

// Lerp interpolates (1-alpha)*v + alpha*hi.
func (v Vec3[T]) Lerp(hi Vec3[T], alpha T) Vec3[T] {
	return v.MulS(1 - alpha).Add(hi.MulS(alpha))
}

// AddAssign adds o in place and returns the receiver.
func (v *Vec3[T]) AddAssign(o Vec3[T]) *Vec3[T] { *v = v.Add(o); return v }

// SubAssign subtracts o in place and returns the receiver.
func (v *Vec3[T]) SubAssign(o Vec3[T]) *Vec3[T] { *v = v.Sub(o); return v }

// MulAssign multiplies elementwise in place and returns the receiver.
func (v *Vec3[T]) MulAssign(o Vec3[T]) *Vec3[T] { *v = v.Mul(o); return v }

// DivAssign divides elementwise in place and returns the receiver.
func (v *Vec3[T]) DivAssign(o Vec3[T]) *Vec3[T] { *v = v.Div(o); return v }

// AddSAssign adds s to every component in place and returns the receiver.
func (v *Vec3[T]) AddSAssign(s T) *Vec3[T] { *v = v.AddS(s); return v }

// SubSAssign subtracts s in place and returns the receiver.
func (v *Vec3[T]) SubSAssign(s T) *Vec3[T] { *v = v.SubS(s); return v }

// MulSAssign multiplies by s in place and returns the receiver.
func (v *Vec3[T]) MulSAssign(s T) *Vec3[T] { *v = v.MulS(s); return v }

// DivSAssign divides by s in place and returns the receiver.
func (v *Vec3[T]) DivSAssign(s T) *Vec3[T] { *v = v.DivS(s); return v }

// Inc adds one to every component and returns the receiver.
func (v *Vec3[T]) Inc() *Vec3[T] { v.X++; v.Y++; v.Z++; return v }

// Dec subtracts one from every component and returns the receiver.
func (v *Vec3[T]) Dec() *Vec3[T] { v.X--; v.Y--; v.Z--; return v }

func vec3Add[T Element](a, b Vec3[T]) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		bf := any(b).(Vec3[float64])
		r := vec3FromLanes(addImpl4(vec3Lanes(af), vec3Lanes(bf)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

func vec3Sub[T Element](a, b Vec3[T]) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		bf := any(b).(Vec3[float64])
		r := vec3FromLanes(subImpl4(vec3Lanes(af), vec3Lanes(bf)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func vec3Mul[T Element](a, b Vec3[T]) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		bf := any(b).(Vec3[float64])
		r := vec3FromLanes(mulImpl4(vec3Lanes(af), vec3Lanes(bf)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

func vec3Div[T Element](a, b Vec3[T]) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		bf := any(b).(Vec3[float64])
		r := vec3FromLanes(divImpl4(vec3Lanes(af), vec3Lanes(bf)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: a.X / b.X, Y: a.Y / b.Y, Z: a.Z / b.Z}
}

func vec3Abs[T Element](a Vec3[T]) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		r := vec3FromLanes(absImpl4(vec3Lanes(af)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: absElem(a.X), Y: absElem(a.Y), Z: absElem(a.Z)}
}

func vec3Sign[T Element](a Vec3[T]) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		r := vec3FromLanes(signImpl4(vec3Lanes(af)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: signElem(a.X), Y: signElem(a.Y), Z: signElem(a.Z)}
}

func vec3Floor[T Element](a Vec3[T]) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		r := vec3FromLanes(floorImpl4(vec3Lanes(af)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: floorElem(a.X), Y: floorElem(a.Y), Z: floorElem(a.Z)}
}

func vec3Ceil[T Element](a Vec3[T]) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		r := vec3FromLanes(ceilImpl4(vec3Lanes(af)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: ceilElem(a.X), Y: ceilElem(a.Y), Z: ceilElem(a.Z)}
}

func vec3Round[T Element](a Vec3[T]) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		r := vec3FromLanes(roundImpl4(vec3Lanes(af)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: roundElem(a.X), Y: roundElem(a.Y), Z: roundElem(a.Z)}
}

func vec3Clamp[T Element](a Vec3[T], lo, hi T) Vec3[T] {
	if af, ok := any(a).(Vec3[float64]); ok {
		r := vec3FromLanes(clampImpl4(vec3Lanes(af), any(lo).(float64), any(hi).(float64)))
		return any(r).(Vec3[T])
	}
	return Vec3[T]{X: clampElem(a.X, lo, hi), Y: clampElem(a.Y, lo, hi), Z: clampElem(a.Z, lo, hi)}
}

// Vec4 arithmetic.

// Add returns the elementwise sum v + o.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] { return vec4Add(v, o) }

// Sub returns the elementwise difference v - o.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] { return vec4Sub(v, o) }

// Mul returns the elementwise product v * o.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] { return vec4Mul(v, o) }

// Div returns the elementwise quotient v / o.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] { return vec4Div(v, o) }

// AddS adds s to every component.
func (v Vec4[T]) AddS(s T) Vec4[T] { return vec4Add(v, Vec4[T]{X: s, Y: s, Z: s, W: s}) }

// SubS subtracts s from every component.
func (v Vec4[T]) SubS(s T) Vec4[T] { return vec4Sub(v, Vec4[T]{X: s, Y: s, Z: s, W: s}) }

// MulS multiplies every component by s.
func (v Vec4[T]) MulS(s T) Vec4[T] { return vec4Mul(v, Vec4[T]{X: s, Y: s, Z: s, W: s}) }

// DivS divides every component by s.
func (v Vec4[T]) DivS(s T) Vec4[T] { return vec4Div(v, Vec4[T]{X: s, Y: s, Z: s, W: s}) }

// Neg returns the vector multiplied by -1.
func (v Vec4[T]) Neg() Vec4[T] { return vec4Sub(Vec4[T]{}, v) }

// Abs returns the componentwise absolute value.
func (v Vec4[T]) Abs() Vec4[T] { return vec4Abs(v) }

// Sign maps each component to -1, 0 or +1.
func (v Vec4[T]) Sign() Vec4[T] { return vec4Sign(v) }

// Floor rounds each component down to an integer value.
func (v Vec4[T]) Floor() Vec4[T] { return vec4Floor(v) }

// Ceil rounds each component up to an integer value.
func (v Vec4[T]) Ceil() Vec4[T] { return vec4Ceil(v) }

// Round rounds each component half to even.
func (v Vec4[T]) Round() Vec4[T] { return vec4Round(v) }

// Clamp limits each component to [lo, hi].
func (v Vec4[T]) Clamp(lo, hi T) Vec4[T] { return vec4Clamp(v, lo, hi) }

// Lerp interpolates (1-alpha)*v + alpha*hi.
func (v Vec4[T]) Lerp(hi Vec4[T], alpha T) Vec4[T] {
	return v.MulS(1 - alpha).Add(hi.MulS(alpha))
}

// AddAssign adds o in place and returns the receiver.
func (v *Vec4[T]) AddAssign(o Vec4[T]) *Vec4[T] { *v = v.Add(o); return v }

// SubAssign subtracts o in place and returns the receiver.
func (v *Vec4[T]) SubAssign(o Vec4[T]) *Vec4[T] { *v = v.Sub(o); return v }

// MulAssign multiplies elementwise in place and returns the receiver.
func (v *Vec4[T]) MulAssign(o Vec4[T]) *Vec4[T] { *v = v.Mul(o); return v }

// DivAssign divides elementwise in place and returns the receiver.
func (v *Vec4[T]) DivAssign(o Vec4[T]) *Vec4[T] { *v = v.Div(o); return v }

// AddSAssign adds s to every component in place and returns the receiver.
func (v *Vec4[T]) AddSAssign(s T) *Vec4[T] { *v = v.AddS(s); return v }

// SubSAssign subtracts s in place and returns the receiver.
func (v *Vec4[T]) SubSAssign(s T) *Vec4[T] { *v = v.SubS(s); return v }

// MulSAssign multiplies by s in place and returns the receiver.
func (v *Vec4[T]) MulSAssign(s T) *Vec4[T] { *v = v.MulS(s); return v }

// DivSAssign divides by s in place and returns the receiver.
func (v *Vec4[T]) DivSAssign(s T) *Vec4[T] { *v = v.DivS(s); return v }

// Inc adds one to every component and returns the receiver.
func (v *Vec4[T]) Inc() *Vec4[T] { v.X++; v.Y++; v.Z++; v.W++; return v }

// Dec subtracts one from every component and returns the receiver.
func (v *Vec4[T]) Dec() *Vec4[T] { v.X--; v.Y--; v.Z--; v.W--; return v }

func vec4Add[T Element](a, b Vec4[T]) Vec4[T] {
	if af, ok := any(a).(Vec4[float64]); ok {
		bf := any(b).(Vec4[float64])
		r := vec4FromLanes(addImpl4(vec4Lanes(af), vec4Lanes(bf)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z, W: a.W + b.W}
}

func vec4Sub[T Element](a, b Vec4[T]) Vec4[T] {
	if af, ok := any(a).(Vec4[float64]); ok {
		bf := any(b).(Vec4[float64])
		r := vec4FromLanes(subImpl4(vec4Lanes(af), vec4Lanes(bf)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z, W: a.W - b.W}
}

func vec4Mul[T Element](a, b Vec4[T]) Vec4[T] {
	if af, ok := any(a).(Vec4[float64]); ok {
		bf := any(b).(Vec4[float64])
		r := vec4FromLanes(mulImpl4(vec4Lanes(af), vec4Lanes(bf)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z, W: a.W * b.W}
}

func vec4Div[T Element](a, b Vec4[T]) Vec4[T] {
	if af, ok := any(a).(Vec4[float64]); ok {
		bf := any(b).(Vec4[float64])
		r := vec4FromLanes(divImpl4(vec4Lanes(af), vec4Lanes(bf)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{X: a.X / b.X, Y: a.Y / b.Y, Z: a.Z / b.Z, W: a.W / b.W}
}

func vec4Abs[T Element](a Vec4[T]) Vec4[T] {
	if af, ok := any(a).(Vec4[float64]); ok {
		r := vec4FromLanes(absImpl4(vec4Lanes(af)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{X: absElem(a.X), Y: absElem(a.Y), Z: absElem(a.Z), W: absElem(a.W)}
}

func vec4Sign[T Element](a Vec4[T]) Vec4[T] {
	if af, ok := any(a).(Vec4[float64]); ok {
		r := vec4FromLanes(signImpl4(vec4Lanes(af)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{X: signElem(a.X), Y: signElem(a.Y), Z: signElem(a.Z), W: signElem(a.W)}
}

func vec4Floor[T Element](a Vec4[T]) Vec4[T] {
	if af, ok := any(a).(Vec4[float64]); ok {
		r := vec4FromLanes(floorImpl4(vec4Lanes(af)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{X: floorElem(a.X), Y: floorElem(a.Y), Z: floorElem(a.Z), W: floorElem(a.W)}
}

func vec4Ceil[T Element](a Vec4[T]) Vec4[T] {
	if af, ok := any(a).(Vec4[float64]); ok {
		r := vec4FromLanes(ceilImpl4(vec4Lanes(af)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{X: ceilElem(a.X), Y: ceilElem(a.Y), Z: ceilElem(a.Z), W: ceilElem(a.W)}
}

func vec4Round[T Element](a Vec4[T]) Vec4[T] {
	if af, ok := any(a).(Vec4[float64]); ok {
		r := vec4FromLanes(roundImpl4(vec4Lanes(af)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{X: roundElem(a.X), Y: roundElem(a.Y), Z: roundElem(a.Z), W: roundElem(a.W)}
}

func vec4Clamp[T Element](a Vec4[T], lo, hi T) Vec4[T] {
	if af, ok := any(a).(Vec4[float64]); ok {
		r := vec4FromLanes(clampImpl4(vec4Lanes(af), any(lo).(float64), any(hi).(float64)))
		return any(r).(Vec4[T])
	}
	return Vec4[T]{
		X: clampElem(a.X, lo, hi),
		Y: clampElem(a.Y, lo, hi),
		Z: clampElem(a.Z, lo, hi),
		W: clampElem(a.W, lo, hi),
	}
}

// Matrix elementwise arithmetic, composed row by row. Binary Mul and Div on
// matrices are the algebra-layer product and right-division (algebra_base.go);
// the elementwise pair is CompMul and CompDiv.

// Add returns the elementwise sum m + o.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Add(o[0]), m[1].Add(o[1])}
}

// Sub returns the elementwise difference m - o.
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Sub(o[0]), m[1].Sub(o[1])}
}

// CompMul returns the elementwise (Hadamard) product.
func (m Mat2[T]) CompMul(o Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Mul(o[0]), m[1].Mul(o[1])}
}

// CompDiv returns the elementwise quotient.
func (m Mat2[T]) CompDiv(o Mat2[T]) Mat2[T] {
	return Mat2[T]{m[0].Div(o[0]), m[1].Div(o[1])}
}

// AddS adds s to every element.
func (m Mat2[T]) AddS(s T) Mat2[T] { return Mat2[T]{m[0].AddS(s), m[1].AddS(s)} }

// SubS subtracts s from every element.
func (m Mat2[T]) SubS(s T) Mat2[T] { return Mat2[T]{m[0].SubS(s), m[1].SubS(s)} }

// MulS multiplies every element by s.
func (m Mat2[T]) MulS(s T) Mat2[T] { return Mat2[T]{m[0].MulS(s), m[1].MulS(s)} }

// DivS divides every element by s.
func (m Mat2[T]) DivS(s T) Mat2[T] { return Mat2[T]{m[0].DivS(s), m[1].DivS(s)} }

// Neg returns the matrix multiplied by -1.
func (m Mat2[T]) Neg() Mat2[T] { return Mat2[T]{m[0].Neg(), m[1].Neg()} }

// Abs returns the elementwise absolute value.
func (m Mat2[T]) Abs() Mat2[T] { return Mat2[T]{m[0].Abs(), m[1].Abs()} }

// Sign maps each element to -1, 0 or +1.
func (m Mat2[T]) Sign() Mat2[T] { return Mat2[T]{m[0].Sign(), m[1].Sign()} }

// Floor rounds each element down to an integer value.
func (m Mat2[T]) Floor() Mat2[T] { return Mat2[T]{m[0].Floor(), m[1].Floor()} }

// Ceil rounds each element up to an integer value.
func (m Mat2[T]) Ceil() Mat2[T] { return Mat2[T]{m[0].Ceil(), m[1].Ceil()} }

// Round rounds each element half to even.
func (m Mat2[T]) Round() Mat2[T] { return Mat2[T]{m[0].Round(), m[1].Round()} }

// Clamp limits each element to [lo, hi].
func (m Mat2[T]) Clamp(lo, hi T) Mat2[T] {
	return Mat2[T]{m[0].Clamp(lo, hi), m[1].Clamp(lo, hi)}
}

// Lerp interpolates (1-alpha)*m + alpha*hi elementwise.
func (m Mat2[T]) Lerp(hi Mat2[T], alpha T) Mat2[T] {
	return Mat2[T]{m[0].Lerp(hi[0], alpha), m[1].Lerp(hi[1], alpha)}
}

// AddAssign adds o in place and returns the receiver.
func (m *Mat2[T]) AddAssign(o Mat2[T]) *Mat2[T] { *m = m.Add(o); return m }

// SubAssign subtracts o in place and returns the receiver.
func (m *Mat2[T]) SubAssign(o Mat2[T]) *Mat2[T] { *m = m.Sub(o); return m }

// AddSAssign adds s to every element in place and returns the receiver.
func (m *Mat2[T]) AddSAssign(s T) *Mat2[T] { *m = m.AddS(s); return m }

// SubSAssign subtracts s in place and returns the receiver.
func (m *Mat2[T]) SubSAssign(s T) *Mat2[T] { *m = m.SubS(s); return m }

// MulSAssign multiplies by s in place and returns the receiver.
func (m *Mat2[T]) MulSAssign(s T) *Mat2[T] { *m = m.MulS(s); return m }

// DivSAssign divides by s in place and returns the receiver.
func (m *Mat2[T]) DivSAssign(s T) *Mat2[T] { *m = m.DivS(s); return m }

// Inc adds one to every element and returns the receiver.
func (m *Mat2[T]) Inc() *Mat2[T] { m[0].Inc(); m[1].Inc(); return m }

// Dec subtracts one from every element and returns the receiver.
func (m *Mat2[T]) Dec() *Mat2[T] { m[0].Dec(); m[1].Dec(); return m }

// Add returns the elementwise sum m + o.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2])}
}

// Sub returns the elementwise difference m - o.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2])}
}

// CompMul returns the elementwise (Hadamard) product.
func (m Mat3[T]) CompMul(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Mul(o[0]), m[1].Mul(o[1]), m[2].Mul(o[2])}
}

// CompDiv returns the elementwise quotient.
func (m Mat3[T]) CompDiv(o Mat3[T]) Mat3[T] {
	return Mat3[T]{m[0].Div(o[0]), m[1].Div(o[1]), m[2].Div(o[2])}
}

// AddS adds s to every element.
func (m Mat3[T]) AddS(s T) Mat3[T] {
	return Mat3[T]{m[0].AddS(s), m[1].AddS(s), m[2].AddS(s)}
}

// SubS subtracts s from every element.
func (m Mat3[T]) SubS(s T) Mat3[T] {
	return Mat3[T]{m[0].SubS(s), m[1].SubS(s), m[2].SubS(s)}
}

// MulS multiplies every element by s.
func (m Mat3[T]) MulS(s T) Mat3[T] {
	return Mat3[T]{m[0].MulS(s), m[1].MulS(s), m[2].MulS(s)}
}

// DivS divides every element by s.
func (m Mat3[T]) DivS(s T) Mat3[T] {
	return Mat3[T]{m[0].DivS(s), m[1].DivS(s), m[2].DivS(s)}
}

// Neg returns the matrix multiplied by -1.
func (m Mat3[T]) Neg() Mat3[T] { return Mat3[T]{m[0].Neg(), m[1].Neg(), m[2].Neg()} }

// Abs returns the elementwise absolute value.
func (m Mat3[T]) Abs() Mat3[T] { return Mat3[T]{m[0].Abs(), m[1].Abs(), m[2].Abs()} }

// Sign maps each element to -1, 0 or +1.
func (m Mat3[T]) Sign() Mat3[T] { return Mat3[T]{m[0].Sign(), m[1].Sign(), m[2].Sign()} }

// Floor rounds each element down to an integer value.
func (m Mat3[T]) Floor() Mat3[T] { return Mat3[T]{m[0].Floor(), m[1].Floor(), m[2].Floor()} }

// Ceil rounds each element up to an integer value.
func (m Mat3[T]) Ceil() Mat3[T] { return Mat3[T]{m[0].Ceil(), m[1].Ceil(), m[2].Ceil()} }

// Round rounds each element half to even.
func (m Mat3[T]) Round() Mat3[T] { return Mat3[T]{m[0].Round(), m[1].Round(), m[2].Round()} }

// Clamp limits each element to [lo, hi].
func (m Mat3[T]) Clamp(lo, hi T) Mat3[T] {
	return Mat3[T]{m[0].Clamp(lo, hi), m[1].Clamp(lo, hi), m[2].Clamp(lo, hi)}
}

// Lerp interpolates (1-alpha)*m + alpha*hi elementwise.
func (m Mat3[T]) Lerp(hi Mat3[T], alpha T) Mat3[T] {
	return Mat3[T]{m[0].Lerp(hi[0], alpha), m[1].Lerp(hi[1], alpha), m[2].Lerp(hi[2], alpha)}
}

// AddAssign adds o in place and returns the receiver.
func (m *Mat3[T]) AddAssign(o Mat3[T]) *Mat3[T] { *m = m.Add(o); return m }

// SubAssign subtracts o in place and returns the receiver.
func (m *Mat3[T]) SubAssign(o Mat3[T]) *Mat3[T] { *m = m.Sub(o); return m }

// AddSAssign adds s to every element in place and returns the receiver.
func (m *Mat3[T]) AddSAssign(s T) *Mat3[T] { *m = m.AddS(s); return m }

// SubSAssign subtracts s in place and returns the receiver.
func (m *Mat3[T]) SubSAssign(s T) *Mat3[T] { *m = m.SubS(s); return m }

// MulSAssign multiplies by s in place and returns the receiver.
func (m *Mat3[T]) MulSAssign(s T) *Mat3[T] { *m = m.MulS(s); return m }

// DivSAssign divides by s in place and returns the receiver.
func (m *Mat3[T]) DivSAssign(s T) *Mat3[T] { *m = m.DivS(s); return m }

// Inc adds one to every element and returns the receiver.
func (m *Mat3[T]) Inc() *Mat3[T] { m[0].Inc(); m[1].Inc(); m[2].Inc(); return m }

// Dec subtracts one from every element and returns the receiver.
func (m *Mat3[T]) Dec() *Mat3[T] { m[0].Dec(); m[1].Dec(); m[2].Dec(); return m }

// Add returns the elementwise sum m + o.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2]), m[3].Add(o[3])}
}

// Sub returns the elementwise difference m - o.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2]), m[3].Sub(o[3])}
}

// CompMul returns the elementwise (Hadamard) product.
func (m Mat4[T]) CompMul(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Mul(o[0]), m[1].Mul(o[1]), m[2].Mul(o[2]), m[3].Mul(o[3])}
}

// CompDiv returns the elementwise quotient.
func (m Mat4[T]) CompDiv(o Mat4[T]) Mat4[T] {
	return Mat4[T]{m[0].Div(o[0]), m[1].Div(o[1]), m[2].Div(o[2]), m[3].Div(o[3])}
}

// AddS adds s to every element.
func (m Mat4[T]) AddS(s T) Mat4[T] {
	return Mat4[T]{m[0].AddS(s), m[1].AddS(s), m[2].AddS(s), m[3].AddS(s)}
}

// SubS subtracts s from every element.
func (m Mat4[T]) SubS(s T) Mat4[T] {
	return Mat4[T]{m[0].SubS(s), m[1].SubS(s), m[2].SubS(s), m[3].SubS(s)}
}

// MulS multiplies every element by s.
func (m Mat4[T]) MulS(s T) Mat4[T] {
	return Mat4[T]{m[0].MulS(s), m[1].MulS(s), m[2].MulS(s), m[3].MulS(s)}
}

// DivS divides every element by s.
func (m Mat4[T]) DivS(s T) Mat4[T] {
	return Mat4[T]{m[0].DivS(s), m[1].DivS(s), m[2].DivS(s), m[3].DivS(s)}
}

// Neg returns the matrix multiplied by -1.
func (m Mat4[T]) Neg() Mat4[T] {
	return Mat4[T]{m[0].Neg(), m[1].Neg(), m[2].Neg(), m[3].Neg()}
}

// Abs returns the elementwise absolute value.
func (m Mat4[T]) Abs() Mat4[T] {
	return Mat4[T]{m[0].Abs(), m[1].Abs(), m[2].Abs(), m[3].Abs()}
}

// Sign maps each element to -1, 0 or +1.
func (m Mat4[T]) Sign() Mat4[T] {
	return Mat4[T]{m[0].Sign(), m[1].Sign(), m[2].Sign(), m[3].Sign()}
}

// Floor rounds each element down to an integer value.
func (m Mat4[T]) Floor() Mat4[T] {
	return Mat4[T]{m[0].Floor(), m[1].Floor(), m[2].Floor(), m[3].Floor()}
}

// Ceil rounds each element up to an integer value.
func (m Mat4[T]) Ceil() Mat4[T] {
	return Mat4[T]{m[0].Ceil(), m[1].Ceil(), m[2].Ceil(), m[3].Ceil()}
}

// Round rounds each element half to even.
func (m Mat4[T]) Round() Mat4[T] {
	return Mat4[T]{m[0].Round(), m[1].Round(), m[2].Round(), m[3].Round()}
}

// Clamp limits each element to [lo, hi].
func (m Mat4[T]) Clamp(lo, hi T) Mat4[T] {
	return Mat4[T]{m[0].Clamp(lo, hi), m[1].Clamp(lo, hi), m[2].Clamp(lo, hi), m[3].Clamp(lo, hi)}
}

// Lerp interpolates (1-alpha)*m + alpha*hi elementwise.
func (m Mat4[T]) Lerp(hi Mat4[T], alpha T) Mat4[T] {
	return Mat4[T]{
		m[0].Lerp(hi[0], alpha),
		m[1].Lerp(hi[1], alpha),
		m[2].Lerp(hi[2], alpha),
		m[3].Lerp(hi[3], alpha),
	}
}

// AddAssign adds o in place and returns the receiver.
func (m *Mat4[T]) AddAssign(o Mat4[T]) *Mat4[T] { *m = m.Add(o); return m }

// SubAssign subtracts o in place and returns the receiver.
func (m *Mat4[T]) SubAssign(o Mat4[T]) *Mat4[T] { *m = m.Sub(o); return m }

// AddSAssign adds s to every element in place and returns the receiver.
func (m *Mat4[T]) AddSAssign(s T) *Mat4[T] { *m = m.AddS(s); return m }

// SubSAssign subtracts s in place and returns the receiver.
func (m *Mat4[T]) SubSAssign(s T) *Mat4[T] { *m = m.SubS(s); return m }

// MulSAssign multiplies by s in place and returns the receiver.
func (m *Mat4[T]) MulSAssign(s T) *Mat4[T] { *m = m.MulS(s); return m }

// DivSAssign divides by s in place and returns the receiver.
func (m *Mat4[T]) DivSAssign(s T) *Mat4[T] { *m = m.DivS(s); return m }

// Inc adds one to every element and returns the receiver.
func (m *Mat4[T]) Inc() *Mat4[T] { m[0].Inc(); m[1].Inc(); m[2].Inc(); m[3].Inc(); return m }

// Dec subtracts one from every element and returns the receiver.
func (m *Mat4[T]) Dec() *Mat4[T] { m[0].Dec(); m[1].Dec(); m[2].Dec(); m[3].Dec(); return m }
