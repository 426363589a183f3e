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

// Homogeneous 4x4 transform constructors. All of them follow the
// right-handed, column-vector convention: apply with m.MulVec(v) where v
// carries w = 1 for points and w = 0 for directions.

// Translate returns the translation by d: the identity with d in the first
// three entries of the last column.
func Translate[T Floats](d Vec3[T]) Mat4[T] {
	return Mat4[T]{
		Vec4[T]{X: 1, W: d.X},
		Vec4[T]{Y: 1, W: d.Y},
		Vec4[T]{Z: 1, W: d.Z},
		Vec4[T]{W: 1},
	}
}

// Scale returns the diagonal scaling by (s.X, s.Y, s.Z, 1).
func Scale[T Floats](s Vec3[T]) Mat4[T] {
	return Mat4[T]{
		Vec4[T]{X: s.X},
		Vec4[T]{Y: s.Y},
		Vec4[T]{Z: s.Z},
		Vec4[T]{W: 1},
	}
}

// Rotate returns the rotation by angle (radians) about the given axis,
// using the Rodrigues formula I + sin*K + (1-cos)*K^2 with K the
// cross-product matrix of the normalized axis. The axis does not need to be
// normalized beforehand.
func Rotate[T Floats](axis Vec3[T], angle T) Mat4[T] {
	if af, ok := any(axis).(Vec3[float64]); ok {
		s, c := math.Sincos(any(angle).(float64))
		r := mat4FromLanes(rotateImpl(vec3Lanes(af), s, c))
		return any(r).(Mat4[T])
	}
	n := axis.Normalized()
	sin, cos := math.Sincos(float64(angle))
	s, c := T(sin), T(cos)
	omc := 1 - c
	return Mat4[T]{
		Vec4[T]{
			X: c + n.X*n.X*omc,
			Y: n.X*n.Y*omc - n.Z*s,
			Z: n.X*n.Z*omc + n.Y*s,
		},
		Vec4[T]{
			X: n.Y*n.X*omc + n.Z*s,
			Y: c + n.Y*n.Y*omc,
			Z: n.Y*n.Z*omc - n.X*s,
		},
		Vec4[T]{
			X: n.Z*n.X*omc - n.Y*s,
			Y: n.Z*n.Y*omc + n.X*s,
			Z: c + n.Z*n.Z*omc,
		},
		Vec4[T]{W: 1},
	}
}

// Align returns the rotation that maps the direction of a onto the
// direction of b. Codirectional inputs yield the identity; antiparallel
// inputs yield the negated identity.
func Align[T Floats](a, b Vec3[T]) Mat4[T] {
	an := a.Normalized()
	bn := b.Normalized()
	axis := an.Cross(bn)
	c := min(max(an.Dot(bn), -1), 1)
	if axis == (Vec3[T]{}) {
		// Colinear directions leave no rotation axis.
		if c < 0 {
			return Identity4[T]().Neg()
		}
		return Identity4[T]()
	}
	return Rotate(axis, T(math.Acos(float64(c))))
}

// LookAt returns the right-handed view matrix for a camera at eye looking
// at ctr with the given up direction.
func LookAt[T Floats](eye, ctr, up Vec3[T]) Mat4[T] {
	f := ctr.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f).Normalized()
	return Mat4[T]{
		Vec4[T]{X: s.X, Y: s.Y, Z: s.Z, W: -eye.Dot(s)},
		Vec4[T]{X: u.X, Y: u.Y, Z: u.Z, W: -eye.Dot(u)},
		Vec4[T]{X: -f.X, Y: -f.Y, Z: -f.Z, W: eye.Dot(f)},
		Vec4[T]{W: 1},
	}
}

// Perspective returns the right-handed perspective projection with vertical
// field of view fovy (radians), the given aspect ratio, and near/far clip
// planes.
func Perspective[T Floats](fovy, aspect, znear, zfar T) Mat4[T] {
	t := T(math.Tan(float64(fovy) / 2))
	return Mat4[T]{
		Vec4[T]{X: 1 / (t * aspect)},
		Vec4[T]{Y: 1 / t},
		Vec4[T]{Z: -(zfar + znear) / (zfar - znear), W: -2 * zfar * znear / (zfar - znear)},
		Vec4[T]{Z: -1},
	}
}

// Ortho returns the orthographic projection for the box [l, r] x [b, t] x
// [n, f].
func Ortho[T Floats](l, r, b, t, n, f T) Mat4[T] {
	return Mat4[T]{
		Vec4[T]{X: 2 / (r - l), W: -(r + l) / (r - l)},
		Vec4[T]{Y: 2 / (t - b), W: -(t + b) / (t - b)},
		Vec4[T]{Z: -2 / (f - n), W: -(f + n) / (f - n)},
		Vec4[T]{W: 1},
	}
}
