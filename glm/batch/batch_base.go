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

package batch

import "github.com/ajroetker/go-glm/glm"

// Dot3 computes per-index dot products of two sets of 3-component vectors
// stored as coordinate slices:
//
//	out[i] = ax[i]*bx[i] + ay[i]*by[i] + az[i]*bz[i]
//
// Processing stops at the shortest of the seven slices.
func Dot3(ax, ay, az, bx, by, bz, out []float64) {
	n := min(len(ax), len(ay), len(az), len(bx), len(by), len(bz), len(out))
	if n == 0 {
		return
	}
	dot3Impl(ax, ay, az, bx, by, bz, out, n)
}

// Normalize3 scales each triple (x[i], y[i], z[i]) to unit length in place.
// Zero triples produce non-finite lanes, matching Normalized on the core
// types. Processing stops at the shortest slice.
func Normalize3(x, y, z []float64) {
	n := min(len(x), len(y), len(z))
	if n == 0 {
		return
	}
	normalize3Impl(x, y, z, n)
}

// TransformPoints applies m to each point (x[i], y[i], z[i], 1) in place,
// writing the transformed x, y and z back to the slices. The bottom row of
// m is not applied; for projective transforms that need a w divide, use
// MulVec on the core types. Processing stops at the shortest slice.
func TransformPoints(m glm.Mat4[float64], x, y, z []float64) {
	n := min(len(x), len(y), len(z))
	if n == 0 {
		return
	}
	transformPointsImpl(m, x, y, z, n)
}

// MinMax returns the smallest and the largest element of xs.
// It returns (0, 0) when xs is empty.
func MinMax(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	return minMaxImpl(xs)
}
