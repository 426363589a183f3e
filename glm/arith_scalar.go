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

// Scalar lane bridges for the arithmetic layer, selected when the SIMD
// backend is unavailable. These mirror the AVX kernels lane for lane.

func addImpl4(a, b [4]float64) [4]float64 {
	return [4]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func subImpl4(a, b [4]float64) [4]float64 {
	return [4]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func mulImpl4(a, b [4]float64) [4]float64 {
	return [4]float64{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func divImpl4(a, b [4]float64) [4]float64 {
	return [4]float64{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

func absImpl4(a [4]float64) [4]float64 {
	var r [4]float64
	for i, x := range a {
		r[i] = math.Abs(x)
	}
	return r
}

func signImpl4(a [4]float64) [4]float64 {
	var r [4]float64
	for i, x := range a {
		switch {
		case x > 0:
			r[i] = 1
		case x < 0:
			r[i] = -1
		}
	}
	return r
}

func floorImpl4(a [4]float64) [4]float64 {
	var r [4]float64
	for i, x := range a {
		r[i] = math.Floor(x)
	}
	return r
}

func ceilImpl4(a [4]float64) [4]float64 {
	var r [4]float64
	for i, x := range a {
		r[i] = math.Ceil(x)
	}
	return r
}

func roundImpl4(a [4]float64) [4]float64 {
	var r [4]float64
	for i, x := range a {
		r[i] = math.RoundToEven(x)
	}
	return r
}

func clampImpl4(a [4]float64, lo, hi float64) [4]float64 {
	var r [4]float64
	for i, x := range a {
		r[i] = min(max(x, lo), hi)
	}
	return r
}
