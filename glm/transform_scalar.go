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

// rotateImpl builds the Rodrigues rotation rows for the normalized axis
// with precomputed sin and cos.
func rotateImpl(axis [4]float64, s, c float64) [16]float64 {
	n := normalizeImpl4(axis)
	omc := 1 - c
	return [16]float64{
		c + n[0]*n[0]*omc, n[0]*n[1]*omc - n[2]*s, n[0]*n[2]*omc + n[1]*s, 0,
		n[1]*n[0]*omc + n[2]*s, c + n[1]*n[1]*omc, n[1]*n[2]*omc - n[0]*s, 0,
		n[2]*n[0]*omc - n[1]*s, n[2]*n[1]*omc + n[0]*s, c + n[2]*n[2]*omc, 0,
		0, 0, 0, 1,
	}
}
