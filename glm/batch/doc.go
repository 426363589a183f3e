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

// Package batch provides structure-of-arrays forms of the core vector
// operations, working on separate x/y/z coordinate slices instead of
// []glm.Vec3 values.
//
// The coordinate-slice layout keeps four consecutive elements of one
// coordinate in a single register, so a batch of n points is processed in
// n/4 iterations with no shuffling. On amd64 with GOEXPERIMENT=simd the
// kernels run four float64 elements per AVX iteration; elsewhere a scalar
// loop computes the same values. Runs whose length is not a multiple of
// four finish with a masked tail: the remainder is loaded through a padded
// buffer and stored through a lane mask, so memory past the run is never
// read or written.
//
// All functions stop at the length of the shortest slice they are given:
//
//	xs := []float64{1, 0, 0}
//	ys := []float64{0, 2, 0}
//	zs := []float64{0, 0, 2}
//	batch.Normalize3(xs, ys, zs) // now three unit vectors
//	batch.TransformPoints(glm.Translate(glm.NewVec3(1.0, 0.0, 0.0)), xs, ys, zs)
package batch
