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

// Backend identifies which float64 kernel implementation was compiled in.
// The choice is fixed at build time: compiling with GOEXPERIMENT=simd on
// amd64 selects the AVX backend, everything else selects the scalar one.
type Backend int

const (
	// BackendScalar is the portable pure-Go implementation.
	BackendScalar Backend = iota

	// BackendAVX is the 256-bit AVX2 implementation.
	BackendAVX
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendScalar:
		return "scalar"
	case BackendAVX:
		return "avx2"
	default:
		return "unknown"
	}
}

// Set by init() in backend_*.go files.
var (
	currentBackend Backend
	currentWidth   int
	currentName    string
)

// CurrentBackend returns the compiled-in float64 backend.
func CurrentBackend() Backend {
	return currentBackend
}

// CurrentWidth returns the register width in bytes the float64 kernels
// operate on: 32 for AVX, 8 for scalar.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the backend, "avx2" or
// "scalar".
func CurrentName() string {
	return currentName
}
