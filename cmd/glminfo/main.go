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

// Package main prints the compiled glm backend and the CPU features
// the host offers, to diagnose why a build did or did not get the
// AVX kernels.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-glm/glm"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("glm backend: %s\n", glm.CurrentBackend())
	fmt.Printf("glm backend width: %d bytes\n", glm.CurrentWidth())
	fmt.Printf("glm backend name: %s\n", glm.CurrentName())
	if glm.CurrentBackend() == glm.BackendScalar && glm.HasAVX2() {
		fmt.Println("note: CPU supports AVX2; rebuild with GOEXPERIMENT=simd on amd64 to use it")
	}
	fmt.Println()

	if runtime.GOARCH == "amd64" {
		printAMD64Features()
		fmt.Println()
	}

	fmt.Printf("glm HasAVX2: %v\n", glm.HasAVX2())
	fmt.Printf("glm HasAVX512: %v\n", glm.HasAVX512())
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
	fmt.Printf("  HasAVX512VL: %v\n", cpu.X86.HasAVX512VL)
	fmt.Printf("  HasFMA:      %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE42:    %v\n", cpu.X86.HasSSE42)
}
