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

// Command glmgen generates the short-alias file for every concrete
// parametrization of the vector and matrix types.
//
// Usage:
//
//	glmgen -output aliases.go
//
// Or via go:generate from the glm package directory:
//
//	//go:generate go run ../cmd/glmgen -output aliases.go
//
// The element-type table in generator.go drives the output; adding a
// parametrization there and rerunning is all it takes to extend the
// alias surface.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "aliases.go", "Output file path")
	packageOut = flag.String("pkg", "glm", "Output package name")
)

func main() {
	flag.Parse()

	if *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag must not be empty\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputFile: *outputFile,
		Package:    *packageOut,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s (%d parametrizations)\n", *outputFile, len(Elements))
}
