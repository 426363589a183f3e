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

package main

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// ElementType describes one concrete parametrization of the vector and
// matrix types.
type ElementType struct {
	Go     string // Go scalar type, e.g. "float32"
	Suffix string // alias suffix, e.g. "f"
}

// Display returns the element name as it appears in doc comments.
func (e ElementType) Display() string {
	return cases.Title(language.English).String(e.Go)
}

// Elements lists every parametrization the library specializes, in the
// order their alias sections are emitted.
var Elements = []ElementType{
	{"float32", "f"},
	{"float64", "d"},
	{"int16", "i16"},
	{"int32", "i32"},
	{"int64", "i64"},
	{"uint16", "u16"},
	{"uint32", "u32"},
	{"uint64", "u64"},
}

const aliasTemplate = `// Code generated by glmgen. DO NOT EDIT.

package {{.Package}}
{{range .Elems}}
// Short aliases for the {{.Display}} parametrization.
type (
	Vec2{{.Suffix}} = Vec2[{{.Go}}]
	Vec3{{.Suffix}} = Vec3[{{.Go}}]
	Vec4{{.Suffix}} = Vec4[{{.Go}}]
	Mat2{{.Suffix}} = Mat2[{{.Go}}]
	Mat3{{.Suffix}} = Mat3[{{.Go}}]
	Mat4{{.Suffix}} = Mat4[{{.Go}}]
)
{{end}}`

// Generator holds the configuration for one glmgen run.
type Generator struct {
	OutputFile string
	Package    string
}

// Render executes the alias template and returns the formatted source.
func (g *Generator) Render() ([]byte, error) {
	tmpl, err := template.New("aliases").Parse(aliasTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	data := struct {
		Package string
		Elems   []ElementType
	}{g.Package, Elements}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	formatted, err := imports.Process(g.OutputFile, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", g.OutputFile, err)
	}
	return formatted, nil
}

// Run renders the alias file and writes it to OutputFile.
func (g *Generator) Run() error {
	src, err := g.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	return nil
}
