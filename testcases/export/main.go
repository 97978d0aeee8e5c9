// seehuhn.de/go/lineart - vector line-art generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command export writes the input and output geometry of every test case
// to JSON files, for comparison against other implementations.
//
// Run from the module root directory.
package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/effect"
	"seehuhn.de/go/lineart/export"
	"seehuhn.de/go/lineart/testcases"
)

const outDir = "testdata/geometry"

type jsonStage struct {
	Effect string        `json:"effect"`
	Params effect.Params `json:"params,omitempty"`
}

type jsonTestCase struct {
	Name   string        `json:"name"`
	Stages []jsonStage   `json:"stages"`
	Params effect.Params `json:"params,omitempty"`
	Input  string        `json:"input"`
	Output string        `json:"output"`
}

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	reg := effect.DefaultRegistry()
	var index struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range testcases.Categories() {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			res, err := tc.Run(reg)
			if err != nil {
				panic(err)
			}

			jtc := jsonTestCase{
				Name:   name,
				Params: tc.Params,
				Input:  name + "_in.json",
				Output: name + "_out.json",
			}
			for _, s := range tc.Stages {
				jtc.Stages = append(jtc.Stages, jsonStage{Effect: s.Effect, Params: s.Params})
			}
			writeGeometry(filepath.Join(outDir, jtc.Input), tc.Shape)
			writeGeometry(filepath.Join(outDir, jtc.Output), res)
			index.TestCases = append(index.TestCases, jtc)
		}
	}

	f, err := os.Create(filepath.Join(outDir, "testcases.json"))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(index); err != nil {
		panic(err)
	}
}

func writeGeometry(fileName string, g *lineart.Geometry) {
	f, err := os.Create(fileName)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	if err := export.WriteJSON(f, g); err != nil {
		panic(err)
	}
}
