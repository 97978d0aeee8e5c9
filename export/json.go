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

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/lineart"
)

// jsonGeometry is the JSON form of a geometry.
type jsonGeometry struct {
	Coords  [][3]float32 `json:"coords"`
	Offsets []int32      `json:"offsets"`
}

// WriteJSON writes the vertex and offset arrays of g as a JSON object.
func WriteJSON(w io.Writer, g *lineart.Geometry) error {
	coords, offsets := g.Arrays(false)
	out := jsonGeometry{
		Coords:  make([][3]float32, len(coords)),
		Offsets: offsets,
	}
	for i, q := range coords {
		out.Coords[i] = [3]float32{q.X, q.Y, q.Z}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ReadJSON reads a geometry written by [WriteJSON].  If the offsets field
// is missing, all points form a single line.
func ReadJSON(r io.Reader) (*lineart.Geometry, error) {
	var in jsonGeometry
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("export: decoding geometry: %w", err)
	}
	coords := make([]lineart.Point, len(in.Coords))
	for i, c := range in.Coords {
		coords[i] = lineart.Point{X: c[0], Y: c[1], Z: c[2]}
	}
	offsets := in.Offsets
	if offsets == nil {
		offsets = []int32{0}
		if len(coords) > 0 {
			offsets = append(offsets, int32(len(coords)))
		}
	}
	g, err := lineart.New(coords, offsets)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return g, nil
}

// ReadJSONFile reads a geometry from the named file.
func ReadJSONFile(fileName string) (*lineart.Geometry, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return g, nil
}
