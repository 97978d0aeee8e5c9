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
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/lineart"
)

func testGeometry() *lineart.Geometry {
	return lineart.FromLines([][]lineart.Point{
		{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0}},
		{{X: 1, Y: 1, Z: 5}},
		{},
		{{X: 2, Y: 0.5}, {X: 3, Y: 1.5}},
	})
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"svg", ".SVG", "pdf", ".png", "Json"} {
		_, err := ParseFormat(name)
		assert.NoError(t, err, name)
	}
	_, err := ParseFormat(".gif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestView(t *testing.T) {
	g := testGeometry()
	opts := Options{Width: 100, Height: 100, Margin: 10}
	M := View(g, opts)

	// the drawing is 4 wide and 2 high, so the width limits the scale
	lo := apply(M, 0, 0)
	hi := apply(M, 4, 2)
	assert.InDelta(t, 10, lo.X, 1e-9)
	assert.InDelta(t, 90, hi.X, 1e-9)
	assert.InDelta(t, 70, lo.Y, 1e-9, "y axis points down")
	assert.InDelta(t, 30, hi.Y, 1e-9)

	// degenerate drawings are centred
	single := lineart.FromLines([][]lineart.Point{{{X: 3, Y: 7}}})
	c := apply(View(single, opts), 3, 7)
	assert.InDelta(t, 50, c.X, 1e-9)
	assert.InDelta(t, 50, c.Y, 1e-9)

	empty := View(lineart.Empty(), opts)
	assert.InDelta(t, 50, apply(empty, 0, 0).X, 1e-9)
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{Margin: 200}.withDefaults()
	assert.Equal(t, DefaultOptions(), o)

	o = Options{Width: 50, Height: 40, Margin: 5, PenWidth: 1, DPI: 300}.withDefaults()
	assert.Equal(t, 50.0, o.Width)
	assert.Equal(t, 5.0, o.Margin)
	assert.Equal(t, 300.0, o.DPI)
}

func TestToPath(t *testing.T) {
	p := ToPath(testGeometry(), View(testGeometry(), Options{}))
	var moves, lines int
	for cmd := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			moves++
		case path.CmdLineTo:
			lines++
		}
	}
	assert.Equal(t, 3, moves, "empty lines are skipped")
	assert.Equal(t, 4+1+1, lines, "single points become zero-length segments")
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, testGeometry(), Options{Width: 100, Height: 50, PenWidth: 0.5})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="100mm"`)
	assert.Contains(t, out, `viewBox="0 0 100 50"`)
	assert.Contains(t, out, "stroke-width:0.5")
	assert.Equal(t, 3, strings.Count(out, "<path "))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWriteSVGError(t *testing.T) {
	err := WriteSVG(failingWriter{}, testGeometry(), Options{})
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestRasterize(t *testing.T) {
	g := lineart.FromLines([][]lineart.Point{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}},
	})
	opts := Options{Width: 40, Height: 40, Margin: 5, PenWidth: 2, DPI: 25.4}
	img := Rasterize(g, opts)
	require.Equal(t, 40, img.Bounds().Dx())
	require.Equal(t, 40, img.Bounds().Dy())

	// the square maps to [5,35]x[5,35]; its outline is dark, the
	// interior and the surrounding page stay white
	assert.Less(t, img.GrayAt(5, 20).Y, uint8(128), "left edge")
	assert.Less(t, img.GrayAt(20, 5).Y, uint8(128), "top edge")
	assert.Equal(t, uint8(255), img.GrayAt(20, 20).Y, "interior")
	assert.Equal(t, uint8(255), img.GrayAt(1, 1).Y, "page corner")
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Width: 50, Height: 20, Margin: 2, DPI: 25.4}
	require.NoError(t, WritePNG(&buf, testGeometry(), opts))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestJSON(t *testing.T) {
	g := testGeometry()
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, g))
	assert.Contains(t, buf.String(), `"offsets"`)

	h, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(h))

	h, err = ReadJSON(strings.NewReader(`{"coords": [[0,0,0],[1,2,3]]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, h.NumLines())
	assert.Equal(t, 2, h.NumPoints())

	_, err = ReadJSON(strings.NewReader(`{"coords": [[0,0,0]], "offsets": [0, 2]}`))
	assert.ErrorIs(t, err, lineart.ErrInvalidOffsets)

	_, err = ReadJSON(strings.NewReader(`{"coords": `))
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	g := testGeometry()
	for _, name := range []string{"out.svg", "out.png", "out.json", "out.pdf"} {
		t.Run(name, func(t *testing.T) {
			fileName := filepath.Join(dir, name)
			require.NoError(t, WriteFile(fileName, g, Options{}))
			data, err := os.ReadFile(fileName)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
			if name == "out.pdf" {
				assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
			}
		})
	}

	h, err := ReadJSONFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	assert.True(t, g.Equal(h))

	err = WriteFile(filepath.Join(dir, "out.gif"), g, Options{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
