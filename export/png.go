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
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/outline"
)

// Rasterize draws g in black on a white background.  Lines are replaced
// by their pen outlines, which are then filled.
func Rasterize(g *lineart.Geometry, opts Options) *image.Gray {
	opts = opts.withDefaults()
	pxPerMM := opts.DPI / 25.4
	w := max(1, int(math.Ceil(opts.Width*pxPerMM)))
	h := max(1, int(math.Ceil(opts.Height*pxPerMM)))
	M := scaled(View(g, opts), pxPerMM)
	radius := max(opts.PenWidth*pxPerMM/2, 0.5)

	r := vector.NewRasterizer(w, h)
	p := &penOutliner{
		o: outline.Outliner{Join: graphics.LineJoinRound, Resolution: 4},
		r: r,
	}
	for _, line := range g.Lines() {
		if len(line) == 0 {
			continue
		}
		p.xy = p.xy[:0]
		for _, q := range line {
			p.xy = append(p.xy, apply(M, float64(q.X), float64(q.Y)))
		}
		n := len(p.xy)
		if n > 2 && p.xy[0] == p.xy[n-1] {
			// outlines of closed lines enclose the interior
			p.stroke(p.xy[:n-1], radius)
			p.stroke(p.xy[n-2:], radius)
		} else {
			p.stroke(p.xy, radius)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	img := image.NewGray(mask.Bounds())
	for i, a := range mask.Pix {
		img.Pix[i] = 255 - a
	}
	return img
}

// WritePNG writes g as a grayscale PNG image.
func WritePNG(w io.Writer, g *lineart.Geometry, opts Options) error {
	return png.Encode(w, Rasterize(g, opts))
}

// penOutliner adds pen outlines to a rasterizer.
type penOutliner struct {
	o    outline.Outliner
	r    *vector.Rasterizer
	xy   []vec.Vec2
	ring []vec.Vec2
}

func (p *penOutliner) stroke(pts []vec.Vec2, radius float64) {
	p.ring = p.o.Buffer(p.ring[:0], pts, radius)
	if len(p.ring) < 3 {
		return
	}
	p.r.MoveTo(float32(p.ring[0].X), float32(p.ring[0].Y))
	for _, q := range p.ring[1:] {
		p.r.LineTo(float32(q.X), float32(q.Y))
	}
	p.r.ClosePath()
}
