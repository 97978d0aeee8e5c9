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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/lineart"
)

// ptPerMM is the number of PDF points per millimetre.
const ptPerMM = 72 / 25.4

// WritePDF writes g as a single page PDF file.  Lines are stroked in black
// with round caps and joins.
func WritePDF(fileName string, g *lineart.Geometry, opts Options) error {
	opts = opts.withDefaults()
	paper := &pdf.Rectangle{
		URx: opts.Width * ptPerMM,
		URy: opts.Height * ptPerMM,
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(opts.PenWidth * ptPerMM)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	M := pdfView(View(g, opts), opts.Height)
	empty := true
	for cmd, pts := range ToPath(g, M).Iter() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
			empty = false
		}
	}
	if !empty {
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return nil
}

// pdfView converts a page map (mm, y down) into PDF user space (points, y
// up) for a page of the given height in mm.
func pdfView(M matrix.Matrix, height float64) matrix.Matrix {
	k := ptPerMM
	return matrix.Matrix{k * M[0], -k * M[1], k * M[2], -k * M[3], k * M[4], k * (height - M[5])}
}
