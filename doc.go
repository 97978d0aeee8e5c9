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

// Package lineart represents vector line-art as collections of 3-D
// polylines.
//
// A [Geometry] stores all vertices in one contiguous array together with
// an offsets array which marks where each line starts.  Geometries are
// produced by shape generators or [FromLines], transformed by the effects
// in the effect sub-package, and finally written out by the export
// sub-package.
//
// Several effects need two-dimensional algorithms.  A [Plane] maps a
// polyline into the z=0 plane and back.
package lineart
