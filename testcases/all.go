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

package testcases

import (
	"maps"
	"slices"
)

// All holds the scenarios, grouped by category.
var All = map[string][]TestCase{
	"shape":      shapeCases,
	"transform":  transformCases,
	"line":       lineCases,
	"outline":    outlineCases,
	"fill":       fillCases,
	"distort":    distortCases,
	"degenerate": degenerateCases,
	"large":      largeCases,
}

// Categories returns the category names of [All] in sorted order.
func Categories() []string {
	return slices.Sorted(maps.Keys(All))
}
