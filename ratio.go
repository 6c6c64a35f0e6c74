// seehuhn.de/go/paper - standard paper sizes and their manipulation
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

package paper

import "math"

// Height to width ratios for common page shapes.
// These can be used with [FromRatio] to construct portrait sizes.
const (
	// FourThirds is the 4:3 ratio.  Quarto books have roughly this shape.
	FourThirds = 4.0 / 3.0

	// TwoThirds is the 3:2 ratio of octavo books, which are half a quarto.
	TwoThirds = 1.5

	// ISORatio is the ratio of the ISO 269 sizes.  Cutting such a sheet in
	// half, parallel to the short side, gives two sheets of the same shape.
	ISORatio = math.Sqrt2

	// GoldenRatio is (1+√5)/2.  Removing a square of the short side from a
	// sheet with this shape leaves a sheet of the same shape.
	GoldenRatio = math.Phi

	// PentagonRatio is the ratio of the height of a regular pentagon to
	// its side length.
	PentagonRatio = 1.5388417685876266
)
