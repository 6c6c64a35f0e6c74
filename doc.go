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

// Package paper provides a value type for paper sizes, together with
// the ISO 269 series generator used to derive families of related sizes.
//
// All lengths are measured in PDF points, where one inch equals 72 points.
// The constants [Inch], [MM], [CM] and [M] can be used to convert from
// other units:
//
//	card := paper.Size{Width: 85 * paper.MM, Height: 55 * paper.MM}
//	letter := paper.FromInch(8.5, 11)
//
// # Sizes
//
// A [Size] is a plain (width, height) pair.  All methods have value
// receivers and return new values, so sizes can be copied and compared
// freely:
//
//	a4 := paper.FromMM(210, 297)
//	a5 := a4.Half()                // 148x210mm
//	wide := a4.Landscape()         // 297x210mm
//	withBleed := a4.AddBleed(3 * paper.MM)
//
// # Series
//
// A [Series] generates the members of an ISO 269 style family from a
// single reference size.  Moving to the next index halves the sheet along
// its long side, moving to the previous index doubles it.  All
// intermediate values are kept in whole millimetres, which gives the
// familiar 210x297mm for A4 even though A0 is 841mm wide.
//
//	a := paper.NewSeries(paper.FromMM(841, 1189), 0)
//	a4 := a.Size(4)
//
// The standard catalog of named sizes is in package
// [seehuhn.de/go/paper/sizes], and package [seehuhn.de/go/paper/parse]
// converts strings like "A4 landscape" or "8.5x11in" into sizes.
package paper
