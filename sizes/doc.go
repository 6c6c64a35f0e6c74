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

// Package sizes is a catalog of standard paper sizes.
//
// The catalog covers the ISO 269 A, B and C series, the oversized RA and
// SRA series, the Japanese JIS P 0138 sizes, the US and ANSI sizes, and a
// selection of national, stationery, card, craft, newspaper and book
// sizes.  All sizes are given in the orientation in which they are
// normally quoted; use [seehuhn.de/go/paper.Size.Landscape] or
// [seehuhn.de/go/paper.Size.Portrait] to change this.
//
// The series variables [A], [B], [C], [RA], [SRA], [JISA] and [JISB] can
// be used to obtain members beyond the precomputed constants:
//
//	a12 := sizes.A.Size(12)
//
// [Entries] lists all sizes of the catalog by name, for building lookup
// tables.
package sizes
