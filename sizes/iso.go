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

package sizes

import "seehuhn.de/go/paper"

// The ISO 269 series and their relatives.
var (
	// A is the ISO 269 A series, the standard paper sizes in almost every
	// country except the US.
	A = paper.NewSeries(paper.FromMM(841, 1189), 0)

	// B is the ISO 269 B series.
	B = paper.NewSeries(paper.FromMM(1000, 1414), 0)

	// C is the ISO 269 C series, mostly used for envelopes.  A C5 envelope
	// holds an A5 sheet, or an A4 sheet folded in half.
	C = paper.NewSeries(paper.FromMM(917, 1297), 0)

	// RA is a slightly oversized version of the A series, used as a
	// printer's paper size which is trimmed down to the corresponding
	// A size after printing.  It is not part of ISO 269.
	RA = paper.NewSeries(paper.FromMM(860, 1220), 0)

	// SRA is an oversized version of the A series, used for full-bleed
	// printing.  SRA2 is the most common bulk paper size for commercial
	// printing, smaller digital presses use SRA3.
	SRA = paper.NewSeries(paper.FromMM(900, 1280), 0)

	// JISA is the Japanese A series of JIS P 0138.  The sizes agree with
	// the ISO A series; only the allowed tolerances differ.
	JISA = paper.NewSeries(paper.FromMM(841, 1189), 0)

	// JISB is the Japanese B series of JIS P 0138.  It has the ISO
	// proportions, but is slightly larger than the ISO B series.
	JISB = paper.NewSeries(paper.FromMM(1030, 1456), 0)
)

// ISO A series sizes.
var (
	A0  = A.Size(0)
	A1  = A.Size(1)
	A2  = A.Size(2)
	A3  = A.Size(3)
	A4  = A.Size(4)
	A5  = A.Size(5)
	A6  = A.Size(6)
	A7  = A.Size(7)
	A8  = A.Size(8)
	A9  = A.Size(9)
	A10 = A.Size(10)
)

// ISO B series sizes.
var (
	B0  = B.Size(0)
	B1  = B.Size(1)
	B2  = B.Size(2)
	B3  = B.Size(3)
	B4  = B.Size(4)
	B5  = B.Size(5)
	B6  = B.Size(6)
	B7  = B.Size(7)
	B8  = B.Size(8)
	B9  = B.Size(9)
	B10 = B.Size(10)
)

// ISO C series (envelope) sizes.
var (
	C0  = C.Size(0)
	C1  = C.Size(1)
	C2  = C.Size(2)
	C3  = C.Size(3)
	C4  = C.Size(4)
	C5  = C.Size(5)
	C6  = C.Size(6)
	C7  = C.Size(7)
	C8  = C.Size(8)
	C9  = C.Size(9)
	C10 = C.Size(10)
)

var (
	RA0 = RA.Size(0)
	RA1 = RA.Size(1)
	RA2 = RA.Size(2)
	RA3 = RA.Size(3)
	RA4 = RA.Size(4)

	SRA0 = SRA.Size(0)
	SRA1 = SRA.Size(1)
	SRA2 = SRA.Size(2)
	SRA3 = SRA.Size(3)
	SRA4 = SRA.Size(4)
)

// Japanese JIS P 0138 series sizes.
var (
	JISA0  = JISA.Size(0)
	JISA1  = JISA.Size(1)
	JISA2  = JISA.Size(2)
	JISA3  = JISA.Size(3)
	JISA4  = JISA.Size(4)
	JISA5  = JISA.Size(5)
	JISA6  = JISA.Size(6)
	JISA7  = JISA.Size(7)
	JISA8  = JISA.Size(8)
	JISA9  = JISA.Size(9)
	JISA10 = JISA.Size(10)

	JISB0  = JISB.Size(0)
	JISB1  = JISB.Size(1)
	JISB2  = JISB.Size(2)
	JISB3  = JISB.Size(3)
	JISB4  = JISB.Size(4)
	JISB5  = JISB.Size(5)
	JISB6  = JISB.Size(6)
	JISB7  = JISB.Size(7)
	JISB8  = JISB.Size(8)
	JISB9  = JISB.Size(9)
	JISB10 = JISB.Size(10)
)

var (
	// ThirdA4 is an A4 sheet folded in three along its long side.  This is
	// the usual size of a compliment slip in European businesses.
	ThirdA4 = paper.Size{Width: A4.Width, Height: A4.Height / 3}

	// DL is the envelope size which holds an A4 sheet folded in three.
	// Together with C5, this is the most common business envelope in Europe.
	DL = paper.FromMM(220, 100)

	// A3Plus is a slightly oversized A3, used for full-bleed printing on
	// some inkjet printers.
	A3Plus = paper.FromMM(329, 483)
)

// Japanese sizes outside the JIS A and B series.
//
// The Shiroku ban sizes do not have the ISO proportions and cannot be
// halved to obtain the next smaller size.
var (
	ShirokuBan4 = paper.FromMM(264, 379)
	ShirokuBan5 = paper.FromMM(189, 262)
	ShirokuBan6 = paper.FromMM(127, 188)

	// ShirokuBan5Variant is a traditional variant of Shiroku ban 5 which
	// arises when the sheet is cut from a larger one.  It is not part of
	// JIS P 0138.
	ShirokuBan5Variant = paper.FromMM(191, 259)
)

// Swedish sizes from SIS 014711 which are not part of ISO 269.
var (
	SISG5 = paper.FromMM(169, 239)
	SISE5 = paper.FromMM(155, 220)
)

// F4 is used in Australia and parts of Asia.
var F4 = paper.FromMM(210, 330)
