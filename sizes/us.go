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

// US paper sizes.
var (
	// Letter is the most common paper size in the US and its immediate
	// neighbours.  It is size A of ANSI Y14.1.
	Letter = paper.FromInch(8.5, 11)

	// Legal is a taller version of [Letter].
	Legal = paper.FromInch(8.5, 14)

	// Tabloid is the size of two [Letter] sheets side by side.  Prefer the
	// name [ElevenBySeventeen], since "tabloid" also denotes a newspaper
	// format.
	Tabloid = paper.FromInch(11, 17)

	ElevenBySeventeen = Tabloid

	// Ledger is [Tabloid] in landscape orientation.
	Ledger = paper.FromInch(17, 11)

	GovernmentLegal = paper.FromInch(8, 10.5)
	JuniorLegal     = paper.FromInch(8, 5)
	Compact         = paper.FromInch(4.25, 6.75)
	Memo            = OrganizerL
	Statement       = Memo
	HalfLetter      = Memo
	Monarch         = paper.FromInch(7.25, 10.5)
	Executive       = Monarch
	Folio           = paper.FromInch(8.27, 13)
	Foolscap        = Folio
	Quarto          = paper.FromInch(9, 11)
	SuperB          = paper.FromInch(13, 19)
)

// Sizes of ANSI Y14.1.  Unlike the ISO 269 letters, each letter denotes a
// single size, not a series.
var (
	ANSIA = Letter
	ANSIB = Tabloid
	ANSIC = paper.FromInch(17, 22)
	ANSID = paper.FromInch(22, 34)
	ANSIE = paper.FromInch(34, 44)
)

// Architectural paper sizes.
var (
	ArchA  = paper.FromInch(9, 12)
	ArchB  = paper.FromInch(12, 18)
	ArchC  = paper.FromInch(18, 24)
	ArchD  = paper.FromInch(24, 36)
	ArchE  = paper.FromInch(36, 48)
	ArchE1 = paper.FromInch(30, 42)
)

// Traditional sheet sizes.
var (
	Post       = paper.FromInch(15.5, 19.5)
	Crown      = paper.FromInch(15, 20)
	LargePost  = paper.FromInch(16.5, 21)
	Demy       = paper.FromInch(17.5, 22.5)
	Medium     = paper.FromInch(18, 23)
	Broadsheet = paper.FromInch(18, 24)
	Royal      = paper.FromInch(20, 25)
	Elephant   = paper.FromInch(23, 28)
	DoubleDemy = paper.FromInch(22.5, 35)
	QuadDemy   = paper.FromInch(35, 45)
)
