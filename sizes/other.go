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

// Page sizes of personal organisers.
var (
	FilofaxMini          = paper.FromInch(4.25, 2.625)
	FilofaxPocket        = paper.FromInch(4.75, 3.25)
	FilofaxPersonal      = paper.FromInch(6.75, 3.75)
	FilofaxSlimline      = paper.FromInch(6.75, 3.75)
	FilofaxA5            = paper.FromInch(8.25, 5.75)
	FranklinCoveyPocket  = paper.FromInch(3.5, 6)
	FranklinCoveyCompact = paper.FromInch(4.25, 6.75)
	FranklinCoveyClassic = paper.FromInch(5.5, 8.5)
	OrganizerJ           = paper.FromInch(2.75, 5)
	OrganizerK           = Tabloid
	OrganizerL           = paper.FromInch(5.5, 8.5)
	OrganizerM           = Letter
)

// Cards.
var (
	IndexCard5x3 = paper.FromInch(5, 3)
	IndexCard6x4 = paper.FromInch(6, 4)
	IndexCard8x5 = paper.FromInch(8, 5)

	// ISOBusinessCard is the ID-1 format of ISO/IEC 7810, the size of
	// credit cards.
	ISOBusinessCard      = paper.FromMM(85.60, 52.98)
	USBusinessCard       = paper.FromInch(2, 3.5)
	UKBusinessCard       = paper.FromMM(85, 55)
	JapaneseBusinessCard = paper.FromMM(91, 55)

	PlayingCardPoker  = B8
	PlayingCardBridge = paper.FromMM(56, 88)
	PlayingCard       = PlayingCardBridge
)

// Craft paper sizes.
var (
	Inchie = paper.FromInch(1, 1)

	// ATC is the size of an artist trading card.
	ATC = paper.FromInch(2.5, 3.5)

	Scrapbook6     = paper.FromInch(6, 6)
	Scrapbook7     = paper.FromInch(7, 7)
	Scrapbook8     = paper.FromInch(8, 8)
	SmallScrapbook = Scrapbook8
	LargeScrapbook = paper.FromInch(12, 12)
	Scrapbook      = LargeScrapbook
	MooCard        = paper.FromMM(28, 70)
)

// Newspaper sizes.
var (
	BroadsheetNewspaper = paper.FromMM(600, 750)
	BerlinerNewspaper   = paper.FromMM(315, 470)
	MidiNewspaper       = BerlinerNewspaper
	TabloidNewspaper    = paper.FromMM(280, 430)
)

// Book page sizes.
var (
	AFormatPaperback = paper.FromMM(110, 178)
	BFormatPaperback = paper.FromMM(130, 198)
	CFormatPaperback = paper.FromMM(135, 216)
	TradePaperback   = CFormatPaperback
)

// Standard book sizes of the Lulu print-on-demand service.
var (
	LuluUSTradePaperback = paper.FromInch(6, 9)
	LuluComicBook        = paper.FromInch(6.625, 10.25)
	LuluPocketBook       = paper.FromInch(4.25, 6.875)
	LuluLandscapeBook    = paper.FromInch(9, 7)
	LuluSmallSquareBook  = paper.FromInch(7.5, 7.5)
	LuluRoyalBook        = paper.FromInch(6.139, 9.21)
	LuluCrownQuartoBook  = paper.FromInch(7.444, 9.681)
	LuluSquareBook       = paper.FromInch(8.5, 8.5)
)
