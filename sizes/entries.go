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

import (
	"strconv"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/paper"
)

// Entries returns all sizes of the catalog, in the order in which they are
// declared.  Aliases like "ANSI_A" and "LETTER" are listed separately.
// The names are the traditional upper case identifiers, with words
// separated by underscores.
//
// The returned slice is a copy and can be modified by the caller.
func Entries() []paper.Named {
	return slices.Clone(catalog)
}

var catalog = buildCatalog()

func buildCatalog() []paper.Named {
	var res []paper.Named
	addSeries := func(prefix string, s *paper.Series, first, last int) {
		for i := first; i <= last; i++ {
			res = append(res, paper.Named{
				Name: prefix + strconv.Itoa(i),
				Size: s.Size(i),
			})
		}
	}

	addSeries("A", A, 0, 10)
	addSeries("B", B, 0, 10)
	addSeries("C", C, 0, 10)
	res = append(res,
		paper.Named{Name: "THIRD_A4", Size: ThirdA4},
		paper.Named{Name: "DL", Size: DL},
	)
	addSeries("RA", RA, 0, 4)
	addSeries("SRA", SRA, 0, 4)
	res = append(res, paper.Named{Name: "A3_PLUS", Size: A3Plus})
	addSeries("JIS_A", JISA, 0, 10)
	addSeries("JIS_B", JISB, 0, 10)

	res = append(res, []paper.Named{
		{"SHIROKU_BAN4", ShirokuBan4},
		{"SHIROKU_BAN5", ShirokuBan5},
		{"SHIROKU_BAN5_VARIANT", ShirokuBan5Variant},
		{"SHIROKU_BAN6", ShirokuBan6},
		{"SIS_G5", SISG5},
		{"SIS_E5", SISE5},
		{"F4", F4},

		{"LETTER", Letter},
		{"LEGAL", Legal},
		{"TABLOID", Tabloid},
		{"ELEVEN_BY_SEVENTEEN", ElevenBySeventeen},
		{"LEDGER", Ledger},
		{"ANSI_A", ANSIA},
		{"ANSI_B", ANSIB},
		{"ANSI_C", ANSIC},
		{"ANSI_D", ANSID},
		{"ANSI_E", ANSIE},

		{"ARCH_A", ArchA},
		{"ARCH_B", ArchB},
		{"ARCH_C", ArchC},
		{"ARCH_D", ArchD},
		{"ARCH_E", ArchE},
		{"ARCH_E1", ArchE1},

		{"FILOFAX_MINI", FilofaxMini},
		{"FILOFAX_POCKET", FilofaxPocket},
		{"FILOFAX_PERSONAL", FilofaxPersonal},
		{"FILOFAX_SLIMLINE", FilofaxSlimline},
		{"FILOFAX_A5", FilofaxA5},
		{"FRANKLIN_COVEY_POCKET", FranklinCoveyPocket},
		{"FRANKLIN_COVEY_COMPACT", FranklinCoveyCompact},
		{"FRANKLIN_COVEY_CLASSIC", FranklinCoveyClassic},
		{"ORGANIZER_J", OrganizerJ},
		{"ORGANIZER_K", OrganizerK},
		{"ORGANIZER_L", OrganizerL},
		{"ORGANIZER_M", OrganizerM},

		{"INDEX_CARD_5X3", IndexCard5x3},
		{"INDEX_CARD_6X4", IndexCard6x4},
		{"INDEX_CARD_8X5", IndexCard8x5},
		{"ISO_BUSINESS_CARD", ISOBusinessCard},
		{"US_BUSINESS_CARD", USBusinessCard},
		{"UK_BUSINESS_CARD", UKBusinessCard},
		{"JAPANESE_BUSINESS_CARD", JapaneseBusinessCard},
		{"PLAYING_CARD_POKER", PlayingCardPoker},
		{"PLAYING_CARD_BRIDGE", PlayingCardBridge},
		{"PLAYING_CARD", PlayingCard},

		{"INCHIE", Inchie},
		{"ATC", ATC},
		{"SCRAPBOOK_6", Scrapbook6},
		{"SCRAPBOOK_7", Scrapbook7},
		{"SCRAPBOOK_8", Scrapbook8},
		{"SMALL_SCRAPBOOK", SmallScrapbook},
		{"LARGE_SCRAPBOOK", LargeScrapbook},
		{"SCRAPBOOK", Scrapbook},
		{"MOO_CARD", MooCard},

		{"BROADSHEET_NEWSPAPER", BroadsheetNewspaper},
		{"BERLINER_NEWSPAPER", BerlinerNewspaper},
		{"MIDI_NEWSPAPER", MidiNewspaper},
		{"TABLOID_NEWSPAPER", TabloidNewspaper},

		{"GOVERNMENT_LEGAL", GovernmentLegal},
		{"JUNIOR_LEGAL", JuniorLegal},
		{"COMPACT", Compact},
		{"MEMO", Memo},
		{"STATEMENT", Statement},
		{"HALF_LETTER", HalfLetter},
		{"MONARCH", Monarch},
		{"EXECUTIVE", Executive},
		{"FOLIO", Folio},
		{"FOOLSCAP", Foolscap},
		{"QUARTO", Quarto},
		{"SUPER_B", SuperB},
		{"POST", Post},
		{"CROWN", Crown},
		{"LARGE_POST", LargePost},
		{"DEMY", Demy},
		{"MEDIUM", Medium},
		{"BROADSHEET", Broadsheet},
		{"ROYAL", Royal},
		{"ELEPHANT", Elephant},
		{"DOUBLE_DEMY", DoubleDemy},
		{"QUAD_DEMY", QuadDemy},

		{"A_FORMAT_PAPERBACK", AFormatPaperback},
		{"B_FORMAT_PAPERBACK", BFormatPaperback},
		{"C_FORMAT_PAPERBACK", CFormatPaperback},
		{"TRADE_PAPERBACK", TradePaperback},

		{"LULU_US_TRADE_PAPERBACK", LuluUSTradePaperback},
		{"LULU_COMIC_BOOK", LuluComicBook},
		{"LULU_POCKET_BOOK", LuluPocketBook},
		{"LULU_LANDSCAPE_BOOK", LuluLandscapeBook},
		{"LULU_SMALL_SQUARE_BOOK", LuluSmallSquareBook},
		{"LULU_ROYAL_BOOK", LuluRoyalBook},
		{"LULU_CROWN_QUARTO_BOOK", LuluCrownQuartoBook},
		{"LULU_SQUARE_BOOK", LuluSquareBook},
	}...)

	return res
}
