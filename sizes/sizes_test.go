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
	"math"
	"testing"

	"seehuhn.de/go/paper"
)

func TestISOSizes(t *testing.T) {
	cases := []struct {
		name string
		size paper.Size
		w, h float64
	}{
		{"A0", A0, 841, 1189},
		{"A1", A1, 594, 841},
		{"A2", A2, 420, 594},
		{"A3", A3, 297, 420},
		{"A4", A4, 210, 297},
		{"A5", A5, 148, 210},
		{"B0", B0, 1000, 1414},
		{"B3", B3, 353, 500},
		{"B4", B4, 250, 353},
		{"B5", B5, 176, 250},
		{"C4", C4, 229, 324},
		{"C5", C5, 162, 229},
		{"RA0", RA0, 860, 1220},
		{"RA1", RA1, 610, 860},
		{"RA2", RA2, 430, 610},
		{"RA3", RA3, 305, 430},
		{"SRA0", SRA0, 900, 1280},
		{"SRA1", SRA1, 640, 900},
		{"SRA2", SRA2, 450, 640},
		{"SRA3", SRA3, 320, 450},
		{"JIS_A4", JISA4, 210, 297},
		{"JIS_B0", JISB0, 1030, 1456},
		{"JIS_B3", JISB3, 364, 515},
		{"JIS_B4", JISB4, 257, 364},
		{"JIS_B5", JISB5, 182, 257},
		{"DL", DL, 220, 100},
		{"PLAYING_CARD_POKER", PlayingCardPoker, 62, 88},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			want := paper.FromMM(c.w, c.h)
			if !c.size.IsApproximately(want, 0.25*paper.MM) {
				t.Errorf("got %s, want %s", c.size.MMString(), want.MMString())
			}
		})
	}
}

func TestUSSizes(t *testing.T) {
	if Letter != (paper.Size{Width: 612, Height: 792}) {
		t.Errorf("Letter = %s", Letter.PointString())
	}
	if Ledger != Tabloid.Landscape() {
		t.Errorf("Ledger = %s", Ledger.InchString(""))
	}
	if ANSIA != Letter || ANSIB != ElevenBySeventeen {
		t.Error("ANSI aliases are wrong")
	}
	if HalfLetter != Letter.Half() {
		t.Errorf("HalfLetter = %s", HalfLetter.InchString(""))
	}
}

func TestThirdA4(t *testing.T) {
	if math.Abs(3*ThirdA4.Height-A4.Height) > 1e-9 || ThirdA4.Width != A4.Width {
		t.Errorf("ThirdA4 = %s", ThirdA4.MMString())
	}
	if !ThirdA4.Landscape().IsApproximately(DL, 2*paper.CM) {
		t.Errorf("a third of A4 does not fit into DL")
	}
}

func TestEntries(t *testing.T) {
	entries := Entries()
	seen := make(map[string]bool)
	for _, e := range entries {
		if seen[e.Name] {
			t.Errorf("duplicate name %q", e.Name)
		}
		seen[e.Name] = true
		if !(e.Size.Width > 0 && e.Size.Height > 0) {
			t.Errorf("%s has invalid size %v", e.Name, e.Size)
		}
	}

	for _, name := range []string{"A0", "A10", "B10", "C10", "RA4", "SRA4",
		"JIS_A10", "JIS_B10", "LETTER", "ISO_BUSINESS_CARD", "LULU_SQUARE_BOOK"} {
		if !seen[name] {
			t.Errorf("missing %q", name)
		}
	}
	if seen["RA5"] {
		t.Error("unexpected RA5")
	}

	entries[0].Name = "modified"
	if Entries()[0].Name != "A0" {
		t.Error("Entries does not return a copy")
	}
}

func TestSeriesBeyondCatalog(t *testing.T) {
	if got := A.Size(11); !got.IsApproximately(paper.FromMM(18, 26), 0.25*paper.MM) {
		t.Errorf("A11 = %s", got.MMString())
	}
	if got := A.Size(-1); got != paper.FromMM(1189, 1682) {
		t.Errorf("2A0 = %s", got.MMString())
	}
}
