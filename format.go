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

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PointString describes the size to the nearest point, for example
// "595x842pt".
func (s Size) PointString() string {
	return fmt.Sprintf("%.0fx%.0fpt", s.Width, s.Height)
}

// MMString describes the size to the nearest millimetre, for example
// "210x297mm".
func (s Size) MMString() string {
	return fmt.Sprintf("%.0fx%.0fmm", s.Width/MM, s.Height/MM)
}

// InchString describes the size to the nearest eighth of an inch, using
// Unicode fraction glyphs, for example `8½x11"`.  The unit is appended
// to the result.  If unit is empty, the double quote character is used.
func (s Size) InchString(unit string) string {
	if unit == "" {
		unit = `"`
	}
	return eighths(s.Width) + "x" + eighths(s.Height) + unit
}

// String describes the size in points, millimetres and inches.
func (s Size) String() string {
	return s.PointString() + " (" + s.MMString() + ", " + s.InchString("") + ")"
}

// GoString returns Go syntax for the size.
func (s Size) GoString() string {
	return "paper.Size{Width: " + formatFloat(s.Width) +
		", Height: " + formatFloat(s.Height) + "}"
}

// eighthGlyphs are the Unicode glyphs for 1/8, 2/8, ..., 7/8.
var eighthGlyphs = []rune{'⅛', '¼', '⅜', '½', '⅝', '¾', '⅞'}

// EighthGlyph returns the Unicode fraction glyph for n/8, for n = 1, ..., 7.
func EighthGlyph(n int) (rune, bool) {
	if n < 1 || n > len(eighthGlyphs) {
		return 0, false
	}
	return eighthGlyphs[n-1], true
}

// EighthValue returns n such that the glyph r represents n/8.
// If r is not one of the eighth glyphs, 0 is returned.
func EighthValue(r rune) int {
	for i, g := range eighthGlyphs {
		if g == r {
			return i + 1
		}
	}
	return 0
}

func eighths(x float64) string {
	n := int64(math.Round(x / Inch * 8))
	whole, frac := n/8, n%8
	if frac < 0 {
		whole--
		frac += 8
	}

	var b strings.Builder
	b.WriteString(strconv.FormatInt(whole, 10))
	if g, ok := EighthGlyph(int(frac)); ok {
		b.WriteRune(g)
	}
	return b.String()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
