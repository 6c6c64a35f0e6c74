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

// Package parse converts human-written paper sizes into [paper.Size] values.
//
// Two kinds of input are understood.  Names from the catalog in package
// [seehuhn.de/go/paper/sizes], like "A4", "letter" or "jis-b5", are looked
// up in a table.  Matching ignores case, and underscores and hyphens are
// treated like spaces.  All other input is read as a width and a height,
// separated by the letter "x", each optionally followed by a unit:
//
//	210x297mm
//	8.5 x 11"
//	8½in x 792pt
//
// Recognised units are mm, cm, m, pt, in (also written inch or ") and
// their plural forms.  If the height has no unit, points are used.  If
// the width has no unit, the unit of the height is used.  Numbers may end
// in one of the glyphs ⅛, ¼, ⅜, ½, ⅝, ¾ or ⅞.
//
// Both kinds of input may be followed by "landscape" or "portrait" to
// select the orientation of the result.
package parse
