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

package parse

import (
	"strings"

	"github.com/xdg-go/stringprep"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// Normalize brings a paper size name or a dimension string into the form
// used for table lookups.  Letters are converted to lower case, full-width
// forms are replaced by their ASCII equivalents, underscores and hyphens
// are replaced by spaces, and runs of white space are collapsed into a
// single space.  Invisible characters like soft hyphens and zero-width
// spaces are removed.
//
// For example, both "JIS_B5" and "jis-b5" normalize to "jis b5".
func Normalize(name string) string {
	s := clean(name)
	s = strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// clean applies the normalization steps which do not change the meaning of
// a number.
func clean(s string) string {
	if prepped, err := prep.Prepare(s); err == nil {
		s = prepped
	}
	s = width.Fold.String(s)
	return cases.Lower(language.Und).String(s)
}

// prep removes the characters of RFC 3454 table B.1 and replaces non-ASCII
// space characters (table C.1.2) by ASCII spaces.  Unicode normalization is
// not used, since NFKC would decompose the fraction glyphs.
var prep = stringprep.Profile{
	Mappings: []stringprep.Mapping{
		stringprep.TableB1,
		nonASCIISpace,
	},
}

var nonASCIISpace = stringprep.Mapping{
	0x00A0: {' '},
	0x1680: {' '},
	0x2000: {' '},
	0x2001: {' '},
	0x2002: {' '},
	0x2003: {' '},
	0x2004: {' '},
	0x2005: {' '},
	0x2006: {' '},
	0x2007: {' '},
	0x2008: {' '},
	0x2009: {' '},
	0x200A: {' '},
	0x202F: {' '},
	0x205F: {' '},
	0x3000: {' '},
}
