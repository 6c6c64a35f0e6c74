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
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/paper"
)

// Dimension converts a length like "1.5mm", "2½in" or "72" into PDF points.
// If no unit is given, points are used.  A unit without a number, like
// "mm", denotes one unit.
func Dimension(text string) (float64, error) {
	s := strings.TrimSpace(clean(text))
	if s == "" {
		return 0, &Error{Input: text, Text: text, Err: ErrEmpty}
	}

	num, unit, ok := extractUnit(s)
	if !ok {
		unit = paper.Point
	}
	x, err := parseNumber(num)
	if err != nil {
		return 0, &Error{Input: text, Text: s, Err: err}
	}
	return x * unit, nil
}

// parsePair reads a normalized string of the form "<width> x <height>".
func parsePair(s string) (paper.Size, error) {
	if s == "" {
		return paper.Size{}, &Error{Text: s, Err: ErrEmpty}
	}

	parts := strings.Split(s, "x")
	switch {
	case len(parts) < 2:
		return paper.Size{}, &Error{Text: s, Err: ErrNoSeparator}
	case len(parts) > 2:
		return paper.Size{}, &Error{Text: s, Err: ErrTooManyParts}
	}

	wNum, wUnit, wOK := extractUnit(parts[0])
	hNum, hUnit, hOK := extractUnit(parts[1])
	if !hOK {
		hUnit = paper.Point
	}
	if !wOK {
		// A width without unit uses the unit of the height, so that
		// "210 x 297mm" works as expected.
		wUnit = hUnit
	}

	w, err := parseNumber(wNum)
	if err != nil {
		return paper.Size{}, &Error{Text: strings.TrimSpace(parts[0]), Err: err}
	}
	h, err := parseNumber(hNum)
	if err != nil {
		return paper.Size{}, &Error{Text: strings.TrimSpace(parts[1]), Err: err}
	}

	return paper.Size{Width: w * wUnit, Height: h * hUnit}, nil
}

// unitSuffixes lists the recognised units.  Longer suffixes come first, so
// that for example "mm" is not mistaken for "m".
var unitSuffixes = []struct {
	suffix string
	size   float64
}{
	{"inches", paper.Inch},
	{"inch", paper.Inch},
	{"mms", paper.MM},
	{"cms", paper.CM},
	{"pts", paper.Point},
	{"ins", paper.Inch},
	{"mm", paper.MM},
	{"cm", paper.CM},
	{"pt", paper.Point},
	{"in", paper.Inch},
	{"m", paper.M},
	{`"`, paper.Inch},
}

// extractUnit splits a trailing unit off a lower case string.  If no unit
// is found, ok is false and num is the trimmed input.
func extractUnit(s string) (num string, unit float64, ok bool) {
	s = strings.TrimSpace(s)
	for _, u := range unitSuffixes {
		if rest, found := strings.CutSuffix(s, u.suffix); found {
			return strings.TrimSpace(rest), u.size, true
		}
	}
	return s, 0, false
}

// parseNumber reads a non-negative decimal number which may end in one of
// the fraction glyphs ⅛, ¼, ..., ⅞.  The empty string represents 1.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}

	var x float64
	r, size := utf8.DecodeLastRuneInString(s)
	if n := paper.EighthValue(r); n > 0 {
		x = float64(n) / 8
		if whole := strings.TrimSpace(s[:len(s)-size]); whole != "" {
			y, err := parseFloat(whole)
			if err != nil {
				return 0, err
			}
			x += y
		}
	} else {
		var err error
		x, err = parseFloat(s)
		if err != nil {
			return 0, err
		}
	}

	switch {
	case math.IsInf(x, 0) || math.IsNaN(x):
		return 0, ErrNotFinite
	case x < 0:
		return 0, ErrNegative
	}
	return x, nil
}

func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	return x, nil
}
