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

	"golang.org/x/exp/slices"

	"seehuhn.de/go/paper"
	"seehuhn.de/go/paper/sizes"
)

// Parser converts strings into paper sizes, using a fixed table of named
// sizes.  A Parser is safe for concurrent use.
type Parser struct {
	byName map[string]paper.Named
}

// NewParser returns a parser which recognises the given named sizes.
// Names are matched after applying [Normalize].  If two entries have the
// same normalized name, the later one is used.
func NewParser(entries []paper.Named) *Parser {
	byName := make(map[string]paper.Named, len(entries))
	for _, e := range entries {
		byName[Normalize(e.Name)] = e
	}
	return &Parser{byName: byName}
}

var defaultParser = NewParser(sizes.Entries())

// PaperSize converts a string into a paper size, using the catalog of
// package [seehuhn.de/go/paper/sizes].  See the package documentation for
// the accepted formats.
func PaperSize(text string) (paper.Size, error) {
	return defaultParser.PaperSize(text)
}

// Lookup returns the catalog size with the given name.
func Lookup(name string) (paper.Size, bool) {
	return defaultParser.Lookup(name)
}

// Identify returns the names of all catalog sizes which are within tol of
// s, in the same orientation.
func Identify(s paper.Size, tol float64) []string {
	return defaultParser.Identify(s, tol)
}

// PaperSize converts a string into a paper size.  The string is either
// one of the names known to p or a width and height separated by "x",
// in both cases optionally followed by "landscape" or "portrait".
func (p *Parser) PaperSize(text string) (paper.Size, error) {
	s := Normalize(text)

	var orient func(paper.Size) paper.Size
	if rest, ok := strings.CutSuffix(s, " landscape"); ok {
		orient = paper.Size.Landscape
		s = rest
	} else if rest, ok := strings.CutSuffix(s, " portrait"); ok {
		orient = paper.Size.Portrait
		s = rest
	}

	var size paper.Size
	if e, ok := p.byName[s]; ok {
		size = e.Size
	} else {
		var err error
		size, err = parsePair(s)
		if err != nil {
			if e, ok := err.(*Error); ok {
				e.Input = text
			}
			return paper.Size{}, err
		}
	}

	if orient != nil {
		size = orient(size)
	}
	return size, nil
}

// Lookup returns the size with the given name.
// No prefix or fuzzy matching is performed.
func (p *Parser) Lookup(name string) (paper.Size, bool) {
	e, ok := p.byName[Normalize(name)]
	return e.Size, ok
}

// Names returns the names known to p, in sorted order.
func (p *Parser) Names() []string {
	res := make([]string, 0, len(p.byName))
	for _, e := range p.byName {
		res = append(res, e.Name)
	}
	slices.Sort(res)
	return res
}

// Identify returns the names of all sizes known to p which are within tol
// of s.  The orientation must match; use s.Portrait() and s.Landscape()
// to search for both.  The result is sorted.
func (p *Parser) Identify(s paper.Size, tol float64) []string {
	var res []string
	for _, e := range p.byName {
		if e.Size.IsApproximately(s, tol) {
			res = append(res, e.Name)
		}
	}
	slices.Sort(res)
	return res
}
