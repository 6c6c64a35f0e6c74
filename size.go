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
	"errors"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Size is the size of a sheet of paper, in PDF points.
//
// Sizes are values: none of the methods modify the receiver.
type Size struct {
	Width, Height float64
}

// FromMM returns the size with the given dimensions in millimetres.
func FromMM(width, height float64) Size {
	return Size{Width: width * MM, Height: height * MM}
}

// FromInch returns the size with the given dimensions in inches.
func FromInch(width, height float64) Size {
	return Size{Width: width * Inch, Height: height * Inch}
}

// FromRatio constructs a size from one dimension and the ratio of height
// to width.  Exactly one of width and height must be non-zero; the zero
// argument marks the dimension to compute.
//
// Since the ratio is height over width, a ratio greater than one gives a
// portrait size.  See [FourThirds], [ISORatio] and friends for common
// ratios.
func FromRatio(width, height, ratio float64) (Size, error) {
	if !isLength(width) || !isLength(height) || !(ratio > 0) || math.IsInf(ratio, 0) {
		return Size{}, ErrInvalidArgument
	}
	switch {
	case width != 0 && height == 0:
		return Size{Width: width, Height: width * ratio}, nil
	case width == 0 && height != 0:
		return Size{Width: height / ratio, Height: height}, nil
	default:
		return Size{}, ErrInvalidArgument
	}
}

// FromRect returns the size of a rectangle, for example of a PDF media box.
func FromRect(r rect.Rect) Size {
	return Size{
		Width:  math.Abs(r.URx - r.LLx),
		Height: math.Abs(r.URy - r.LLy),
	}
}

// Rect returns a rectangle of this size, with the lower left corner
// at the origin.
func (s Size) Rect() rect.Rect {
	return rect.Rect{URx: s.Width, URy: s.Height}
}

// Area returns the area of the paper in square points.
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// Ratio returns the ratio of the long side to the short side.
// The result does not depend on the orientation and is at least 1.
func (s Size) Ratio() float64 {
	if s.Width > s.Height {
		return s.Width / s.Height
	}
	return s.Height / s.Width
}

// IsLandscape reports whether the paper is wider than it is high.
// Square paper is neither landscape nor portrait.
func (s Size) IsLandscape() bool {
	return s.Width > s.Height
}

// IsPortrait reports whether the paper is higher than it is wide.
// Square paper is neither landscape nor portrait.
func (s Size) IsPortrait() bool {
	return s.Width < s.Height
}

// IsSquare reports whether width and height are equal.
func (s Size) IsSquare() bool {
	return s.Width == s.Height
}

// IsApproximately reports whether both dimensions differ from the
// corresponding dimensions of other by at most tol.
// Use [DefaultTolerance] if there is no better choice.
func (s Size) IsApproximately(other Size, tol float64) bool {
	return math.Abs(s.Width-other.Width) <= tol &&
		math.Abs(s.Height-other.Height) <= tol
}

// Landscape returns the size in landscape orientation.
// If the paper is already landscape or square, s is returned.
func (s Size) Landscape() Size {
	if s.Width >= s.Height {
		return s
	}
	return s.Flip()
}

// Portrait returns the size in portrait orientation.
// If the paper is already portrait or square, s is returned.
func (s Size) Portrait() Size {
	if s.Width <= s.Height {
		return s
	}
	return s.Flip()
}

// Flip swaps width and height.
func (s Size) Flip() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Half returns the size of the two pieces obtained by cutting the paper in
// half, parallel to the short edge.  The result has the same orientation
// as s: halving a portrait sheet gives a portrait sheet, and halving a
// landscape sheet gives a landscape sheet.  Square paper is treated as
// portrait.
func (s Size) Half() Size {
	short, long := s.Width, s.Height
	if short > long {
		short, long = long, short
	}

	// The two candidate sides are short and long/2.
	// If they are equal, the result is square and both orders agree.
	newLong, newShort := short, long/2
	if newShort > newLong {
		newLong, newShort = newShort, newLong
	}

	if s.Width > s.Height {
		return Size{Width: newLong, Height: newShort}
	}
	return Size{Width: newShort, Height: newLong}
}

// Scale multiplies both dimensions by f.
func (s Size) Scale(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// SmallSquare returns a square with the side length of the shorter side.
// If the paper is already square, s is returned.
func (s Size) SmallSquare() Size {
	switch {
	case s.Height < s.Width:
		return Size{Width: s.Height, Height: s.Height}
	case s.Height > s.Width:
		return Size{Width: s.Width, Height: s.Width}
	default:
		return s
	}
}

// LargeSquare returns a square with the side length of the longer side.
// If the paper is already square, s is returned.
func (s Size) LargeSquare() Size {
	switch {
	case s.Height > s.Width:
		return Size{Width: s.Height, Height: s.Height}
	case s.Height < s.Width:
		return Size{Width: s.Width, Height: s.Width}
	default:
		return s
	}
}

// RoundToMM rounds both dimensions to the nearest whole millimetre.
func (s Size) RoundToMM() Size {
	return FromMM(math.Round(s.Width/MM), math.Round(s.Height/MM))
}

// AddBleed grows the paper by the given amount on each of the four edges.
//
// The usual bleed is 3mm internationally and 1/8 inch in the US.
// Large images and die cuts need more.
func (s Size) AddBleed(amount float64) Size {
	if amount == 0 {
		return s
	}
	return Size{Width: s.Width + 2*amount, Height: s.Height + 2*amount}
}

func isLength(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0)
}

// ErrInvalidArgument is returned by [FromRatio] if not exactly one of width
// and height is given, or if one of the arguments is out of range.
var ErrInvalidArgument = errors.New("invalid paper size arguments")
