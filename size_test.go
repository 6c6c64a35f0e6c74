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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
)

func TestOrientation(t *testing.T) {
	type testCase struct {
		in                  Size
		landscape, portrait Size
		isL, isP, isSquare  bool
	}
	cases := []testCase{
		{Size{100, 200}, Size{200, 100}, Size{100, 200}, false, true, false},
		{Size{200, 100}, Size{200, 100}, Size{100, 200}, true, false, false},
		{Size{200, 200}, Size{200, 200}, Size{200, 200}, false, false, true},
	}
	for _, c := range cases {
		t.Run(c.in.PointString(), func(t *testing.T) {
			if got := c.in.Landscape(); got != c.landscape {
				t.Errorf("Landscape() = %v, want %v", got, c.landscape)
			}
			if got := c.in.Portrait(); got != c.portrait {
				t.Errorf("Portrait() = %v, want %v", got, c.portrait)
			}
			if c.in.IsLandscape() != c.isL {
				t.Errorf("IsLandscape() = %t", !c.isL)
			}
			if c.in.IsPortrait() != c.isP {
				t.Errorf("IsPortrait() = %t", !c.isP)
			}
			if c.in.IsSquare() != c.isSquare {
				t.Errorf("IsSquare() = %t", !c.isSquare)
			}
		})
	}
}

func TestOrientationProperties(t *testing.T) {
	sizes := []Size{
		{100, 200}, {200, 100}, {200, 200}, {120.3, 143.2},
		{0, 10}, {595.2755905511812, 841.8897637795276},
	}
	for _, s := range sizes {
		if l := s.Landscape(); l.Landscape() != l {
			t.Errorf("%v: Landscape is not idempotent", s)
		}
		if p := s.Portrait(); p.Portrait() != p {
			t.Errorf("%v: Portrait is not idempotent", s)
		}
		if s.Flip().Flip() != s {
			t.Errorf("%v: Flip is not an involution", s)
		}
		if s.IsSquare() {
			if s.IsLandscape() || s.IsPortrait() {
				t.Errorf("%v: square paper has an orientation", s)
			}
		} else if s.IsLandscape() == s.IsPortrait() {
			t.Errorf("%v: IsLandscape()=%t, IsPortrait()=%t",
				s, s.IsLandscape(), s.IsPortrait())
		}
		if s.Portrait().Ratio() != s.Landscape().Ratio() {
			t.Errorf("%v: ratio depends on orientation", s)
		}
	}
}

func TestFlip(t *testing.T) {
	if got := (Size{100, 200}).Flip(); got != (Size{200, 100}) {
		t.Errorf("got %v", got)
	}
	if got := (Size{200, 100}).Flip(); got != (Size{100, 200}) {
		t.Errorf("got %v", got)
	}
	p := Size{200, 200}
	if p.Flip() != p {
		t.Errorf("got %v", p.Flip())
	}
}

func TestHalf(t *testing.T) {
	cases := []struct {
		in, out Size
	}{
		{Size{100, 150}, Size{75, 100}},
		{Size{150, 100}, Size{100, 75}},
		{Size{100, 300}, Size{100, 150}},
		{Size{300, 100}, Size{150, 100}},
		{Size{100, 100}, Size{50, 100}},

		// exactly half: the pieces are square
		{Size{100, 200}, Size{100, 100}},
		{Size{200, 100}, Size{100, 100}},
	}
	for _, c := range cases {
		got := c.in.Half()
		if got != c.out {
			t.Errorf("%s.Half() = %s, want %s",
				c.in.PointString(), got.PointString(), c.out.PointString())
		}
	}
}

func TestSquares(t *testing.T) {
	cases := []struct {
		in, small, large Size
	}{
		{Size{100, 200}, Size{100, 100}, Size{200, 200}},
		{Size{200, 100}, Size{100, 100}, Size{200, 200}},
		{Size{200, 200}, Size{200, 200}, Size{200, 200}},
	}
	for _, c := range cases {
		if got := c.in.SmallSquare(); got != c.small {
			t.Errorf("%v.SmallSquare() = %v, want %v", c.in, got, c.small)
		}
		if got := c.in.LargeSquare(); got != c.large {
			t.Errorf("%v.LargeSquare() = %v, want %v", c.in, got, c.large)
		}
	}
}

func TestAddBleed(t *testing.T) {
	if got := (Size{100, 200}).AddBleed(10); got != (Size{120, 220}) {
		t.Errorf("got %v", got)
	}
	if got := (Size{200, 100}).AddBleed(10); got != (Size{220, 120}) {
		t.Errorf("got %v", got)
	}
	s := Size{1.5, 2.5}
	if got := s.AddBleed(0); got != s {
		t.Errorf("got %v", got)
	}
}

func TestRatioAndArea(t *testing.T) {
	if r := (Size{100, 150}).Ratio(); r != 1.5 {
		t.Errorf("ratio = %g", r)
	}
	if r := (Size{150, 100}).Ratio(); r != 1.5 {
		t.Errorf("ratio = %g", r)
	}
	if r := (Size{100, 100}).Ratio(); r != 1 {
		t.Errorf("ratio = %g", r)
	}
	if a := (Size{100, 150}).Area(); a != 15000 {
		t.Errorf("area = %g", a)
	}
	if a := (Size{150, 100}).Area(); a != 15000 {
		t.Errorf("area = %g", a)
	}
}

func TestFromUnits(t *testing.T) {
	mm := MM
	if got := FromMM(100, 150); got != (Size{100 * mm, 150 * mm}) {
		t.Errorf("FromMM: got %v", got)
	}
	if got := FromInch(8.5, 11); got != (Size{612, 792}) {
		t.Errorf("FromInch: got %v", got)
	}
	if got := Convert(1, Inch, MM); math.Abs(got-25.4) > 1e-12 {
		t.Errorf("Convert: got %g", got)
	}
	if got := Convert(3, M, CM); math.Abs(got-300) > 1e-9 {
		t.Errorf("Convert: got %g", got)
	}
}

func TestRoundToMM(t *testing.T) {
	got := Size{210.4 * MM, 296.9 * MM}.RoundToMM()
	if got != FromMM(210, 297) {
		t.Errorf("got %s", got.MMString())
	}
}

func TestIsApproximately(t *testing.T) {
	a4 := FromMM(210, 297)
	if !a4.IsApproximately(Size{595.3, 841.9}, DefaultTolerance) {
		t.Error("A4 not recognised")
	}
	if a4.IsApproximately(Size{595.3, 843}, DefaultTolerance) {
		t.Error("height difference not detected")
	}
	if a4.IsApproximately(a4.Flip(), DefaultTolerance) {
		t.Error("orientation ignored")
	}
}

func TestFromRatio(t *testing.T) {
	s, err := FromRatio(100, 0, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if s != (Size{100, 150}) {
		t.Errorf("got %v", s)
	}

	s, err = FromRatio(0, 150, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	if s != (Size{100, 150}) {
		t.Errorf("got %v", s)
	}

	s, err = FromRatio(210*MM, 0, ISORatio)
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsApproximately(FromMM(210, 297), 0.5*MM) {
		t.Errorf("got %s", s.MMString())
	}

	bad := [][3]float64{
		{0, 0, 1.5},
		{100, 150, 1.5},
		{-1, 0, 1.5},
		{100, 0, 0},
		{100, 0, math.Inf(1)},
		{math.NaN(), 0, 1},
	}
	for _, args := range bad {
		_, err := FromRatio(args[0], args[1], args[2])
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("FromRatio(%g, %g, %g): got error %v", args[0], args[1], args[2], err)
		}
	}
}

func TestRect(t *testing.T) {
	s := FromMM(210, 297)
	r := s.Rect()
	want := rect.Rect{URx: s.Width, URy: s.Height}
	if d := cmp.Diff(want, r); d != "" {
		t.Errorf("unexpected rectangle (-want +got):\n%s", d)
	}

	moved := rect.Rect{LLx: 10, LLy: 20, URx: 10 + s.Width, URy: 20 + s.Height}
	back := FromRect(moved)
	if d := cmp.Diff(s, back, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestScale(t *testing.T) {
	if got := (Size{10, 20}).Scale(1.5); got != (Size{15, 30}) {
		t.Errorf("got %v", got)
	}
}
