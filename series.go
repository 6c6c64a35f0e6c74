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
	"sync"
)

// Series is a family of paper sizes following ISO 269, for example the A
// series.  Each member is obtained from the previous one by cutting the
// paper in half, parallel to the short edge.
//
// ISO 269 allows tolerances of at least 1mm, and this is normally used to
// make every size a whole number of millimetres.  A Series therefore keeps
// all sizes in whole millimetres and rounds down when halving.  This gives
// A4 as 210x297mm, even though exact halving of A0 (841x1189mm) would not.
//
// A Series is unbounded in both directions.  Members are computed on
// demand and cached.  Because of the rounding, very small sizes (high
// indices) are meaningless.  It is safe to use a Series from multiple
// goroutines.
type Series struct {
	ref      Size
	refIndex int

	mu sync.Mutex
	// up[k] holds member refIndex+k, down[k] holds member refIndex-1-k.
	up   []mmSize
	down []mmSize
}

// mmSize is a portrait paper size in whole millimetres.
type mmSize struct {
	w, h int
}

// NewSeries creates a new series.  The reference size ref is assigned the
// given index; usually this is the largest member with index 0.
// The orientation of ref is ignored.
func NewSeries(ref Size, index int) *Series {
	ref = ref.Portrait()
	first := mmSize{
		w: int(math.Round(ref.Width / MM)),
		h: int(math.Round(ref.Height / MM)),
	}
	return &Series{
		ref:      ref,
		refIndex: index,
		up:       []mmSize{first},
	}
}

// Reference returns the reference size and its index, as given to
// [NewSeries].  The size is in portrait orientation.
func (s *Series) Reference() (Size, int) {
	return s.ref, s.refIndex
}

// Size returns the member with index n, in portrait orientation.
// Larger indices give smaller sizes.
func (s *Series) Size(n int) Size {
	s.mu.Lock()
	m := s.get(n)
	s.mu.Unlock()

	return FromMM(float64(m.w), float64(m.h))
}

// get returns member n, extending the cache as needed.
// The caller must hold s.mu.
func (s *Series) get(n int) mmSize {
	if n >= s.refIndex {
		k := n - s.refIndex
		for len(s.up) <= k {
			last := s.up[len(s.up)-1]
			s.up = append(s.up, mmSize{w: last.h / 2, h: last.w})
		}
		return s.up[k]
	}

	k := s.refIndex - 1 - n
	for len(s.down) <= k {
		last := s.up[0]
		if len(s.down) > 0 {
			last = s.down[len(s.down)-1]
		}
		s.down = append(s.down, mmSize{w: last.h, h: last.w * 2})
	}
	return s.down[k]
}

// cached returns the range of indices which have been computed so far.
func (s *Series) cached() (lo, hi int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refIndex - len(s.down), s.refIndex + len(s.up) - 1
}

func (s *Series) String() string {
	return fmt.Sprintf("ISO 269 series, %s at index %d", s.ref.MMString(), s.refIndex)
}
