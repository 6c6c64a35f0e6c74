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

// Length units, expressed in PDF points.
const (
	Point = 1.0
	Inch  = 72.0
	MM    = Inch / 25.4
	CM    = 10 * MM
	M     = 1000 * MM
)

// DefaultTolerance is the tolerance normally used with
// [Size.IsApproximately].
const DefaultTolerance = 0.1 * MM

// Convert converts a length from one unit to another.
// Both units must be given in points, for example Convert(1, Inch, MM)
// returns 25.4.
func Convert(x, from, to float64) float64 {
	return x * from / to
}
