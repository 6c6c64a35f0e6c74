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
	"strconv"
)

// Error is returned when a string cannot be converted into a length or a
// paper size.
type Error struct {
	// Input is the complete string passed to the parser.
	Input string

	// Text is the part of the input which could not be understood.
	Text string

	// Err, if not nil, describes the problem.
	Err error
}

func (err *Error) Error() string {
	msg := "cannot parse " + strconv.Quote(err.Text)
	if err.Input != err.Text {
		msg += " in " + strconv.Quote(err.Input)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *Error) Unwrap() error {
	return err.Err
}

var (
	// ErrEmpty indicates that the input contains no text.
	ErrEmpty = errors.New("empty input")

	// ErrNoSeparator indicates that the input is neither a known paper
	// size name nor a width and height separated by "x".
	ErrNoSeparator = errors.New("unknown paper size")

	// ErrTooManyParts indicates that more than two dimensions were given.
	ErrTooManyParts = errors.New("more than two dimensions")

	// ErrNegative indicates a negative length.
	ErrNegative = errors.New("negative length")

	// ErrNotFinite indicates an infinite or NaN length.
	ErrNotFinite = errors.New("length is not finite")
)
