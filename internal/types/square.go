//
// zorro - an Othello/Reversi engine core in GO
//
// MIT License
//
// Copyright (c) 2021 zorro contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"fmt"
	"strings"
)

// Square is an index into the sentinel-padded 10x10 array board. Playable
// squares are 10*r+c for r,c in 1..8; all other indices in [0,100) are
// border sentinels.
type Square int8

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// SquareOf builds a Square from 1-based row and column, each in 1..8.
func SquareOf(row, col int) Square {
	return Square(10*row + col)
}

// Row returns the 1-based row of a playable square.
func (s Square) Row() int {
	return int(s) / 10
}

// Col returns the 1-based column of a playable square.
func (s Square) Col() int {
	return int(s) % 10
}

// IsPlayable reports whether s addresses one of the 64 inner cells rather
// than a border sentinel.
func (s Square) IsPlayable() bool {
	r, c := s.Row(), s.Col()
	return r >= 1 && r <= 8 && c >= 1 && c <= 8
}

// ToBitSquare converts the array-form index into the corresponding
// bitboard-form bit index (row-major, a1 = bit 0).
func (s Square) ToBitSquare() BitSquare {
	return BitSquare(8*(s.Row()-1) + (s.Col() - 1))
}

// String renders the square in algebraic notation, e.g. "d3", or "-" for
// NoSquare / non-playable indices.
func (s Square) String() string {
	if s == NoSquare || !s.IsPlayable() {
		return "-"
	}
	var sb strings.Builder
	sb.WriteByte(byte('a' + s.Col() - 1))
	sb.WriteByte(byte('0' + s.Row()))
	return sb.String()
}

// ParseSquare parses algebraic notation ("d3") back into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square notation: %q", s)
	}
	col := int(s[0]-'a') + 1
	row := int(s[1] - '0')
	if col < 1 || col > 8 || row < 1 || row > 8 {
		return NoSquare, fmt.Errorf("invalid square notation: %q", s)
	}
	return SquareOf(row, col), nil
}

// RayDirections are the 8 compass-ray offsets in array-form index space
// (10-wide stride with a sentinel border). The diagonal magnitudes (9, 11)
// follow spec.md §4.1's indexing convention literally; see
// BitRayDirections for the matching bitboard-form offsets (7, 9) that must
// stay in lockstep with these.
var RayDirections = [8]int{-11, -10, -9, -1, 1, 9, 10, 11}

// BitRayDirections are the 8 compass-ray bit-shift offsets in bitboard-form
// index space (row-major, no sentinel border, hence the straight-line
// magnitudes shrink from 10/1 to 8/1 and the diagonals from 11/9 to 9/7).
var BitRayDirections = [8]int{-9, -8, -7, -1, 1, 7, 8, 9}
