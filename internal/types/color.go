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

import "fmt"

// Color represents a disc color, or the absence of one, for a single board
// cell: Black, White or Empty.
type Color int8

// Constants for each color. Empty is a valid Color value (a board cell can
// hold it) but is never a valid "side to move".
const (
	Black Color = 0
	White Color = 1
	Empty Color = 2

	// Wall marks a sentinel border cell in the array-form board. Ray scans
	// in the flip engine terminate naturally on Wall since it matches
	// neither Black, White nor Empty.
	Wall Color = 3
)

// Opponent returns the opposing disc color. Only valid for Black/White.
func (c Color) Opponent() Color {
	return c ^ 1
}

// IsValid reports whether c is Black or White (a legal side to move).
func (c Color) IsValid() bool {
	return c == Black || c == White
}

// String returns "Black", "White" or "Empty".
func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// Disc returns the single-character board glyph for the color: 'X', 'O' or '.'.
func (c Color) Disc() byte {
	switch c {
	case Black:
		return 'X'
	case White:
		return 'O'
	default:
		return '.'
	}
}
