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

// Package types contains the value types shared by every other package in
// this engine: squares (array form and bitboard form), colors, moves,
// scores and their bound/kind tags. Many of these would be ideal enum
// candidates but GO does not provide enums.
package types

// Board geometry constants.
const (
	// BoardSize is the number of playable squares on an Othello board.
	BoardSize = 64

	// ArraySize is the size of the sentinel-padded 10x10 array form.
	ArraySize = 100

	// MaxEmpties is the maximum number of empty squares at game start
	// (the four center squares are occupied from the outset).
	MaxEmpties = 60

	// MaxDepth is the maximum supported search depth.
	MaxDepth = 64

	// MaxMoves is a capacity hint for move lists: Othello positions rarely
	// offer more than the mid-20s of legal moves even in contrived
	// positions, so slices are pre-sized here and grow past it if needed.
	MaxMoves = 32

	// KB = 1,024 bytes.
	KB uint64 = 1024
	// MB = KB * KB.
	MB uint64 = KB * KB
	// GB = KB * MB.
	GB uint64 = KB * MB
)
