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

import "math/bits"

// BitSquare is a bitboard-form square index, 0 <= k < 64, row-major with
// a1 = bit 0: bit k corresponds to row = k/8+1, col = k%8+1 (spec.md §3,
// Board / Bitboard form).
type BitSquare uint8

// Bit returns the single-bit mask for this bitboard square.
func (b BitSquare) Bit() uint64 {
	return uint64(1) << uint(b)
}

// Row returns the 1-based row.
func (b BitSquare) Row() int {
	return int(b)/8 + 1
}

// Col returns the 1-based column.
func (b BitSquare) Col() int {
	return int(b)%8 + 1
}

// ToSquare converts the bitboard-form index back into the sentinel array
// form index.
func (b BitSquare) ToSquare() Square {
	return SquareOf(b.Row(), b.Col())
}

// PopCount returns the number of set bits in a bitboard.
func PopCount(bb uint64) int {
	return bits.OnesCount64(bb)
}

// LowestSet returns the bitboard square of the least significant set bit,
// and ok=false if bb is empty.
func LowestSet(bb uint64) (BitSquare, bool) {
	if bb == 0 {
		return 0, false
	}
	return BitSquare(bits.TrailingZeros64(bb)), true
}
