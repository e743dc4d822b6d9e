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

package board

import "github.com/mkopp/zorro/internal/types"

// NewBoardFromCells builds a Board directly from a row-major 64-cell grid
// (index 0 = a1, ... index 63 = h8, matching Square.ToBitSquare's
// numbering) and an explicit side to move, bypassing the standard opening
// setup. Intended for constructing hand-crafted positions in tests and
// for endgame/stability fixtures that need exact control over the board,
// mirroring the role the teacher's NewPositionFen plays for chess test
// setups.
func NewBoardFromCells(cells [64]types.Color, sideToMove types.Color) *Board {
	b := &Board{sideToMove: sideToMove}
	for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
		if sq.IsPlayable() {
			b.cells[sq] = types.Empty
		} else {
			b.cells[sq] = types.Wall
		}
	}

	disks := 0
	for r := 1; r <= 8; r++ {
		for c := 1; c <= 8; c++ {
			color := cells[8*(r-1)+(c-1)]
			if color != types.Black && color != types.White {
				continue
			}
			sq := types.SquareOf(r, c)
			b.cells[sq] = color
			b.h1 ^= zobristPieceH1[color][sq]
			b.h2 ^= zobristPieceH2[color][sq]
			disks++
		}
	}
	b.disksPlayed = disks
	return b
}
