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

import (
	"fmt"

	"github.com/mkopp/zorro/internal/types"
)

// ReplayMoves builds a Board from a sequence of moves encoded as bytes in
// square notation (each byte = 10*row+col, row/col in 1..8), replaying them
// from the standard starting position. A pass is encoded implicitly: if the
// side to move has no legal move before a given byte is consumed, the
// replay inserts a pass and retries the same byte for the other side.
//
// It returns an error the moment a provided byte is not a legal move for
// the side to move (spec.md §7, InvalidMoveInSequence).
func ReplayMoves(raw []byte) (*Board, error) {
	b := NewBoard()
	for i, by := range raw {
		sq := types.Square(by)
		if !sq.IsPlayable() {
			return nil, fmt.Errorf("replay move %d: byte %d is not a valid square", i, by)
		}
		if !b.HasLegalMove(b.sideToMove) {
			b.Pass()
		}
		if !b.HasLegalMove(b.sideToMove) {
			return nil, fmt.Errorf("replay move %d: both sides have no legal move", i)
		}
		if b.CountFlips(sq, b.sideToMove) == 0 {
			return nil, fmt.Errorf("replay move %d: %s is not legal for %s", i, sq.String(), b.sideToMove.String())
		}
		if err := b.DoMove(sq); err != nil {
			return nil, fmt.Errorf("replay move %d: %w", i, err)
		}
	}
	return b, nil
}
