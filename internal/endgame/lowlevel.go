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

package endgame

import "github.com/mkopp/zorro/internal/types"

// solveSmall is the lean n<=4 path (spec.md §4.6's two/three/four-empty
// routines): no hash probe, no parity split, just the handful of squares
// still empty. The four/three/two-empty cases in end.c hand-unroll this
// recursion into three separate bitboard functions for speed; here one
// function recurses on a shrinking slice, since board.Board's make/unmake
// is already O(1) and the win is the same — skipping the hash table and
// the full Empties/fastest-first machinery for the last few plies, not
// the specific unrolling.
func solveSmall(c *ctx, squares []types.Square, alpha, beta int) (int, types.Move) {
	if len(squares) == 0 {
		return finalScore(c.b), types.MoveNone
	}

	mover := c.b.SideToMove()
	best := negInfinity
	bestMove := types.MoveNone
	legalFound := false

	for i, sq := range squares {
		if c.b.CountFlips(sq, mover) == 0 {
			continue
		}
		legalFound = true

		rest := make([]types.Square, 0, len(squares)-1)
		rest = append(rest, squares[:i]...)
		rest = append(rest, squares[i+1:]...)

		c.empties.Remove(sq)
		_ = c.b.DoMove(sq)
		score, _ := solveSmall(c, rest, -beta, -alpha)
		score = -score
		c.b.UndoMove()
		c.empties.Restore(sq)

		if score > best {
			best = score
			bestMove = types.Move(sq)
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	if !legalFound {
		if !c.b.HasLegalMove(mover.Opponent()) {
			return finalScore(c.b), types.MoveNone
		}
		c.b.Pass()
		score, _ := solveSmall(c, squares, -beta, -alpha)
		c.b.UndoMove()
		return -score, types.MovePass
	}

	return best, bestMove
}
