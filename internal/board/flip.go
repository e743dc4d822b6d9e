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

// directionMask[sq] has one bit set per compass ray (bit i for
// types.RayDirections[i]) that stays on the board for at least one step
// from sq. The array-form sentinel border already stops ray scans cold (a
// Wall cell matches neither mover nor opponent), so the mask is not needed
// for correctness here; it exists so the flip engine can skip doomed rays
// without a scan, mirroring the teacher's precomputed-attack-table idiom
// (internal/attacks) instead of hand-writing 60 specialized routines per
// spec.md §4.2's Design Notes.
var directionMask [types.ArraySize]uint8

func init() {
	for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
		if !sq.IsPlayable() {
			continue
		}
		var mask uint8
		for i, d := range types.RayDirections {
			if cells := neighborOnBoard(sq, d); cells {
				mask |= 1 << uint(i)
			}
		}
		directionMask[sq] = mask
	}
}

// neighborOnBoard reports whether sq+d lands on one of the 64 playable
// cells (not on the sentinel border, and not outside the 10x10 array).
func neighborOnBoard(sq types.Square, d int) bool {
	next := int(sq) + d
	return next >= 0 && next < types.ArraySize && types.Square(next).IsPlayable()
}

// countFlipsArray scans all 8 rays from sq for the given mover color and
// returns the flipped squares in ray-then-distance order, without touching
// the board. A nil/empty result means the move is illegal.
func countFlipsArray(cells *[types.ArraySize]types.Color, sq types.Square, mover types.Color) []types.Square {
	if cells[sq] != types.Empty {
		return nil
	}
	opp := mover.Opponent()
	var flips []types.Square
	for i, d := range types.RayDirections {
		if directionMask[sq]&(1<<uint(i)) == 0 {
			continue
		}
		var run []types.Square
		cur := int(sq) + d
		for cur >= 0 && cur < types.ArraySize && cells[cur] == opp {
			run = append(run, types.Square(cur))
			cur += d
		}
		if len(run) == 0 {
			continue
		}
		if cur >= 0 && cur < types.ArraySize && cells[cur] == mover {
			flips = append(flips, run...)
		}
	}
	return flips
}

// CountFlips returns how many opponent discs placing mover's disc on sq
// would flip, with no side effects. Used for mobility and move ordering
// (spec.md §4.2, "test-and-count").
func (b *Board) CountFlips(sq types.Square, mover types.Color) int {
	return len(countFlipsArray(&b.cells, sq, mover))
}

// doFlips plays mover's disc on sq, flipping every disc the move captures,
// and returns the flipped squares. It has no side effect and returns nil if
// the move is illegal (spec.md §4.2, "do-and-count").
func (b *Board) doFlips(sq types.Square, mover types.Color) []types.Square {
	flips := countFlipsArray(&b.cells, sq, mover)
	if len(flips) == 0 {
		return nil
	}
	b.cells[sq] = mover
	for _, f := range flips {
		b.cells[f] = mover
	}
	return flips
}

// undoFlips restores sq to empty and every square in flips back to
// opponent's color (spec.md §4.2, "UndoFlips"). Order of flips is
// irrelevant, matching the spec's contract.
func (b *Board) undoFlips(sq types.Square, flips []types.Square, opponent types.Color) {
	b.cells[sq] = types.Empty
	for _, f := range flips {
		b.cells[f] = opponent
	}
}
