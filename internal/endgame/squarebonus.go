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

// moveBonus is the per-square fastest-first ordering bonus (spec.md §4.6:
// "a precomputed per-square bonus table"), one table selected per the
// square's quadrant parity. Transcribed directly from end.c's
// move_bonus[2][128] static table — a flat 10x10 array indexed exactly the
// way types.Square already is (10*row+col), so no re-indexing was needed;
// index 0 is the no-parity table, index 1 the odd-parity table.
var moveBonus = [2][types.ArraySize]int{
	{ // parity bit clear
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 24, 1, 0, 25, 25, 0, 1, 24, 0,
		0, 1, 0, 0, 0, 0, 0, 0, 1, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 25, 0, 0, 0, 0, 0, 0, 25, 0,
		0, 25, 0, 0, 0, 0, 0, 0, 25, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 1, 0, 0, 0, 0, 0, 0, 1, 0,
		0, 24, 1, 0, 25, 25, 0, 1, 24, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // parity bit set
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 128, 86, 122, 125, 125, 122, 86, 128, 0,
		0, 86, 117, 128, 128, 128, 128, 117, 86, 0,
		0, 122, 128, 128, 128, 128, 128, 128, 122, 0,
		0, 125, 128, 128, 128, 128, 128, 128, 125, 0,
		0, 125, 128, 128, 128, 128, 128, 128, 125, 0,
		0, 122, 128, 128, 128, 128, 128, 128, 122, 0,
		0, 86, 117, 128, 128, 128, 128, 117, 86, 0,
		0, 128, 86, 122, 125, 125, 122, 86, 128, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
}

// hashMoveBonus is added on top of moveBonus when a candidate matches the
// hash table's recommended move, matching end.c's "+= 128" literal.
const hashMoveBonus = 128

// mobilityWeight scales how strongly a candidate's resulting opponent
// mobility subtracts from its goodness score. end.c's solve_parity_hash_high
// (where move_bonus actually lives) weighs this with weighted_mobility
// (bitbmob.c), which returns values on the order of moves*128 specifically
// to dominate the 0-128-range move_bonus table; ff_mob_factor/MOB_FACTOR is
// a different constant used only by end_tree_search, not this path. This
// low weight instead lets move_bonus dominate - move ordering priority is
// inverted relative to the original, though alpha-beta correctness doesn't
// depend on move order.
const mobilityWeight = 3

func squareBonus(sq types.Square, oddParity bool) int {
	if oddParity {
		return moveBonus[1][sq]
	}
	return moveBonus[0][sq]
}
