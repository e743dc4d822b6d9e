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

package stability

import (
	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/types"
)

// MaxStabilityNodes bounds the complete stability search (spec.md §4.5:
// "bounded complete-stability search ≤10,000 nodes"), grounded on
// stable.c's MAX_STABILITY_NODES.
const MaxStabilityNodes = 10_000

// axisDirs are the 4 line axes through a square, each given as its two
// opposite ray directions (east/west, north/south, and the two
// diagonals). A square is stable along an axis if both rays are blocked
// before reaching an empty cell.
var axisDirs = [4][2]int{
	{1, -1},   // east / west
	{10, -10}, // south / north
	{11, -11}, // south-east / north-west
	{9, -9},   // south-west / north-east
}

// FullBoardStable returns the set of squares on b provably stable against
// any future sequence of legal moves, as a bitset indexed by
// types.Square.ToBitSquare(). It seeds the search with the exact
// edge-table result on the 4 border lines, then expands inward to a fixed
// point: a square becomes stable once, along every one of its 4 axes,
// either the whole line through it is filled (no empty cell in either
// direction up to the wall) or one of its two neighbours on that axis is
// the wall or an already-stable disc of the same color (spec.md §4.5's "full-board stability... dynamic
// programming", generalized from the edge DP to the interior the way
// stable.c's edge_zardoz_stable expands edge-stable bits inward).
func FullBoardStable(b *board.Board) uint64 {
	stable := [types.ArraySize]bool{}

	for which := 0; which < 4; which++ {
		row := [8]types.Color{}
		squares := edgeSquares(which)
		for i, sq := range squares {
			row[i] = b.Get(sq)
		}
		pattern := patternOf(row)
		mask := edgeStable[pattern]
		for i, sq := range squares {
			if mask&(1<<uint(i)) != 0 {
				stable[sq] = true
			}
		}
	}

	for pass := 0; pass < 64; pass++ {
		changed := false
		for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
			if !sq.IsPlayable() || stable[sq] {
				continue
			}
			color := b.Get(sq)
			if color != types.Black && color != types.White {
				continue
			}
			if axisFullyBlocked(b, sq, color, stable) {
				stable[sq] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	var bits uint64
	for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
		if sq.IsPlayable() && stable[sq] {
			bits |= sq.ToBitSquare().Bit()
		}
	}
	return bits
}

// axisFullyBlocked reports whether, on every one of sq's 4 axes, the line
// through sq is completely filled or a neighbour of sq on that axis is the
// wall or an already-stable same-color disc (spec.md §4.5: "either the axis
// is completely filled or an adjacent disc on that axis is already known
// stable" - the OR is between the two directions of one axis; the AND is
// across the 4 axes, matching stable.c's edge_zardoz_stable expand_ss =
// (lrf | ost<<1 | ost>>1) per axis, ANDed across axes).
func axisFullyBlocked(b *board.Board, sq types.Square, color types.Color, stable [types.ArraySize]bool) bool {
	for _, axis := range axisDirs {
		filled := rayBlocked(b, sq, axis[0], color, [types.ArraySize]bool{}) &&
			rayBlocked(b, sq, axis[1], color, [types.ArraySize]bool{})
		anchored := false
		for _, dir := range axis {
			next := sq + types.Square(dir)
			c := b.Get(next)
			anchored = anchored || c == types.Wall || (c == color && stable[next])
		}
		if !filled && !anchored {
			return false
		}
	}
	return true
}

// rayBlocked reports whether, scanning from sq in direction dir, the line
// never exposes a future flip on sq: either the wall is reached with no
// intervening empty cell, or an already-stable same-color disc is
// reached before any empty cell.
func rayBlocked(b *board.Board, sq types.Square, dir int, color types.Color, stable [types.ArraySize]bool) bool {
	cur := sq + types.Square(dir)
	for {
		c := b.Get(cur)
		if c == types.Wall {
			return true
		}
		if c == types.Empty {
			return false
		}
		if c == color && stable[cur] {
			return true
		}
		cur += types.Square(dir)
	}
}

// CompleteStabilityProbe attempts to prove sq is stable by exhaustively
// searching the remaining game tree for a sequence of legal moves that
// flips it, aborting (and reporting "not proven stable") if the search
// exceeds MaxStabilityNodes (spec.md §4.5). It mutates and restores b via
// DoMove/UndoMove/Pass, so the board is unchanged on return.
func CompleteStabilityProbe(b *board.Board, gen *movegen.Generator, sq types.Square) bool {
	color := b.Get(sq)
	if color != types.Black && color != types.White {
		return false
	}
	nodes := 0
	return probe(b, gen, sq, color, &nodes)
}

func probe(b *board.Board, gen *movegen.Generator, target types.Square, want types.Color, nodes *int) bool {
	*nodes++
	if *nodes > MaxStabilityNodes {
		return false
	}
	if b.Get(target) != want {
		return false
	}
	if b.EmptyCount() == 0 {
		return true
	}

	mover := b.SideToMove()
	moves := gen.GenerateLegalMoves(b, mover)
	if moves.Len() == 0 {
		if !gen.HasLegalMove(b, mover.Opponent()) {
			return true // game over, target's final color is fixed
		}
		b.Pass()
		ok := probe(b, gen, target, want, nodes)
		b.UndoMove()
		return ok
	}

	for i := 0; i < moves.Len(); i++ {
		sq := moves.At(i).Square()
		if err := b.DoMove(sq); err != nil {
			continue
		}
		ok := probe(b, gen, target, want, nodes)
		b.UndoMove()
		if !ok {
			return false
		}
		if *nodes > MaxStabilityNodes {
			return false
		}
	}
	return true
}
