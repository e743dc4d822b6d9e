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

import (
	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/transpositiontable"
	"github.com/mkopp/zorro/internal/types"
)

// ExpandPV walks the hash table along the principal variation starting at
// b's current position, playing each stored best move until the hash has
// nothing more to say, then restores b to its original state (spec.md
// §4.6 "PV extraction... call hash_expand_pv"). For shallow endgames
// (b.EmptyCount() <= PVExpansion) each position along the way is
// re-solved at zero selectivity so the returned line is provably optimal
// rather than merely whatever the hash happened to record.
func ExpandPV(b *board.Board, gen *movegen.Generator, tt *transpositiontable.TtTable, alpha, beta, komi int) []types.Move {
	var pv []types.Move
	reSolve := b.EmptyCount() <= PVExpansion
	played := 0
	a, be := alpha, beta

	defer func() {
		for i := 0; i < played; i++ {
			b.UndoMove()
		}
	}()

	for {
		if tt == nil {
			break
		}
		e := tt.Probe(b.Key())
		if e == nil || e.Kind() != types.Endgame {
			break
		}
		move := e.Move()
		if move == types.MoveNone || move.IsPass() {
			break
		}
		sq := move.Square()
		if !gen.ValidMove(b, sq, b.SideToMove()) {
			break
		}

		if reSolve {
			_, exactMove := Solve(b, gen, tt, a, be, komi, 0)
			if exactMove != types.MoveNone && !exactMove.IsPass() {
				move = exactMove
				sq = exactMove.Square()
			}
		}

		if err := b.DoMove(sq); err != nil {
			break
		}
		played++
		pv = append(pv, move)
		a, be = -be, -a
	}

	return pv
}
