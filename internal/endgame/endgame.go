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

// Package endgame implements the exact/WLD/selective endgame solver (C6):
// the last few dozen plies of a game, solved to a disc-difference score
// rather than an evaluator estimate. Scores in this package are raw
// disc-difference units in [-64, +64] (spec.md §4.6's "Komi... solver
// still works in [-64, +64] disc-difference units"), not the centi-disc
// types.Value scale the midgame search uses. Solve returns the raw unit
// as well; a caller that needs a types.Value converts it itself (for
// example with types.DiscDiffToValue).
//
// Grounded on original_source/project/jni/zebra/end.c and probcut.c.
package endgame

import (
	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/stability"
	"github.com/mkopp/zorro/internal/transpositiontable"
	"github.com/mkopp/zorro/internal/types"
)

// Empty-count thresholds selecting the solver's specialization level
// (spec.md §4.6's table).
const (
	lowLevelDepth     = 8  // LOW: above this, parity+hash and parity+hash+fastest-first kick in
	fastestFirstDepth = 12 // FF_DEPTH: above this, weighted-mobility ordering kicks in

	// PVExpansion bounds how shallow an endgame a solve will re-walk at
	// zero selectivity to extract a provably optimal PV (spec.md §4.6).
	PVExpansion = 16
)

const infinity = 1 << 20

// negInfinity mirrors the teacher's own pattern of a sentinel "no legal
// move found yet" value distinct from any real disc-difference score.
const negInfinity = -infinity

// ctx carries everything one Solve call threads through its recursion:
// the board being searched, the move generator and empties list shared by
// every node, the transposition table (nil disables hashing), and node
// accounting.
type ctx struct {
	b           *board.Board
	gen         *movegen.Generator
	tt          *transpositiontable.TtTable
	empties     *movegen.Empties
	nodes       uint64
	selectivity int
}

// Solve returns the exact (selectivity 0) or selective score, in raw
// disc-difference units, for the side to move on b under window [alpha,
// beta], plus the move that achieves it. komi shifts the window before
// solving and the result back afterward (spec.md §4.6 "Komi"); pass 0 for
// an unbiased game. selectivity indexes Ladder (1..9); 0 disables endgame
// MPC and performs an exact solve. b is restored to its original state on
// return; tt may be nil to disable hashing entirely (used by the n<=4
// lean path regardless).
func Solve(b *board.Board, gen *movegen.Generator, tt *transpositiontable.TtTable, alpha, beta, komi, selectivity int) (int, types.Move) {
	c := &ctx{
		b:           b,
		gen:         gen,
		tt:          tt,
		empties:     movegen.NewEmpties(func(sq types.Square) bool { return b.Get(sq) == types.Empty }),
		selectivity: selectivity,
	}

	a, be := alpha-komi, beta-komi
	score, move := negamax(c, a, be)
	return score + komi, move
}

// finalScore scores a position with no more legal moves for either side,
// from the perspective of the side to move, applying the standard
// wipeout bonus: any empty squares left on the board when the game ends
// early go to whichever color is ahead (spec.md §8 "including bonuses
// (wipeouts)"), grounded on end.c's `disc_diff > 0 ? disc_diff + empties
// : ...` pattern.
func finalScore(b *board.Board) int {
	black := b.PopCount(types.Black)
	white := b.PopCount(types.White)
	diff := black - white
	empties := b.EmptyCount()
	switch {
	case diff > 0:
		diff += empties
	case diff < 0:
		diff -= empties
	}
	if b.SideToMove() == types.White {
		diff = -diff
	}
	return diff
}

// stabilityCutoff reports whether the opponent's stable-disc count alone
// already proves a fail-low (or narrows beta), per spec.md §4.5 "Stability
// cutoff in search". It mutates alpha/beta in place through the returned
// values and reports whether a hard cutoff (return alpha immediately)
// applies.
func stabilityCutoff(b *board.Board, alpha, beta int) (newAlpha, newBeta int, cutoff bool) {
	opp := b.SideToMove().Opponent()
	oppStable := stability.CountEdgeStable(b.Get, opp)
	bound := 64 - 2*oppStable
	if bound <= alpha {
		return alpha, beta, true
	}
	full := stability.FullBoardStable(b)
	oppFullStable := weightedPopCount(full, b, opp)
	bound = 64 - 2*oppFullStable
	if bound < beta {
		beta = bound + 1
	}
	if bound <= alpha {
		return alpha, beta, true
	}
	return alpha, beta, false
}

func weightedPopCount(bits uint64, b *board.Board, color types.Color) int {
	count := 0
	for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
		if !sq.IsPlayable() {
			continue
		}
		if bits&sq.ToBitSquare().Bit() != 0 && b.Get(sq) == color {
			count++
		}
	}
	return count
}
