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

package search

import (
	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/config"
	"github.com/mkopp/zorro/internal/moveslice"
	. "github.com/mkopp/zorro/internal/types"
)

// eventCheckInterval is how often (in visited nodes) the recursive search
// polls stopFlag, mirroring spec.md §5's cooperative suspension points.
const eventCheckInterval = 100_000

// oneplyLossThreshold is the "immediate loss" bound used by protected
// one-ply's depth-2 safety check (spec.md §4.7): a candidate root move is
// considered unsafe if the opponent's best reply leaves us at or below
// this value.
const oneplyLossThreshold Value = -16 * CentiDiscFactor

// iterativeDeepening runs the outer loop described in spec.md §4.7: depth 1
// up to the requested maximum, root negascout (optionally inside an
// aspiration window) at each depth, stopping early on any search limit. If
// the mover has no legal move it returns MovePass (the opponent can still
// move) or MoveNone with the final disc difference (game over) without
// searching.
func (s *Search) iterativeDeepening(b *board.Board) *Result {
	mover := b.SideToMove()
	s.rootMoves = s.gen.GenerateLegalMoves(b, mover)

	if s.rootMoves.Len() == 0 {
		if !s.gen.HasLegalMove(b, mover.Opponent()) {
			return &Result{
				BestMove:  MoveNone,
				BestValue: DiscDiffToValue(b.PopCount(mover) - b.PopCount(mover.Opponent())),
			}
		}
		return &Result{BestMove: MovePass, BestValue: s.evaluate(b)}
	}

	maxDepth := MaxDepth
	if s.searchLimits.Depth > 0 {
		maxDepth = s.searchLimits.Depth
	}

	if maxDepth == 1 {
		return s.protectedOnePly(b)
	}

	var result *Result
	bestValue := ValueNA

	for iterationDepth := 1; iterationDepth <= maxDepth; iterationDepth++ {
		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth

		switch {
		case config.Settings.Search.UseAspiration && iterationDepth > 3:
			bestValue = s.aspirationSearch(b, iterationDepth, bestValue)
		default:
			bestValue = s.rootSearch(b, iterationDepth, ValueMin, ValueMax)
		}

		result = &Result{
			BestMove:    s.statistics.CurrentBestRootMove,
			BestValue:   bestValue,
			SearchDepth: iterationDepth,
			Pv:          *s.pv[0],
		}

		stop := s.stopConditions() || s.rootMoves.Len() == 1
		if !stop && s.onIterationEnd != nil {
			s.onIterationEnd(result)
		}
		if stop {
			break
		}
	}

	return result
}

// aspirationSearch runs rootSearch inside a window centered on prevValue,
// widening through aspirationSteps on fail-high/low until a score lands
// strictly inside the window or the window reaches midgame-win bounds
// (spec.md §4.7, "re-search with the corresponding half-window extended to
// midgame-win bounds").
func (s *Search) aspirationSearch(b *board.Board, depth int, prevValue Value) Value {
	if prevValue == ValueNA {
		return s.rootSearch(b, depth, ValueMin, ValueMax)
	}
	for _, window := range aspirationSteps {
		alpha, beta := prevValue-window, prevValue+window
		if alpha < ValueMin {
			alpha = ValueMin
		}
		if beta > ValueMax {
			beta = ValueMax
		}
		val := s.rootSearch(b, depth, alpha, beta)
		if (val <= alpha || val >= beta) && window != ValueMax {
			s.statistics.AspirationResearches++
			continue
		}
		return val
	}
	return s.rootSearch(b, depth, ValueMin, ValueMax)
}

// rootSearch performs one negascout pass over the root moves, applies
// score perturbation to each candidate, records the best move/value into
// s.statistics, rebuilds s.pv[0] by chaining hash-best moves from the
// chosen reply, and returns the (unperturbed) negascout value.
func (s *Search) rootSearch(b *board.Board, depth int, alpha, beta Value) Value {
	hashMove := s.probeHashMove(b)
	ordered := s.orderMoves(b, s.rootMoves, depth, hashMove)

	origAlpha := alpha
	bestValue := ValueMin
	bestMove := MoveNone
	perturbedBest := ValueMin

	for i, m := range ordered {
		sq := m.Square()
		if err := b.DoMove(sq); err != nil {
			continue
		}
		val := s.negascoutChild(b, depth, 1, alpha, beta, i == 0)
		b.UndoMove()

		perturbed := val
		if s.perturbationAmp > 0 && !val.IsWinMagnitude() {
			perturbed = val + s.perturbation[sq]
		}

		if bestMove == MoveNone || perturbed > perturbedBest {
			if bestMove != MoveNone {
				s.statistics.BestMoveChange++
			}
			bestValue = val
			perturbedBest = perturbed
			bestMove = m
		}
		if val > alpha {
			alpha = val
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			if i == 0 {
				s.statistics.BetaCuts1st++
			}
			break
		}
	}

	s.storeTT(b, depth, bestMove, bestValue, origAlpha, beta)
	s.statistics.CurrentBestRootMove = bestMove
	s.statistics.CurrentBestRootMoveValue = bestValue
	s.pv[0] = s.buildPV(b, bestMove)
	return bestValue
}

// negascoutChild runs the negascout full/null-window pattern for one child
// already played on b: the first move searched at full window, every
// subsequent move at a null window first, re-searched at full window only
// if the null-window probe lands strictly inside (alpha, beta).
func (s *Search) negascoutChild(b *board.Board, depth, ply int, alpha, beta Value, first bool) Value {
	if first {
		return -s.search(b, depth-1, ply, -beta, -alpha)
	}
	val := -s.search(b, depth-1, ply, -alpha-1, -alpha)
	if val > alpha && val < beta {
		val = -s.search(b, depth-1, ply, -beta, -alpha)
	}
	return val
}

// search is the interior negascout recursion (spec.md §4.7 "Negascout").
func (s *Search) search(b *board.Board, depth, ply int, alpha, beta Value) Value {
	s.nodesVisited++
	if s.nodesVisited%eventCheckInterval == 0 && s.stopFlag.Load() {
		return alpha
	}

	if depth <= 0 {
		return s.evaluate(b)
	}

	mover := b.SideToMove()
	moves := s.gen.GenerateLegalMoves(b, mover)

	if moves.Len() == 0 {
		if !s.gen.HasLegalMove(b, mover.Opponent()) {
			return DiscDiffToValue(b.PopCount(mover) - b.PopCount(mover.Opponent()))
		}
		s.statistics.PassNodes++
		b.Pass()
		val := -s.search(b, depth, ply+1, -beta, -alpha)
		b.UndoMove()
		return val
	}

	if config.Settings.Search.UseMidgameMPC && depth <= config.Settings.Search.MaxCutDepth && depth <= MAX_CUT_DEPTH {
		if v, cut := s.midgameMPC(b, depth, ply, alpha, beta); cut {
			s.statistics.MidgameMPCCuts++
			return v
		}
	}

	hashMove := s.probeHashMove(b)
	ordered := s.orderMoves(b, moves, depth, hashMove)

	origAlpha := alpha
	bestValue := ValueMin
	bestMove := MoveNone

	for i, m := range ordered {
		if err := b.DoMove(m.Square()); err != nil {
			continue
		}
		val := s.negascoutChild(b, depth, ply+1, alpha, beta, i == 0)
		b.UndoMove()

		if val > bestValue {
			bestValue = val
			bestMove = m
		}
		if val > alpha {
			alpha = val
		}
		if alpha >= beta {
			s.statistics.BetaCuts++
			if i == 0 {
				s.statistics.BetaCuts1st++
			}
			break
		}
	}

	s.storeTT(b, depth, bestMove, bestValue, origAlpha, beta)
	return bestValue
}

// midgameMPC tries every registered shallow-cut pair for depth (spec.md
// §4.7 "Midgame MPC"): a shallow probe to d' inside a window shifted by
// (bias, sigma*k) that fails high/low relative to that shifted window
// prunes the whole subtree, returning the corresponding bound. k is
// config.Settings.Search.DefaultSelectivity, the same selectivity knob the
// endgame ladder (internal/endgame.Ladder) scales by.
func (s *Search) midgameMPC(b *board.Board, depth, ply int, alpha, beta Value) (Value, bool) {
	k := Value(config.Settings.Search.DefaultSelectivity)
	if k <= 0 {
		return 0, false
	}
	for _, pair := range mpcCutPairsFor(depth) {
		bias := Value(pair.bias)
		margin := Value(pair.sigma) * k
		shiftedAlpha, shiftedBeta := alpha+bias-margin, beta+bias+margin

		probe := s.search(b, pair.shallow, ply, shiftedAlpha, shiftedBeta)
		switch {
		case probe >= shiftedBeta:
			return beta, true
		case probe <= shiftedAlpha:
			return alpha, true
		}
	}
	return 0, false
}

// orderMoves implements spec.md §4.7's move ordering: the stored hash move
// first (if still legal among moves), then every remaining move scored by
// a shallow search (depth 1 below DEPTH_TWO, otherwise depth 2) and sorted
// descending by negated child value.
func (s *Search) orderMoves(b *board.Board, moves *moveslice.MoveSlice, depth int, hashMove Move) []Move {
	shallow := 2
	if depth < DEPTH_TWO {
		shallow = 1
	}

	scored := make(moveslice.ScoredMoveSlice, 0, moves.Len())
	hasHashMove := hashMove != MoveNone && moves.Contains(hashMove)

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if hasHashMove && m == hashMove {
			continue
		}
		if err := b.DoMove(m.Square()); err != nil {
			continue
		}
		var score Value
		if shallow <= 1 {
			score = -s.evaluate(b)
		} else {
			score = -s.search(b, shallow-1, 0, ValueMin, ValueMax)
		}
		b.UndoMove()
		scored = append(scored, moveslice.ScoredMove{Move: m, Score: score})
	}
	scored.Sort()

	ordered := make([]Move, 0, moves.Len())
	if hasHashMove {
		ordered = append(ordered, hashMove)
	}
	ordered = append(ordered, scored.Moves()...)
	return ordered
}

// probeHashMove returns the transposition table's stored move for b's
// current position, or MoveNone if there is no table or no entry.
func (s *Search) probeHashMove(b *board.Board) Move {
	if s.tt == nil {
		return MoveNone
	}
	e := s.tt.Probe(b.Key())
	if e == nil {
		s.statistics.NoTTMove++
		return MoveNone
	}
	s.statistics.TTHit++
	if e.Move() != MoveNone {
		s.statistics.TTMoveUsed++
	}
	return e.Move()
}

// storeTT records depth/move/value under b's current position, tagging
// value's bound relative to the window the search was called with.
func (s *Search) storeTT(b *board.Board, depth int, move Move, value, origAlpha, beta Value) {
	if s.tt == nil {
		return
	}
	var vt ValueType
	switch {
	case value <= origAlpha:
		vt = Upper
	case value >= beta:
		vt = Lower
	default:
		vt = Exact
	}
	s.tt.Put(b.Key(), move, int8(depth), value, vt, ValueNA, Midgame)
}

// evaluate scores b via the injected static evaluator.
func (s *Search) evaluate(b *board.Board) Value {
	s.statistics.Evaluations++
	return s.eval.Evaluate(b, s.gen)
}

// buildPV plays bestMove on b, then chains hash-best moves from the
// resulting position (the same hash-chain-walk idiom as
// internal/endgame/pv.go's ExpandPV, generalized to midgame-tagged hash
// entries), restoring b fully before returning.
func (s *Search) buildPV(b *board.Board, bestMove Move) *moveslice.MoveSlice {
	pv := moveslice.NewMoveSlice(MaxDepth + 1)
	if bestMove == MoveNone || bestMove.IsPass() {
		return pv
	}
	if err := b.DoMove(bestMove.Square()); err != nil {
		return pv
	}
	pv.PushBack(bestMove)
	played := 1
	defer func() {
		for i := 0; i < played; i++ {
			b.UndoMove()
		}
	}()

	for s.tt != nil {
		e := s.tt.Probe(b.Key())
		if e == nil || e.Kind() != Midgame {
			break
		}
		move := e.Move()
		if move == MoveNone || move.IsPass() {
			break
		}
		if !s.gen.ValidMove(b, move.Square(), b.SideToMove()) {
			break
		}
		if err := b.DoMove(move.Square()); err != nil {
			break
		}
		played++
		pv.PushBack(move)
	}
	return pv
}

// protectedOnePly implements spec.md §4.7's "Protected one-ply": at max
// depth 1, prefer a move that survives a depth-2 safety check (the
// opponent's best reply does not drop us to oneplyLossThreshold or below)
// over one chosen by raw depth-1 static eval alone; fall back to the best
// depth-1 move only if every move fails that check.
func (s *Search) protectedOnePly(b *board.Board) *Result {
	moves := s.gen.GenerateLegalMoves(b, b.SideToMove())

	bestMove, bestSafeMove := MoveNone, MoveNone
	bestValue, bestSafeValue := ValueMin, ValueMin

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if err := b.DoMove(m.Square()); err != nil {
			continue
		}
		shallow := -s.evaluate(b)
		worst := s.worstOpponentReply(b)
		b.UndoMove()

		if bestMove == MoveNone || shallow > bestValue {
			bestValue = shallow
			bestMove = m
		}
		if worst > oneplyLossThreshold && (bestSafeMove == MoveNone || shallow > bestSafeValue) {
			bestSafeValue = shallow
			bestSafeMove = m
		}
	}

	chosen, chosenValue := bestMove, bestValue
	if bestSafeMove != MoveNone {
		chosen, chosenValue = bestSafeMove, bestSafeValue
	} else {
		s.statistics.ProtectedOneplyFallbacks++
	}

	pv := s.buildPV(b, chosen)
	s.statistics.CurrentBestRootMove = chosen
	s.statistics.CurrentBestRootMoveValue = chosenValue
	return &Result{BestMove: chosen, BestValue: chosenValue, SearchDepth: 1, Pv: *pv}
}

// worstOpponentReply returns, from the mover's perspective (i.e. negated
// back after the opponent's turn), the value left by whichever legal reply
// is best for the opponent - the depth-2 half of protected one-ply's
// safety check.
func (s *Search) worstOpponentReply(b *board.Board) Value {
	opp := b.SideToMove()
	replies := s.gen.GenerateLegalMoves(b, opp)

	if replies.Len() == 0 {
		if !s.gen.HasLegalMove(b, opp.Opponent()) {
			return DiscDiffToValue(b.PopCount(opp.Opponent()) - b.PopCount(opp))
		}
		return -s.evaluate(b)
	}

	worst := ValueMax
	for i := 0; i < replies.Len(); i++ {
		m := replies.At(i)
		if err := b.DoMove(m.Square()); err != nil {
			continue
		}
		v := s.evaluate(b)
		if v < worst {
			worst = v
		}
		b.UndoMove()
	}
	return worst
}
