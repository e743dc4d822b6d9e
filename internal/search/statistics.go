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
	"github.com/mkopp/zorro/internal/moveslice"
	. "github.com/mkopp/zorro/internal/types"
)

// //////////////////////////////////////////////////////
// Statistics
// //////////////////////////////////////////////////////

// Statistics are extra data and stats not essential for a functioning
// search, kept for logging and for counters.NodeCounter/Timer reporting.
// The teacher's chess Statistics carries ~30 counters for quiescence
// search, check extensions, null-move pruning and late-move
// reductions/prunings; none of those apply to Othello (there is no
// quiescence search, no checks, and the game tree has no null move - a
// side that cannot move is forced to pass, it is never optional). What
// survives below is move-ordering/cut bookkeeping that generalizes
// directly, plus Othello-specific counters for midgame MPC and protected
// one-ply.
type Statistics struct {
	BestMoveChange       uint64
	AspirationResearches uint64

	BetaCuts    uint64
	BetaCuts1st uint64

	Evaluations       uint64
	EvaluationsFromTT uint64

	TTHit      uint64
	TTMiss     uint64
	TTMoveUsed uint64
	NoTTMove   uint64
	TTCuts     uint64
	TTNoCuts   uint64

	// MidgameMPCCuts counts subtrees pruned by a midgame MPC shallow
	// probe (spec.md §4.7 "Midgame MPC").
	MidgameMPCCuts uint64

	// ProtectedOneplyFallbacks counts root searches at max depth 1 where
	// no depth-2-safe move existed and the protected-one-ply rule fell
	// back to plain depth-1 static eval (spec.md §4.7 "Protected
	// one-ply").
	ProtectedOneplyFallbacks uint64

	// PassNodes counts nodes where the side to move had no legal move
	// and passed rather than searching a child move.
	PassNodes uint64

	CurrentIterationDepth    int
	CurrentSearchDepth       int
	CurrentExtraSearchDepth  int
	CurrentVariation         moveslice.MoveSlice
	CurrentRootMoveIndex     int
	CurrentRootMove          Move
	CurrentBestRootMove      Move
	CurrentBestRootMoveValue Value
}

func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
