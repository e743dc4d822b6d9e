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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/config"
	"github.com/mkopp/zorro/internal/evaluator"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/transpositiontable"
	"github.com/mkopp/zorro/internal/types"
)

// withPlainNegascout disables aspiration and midgame MPC for the duration
// of a test, isolating the baseline negascout/move-ordering path from the
// selective-search add-ons (exercised separately below).
func withPlainNegascout(t *testing.T) {
	t.Helper()
	prevAsp := config.Settings.Search.UseAspiration
	prevMPC := config.Settings.Search.UseMidgameMPC
	config.Settings.Search.UseAspiration = false
	config.Settings.Search.UseMidgameMPC = false
	t.Cleanup(func() {
		config.Settings.Search.UseAspiration = prevAsp
		config.Settings.Search.UseMidgameMPC = prevMPC
	})
}

func newTestSearch() (*Search, *board.Board, *movegen.Generator) {
	gen := movegen.NewGenerator()
	tt := transpositiontable.NewTtTable(1)
	eval := evaluator.NewDefaultEvaluator()
	s := NewSearch(gen, tt, eval, 0)
	b := board.NewBoard()
	return s, b, gen
}

func TestStartSearchReturnsLegalMoveAndRestoresBoard(t *testing.T) {
	withPlainNegascout(t)
	s, b, gen := newTestSearch()
	before := b.String()

	limits := Limits{Depth: 3}
	s.StartSearch(b, limits)
	s.WaitWhileSearching()

	result := s.LastSearchResult()
	require.NotEqual(t, types.MoveNone, result.BestMove)
	assert.True(t, gen.ValidMove(b, result.BestMove.Square(), b.SideToMove()))
	assert.Equal(t, before, b.String())
}

func TestStartSearchIsSearchingReflectsLifecycle(t *testing.T) {
	withPlainNegascout(t)
	s, b, _ := newTestSearch()

	assert.False(t, s.IsSearching())
	s.StartSearch(b, Limits{Depth: 2})
	s.WaitWhileSearching()
	assert.False(t, s.IsSearching())
}

func TestStopSearchHaltsAnInfiniteDepthSearchPromptly(t *testing.T) {
	withPlainNegascout(t)
	s, b, _ := newTestSearch()

	s.StartSearch(b, Limits{Depth: types.MaxDepth})
	time.Sleep(20 * time.Millisecond)
	s.StopSearch()

	assert.False(t, s.IsSearching())
	result := s.LastSearchResult()
	assert.NotEqual(t, types.MoveNone, result.BestMove)
}

func TestProtectedOneplyReturnsLegalMoveAndRestoresBoard(t *testing.T) {
	gen := movegen.NewGenerator()
	b := board.NewBoard()
	// walk a couple of plies into a real game so the position has several
	// candidate replies, not just the four symmetric opening moves.
	for i := 0; i < 2; i++ {
		moves := gen.GenerateLegalMoves(b, b.SideToMove())
		require.Greater(t, moves.Len(), 0)
		require.NoError(t, b.DoMove(moves.At(0).Square()))
	}
	before := b.String()

	tt := transpositiontable.NewTtTable(1)
	eval := evaluator.NewDefaultEvaluator()
	s := NewSearch(gen, tt, eval, 0)

	result := s.protectedOnePly(b)

	assert.True(t, gen.ValidMove(b, result.BestMove.Square(), b.SideToMove()))
	assert.Equal(t, before, b.String())
}

func TestProtectedOneplyDoesNotFallBackWhenEveryMoveIsSafe(t *testing.T) {
	gen := movegen.NewGenerator()
	tt := transpositiontable.NewTtTable(1)
	eval := evaluator.NewDefaultEvaluator()
	s := NewSearch(gen, tt, eval, 0)
	b := board.NewBoard()

	// oneplyLossThreshold is deeply negative (-16 centi-discs worth of
	// discs); no single reply from the symmetric opening position can
	// plausibly drop the mover that far, so every move should count as
	// "safe" and the fallback counter must stay at zero.
	s.protectedOnePly(b)
	assert.Equal(t, uint64(0), s.statistics.ProtectedOneplyFallbacks)
}
