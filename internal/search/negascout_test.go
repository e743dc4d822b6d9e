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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/evaluator"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/transpositiontable"
	"github.com/mkopp/zorro/internal/types"
)

func TestOrderMovesPutsHashMoveFirst(t *testing.T) {
	gen := movegen.NewGenerator()
	tt := transpositiontable.NewTtTable(1)
	eval := evaluator.NewDefaultEvaluator()
	s := NewSearch(gen, tt, eval, 0)
	b := board.NewBoard()

	moves := gen.GenerateLegalMoves(b, b.SideToMove())
	require.Greater(t, moves.Len(), 1)
	hashMove := moves.At(1)

	ordered := s.orderMoves(b, moves, 4, hashMove)

	require.Len(t, ordered, moves.Len())
	assert.Equal(t, hashMove, ordered[0])
}

func TestOrderMovesIgnoresHashMoveNotInList(t *testing.T) {
	gen := movegen.NewGenerator()
	tt := transpositiontable.NewTtTable(1)
	eval := evaluator.NewDefaultEvaluator()
	s := NewSearch(gen, tt, eval, 0)
	b := board.NewBoard()

	moves := gen.GenerateLegalMoves(b, b.SideToMove())
	ordered := s.orderMoves(b, moves, 4, types.MoveNone)

	assert.Len(t, ordered, moves.Len())
}

func TestStoreTTThenProbeHashMoveRoundTrips(t *testing.T) {
	gen := movegen.NewGenerator()
	tt := transpositiontable.NewTtTable(1)
	eval := evaluator.NewDefaultEvaluator()
	s := NewSearch(gen, tt, eval, 0)
	b := board.NewBoard()

	moves := gen.GenerateLegalMoves(b, b.SideToMove())
	require.Greater(t, moves.Len(), 0)
	m := moves.At(0)

	s.storeTT(b, 6, m, 50, types.ValueMin, types.ValueMax)

	got := s.probeHashMove(b)
	assert.Equal(t, m, got)
}

func TestProbeHashMoveOnEmptyTableReturnsNone(t *testing.T) {
	gen := movegen.NewGenerator()
	tt := transpositiontable.NewTtTable(1)
	eval := evaluator.NewDefaultEvaluator()
	s := NewSearch(gen, tt, eval, 0)
	b := board.NewBoard()

	assert.Equal(t, types.MoveNone, s.probeHashMove(b))
	assert.Equal(t, uint64(1), s.statistics.NoTTMove)
}

func TestBuildPVChainsHashMovesAndRestoresBoard(t *testing.T) {
	gen := movegen.NewGenerator()
	tt := transpositiontable.NewTtTable(1)
	eval := evaluator.NewDefaultEvaluator()
	s := NewSearch(gen, tt, eval, 0)
	b := board.NewBoard()
	before := b.String()

	first := gen.GenerateLegalMoves(b, b.SideToMove()).At(0)
	require.NoError(t, b.DoMove(first.Square()))
	second := gen.GenerateLegalMoves(b, b.SideToMove()).At(0)
	s.storeTT(b, 4, second, 10, types.ValueMin, types.ValueMax)
	b.UndoMove()

	pv := s.buildPV(b, first)

	require.GreaterOrEqual(t, pv.Len(), 2)
	assert.Equal(t, first, pv.At(0))
	assert.Equal(t, second, pv.At(1))
	assert.Equal(t, before, b.String())
}

func TestBuildPVOnMoveNoneReturnsEmptyPV(t *testing.T) {
	gen := movegen.NewGenerator()
	tt := transpositiontable.NewTtTable(1)
	eval := evaluator.NewDefaultEvaluator()
	s := NewSearch(gen, tt, eval, 0)
	b := board.NewBoard()

	pv := s.buildPV(b, types.MoveNone)

	assert.Equal(t, 0, pv.Len())
}

func TestWorstOpponentReplyNegatesBestOpponentMove(t *testing.T) {
	gen := movegen.NewGenerator()
	tt := transpositiontable.NewTtTable(1)
	eval := evaluator.NewDefaultEvaluator()
	s := NewSearch(gen, tt, eval, 0)
	b := board.NewBoard()
	before := b.String()

	worst := s.worstOpponentReply(b)

	// on the symmetric opening position every reply is roughly balanced;
	// the call must not panic, must restore the board, and must return a
	// valid (non-NA) value.
	assert.True(t, worst.IsValid() || worst == types.ValueMax)
	assert.Equal(t, before, b.String())
}
