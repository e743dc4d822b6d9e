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

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/config"
	"github.com/mkopp/zorro/internal/evaluator"
	"github.com/mkopp/zorro/internal/hostapi"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/types"
)

// withDefaultPlayConfig resets config.Settings.Play to its documented
// defaults for the duration of a test and restores the prior values
// afterward, isolating each test from config mutations made by another.
func withDefaultPlayConfig(t *testing.T) {
	t.Helper()
	prev := config.Settings.Play
	config.Settings.Play.Skill = [2]int{0, 0}
	config.Settings.Play.ExactSkill = [2]int{24, 24}
	config.Settings.Play.WldSkill = [2]int{24, 24}
	config.Settings.Play.Perturbation = 0
	config.Settings.Play.UseBook = false
	t.Cleanup(func() { config.Settings.Play = prev })
}

// stubBook is a minimal book.Book used to test ComputeMove's book
// short-circuit without pulling in badgerbook's on-disk store.
type stubBook struct {
	move  types.Move
	value types.Value
	found bool
}

func (b *stubBook) GetBookMove(*board.Board, types.Color, bool) (types.Move, types.Value, bool) {
	return b.move, b.value, b.found
}
func (b *stubBook) FillMoveAlternatives(*board.Board, types.Color, uint8) []types.Move { return nil }
func (b *stubBook) Learn([]types.Move, types.Value) error                              { return nil }
func (b *stubBook) Close() error                                                        { return nil }

func newTestEngine() *Engine {
	return NewEngine(1, evaluator.NewDefaultEvaluator(), hostapi.NewNullHost(), nil)
}

func TestComputeMoveRejectsZeroTimeBudget(t *testing.T) {
	withDefaultPlayConfig(t)
	e := newTestEngine()

	move, err := e.ComputeMove(e.Board.SideToMove(), 0, 0, 0, 0)

	assert.Equal(t, types.MoveNone, move)
	require.Error(t, err)
	var engErr *EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, ConfigurationError, engErr.Kind)
}

func TestComputeMoveReturnsMidgameMoveAndRestoresBoard(t *testing.T) {
	withDefaultPlayConfig(t)
	e := newTestEngine()
	before := e.Board.String()

	move, err := e.ComputeMove(e.Board.SideToMove(), 2*time.Second, 2*time.Second, 0, 0)

	require.NoError(t, err)
	assert.NotEqual(t, types.MoveNone, move)
	assert.Equal(t, before, e.Board.String())
}

func TestComputeMoveUsesBookMoveWhenEnabledAndFound(t *testing.T) {
	withDefaultPlayConfig(t)
	config.Settings.Play.UseBook = true

	b := board.NewBoard()
	legal := movegen.NewGenerator().GenerateLegalMoves(b, b.SideToMove())
	require.Greater(t, legal.Len(), 0)
	bk := &stubBook{move: legal.At(0), value: 50, found: true}

	e := NewEngine(1, evaluator.NewDefaultEvaluator(), hostapi.NewNullHost(), bk)

	move, err := e.ComputeMove(e.Board.SideToMove(), time.Second, time.Second, 0, 0)

	require.NoError(t, err)
	assert.Equal(t, legal.At(0), move)
}

func TestComputeMoveIgnoresBookWhenDisabled(t *testing.T) {
	withDefaultPlayConfig(t)
	config.Settings.Play.UseBook = false

	bk := &stubBook{move: types.Move(0), value: 50, found: true}
	e := NewEngine(1, evaluator.NewDefaultEvaluator(), hostapi.NewNullHost(), bk)

	move, err := e.ComputeMove(e.Board.SideToMove(), time.Second, time.Second, 0, 0)

	require.NoError(t, err)
	// The stub book would hand back square A1 (Move(0)); since the book is
	// disabled the engine must fall through to the midgame search instead.
	assert.NotEqual(t, bk.move, move)
}

// twoEmptyWinCells is a position with exactly two empties (d4, f4), black
// to move. It is a variant of internal/endgame's two-empty fixture: rows 1-7
// are the same, row 8 differs, and because h8 is black here, black's d4
// captures e5, f6 and g7 as well as b4 and c4. It serves as a cheap,
// exactly-solvable fixture for exercising ComputeMove's endgame handoff
// without playing a full game down to a real endgame position.
var twoEmptyWinCells = [64]types.Color{
	types.White, types.Black, types.White, types.Black, types.Black, types.White, types.White, types.Black,
	types.White, types.Black, types.Black, types.White, types.Black, types.White, types.Black, types.White,
	types.Black, types.Black, types.Black, types.Black, types.White, types.White, types.White, types.Black,
	types.Black, types.White, types.White, types.Empty, types.Black, types.Empty, types.White, types.Black,
	types.Black, types.Black, types.Black, types.Black, types.White, types.White, types.White, types.Black,
	types.Black, types.Black, types.Black, types.White, types.Black, types.White, types.Black, types.White,
	types.Black, types.Black, types.White, types.Black, types.Black, types.White, types.White, types.Black,
	types.Black, types.Black, types.White, types.Black, types.Black, types.White, types.White, types.Black,
}

func TestComputeMoveHandsOffToEndgameSolverNearTheEndOfTheGame(t *testing.T) {
	withDefaultPlayConfig(t)
	config.Settings.Play.ExactSkill = [2]int{4, 4}
	e := newTestEngine()
	e.Board = board.NewBoardFromCells(twoEmptyWinCells, types.Black)

	move, err := e.ComputeMove(types.Black, 5*time.Second, 5*time.Second, 0, 0)

	require.NoError(t, err)
	assert.NotEqual(t, types.MoveNone, move)
}

func TestNewGameResetsBoardAndNodeCounter(t *testing.T) {
	withDefaultPlayConfig(t)
	e := newTestEngine()
	e.nodes.Add(42)

	_, err := e.ComputeMove(e.Board.SideToMove(), time.Second, time.Second, 0, 0)
	require.NoError(t, err)

	e.NewGame()

	assert.Equal(t, board.NewBoard().String(), e.Board.String())
	assert.Equal(t, uint64(0), e.NodesVisited())
}
