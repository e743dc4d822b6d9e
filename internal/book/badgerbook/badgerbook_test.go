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

package badgerbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/types"
)

func openTestBook(t *testing.T) *Book {
	t.Helper()
	bk, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bk.Close() })
	return bk
}

func TestGetBookMoveOnEmptyBookReturnsFalse(t *testing.T) {
	bk := openTestBook(t)
	b := board.NewBoard()

	_, _, found := bk.GetBookMove(b, b.SideToMove(), true)
	assert.False(t, found)
}

func TestLearnThenGetBookMoveRoundTrips(t *testing.T) {
	bk := openTestBook(t)
	gen := movegen.NewGenerator()
	b := board.NewBoard()

	firstMove := gen.GenerateLegalMoves(b, b.SideToMove()).At(0)
	require.NoError(t, bk.Learn([]types.Move{firstMove}, 18))

	move, value, found := bk.GetBookMove(b, b.SideToMove(), true)
	require.True(t, found)
	assert.Equal(t, firstMove, move)
	assert.Equal(t, types.Value(18), value)
}

func TestLearnAccumulatesMultipleGamesAndReordersByValue(t *testing.T) {
	bk := openTestBook(t)
	gen := movegen.NewGenerator()
	b := board.NewBoard()
	moves := gen.GenerateLegalMoves(b, b.SideToMove())
	require.GreaterOrEqual(t, moves.Len(), 2)
	weak, strong := moves.At(0), moves.At(1)

	require.NoError(t, bk.Learn([]types.Move{weak}, 2))
	require.NoError(t, bk.Learn([]types.Move{strong}, 20))

	best, value, found := bk.GetBookMove(b, b.SideToMove(), true)
	require.True(t, found)
	assert.Equal(t, strong, best)
	assert.Equal(t, types.Value(20), value)

	all := bk.FillMoveAlternatives(b, b.SideToMove(), 0)
	assert.Len(t, all, 2)
}

func TestGetBookMoveSkipsPassWhenNotAllowed(t *testing.T) {
	bk := openTestBook(t)
	b := board.NewBoard()

	require.NoError(t, bk.Learn([]types.Move{types.MovePass}, 4))

	_, _, found := bk.GetBookMove(b, b.SideToMove(), false)
	assert.False(t, found)

	move, _, found := bk.GetBookMove(b, b.SideToMove(), true)
	require.True(t, found)
	assert.True(t, move.IsPass())
}
