package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/zorro/internal/types"
)

func TestNewBoardStartPosition(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, 4, b.disksPlayed)
	assert.Equal(t, 2, b.PopCount(types.Black))
	assert.Equal(t, 2, b.PopCount(types.White))
	assert.Equal(t, types.Black, b.SideToMove())
	assert.Equal(t, types.White, b.Get(types.SquareOf(4, 4)))
	assert.Equal(t, types.Black, b.Get(types.SquareOf(4, 5)))
}

func TestOpeningMoveFlipsOneDisc(t *testing.T) {
	b := NewBoard()
	// d3 (row 3, col 4) is a standard legal opening move for Black.
	sq := types.SquareOf(3, 4)
	assert.Equal(t, 1, b.CountFlips(sq, types.Black))
	err := b.DoMove(sq)
	assert.NoError(t, err)
	assert.Equal(t, 5, b.disksPlayed)
	assert.Equal(t, types.Black, b.Get(types.SquareOf(4, 4)))
	assert.Equal(t, types.White, b.SideToMove())
}

func TestIllegalMoveReturnsError(t *testing.T) {
	b := NewBoard()
	err := b.DoMove(types.SquareOf(1, 1))
	assert.Error(t, err)
}

func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	b := NewBoard()
	before := *b
	beforeKey := b.Key()
	sq := types.SquareOf(3, 4)
	assert.NoError(t, b.DoMove(sq))
	assert.NotEqual(t, beforeKey, b.Key())
	b.UndoMove()
	assert.Equal(t, beforeKey, b.Key())
	assert.Equal(t, before.cells, b.cells)
	assert.Equal(t, before.disksPlayed, b.disksPlayed)
	assert.Equal(t, before.sideToMove, b.sideToMove)
}

func TestPassUndoPassRoundTrip(t *testing.T) {
	b := NewBoard()
	beforeKey := b.Key()
	b.Pass()
	assert.NotEqual(t, beforeKey, b.Key())
	assert.Equal(t, types.White, b.SideToMove())
	b.UndoMove()
	assert.Equal(t, beforeKey, b.Key())
	assert.Equal(t, types.Black, b.SideToMove())
}

func TestSyncBitboardsMatchesArrayPopcount(t *testing.T) {
	b := NewBoard()
	assert.NoError(t, b.DoMove(types.SquareOf(3, 4)))
	b.SyncBitboards()
	assert.Equal(t, b.PopCount(b.SideToMove()), types.PopCount(b.MineBits()))
	assert.Equal(t, b.PopCount(b.SideToMove().Opponent()), types.PopCount(b.OppBits()))
}

func TestReplayMovesRoundTripsThroughKnownSequence(t *testing.T) {
	// d3 is a standard legal opening ply for Black from the start position.
	raw := []byte{byte(types.SquareOf(3, 4))}
	b, err := ReplayMoves(raw)
	assert.NoError(t, err)
	assert.Equal(t, 5, b.disksPlayed)
	assert.Equal(t, types.White, b.SideToMove())
}

func TestReplayMovesRejectsIllegalMove(t *testing.T) {
	_, err := ReplayMoves([]byte{byte(types.SquareOf(1, 1))})
	assert.Error(t, err)
}
