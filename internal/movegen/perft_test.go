package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/types"
)

func TestGenerateLegalMovesFromStartPosition(t *testing.T) {
	gen := NewGenerator()
	b := board.NewBoard()
	moves := gen.GenerateLegalMoves(b, b.SideToMove())
	assert.Equal(t, 4, moves.Len())
}

func TestPerftDepthOneMatchesFourOpeningMoves(t *testing.T) {
	gen := NewGenerator()
	p := NewPerft()
	p.StartPerft(gen, 1)
	assert.Equal(t, uint64(4), p.Nodes)
}

func TestPerftDepthTwoMatchesTwelveNodes(t *testing.T) {
	gen := NewGenerator()
	p := NewPerft()
	p.StartPerft(gen, 2)
	assert.Equal(t, uint64(12), p.Nodes)
}

func TestValidMoveRejectsOccupiedSquare(t *testing.T) {
	gen := NewGenerator()
	b := board.NewBoard()
	assert.False(t, gen.ValidMove(b, types.SquareOf(4, 4), b.SideToMove()))
}

func TestValidMoveAcceptsKnownOpeningMove(t *testing.T) {
	gen := NewGenerator()
	b := board.NewBoard()
	assert.True(t, gen.ValidMove(b, types.SquareOf(3, 4), b.SideToMove()))
}

func TestHasLegalMoveOnStartPosition(t *testing.T) {
	gen := NewGenerator()
	b := board.NewBoard()
	assert.True(t, gen.HasLegalMove(b, b.SideToMove()))
}
