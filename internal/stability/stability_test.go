package stability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/types"
)

func TestFullBoardStableOnStartPositionIsEmpty(t *testing.T) {
	b := board.NewBoard()
	// none of the 4 central starting discs touches a wall or a
	// same-color disc on every axis, so nothing is yet provably stable.
	assert.Equal(t, uint64(0), FullBoardStable(b))
}

func TestFullBoardStableFindsCornerOnceOccupied(t *testing.T) {
	// a1 is occupied by Black and every other square is empty - a corner
	// disc can never be flanked along either of its edge lines (there is
	// no cell "outside" it to sandwich from), so it must be provably
	// stable regardless of the rest of the board.
	var cells [64]types.Color
	for i := range cells {
		cells[i] = types.Empty
	}
	cells[0] = types.Black
	b := board.NewBoardFromCells(cells, types.White)
	corner := types.SquareOf(1, 1)

	require.Equal(t, types.Black, b.Get(corner))
	bits := FullBoardStable(b)
	assert.NotZero(t, bits&corner.ToBitSquare().Bit())
}

func TestFullBoardStableNeverMarksAnEmptySquare(t *testing.T) {
	b := board.NewBoard()
	bits := FullBoardStable(b)
	for sq := types.Square(0); int(sq) < types.ArraySize; sq++ {
		if !sq.IsPlayable() {
			continue
		}
		if b.Get(sq) == types.Empty {
			assert.Zero(t, bits&sq.ToBitSquare().Bit())
		}
	}
}

func TestCompleteStabilityProbeOnEmptySquareIsFalse(t *testing.T) {
	b := board.NewBoard()
	gen := movegen.NewGenerator()
	assert.False(t, CompleteStabilityProbe(b, gen, types.SquareOf(1, 1)))
}

func TestCompleteStabilityProbeDoesNotMutateBoard(t *testing.T) {
	b := board.NewBoard()
	gen := movegen.NewGenerator()
	before := b.String()

	CompleteStabilityProbe(b, gen, types.SquareOf(4, 4))

	assert.Equal(t, before, b.String())
}

func TestCompleteStabilityProbeNearEndOfGameIsDecisive(t *testing.T) {
	b := board.NewBoard()
	gen := movegen.NewGenerator()

	// drive the game down to its final few plies by always playing the
	// first legal move; whichever disc sits in a fully walled-off corner
	// group by then must be provably stable within the node budget.
	for i := 0; i < 56 && b.EmptyCount() > 2; i++ {
		mover := b.SideToMove()
		moves := gen.GenerateLegalMoves(b, mover)
		if moves.Len() == 0 {
			if !gen.HasLegalMove(b, mover.Opponent()) {
				break
			}
			b.Pass()
			continue
		}
		if err := b.DoMove(moves.At(0).Square()); err != nil {
			break
		}
	}

	corner := types.SquareOf(1, 1)
	if b.Get(corner) != types.Empty {
		assert.True(t, CompleteStabilityProbe(b, gen, corner))
	}
}
