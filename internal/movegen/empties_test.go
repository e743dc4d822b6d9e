package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/zorro/internal/types"
)

func allEmptyExcept(occupied ...types.Square) func(types.Square) bool {
	return func(sq types.Square) bool {
		for _, o := range occupied {
			if o == sq {
				return false
			}
		}
		return true
	}
}

func TestNewEmptiesCountsSixtyFourForEmptyBoard(t *testing.T) {
	e := NewEmpties(allEmptyExcept())
	n := 0
	for sq := e.First(); !e.End(sq); sq = e.Next(sq) {
		n++
	}
	assert.Equal(t, 64, n)
}

func TestRemoveAndRestoreRoundTripsParity(t *testing.T) {
	e := NewEmpties(allEmptyExcept(
		types.SquareOf(4, 4), types.SquareOf(4, 5),
		types.SquareOf(5, 4), types.SquareOf(5, 5),
	))
	beforeParity := e.Parity()
	sq := types.SquareOf(3, 4)
	e.Remove(sq)
	assert.NotEqual(t, beforeParity, e.Parity())
	e.Restore(sq)
	assert.Equal(t, beforeParity, e.Parity())
}

func TestRemoveSplicesSquareOutOfTraversal(t *testing.T) {
	e := NewEmpties(allEmptyExcept())
	sq := types.SquareOf(3, 4)
	e.Remove(sq)
	for s := e.First(); !e.End(s); s = e.Next(s) {
		assert.NotEqual(t, sq, s)
	}
}

func TestOddThenEvenVisitsEveryEmptySquareExactlyOnce(t *testing.T) {
	e := NewEmpties(allEmptyExcept(
		types.SquareOf(4, 4), types.SquareOf(4, 5),
		types.SquareOf(5, 4), types.SquareOf(5, 5),
	))
	seen := make(map[types.Square]bool)
	e.OddThenEven(func(sq types.Square) bool {
		seen[sq] = true
		return true
	})
	assert.Equal(t, 60, len(seen))
}

func TestQuadrantOfCorners(t *testing.T) {
	assert.Equal(t, uint(0), quadrantOf(types.SquareOf(1, 1)))
	assert.Equal(t, uint(1), quadrantOf(types.SquareOf(1, 8)))
	assert.Equal(t, uint(2), quadrantOf(types.SquareOf(8, 1)))
	assert.Equal(t, uint(3), quadrantOf(types.SquareOf(8, 8)))
}
