package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/zorro/internal/types"
)

func TestPushBackAndLen(t *testing.T) {
	ms := NewMoveSlice(4)
	assert.Equal(t, 0, ms.Len())
	ms.PushBack(types.Move(types.SquareOf(3, 4)))
	ms.PushBack(types.Move(types.SquareOf(4, 3)))
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, types.Move(types.SquareOf(3, 4)), ms.Front())
}

func TestPushFrontPrepends(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(types.Move(types.SquareOf(3, 4)))
	ms.PushFront(types.Move(types.SquareOf(6, 5)))
	assert.Equal(t, types.Move(types.SquareOf(6, 5)), ms.Front())
	assert.Equal(t, 2, ms.Len())
}

func TestContains(t *testing.T) {
	ms := NewMoveSlice(2)
	m := types.Move(types.SquareOf(3, 4))
	ms.PushBack(m)
	assert.True(t, ms.Contains(m))
	assert.False(t, ms.Contains(types.Move(types.SquareOf(6, 5))))
}

func TestClearRetainsCapacityButEmptiesLen(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(types.Move(types.SquareOf(3, 4)))
	ms.Clear()
	assert.Equal(t, 0, ms.Len())
}

func TestCloneIsIndependent(t *testing.T) {
	ms := NewMoveSlice(2)
	ms.PushBack(types.Move(types.SquareOf(3, 4)))
	clone := ms.Clone()
	clone.PushBack(types.Move(types.SquareOf(6, 5)))
	assert.Equal(t, 1, ms.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestScoredMoveSliceSortsDescending(t *testing.T) {
	s := ScoredMoveSlice{
		{Move: types.Move(types.SquareOf(3, 4)), Score: 5},
		{Move: types.Move(types.SquareOf(4, 3)), Score: 20},
		{Move: types.Move(types.SquareOf(6, 5)), Score: -2},
	}
	s.Sort()
	assert.Equal(t, types.Value(20), s[0].Score)
	assert.Equal(t, types.Value(5), s[1].Score)
	assert.Equal(t, types.Value(-2), s[2].Score)
}

func TestScoredMoveSliceMoves(t *testing.T) {
	s := ScoredMoveSlice{
		{Move: types.Move(types.SquareOf(3, 4)), Score: 5},
		{Move: types.Move(types.SquareOf(4, 3)), Score: 20},
	}
	moves := s.Moves()
	assert.Equal(t, 2, len(moves))
	assert.Equal(t, types.Move(types.SquareOf(3, 4)), moves[0])
}
