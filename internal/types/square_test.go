package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareOfAndString(t *testing.T) {
	s := SquareOf(3, 4)
	assert.Equal(t, "d3", s.String())
	assert.True(t, s.IsPlayable())
}

func TestSquareBorderIsNotPlayable(t *testing.T) {
	border := Square(0)
	assert.False(t, border.IsPlayable())
}

func TestParseSquareRoundTrip(t *testing.T) {
	for _, notation := range []string{"a1", "h8", "d3", "e6", "c4", "f5"} {
		s, err := ParseSquare(notation)
		require.NoError(t, err)
		assert.Equal(t, notation, s.String())
	}
}

func TestToBitSquareRowMajorA1IsBitZero(t *testing.T) {
	a1, err := ParseSquare("a1")
	require.NoError(t, err)
	assert.Equal(t, BitSquare(0), a1.ToBitSquare())

	h8, err := ParseSquare("h8")
	require.NoError(t, err)
	assert.Equal(t, BitSquare(63), h8.ToBitSquare())

	d3, err := ParseSquare("d3")
	require.NoError(t, err)
	assert.Equal(t, BitSquare(8*2+3), d3.ToBitSquare())
}

func TestBitSquareRoundTrip(t *testing.T) {
	for bs := BitSquare(0); bs < 64; bs++ {
		sq := bs.ToSquare()
		require.True(t, sq.IsPlayable())
		assert.Equal(t, bs, sq.ToBitSquare())
	}
}
