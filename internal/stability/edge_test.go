package stability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/zorro/internal/types"
)

func allEmptyRow() [8]types.Color {
	return [8]types.Color{types.Empty, types.Empty, types.Empty, types.Empty, types.Empty, types.Empty, types.Empty, types.Empty}
}

func TestPatternOfAndRowOfRoundTrip(t *testing.T) {
	row := [8]types.Color{types.Black, types.White, types.Empty, types.Black, types.White, types.Empty, types.Black, types.White}
	pattern := patternOf(row)
	assert.Equal(t, row, rowOf(pattern))
}

func TestEmptyRowHasNoStableDiscs(t *testing.T) {
	pattern := patternOf(allEmptyRow())
	assert.Equal(t, 0, edgeStable[pattern])
}

func TestFullBlackRowIsFullyStable(t *testing.T) {
	row := [8]types.Color{types.Black, types.Black, types.Black, types.Black, types.Black, types.Black, types.Black, types.Black}
	pattern := patternOf(row)
	assert.Equal(t, 0xFF, edgeStable[pattern])
	assert.EqualValues(t, 2+2+2+2+2+2+1+1, blackStable[pattern])
}

func TestCornerAloneIsStable(t *testing.T) {
	row := allEmptyRow()
	row[0] = types.Black
	pattern := patternOf(row)
	// the a1 corner cannot ever be flipped regardless of the rest of the
	// row, since no move can outflank a lone disc at the end of a line.
	assert.NotZero(t, edgeStable[pattern]&1)
}

func TestCountEdgeStableOnStartPositionIsZero(t *testing.T) {
	// the 4 starting discs sit in the center, off every edge line, so all
	// 4 border lines read fully empty.
	get := func(sq types.Square) types.Color { return types.Empty }
	assert.Equal(t, 0, CountEdgeStable(get, types.Black))
	assert.Equal(t, 0, CountEdgeStable(get, types.White))
}

func TestCountEdgeStableAllBlackBorder(t *testing.T) {
	get := func(sq types.Square) types.Color { return types.Black }
	// every one of the 28 border cells is black and fully stable; the 4
	// shared corners must not be double-counted.
	assert.Equal(t, 28, CountEdgeStable(get, types.Black))
	assert.Equal(t, 0, CountEdgeStable(get, types.White))
}

func TestEdgeSquaresCoverDistinctBorderLines(t *testing.T) {
	row1 := edgeSquares(0)
	row8 := edgeSquares(1)
	colA := edgeSquares(2)
	colH := edgeSquares(3)

	assert.Equal(t, types.SquareOf(1, 1), row1[0])
	assert.Equal(t, types.SquareOf(1, 8), row1[7])
	assert.Equal(t, types.SquareOf(8, 1), row8[0])
	assert.Equal(t, types.SquareOf(8, 8), row8[7])
	assert.Equal(t, types.SquareOf(1, 1), colA[0])
	assert.Equal(t, types.SquareOf(8, 1), colA[7])
	assert.Equal(t, types.SquareOf(1, 8), colH[0])
	assert.Equal(t, types.SquareOf(8, 8), colH[7])
}
