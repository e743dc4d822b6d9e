package endgame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/zorro/internal/board"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/types"
)

// twoEmptyWinCells is a hand-verified position with exactly two empties
// (d4, f4): black to move plays d4 first, capturing b4 and c4; white is
// then left with no legal move anywhere on the board (its only remaining
// empty target, f4, is blocked in all 8 directions) and must pass; black
// then plays f4, capturing g4. Final tally is 41 black discs to 23 white
// (spec.md §8's "two-empty win" scenario, adapted to a self-consistent
// 64-square total — the spec's own "40-22" example sums to 62, not 64,
// so the exact disc counts here were rebuilt by hand to both sum to 64
// and land on the same +18 margin the scenario calls for). Playing f4
// first is legal too but strictly worse for black (white replies at d4
// capturing 4 discs, for a final +4), so the exact solver must prefer d4.
var twoEmptyWinCells = [64]types.Color{
	// row 1: a1..h1
	types.White, types.Black, types.White, types.Black, types.Black, types.White, types.White, types.Black,
	// row 2: a2..h2
	types.White, types.Black, types.Black, types.White, types.Black, types.White, types.Black, types.White,
	// row 3: a3..h3
	types.Black, types.Black, types.Black, types.Black, types.White, types.White, types.White, types.Black,
	// row 4: a4..h4
	types.Black, types.White, types.White, types.Empty, types.Black, types.Empty, types.White, types.Black,
	// row 5: a5..h5
	types.Black, types.Black, types.Black, types.Black, types.White, types.White, types.White, types.Black,
	// row 6: a6..h6
	types.Black, types.Black, types.Black, types.White, types.Black, types.White, types.Black, types.White,
	// row 7: a7..h7
	types.Black, types.Black, types.White, types.Black, types.Black, types.White, types.White, types.Black,
	// row 8: a8..h8
	types.Black, types.White, types.Black, types.Black, types.Black, types.White, types.Black, types.White,
}

func TestSolveTwoEmptyWinReturnsEighteen(t *testing.T) {
	b := board.NewBoardFromCells(twoEmptyWinCells, types.Black)
	gen := movegen.NewGenerator()

	score, move := Solve(b, gen, nil, -64, 64, 0, 0)

	assert.Equal(t, 18, score)
	assert.Equal(t, types.SquareOf(4, 4), move.Square())
}

func TestSolveTwoEmptyWinRestoresBoard(t *testing.T) {
	b := board.NewBoardFromCells(twoEmptyWinCells, types.Black)
	gen := movegen.NewGenerator()
	before := b.String()

	Solve(b, gen, nil, -64, 64, 0, 0)

	assert.Equal(t, before, b.String())
	assert.Equal(t, 2, b.EmptyCount())
}

func TestFinalScoreOnFullBoardIsPlainDiscDifference(t *testing.T) {
	cells := twoEmptyWinCells
	cells[8*3+3] = types.Black // d4
	cells[8*3+5] = types.Black // f4
	b := board.NewBoardFromCells(cells, types.White)

	// the board is full (0 empties); score is just the raw disc
	// difference from the side to move's perspective, no bonus applies.
	got := finalScore(b)
	black := b.PopCount(types.Black)
	white := b.PopCount(types.White)
	assert.Equal(t, white-black, got)
}

func TestSolveTwoEmptyAlternateFirstMoveIsWorseForBlack(t *testing.T) {
	b := board.NewBoardFromCells(twoEmptyWinCells, types.Black)
	assert.NoError(t, b.DoMove(types.SquareOf(4, 6))) // f4 first
	gen := movegen.NewGenerator()

	score, _ := Solve(b, gen, nil, -64, 64, 0, 0)

	// after f4, white can legally reply at d4 (it now has an anchor it
	// lacked before) and must take it (the only remaining empty), ending
	// the game at black 34, white 30. Solve is now called with white to
	// move, so it reports white's score: -4. That is strictly worse for
	// black than the +18 black secures by playing d4 first.
	assert.Equal(t, -4, score)
}
