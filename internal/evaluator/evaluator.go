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

// Package evaluator contains structures and functions to calculate the
// value of an Othello position to be used by the midgame search (C7) when
// remaining depth runs out before an endgame handoff. spec.md §1
// deliberately declines to prescribe a particular evaluation function
// ("any static evaluator returning a signed 16-bit centi-disc score
// suffices"), so Evaluator is an interface with exactly one shipped
// implementation.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/mkopp/zorro/internal/board"
	myLogging "github.com/mkopp/zorro/internal/logging"
	"github.com/mkopp/zorro/internal/config"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/stability"
	"github.com/mkopp/zorro/internal/types"
)

// Evaluator scores an Othello position from the perspective of its side to
// move. Implementations must be safe to call repeatedly against the same
// board without mutating it.
type Evaluator interface {
	Evaluate(b *board.Board, gen *movegen.Generator) types.Value
}

// corners holds the four corner squares, the single positional feature
// every Othello evaluator treats specially: a corner can never be
// recaptured, so owning one is worth far more than an ordinary disc.
var corners = [4]types.Square{
	types.SquareOf(1, 1), types.SquareOf(1, 8),
	types.SquareOf(8, 1), types.SquareOf(8, 8),
}

// DefaultEvaluator is the shipped static evaluator: a weighted sum of disc
// difference, mobility, edge stability, corner occupation, and parity,
// every term independently toggleable and weighted via
// config.Settings.Eval (internal/config/evalconfig.go).
type DefaultEvaluator struct {
	log *logging.Logger
}

// NewDefaultEvaluator creates the shipped default Evaluator.
func NewDefaultEvaluator() *DefaultEvaluator {
	return &DefaultEvaluator{log: myLogging.GetLog()}
}

// Evaluate scores b from the perspective of b.SideToMove(), in centi-discs
// (types.Value). It does not mutate b.
func (e *DefaultEvaluator) Evaluate(b *board.Board, gen *movegen.Generator) types.Value {
	mover := b.SideToMove()
	opp := mover.Opponent()

	var total int32

	if config.Settings.Eval.UseDiscDiff {
		diff := b.PopCount(mover) - b.PopCount(opp)
		total += int32(diff) * int32(config.Settings.Eval.DiscDiffWeight)
	}

	if config.Settings.Eval.UseMobility {
		ourMoves := gen.GenerateLegalMoves(b, mover).Len()
		theirMoves := gen.GenerateLegalMoves(b, opp).Len()
		total += int32(ourMoves-theirMoves) * int32(config.Settings.Eval.MobilityWeight)
	}

	if config.Settings.Eval.UseStability {
		ourStable := stability.CountEdgeStable(b.Get, mover)
		theirStable := stability.CountEdgeStable(b.Get, opp)
		total += int32(ourStable-theirStable) * int32(config.Settings.Eval.StabilityWeight)
	}

	if config.Settings.Eval.UseCornerWeight {
		var cornerDiff int
		for _, sq := range corners {
			switch b.Get(sq) {
			case mover:
				cornerDiff++
			case opp:
				cornerDiff--
			}
		}
		total += int32(cornerDiff) * int32(config.Settings.Eval.CornerWeight)
	}

	if config.Settings.Eval.UseParity {
		// odd number of empties left favors the side to move taking the
		// last move in the region, the same parity signal the endgame
		// solver's fastest-first ordering exploits.
		if b.EmptyCount()%2 == 1 {
			total += int32(config.Settings.Eval.ParityWeight)
		} else {
			total -= int32(config.Settings.Eval.ParityWeight)
		}
	}

	if total > int32(types.ValueMax) {
		total = int32(types.ValueMax)
	}
	if total < int32(types.ValueMin) {
		total = int32(types.ValueMin)
	}
	return types.Value(total)
}
