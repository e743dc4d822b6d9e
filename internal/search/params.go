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

package search

import (
	"math/rand"

	"github.com/mkopp/zorro/internal/types"
)

// This file holds static/pre-computed parameters supporting the midgame
// search, too fine-grained to belong in the search configuration surface
// (internal/config/searchconfig.go). The teacher's equivalent file carries
// LMR/LMP/futility-pruning tables for chess quiescence and check extensions;
// Othello has no quiescence search (every position is already "quiet" — a
// side either has a legal move or passes) so none of those tables have an
// Othello analogue. What remains/replaces them below is move-ordering depth
// selection, midgame MPC shallow-cut pairs, and score perturbation.

// DEPTH_TWO is the remaining-depth threshold below which move ordering uses
// a depth-1 shallow search instead of depth-2 (spec.md §4.7, move ordering
// step 2).
const DEPTH_TWO = 10

// MAX_CUT_DEPTH is the remaining-depth ceiling above which midgame MPC never
// fires (spec.md §4.7, "Midgame MPC"). Mirrored by
// config.Settings.Search.MaxCutDepth, which a caller may lower further.
const MAX_CUT_DEPTH = 22

// mpcCutPair is one registered (d, d') shallow-cut pair for midgame MPC: at
// remaining depth d, probe to depth d' < d with a window shifted by
// (bias, sigma) before committing to the full-depth search.
type mpcCutPair struct {
	depth      int
	shallow    int
	bias       float64
	sigma      float64
}

// midgameCutPairs are the registered (d, d') pairs searched for a given
// remaining depth by mpcCutPairsFor. As with the endgame ladder
// (internal/endgame/mpc.go's mpcBiasSigma), the real engine tunes bias/sigma
// from millions of recorded (shallow, deep) score pairs that are not part of
// the retrieved sources; lacking that regression data, sigma is set
// proportional to the depth gap (d - d') and bias left at zero, which keeps
// the cut mechanism itself real and exercised at every qualifying node
// without pretending to reproduce zebra's tuned table.
var midgameCutPairs = buildMidgameCutPairs()

func buildMidgameCutPairs() map[int][]mpcCutPair {
	pairs := make(map[int][]mpcCutPair, MAX_CUT_DEPTH)
	for d := 3; d <= MAX_CUT_DEPTH; d++ {
		var shallows []int
		switch {
		case d >= 8:
			shallows = []int{d - 2, d - 4}
		case d >= 4:
			shallows = []int{d - 2}
		default:
			shallows = []int{1}
		}
		entries := make([]mpcCutPair, 0, len(shallows))
		for _, sd := range shallows {
			if sd < 1 {
				continue
			}
			gap := float64(d - sd)
			entries = append(entries, mpcCutPair{
				depth:   d,
				shallow: sd,
				bias:    0.0,
				sigma:   gap * 20.0,
			})
		}
		pairs[d] = entries
	}
	return pairs
}

// mpcCutPairsFor returns the registered shallow-cut pairs for the given
// remaining depth, or nil if depth exceeds MAX_CUT_DEPTH or is too shallow
// to have any registered pair.
func mpcCutPairsFor(depth int) []mpcCutPair {
	if depth > MAX_CUT_DEPTH {
		return nil
	}
	return midgameCutPairs[depth]
}

// perturbationRand is the process-wide score-perturbation source. It is
// seeded exactly once (not per search) so that repeated searches of the
// same position at the same amplitude are reproducible, per spec.md §4.7
// "Score perturbation" and §8 "Hash determinism".
var perturbationRand = rand.New(rand.NewSource(1))

// seedPerturbation reseeds perturbationRand. Nothing in the module calls
// it, so perturbationRand keeps its fixed seed of 1; code inside this
// package (such as a test) can call it to pin a different reproducible
// offset vector.
func seedPerturbation(seed int64) {
	perturbationRand = rand.New(rand.NewSource(seed))
}

// buildPerturbationVector draws one random offset in [-amplitude/2,
// amplitude/2] per board square, indexed by types.Square. An amplitude of 0
// returns an all-zero vector (perturbation disabled).
func buildPerturbationVector(amplitude types.Value) [types.ArraySize]types.Value {
	var v [types.ArraySize]types.Value
	if amplitude <= 0 {
		return v
	}
	half := int(amplitude) / 2
	for sq := 0; sq < types.ArraySize; sq++ {
		v[sq] = types.Value(perturbationRand.Intn(int(amplitude)+1) - half)
	}
	return v
}

// aspirationSteps are the successive half-window widenings used when a
// fail-high/low forces a re-search (spec.md §4.7, "On fail-high/low,
// re-search with the corresponding half-window extended to midgame-win
// bounds"). The final step is the midgame-win bound itself.
var aspirationSteps = []types.Value{50, 200, types.ValueMax}
