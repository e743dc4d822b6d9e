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

package config

import (
	"time"

	"github.com/mkopp/zorro/internal/types"
)

// playConfiguration mirrors spec.md §6's host-facing configuration surface:
// per-color skill/time controls plus the handful of play-style toggles a
// host can set without touching the search internals. Indexed by
// types.Black/types.White.
type playConfiguration struct {
	// Skill caps the full-strength search depth per color; 0 means
	// unrestricted (engine picks depth from time control alone).
	Skill [2]int

	// ExactSkill caps the depth at which the endgame solver is allowed to
	// switch from the selectivity ladder to exact (selectivity 0) search.
	ExactSkill [2]int

	// WldSkill caps the depth at which the endgame solver is allowed to
	// solve for win/loss/draw only, ignoring exact disc margin.
	WldSkill [2]int

	Time      [2]time.Duration
	Increment [2]time.Duration

	// Slack is the centi-disc margin (types.Value) the search is allowed to
	// give up in exchange for a move that is "safe enough", per §6.
	Slack types.Value

	// Perturbation adds random centi-disc noise to root move scores so
	// repeated self-play does not collapse to a single deterministic line.
	Perturbation types.Value

	HumanOpenings       bool
	PracticeMode        bool
	UseBook             bool
	ForcedOpening       string
	AutoMakeForcedMoves bool
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Play.Skill = [2]int{0, 0}
	Settings.Play.ExactSkill = [2]int{24, 24}
	Settings.Play.WldSkill = [2]int{24, 24}

	Settings.Play.Time = [2]time.Duration{5 * time.Minute, 5 * time.Minute}
	Settings.Play.Increment = [2]time.Duration{0, 0}

	Settings.Play.Slack = 0
	Settings.Play.Perturbation = 0

	Settings.Play.HumanOpenings = false
	Settings.Play.PracticeMode = false
	Settings.Play.UseBook = true
	Settings.Play.ForcedOpening = ""
	Settings.Play.AutoMakeForcedMoves = false
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupPlay() {
	for c := 0; c < 2; c++ {
		if Settings.Play.Time[c] == 0 {
			Settings.Play.Time[c] = 5 * time.Minute
		}
	}
}
