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

// searchConfiguration holds the tuning knobs for the midgame search (C7)
// and endgame solver (C6) that spec.md's component design leaves as
// implementation-level toggles rather than part of the external
// configuration surface (§6).
type searchConfiguration struct {
	// Transposition table
	UseTT  bool
	TTSize int // MB

	// Iterative deepening / aspiration (§4.7)
	UseAspiration   bool
	AspirationDelta int // centi-discs

	// Negascout / PVS move ordering (§4.7)
	UsePVS bool

	// Midgame MPC (§4.7)
	UseMidgameMPC bool
	MaxCutDepth   int

	// Endgame MPC / selectivity ladder (§4.6)
	UseEndgameMPC     bool
	DefaultSelectivity int

	// Enhanced transposition cutoff (§4.4)
	UseETC bool

	// Stability cutoff during search (§4.5)
	UseStabilityCutoff bool

	// Complete stability tree probe (§4.5)
	UseCompleteStability bool
	MaxStabilityNodes    int

	// PV extraction re-solve (§4.6)
	UsePVExpansion bool
	PVExpansion    int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128

	Settings.Search.UseAspiration = false // shipped default per §4.7: (-inf,+inf)
	Settings.Search.AspirationDelta = 200

	Settings.Search.UsePVS = true

	Settings.Search.UseMidgameMPC = true
	Settings.Search.MaxCutDepth = 22

	Settings.Search.UseEndgameMPC = true
	Settings.Search.DefaultSelectivity = 5

	Settings.Search.UseETC = true

	Settings.Search.UseStabilityCutoff = true

	Settings.Search.UseCompleteStability = true
	Settings.Search.MaxStabilityNodes = 10_000

	Settings.Search.UsePVExpansion = true
	Settings.Search.PVExpansion = 16
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupSearch() {
	if Settings.Search.TTSize == 0 {
		Settings.Search.TTSize = 128
	}
}
