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

// evalConfiguration tunes the default static evaluator (internal/evaluator).
// spec.md §1 explicitly declines to prescribe a particular evaluation
// function ("any static evaluator returning a signed 16-bit centi-disc
// score suffices") so these weights belong to the shipped default, not to
// the core contract itself.
type evalConfiguration struct {
	UseMobility     bool
	MobilityWeight  int16
	UseCornerWeight bool
	CornerWeight    int16
	UseStability    bool
	StabilityWeight int16
	UseParity       bool
	ParityWeight    int16
	UseDiscDiff     bool
	DiscDiffWeight  int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityWeight = 10

	Settings.Eval.UseCornerWeight = true
	Settings.Eval.CornerWeight = 25

	Settings.Eval.UseStability = true
	Settings.Eval.StabilityWeight = 12

	Settings.Eval.UseParity = true
	Settings.Eval.ParityWeight = 2

	Settings.Eval.UseDiscDiff = true
	Settings.Eval.DiscDiffWeight = 1
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
