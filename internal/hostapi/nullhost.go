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

package hostapi

import (
	"github.com/mkopp/zorro/internal/moveslice"
	"github.com/mkopp/zorro/internal/types"
)

// NullHost discards every event. Used by tests and by cmd/zorro's -nps
// mode, where nothing is watching the callback stream.
type NullHost struct{}

// NewNullHost creates a NullHost.
func NewNullHost() *NullHost { return &NullHost{} }

func (NullHost) BoardUpdate(BoardUpdate)                {}
func (NullHost) CandidateMoves(moveslice.MoveSlice)     {}
func (NullHost) GetUserInput(types.Color) UserInput     { return UserInput{Kind: UserInputExit} }
func (NullHost) Pass(types.Color)                       {}
func (NullHost) LastMove(types.Move, types.Color)        {}
func (NullHost) OpeningName(string)                     {}
func (NullHost) GameStart()                             {}
func (NullHost) GameOver(types.Value)                   {}
func (NullHost) MoveStart(types.Color)                  {}
func (NullHost) MoveEnd(types.Color, types.Move)         {}
func (NullHost) EvalText(string)                        {}
func (NullHost) PV(moveslice.MoveSlice, types.Value)    {}
func (NullHost) CandidateEvals([]CandidateEval)         {}
func (NullHost) Error(error)                            {}
func (NullHost) Debug(string)                           {}
