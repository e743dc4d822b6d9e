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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkopp/zorro/internal/moveslice"
	"github.com/mkopp/zorro/internal/types"
)

// These blank assignments pin both implementations to the Host interface
// at compile time.
var (
	_ Host = (*NullHost)(nil)
	_ Host = (*LoggingHost)(nil)
)

func TestNullHostGetUserInputReturnsExit(t *testing.T) {
	h := NewNullHost()
	in := h.GetUserInput(types.Black)
	assert.Equal(t, UserInputExit, in.Kind)
}

func TestNullHostMethodsDoNotPanic(t *testing.T) {
	h := NewNullHost()
	assert.NotPanics(t, func() {
		h.BoardUpdate(BoardUpdate{SideToMove: types.Black})
		h.CandidateMoves(moveslice.NewMoveSlice(4))
		h.Pass(types.White)
		h.LastMove(types.MoveNone, types.Black)
		h.OpeningName("diagonal")
		h.GameStart()
		h.GameOver(0)
		h.MoveStart(types.Black)
		h.MoveEnd(types.Black, types.MoveNone)
		h.EvalText("even")
		h.PV(moveslice.NewMoveSlice(4), 0)
		h.CandidateEvals(nil)
		h.Error(errors.New("boom"))
		h.Debug("debug")
	})
}

func TestLoggingHostGetUserInputReturnsExitWhenUnwired(t *testing.T) {
	h := NewLoggingHost()
	in := h.GetUserInput(types.White)
	assert.Equal(t, UserInputExit, in.Kind)
}

func TestLoggingHostMethodsDoNotPanic(t *testing.T) {
	h := NewLoggingHost()
	assert.NotPanics(t, func() {
		h.BoardUpdate(BoardUpdate{SideToMove: types.Black, Board: "board"})
		h.CandidateMoves(moveslice.NewMoveSlice(4))
		h.Pass(types.White)
		h.LastMove(types.MoveNone, types.Black)
		h.OpeningName("diagonal")
		h.GameStart()
		h.GameOver(0)
		h.MoveStart(types.Black)
		h.MoveEnd(types.Black, types.MoveNone)
		h.EvalText("even")
		h.PV(moveslice.NewMoveSlice(4), 0)
		h.CandidateEvals([]CandidateEval{{Move: types.MoveNone, Value: 0, Text: "even"}})
		h.Error(errors.New("boom"))
		h.Debug("debug")
	})
}
