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

// Package hostapi declares the callback boundary between the engine core
// and whatever is driving it (a GUI, a batch runner, a test harness).
// internal/engine imports hostapi, never the other way around, for the
// same reason the teacher splits uciInterface out of uci: the engine
// needs to call back into its host, and the host package wants to hold an
// *engine.Engine, so the callback surface has to live in a third package
// to avoid an import cycle (the teacher's uciInterface.UciDriver plays
// exactly this role for search <-> uci).
package hostapi

import (
	"time"

	"github.com/mkopp/zorro/internal/moveslice"
	"github.com/mkopp/zorro/internal/types"
)

// BoardUpdate is the payload for Host.BoardUpdate: spec.md §6's "full
// board, side-to-move, black/white clocks & evals, move lists".
type BoardUpdate struct {
	Board       string
	SideToMove  types.Color
	BlackClock  time.Duration
	WhiteClock  time.Duration
	BlackEval   types.Value
	WhiteEval   types.Value
	LegalMoves  moveslice.MoveSlice
}

// UserInputKind enumerates the replies §6's GET_USER_INPUT callback may
// return: {MOVE(square), UNDO, REDO, SETTINGS_CHANGE, EXIT}.
type UserInputKind int

const (
	UserInputMove UserInputKind = iota
	UserInputUndo
	UserInputRedo
	UserInputSettingsChange
	UserInputExit
)

// UserInput is the reply to Host.GetUserInput. Square is only meaningful
// when Kind is UserInputMove.
type UserInput struct {
	Kind   UserInputKind
	Square types.Square
}

// CandidateEval is one element of the Host.CandidateEvals payload: a
// per-move evaluation in both numeric and formatted-text form, per §6's
// "practice_mode... compute evaluations for each of human player's
// candidate moves".
type CandidateEval struct {
	Move  types.Move
	Value types.Value
	Text  string
}

// Host is the callback interface the engine core calls into for every
// event family spec.md §6 lists. There is exactly one production
// implementation, LoggingHost, per Design Notes §9's resolution of the
// "two display surfaces" open question: route all host output through
// this single interface rather than maintaining a second ad hoc print
// path alongside it.
type Host interface {
	BoardUpdate(update BoardUpdate)
	CandidateMoves(moves moveslice.MoveSlice)
	GetUserInput(side types.Color) UserInput
	Pass(side types.Color)
	LastMove(move types.Move, side types.Color)
	OpeningName(name string)
	GameStart()
	GameOver(finalScore types.Value)
	MoveStart(side types.Color)
	MoveEnd(side types.Color, move types.Move)
	EvalText(text string)
	PV(pv moveslice.MoveSlice, value types.Value)
	CandidateEvals(evals []CandidateEval)
	Error(err error)
	Debug(msg string)
}
