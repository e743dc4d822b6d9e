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
	"github.com/op/go-logging"

	myLogging "github.com/mkopp/zorro/internal/logging"
	"github.com/mkopp/zorro/internal/moveslice"
	"github.com/mkopp/zorro/internal/types"
)

// LoggingHost routes every engine event through internal/logging, the
// way the teacher's uci.UciHandler routes every search callback through
// its own uciLog (see getUciLog in uci/uci.go). It is the engine's only
// production Host: there is no second, parallel print path.
//
// LoggingHost has no interactive input source of its own, so
// GetUserInput logs the request and returns a UserInput{Kind:
// UserInputExit}; a host embedding LoggingHost for its output side pairs
// it with a real input source (a GUI event loop, a test's scripted move
// list) rather than relying on this fallback.
type LoggingHost struct {
	log *logging.Logger
}

// NewLoggingHost creates a LoggingHost bound to the process-wide logger.
func NewLoggingHost() *LoggingHost {
	return &LoggingHost{log: myLogging.GetLog()}
}

func (h *LoggingHost) BoardUpdate(update BoardUpdate) {
	h.log.Infof("board update: side=%s\n%s", update.SideToMove, update.Board)
}

func (h *LoggingHost) CandidateMoves(moves moveslice.MoveSlice) {
	h.log.Infof("candidate moves: %s", moves.String())
}

func (h *LoggingHost) GetUserInput(side types.Color) UserInput {
	h.log.Warningf("GetUserInput called for %s with no interactive input source wired", side)
	return UserInput{Kind: UserInputExit}
}

func (h *LoggingHost) Pass(side types.Color) {
	h.log.Infof("%s passes", side)
}

func (h *LoggingHost) LastMove(move types.Move, side types.Color) {
	h.log.Infof("last move: %s played %s", side, move.String())
}

func (h *LoggingHost) OpeningName(name string) {
	h.log.Infof("opening: %s", name)
}

func (h *LoggingHost) GameStart() {
	h.log.Info("game start")
}

func (h *LoggingHost) GameOver(finalScore types.Value) {
	h.log.Infof("game over: final score %s", finalScore.String())
}

func (h *LoggingHost) MoveStart(side types.Color) {
	h.log.Debugf("%s to move", side)
}

func (h *LoggingHost) MoveEnd(side types.Color, move types.Move) {
	h.log.Debugf("%s played %s", side, move.String())
}

func (h *LoggingHost) EvalText(text string) {
	h.log.Info(text)
}

func (h *LoggingHost) PV(pv moveslice.MoveSlice, value types.Value) {
	h.log.Infof("pv: %s (%s)", pv.String(), value.String())
}

func (h *LoggingHost) CandidateEvals(evals []CandidateEval) {
	for _, e := range evals {
		h.log.Infof("candidate %s: %s (%s)", e.Move.String(), e.Value.String(), e.Text)
	}
}

func (h *LoggingHost) Error(err error) {
	h.log.Errorf("%s", err)
}

func (h *LoggingHost) Debug(msg string) {
	h.log.Debug(msg)
}
