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

package main

import (
	"bufio"
	"flag"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkopp/zorro/internal/book/badgerbook"
	"github.com/mkopp/zorro/internal/config"
	"github.com/mkopp/zorro/internal/engine"
	"github.com/mkopp/zorro/internal/evaluator"
	"github.com/mkopp/zorro/internal/hostapi"
	"github.com/mkopp/zorro/internal/logging"
	"github.com/mkopp/zorro/internal/movegen"
	"github.com/mkopp/zorro/internal/types"
	"github.com/mkopp/zorro/internal/util"
)

var out = message.NewPrinter(language.German)

const buildVersion = "0.1.0"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "", "path where to write log files to")
	bookPath := flag.String("bookpath", "", "path to the opening book's on-disk badger store\nleave empty to play without a book")
	perft := flag.Int("perft", 0, "runs perft from the starting position to the given depth and exits")
	nps := flag.Int("nps", 0, "runs a timed search from the starting position for the given number of seconds and exits")
	cpuProfile := flag.Bool("cpuprofile", false, "enables a pprof CPU profile for the duration of the process\n(go tool pprof -http :8080 ./zorro ./cpu.pprof)")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}

	// resetting log level after config/flags are applied - required as
	// most packages hold the standard logger as a global var, initialized
	// with the default level before main() runs.
	logging.GetLog()

	if *perft != 0 {
		gen := movegen.NewGenerator()
		var p movegen.Perft
		for depth := 1; depth <= *perft; depth++ {
			p.StartPerft(gen, depth)
		}
		return
	}

	if *nps != 0 {
		runNpsTest(time.Duration(*nps) * time.Second)
		return
	}

	host := hostapi.NewLoggingHost()
	var bk *badgerbook.Book
	if *bookPath != "" {
		b, err := badgerbook.Open(*bookPath)
		if err != nil {
			host.Error(err)
		} else {
			bk = b
			defer bk.Close()
		}
	}

	e := engine.NewEngine(config.Settings.Search.TTSize, evaluator.NewDefaultEvaluator(), host, bk)
	runCommandLoop(e)
}

// runNpsTest drives a single fixed-time search from the starting position
// and reports the achieved nodes-per-second, mirroring the teacher's -nps
// flag in cmd/FrankyGo/main.go.
func runNpsTest(d time.Duration) {
	config.Settings.Play.UseBook = false
	host := hostapi.NewNullHost()
	e := engine.NewEngine(config.Settings.Search.TTSize, evaluator.NewDefaultEvaluator(), host, nil)

	start := time.Now()
	_, err := e.ComputeMove(e.Board.SideToMove(), d, d, 0, 0)
	elapsed := time.Since(start)
	if err != nil {
		out.Println("search error:", err)
		return
	}
	out.Println()
	out.Printf("NPS : %d\n", util.Nps(e.NodesVisited(), elapsed))
}

// runCommandLoop reads simple line commands from stdin until "quit" or
// EOF, driving a single Engine. This is the scaled-down host loop this
// engine core ships with: spec.md §1 scopes a full interactive UI/protocol
// layer out as an external collaborator, so there is no UCI-style protocol
// implementation here - just enough of a driver loop to exercise
// Engine.ComputeMove against hostapi.Host end to end.
//
// Commands:
//
//	newgame                      resets the board
//	position                     prints the current board
//	move <square>                plays a move, e.g. "move d3"
//	go <wtimeMs> <btimeMs> <wincMs> <bincMs>
//	                             computes a move under the given clocks
//	                             and prints "bestmove <sq>"; the move is
//	                             not played (use "move" to play it)
//	quit                         exits
func runCommandLoop(e *engine.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return
		case "newgame":
			e.NewGame()
		case "position":
			out.Println(e.Board.String())
		case "move":
			if len(fields) < 2 {
				out.Println("usage: move <square>")
				continue
			}
			sq, err := types.ParseSquare(fields[1])
			if err != nil {
				out.Println("invalid square:", err)
				continue
			}
			if err := e.Board.DoMove(sq); err != nil {
				out.Println("illegal move:", err)
			}
		case "go":
			wtime, btime, winc, binc := parseClocks(fields[1:])
			move, err := e.ComputeMove(e.Board.SideToMove(), wtime, btime, winc, binc)
			if err != nil {
				out.Println("search error:", err)
				continue
			}
			if move == types.MovePass {
				out.Println("bestmove pass")
				continue
			}
			out.Printf("bestmove %s\n", move.Square().String())
		default:
			out.Println("unknown command:", fields[0])
		}
	}
}

// parseClocks parses up to four millisecond durations off the "go" command
// line. A missing or unparsable clock (wtime, btime) defaults to 5 seconds;
// a missing or unparsable increment (winc, binc) defaults to 0.
func parseClocks(args []string) (wtime, btime, winc, binc time.Duration) {
	vals := [4]time.Duration{5 * time.Second, 5 * time.Second, 0, 0}
	for i := 0; i < len(args) && i < 4; i++ {
		if ms, err := strconv.Atoi(args[i]); err == nil {
			vals[i] = time.Duration(ms) * time.Millisecond
		}
	}
	return vals[0], vals[1], vals[2], vals[3]
}

func printVersionInfo() {
	out.Printf("zorro %s\n", buildVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	out.Printf("  Number of Goroutines: %d\n", runtime.NumGoroutine())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
