/*
 * chesscore - a Go chess engine
 *
 * MIT License
 *
 * Copyright (c) 2026 chesscore contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Command chesscore is a minimal REPL frontend over internal/engine:
// it prints the board, reads UCI-style coordinate moves, and lets the
// engine answer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"

	"github.com/dkovac/chesscore/internal/config"
	"github.com/dkovac/chesscore/internal/engine"
	"github.com/dkovac/chesscore/internal/game"
	"github.com/dkovac/chesscore/internal/logging"
	"github.com/dkovac/chesscore/internal/movegen"
	"github.com/dkovac/chesscore/internal/position"
	. "github.com/dkovac/chesscore/internal/types"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", position.StartFEN, "FEN of the starting position")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	doProfile := flag.Bool("profile", false, "write a CPU profile of this run to ./cpu.pprof")
	flag.Parse()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.Setup(*configFile)
	log := logging.GetLog()

	pos, err := position.FromFEN(*fen)
	if err != nil {
		log.Warningf("invalid FEN %q, falling back to start position", *fen)
	}

	if *perftDepth > 0 {
		runPerft(pos, *perftDepth)
		return
	}

	runRepl(pos)
}

func runPerft(pos position.Position, depth int) {
	start := time.Now()
	nodes := perft(&pos, depth)
	fmt.Printf("perft(%d) = %d nodes in %s\n", depth, nodes, time.Since(start))
}

func perft(pos *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range movegen.Generate(pos, movegen.Normal) {
		next := *pos
		next.ApplyMove(m)
		nodes += perft(&next, depth-1)
	}
	return nodes
}

func runRepl(pos position.Position) {
	e := engine.NewFromPosition(pos)
	reader := bufio.NewScanner(os.Stdin)

	board := e.Position()
	fmt.Println(board.String())
	for {
		fmt.Print("your move (e.g. e2e4, or 'best'/'quit'): ")
		if !reader.Scan() {
			return
		}
		input := strings.TrimSpace(reader.Text())
		switch input {
		case "quit", "exit":
			return
		case "best":
			m, state, ok := e.PlayBestMove()
			if !ok {
				fmt.Println("no legal move available")
				return
			}
			fmt.Printf("engine plays %s\n", m.String())
			board = e.Position()
			fmt.Println(board.String())
			reportEndOfGame(state)
		default:
			origin, dest, promo, ok := parseUCIMove(input)
			if !ok {
				fmt.Println("could not parse move, expected e.g. e2e4 or e7e8q")
				continue
			}
			state, ok := e.Play(origin, dest, promo)
			if !ok {
				fmt.Println("illegal move")
				continue
			}
			board = e.Position()
			fmt.Println(board.String())
			reportEndOfGame(state)
		}
	}
}

func reportEndOfGame(state game.EndOfGameType) {
	if state != game.None {
		fmt.Println("game over:", state)
	}
}

func parseUCIMove(s string) (origin, dest Square, promotion PieceType, ok bool) {
	if len(s) != 4 && len(s) != 5 {
		return SqNone, SqNone, PtNone, false
	}
	origin = SquareFromString(s[0:2])
	dest = SquareFromString(s[2:4])
	if origin == SqNone || dest == SqNone {
		return SqNone, SqNone, PtNone, false
	}
	promotion = PtNone
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promotion = Knight
		case 'b':
			promotion = Bishop
		case 'r':
			promotion = Rook
		case 'q':
			promotion = Queen
		default:
			return SqNone, SqNone, PtNone, false
		}
	}
	return origin, dest, promotion, true
}
