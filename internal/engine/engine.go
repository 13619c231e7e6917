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

// Package engine is the façade wiring config, the transposition
// table, the opening book, search and the game driver into the single
// entry point a frontend (REPL, tests) needs.
package engine

import (
	"time"

	"github.com/dkovac/chesscore/internal/config"
	"github.com/dkovac/chesscore/internal/game"
	"github.com/dkovac/chesscore/internal/logging"
	"github.com/dkovac/chesscore/internal/openingbook"
	"github.com/dkovac/chesscore/internal/position"
	"github.com/dkovac/chesscore/internal/search"
	"github.com/dkovac/chesscore/internal/tt"
	. "github.com/dkovac/chesscore/internal/types"
)

var log = logging.GetLog()

// Engine bundles one game in progress with one search instance.
type Engine struct {
	game   *game.Game
	search *search.Search
	book   *openingbook.Book

	timeLimit  time.Duration
	depthLimit int
}

// New builds an engine starting at the standard position, applying
// config.Settings.Engine for book usage and search limits.
func New() *Engine {
	return NewFromPosition(position.New())
}

// NewFromPosition builds an engine starting at pos.
func NewFromPosition(pos position.Position) *Engine {
	e := &Engine{
		game:       game.New(pos),
		search:     search.New(tt.NewWithCapacity(ttEntriesFor(config.Settings.Engine.TTSizeMB))),
		timeLimit:  time.Duration(config.Settings.Engine.TimeLimitMs) * time.Millisecond,
		depthLimit: config.Settings.Engine.DepthLimit,
	}
	if config.Settings.Engine.UseBook {
		book := openingbook.New()
		if err := book.LoadCSV(config.Settings.Engine.BookPath); err != nil {
			log.Warningf("engine: opening book not loaded: %s", err)
		} else {
			e.book = book
			e.search.SetBook(book)
		}
	}
	return e
}

// ttEntriesFor converts a megabyte budget to a slot count.
func ttEntriesFor(mb int) int {
	if mb <= 0 {
		return tt.DefaultCapacity
	}
	bytesPerEntry := 32
	return mb * 1024 * 1024 / bytesPerEntry
}

// Position returns the current position.
func (e *Engine) Position() position.Position {
	return e.game.Current()
}

// FindBestMove runs the search driver on the current position and
// returns the chosen move and the depth iterative deepening reached.
// timeLimit <= 0 or depthLimit <= 0 fall back to the engine's
// configured defaults (config.Settings.Engine), set at construction
// time. found is false only if the position has no legal moves.
func (e *Engine) FindBestMove(timeLimit time.Duration, depthLimit int) (move Move, depth int, found bool) {
	if timeLimit <= 0 {
		timeLimit = e.timeLimit
	}
	if depthLimit <= 0 {
		depthLimit = e.depthLimit
	}
	result := e.search.FindBestMove(e.game.Current(), e.game.ZobristHistory(), search.Limits{
		TimeLimit:  timeLimit,
		DepthLimit: depthLimit,
	})
	return result.Move, result.DepthSearched, !result.Move.IsNone()
}

// Play applies origin->dest (with promotion) to the game if legal,
// returning the resulting end-of-game classification. An illegal move
// leaves the engine's state untouched.
func (e *Engine) Play(origin, dest Square, promotion PieceType) (game.EndOfGameType, bool) {
	return e.game.MakeMove(origin, dest, promotion)
}

// PlayBestMove finds and plays the engine's own best move, returning
// the move played alongside the resulting end-of-game classification.
func (e *Engine) PlayBestMove() (Move, game.EndOfGameType, bool) {
	m, _, found := e.FindBestMove(0, 0)
	if !found {
		return MoveNone, game.None, false
	}
	state, ok := e.game.MakeMove(m.Origin(), m.Destination(), promotionOf(m))
	return m, state, ok
}

func promotionOf(m Move) PieceType {
	if m.Flag() == FlagPromotion {
		return m.Promotion()
	}
	return PtNone
}
