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

// Package game is the board-history driver sitting above
// internal/position: it keeps the stack of positions and moves played
// so far, exposes the Zobrist-key history search needs for repetition
// avoidance, and classifies end-of-game state. Position is already a
// small value type, so the history is just a plain []position.Position
// with no separate undo/snapshot machinery.
package game

import (
	"github.com/dkovac/chesscore/internal/movegen"
	"github.com/dkovac/chesscore/internal/position"
	. "github.com/dkovac/chesscore/internal/types"
)

// EndOfGameType classifies the state of the game after the last move
// applied.
type EndOfGameType int

const (
	// None means the game continues: the side to move has at least
	// one legal move.
	None EndOfGameType = iota
	Checkmate
	Stalemate
)

func (e EndOfGameType) String() string {
	switch e {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "none"
	}
}

// Game tracks one line of play: the position stack and the moves that
// produced each entry (positionHistory[i+1] = ApplyMove(positionHistory[i], moveHistory[i])).
type Game struct {
	positionHistory []position.Position
	moveHistory     []Move
}

// New starts a game at pos.
func New(pos position.Position) *Game {
	return &Game{positionHistory: []position.Position{pos}}
}

// Current returns the position at the top of the stack.
func (g *Game) Current() position.Position {
	return g.positionHistory[len(g.positionHistory)-1]
}

// ZobristHistory returns the Zobrist key of every position played so
// far, including the current one — exactly the slice
// internal/search's repetition-avoidance heuristic expects.
func (g *Game) ZobristHistory() []position.Key {
	keys := make([]position.Key, len(g.positionHistory))
	for i, p := range g.positionHistory {
		keys[i] = p.ZobristKey()
	}
	return keys
}

// MoveHistory returns every move played so far.
func (g *Game) MoveHistory() []Move {
	out := make([]Move, len(g.moveHistory))
	copy(out, g.moveHistory)
	return out
}

// MakeMove applies origin->dest (with promotion, if any) to the current
// position iff it is legal, returning the resulting end-of-game state.
// An illegal move leaves the game state untouched and returns
// (None, false).
func (g *Game) MakeMove(origin, dest Square, promotion PieceType) (EndOfGameType, bool) {
	current := g.Current()
	m, ok := movegen.IsLegalMove(&current, origin, dest, promotion)
	if !ok {
		return None, false
	}
	next := current
	next.ApplyMove(m)
	g.positionHistory = append(g.positionHistory, next)
	g.moveHistory = append(g.moveHistory, m)
	return g.CheckBoardState(), true
}

// Undo pops the most recent move, restoring the prior position. It is
// a no-op on the starting position.
func (g *Game) Undo() {
	if len(g.positionHistory) <= 1 {
		return
	}
	g.positionHistory = g.positionHistory[:len(g.positionHistory)-1]
	g.moveHistory = g.moveHistory[:len(g.moveHistory)-1]
}

// CheckBoardState classifies the current position: Checkmate if the
// side to move has no legal moves and is in check, Stalemate if it
// has no legal moves and is not in check, None otherwise.
func (g *Game) CheckBoardState() EndOfGameType {
	current := g.Current()
	legal := movegen.Generate(&current, movegen.Normal)
	if len(legal) > 0 {
		return None
	}
	if movegen.IsKingInCheck(&current, current.SideToMove()) {
		return Checkmate
	}
	return Stalemate
}
