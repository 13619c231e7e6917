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

package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkovac/chesscore/internal/movegen"
	"github.com/dkovac/chesscore/internal/position"
	. "github.com/dkovac/chesscore/internal/types"
)

func perft(p position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := movegen.Generate(&p, movegen.Normal)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := p
		child.ApplyMove(m)
		nodes += perft(child, depth-1)
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	p := position.New()
	assert.EqualValues(t, 20, perft(p, 1))
	assert.EqualValues(t, 400, perft(p, 2))
	assert.EqualValues(t, 8902, perft(p, 3))
	assert.EqualValues(t, 197281, perft(p, 4))
	if testing.Short() {
		t.Skip("skipping depth-5 perft in -short mode")
	}
	assert.EqualValues(t, 4865609, perft(p, 5))
}

func TestPerftEnPassantPosition(t *testing.T) {
	p, err := position.FromFEN("rnbqkbnr/ppp1p1pp/5p2/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	assert.EqualValues(t, 32, perft(p, 1))
}

func TestPerftPromotionPosition(t *testing.T) {
	p, err := position.FromFEN("n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 11")
	assert.NoError(t, err)
	assert.EqualValues(t, 9483, perft(p, 3))
}

func TestPerftKiwipete(t *testing.T) {
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.EqualValues(t, 48, perft(p, 1))
	assert.EqualValues(t, 2039, perft(p, 2))
	if testing.Short() {
		t.Skip("skipping deeper Kiwipete perft in -short mode")
	}
	assert.EqualValues(t, 97862, perft(p, 3))
	assert.EqualValues(t, 4085603, perft(p, 4))
}

func TestCaptureModeKiwipete(t *testing.T) {
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	whiteCaptures := movegen.Generate(&p, movegen.Capture)
	assert.Len(t, whiteCaptures, 8)

	black, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1")
	assert.NoError(t, err)
	blackCaptures := movegen.Generate(&black, movegen.Capture)
	assert.Len(t, blackCaptures, 7)
}

func TestEveryGeneratedMoveLeavesMoverNotInCheck(t *testing.T) {
	p, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	us := p.SideToMove()
	for _, m := range movegen.Generate(&p, movegen.Normal) {
		tmp := p
		tmp.ApplyMove(m)
		assert.False(t, movegen.IsKingInCheck(&tmp, us), "move %s leaves mover in check", m)
	}
}

func TestCastlingRequiresClearSquaresAndSafePath(t *testing.T) {
	p, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R3K1nR w KQkq - 0 1")
	assert.NoError(t, err)
	moves := movegen.Generate(&p, movegen.Normal)
	kingside := NewCastlingMove(SqE1, SqG1)
	queenside := NewCastlingMove(SqE1, SqC1)
	var sawKingside, sawQueenside bool
	for _, m := range moves {
		if m == kingside {
			sawKingside = true
		}
		if m == queenside {
			sawQueenside = true
		}
	}
	assert.False(t, sawKingside, "kingside castling must be blocked by the knight occupying g1")
	assert.True(t, sawQueenside, "queenside castling must still be legal")
}

func TestIsLegalMoveEnrichesFlags(t *testing.T) {
	p := position.New()
	e2, e4 := SquareFromString("e2"), SquareFromString("e4")
	m, ok := movegen.IsLegalMove(&p, e2, e4, PtNone)
	assert.True(t, ok)
	assert.Equal(t, FlagNone, m.Flag())

	ep, err := position.FromFEN("rnbqkbnr/ppp1p1pp/5p2/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	e5, d6 := SquareFromString("e5"), SquareFromString("d6")
	epMove, ok := movegen.IsLegalMove(&ep, e5, d6, PtNone)
	assert.True(t, ok)
	assert.Equal(t, FlagEnPassant, epMove.Flag())
}
