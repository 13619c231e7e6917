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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/dkovac/chesscore/internal/types"
)

func TestNewIsStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, WhiteRook, p.PieceAt(SqA1))
	assert.Equal(t, BlackKing, p.PieceAt(SqE8))
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbq1bnr/pppp1ppp/8/4p3/4P1k1/8/PPPPKPPP/RNBQ1BNR w - - 0 1",
		"8/8/8/3k4/8/3K4/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.FEN())
	}
}

func TestFromFENInvalidFallsBackToStart(t *testing.T) {
	p, err := FromFEN("not a fen at all")
	assert.Error(t, err)
	assert.Equal(t, StartFEN, p.FEN())
}

func TestFromFENMissingKingIsInvalid(t *testing.T) {
	_, err := FromFEN("8/8/8/8/8/8/8/8 w - - 0 1")
	assert.Error(t, err)
}

func TestApplyMoveSimplePawnPush(t *testing.T) {
	p := New()
	e2, e4 := SquareFromString("e2"), SquareFromString("e4")
	p.ApplyMove(NewMove(e2, e4))

	assert.Equal(t, PieceNone, p.PieceAt(e2))
	assert.Equal(t, WhitePawn, p.PieceAt(e4))
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, SquareFromString("e3"), p.EnPassantSquare())
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())
}

func TestApplyMoveCapture(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	assert.NoError(t, err)
	e4, d5 := SquareFromString("e4"), SquareFromString("d5")
	p.ApplyMove(NewMove(e4, d5))

	assert.Equal(t, WhitePawn, p.PieceAt(d5))
	assert.Equal(t, PieceNone, p.PieceAt(e4))
	assert.Equal(t, 7, len(p.PieceList(Black, Pawn)))
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())
}

func TestApplyMoveEnPassantCapture(t *testing.T) {
	p, err := FromFEN("rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3")
	assert.NoError(t, err)
	d4, e3 := SquareFromString("d4"), SquareFromString("e3")
	p.ApplyMove(NewEnPassantMove(d4, e3))

	assert.Equal(t, BlackPawn, p.PieceAt(e3))
	assert.Equal(t, PieceNone, p.PieceAt(SquareFromString("e4")))
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())
}

func TestApplyMoveCastlingKingside(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	e1, g1 := SquareFromString("e1"), SquareFromString("g1")
	p.ApplyMove(NewCastlingMove(e1, g1))

	assert.Equal(t, WhiteKing, p.PieceAt(g1))
	assert.Equal(t, WhiteRook, p.PieceAt(SquareFromString("f1")))
	assert.Equal(t, PieceNone, p.PieceAt(SquareFromString("h1")))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))
	assert.True(t, p.CastlingRights().Has(CastlingBlackOO))
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())
}

func TestApplyMoveRookMoveDropsOneRight(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	a1, a4 := SquareFromString("a1"), SquareFromString("a4")
	p.ApplyMove(NewMove(a1, a4))

	assert.False(t, p.CastlingRights().Has(CastlingWhiteOOO))
	assert.True(t, p.CastlingRights().Has(CastlingWhiteOO))
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())
}

func TestApplyMoveRookCaptureDropsOpponentRight(t *testing.T) {
	p, err := FromFEN("r3k2r/8/8/8/8/8/7B/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	h2, h8 := SquareFromString("h2"), SquareFromString("h8")
	p.ApplyMove(NewMove(h2, h8))

	assert.False(t, p.CastlingRights().Has(CastlingBlackOO))
	assert.True(t, p.CastlingRights().Has(CastlingBlackOOO))
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())
}

func TestApplyMovePromotion(t *testing.T) {
	p, err := FromFEN("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	assert.NoError(t, err)
	a7, a8 := SquareFromString("a7"), SquareFromString("a8")
	p.ApplyMove(NewPromotionMove(a7, a8, Queen))

	assert.Equal(t, WhiteQueen, p.PieceAt(a8))
	assert.Equal(t, 1, len(p.PieceList(White, Queen)))
	assert.Equal(t, 0, len(p.PieceList(White, Pawn)))
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())
}

func TestKingSquare(t *testing.T) {
	p := New()
	assert.Equal(t, SquareFromString("e1"), p.KingSquare(White))
	assert.Equal(t, SquareFromString("e8"), p.KingSquare(Black))
}

func TestPositionCopiesByValue(t *testing.T) {
	p := New()
	tmp := p
	tmp.ApplyMove(NewMove(SquareFromString("e2"), SquareFromString("e4")))

	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, Black, tmp.SideToMove())
	assert.Equal(t, WhitePawn, p.PieceAt(SquareFromString("e2")))
	assert.Equal(t, PieceNone, tmp.PieceAt(SquareFromString("e2")))
}
