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
	. "github.com/dkovac/chesscore/internal/types"
)

// Key is a Zobrist hash of a chess position.
type Key uint64

// zobristTable holds the per-feature random constants: one per (piece,
// square), one per castling right, one per en-passant file, and
// one for side-to-move. The whole table is computed once from a fixed
// seed, so keys are reproducible across runs.
type zobristTable struct {
	pieces     [PieceLength][64]Key
	castling   [4]Key // one constant per right: WhiteOO,WhiteOOO,BlackOO,BlackOOO
	epFile     [8]Key
	sideToMove Key
}

var zobristBase zobristTable

var castlingBits = [4]CastlingRights{CastlingWhiteOO, CastlingWhiteOOO, CastlingBlackOO, CastlingBlackOOO}

func init() {
	r := newRandom(1070372)
	for pc := 0; pc < PieceLength; pc++ {
		for sq := 0; sq < 64; sq++ {
			zobristBase.pieces[pc][sq] = Key(r.rand64())
		}
	}
	for i := range zobristBase.castling {
		zobristBase.castling[i] = Key(r.rand64())
	}
	for f := 0; f < 8; f++ {
		zobristBase.epFile[f] = Key(r.rand64())
	}
	zobristBase.sideToMove = Key(r.rand64())
}

// castlingRightKey returns the zobrist constant for a single castling
// right (one of the four CastlingWhiteOO/... bits).
func castlingRightKey(right CastlingRights) Key {
	for i, bit := range castlingBits {
		if bit == right {
			return zobristBase.castling[i]
		}
	}
	return 0
}

// zobristCastling XORs together the constant for each enabled right in
// cr (one constant per right, not one per composite state).
func zobristCastling(cr CastlingRights) Key {
	var k Key
	for _, bit := range castlingBits {
		if cr.Has(bit) {
			k ^= castlingRightKey(bit)
		}
	}
	return k
}

// recomputeZobrist is the from-scratch computation used both to build
// a freshly-parsed position's key and, in tests, to verify the
// incrementally maintained key never drifts.
func recomputeZobrist(p *Position) Key {
	var k Key
	for sq := Square(0); sq < 64; sq++ {
		pc := p.board[sq]
		if pc != PieceNone {
			k ^= zobristBase.pieces[pc][sq]
		}
	}
	if p.sideToMove == Black {
		k ^= zobristBase.sideToMove
	}
	k ^= zobristCastling(p.castlingRights)
	if p.enPassantSquare != SqNone {
		k ^= zobristBase.epFile[p.enPassantSquare.File()]
	}
	return k
}
