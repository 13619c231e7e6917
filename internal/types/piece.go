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

package types

// PieceType identifies a figure irrespective of color.
type PieceType uint8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength int = 7
)

var pieceTypeChars = ".PNBRQK"

func (pt PieceType) String() string {
	return string(pieceTypeChars[pt])
}

// ValueOf returns the material value in centipawns (king excluded,
// i.e. 0, which callers must never sum into material).
func (pt PieceType) ValueOf() int {
	switch pt {
	case Pawn:
		return 100
	case Knight:
		return 300
	case Bishop:
		return 320
	case Rook:
		return 500
	case Queen:
		return 900
	default:
		return 0
	}
}

// Piece is a colored figure: PieceNone, or one of the 12 (color, type) pairs.
type Piece uint8

const (
	PieceNone Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceLength int = 13
)

// MakePiece builds a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	if c == White {
		return Piece(pt)
	}
	return Piece(uint8(pt) + 6)
}

// ColorOf returns the color of a non-empty piece.
func (p Piece) ColorOf() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// TypeOf returns the figure of the piece, PtNone for PieceNone.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	if p >= BlackPawn {
		return PieceType(uint8(p) - 6)
	}
	return PieceType(p)
}

var pieceChars = ".PNBRQKpnbrqk"

// Char returns the FEN character for the piece ('.' for PieceNone).
func (p Piece) Char() string {
	return string(pieceChars[p])
}

func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar maps a FEN character to a Piece, or PieceNone if the
// character is not a recognized piece letter.
func PieceFromChar(c byte) Piece {
	for i, ch := range pieceChars {
		if i == 0 {
			continue
		}
		if byte(ch) == c {
			return Piece(i)
		}
	}
	return PieceNone
}
