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

// Package types holds the primitive value types shared across the
// engine: colors, pieces, squares, bitboards, castling rights and
// packed moves. Nothing in this package depends on position or search
// state; everything here is either a constant table or a pure function.
package types

import "fmt"

// Color identifies a chess side.
type Color uint8

const (
	White Color = iota
	Black
	ColorLength int = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// pawnPushDirection is the direction a pawn of this color advances.
var pawnPushDirection = [2]Direction{North, South}

// PawnPushDirection returns North for White, South for Black.
func (c Color) PawnPushDirection() Direction {
	return pawnPushDirection[c]
}

var pawnStartRank = [2]Rank{Rank2, Rank7}

// PawnStartRank is the rank pawns of this color begin the game on.
func (c Color) PawnStartRank() Rank {
	return pawnStartRank[c]
}

var promotionRank = [2]Rank{Rank8, Rank1}

// PromotionRank is the rank on which a pawn of this color promotes.
func (c Color) PromotionRank() Rank {
	return promotionRank[c]
}
