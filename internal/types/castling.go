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

import "strings"

// CastlingRights is a 4-bit set of available castling rights.
type CastlingRights uint8

const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = 2
	CastlingBlackOO  CastlingRights = 4
	CastlingBlackOOO CastlingRights = 8
	CastlingWhite                   = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack                   = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                     = CastlingWhite | CastlingBlack

	CastlingRightsLength int = 16
)

// Has reports whether all bits of rhs are set.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the given right(s).
func (cr *CastlingRights) Remove(rhs CastlingRights) {
	*cr &^= rhs
}

// Add sets the given right(s).
func (cr *CastlingRights) Add(rhs CastlingRights) {
	*cr |= rhs
}

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(CastlingWhiteOO) {
		b.WriteByte('K')
	}
	if cr.Has(CastlingWhiteOOO) {
		b.WriteByte('Q')
	}
	if cr.Has(CastlingBlackOO) {
		b.WriteByte('k')
	}
	if cr.Has(CastlingBlackOOO) {
		b.WriteByte('q')
	}
	return b.String()
}
