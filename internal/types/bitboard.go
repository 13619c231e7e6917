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

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per Square index.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// fileMask/rankMask are indexed by File/Rank-1 and precomputed at init.
var fileMask [8]Bitboard
var rankMask [8]Bitboard

func init() {
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb |= SquareOf(f, r).Bb()
		}
		fileMask[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb |= SquareOf(f, r).Bb()
		}
		rankMask[r-1] = bb
	}
}

// FileMask returns all squares on file f.
func FileMask(f File) Bitboard { return fileMask[f] }

// RankMask returns all squares on rank r.
func RankMask(r Rank) Bitboard { return rankMask[r-1] }

// Bb returns the single-bit bitboard for this square.
func (s Square) Bb() Bitboard {
	if !s.IsValid() {
		return BbZero
	}
	return Bitboard(1) << uint(s)
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bb() != 0
}

// Push sets the square's bit.
func (b *Bitboard) Push(s Square) {
	*b |= s.Bb()
}

// Pop clears the square's bit.
func (b *Bitboard) Pop(s Square) {
	*b &^= s.Bb()
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the lowest-index set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb clears and returns the lowest-index set square.
func (b *Bitboard) PopLsb() Square {
	s := b.Lsb()
	if s != SqNone {
		b.Pop(s)
	}
	return s
}

// ForEach calls fn once per set square, from lowest index to highest.
func (b Bitboard) ForEach(fn func(Square)) {
	bb := b
	for bb != 0 {
		fn(bb.PopLsb())
	}
}

// Shift moves every bit one step in direction d, discarding bits that
// would wrap around a board edge.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b >> 8
	case South:
		return b << 8
	case East:
		return (b &^ fileMask[FileH]) << 1
	case West:
		return (b &^ fileMask[FileA]) >> 1
	case Northeast:
		return (b &^ fileMask[FileH]) >> 7
	case Northwest:
		return (b &^ fileMask[FileA]) >> 9
	case Southeast:
		return (b &^ fileMask[FileH]) << 9
	case Southwest:
		return (b &^ fileMask[FileA]) << 7
	}
	return b
}

func (b Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
