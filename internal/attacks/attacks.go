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

// Package attacks precomputes the leaper attack tables (pawn, knight,
// king) and the magic-bitboard lookup tables for sliding pieces
// (bishop, rook, queen). Every table here is immutable process-wide
// state computed once at package init.
//
// The magic-bitboard technique (mask/magic/shift per square, found by
// brute-force search with a sparse xorshift64* generator) is adapted
// from the well-known Stockfish approach. Square numbering is a8=0 ..
// h1=63.
package attacks

import (
	. "github.com/dkovac/chesscore/internal/types"
)

var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacksT  [2][64]Bitboard
	pawnPushT     [2][64]Bitboard
	pawnDoubleT   [2][64]Bitboard
	pawnEpRankBb  [2]Bitboard
)

var bishopMagics [64]magic
var rookMagics [64]magic

var bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}
var rookDirs = [4]Direction{North, South, East, West}

func init() {
	initLeapers()
	initMagics(&bishopMagics, bishopDirs)
	initMagics(&rookMagics, rookDirs)
}

func initLeapers() {
	knightDeltas := []Direction{
		Direction(North) + Direction(North) + East, Direction(North) + Direction(North) + West,
		Direction(South) + Direction(South) + East, Direction(South) + Direction(South) + West,
		Direction(East) + Direction(East) + North, Direction(East) + Direction(East) + South,
		Direction(West) + Direction(West) + North, Direction(West) + Direction(West) + South,
	}
	kingDeltas := []Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

	for s := Square(0); s < 64; s++ {
		var kn, kg Bitboard
		for _, d := range knightDeltas {
			if t := knightStep(s, d); t != SqNone {
				kn.Push(t)
			}
		}
		for _, d := range kingDeltas {
			if t := s.To(d); t != SqNone {
				kg.Push(t)
			}
		}
		knightAttacks[s] = kn
		kingAttacks[s] = kg

		// pawn attacks: diagonal captures, empty on the rank a pawn of
		// that color can never occupy (rank 8 for white, rank 1 for black).
		if s.Rank() != Rank8 {
			var wa Bitboard
			if t := s.To(Northeast); t != SqNone {
				wa.Push(t)
			}
			if t := s.To(Northwest); t != SqNone {
				wa.Push(t)
			}
			pawnAttacksT[White][s] = wa
		}
		if s.Rank() != Rank1 {
			var ba Bitboard
			if t := s.To(Southeast); t != SqNone {
				ba.Push(t)
			}
			if t := s.To(Southwest); t != SqNone {
				ba.Push(t)
			}
			pawnAttacksT[Black][s] = ba
		}

		// single push: empty on/after the promotion rank.
		if s.Rank() != Rank8 {
			pawnPushT[White][s] = s.To(North).Bb()
		}
		if s.Rank() != Rank1 {
			pawnPushT[Black][s] = s.To(South).Bb()
		}

		// double push: only from each side's starting rank.
		if s.Rank() == Rank2 {
			pawnDoubleT[White][s] = s.To(North).To(North).Bb()
		}
		if s.Rank() == Rank7 {
			pawnDoubleT[Black][s] = s.To(South).To(South).Bb()
		}
	}

	pawnEpRankBb[White] = RankMask(Rank5)
	pawnEpRankBb[Black] = RankMask(Rank4)
}

// knightStep guards against the file-wrap a plain two-direction
// composition would otherwise allow (e.g. North+North+East wrapping
// from file H to file A).
func knightStep(s Square, d Direction) Square {
	switch d {
	case Direction(North) + Direction(North) + East, Direction(South) + Direction(South) + East:
		if s.File() == FileH {
			return SqNone
		}
	case Direction(North) + Direction(North) + West, Direction(South) + Direction(South) + West:
		if s.File() == FileA {
			return SqNone
		}
	case Direction(East) + Direction(East) + North, Direction(East) + Direction(East) + South:
		if s.File() >= FileG {
			return SqNone
		}
	case Direction(West) + Direction(West) + North, Direction(West) + Direction(West) + South:
		if s.File() <= FileB {
			return SqNone
		}
	}
	n := int(s) + int(d)
	if n < 0 || n >= 64 {
		return SqNone
	}
	return Square(n)
}

// KnightAttacks returns the knight attack set from s.
func KnightAttacks(s Square) Bitboard { return knightAttacks[s] }

// KingAttacks returns the king attack set from s (one step, no castling).
func KingAttacks(s Square) Bitboard { return kingAttacks[s] }

// PawnAttacks returns the diagonal-capture attack set of a pawn of
// color c on s.
func PawnAttacks(c Color, s Square) Bitboard { return pawnAttacksT[c][s] }

// PawnSinglePush returns the single-push destination (empty bitboard
// if s is on/after the promotion rank).
func PawnSinglePush(c Color, s Square) Bitboard { return pawnPushT[c][s] }

// PawnDoublePush returns the double-push destination, non-zero only
// for pawns on their starting rank.
func PawnDoublePush(c Color, s Square) Bitboard { return pawnDoubleT[c][s] }

// PawnEpCaptureRank is the rank from which a pawn of color c can
// execute an en-passant capture.
func PawnEpCaptureRank(c Color) Bitboard { return pawnEpRankBb[c] }

// BishopAttacks returns bishop attacks from s given full board occupancy.
func BishopAttacks(occ Bitboard, s Square) Bitboard {
	return bishopMagics[s].attacksFor(occ)
}

// RookAttacks returns rook attacks from s given full board occupancy.
func RookAttacks(occ Bitboard, s Square) Bitboard {
	return rookMagics[s].attacksFor(occ)
}

// QueenAttacks returns queen attacks from s given full board occupancy.
func QueenAttacks(occ Bitboard, s Square) Bitboard {
	return BishopAttacks(occ, s) | RookAttacks(occ, s)
}
