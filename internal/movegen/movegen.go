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

// Package movegen generates fully legal moves from an immutable
// Position: leaper/slider attack lookups from internal/attacks, a
// copy-and-simulate legality filter for non-king pieces, and an
// attacked-square mask (computed with the king removed from
// occupancy, to see through it for x-ray checks) that makes king moves
// and castling legal by construction.
package movegen

import (
	"github.com/dkovac/chesscore/internal/attacks"
	. "github.com/dkovac/chesscore/internal/types"

	"github.com/dkovac/chesscore/internal/position"
)

// Mode selects which moves Generate produces.
type Mode int

const (
	// Normal generates every legal move.
	Normal Mode = iota
	// Capture generates only captures, promotions, and en-passant
	// captures — used by quiescence search.
	Capture
)

var promotionPieces = [4]PieceType{Knight, Bishop, Rook, Queen}

// Generate returns every legal move available to the side to move in
// mode.
func Generate(p *position.Position, mode Mode) []Move {
	us := p.SideToMove()
	moves := make([]Move, 0, 48)

	generatePawnMoves(p, us, mode, &moves)
	generateLeaperOrSliderMoves(p, us, Knight, mode, attacks.KnightAttacks, nil, &moves)
	generateLeaperOrSliderMoves(p, us, Bishop, mode, nil, attacks.BishopAttacks, &moves)
	generateLeaperOrSliderMoves(p, us, Rook, mode, nil, attacks.RookAttacks, &moves)
	generateLeaperOrSliderMoves(p, us, Queen, mode, nil, attacks.QueenAttacks, &moves)
	generateKingMoves(p, us, mode, &moves)

	return moves
}

// AttackedSquares returns every square attacked by color `by`, given
// board occupancy occ. Passing an occupancy with a king's square
// removed lets the king's own moves see through it.
func AttackedSquares(p *position.Position, occ Bitboard, by Color) Bitboard {
	var att Bitboard
	p.Bitboard(by, Pawn).ForEach(func(s Square) { att |= attacks.PawnAttacks(by, s) })
	p.Bitboard(by, Knight).ForEach(func(s Square) { att |= attacks.KnightAttacks(s) })
	(p.Bitboard(by, Bishop) | p.Bitboard(by, Queen)).ForEach(func(s Square) { att |= attacks.BishopAttacks(occ, s) })
	(p.Bitboard(by, Rook) | p.Bitboard(by, Queen)).ForEach(func(s Square) { att |= attacks.RookAttacks(occ, s) })
	p.Bitboard(by, King).ForEach(func(s Square) { att |= attacks.KingAttacks(s) })
	return att
}

// IsKingInCheck reports whether side's king currently stands on an
// enemy-attacked square.
func IsKingInCheck(p *position.Position, side Color) bool {
	return AttackedSquares(p, p.OccupiedAll(), side.Flip()).Has(p.KingSquare(side))
}

// appendIfLegal applies m to a scratch copy of p (Position is a plain
// value type, so this is a cheap array copy, not a heap allocation)
// and keeps it only if the mover's own king is safe afterwards.
func appendIfLegal(p *position.Position, us Color, m Move, out *[]Move) {
	tmp := *p
	tmp.ApplyMove(m)
	if !IsKingInCheck(&tmp, us) {
		*out = append(*out, m)
	}
}

func generatePawnMoves(p *position.Position, us Color, mode Mode, out *[]Move) {
	them := us.Flip()
	occAll := p.OccupiedAll()
	enemy := p.Occupied(them)
	promoRank := us.PromotionRank()
	epSquare := p.EnPassantSquare()

	p.Bitboard(us, Pawn).ForEach(func(origin Square) {
		dests := attacks.PawnAttacks(us, origin) & enemy
		if mode == Normal {
			single := attacks.PawnSinglePush(us, origin) &^ occAll
			dests |= single
			if single != BbZero {
				dests |= attacks.PawnDoublePush(us, origin) &^ occAll
			}
		} else {
			dests |= attacks.PawnSinglePush(us, origin) &^ occAll & RankMask(promoRank)
		}
		dests.ForEach(func(dest Square) {
			if dest.Rank() == promoRank {
				for _, pt := range promotionPieces {
					appendIfLegal(p, us, NewPromotionMove(origin, dest, pt), out)
				}
				return
			}
			appendIfLegal(p, us, NewMove(origin, dest), out)
		})

		if epSquare != SqNone && attacks.PawnAttacks(us, origin).Has(epSquare) {
			appendIfLegal(p, us, NewEnPassantMove(origin, epSquare), out)
		}
	})
}

// sliderAttackFn computes a slider's attack set given full occupancy.
type sliderAttackFn func(occ Bitboard, s Square) Bitboard

// generateLeaperOrSliderMoves handles knights, bishops, rooks and
// queens uniformly: exactly one of leaperFn/sliderFn is non-nil.
func generateLeaperOrSliderMoves(p *position.Position, us Color, pt PieceType, mode Mode, leaperFn func(Square) Bitboard, sliderFn sliderAttackFn, out *[]Move) {
	them := us.Flip()
	friendly := p.Occupied(us)
	enemy := p.Occupied(them)
	occAll := p.OccupiedAll()

	p.Bitboard(us, pt).ForEach(func(origin Square) {
		var atk Bitboard
		if leaperFn != nil {
			atk = leaperFn(origin)
		} else {
			atk = sliderFn(occAll, origin)
		}
		var dests Bitboard
		if mode == Capture {
			dests = atk & enemy
		} else {
			dests = atk &^ friendly
		}
		dests.ForEach(func(dest Square) {
			appendIfLegal(p, us, NewMove(origin, dest), out)
		})
	})
}

func generateKingMoves(p *position.Position, us Color, mode Mode, out *[]Move) {
	them := us.Flip()
	origin := p.KingSquare(us)
	friendly := p.Occupied(us)
	enemy := p.Occupied(them)

	occWithoutKing := p.OccupiedAll() &^ origin.Bb()
	attacked := AttackedSquares(p, occWithoutKing, them)

	atk := attacks.KingAttacks(origin)
	var dests Bitboard
	if mode == Capture {
		dests = atk & enemy
	} else {
		dests = atk &^ friendly
	}
	dests &^= attacked
	dests.ForEach(func(dest Square) {
		*out = append(*out, NewMove(origin, dest))
	})

	if mode == Capture || attacked.Has(origin) {
		return
	}

	if us == White {
		tryCastle(p, CastlingWhiteOO, SqE1, SqG1, []Square{SqF1, SqG1}, attacked, out)
		tryCastle(p, CastlingWhiteOOO, SqE1, SqC1, []Square{SqD1, SqC1, SqB1}, attacked, out)
	} else {
		tryCastle(p, CastlingBlackOO, SqE8, SqG8, []Square{SqF8, SqG8}, attacked, out)
		tryCastle(p, CastlingBlackOOO, SqE8, SqC8, []Square{SqD8, SqC8, SqB8}, attacked, out)
	}
}

// tryCastle appends a castling move if the right is held, every
// between-square is empty, and the king's landing/traversal squares
// (the first two entries of between — queenside's b-file square is
// excluded from the attack check) aren't attacked.
func tryCastle(p *position.Position, right CastlingRights, kingFrom, kingTo Square, between []Square, attacked Bitboard, out *[]Move) {
	if !p.CastlingRights().Has(right) {
		return
	}
	for _, sq := range between {
		if p.PieceAt(sq) != PieceNone {
			return
		}
	}
	kingPath := between[:2]
	for _, sq := range kingPath {
		if attacked.Has(sq) {
			return
		}
	}
	*out = append(*out, NewCastlingMove(kingFrom, kingTo))
}

// IsLegalMove generates side-to-move's legal moves and returns the one
// loosely matching (origin, dest, promotion), enriched with its
// correct SpecialFlag, for callers (UIs, opening-book replay) that
// only know bare coordinates.
func IsLegalMove(p *position.Position, origin, dest Square, promotion PieceType) (Move, bool) {
	var candidate Move
	if promotion != PtNone {
		candidate = NewPromotionMove(origin, dest, promotion)
	} else {
		candidate = NewMove(origin, dest)
	}
	for _, m := range Generate(p, Normal) {
		if m.LooseEquals(candidate) {
			return m, true
		}
	}
	return MoveNone, false
}
