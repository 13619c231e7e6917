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

// Move is a 16-bit packed move record:
//  bits 0-5:   origin square
//  bits 6-11:  destination square
//  bits 12-13: promotion piece type (0=N,1=B,2=R,3=Q)
//  bits 14-15: special flag (0=none,1=promotion,2=en passant,3=castling)
// MoveNone (all zero bits) is reserved as a sentinel and is never a
// legal move, since no legal move has origin==destination==0 with
// flag none on a real board (a8 is never both origin and destination).
type Move uint16

// SpecialFlag identifies which of the four special move kinds a Move encodes.
type SpecialFlag uint8

const (
	FlagNone SpecialFlag = iota
	FlagPromotion
	FlagEnPassant
	FlagCastling
)

const (
	moveOriginMask Move = 0x3F
	moveDestShift       = 6
	moveDestMask   Move = 0x3F << moveDestShift
	movePromShift       = 12
	movePromMask   Move = 0x3 << movePromShift
	moveFlagShift       = 14
	moveFlagMask   Move = 0x3 << moveFlagShift
)

// MoveNone is the sentinel "no move" value.
const MoveNone Move = 0

// promoPieceOrder maps the 2-bit promotion code to a PieceType.
var promoPieceOrder = [4]PieceType{Knight, Bishop, Rook, Queen}

// promoPieceCode is the inverse of promoPieceOrder.
func promoPieceCode(pt PieceType) Move {
	switch pt {
	case Knight:
		return 0
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default:
		return 3
	}
}

// NewMove packs a plain (non-special) move.
func NewMove(origin, dest Square) Move {
	return Move(origin) | Move(dest)<<moveDestShift
}

// NewPromotionMove packs a promotion move.
func NewPromotionMove(origin, dest Square, promo PieceType) Move {
	return Move(origin) | Move(dest)<<moveDestShift |
		promoPieceCode(promo)<<movePromShift | Move(FlagPromotion)<<moveFlagShift
}

// NewEnPassantMove packs an en-passant capture move.
func NewEnPassantMove(origin, dest Square) Move {
	return Move(origin) | Move(dest)<<moveDestShift | Move(FlagEnPassant)<<moveFlagShift
}

// NewCastlingMove packs a castling move (origin/dest are the king's squares).
func NewCastlingMove(origin, dest Square) Move {
	return Move(origin) | Move(dest)<<moveDestShift | Move(FlagCastling)<<moveFlagShift
}

// Origin returns the move's origin square.
func (m Move) Origin() Square {
	return Square(m & moveOriginMask)
}

// Destination returns the move's destination square.
func (m Move) Destination() Square {
	return Square((m & moveDestMask) >> moveDestShift)
}

// Promotion returns the promotion piece type. Only meaningful when
// Flag() == FlagPromotion.
func (m Move) Promotion() PieceType {
	return promoPieceOrder[(m&movePromMask)>>movePromShift]
}

// Flag returns the move's special flag.
func (m Move) Flag() SpecialFlag {
	return SpecialFlag((m & moveFlagMask) >> moveFlagShift)
}

// IsNone reports whether m is the MoveNone sentinel.
func (m Move) IsNone() bool {
	return m == MoveNone
}

// Equals is strict equality: all fields, including flag and promotion,
// must match.
func (m Move) Equals(other Move) bool {
	return m == other
}

// LooseEquals compares only origin and destination, except when either
// side is a promotion move, in which case promotion piece and flag
// must also match, so each of the four promotion choices remains
// distinguishable when matching a caller-supplied move against a
// pseudo-legal candidate.
func (m Move) LooseEquals(other Move) bool {
	if m.Origin() != other.Origin() || m.Destination() != other.Destination() {
		return false
	}
	if m.Flag() == FlagPromotion || other.Flag() == FlagPromotion {
		return m.Flag() == other.Flag() && m.Promotion() == other.Promotion()
	}
	return true
}

func (m Move) String() string {
	if m.IsNone() {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.Origin().String())
	sb.WriteString(m.Destination().String())
	if m.Flag() == FlagPromotion {
		sb.WriteString(strings.ToLower(m.Promotion().String()))
	}
	return sb.String()
}
