//
// mateguess - a bitboard chess engine core in Go
//
// MIT License
//
// Copyright (c) 2020-2026 mateguess contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"fmt"
	"strings"
)

// MoveKind tags the eight distinct ways a move can be special-cased
// during make/undo: everything that is not a plain piece displacement
// or an ordinary capture gets its own tag rather than a side channel
// of flag bits.
type MoveKind uint8

const (
	Normal MoveKind = iota
	ShortCastle
	LongCastle
	EnPassant
	PromoteKnight
	PromoteBishop
	PromoteRook
	PromoteQueen
)

func (mk MoveKind) IsPromotion() bool {
	return mk >= PromoteKnight && mk <= PromoteQueen
}

// PromotionType returns the piece type a promotion move produces.
// Only meaningful when IsPromotion reports true.
func (mk MoveKind) PromotionType() PieceType {
	switch mk {
	case PromoteKnight:
		return Knight
	case PromoteBishop:
		return Bishop
	case PromoteRook:
		return Rook
	case PromoteQueen:
		return Queen
	default:
		return PtNone
	}
}

func (mk MoveKind) String() string {
	switch mk {
	case Normal:
		return "normal"
	case ShortCastle:
		return "O-O"
	case LongCastle:
		return "O-O-O"
	case EnPassant:
		return "en passant"
	case PromoteKnight:
		return "promotion(N)"
	case PromoteBishop:
		return "promotion(B)"
	case PromoteRook:
		return "promotion(R)"
	case PromoteQueen:
		return "promotion(Q)"
	default:
		return "invalid"
	}
}

// Move is a single pseudo-legal or legal move. Score is a move-ordering
// hint assigned by search or quiescence; it carries no semantic weight
// and is ignored by Equals.
type Move struct {
	From  Square
	To    Square
	Kind  MoveKind
	Score int32
}

// MoveNone has both squares set to SqNone and is used as a sentinel for
// "no move found". It is not the zero Move.
var MoveNone = Move{From: SqNone, To: SqNone, Kind: Normal}

// Castling and Promotion are coarse move-type tags for callers that only
// care about a move's family rather than its precise MoveKind. They are
// never stored in a Move's Kind field directly; CreateMove/CreateMoveValue
// resolve them into the concrete MoveKind (ShortCastle/LongCastle or one
// of the four PromoteX kinds) before building the Move.
const (
	Castling  MoveKind = 100 + iota
	Promotion
)

// MoveType returns the coarse classification of m: Castling for either
// castling move, Promotion for any promotion, or m.Kind unchanged
// otherwise.
func (m Move) MoveType() MoveKind {
	switch {
	case m.IsCastle():
		return Castling
	case m.Kind.IsPromotion():
		return Promotion
	default:
		return m.Kind
	}
}

func resolveCastleKind(to Square) MoveKind {
	if to == SqG1 || to == SqG8 {
		return ShortCastle
	}
	return LongCastle
}

func resolvePromotionKind(pt PieceType) MoveKind {
	switch pt {
	case Knight:
		return PromoteKnight
	case Bishop:
		return PromoteBishop
	case Rook:
		return PromoteRook
	default:
		return PromoteQueen
	}
}

// CreateMove builds a Move from a from/to square pair and either a
// concrete MoveKind or the coarse Castling/Promotion tag, resolving the
// latter against the to-square (castling) or promotionType (promotion).
func CreateMove(from, to Square, kind MoveKind, promotionType PieceType) Move {
	switch kind {
	case Castling:
		kind = resolveCastleKind(to)
	case Promotion:
		kind = resolvePromotionKind(promotionType)
	}
	return Move{From: from, To: to, Kind: kind}
}

// CreateMoveValue is CreateMove plus a move-ordering score, as produced
// by the move generator for sorting.
func CreateMoveValue(from, to Square, kind MoveKind, promotionType PieceType, value Value) Move {
	m := CreateMove(from, to, kind, promotionType)
	m.Score = int32(value)
	return m
}

// SetValue returns a copy of m with Score set to v, used by the move
// generator and search to (re)prioritize a move for ordering.
func (m Move) SetValue(v Value) Move {
	m.Score = int32(v)
	return m
}

func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid() && m.From != m.To
}

// IsCastle reports whether m castles either side.
func (m Move) IsCastle() bool {
	return m.Kind == ShortCastle || m.Kind == LongCastle
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind.IsPromotion()
}

// PromotionType returns the piece type m promotes to, or PtNone if m
// is not a promotion.
func (m Move) PromotionType() PieceType {
	return m.Kind.PromotionType()
}

// Equals compares moves ignoring Score, since Score is an ordering
// hint rather than part of a move's identity.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Kind == o.Kind
}

// WithoutScore returns a copy of m with Score reset to zero, for storing
// a move (as a PV/killer move or a TT lookup result) independent of
// whatever ordering value it carried during generation.
func (m Move) WithoutScore() Move {
	m.Score = 0
	return m
}

func (m Move) String() string {
	if !m.IsValid() {
		return "no move"
	}
	return fmt.Sprintf("%s%s", m.From.String(), m.To.String())
}

// StringUci renders the move the way UCI expects: from-square,
// to-square, and a lower-case promotion letter if any.
func (m Move) StringUci() string {
	if !m.IsValid() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Kind.IsPromotion() {
		s += strings.ToLower(m.Kind.PromotionType().Char())
	}
	return s
}
