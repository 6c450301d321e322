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

import "strings"

// Piece packs a Color and a PieceType into a single value, used as an
// index into piece-square tables and for FEN character conversion.
// PieceNone represents an empty square.
type Piece int8

const (
	PieceNone Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 9
	BlackKnight Piece = 10
	BlackBishop Piece = 11
	BlackRook   Piece = 12
	BlackQueen  Piece = 13
	BlackKing   Piece = 14

	PieceLength Piece = 16
)

// MakePiece builds the Piece for a color and piece type. Returns
// PieceNone if pt is PtNone.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece((int(c) << 3) + int(pt))
}

func (p Piece) ColorOf() Color {
	if p == PieceNone {
		return NoColor
	}
	return Color(p >> 3)
}

func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

func (p Piece) ValueOf() Value {
	return pieceTypeValue[p.TypeOf()]
}

// pieceToString lists FEN characters in Piece numeric order; unused slots
// (7, 8, 15) are placeholders that are never looked up.
const pieceToString = " PNBRQK--pnbrqk-"

// PieceFromChar returns the Piece for a single FEN piece letter, or
// PieceNone if s is not exactly one recognised letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	index := strings.Index(pieceToString, s)
	if index == -1 {
		return PieceNone
	}
	return Piece(index)
}

func (p Piece) String() string {
	return string(pieceToString[p])
}

// Char returns the single FEN letter for p, identical to String.
func (p Piece) Char() string {
	return string(pieceToString[p])
}

var pieceToUnicode = []string{" ", "♙", "♘", "♗", "♖", "♕", "♔", "-", " ", "♟", "♞", "♝", "♜", "♛", "♚", "-"}

// UniChar returns a unicode glyph for the piece, used by diagnostic
// board dumps.
func (p Piece) UniChar() string {
	return pieceToUnicode[p]
}
