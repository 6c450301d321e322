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

// Package types holds the core board representation shared by every
// other package: squares, bitboards, pieces, moves and scores.
package types

const (
	SqLength = 64
	MaxDepth = 128
	MaxMoves = 256

	KB = 1024
	MB = KB * KB
	GB = KB * MB

	// GamePhaseMax is the game-phase value of the starting position,
	// used to interpolate between mid game and end game piece-square
	// tables.
	GamePhaseMax = 24
)

// Key is a Zobrist hash key identifying a position, used to index the
// transposition table. Needs all 64 bits for good distribution.
type Key uint64

var initialized bool

func init() {
	if initialized {
		return
	}
	initBb()
	initPosValues()
	initialized = true
}
