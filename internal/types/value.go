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

	"github.com/kopp-eigen/mateguess/internal/util"
)

// Value is a centipawn score, signed from the perspective of the side
// to move unless otherwise noted. It is wide enough to hold the mate
// sentinel alongside ordinary material scores.
type Value int32

const (
	ValueZero Value = 0
	ValueDraw Value = 0

	// ValueInfinite bounds the alpha-beta window; no reachable score
	// equals it.
	ValueInfinite Value = 2_000_000
	ValueNA       Value = -ValueInfinite - 1

	// ValueMate is the fixed sentinel returned for a checkmated
	// position, distinct from any reachable material evaluation.
	ValueMate Value = 1_000_000

	// ValueMateThreshold marks scores that are "mate in N" rather than
	// a material evaluation: anything within MaxDepth plies of
	// ValueMate is treated as forced mate for move ordering and
	// reporting purposes.
	ValueMateThreshold Value = ValueMate - Value(MaxDepth)

	// ValueCheckMate is the value reported for a position the side to
	// move has been checkmated in, ply-adjusted by the search so that
	// shorter mates score higher than longer ones.
	ValueCheckMate Value = ValueMate

	// ValueMin and ValueMax bound the initial full-width alpha-beta
	// search window.
	ValueMin Value = -ValueInfinite
	ValueMax Value = ValueInfinite
)

// IsValid reports whether v lies within the representable score range.
func (v Value) IsValid() bool {
	return v >= -ValueInfinite && v <= ValueInfinite
}

// IsMateValue reports whether v represents a forced mate rather than
// a material evaluation.
func (v Value) IsMateValue() bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs >= ValueMateThreshold && abs <= ValueMate
}

// MateIn returns the number of plies to mate encoded in v. Only
// meaningful when IsMateValue reports true.
func (v Value) MateIn() int {
	if v > 0 {
		return int(ValueMate - v)
	}
	return -int(ValueMate + v)
}

func (v Value) String() string {
	if v == ValueNA {
		return "N/A"
	}
	if v.IsMateValue() {
		plies := v.MateIn()
		moves := util.Max((plies+1)/2, 1)
		if v < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %d", moves)
	}
	return fmt.Sprintf("cp %d", int(v))
}
