/*
 * mateguess - a bitboard chess engine core in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 mateguess contributors
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

package evaluator

import (
	. "github.com/kopp-eigen/mateguess/internal/config"
	. "github.com/kopp-eigen/mateguess/internal/types"
)

func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// look on cache table
	if Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	// no cache hit - calculate from scratch. Pawns are the only piece
	// whose static placement is worth caching on its own key since the
	// pawn skeleton changes far less often than the rest of the board.
	tmpScore.MidGameValue = int16(e.position.PiecesBb(White, Pawn).PopCount() - e.position.PiecesBb(Black, Pawn).PopCount())
	tmpScore.EndGameValue = tmpScore.MidGameValue

	white := e.pawnStructureScore(White)
	tmpScore.MidGameValue += white.MidGameValue
	tmpScore.EndGameValue += white.EndGameValue

	black := e.pawnStructureScore(Black)
	tmpScore.MidGameValue -= black.MidGameValue
	tmpScore.EndGameValue -= black.EndGameValue

	// store in cache
	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

// pawnStructureScore walks every pawn of the given color and scores its
// structural qualities (isolation, doubling, passed status, blockage,
// phalanx and support) from the view of that color.
func (e *Evaluator) pawnStructureScore(us Color) Score {
	var s Score

	ourPawns := e.position.PiecesBb(us, Pawn)
	theirPawns := e.position.PiecesBb(us.Flip(), Pawn)
	occupied := e.position.OccupiedAll()

	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()

		// isolated - no friendly pawn on a neighbouring file
		if sq.NeighbourFilesMask()&ourPawns == BbZero {
			s.MidGameValue += Settings.Eval.PawnIsolatedMidMalus
			s.EndGameValue += Settings.Eval.PawnIsolatedEndMalus
		}

		// doubled - another friendly pawn behind this one on the same file.
		// Every pawn with a friendly pawn behind it is counted, so the
		// rearmost pawn of a file is not.
		behindMask := sq.RanksSouthMask()
		if us == Black {
			behindMask = sq.RanksNorthMask()
		}
		if sq.FileOf().Bb()&behindMask&ourPawns != BbZero {
			s.MidGameValue += Settings.Eval.PawnDoubledMidMalus
			s.EndGameValue += Settings.Eval.PawnDoubledEndMalus
		}

		// passed - no enemy pawn can ever stop or capture this pawn
		if sq.PassedPawnMask(us)&theirPawns == BbZero {
			s.MidGameValue += Settings.Eval.PawnPassedMidBonus
			s.EndGameValue += Settings.Eval.PawnPassedEndBonus
		}

		// blocked - the square directly ahead is occupied
		if ShiftBitboard(sq.Bb(), us.MoveDirection())&occupied != BbZero {
			s.MidGameValue += Settings.Eval.PawnBlockedMidMalus
			s.EndGameValue += Settings.Eval.PawnBlockedEndMalus
		}

		// phalanx - a friendly pawn directly beside it on the same rank
		if phalanxMask(sq)&ourPawns != BbZero {
			s.MidGameValue += Settings.Eval.PawnPhalanxMidBonus
			s.EndGameValue += Settings.Eval.PawnPhalanxEndBonus
		}

		// supported - defended by a friendly pawn
		if GetPawnAttacks(us.Flip(), sq)&ourPawns != BbZero {
			s.MidGameValue += Settings.Eval.PawnSupportedMidBonus
			s.EndGameValue += Settings.Eval.PawnSupportedEndBonus
		}
	}

	return s
}

// phalanxMask returns the squares east and west of sq on the same rank.
func phalanxMask(sq Square) Bitboard {
	var mask Bitboard
	if sq.FileOf() != FileA {
		mask |= (sq - 1).Bb()
	}
	if sq.FileOf() != FileH {
		mask |= (sq + 1).Bb()
	}
	return mask
}
