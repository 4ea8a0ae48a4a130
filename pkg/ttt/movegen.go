package ttt

import "math/bits"

// GenerateMoves lists empty cells in ascending index order
func (b Board) GenerateMoves() *MoveList {
	movelist := NewMoveList()

	free := uint(_fullBitboard ^ (b.bitboard(Cross) | b.bitboard(Circle)))
	for free != 0 {
		movelist.AppendMove(PosType(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}
