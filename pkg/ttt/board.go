package ttt

import "fmt"

const (
	BoardSize     = 9
	_fullBitboard = 0b111111111
)

// Board is a plain value: assigning or passing it copies every cell,
// so a search may freely mutate its own copy.
type Board [BoardSize]Mark

// The 8 lines in fixed order: rows, columns, diagonals
var _lines = [8][3]PosType{
	{A3, B3, C3}, {A2, B2, C2}, {A1, B1, C1},
	{A3, A2, A1}, {B3, B2, B1}, {C3, C2, C1},
	{A3, B2, C1}, {C3, B2, A1},
}

// horizontal, vertical and diagonal patterns as bitboards, bit i is cell i
var _winningBitboardPatterns = func() (patterns [8]uint16) {
	for i, line := range _lines {
		for _, pos := range line {
			patterns[i] |= 1 << pos
		}
	}
	return patterns
}()

// Lines returns a copy of the winning lines table
func Lines() [8][3]PosType {
	return _lines
}

func NewBoard() Board {
	return Board{}
}

// BoardFrom builds a board from up to 9 marks, missing cells are empty
func BoardFrom(marks ...Mark) Board {
	var b Board
	copy(b[:], marks)
	return b
}

func (b Board) At(pos PosType) Mark {
	return b[pos]
}

func (b *Board) Set(pos PosType, m Mark) {
	b[pos] = m
}

func (b *Board) Clear(pos PosType) {
	b[pos] = None
}

func (b Board) IsEmpty(pos PosType) bool {
	return b[pos] == None
}

// Full reports whether no empty cell is left
func (b Board) Full() bool {
	return b.bitboard(Cross)|b.bitboard(Circle) == _fullBitboard
}

// Count the cells holding given mark
func (b Board) Count(m Mark) int {
	n := 0
	for _, cell := range b {
		if cell == m {
			n++
		}
	}
	return n
}

// Empty cells count
func (b Board) Free() int {
	return b.Count(None)
}

// Validate rejects boards no legal game can reach
func (b Board) Validate() error {
	for pos, cell := range b {
		if cell != None && !cell.Valid() {
			return fmt.Errorf("%w: cell %d holds unknown mark %d", ErrIllegalPosition, pos, cell)
		}
	}

	diff := b.Count(Cross) - b.Count(Circle)
	if diff > 1 || diff < -1 {
		return fmt.Errorf("%w: mark counts differ by %d", ErrIllegalPosition, diff)
	}

	if w := b.Winners(); len(w) > 1 {
		return fmt.Errorf("%w: both players completed a line", ErrIllegalPosition)
	}
	return nil
}

func (b Board) bitboard(m Mark) uint16 {
	var bb uint16
	for pos, cell := range b {
		if cell == m {
			bb |= 1 << pos
		}
	}
	return bb
}

func (b Board) String() string {
	return b.Notation()
}
