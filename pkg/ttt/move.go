package ttt

import "fmt"

// Enum for the squares, row major from the top left corner
const (
	A3 PosType = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

const (
	PosIllegal PosType = 255
	Center     PosType = B2
)

func (p PosType) String() string {
	if p > C1 {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+byte(p%3), 3-int(p/3))
}

// Valid reports whether p is one of the 9 cells
func (p PosType) Valid() bool {
	return p <= C1
}

type MoveList struct {
	Moves [9]PosType
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv PosType) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

// Slice of the generated moves, shares memory with the list
func (ml *MoveList) Slice() []PosType {
	return ml.Moves[:ml.Size]
}

func (ml *MoveList) Contains(mv PosType) bool {
	for _, m := range ml.Slice() {
		if m == mv {
			return true
		}
	}
	return false
}
