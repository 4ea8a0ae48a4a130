package ttt

import "errors"

type PosType uint8
type Mark uint8

const (
	None   Mark = 0
	Cross  Mark = 1
	Circle Mark = 2
)

var (
	ErrIllegalPosition = errors.New("ttt: illegal position")
	ErrInvalidNotation = errors.New("ttt: invalid notation")
)

// Opponent returns the other player's mark, None stays None
func (m Mark) Opponent() Mark {
	switch m {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

// Valid reports whether m is a player's mark
func (m Mark) Valid() bool {
	return m == Cross || m == Circle
}

func (m Mark) String() string {
	switch m {
	case Cross:
		return "x"
	case Circle:
		return "o"
	}
	return "."
}

// ParseMark accepts 'x' or 'o' in either case
func ParseMark(s string) (Mark, error) {
	switch s {
	case "x", "X":
		return Cross, nil
	case "o", "O":
		return Circle, nil
	}
	return None, errors.New("ttt: unknown mark " + s)
}
