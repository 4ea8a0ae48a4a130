package ttt

import (
	"fmt"
	"strings"
)

const StartingPosition string = "3/3/3"

// string notation for the board, much like the FEN representation of a
// chessboard: rows from the top separated by '/', 'x' and 'o' for the
// marks and a digit for a run of empty cells.
//
// For example:
//
//	x | x |
//	----------
//	o | o |
//	----------
//	  |   |
//
// is written as xx1/oo1/3
func (b Board) Notation() string {
	builder := strings.Builder{}

	for row := 0; row < 3; row++ {
		counter := 0
		for col := 0; col < 3; col++ {
			switch m := b[row*3+col]; m {
			case Cross, Circle:
				if counter > 0 {
					builder.WriteByte('0' + byte(counter))
					counter = 0
				}
				builder.WriteString(m.String())
			default:
				counter++
			}
		}

		if counter > 0 {
			builder.WriteByte('0' + byte(counter))
		}

		if row != 2 {
			builder.WriteByte('/')
		}
	}

	return builder.String()
}

// FromNotation parses the board notation, '.' is accepted as a single
// empty cell and "startpos" as the empty board
func FromNotation(notation string) (Board, error) {
	var b Board

	if notation == "startpos" {
		notation = StartingPosition
	}

	rows := strings.Split(strings.TrimSpace(notation), "/")
	if len(rows) != 3 {
		return b, fmt.Errorf("%w: expected 3 rows, got %d in %q", ErrInvalidNotation, len(rows), notation)
	}

	for r, row := range rows {
		col := 0
		for _, c := range row {
			if col >= 3 {
				return b, fmt.Errorf("%w: row %d is too long in %q", ErrInvalidNotation, r+1, notation)
			}
			switch c {
			case 'x', 'X':
				b[r*3+col] = Cross
				col++
			case 'o', 'O':
				b[r*3+col] = Circle
				col++
			case '.':
				col++
			case '1', '2', '3':
				col += int(c - '0')
			default:
				return b, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidNotation, c, notation)
			}
		}
		if col != 3 {
			return b, fmt.Errorf("%w: row %d has %d cells in %q", ErrInvalidNotation, r+1, col, notation)
		}
	}

	return b, nil
}

// MustFromNotation is like FromNotation but panics on error,
// meant for constant positions
func MustFromNotation(notation string) Board {
	b, err := FromNotation(notation)
	if err != nil {
		panic(err)
	}
	return b
}
