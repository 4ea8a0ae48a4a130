package ttt

type State int

const (
	Ongoing State = iota
	Won
	Draw
)

func (s State) String() string {
	switch s {
	case Won:
		return "won"
	case Draw:
		return "draw"
	}
	return "ongoing"
}

// Termination of a board, Winner is set only when State == Won
type Termination struct {
	State  State
	Winner Mark
}

func (t Termination) Terminal() bool {
	return t.State != Ongoing
}

// WonBy reports whether the game was won by given mark
func (t Termination) WonBy(m Mark) bool {
	return t.State == Won && t.Winner == m
}

func (t Termination) String() string {
	if t.State == Won {
		return t.Winner.String() + " won"
	}
	return t.State.String()
}

// Classify checks the lines in fixed order (rows, columns, diagonals),
// then whether the board is filled. A board from a legal game has at most
// one winner, so the order never changes the result.
func (b Board) Classify() Termination {
	crossbb := b.bitboard(Cross)
	circlebb := b.bitboard(Circle)

	for i := range 8 {
		if crossbb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			return Termination{State: Won, Winner: Cross}
		}
		if circlebb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			return Termination{State: Won, Winner: Circle}
		}
	}

	if (crossbb | circlebb) == _fullBitboard {
		return Termination{State: Draw}
	}
	return Termination{State: Ongoing}
}

// Winners lists every mark holding a complete line
func (b Board) Winners() []Mark {
	winners := make([]Mark, 0, 1)
	for _, m := range [...]Mark{Cross, Circle} {
		bb := b.bitboard(m)
		for i := range 8 {
			if bb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
				winners = append(winners, m)
				break
			}
		}
	}
	return winners
}

// WinningLine returns the first complete line, if any
func (b Board) WinningLine() ([3]PosType, bool) {
	for _, line := range _lines {
		if m := b[line[0]]; m != None && m == b[line[1]] && m == b[line[2]] {
			return line, true
		}
	}
	return [3]PosType{}, false
}
