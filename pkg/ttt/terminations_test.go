package ttt

import (
	"math/rand"
	"testing"
)

// walk every board reachable in a legal game, cross moving first
func walkReachable(b Board, turn Mark, visit func(Board)) {
	visit(b)
	if b.Classify().Terminal() {
		return
	}
	for _, mv := range b.GenerateMoves().Slice() {
		b.Set(mv, turn)
		walkReachable(b, turn.Opponent(), visit)
		b.Clear(mv)
	}
}

func TestAtMostOneWinner(t *testing.T) {
	count := 0
	walkReachable(NewBoard(), Cross, func(b Board) {
		count++
		if w := b.Winners(); len(w) > 1 {
			t.Fatalf("board %s has winners %v", b.Notation(), w)
		}
		if err := b.Validate(); err != nil {
			t.Fatalf("reachable board %s rejected: %v", b.Notation(), err)
		}
		term := b.Classify()
		winners := b.Winners()
		if term.State == Won && (len(winners) != 1 || winners[0] != term.Winner) {
			t.Fatalf("board %s classified %v, winners %v", b.Notation(), term, winners)
		}
	})

	// 549946 nodes in the full game tree (including the root)
	if count != 549946 {
		t.Errorf("visited %d boards, want 549946", count)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		notation string
		want     Termination
	}{
		{"3/3/3", Termination{State: Ongoing}},
		{"xxx/oo1/3", Termination{State: Won, Winner: Cross}},
		{"xx1/ooo/x2", Termination{State: Won, Winner: Circle}},
		{"o2/xo1/x1o", Termination{State: Won, Winner: Circle}},
		{"xo1/xo1/x2", Termination{State: Won, Winner: Cross}},
		{"2x/ox1/xo1", Termination{State: Won, Winner: Cross}},
		{"xox/oxo/oxo", Termination{State: Draw}},
		{"xox/oxo/ox1", Termination{State: Ongoing}},
		// last move completes a line on a full board: win beats draw
		{"xox/oxo/xox", Termination{State: Won, Winner: Cross}},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			b := MustFromNotation(tt.notation)
			if got := b.Classify(); got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", tt.notation, got, tt.want)
			}
		})
	}
}

func TestLastCellDraw(t *testing.T) {
	b := BoardFrom(Cross, Circle, Cross, Circle, Cross, Circle, Circle, Cross, None)
	if got := b.Classify(); got.State != Ongoing {
		t.Fatalf("expected ongoing, got %v", got)
	}

	moves := b.GenerateMoves()
	if moves.Size != 1 || moves.Moves[0] != C1 {
		t.Fatalf("expected single move c1, got %v", moves.Slice())
	}

	c := b
	c.Set(C1, Circle)
	if got := c.Classify(); got.State != Draw {
		t.Errorf("filling last cell with o: got %v, want draw", got)
	}

	// cross completes the a3-c1 diagonal with the last cell
	c.Set(C1, Cross)
	if got := c.Classify(); !got.WonBy(Cross) {
		t.Errorf("filling last cell with x: got %v, want x won", got)
	}
}

func TestWinningLine(t *testing.T) {
	b := MustFromNotation("o1x/ox1/x1o")
	line, ok := b.WinningLine()
	if !ok || line != [3]PosType{C3, B2, A1} {
		t.Errorf("WinningLine = %v %v, want anti-diagonal", line, ok)
	}

	if _, ok := NewBoard().WinningLine(); ok {
		t.Error("empty board should have no winning line")
	}
}

func TestValidate(t *testing.T) {
	bad := []string{"xxx/3/3", "xxx/ooo/3", "xx1/3/3"}
	for _, n := range bad {
		if err := MustFromNotation(n).Validate(); err == nil {
			t.Errorf("Validate(%s) expected error", n)
		}
	}
}

func TestRandomPlayout(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		b := NewBoard()
		turn := Cross
		for !b.Classify().Terminal() {
			moves := b.GenerateMoves()
			if moves.Size == 0 {
				t.Fatal("No legal moves available")
			}
			b.Set(moves.Moves[r.Intn(int(moves.Size))], turn)
			turn = turn.Opponent()
		}
		if b.Classify().State == Ongoing {
			t.Fatal("Game ended without a termination condition")
		}
	}
}
