package game

import (
	"errors"
	"testing"

	"github.com/IlikeChooros/go-minimax/pkg/policy"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

func newTestGame(opts Options) *Game {
	return New(opts, policy.NewChooser(policy.WithSeed(42)), nil)
}

func TestHumanStarts(t *testing.T) {
	g := newTestGame(DefaultOptions())

	if !g.HumanToMove() || g.Turn() != ttt.Cross {
		t.Fatalf("human should move first with cross, turn=%v", g.Turn())
	}

	if err := g.Play(ttt.B2); err != nil {
		t.Fatal(err)
	}
	if g.HumanToMove() {
		t.Fatal("engine should be to move")
	}
	if err := g.Play(ttt.A3); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("err = %v, want ErrNotYourTurn", err)
	}

	mv, err := g.PlayAI()
	if err != nil {
		t.Fatal(err)
	}
	if g.Board().At(mv) != ttt.Circle {
		t.Errorf("engine move %v not on the board", mv)
	}
	if err := g.Play(mv); !errors.Is(err, ErrCellTaken) {
		t.Errorf("err = %v, want ErrCellTaken", err)
	}
	if err := g.Play(ttt.PosType(9)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("err = %v, want ErrOutOfRange", err)
	}
}

func TestEngineStarts(t *testing.T) {
	g := newTestGame(Options{HumanMark: ttt.Circle, HumanStarts: false, Difficulty: policy.Hard})

	if g.HumanToMove() || g.Turn() != ttt.Cross {
		t.Fatalf("engine should start with cross, turn=%v", g.Turn())
	}
	if _, err := g.PlayAI(); err != nil {
		t.Fatal(err)
	}
	if !g.HumanToMove() {
		t.Error("human should be to move")
	}
}

// The human plays the first free cell every time, hard engine must not lose
func TestGameToCompletion(t *testing.T) {
	var score Scoreboard
	for _, starts := range []bool{true, false} {
		g := newTestGame(Options{HumanMark: ttt.Cross, HumanStarts: starts, Difficulty: policy.Hard})
		for !g.Over() {
			if g.HumanToMove() {
				if err := g.Play(g.Board().GenerateMoves().Moves[0]); err != nil {
					t.Fatal(err)
				}
			} else if _, err := g.PlayAI(); err != nil {
				t.Fatal(err)
			}
		}

		if g.Termination().WonBy(g.HumanMark()) {
			t.Errorf("human won against hard: %s", g.Board().Notation())
		}
		if err := g.Play(ttt.A3); !errors.Is(err, ErrGameOver) {
			t.Errorf("err = %v, want ErrGameOver", err)
		}
		if _, err := g.PlayAI(); !errors.Is(err, ErrGameOver) {
			t.Errorf("err = %v, want ErrGameOver", err)
		}
		score.Record(g.Termination(), g.HumanMark())
	}

	if score.Total() != 2 || score.HumanWins != 0 {
		t.Errorf("unexpected score %v", score)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(DefaultOptions())
	id := g.ID
	_ = g.Play(ttt.A3)

	g.Restart()
	if g.ID == id {
		t.Error("restart should assign a new id")
	}
	if g.Board() != ttt.NewBoard() || len(g.Moves()) != 0 || g.Over() {
		t.Errorf("restart left state behind: %s %v", g.Board().Notation(), g.Moves())
	}

	g.SetOptions(Options{HumanMark: ttt.Circle, HumanStarts: true, Difficulty: policy.Easy})
	if g.Turn() != ttt.Circle || g.AIMark() != ttt.Cross {
		t.Errorf("turn=%v ai=%v after switching marks", g.Turn(), g.AIMark())
	}
}

func TestScoreboard(t *testing.T) {
	var s Scoreboard
	s.Record(ttt.Termination{State: ttt.Won, Winner: ttt.Cross}, ttt.Cross)
	s.Record(ttt.Termination{State: ttt.Won, Winner: ttt.Circle}, ttt.Cross)
	s.Record(ttt.Termination{State: ttt.Draw}, ttt.Cross)
	s.Record(ttt.Termination{State: ttt.Ongoing}, ttt.Cross)

	if s.HumanWins != 1 || s.AIWins != 1 || s.Draws != 1 {
		t.Errorf("unexpected tallies %+v", s)
	}
	if s.String() != "Player: 1   AI: 1   Draws: 1" {
		t.Errorf("String() = %q", s.String())
	}

	s.Reset()
	if s.Total() != 0 {
		t.Errorf("reset left %d games", s.Total())
	}
}
