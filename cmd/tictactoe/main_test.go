package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-minimax/pkg/game"
	"github.com/IlikeChooros/go-minimax/pkg/policy"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

func newTestSession(opts game.Options) (*session, *bytes.Buffer) {
	var out bytes.Buffer
	g := game.New(opts, policy.NewChooser(policy.WithSeed(1)), zap.NewNop())
	return newSession(g, &out, zap.NewNop()), &out
}

func TestSessionAIOpensWhenHumanMovesSecond(t *testing.T) {
	s, out := newTestSession(game.Options{HumanMark: ttt.Circle, HumanStarts: false, Difficulty: policy.Hard})
	s.restart()

	// hard takes the lowest index among equal scores
	if s.game.Board().At(ttt.A3) != ttt.Cross || len(s.game.Moves()) != 1 {
		t.Errorf("engine did not open: %s", s.game.Board().Notation())
	}
	if !strings.Contains(out.String(), "AI plays 1") {
		t.Errorf("missing engine move in output: %q", out.String())
	}
}

func TestSessionCommands(t *testing.T) {
	s, out := newTestSession(game.Options{HumanMark: ttt.Cross, HumanStarts: true, Difficulty: policy.Hard})
	s.restart()

	if !s.handle("5") {
		t.Fatal("a move quit the session")
	}
	if s.game.Board().At(ttt.B2) != ttt.Cross || len(s.game.Moves()) != 2 {
		t.Errorf("after 5: %s", s.game.Board().Notation())
	}

	out.Reset()
	s.handle("5")
	if !strings.Contains(out.String(), "taken") {
		t.Errorf("taken cell not reported: %q", out.String())
	}

	s.handle("d easy")
	if s.game.Options().Difficulty != policy.Easy {
		t.Errorf("difficulty = %v, want easy", s.game.Options().Difficulty)
	}

	out.Reset()
	s.handle("d impossible")
	if !strings.Contains(out.String(), "unknown difficulty") {
		t.Errorf("bad tier not reported: %q", out.String())
	}

	out.Reset()
	s.handle("12")
	if !strings.Contains(out.String(), "type a cell") {
		t.Errorf("bad cell not reported: %q", out.String())
	}

	s.handle("m o")
	if s.game.HumanMark() != ttt.Circle || len(s.game.Moves()) != 0 {
		t.Errorf("after m o: human %v, moves %v", s.game.HumanMark(), s.game.Moves())
	}

	// engine now opens
	s.handle("f")
	if s.game.Options().HumanStarts || len(s.game.Moves()) != 1 || s.game.Board().Count(ttt.Cross) != 1 {
		t.Errorf("after f: %+v on %s", s.game.Options(), s.game.Board().Notation())
	}

	s.handle("r")
	if len(s.game.Moves()) != 1 {
		t.Errorf("restart: moves %v, want only the engine opening", s.game.Moves())
	}

	if s.handle("q") {
		t.Error("q did not quit")
	}
}

func TestSessionRunRecordsScores(t *testing.T) {
	s, out := newTestSession(game.Options{HumanMark: ttt.Cross, HumanStarts: true, Difficulty: policy.Hard})

	// every cell in order, the occupied ones are rejected, until the game ends
	s.run(strings.NewReader("1\n2\n3\n4\n5\n6\n7\n8\n9\nq\n"))

	if !s.game.Over() {
		t.Fatalf("game not finished: %s", s.game.Board().Notation())
	}
	if s.scores.Total() != 1 || s.scores.HumanWins != 0 {
		t.Errorf("scores = %+v, want one game the human did not win", s.scores)
	}
	if !strings.Contains(out.String(), s.scores.String()) {
		t.Errorf("final scores not printed: %q", out.String())
	}

	s.handle("s")
	if s.scores.Total() != 0 {
		t.Errorf("scores not reset: %+v", s.scores)
	}
}
