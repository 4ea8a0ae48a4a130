package policy

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	tests := map[string]Difficulty{"easy": Easy, "Medium": Medium, " HARD ": Hard}
	for s, want := range tests {
		got, err := ParseDifficulty(s)
		if err != nil || got != want {
			t.Errorf("ParseDifficulty(%q) = %v %v, want %v", s, got, err, want)
		}
	}

	if _, err := ParseDifficulty("impossible"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestDifficultyText(t *testing.T) {
	var d Difficulty
	if err := d.UnmarshalText([]byte("medium")); err != nil || d != Medium {
		t.Errorf("UnmarshalText = %v %v", d, err)
	}

	text, err := Hard.MarshalText()
	if err != nil || string(text) != "hard" {
		t.Errorf("MarshalText = %q %v", text, err)
	}

	if _, err := Difficulty(5).MarshalText(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestDifficultyLimits(t *testing.T) {
	if Easy.Limits() != nil {
		t.Error("easy tier should not search")
	}
	if l := Medium.Limits(); !l.Depth.IsBounded() || l.Depth.Plies() != MediumDepth || !l.Pruning {
		t.Errorf("medium limits = %v", l)
	}
	if l := Hard.Limits(); l.Depth.IsBounded() {
		t.Errorf("hard limits = %v", l)
	}
}
