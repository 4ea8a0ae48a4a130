package policy

import (
	"fmt"
	"strings"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
)

type Difficulty int

const (
	// Uniformly random legal moves, the search is not consulted
	Easy Difficulty = iota
	// Search two plies deep, then the heuristic evaluator
	Medium
	// Exhaustive search, never loses
	Hard
)

const MediumDepth = 2

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Limits of the search used by this tier, nil for Easy
func (d Difficulty) Limits() *minimax.Limits {
	switch d {
	case Medium:
		return minimax.DefaultLimits().SetDepth(MediumDepth)
	case Hard:
		return minimax.DefaultLimits().SetInfinite()
	}
	return nil
}

// ParseDifficulty accepts the tier names in any case
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
