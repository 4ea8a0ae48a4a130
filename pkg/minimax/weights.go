package minimax

import (
	"errors"
	"fmt"
)

// Bound used as the full search window, larger than any reachable score
const Infinity int = 1 << 20

var ErrInvalidWeights = errors.New("minimax: invalid weights")

// Weights of the evaluation. Win is the value of a decided game, Center and
// Threat are the heuristic terms used at the depth cap.
type Weights struct {
	Win    int `json:"win" yaml:"win" mapstructure:"win"`
	Center int `json:"center" yaml:"center" mapstructure:"center"`
	Threat int `json:"threat" yaml:"threat" mapstructure:"threat"`
}

func DefaultWeights() Weights {
	return Weights{Win: 10, Center: 1, Threat: 3}
}

// MaxHeuristic bounds the evaluation of any reachable board, one side
// holds at most three threats next to the center
func (w Weights) MaxHeuristic() int {
	return 3*w.Threat + w.Center
}

// Validate keeps a decided game worth at least as much as any heuristic score
func (w Weights) Validate() error {
	if w.Win <= 0 {
		return fmt.Errorf("%w: win must be positive, got %d", ErrInvalidWeights, w.Win)
	}
	if w.Center < 0 || w.Threat < 0 {
		return fmt.Errorf("%w: center (%d) and threat (%d) must not be negative", ErrInvalidWeights, w.Center, w.Threat)
	}
	if w.Win < w.MaxHeuristic() {
		return fmt.Errorf("%w: win (%d) must be at least 3*threat+center (%d)", ErrInvalidWeights, w.Win, w.MaxHeuristic())
	}
	if w.Win >= Infinity {
		return fmt.Errorf("%w: win (%d) must be below %d", ErrInvalidWeights, w.Win, Infinity)
	}
	return nil
}
