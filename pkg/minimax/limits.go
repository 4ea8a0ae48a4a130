package minimax

import (
	"encoding/json"
	"strings"
)

type Limits struct {
	Depth   Depth
	Pruning bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

// Unbounded depth with alpha-beta pruning
func DefaultLimits() *Limits {
	return &Limits{
		Depth:   Unbounded(),
		Pruning: true,
	}
}

// Set the maximum depth of the search, in plies
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = Bounded(max(0, depth))
	return l
}

// Search the whole game tree
func (l *Limits) SetInfinite() *Limits {
	l.Depth = Unbounded()
	return l
}

// Enable or disable alpha-beta cutoffs, the result is the same either way,
// only the number of visited nodes changes
func (l *Limits) SetPruning(pruning bool) *Limits {
	l.Pruning = pruning
	return l
}
