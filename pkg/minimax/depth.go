package minimax

import (
	"fmt"
	"strconv"
)

// Depth is either unbounded (search to terminal positions) or bounded by
// a number of plies. The zero value is unbounded.
type Depth struct {
	plies   int
	bounded bool
}

// Unbounded depth, the search explores the whole game tree
func Unbounded() Depth {
	return Depth{}
}

// Bounded depth, after given number of plies the heuristic evaluator is used
func Bounded(plies int) Depth {
	return Depth{plies: plies, bounded: true}
}

func (d Depth) IsBounded() bool {
	return d.bounded
}

// Number of plies left, meaningful only for bounded depth
func (d Depth) Plies() int {
	return d.plies
}

// Exhausted reports whether a bounded depth has reached zero
func (d Depth) Exhausted() bool {
	return d.bounded && d.plies <= 0
}

// Next is the depth one ply deeper in the tree
func (d Depth) Next() Depth {
	if !d.bounded {
		return d
	}
	return Depth{plies: d.plies - 1, bounded: true}
}

func (d Depth) String() string {
	if !d.bounded {
		return "inf"
	}
	return strconv.Itoa(d.plies)
}

func (d Depth) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Accepts "inf" (or empty) and a non-negative number of plies
func (d *Depth) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" || s == "inf" {
		*d = Unbounded()
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("minimax: invalid depth %q", s)
	}
	*d = Bounded(n)
	return nil
}
