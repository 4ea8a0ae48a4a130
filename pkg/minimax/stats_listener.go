package minimax

import (
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Counters collected during a single root search
type Stats struct {
	Nodes    int
	Leaves   int
	Cutoffs  int
	MaxDepth int
	Elapsed  time.Duration
}

type RootMoveStats struct {
	Move  ttt.PosType
	Score int
	Nodes int
}

type ListenerStats struct {
	Stats
	Result SearchResult
	Limits Limits
}

// Listener function callback, receives the statistics of the finished search
type ListenerFunc func(ListenerStats)

type StatsListener struct {
	// called after every move at the root is searched
	onRootMove func(RootMoveStats)

	// called once, when the search returns
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{}
}

// Attach a callback invoked after each root move, the score is a bound when
// the move was cut off by the window
func (listener *StatsListener) OnRootMove(onRootMove func(RootMoveStats)) *StatsListener {
	listener.onRootMove = onRootMove
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}
