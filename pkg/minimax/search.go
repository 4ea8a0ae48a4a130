package minimax

import (
	"fmt"
	"time"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Result of a search, Score is from the maximizer's perspective.
// Move is ttt.PosIllegal when the node had nothing to recommend
// (terminal position, or the depth cap was reached).
type SearchResult struct {
	Score int
	Move  ttt.PosType
}

func (r SearchResult) HasMove() bool {
	return r.Move != ttt.PosIllegal
}

func (r SearchResult) String() string {
	return fmt.Sprintf("{score=%d, move=%v}", r.Score, r.Move)
}

// Full search window
func Window() (alpha, beta int) {
	return -Infinity, Infinity
}

// Search runs alpha-beta minimax with the default weights.
// The board is taken by value, the caller's copy is never modified.
func Search(board ttt.Board, maximizing bool, maximizer, minimizer ttt.Mark, depth Depth, alpha, beta int) SearchResult {
	return NewSearcher().Search(board, maximizing, maximizer, minimizer, depth, alpha, beta)
}

// Searcher holds the working board and the counters of a search,
// it must not be shared between goroutines
type Searcher struct {
	weights   Weights
	limits    *Limits
	listener  *StatsListener
	board     ttt.Board
	maximizer ttt.Mark
	minimizer ttt.Mark
	stats     Stats
}

func NewSearcher() *Searcher {
	return &Searcher{
		weights:  DefaultWeights(),
		limits:   DefaultLimits(),
		listener: &StatsListener{},
	}
}

func (s *Searcher) SetWeights(weights Weights) *Searcher {
	s.weights = weights
	return s
}

func (s *Searcher) Weights() Weights {
	return s.weights
}

func (s *Searcher) SetLimits(limits *Limits) *Searcher {
	s.limits = limits
	return s
}

func (s *Searcher) Limits() *Limits {
	return s.limits
}

func (s *Searcher) StatsListener() *StatsListener {
	return s.listener
}

func (s *Searcher) SetListener(listener StatsListener) {
	*s.listener = listener
}

// Statistics of the last search
func (s *Searcher) Stats() Stats {
	return s.stats
}

// Root searches the board for the maximizer, with the searcher's depth and the full window
func (s *Searcher) Root(board ttt.Board, maximizer, minimizer ttt.Mark) SearchResult {
	alpha, beta := Window()
	return s.Search(board, true, maximizer, minimizer, s.limits.Depth, alpha, beta)
}

// Search the game tree from the given board. 'maximizing' tells whether the
// maximizer is to move, alpha and beta are the initial window.
func (s *Searcher) Search(board ttt.Board, maximizing bool, maximizer, minimizer ttt.Mark, depth Depth, alpha, beta int) SearchResult {
	s.board = board
	s.maximizer = maximizer
	s.minimizer = minimizer
	s.stats = Stats{}
	start := time.Now()

	result := s.search(maximizing, depth, alpha, beta, 0)

	if s.board != board {
		panic(fmt.Sprintf("[minimax] search left the board modified: %s, want %s", s.board.Notation(), board.Notation()))
	}

	s.stats.Elapsed = time.Since(start)
	if s.listener.onStop != nil {
		s.listener.onStop(ListenerStats{Stats: s.stats, Result: result, Limits: *s.limits})
	}
	return result
}

// MoveScore is the full-window value of a single root move
type MoveScore struct {
	Move  ttt.PosType
	Score int
}

// ScoreMoves searches every legal move of the maximizer separately with
// the searcher's depth, scores are exact values (not bounds)
func (s *Searcher) ScoreMoves(board ttt.Board, maximizer, minimizer ttt.Mark) []MoveScore {
	if board.Classify().Terminal() {
		return nil
	}

	moves := board.GenerateMoves()
	scores := make([]MoveScore, 0, moves.Size)
	alpha, beta := Window()
	depth := s.limits.Depth.Next()

	for _, mv := range moves.Slice() {
		child := board
		child.Set(mv, maximizer)
		result := s.Search(child, false, maximizer, minimizer, depth, alpha, beta)
		scores = append(scores, MoveScore{Move: mv, Score: result.Score})
	}
	return scores
}

func (s *Searcher) leaf(score int) SearchResult {
	s.stats.Leaves++
	return SearchResult{Score: score, Move: ttt.PosIllegal}
}

func (s *Searcher) search(maximizing bool, depth Depth, alpha, beta, ply int) SearchResult {
	s.stats.Nodes++
	s.stats.MaxDepth = max(s.stats.MaxDepth, ply)

	switch term := s.board.Classify(); {
	case term.WonBy(s.maximizer):
		return s.leaf(s.weights.Win)
	case term.WonBy(s.minimizer):
		return s.leaf(-s.weights.Win)
	case term.State == ttt.Draw:
		return s.leaf(0)
	}

	if depth.Exhausted() {
		return s.leaf(s.weights.Evaluate(s.board, s.maximizer, s.minimizer))
	}

	mover := s.minimizer
	bestScore := Infinity
	if maximizing {
		mover = s.maximizer
		bestScore = -Infinity
	}
	bestMove := ttt.PosIllegal

	for _, mv := range s.board.GenerateMoves().Slice() {
		childAlpha, childBeta := alpha, beta
		if !s.limits.Pruning {
			childAlpha, childBeta = Window()
		}

		nodes := s.stats.Nodes
		score := s.place(mv, mover, func() int {
			return s.search(!maximizing, depth.Next(), childAlpha, childBeta, ply+1).Score
		})

		if ply == 0 && s.listener.onRootMove != nil {
			s.listener.onRootMove(RootMoveStats{Move: mv, Score: score, Nodes: s.stats.Nodes - nodes})
		}

		// Strict comparison, equal scores keep the lower index
		if maximizing {
			if score > bestScore {
				bestScore, bestMove = score, mv
			}
			alpha = max(alpha, bestScore)
		} else {
			if score < bestScore {
				bestScore, bestMove = score, mv
			}
			beta = min(beta, bestScore)
		}

		if s.limits.Pruning && beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}

	return SearchResult{Score: bestScore, Move: bestMove}
}

// place puts the mark on the working board for the duration of f,
// the cell is emptied again on every exit path
func (s *Searcher) place(mv ttt.PosType, mark ttt.Mark, f func() int) int {
	s.board.Set(mv, mark)
	defer s.board.Clear(mv)
	return f()
}
