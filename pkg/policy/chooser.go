package policy

import (
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// MoveSearcher is the search the Medium and Hard tiers consult,
// *minimax.Searcher implements it
type MoveSearcher interface {
	Search(board ttt.Board, maximizing bool, maximizer, minimizer ttt.Mark, depth minimax.Depth, alpha, beta int) minimax.SearchResult
}

// Chooser picks moves for the automated player. It keeps its own random
// source and searcher, so each goroutine needs its own Chooser.
type Chooser struct {
	rand       *rand.Rand
	searcher   MoveSearcher
	strict     bool
	degenerate int
}

type Option func(*Chooser)

// Use given random source, for Easy moves and the fallback
func WithRand(r *rand.Rand) Option {
	return func(c *Chooser) {
		if r != nil {
			c.rand = r
		}
	}
}

func WithSeed(seed int64) Option {
	return func(c *Chooser) {
		c.rand = rand.New(rand.NewSource(seed))
	}
}

// Search with custom evaluation weights
func WithWeights(weights minimax.Weights) Option {
	return func(c *Chooser) {
		c.searcher = minimax.NewSearcher().SetWeights(weights)
	}
}

func WithSearcher(searcher MoveSearcher) Option {
	return func(c *Chooser) {
		if searcher != nil {
			c.searcher = searcher
		}
	}
}

// Strict choosers report a degenerate search result as an error,
// instead of falling back to a random move
func WithStrict(strict bool) Option {
	return func(c *Chooser) {
		c.strict = strict
	}
}

func NewChooser(opts ...Option) *Chooser {
	c := &Chooser{
		rand:     rand.New(rand.NewSource(SeedGeneratorFn())),
		searcher: minimax.NewSearcher(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChooseMove with a fresh chooser, seeded by SeedGeneratorFn
func ChooseMove(board ttt.Board, difficulty Difficulty, maximizer, minimizer ttt.Mark) (ttt.PosType, error) {
	return NewChooser().ChooseMove(board, difficulty, maximizer, minimizer)
}

// Searcher used by the search tiers
func (c *Chooser) Searcher() MoveSearcher {
	return c.searcher
}

// Number of search results without a move that were replaced by a random one
func (c *Chooser) Degenerate() int {
	return c.degenerate
}

// ChooseMove returns an empty cell for the maximizer to play
func (c *Chooser) ChooseMove(board ttt.Board, difficulty Difficulty, maximizer, minimizer ttt.Mark) (ttt.PosType, error) {
	if !maximizer.Valid() || !minimizer.Valid() || maximizer == minimizer {
		return ttt.PosIllegal, fmt.Errorf("%w: got %v and %v", ErrInvalidMarks, maximizer, minimizer)
	}

	moves := board.GenerateMoves()
	if moves.Size == 0 {
		return ttt.PosIllegal, ErrNoMoves
	}
	if term := board.Classify(); term.Terminal() {
		return ttt.PosIllegal, fmt.Errorf("%w: %v", ErrGameOver, term)
	}

	switch difficulty {
	case Easy:
		return c.random(moves), nil
	case Medium, Hard:
		alpha, beta := minimax.Window()
		result := c.searcher.Search(board, true, maximizer, minimizer, difficulty.Limits().Depth, alpha, beta)
		if result.HasMove() && board.IsEmpty(result.Move) {
			return result.Move, nil
		}

		if c.strict {
			return ttt.PosIllegal, fmt.Errorf("%w: %s search on %s gave %v",
				ErrDegenerateSearch, difficulty, board.Notation(), result)
		}
		c.degenerate++
		return c.random(moves), nil
	}

	return ttt.PosIllegal, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(difficulty))
}

func (c *Chooser) random(moves *ttt.MoveList) ttt.PosType {
	return moves.Moves[c.rand.Intn(int(moves.Size))]
}
