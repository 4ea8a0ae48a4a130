package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-minimax/pkg/policy"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var (
	ErrGameOver    = errors.New("game: game is over")
	ErrCellTaken   = errors.New("game: cell already taken")
	ErrOutOfRange  = errors.New("game: cell out of range")
	ErrNotYourTurn = errors.New("game: not your turn")
)

type Options struct {
	HumanMark   ttt.Mark
	HumanStarts bool
	Difficulty  policy.Difficulty
}

func DefaultOptions() Options {
	return Options{
		HumanMark:   ttt.Cross,
		HumanStarts: true,
		Difficulty:  policy.Hard,
	}
}

// Game is a single match between a human (or any external player) and the
// engine. It owns the board, the engine only sees copies of it.
type Game struct {
	ID      uuid.UUID
	opts    Options
	board   ttt.Board
	turn    ttt.Mark
	moves   []ttt.PosType
	term    ttt.Termination
	log     *zap.Logger
	chooser *policy.Chooser
}

func New(opts Options, chooser *policy.Chooser, log *zap.Logger) *Game {
	if !opts.HumanMark.Valid() {
		opts.HumanMark = ttt.Cross
	}
	if chooser == nil {
		chooser = policy.NewChooser()
	}
	if log == nil {
		log = zap.NewNop()
	}

	g := &Game{opts: opts, log: log, chooser: chooser}
	g.Restart()
	return g
}

// Restart clears the board and starts a new game with the same options
func (g *Game) Restart() {
	g.ID = uuid.New()
	g.board = ttt.NewBoard()
	g.moves = g.moves[:0]
	g.term = ttt.Termination{}

	g.turn = g.AIMark()
	if g.opts.HumanStarts {
		g.turn = g.opts.HumanMark
	}

	g.log.Debug("new game",
		zap.String("id", g.ID.String()),
		zap.Stringer("human", g.opts.HumanMark),
		zap.Bool("humanStarts", g.opts.HumanStarts),
		zap.Stringer("difficulty", g.opts.Difficulty),
	)
}

func (g *Game) Options() Options {
	return g.opts
}

// SetOptions changes the options and restarts the game
func (g *Game) SetOptions(opts Options) {
	if !opts.HumanMark.Valid() {
		opts.HumanMark = g.opts.HumanMark
	}
	g.opts = opts
	g.Restart()
}

// SetDifficulty takes effect from the next engine move, the game continues
func (g *Game) SetDifficulty(difficulty policy.Difficulty) {
	g.opts.Difficulty = difficulty
}

func (g *Game) Board() ttt.Board {
	return g.board
}

func (g *Game) Turn() ttt.Mark {
	return g.turn
}

func (g *Game) HumanMark() ttt.Mark {
	return g.opts.HumanMark
}

func (g *Game) AIMark() ttt.Mark {
	return g.opts.HumanMark.Opponent()
}

func (g *Game) HumanToMove() bool {
	return !g.Over() && g.turn == g.opts.HumanMark
}

func (g *Game) Moves() []ttt.PosType {
	return append([]ttt.PosType(nil), g.moves...)
}

func (g *Game) Termination() ttt.Termination {
	return g.term
}

func (g *Game) Over() bool {
	return g.term.Terminal()
}

// Play the human's move
func (g *Game) Play(pos ttt.PosType) error {
	if g.Over() {
		return ErrGameOver
	}
	if g.turn != g.opts.HumanMark {
		return ErrNotYourTurn
	}
	return g.apply(pos)
}

// PlayAI asks the engine for a move and applies it
func (g *Game) PlayAI() (ttt.PosType, error) {
	if g.Over() {
		return ttt.PosIllegal, ErrGameOver
	}
	if g.turn != g.AIMark() {
		return ttt.PosIllegal, ErrNotYourTurn
	}

	mv, err := g.chooser.ChooseMove(g.board, g.opts.Difficulty, g.AIMark(), g.opts.HumanMark)
	if err != nil {
		return ttt.PosIllegal, fmt.Errorf("game %s: %w", g.ID, err)
	}
	return mv, g.apply(mv)
}

func (g *Game) apply(pos ttt.PosType) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %d", ErrOutOfRange, pos)
	}
	if !g.board.IsEmpty(pos) {
		return fmt.Errorf("%w: %v", ErrCellTaken, pos)
	}

	g.board.Set(pos, g.turn)
	g.moves = append(g.moves, pos)
	g.term = g.board.Classify()

	g.log.Debug("move",
		zap.String("id", g.ID.String()),
		zap.Stringer("mark", g.turn),
		zap.Stringer("pos", pos),
		zap.String("board", g.board.Notation()),
	)

	if g.term.Terminal() {
		g.log.Info("game over",
			zap.String("id", g.ID.String()),
			zap.Stringer("result", g.term),
			zap.Int("moves", len(g.moves)),
		)
		return nil
	}

	g.turn = g.turn.Opponent()
	return nil
}
