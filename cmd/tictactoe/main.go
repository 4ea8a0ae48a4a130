package main

/*

Terminal tic-tac-toe against the minimax engine.

Type a cell number (1-9, row by row from the top left) to play,
'r' to restart, 's' to reset the scores, 'd <easy|medium|hard>' to change
the difficulty, 'm <x|o>' to pick your mark, 'f' to toggle who moves first
and 'q' to quit. Changing the mark or the first player restarts the game.

*/

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/IlikeChooros/go-minimax/internal/config"
	"github.com/IlikeChooros/go-minimax/internal/render"
	"github.com/IlikeChooros/go-minimax/pkg/game"
	"github.com/IlikeChooros/go-minimax/pkg/policy"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var (
	configPath = flag.String("config", "", "Path to the YAML config file")
	difficulty = flag.String("difficulty", "", "AI difficulty: easy, medium or hard")
	mark       = flag.String("mark", "", "Your mark: x or o")
	first      = flag.Bool("first", true, "Whether you move first")
	seed       = flag.Int64("seed", 0, "Seed of the easy tier, 0 uses the clock")
	debug      = flag.Bool("debug", false, "Log the engine's moves to stderr")
)

type session struct {
	game     *game.Game
	scores   game.Scoreboard
	renderer *render.Renderer
	out      io.Writer
	log      *zap.Logger
}

func newSession(g *game.Game, out io.Writer, log *zap.Logger) *session {
	return &session{
		game:     g,
		renderer: render.New(termenv.NewOutput(out)),
		out:      out,
		log:      log,
	}
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *session) info(text string) {
	s.printf("%s\n", s.renderer.Styled(text, s.renderer.Palette().Info))
}

func (s *session) show() {
	s.printf("\n%s\n", s.renderer.Board(s.game.Board(), s.game.HumanMark()))
}

// Lets the engine move on its turn, then reports a finished game
func (s *session) advance() {
	if !s.game.Over() && !s.game.HumanToMove() {
		mv, err := s.game.PlayAI()
		if err != nil {
			s.log.Error("engine failed", zap.Error(err))
			s.info(fmt.Sprintf("engine error: %v", err))
			return
		}
		s.info(fmt.Sprintf("AI plays %d", int(mv)+1))
		s.show()
	}

	if s.game.Over() {
		s.scores.Record(s.game.Termination(), s.game.HumanMark())
		s.printf("%s\n%s\n", s.renderer.Result(s.game.Termination(), s.game.HumanMark()), s.scores)
		s.info("'r' to play again, 'q' to quit")
	}
}

func (s *session) restart() {
	s.game.Restart()
	s.info(fmt.Sprintf("New game, you play %s (%s)", strings.ToUpper(s.game.HumanMark().String()), s.game.Options().Difficulty))
	s.show()
	s.advance()
}

// handle a single input line, returns false on quit
func (s *session) handle(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "q", "quit":
		return false
	case "r":
		s.restart()
	case "s":
		s.scores.Reset()
		s.printf("%s\n", s.scores)
	case "d":
		if len(fields) < 2 {
			s.info("usage: d <easy|medium|hard>")
			break
		}
		d, err := policy.ParseDifficulty(fields[1])
		if err != nil {
			s.info(err.Error())
			break
		}
		s.game.SetDifficulty(d)
		s.info(fmt.Sprintf("Difficulty set to %s", d))
	case "m":
		if len(fields) < 2 {
			s.info("usage: m <x|o>")
			break
		}
		m, err := ttt.ParseMark(fields[1])
		if err != nil {
			s.info(err.Error())
			break
		}
		opts := s.game.Options()
		opts.HumanMark = m
		s.game.SetOptions(opts)
		s.restart()
	case "f":
		opts := s.game.Options()
		opts.HumanStarts = !opts.HumanStarts
		s.game.SetOptions(opts)
		s.restart()
	default:
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 1 || n > ttt.BoardSize {
			s.info("type a cell 1-9, r, s, d <tier>, m <mark>, f or q")
			break
		}
		s.play(ttt.PosType(n - 1))
	}
	return true
}

func (s *session) play(pos ttt.PosType) {
	err := s.game.Play(pos)
	switch {
	case errors.Is(err, game.ErrCellTaken):
		s.info("That cell is taken")
		return
	case errors.Is(err, game.ErrGameOver):
		s.info("The game is over, 'r' to play again")
		return
	case err != nil:
		s.info(err.Error())
		return
	}

	s.show()
	s.advance()
}

func (s *session) run(in io.Reader) {
	s.restart()
	scanner := bufio.NewScanner(in)
	for {
		s.printf("> ")
		if !scanner.Scan() || !s.handle(scanner.Text()) {
			break
		}
	}
	s.printf("\n%s\n", s.scores)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := cfg.GameOptions()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "first":
			opts.HumanStarts = *first
		case "seed":
			cfg.Game.Seed = *seed
		}
	})
	if *difficulty != "" {
		if opts.Difficulty, err = policy.ParseDifficulty(*difficulty); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *mark != "" {
		if opts.HumanMark, err = ttt.ParseMark(*mark); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	// The board shares the terminal, so logs are off unless asked for
	log := zap.NewNop()
	if *debug {
		cfg.Log.Level = "debug"
		cfg.Log.Development = true
		if log, err = cfg.Logger(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer log.Sync()

	chooserOpts := []policy.Option{policy.WithWeights(cfg.Weights)}
	if cfg.Game.Seed != 0 {
		chooserOpts = append(chooserOpts, policy.WithSeed(cfg.Game.Seed))
	}

	g := game.New(opts, policy.NewChooser(chooserOpts...), log)
	newSession(g, os.Stdout, log).run(os.Stdin)
}
