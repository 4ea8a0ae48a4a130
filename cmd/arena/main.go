package main

/*

Plays a series of games between two automated players and prints the summary.

	arena -config configs/config.example.yaml -games 500 -p1 hard -p2 medium

Each worker keeps its own choosers, who moves first is drawn for every game.

*/

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-minimax/internal/config"
	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/policy"
)

var (
	configPath = flag.String("config", "", "Path to the YAML config file")
	games      = flag.Uint("games", 0, "Number of games, overrides the config")
	threads    = flag.Uint("threads", 0, "Number of workers, overrides the config")
	p1         = flag.String("p1", "", "Difficulty of the first player")
	p2         = flag.String("p2", "", "Difficulty of the second player")
	jsonOut    = flag.Bool("json", false, "Print the summary as JSON instead of the progress view")
)

func override(agent *bench.Agent, difficulty string) error {
	if difficulty == "" {
		return nil
	}
	d, err := policy.ParseDifficulty(difficulty)
	if err != nil {
		return err
	}
	agent.Difficulty = d
	agent.Name = ""
	return nil
}

func writeSummary(w io.Writer, summary bench.VersusSummaryInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func run(cfg *config.Config, log *zap.Logger) error {
	if *games > 0 {
		cfg.Arena.Games = *games
	}
	if *threads > 0 {
		cfg.Arena.Threads = *threads
	}
	if err := override(&cfg.Arena.Player1, *p1); err != nil {
		return err
	}
	if err := override(&cfg.Arena.Player2, *p2); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Arena.Seed != 0 {
		seed := cfg.Arena.Seed
		policy.SetSeedGeneratorFn(func() int64 { return seed })
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	player1, player2 := cfg.Agents()
	arena := bench.NewVersusArena(player1, player2).WithContext(ctx)
	arena.Setup(cfg.Arena.Games, cfg.Arena.Threads)

	var listener bench.ListenerLike = bench.NewLogListener(log)
	if !*jsonOut {
		listener = bench.NewArenaListener(bench.NewTermListener(os.Stdout), listener)
	}

	log.Info("arena start",
		zap.String("player1", player1.Name),
		zap.String("player2", player2.Name),
		zap.Uint("games", cfg.Arena.Games),
		zap.Uint("threads", cfg.Arena.Threads),
	)
	if err := arena.Start(listener); err != nil {
		return err
	}
	arena.Wait()

	if *jsonOut {
		return writeSummary(os.Stdout, arena.Summary())
	}
	return nil
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("arena failed", zap.Error(err))
		os.Exit(1)
	}
}
