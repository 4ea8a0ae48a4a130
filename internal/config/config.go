// Package config loads the YAML configuration shared by the commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"github.com/IlikeChooros/go-minimax/pkg/bench"
	"github.com/IlikeChooros/go-minimax/pkg/game"
	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/policy"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type GameConfig struct {
	HumanMark   ttt.Mark          `mapstructure:"human_mark"`
	HumanStarts bool              `mapstructure:"human_starts"`
	Difficulty  policy.Difficulty `mapstructure:"difficulty"`
	// 0 means seeded from the clock
	Seed int64 `mapstructure:"seed"`
}

type ArenaConfig struct {
	Games   uint        `mapstructure:"games"`
	Threads uint        `mapstructure:"threads"`
	Seed    int64       `mapstructure:"seed"`
	Player1 bench.Agent `mapstructure:"player1"`
	Player2 bench.Agent `mapstructure:"player2"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type Config struct {
	Game    GameConfig      `mapstructure:"game"`
	Weights minimax.Weights `mapstructure:"weights"`
	Arena   ArenaConfig     `mapstructure:"arena"`
	Log     LogConfig       `mapstructure:"log"`
}

func Default() *Config {
	return &Config{
		Game: GameConfig{
			HumanMark:   ttt.Cross,
			HumanStarts: true,
			Difficulty:  policy.Hard,
		},
		Weights: minimax.DefaultWeights(),
		Arena: ArenaConfig{
			Games:   100,
			Threads: 4,
			Player1: bench.Agent{Difficulty: policy.Hard},
			Player2: bench.Agent{Difficulty: policy.Easy},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the file at path on top of the defaults, an empty path gives the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Decode(data); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Decode overlays the YAML document onto cfg, keys missing from it keep their value
func (cfg *Config) Decode(data []byte) error {
	raw := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			difficultyHook,
			markHook,
		),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func difficultyHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(policy.Difficulty(0)) {
		return data, nil
	}
	return policy.ParseDifficulty(data.(string))
}

func markHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(ttt.None) {
		return data, nil
	}
	return ttt.ParseMark(data.(string))
}

func (cfg *Config) Validate() error {
	if !cfg.Game.HumanMark.Valid() {
		return fmt.Errorf("%w: game.human_mark must be x or o", ErrInvalidConfig)
	}
	if !cfg.Game.Difficulty.Valid() {
		return fmt.Errorf("%w: game.difficulty %v", ErrInvalidConfig, cfg.Game.Difficulty)
	}
	if err := cfg.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Arena.Games == 0 || cfg.Arena.Threads == 0 {
		return fmt.Errorf("%w: arena needs at least one game and one thread", ErrInvalidConfig)
	}

	for i, agent := range []bench.Agent{cfg.Arena.Player1, cfg.Arena.Player2} {
		if !agent.Difficulty.Valid() {
			return fmt.Errorf("%w: arena.player%d.difficulty %v", ErrInvalidConfig, i+1, agent.Difficulty)
		}
		if agent.Weights == (minimax.Weights{}) {
			continue
		}
		if err := agent.Weights.Validate(); err != nil {
			return fmt.Errorf("%w: arena.player%d: %v", ErrInvalidConfig, i+1, err)
		}
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Agents of the arena, unnamed agents are named after their difficulty
// and agents without weights use the global ones
func (cfg *Config) Agents() (bench.Agent, bench.Agent) {
	agents := [2]bench.Agent{cfg.Arena.Player1, cfg.Arena.Player2}
	for i := range agents {
		if agents[i].Name == "" {
			agents[i].Name = fmt.Sprintf("%s-%d", agents[i].Difficulty, i+1)
		}
		if agents[i].Weights == (minimax.Weights{}) {
			agents[i].Weights = cfg.Weights
		}
	}
	return agents[0], agents[1]
}

// GameOptions for a new interactive game
func (cfg *Config) GameOptions() game.Options {
	return game.Options{
		HumanMark:   cfg.Game.HumanMark,
		HumanStarts: cfg.Game.HumanStarts,
		Difficulty:  cfg.Game.Difficulty,
	}
}

// Logger built from the log section
func (cfg *Config) Logger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Log.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	if err := zcfg.Level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	return zcfg.Build()
}
