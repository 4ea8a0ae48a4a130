package bench

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/IlikeChooros/go-minimax/pkg/minimax"
	"github.com/IlikeChooros/go-minimax/pkg/policy"
	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

type VersusMatchResult int

const (
	VersusPl1Win VersusMatchResult = 1
	VersusPl2Win VersusMatchResult = -1
	VersusDraw   VersusMatchResult = 0
)

func (r VersusMatchResult) String() string {
	switch r {
	case VersusPl1Win:
		return "player1"
	case VersusPl2Win:
		return "player2"
	}
	return "draw"
}

// Agent is one side of the arena, an automated player of given difficulty
type Agent struct {
	Name       string            `json:"name" yaml:"name" mapstructure:"name"`
	Difficulty policy.Difficulty `json:"difficulty" yaml:"difficulty" mapstructure:"difficulty"`
	Weights    minimax.Weights   `json:"weights" yaml:"weights" mapstructure:"weights"`
}

func NewAgent(difficulty policy.Difficulty) Agent {
	return Agent{
		Name:       difficulty.String(),
		Difficulty: difficulty,
		Weights:    minimax.DefaultWeights(),
	}
}

func (a Agent) chooser(seed int64) *policy.Chooser {
	weights := a.Weights
	if weights == (minimax.Weights{}) {
		weights = minimax.DefaultWeights()
	}
	return policy.NewChooser(policy.WithSeed(seed), policy.WithWeights(weights))
}

// VersusArenaStats are the running totals, safe for concurrent updates
type VersusArenaStats struct {
	p1Wins     atomic.Int32
	p2Wins     atomic.Int32
	draws      atomic.Int32
	firstWins  atomic.Int32
	secondWins atomic.Int32
}

func (vas *VersusArenaStats) Total() int {
	return vas.P1Wins() + vas.P2Wins() + vas.Draws()
}

func (vas *VersusArenaStats) P1Wins() int {
	return int(vas.p1Wins.Load())
}

func (vas *VersusArenaStats) P2Wins() int {
	return int(vas.p2Wins.Load())
}

func (vas *VersusArenaStats) Draws() int {
	return int(vas.draws.Load())
}

// Games won by the side that made the first move
func (vas *VersusArenaStats) FirstToMoveWins() int {
	return int(vas.firstWins.Load())
}

func (vas *VersusArenaStats) SecondToMoveWins() int {
	return int(vas.secondWins.Load())
}

func (vas *VersusArenaStats) record(result VersusMatchResult, p1WentFirst bool) {
	if result == VersusDraw {
		vas.draws.Add(1)
		return
	}

	if result == VersusPl1Win {
		vas.p1Wins.Add(1)
	} else {
		vas.p2Wins.Add(1)
	}

	if (result == VersusPl1Win) == p1WentFirst {
		vas.firstWins.Add(1)
	} else {
		vas.secondWins.Add(1)
	}
}

type VersusWorkerInfo struct {
	WorkerID      int
	GameID        uuid.UUID
	NGames        int
	FinishedGames int
	GameMoveNum   int
	Moves         []ttt.PosType
	Board         ttt.Board
	Result        VersusMatchResult
	P1WentFirst   bool
	P1Wins        int
	P2Wins        int
	Draws         int
	P1Name        string
	P2Name        string
}

type VersusSummaryInfo struct {
	TotalGames       int    `json:"total_games"`
	P1Wins           int    `json:"player1_wins"`
	P2Wins           int    `json:"player2_wins"`
	FirstToMoveWins  int    `json:"first_to_move_wins"`
	SecondToMoveWins int    `json:"second_to_move_wins"`
	Draws            int    `json:"draws"`
	Workers          int    `json:"workers"`
	P1Name           string `json:"player1_name"`
	P2Name           string `json:"player2_name"`
}

// agentResult names the winning agent of a finished game, p1Mark is the
// mark player 1 held in it
func agentResult(term ttt.Termination, p1Mark ttt.Mark) VersusMatchResult {
	switch {
	case !term.Terminal():
		panic(fmt.Sprintf("[bench] game result requested for an ongoing game (%v)", term))
	case term.State == ttt.Draw:
		return VersusDraw
	case term.WonBy(p1Mark):
		return VersusPl1Win
	}
	return VersusPl2Win
}
