package game

import (
	"fmt"

	"github.com/IlikeChooros/go-minimax/pkg/ttt"
)

// Scoreboard tallies finished games from the human's point of view
type Scoreboard struct {
	HumanWins int `json:"human_wins"`
	AIWins    int `json:"ai_wins"`
	Draws     int `json:"draws"`
}

// Record the result of a finished game, ongoing games are ignored
func (s *Scoreboard) Record(term ttt.Termination, human ttt.Mark) {
	switch {
	case term.State == ttt.Draw:
		s.Draws++
	case term.WonBy(human):
		s.HumanWins++
	case term.State == ttt.Won:
		s.AIWins++
	}
}

func (s *Scoreboard) Total() int {
	return s.HumanWins + s.AIWins + s.Draws
}

func (s *Scoreboard) Reset() {
	*s = Scoreboard{}
}

func (s Scoreboard) String() string {
	return fmt.Sprintf("Player: %d   AI: %d   Draws: %d", s.HumanWins, s.AIWins, s.Draws)
}
