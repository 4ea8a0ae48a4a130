package minimax

import "github.com/IlikeChooros/go-minimax/pkg/ttt"

// Evaluate with the default weights
func Evaluate(board ttt.Board, maximizer, minimizer ttt.Mark) int {
	return DefaultWeights().Evaluate(board, maximizer, minimizer)
}

// Evaluate scores a non-terminal board from the maximizer's perspective:
// the center cell and every line with two own marks and an empty cell
// (a threat) count, opponent's ones are subtracted.
func (w Weights) Evaluate(board ttt.Board, maximizer, minimizer ttt.Mark) int {
	score := 0

	switch board.At(ttt.Center) {
	case maximizer:
		score += w.Center
	case minimizer:
		score -= w.Center
	}

	for _, line := range ttt.Lines() {
		var own, opp, empty int
		for _, pos := range line {
			switch board.At(pos) {
			case maximizer:
				own++
			case minimizer:
				opp++
			case ttt.None:
				empty++
			}
		}

		if empty == 1 {
			if own == 2 {
				score += w.Threat
			} else if opp == 2 {
				score -= w.Threat
			}
		}
	}

	return score
}
