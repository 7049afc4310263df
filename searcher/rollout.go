package searcher

import (
	"golang.org/x/exp/rand"

	"uttt/game"
)

// Rollout policy cell weights. The center of a local board sits on four
// winning lines, corners on three, edges on two; the weights follow that
// ranking so playouts lean toward the stronger squares without
// consulting the board at large.
const (
	centerWeight = 5
	cornerWeight = 3
	edgeWeight   = 1
)

func cellWeight(c game.Coord) int {
	if c.Row == 1 && c.Col == 1 {
		return centerWeight
	}
	if c.Row != 1 && c.Col != 1 {
		return cornerWeight
	}
	return edgeWeight
}

// rollout plays the game out from state with the weighted random policy
// and returns the terminal state it reaches. Termination rests on the
// engine's legal-move set shrinking to empty in finite steps.
func rollout(state game.State, rng *rand.Rand, metrics MetricsCollector) game.State {
	for {
		moves := state.LegalMoves()
		if len(moves) == 0 {
			return state
		}
		state = state.Play(weightedPick(moves, rng))
		metrics.AddPlayoutMove()
	}
}

// weightedPick draws one move with probability proportional to the
// weight of its target cell.
func weightedPick(moves []game.Move, rng *rand.Rand) game.Move {
	total := 0
	for _, m := range moves {
		total += cellWeight(m.Target())
	}
	k := rng.Intn(total)
	for _, m := range moves {
		k -= cellWeight(m.Target())
		if k < 0 {
			return m
		}
	}
	panic("weighted draw ran past its total")
}
