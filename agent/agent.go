// Package agent provides the players the engine pits against each
// other: the MCTS-backed agent and a uniform-random baseline.
package agent

import (
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"uttt/game"
	"uttt/searcher"
)

type Agent interface {
	// FindMove picks one legal move from state. It fails only when the
	// state is terminal.
	FindMove(state game.State) (game.Move, error)
}

// MCTSAgent chooses moves by Monte Carlo tree search.
type MCTSAgent struct {
	name string
	mcts *searcher.MCTS
}

func NewMCTSAgent(name string, options ...searcher.Option) *MCTSAgent {
	options = append([]searcher.Option{searcher.WithMetrics()}, options...)
	return &MCTSAgent{
		name: name,
		mcts: searcher.NewMCTS(options...),
	}
}

func (a *MCTSAgent) FindMove(state game.State) (game.Move, error) {
	move, metrics, err := a.mcts.FindMove(state)
	if err != nil {
		return nil, err
	}
	// Diagnostic only; silenced by raising the log level.
	log.Debug().
		Str("agent", a.name).
		Stringer("move", move).
		Int("episodes", metrics.Episodes).
		Int("playoutMoves", metrics.PlayoutMoves).
		Dur("duration", metrics.Duration).
		Msg("move chosen")
	return move, nil
}

// RandomAgent plays uniformly at random, as an experiment baseline.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) FindMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, errors.New("findmove: no legal moves, state is terminal")
	}
	return moves[a.rng.Intn(len(moves))], nil
}
