// Package engine runs complete games between two agents on a local
// board, and renders positions for the terminal.
package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"uttt/agent"
	"uttt/game"
)

// maxTurns caps a game well above the 81 cells of the board; reaching
// it means the rules engine stopped terminating.
const maxTurns = 100

// MoveRecord is one played move with the time its agent spent on it.
type MoveRecord struct {
	Turn     int
	Player   string
	Move     game.Move
	Duration time.Duration
}

type Engine struct {
	state  game.State
	agents map[string]agent.Agent
}

// Local sets up a fresh game with x playing crosses and o noughts.
func Local(x, o agent.Agent) *Engine {
	return &Engine{
		state: game.NewGameState(),
		agents: map[string]agent.Agent{
			game.CrossPlayer:  x,
			game.NoughtPlayer: o,
		},
	}
}

// State exposes the current position, e.g. for rendering after Run.
func (e *Engine) State() game.State {
	return e.state
}

// Run plays the game to completion, returning the winner ("" on a draw)
// and the move log.
func (e *Engine) Run() (string, []MoveRecord, error) {
	log.Info().Str("player", e.state.Player()).Msg("game starting")

	var records []MoveRecord
	for turn := 1; !e.state.IsOver(); turn++ {
		if turn > maxTurns {
			return "", records, fmt.Errorf("engine: no result after %d turns", maxTurns)
		}

		player := e.state.Player()
		start := time.Now()
		move, err := e.agents[player].FindMove(e.state)
		if err != nil {
			return "", records, fmt.Errorf("engine: agent %s: %w", player, err)
		}
		records = append(records, MoveRecord{
			Turn:     turn,
			Player:   player,
			Move:     move,
			Duration: time.Since(start),
		})

		e.state = e.state.Play(move)
		log.Debug().Int("turn", turn).Str("player", player).Stringer("move", move).Msg("move played")
	}

	winner := e.state.Winner()
	log.Info().Str("winner", winner).Int("moves", len(records)).Msg("game over")
	return winner, records, nil
}
