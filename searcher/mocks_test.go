package searcher

import (
	"fmt"

	"uttt/game"
)

type mockMove struct {
	id   int
	cell game.Coord
}

func (m mockMove) String() string {
	return fmt.Sprintf("m%d", m.id)
}

func (m mockMove) Target() game.Coord {
	return m.cell
}

// mockState scripts transitions through next; a state with no moves is
// terminal and panics if played on.
type mockState struct {
	player string
	moves  []game.Move
	winner string
	next   func(game.Move) game.State
}

func (s mockState) Player() string {
	return s.player
}

func (s mockState) LegalMoves() []game.Move {
	return s.moves
}

func (s mockState) IsOver() bool {
	return len(s.moves) == 0
}

func (s mockState) Winner() string {
	return s.winner
}

func (s mockState) Play(m game.Move) game.State {
	if s.next == nil {
		panic("play on a state with no scripted transition")
	}
	return s.next(m)
}

func (s mockState) Outcomes() map[string]float64 {
	if len(s.moves) > 0 {
		panic("outcomes queried on a non-terminal state")
	}
	outcomes := map[string]float64{
		game.CrossPlayer:  game.DrawValue,
		game.NoughtPlayer: game.DrawValue,
	}
	if s.winner != "" {
		for player := range outcomes {
			outcomes[player] = game.LossValue
		}
		outcomes[s.winner] = game.WinValue
	}
	return outcomes
}

// wonState is terminal with the given winner.
func wonState(winner string) mockState {
	return mockState{player: winner, winner: winner}
}
