// Package searcher chooses moves with Monte Carlo tree search: a fixed
// budget of select/expand/rollout/backpropagate iterations over a tree
// that is private to one FindMove call and discarded afterwards.
package searcher

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"

	"uttt/game"
)

// Defaults for the search hyperparameters.
const (
	DefaultIterations  = 1000
	DefaultExploration = 2.0
)

// Win is the outcome value the engine reports for a winning player.
const Win = game.WinValue

type Option func(*MCTS)

// WithIterations sets the simulation budget per move.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithExploration sets the UCB exploration constant.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithRand sets the rollout random source, for reproducible searches.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithMetrics enables per-move search metrics collection.
func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

// MCTS holds the search configuration. The tree itself lives only for
// the duration of one FindMove call, so a single goroutine may reuse an
// MCTS across moves; concurrent use is not supported.
type MCTS struct {
	iterations  int
	exploration float64
	rng         *rand.Rand
	metrics     MetricsCollector
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{
		iterations:  DefaultIterations,
		exploration: DefaultExploration,
		metrics:     NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// FindMove runs the full iteration budget from state and returns the
// most-visited root move. The caller must not invoke it on a terminal
// state; that is the one error case.
func (m *MCTS) FindMove(state game.State) (game.Move, MoveMetrics, error) {
	legal := state.LegalMoves()
	if len(legal) == 0 {
		return nil, MoveMetrics{}, errors.New("findmove: no legal moves, state is terminal")
	}

	m.metrics.Start()
	root := newNode(nil, nil, legal)
	m.search(root, state)
	return bestMove(root), m.metrics.Complete(), nil
}

// search grows the tree from root for the configured number of
// iterations. The searching player is whoever is to move at state; all
// win statistics are recorded from that player's perspective.
func (m *MCTS) search(root *node, state game.State) {
	player := state.Player()

	for i := 0; i < m.iterations; i++ {
		n, s := m.descend(root, state, player)
		if n.expandable() {
			n, s = n.expand(s)
		}
		final := rollout(s, m.rng, m.metrics)
		backpropagate(n, isWin(final, player))
		m.metrics.AddEpisode()
	}
}

// descend walks from root to a node that still has untried moves or no
// children at all, advancing the state along the way. The perspective
// flag for UCB is read off the pre-transition state at every step.
func (m *MCTS) descend(root *node, state game.State, player string) (*node, game.State) {
	n := root
	for !n.expandable() && len(n.moves) > 0 {
		opponent := state.Player() != player
		n = n.bestChild(opponent, m.exploration)
		state = state.Play(n.move)
	}
	return n, state
}

// backpropagate credits one playout to every node from n up to and
// including the root.
func backpropagate(n *node, won bool) {
	credit := 0.0
	if won {
		credit = 1.0
	}
	for ; n != nil; n = n.parent {
		n.visits++
		n.wins += credit
	}
}

// isWin reports whether player won the finished game. Calling it before
// the game ends violates the rollout contract and panics in the engine.
func isWin(state game.State, player string) bool {
	return state.Outcomes()[player] == Win
}

// bestMove returns the root child move with the most visits. Ties go to
// the child expanded first.
func bestMove(root *node) game.Move {
	var best game.Move
	bestVisits := -1
	for _, move := range root.moves {
		if v := root.children[move].visits; v > bestVisits {
			bestVisits = v
			best = move
		}
	}
	return best
}
