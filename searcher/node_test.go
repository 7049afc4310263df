package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"uttt/game"
)

func TestNewNode(t *testing.T) {
	t.Run("captures the legal moves as untried", func(t *testing.T) {
		legal := []game.Move{mockMove{id: 0}, mockMove{id: 1}, mockMove{id: 2}}

		n := newNode(nil, nil, legal)

		require.Equal(t, legal, n.untried, "All legal moves should start untried")
		require.Empty(t, n.children, "A new node should have no children")
		require.Empty(t, n.moves, "A new node should have no expansion order")
		require.Zero(t, n.visits, "A new node should be unvisited")
		require.Zero(t, n.wins, "A new node should have no win credit")
	})

	t.Run("copies the legal move slice", func(t *testing.T) {
		legal := []game.Move{mockMove{id: 0}, mockMove{id: 1}}

		n := newNode(nil, nil, legal)
		legal[0] = mockMove{id: 9}

		require.Equal(t, mockMove{id: 0}, n.untried[0],
			"Mutating the caller's slice should not change the node")
	})
}

func TestExpand(t *testing.T) {
	t.Run("pops one untried move into a child", func(t *testing.T) {
		childMoves := []game.Move{mockMove{id: 10}}
		terminalish := mockState{player: "O", moves: childMoves}
		moveA := mockMove{id: 0}
		moveB := mockMove{id: 1}
		state := mockState{
			player: "X",
			moves:  []game.Move{moveA, moveB},
			next:   func(game.Move) game.State { return terminalish },
		}
		n := newNode(nil, nil, state.LegalMoves())

		child, childState, _ := expandOnce(t, n, state)

		require.Equal(t, []game.Move{moveA}, n.untried, "Expansion should pop the last untried move")
		require.Equal(t, child, n.children[moveB], "Child should be registered under its move")
		require.Equal(t, []game.Move{moveB}, n.moves, "Expansion order should record the move")
		require.Equal(t, n, child.parent, "Child should back-reference its parent")
		require.Equal(t, moveB, child.move, "Child should record the move that produced it")
		require.Equal(t, childMoves, child.untried, "Child untried moves should be the legal moves of its state")
		require.Equal(t, terminalish, childState, "Expansion should return the post-move state")
	})

	t.Run("keeps untried and children disjoint across full expansion", func(t *testing.T) {
		legal := []game.Move{mockMove{id: 0}, mockMove{id: 1}, mockMove{id: 2}}
		state := mockState{
			player: "X",
			moves:  legal,
			next:   func(game.Move) game.State { return wonState("X") },
		}
		n := newNode(nil, nil, legal)

		for i := 0; i < len(legal); i++ {
			require.Equal(t, len(legal), len(n.untried)+len(n.children),
				"Untried and children should always partition the legal moves")
			for _, move := range n.untried {
				require.NotContains(t, n.moves, move, "No move should be both untried and expanded")
			}
			n.expand(state)
		}

		require.False(t, n.expandable(), "A fully expanded node should have nothing left to try")
		require.Len(t, n.children, len(legal), "Every legal move should have a child")
	})

	t.Run("panics with no untried moves", func(t *testing.T) {
		n := newNode(nil, nil, nil)

		require.Panics(t, func() {
			n.expand(mockState{})
		}, "Expanding an exhausted node should panic")
	})
}

func expandOnce(t *testing.T, n *node, state game.State) (*node, game.State, game.Move) {
	t.Helper()
	before := len(n.untried)
	child, childState := n.expand(state)
	require.Equal(t, before-1, len(n.untried), "Expansion should consume exactly one untried move")
	return child, childState, child.move
}

func TestBestChild(t *testing.T) {
	t.Run("prefers an unvisited child over any statistics", func(t *testing.T) {
		parent := &node{visits: 6}
		visited := &node{parent: parent, move: mockMove{id: 0}, wins: 3, visits: 5}
		unvisited := &node{parent: parent, move: mockMove{id: 1}}
		attach(parent, visited, unvisited)

		got := parent.bestChild(false, DefaultExploration)

		require.Equal(t, unvisited, got, "An unvisited child scores +Inf and must win the comparison")
	})

	t.Run("maximizes win rate for the searching player", func(t *testing.T) {
		parent := &node{visits: 10}
		weak := &node{parent: parent, move: mockMove{id: 0}, wins: 1, visits: 5}
		strong := &node{parent: parent, move: mockMove{id: 1}, wins: 4, visits: 5}
		attach(parent, weak, strong)

		got := parent.bestChild(false, 0.1)

		require.Equal(t, strong, got, "With little exploration the higher win rate should win")
	})

	t.Run("minimizes win rate on the opponent's turn", func(t *testing.T) {
		parent := &node{visits: 10}
		weak := &node{parent: parent, move: mockMove{id: 0}, wins: 1, visits: 5}
		strong := &node{parent: parent, move: mockMove{id: 1}, wins: 4, visits: 5}
		attach(parent, weak, strong)

		got := parent.bestChild(true, 0.1)

		require.Equal(t, weak, got, "The opponent flip should favor the child worst for the searcher")
	})

	t.Run("breaks ties by expansion order", func(t *testing.T) {
		parent := &node{visits: 10}
		first := &node{parent: parent, move: mockMove{id: 0}, wins: 2, visits: 5}
		second := &node{parent: parent, move: mockMove{id: 1}, wins: 2, visits: 5}
		attach(parent, first, second)

		got := parent.bestChild(false, DefaultExploration)

		require.Equal(t, first, got, "Equal scores should keep the first expanded child")
	})
}

// attach registers pre-built children in expansion order.
func attach(parent *node, children ...*node) {
	parent.children = make(map[game.Move]*node, len(children))
	for _, child := range children {
		parent.children[child.move] = child
		parent.moves = append(parent.moves, child.move)
	}
}
