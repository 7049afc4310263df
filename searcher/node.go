package searcher

import "uttt/game"

// node is one position in the search tree. It owns its children and
// holds a non-owning back-reference to its parent, used only for
// backpropagation and for reading the parent's visit count in UCB.
//
// Invariant: untried and the children keys partition the legal moves
// captured when the node was created.
type node struct {
	parent   *node
	move     game.Move // move that produced this node; nil on the root
	children map[game.Move]*node
	moves    []game.Move // children keys in expansion order
	untried  []game.Move // legal moves not yet expanded, popped from the end
	wins     float64     // win credit from the searching player's view
	visits   int
}

func newNode(parent *node, move game.Move, legal []game.Move) *node {
	untried := make([]game.Move, len(legal))
	copy(untried, legal)
	return &node{
		parent:   parent,
		move:     move,
		children: make(map[game.Move]*node, len(legal)),
		untried:  untried,
	}
}

func (n *node) expandable() bool {
	return len(n.untried) > 0
}

// expand pops one untried move, plays it on state and registers the new
// child under that move. Calling it with nothing left to try is an
// invariant violation.
func (n *node) expand(state game.State) (*node, game.State) {
	if len(n.untried) == 0 {
		panic("expand on a node with no untried moves")
	}
	move := n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	childState := state.Play(move)
	child := newNode(n, move, childState.LegalMoves())
	n.children[move] = child
	n.moves = append(n.moves, move)
	return child, childState
}

// bestChild returns the child maximizing UCB. Ties go to the child
// expanded first: iteration walks the expansion-order move list, never
// the map, so results are reproducible under a fixed seed.
func (n *node) bestChild(opponent bool, exploration float64) *node {
	var best *node
	bestScore := negInf
	for _, move := range n.moves {
		child := n.children[move]
		if score := ucb(child, opponent, exploration); score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}
