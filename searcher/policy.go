package searcher

import "math"

var negInf = math.Inf(-1)

// ucb scores a child against its siblings, always from the searching
// player's point of view: when the move into the node was played by the
// opponent, the win rate is flipped so that selection minimizes the
// searching player's losses on opponent turns.
//
// An unvisited node scores +Inf, so every child is visited once before
// any statistics-based comparison.
//
// UCB1 = winrate + c*sqrt(ln(N)/n)
func ucb(n *node, opponent bool, c float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	if n.parent == nil || n.parent.visits == 0 {
		// A visited node's parent saw the same backpropagation passes.
		panic("ucb: visited node with unvisited parent")
	}

	winRate := n.wins / float64(n.visits)
	if opponent {
		winRate = 1 - winRate
	}
	return winRate + c*math.Sqrt(math.Log(float64(n.parent.visits))/float64(n.visits))
}
