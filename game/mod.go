package game

import "fmt"

// Coord addresses a cell inside a 3x3 grid.
type Coord struct {
	Row int
	Col int
}

// Move is a single action in the game. Implementations must be comparable
// so that moves can key the search tree's children.
type Move interface {
	fmt.Stringer
	// Target is the cell the move claims inside its 3x3 local grid.
	Target() Coord
}

// State should be immutable - operations on State always return a new copy.
type State interface {
	// Player returns the identity of the player to move.
	Player() string
	// LegalMoves returns the legal moves, empty iff the game is over.
	LegalMoves() []Move
	// Play applies a legal move and returns the resulting state. It panics
	// on an illegal move.
	Play(Move) State
	// IsOver reports whether the game has ended.
	IsOver() bool
	// Outcomes maps each player to a result value: 1 for a win, -1 for a
	// loss, 0 on a draw. Defined only on terminal states; it panics
	// otherwise.
	Outcomes() map[string]float64
	// Winner returns the winning player, or "" while the game is running
	// or after a draw.
	Winner() string
}

// Outcome values returned by State.Outcomes.
const (
	WinValue  = 1.0
	LossValue = -1.0
	DrawValue = 0.0
)
