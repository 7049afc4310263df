package game

import "fmt"

// Player identities.
const (
	CrossPlayer  = "X"
	NoughtPlayer = "O"
)

type piece int8

const (
	pieceNone piece = iota
	pieceCross
	pieceNought
)

// boardStatus is the resolution of one local board.
type boardStatus int8

const (
	boardOpen boardStatus = iota
	boardCrossWon
	boardNoughtWon
	boardDraw
)

// lines are the eight winning triples of a 3x3 grid, as cell indexes
// row*3+col.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// GameState is one position of ultimate tic-tac-toe: a 3x3 grid of 3x3
// local boards. A move in local cell (r,c) sends the opponent to local
// board (r,c) unless that board is already decided or full, in which
// case any open board may be played.
//
// GameState contains only arrays and scalars, so a value copy is a deep
// copy; Play relies on this to stay pure.
type GameState struct {
	cells  [3][3][3][3]piece // [board row][board col][cell row][cell col]
	status [3][3]boardStatus
	player string
	forced Coord
	free   bool // any open board may be played
	winner string
	over   bool
}

// NewGameState returns the empty starting position with X to move.
func NewGameState() *GameState {
	return &GameState{
		player: CrossPlayer,
		free:   true,
	}
}

func (gs *GameState) Player() string {
	return gs.player
}

func (gs *GameState) IsOver() bool {
	return gs.over
}

func (gs *GameState) Winner() string {
	return gs.winner
}

// LegalMoves returns the empty cells of the forced local board, or of
// every open local board when no playable board is forced. Empty iff the
// game is over.
func (gs *GameState) LegalMoves() []Move {
	if gs.over {
		return nil
	}

	var moves []Move
	appendBoard := func(b Coord) {
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if gs.cells[b.Row][b.Col][r][c] == pieceNone {
					moves = append(moves, GameMove{Board: b, Cell: Coord{Row: r, Col: c}})
				}
			}
		}
	}

	if !gs.free {
		appendBoard(gs.forced)
		return moves
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if gs.status[r][c] == boardOpen {
				appendBoard(Coord{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Play applies the move and returns the resulting state. The receiver is
// never mutated. Playing an illegal move violates the engine contract
// and panics.
func (gs *GameState) Play(mv Move) State {
	m, ok := mv.(GameMove)
	if !ok {
		panic(fmt.Sprintf("foreign move type %T", mv))
	}
	if !gs.legal(m) {
		panic(fmt.Sprintf("illegal move %s for player %s", m, gs.player))
	}

	next := *gs
	p := pieceCross
	if gs.player == NoughtPlayer {
		p = pieceNought
	}
	next.cells[m.Board.Row][m.Board.Col][m.Cell.Row][m.Cell.Col] = p
	next.status[m.Board.Row][m.Board.Col] = resolveBoard(&next.cells[m.Board.Row][m.Board.Col])

	// The claimed cell names the opponent's board.
	next.forced = m.Cell
	next.free = next.status[m.Cell.Row][m.Cell.Col] != boardOpen

	next.winner, next.over = resolveGame(&next.status)
	next.player = other(gs.player)
	return &next
}

// Outcomes is defined only on terminal states: 1 for the winner, -1 for
// the loser, 0 for both players on a draw.
func (gs *GameState) Outcomes() map[string]float64 {
	if !gs.over {
		panic("outcomes queried on a non-terminal state")
	}
	switch gs.winner {
	case CrossPlayer:
		return map[string]float64{CrossPlayer: WinValue, NoughtPlayer: LossValue}
	case NoughtPlayer:
		return map[string]float64{CrossPlayer: LossValue, NoughtPlayer: WinValue}
	default:
		return map[string]float64{CrossPlayer: DrawValue, NoughtPlayer: DrawValue}
	}
}

// CellOwner returns "X", "O" or "" for a cell, for rendering.
func (gs *GameState) CellOwner(board, cell Coord) string {
	switch gs.cells[board.Row][board.Col][cell.Row][cell.Col] {
	case pieceCross:
		return CrossPlayer
	case pieceNought:
		return NoughtPlayer
	default:
		return ""
	}
}

// BoardWinner returns the player owning a decided local board, or "".
func (gs *GameState) BoardWinner(board Coord) string {
	switch gs.status[board.Row][board.Col] {
	case boardCrossWon:
		return CrossPlayer
	case boardNoughtWon:
		return NoughtPlayer
	default:
		return ""
	}
}

// ForcedBoard returns the local board the next move must target, if any.
func (gs *GameState) ForcedBoard() (Coord, bool) {
	if gs.free || gs.over {
		return Coord{}, false
	}
	return gs.forced, true
}

func (gs *GameState) legal(m GameMove) bool {
	if gs.over || !inGrid(m.Board) || !inGrid(m.Cell) {
		return false
	}
	if !gs.free && m.Board != gs.forced {
		return false
	}
	return gs.status[m.Board.Row][m.Board.Col] == boardOpen &&
		gs.cells[m.Board.Row][m.Board.Col][m.Cell.Row][m.Cell.Col] == pieceNone
}

func other(player string) string {
	if player == CrossPlayer {
		return NoughtPlayer
	}
	return CrossPlayer
}

// resolveBoard decides one local board from its cells.
func resolveBoard(cells *[3][3]piece) boardStatus {
	at := func(i int) piece { return cells[i/3][i%3] }
	for _, line := range lines {
		if p := at(line[0]); p != pieceNone && p == at(line[1]) && p == at(line[2]) {
			if p == pieceCross {
				return boardCrossWon
			}
			return boardNoughtWon
		}
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if cells[r][c] == pieceNone {
				return boardOpen
			}
		}
	}
	return boardDraw
}

// resolveGame decides the macro board from the local board statuses.
// Returns the winner ("" on a draw) and whether the game is over.
func resolveGame(status *[3][3]boardStatus) (string, bool) {
	at := func(i int) boardStatus { return status[i/3][i%3] }
	for _, line := range lines {
		s := at(line[0])
		if (s == boardCrossWon || s == boardNoughtWon) && s == at(line[1]) && s == at(line[2]) {
			if s == boardCrossWon {
				return CrossPlayer, true
			}
			return NoughtPlayer, true
		}
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if status[r][c] == boardOpen {
				return "", false
			}
		}
	}
	return "", true // drawn: every local board decided, no macro line
}
