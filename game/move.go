package game

// GameMove places the mover's piece at Cell inside the local board at
// Board. Both coordinates are rows and columns in 0..2. The zero value
// is the top-left cell of the top-left board.
type GameMove struct {
	Board Coord
	Cell  Coord
}

func (m GameMove) Target() Coord {
	return m.Cell
}

// String renders the move in board-then-cell notation: columns A-C/a-c,
// rows 3-1 counted from the top, e.g. B2c1 is the center board's
// bottom-right cell.
func (m GameMove) String() string {
	if !inGrid(m.Board) || !inGrid(m.Cell) {
		return "(none)"
	}
	return string([]byte{
		'A' + byte(m.Board.Col),
		'3' - byte(m.Board.Row),
		'a' + byte(m.Cell.Col),
		'3' - byte(m.Cell.Row),
	})
}

func inGrid(c Coord) bool {
	return c.Row >= 0 && c.Row < 3 && c.Col >= 0 && c.Col < 3
}
