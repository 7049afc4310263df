package engine

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"uttt/game"
)

// Render returns the position as a colored 9x9 grid for terminal
// output: crosses red, noughts blue, decided local boards faint, with a
// footer naming the player to move and the forced board.
func Render(gs *game.GameState) string {
	profile := termenv.ColorProfile()
	styled := func(s string, board game.Coord) string {
		style := termenv.String(s)
		switch s {
		case game.CrossPlayer:
			style = style.Foreground(profile.Color("9")).Bold()
		case game.NoughtPlayer:
			style = style.Foreground(profile.Color("12")).Bold()
		default:
			return s
		}
		if gs.BoardWinner(board) != "" {
			style = style.Faint()
		}
		return style.String()
	}

	var b strings.Builder
	for row := 0; row < 9; row++ {
		if row > 0 && row%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for col := 0; col < 9; col++ {
			if col > 0 && col%3 == 0 {
				b.WriteString("| ")
			}
			board := game.Coord{Row: row / 3, Col: col / 3}
			cell := game.Coord{Row: row % 3, Col: col % 3}
			mark := gs.CellOwner(board, cell)
			if mark == "" {
				mark = "."
			}
			b.WriteString(styled(mark, board))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	if gs.IsOver() {
		if winner := gs.Winner(); winner != "" {
			fmt.Fprintf(&b, "%s wins\n", winner)
		} else {
			b.WriteString("draw\n")
		}
		return b.String()
	}

	fmt.Fprintf(&b, "%s to move", gs.Player())
	if forced, ok := gs.ForcedBoard(); ok {
		fmt.Fprintf(&b, ", board %c%c", 'A'+forced.Col, '3'-forced.Row)
	}
	b.WriteString("\n")
	return b.String()
}
