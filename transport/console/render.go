package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/panel"
	"github.com/rocketscienceinc/tictactoe-client/internal/session"
)

// RenderBoard - draws the 3x3 grid. Empty playable cells show their number,
// disabled ones (busy session, finished game) show a dot.
func RenderBoard(s session.Session) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(fmt.Sprintf(" %s ", renderCell(s, row*3+col)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderCell(s session.Session, index int) string {
	if s.Board[index] != entity.EmptyCell {
		return s.Board[index]
	}

	if CellDisabled(s, index) {
		return "."
	}

	return fmt.Sprintf("%d", index+1)
}

// CellDisabled - a cell takes no clicks while the session is busy, the game
// is over, or the cell is already taken.
func CellDisabled(s session.Session, index int) bool {
	return s.Busy || s.Status != entity.StatusOngoing || s.Board[index] != entity.EmptyCell
}

// RenderStatus - one status line for the current session.
func RenderStatus(s session.Session) string {
	if winner, ok := s.Won(); ok {
		return fmt.Sprintf("game over: %s wins", winner)
	}

	if s.Draw() {
		return "game over: draw"
	}

	if s.Status == entity.StatusOngoing {
		return fmt.Sprintf("%s to move", s.Turn)
	}

	return "no game in progress, type 'new' to start one"
}

// RenderHistory - the move log panel.
func RenderHistory(h *panel.History) string {
	if message := h.Message(); message != "" {
		return message + "\n"
	}

	var sb strings.Builder
	for _, move := range h.Moves() {
		sb.WriteString(fmt.Sprintf("%2d. %s -> cell %d\n", move.Seq, move.Mark, move.Cell))
	}

	if sb.Len() == 0 {
		return "no moves yet\n"
	}

	return sb.String()
}

// RenderLeaderboard - the standings panel.
func RenderLeaderboard(lb *panel.Leaderboard) string {
	if message := lb.Message(); message != "" {
		return message + "\n"
	}

	var sb strings.Builder
	sb.WriteString("name             wins  losses  draws  score\n")
	for _, row := range lb.Rows() {
		sb.WriteString(fmt.Sprintf("%-16s %4d  %6d  %5d  %5d\n", row.Name, row.Wins, row.Losses, row.Draws, row.Score))
	}

	return sb.String()
}
