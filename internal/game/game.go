package game

import (
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

// WinCombos - the 8 winning lines: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluate - computes the outcome of a board. Returns the winning mark when a
// line of three equal non-empty cells exists, draw when the board is full
// with no winner, and ("", false) otherwise. Pure, no side effects.
func Evaluate(board [entity.BoardSize]string) (string, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a, false
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return "", false
		}
	}

	return "", true
}

// ToggleMark - the other mark.
func ToggleMark(mark string) string {
	if mark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// Replay - replays a move log against an empty board. Out-of-range cells are
// skipped so a corrupt log cannot panic the caller.
func Replay(moves []entity.Move) [entity.BoardSize]string {
	var board [entity.BoardSize]string
	for _, move := range moves {
		if move.Cell < 0 || move.Cell >= entity.BoardSize {
			continue
		}
		board[move.Cell] = move.Mark
	}
	return board
}
