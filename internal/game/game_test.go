package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

func TestEvaluate_WinningLines(t *testing.T) {
	for _, mark := range []string{entity.PlayerX, entity.PlayerO} {
		for _, combo := range WinCombos {
			// Given: a board with one completed line for the mark
			var board [entity.BoardSize]string
			for _, cell := range combo {
				board[cell] = mark
			}

			// When: the board is evaluated
			winner, draw := Evaluate(board)

			// Then: that mark wins and it is not a draw
			require.Equal(t, mark, winner, "combo %v", combo)
			require.False(t, draw)
		}
	}
}

func TestEvaluate_WinnerIgnoresRemainingCells(t *testing.T) {
	// Given: a finished line for X surrounded by other marks
	board := [entity.BoardSize]string{"X", "X", "X", "O", "O", "", "", "", ""}

	// When: the board is evaluated
	winner, draw := Evaluate(board)

	// Then: X wins regardless of the rest of the board
	require.Equal(t, entity.PlayerX, winner)
	require.False(t, draw)
}

func TestEvaluate_Draw(t *testing.T) {
	// Given: a full board with no three-in-a-row
	board := [entity.BoardSize]string{"X", "O", "X", "X", "O", "O", "O", "X", "X"}

	// When: the board is evaluated
	winner, draw := Evaluate(board)

	// Then: nobody wins and the game is a draw
	require.Empty(t, winner)
	require.True(t, draw)
}

func TestEvaluate_Ongoing(t *testing.T) {
	// Given: a board with empty cells and no completed line
	board := [entity.BoardSize]string{"X", "O", "", "", "X", "", "", "", ""}

	// When: the board is evaluated
	winner, draw := Evaluate(board)

	// Then: no winner and no draw
	require.Empty(t, winner)
	require.False(t, draw)
}

func TestEvaluate_Idempotent(t *testing.T) {
	board := [entity.BoardSize]string{"X", "X", "X", "O", "O", "", "", "", ""}

	winnerFirst, drawFirst := Evaluate(board)
	winnerSecond, drawSecond := Evaluate(board)

	assert.Equal(t, winnerFirst, winnerSecond)
	assert.Equal(t, drawFirst, drawSecond)
	assert.Equal(t, [entity.BoardSize]string{"X", "X", "X", "O", "O", "", "", "", ""}, board)
}

func TestToggleMark(t *testing.T) {
	assert.Equal(t, entity.PlayerO, ToggleMark(entity.PlayerX))
	assert.Equal(t, entity.PlayerX, ToggleMark(entity.PlayerO))
}

func TestReplay(t *testing.T) {
	// Given: a move log
	moves := []entity.Move{
		{Seq: 1, Mark: entity.PlayerX, Cell: 0},
		{Seq: 2, Mark: entity.PlayerO, Cell: 4},
		{Seq: 3, Mark: entity.PlayerX, Cell: 8},
	}

	// When: the log is replayed against an empty board
	board := Replay(moves)

	// Then: the board matches the moves exactly
	require.Equal(t, [entity.BoardSize]string{"X", "", "", "", "O", "", "", "", "X"}, board)
}

func TestReplay_SkipsCorruptEntries(t *testing.T) {
	moves := []entity.Move{
		{Seq: 1, Mark: entity.PlayerX, Cell: 0},
		{Seq: 2, Mark: entity.PlayerO, Cell: 42},
	}

	board := Replay(moves)

	require.Equal(t, [entity.BoardSize]string{"X", "", "", "", "", "", "", "", ""}, board)
}
