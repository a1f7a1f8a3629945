package entity

const (
	StatusIdle     = "idle"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 9
)

// Game is the canonical game record the client works with.
// Winner is empty while the game is running, "X"/"O" after a win
// and PlayerTie after a draw.
type Game struct {
	ID     string            `json:"id"`
	Board  [BoardSize]string `json:"board"`
	Winner string            `json:"winner"`
	Status string            `json:"status"`
	Turn   string            `json:"player_turn"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  [BoardSize]string{},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Move - one entry of the append-only move log. Seq is 1-based and
// monotonic per game; replaying the log from an empty board must
// reproduce the current board.
type Move struct {
	Seq  int    `json:"seq"`
	Mark string `json:"mark"`
	Cell int    `json:"cell"`
}
