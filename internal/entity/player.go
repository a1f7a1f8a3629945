package entity

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Mark string `json:"mark,omitempty"`
}

// LeaderboardRow - one canonical leaderboard entry. Score falls back to
// wins*3 + draws when the remote does not supply one.
type LeaderboardRow struct {
	PlayerID string `json:"player_id,omitempty"`
	Name     string `json:"name"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Draws    int    `json:"draws"`
	Score    int    `json:"score"`
}

// DeriveScore - the documented default scoring: three points per win,
// one per draw.
func DeriveScore(wins, draws int) int {
	return wins*3 + draws
}
