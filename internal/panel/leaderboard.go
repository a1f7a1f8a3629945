package panel

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

type leaderboardClient interface {
	GetLeaderboard(ctx context.Context) (json.RawMessage, error)
}

// Leaderboard renders the global standings. Independent of the session; a
// failing backend degrades it to a placeholder message.
type Leaderboard struct {
	logger *slog.Logger
	client leaderboardClient

	mu      sync.Mutex
	rows    []entity.LeaderboardRow
	message string
}

func NewLeaderboard(logger *slog.Logger, client leaderboardClient) *Leaderboard {
	return &Leaderboard{
		logger:  logger.With("component", "leaderboard-panel"),
		client:  client,
		message: "leaderboard coming soon",
	}
}

func (that *Leaderboard) Refresh(ctx context.Context) {
	raw, err := that.client.GetLeaderboard(ctx)
	if err != nil {
		that.logger.Debug("leaderboard fetch failed", "error", err)
		that.set(nil, "leaderboard is unavailable right now")
		return
	}

	rows, err := entity.ParseLeaderboard(raw)
	if err != nil {
		that.logger.Debug("leaderboard response unusable", "error", err)
		that.set(nil, "leaderboard is unavailable right now")
		return
	}

	if len(rows) == 0 {
		that.set(nil, "no games on the board yet")
		return
	}

	that.set(rows, "")
}

func (that *Leaderboard) Rows() []entity.LeaderboardRow {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]entity.LeaderboardRow(nil), that.rows...)
}

func (that *Leaderboard) Message() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.message
}

func (that *Leaderboard) set(rows []entity.LeaderboardRow, message string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.rows = rows
	that.message = message
}
