package panel

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/session"
)

// PlaceholderNoGame - shown by the history panel while no game is active.
const PlaceholderNoGame = "start a game to see its move history"

type historyClient interface {
	GetHistory(ctx context.Context, gameID string) (json.RawMessage, error)
}

// History renders the move log of the active game. It fetches its own data
// through the remote client, scoped by the game id it learns from lifecycle
// notifications, and never touches the session itself. Any fetch failure
// becomes a placeholder plus a message, never a hard stop.
type History struct {
	logger *slog.Logger
	client historyClient

	mu      sync.Mutex
	gameID  string
	moves   []entity.Move
	message string
}

func NewHistory(logger *slog.Logger, client historyClient, notifier *session.Notifier) *History {
	that := &History{
		logger:  logger.With("component", "history-panel"),
		client:  client,
		message: PlaceholderNoGame,
	}

	notifier.Subscribe(func(event session.GameStarted) {
		that.mu.Lock()
		that.gameID = event.GameID
		that.mu.Unlock()

		that.Refresh(context.Background())
	})

	return that
}

// Refresh - re-fetches the move log. Without an active game id it shows the
// placeholder and issues no request at all.
func (that *History) Refresh(ctx context.Context) {
	that.mu.Lock()
	gameID := that.gameID
	that.mu.Unlock()

	if gameID == "" {
		that.set(nil, PlaceholderNoGame)
		return
	}

	raw, err := that.client.GetHistory(ctx, gameID)
	if err != nil {
		that.logger.Debug("history fetch failed", "game_id", gameID, "error", err)
		that.set(nil, "move history is unavailable right now")
		return
	}

	moves, err := entity.ParseMoves(raw)
	if err != nil {
		that.logger.Debug("history response unusable", "game_id", gameID, "error", err)
		that.set(nil, "move history is unavailable right now")
		return
	}

	that.set(moves, "")
}

// Moves - the canonical move records to render.
func (that *History) Moves() []entity.Move {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]entity.Move(nil), that.moves...)
}

// Message - a human-readable placeholder, empty when there is data to show.
func (that *History) Message() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.message
}

func (that *History) set(moves []entity.Move, message string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.moves = moves
	that.message = message
}
