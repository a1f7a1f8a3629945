package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
	"github.com/rocketscienceinc/tictactoe-client/internal/game"
)

type remoteClient interface {
	CreatePlayer(ctx context.Context, name string) (json.RawMessage, error)
	CreateGame(ctx context.Context, playerXID, playerOID string) (json.RawMessage, error)
	GetGame(ctx context.Context, gameID string) (json.RawMessage, error)
	PostMove(ctx context.Context, gameID string, position int) (json.RawMessage, error)
}

// Session - the single live aggregate for the active game. Engine hands out
// copies; nothing outside the engine mutates one.
type Session struct {
	GameID  string
	Board   [entity.BoardSize]string
	Turn    string
	Status  string
	Winner  string
	Moves   []entity.Move
	Busy    bool
	LastErr error
}

// Won - the winning mark, or false while nobody has won.
func (that *Session) Won() (string, bool) {
	if that.Status == entity.StatusFinished && (that.Winner == entity.PlayerX || that.Winner == entity.PlayerO) {
		return that.Winner, true
	}
	return "", false
}

func (that *Session) Draw() bool {
	return that.Status == entity.StatusFinished && that.Winner == entity.PlayerTie
}

// Engine owns the session and reconciles every mutating action between the
// remote authority and local computation: try remote first, fall back to a
// locally computed result so play never stops when the backend is down.
type Engine struct {
	logger   *slog.Logger
	client   remoteClient
	notifier *Notifier

	playerXName string
	playerOName string

	slot slotLock

	mu      sync.RWMutex
	playerX *entity.Player
	playerO *entity.Player
	session Session
}

func NewEngine(logger *slog.Logger, client remoteClient, notifier *Notifier, playerXName, playerOName string) *Engine {
	return &Engine{
		logger:   logger.With("component", "session"),
		client:   client,
		notifier: notifier,

		playerXName: playerXName,
		playerOName: playerOName,

		session: Session{Status: entity.StatusIdle},
	}
}

// Snapshot - a copy of the current session.
func (that *Engine) Snapshot() Session {
	return that.snapshot(that.slot.Held())
}

// snapshot - mutating operations still hold the slot when they build their
// return value, so they pass busy=false: by the time the caller sees the
// session the operation is over.
func (that *Engine) snapshot(busy bool) Session {
	that.mu.RLock()
	defer that.mu.RUnlock()

	s := that.session
	s.Moves = append([]entity.Move(nil), that.session.Moves...)
	s.Busy = busy

	return s
}

// Start - creates two player identities and a fresh game. Remote failures
// fall back to locally minted identities and a locally minted game, so the
// session always ends up ongoing and playable.
func (that *Engine) Start(ctx context.Context) Session {
	return that.begin(ctx, false)
}

// Reset - Start, but existing player identities are reused when present.
func (that *Engine) Reset(ctx context.Context) Session {
	return that.begin(ctx, true)
}

func (that *Engine) begin(ctx context.Context, reusePlayers bool) Session {
	if !that.slot.TryAcquire() {
		that.logger.Debug("new game rejected, session is busy")
		return that.Snapshot()
	}
	defer that.slot.Release()

	playerX, playerO := that.resolvePlayers(ctx, reusePlayers)
	fresh, startErr := that.createGame(ctx, playerX, playerO)

	that.mu.Lock()
	that.playerX = playerX
	that.playerO = playerO
	that.session = Session{
		GameID:  fresh.ID,
		Board:   fresh.Board,
		Turn:    fresh.Turn,
		Status:  fresh.Status,
		Winner:  fresh.Winner,
		Moves:   []entity.Move{},
		LastErr: startErr,
	}
	that.mu.Unlock()

	that.notifier.Publish(GameStarted{GameID: fresh.ID})

	return that.snapshot(false)
}

// SubmitMove - plays the given cell for the mark to move. Returns the
// resulting session and whether the move was applied; busy, finished and
// occupied intents are ignored, not errors.
func (that *Engine) SubmitMove(ctx context.Context, cell int) (Session, bool) {
	if cell < 0 || cell >= entity.BoardSize {
		that.logger.Debug("move rejected, cell out of range", "cell", cell)
		return that.Snapshot(), false
	}

	if !that.slot.TryAcquire() {
		that.logger.Debug("move rejected, session is busy", "cell", cell)
		return that.Snapshot(), false
	}
	defer that.slot.Release()

	// immutable snapshot of board and turn, taken before the suspension
	// point: a slow remote response must never be applied against state
	// that changed under it
	that.mu.RLock()
	snapshot := that.session
	that.mu.RUnlock()

	if snapshot.GameID == "" || snapshot.Status != entity.StatusOngoing {
		that.logger.Debug("move rejected, no game in progress", "cell", cell)
		return that.snapshot(false), false
	}

	if snapshot.Board[cell] != entity.EmptyCell {
		that.logger.Debug("move rejected, cell occupied", "cell", cell)
		return that.snapshot(false), false
	}

	mark := snapshot.Turn

	outcome := that.resolveMove(ctx, snapshot, mark, cell)
	if outcome == nil {
		return that.snapshot(false), false
	}

	move := entity.Move{Seq: len(snapshot.Moves) + 1, Mark: mark, Cell: cell}

	that.mu.Lock()
	that.session.Board = outcome.board
	that.session.Turn = outcome.turn
	that.session.Status = outcome.status
	that.session.Winner = outcome.winner
	that.session.Moves = append(that.session.Moves, move)
	that.mu.Unlock()

	return that.snapshot(false), true
}

// Sync - re-fetches the active game from the remote and adopts whatever
// fields it supplies. Failures are absorbed; the local state stands.
func (that *Engine) Sync(ctx context.Context) (Session, bool) {
	if !that.slot.TryAcquire() {
		return that.Snapshot(), false
	}
	defer that.slot.Release()

	that.mu.RLock()
	gameID := that.session.GameID
	that.mu.RUnlock()

	if gameID == "" {
		return that.snapshot(false), false
	}

	raw, err := that.client.GetGame(ctx, gameID)
	if err != nil {
		that.logger.Debug("sync failed, keeping local state", "error", err)
		return that.snapshot(false), false
	}

	upd, err := entity.ParseGameUpdate(raw)
	if err != nil {
		that.logger.Debug("unusable game response, keeping local state", "error", err)
		return that.snapshot(false), false
	}

	that.mu.Lock()
	if len(upd.Board) == entity.BoardSize {
		copy(that.session.Board[:], upd.Board)
	}
	if upd.Status != "" {
		that.session.Status = upd.Status
	}
	if upd.Turn != "" {
		that.session.Turn = upd.Turn
	}
	if upd.Winner != "" {
		that.session.Winner = upd.Winner
	}
	that.mu.Unlock()

	return that.snapshot(false), true
}

type moveOutcome struct {
	board  [entity.BoardSize]string
	turn   string
	status string
	winner string
}

func (that *Engine) resolveMove(ctx context.Context, snapshot Session, mark string, cell int) *moveOutcome {
	raw, err := that.client.PostMove(ctx, snapshot.GameID, cell)
	if err == nil {
		upd, parseErr := entity.ParseGameUpdate(raw)
		if parseErr == nil {
			return adoptRemoteMove(snapshot, upd, mark, cell)
		}
		err = parseErr
	}

	// remote unavailable or talking nonsense; compute the outcome locally
	// and keep playing
	that.logger.Debug("computing move locally", "cell", cell, "error", err)

	return computeLocalMove(snapshot, mark, cell)
}

// adoptRemoteMove - takes the remote's answer as-is, filling any field it
// omitted: board gets the move applied to the snapshot, status defaults to
// ongoing, the turn flips only while the game continues, winner stays none.
func adoptRemoteMove(snapshot Session, upd *entity.GameUpdate, mark string, cell int) *moveOutcome {
	outcome := &moveOutcome{winner: upd.Winner}

	if len(upd.Board) == entity.BoardSize {
		copy(outcome.board[:], upd.Board)
	} else {
		outcome.board = snapshot.Board
		if outcome.board[cell] == entity.EmptyCell {
			outcome.board[cell] = mark
		}
	}

	outcome.status = upd.Status
	if outcome.status == "" {
		outcome.status = entity.StatusOngoing
	}

	outcome.turn = upd.Turn
	if outcome.turn == "" {
		if outcome.status == entity.StatusOngoing {
			outcome.turn = game.ToggleMark(mark)
		} else {
			outcome.turn = mark
		}
	}

	return outcome
}

// computeLocalMove - the offline path: write the mark into the snapshot
// board, evaluate, flip the turn only on a non-terminal outcome. Returns nil
// when the cell turns out occupied after all, leaving the pre-move state
// untouched.
func computeLocalMove(snapshot Session, mark string, cell int) *moveOutcome {
	if snapshot.Board[cell] != entity.EmptyCell {
		return nil
	}

	outcome := &moveOutcome{board: snapshot.Board}
	outcome.board[cell] = mark

	switch winner, draw := game.Evaluate(outcome.board); {
	case winner != "":
		outcome.winner = winner
		outcome.status = entity.StatusFinished
		outcome.turn = mark
	case draw:
		outcome.winner = entity.PlayerTie
		outcome.status = entity.StatusFinished
		outcome.turn = mark
	default:
		outcome.status = entity.StatusOngoing
		outcome.turn = game.ToggleMark(mark)
	}

	return outcome
}

func (that *Engine) resolvePlayers(ctx context.Context, reuse bool) (*entity.Player, *entity.Player) {
	that.mu.RLock()
	playerX, playerO := that.playerX, that.playerO
	that.mu.RUnlock()

	if reuse && playerX != nil && playerO != nil {
		return playerX, playerO
	}

	return that.mintPlayer(ctx, that.playerXName, entity.PlayerX),
		that.mintPlayer(ctx, that.playerOName, entity.PlayerO)
}

// mintPlayer - creates a player through the remote, falling back to a
// locally minted identity when the remote is unreachable or unusable.
func (that *Engine) mintPlayer(ctx context.Context, name, mark string) *entity.Player {
	raw, err := that.client.CreatePlayer(ctx, name)
	if err == nil {
		player, parseErr := entity.ParsePlayer(raw)
		if parseErr == nil {
			player.Mark = mark
			if player.Name == "" {
				player.Name = name
			}
			return player
		}
		err = parseErr
	}

	that.logger.Warn("using locally minted player identity", "name", name, "error", err)

	return &entity.Player{ID: mintLocalID("player"), Name: name, Mark: mark}
}

// createGame - creates a game through the remote. On failure it returns a
// locally minted fresh game together with the triggering error, which the
// caller records for display rather than swallowing.
func (that *Engine) createGame(ctx context.Context, playerX, playerO *entity.Player) (*entity.Game, error) {
	raw, err := that.client.CreateGame(ctx, playerX.ID, playerO.ID)
	if err == nil {
		var upd *entity.GameUpdate
		upd, err = entity.ParseGameUpdate(raw)
		if err == nil && upd.ID == "" {
			err = fmt.Errorf("%w: game response carries no id", entity.ErrMalformedResponse)
		}
		if err == nil {
			fresh := entity.NewGame(upd.ID)
			if len(upd.Board) == entity.BoardSize {
				copy(fresh.Board[:], upd.Board)
			}
			if upd.Status != "" {
				fresh.Status = upd.Status
			}
			if upd.Turn != "" {
				fresh.Turn = upd.Turn
			}
			fresh.Winner = upd.Winner

			return fresh, nil
		}
	}

	that.logger.Warn("using locally minted game", "error", err)

	return entity.NewGame(mintLocalID("game")), err
}

// mintLocalID - an identifier for offline fallback. uuid keeps collisions
// out of the question for any client lifetime.
func mintLocalID(kind string) string {
	return "local-" + kind + "-" + uuid.NewString()
}
