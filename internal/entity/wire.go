package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// The remote authority is loose about response shapes: lists arrive bare or
// wrapped, field names vary between deployments, and some fields are simply
// missing. Everything below turns those unions into the canonical records
// above; unknown fields are ignored, malformed list entries are dropped.

var (
	ErrMalformedResponse = errors.New("malformed remote response")
	ErrMissingPlayerID   = errors.New("player response carries no id")
)

// GameUpdate - a game response as the remote sent it. Empty fields mean
// "not supplied"; the session engine applies its own fallbacks.
type GameUpdate struct {
	ID     string
	Board  []string
	Status string
	Turn   string
	Winner string
}

// ParsePlayer - normalizes a create-player response. The only field the
// client insists on is an identifier.
func ParsePlayer(raw json.RawMessage) (*Player, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	id := pickString(obj, "id", "playerId", "player_id")
	if id == "" {
		return nil, ErrMissingPlayerID
	}

	return &Player{
		ID:   id,
		Name: pickString(obj, "name", "username"),
		Mark: normalizeMark(pickString(obj, "mark", "symbol")),
	}, nil
}

// ParseGameUpdate - normalizes a game response into a GameUpdate.
func ParseGameUpdate(raw json.RawMessage) (*GameUpdate, error) {
	obj, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	upd := &GameUpdate{
		ID:     pickString(obj, "id", "gameId", "game_id"),
		Board:  pickBoard(obj),
		Turn:   normalizeMark(pickString(obj, "currentPlayer", "player_turn", "turn", "nextPlayer")),
		Winner: normalizeMark(pickString(obj, "winner", "winnerMark")),
	}

	switch status := strings.ToLower(pickString(obj, "status", "state")); status {
	case "ongoing", "in-progress", "in_progress", "active", "playing":
		upd.Status = StatusOngoing
	case "finished", "won", "win", "complete", "done", "over":
		upd.Status = StatusFinished
	case "draw", "tie":
		upd.Status = StatusFinished
		if upd.Winner == "" {
			upd.Winner = PlayerTie
		}
	case "":
		// absent, caller decides
	default:
		// unknown status strings are treated as absent rather than trusted
	}

	return upd, nil
}

// ParseMoves - normalizes a history response. Accepts a bare array or a
// {"moves": [...]} wrapper; entries without a resolvable cell are dropped.
func ParseMoves(raw json.RawMessage) ([]Move, error) {
	items, err := decodeList(raw, "moves", "history", "items")
	if err != nil {
		return nil, err
	}

	moves := make([]Move, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}

		cell, ok := pickInt(obj, "position", "cell", "index")
		if !ok || cell < 0 || cell >= BoardSize {
			continue
		}

		seq, ok := pickInt(obj, "seq", "sequence", "moveNumber", "move_number")
		if !ok {
			seq = len(moves) + 1
		}

		moves = append(moves, Move{
			Seq:  seq,
			Mark: normalizeMark(pickString(obj, "player", "symbol", "side", "mark")),
			Cell: cell,
		})
	}

	return moves, nil
}

// ParseLeaderboard - normalizes a leaderboard response. Accepts a bare array
// or an {"items": [...]} wrapper; rows without any identity are dropped.
func ParseLeaderboard(raw json.RawMessage) ([]LeaderboardRow, error) {
	items, err := decodeList(raw, "items", "leaderboard", "players", "rows")
	if err != nil {
		return nil, err
	}

	rows := make([]LeaderboardRow, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}

		row := LeaderboardRow{
			PlayerID: pickString(obj, "playerId", "player_id", "id"),
			Name:     pickString(obj, "name", "player", "username"),
		}
		if row.PlayerID == "" && row.Name == "" {
			continue
		}

		row.Wins, _ = pickInt(obj, "wins", "won")
		row.Losses, _ = pickInt(obj, "losses", "lost")
		row.Draws, _ = pickInt(obj, "draws", "ties")

		if score, ok := pickInt(obj, "score", "points"); ok {
			row.Score = score
		} else {
			row.Score = DeriveScore(row.Wins, row.Draws)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func decodeObject(raw json.RawMessage) (map[string]any, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformedResponse)
	}

	return obj, nil
}

// decodeList - accepts either a bare JSON array or an object wrapping one
// under any of the given keys.
func decodeList(raw json.RawMessage, wrapperKeys ...string) ([]any, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	switch typed := value.(type) {
	case []any:
		return typed, nil
	case map[string]any:
		for _, key := range wrapperKeys {
			if list, ok := typed[key].([]any); ok {
				return list, nil
			}
		}
		return nil, fmt.Errorf("%w: object wraps no known list field", ErrMalformedResponse)
	default:
		return nil, fmt.Errorf("%w: expected an array or a wrapper object", ErrMalformedResponse)
	}
}

func pickBoard(obj map[string]any) []string {
	list, ok := obj["board"].([]any)
	if !ok || len(list) != BoardSize {
		return nil
	}

	board := make([]string, BoardSize)
	for i, cell := range list {
		text, _ := cell.(string)
		board[i] = normalizeMark(text)
	}

	return board
}

func pickString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if text, ok := obj[key].(string); ok && text != "" {
			return text
		}
	}
	return ""
}

func pickInt(obj map[string]any, keys ...string) (int, bool) {
	for _, key := range keys {
		switch typed := obj[key].(type) {
		case float64:
			return int(typed), true
		case string:
			if n, err := strconv.Atoi(typed); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

func normalizeMark(mark string) string {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case PlayerX:
		return PlayerX
	case PlayerO, "0":
		return PlayerO
	case PlayerTie, "TIE", "DRAW":
		return PlayerTie
	default:
		return ""
	}
}
