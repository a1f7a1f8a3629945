package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rocketscienceinc/tictactoe-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

// Client is the thin HTTP/JSON adapter in front of the remote authority.
// It validates inputs, shapes errors and hands back the raw response body;
// interpreting the body is the caller's job. It never retries and carries
// no timeout of its own - deadlines come from the context or the injected
// http.Client.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client
}

// New - creates a client against the given base URL. A nil httpClient
// falls back to http.DefaultClient.
func New(logger *slog.Logger, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		logger:     logger.With("component", "remote"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (that *Client) BaseURL() string {
	return that.baseURL
}

func (that *Client) CreatePlayer(ctx context.Context, name string) (json.RawMessage, error) {
	if name == "" {
		return nil, apperror.NewValidationError("name", "must not be empty")
	}

	return that.do(ctx, http.MethodPost, "/players", map[string]string{"name": name})
}

func (that *Client) CreateGame(ctx context.Context, playerXID, playerOID string) (json.RawMessage, error) {
	if playerXID == "" {
		return nil, apperror.NewValidationError("playerXId", "must not be empty")
	}
	if playerOID == "" {
		return nil, apperror.NewValidationError("playerOId", "must not be empty")
	}

	body := map[string]string{"playerXId": playerXID, "playerOId": playerOID}

	return that.do(ctx, http.MethodPost, "/games", body)
}

func (that *Client) GetGame(ctx context.Context, gameID string) (json.RawMessage, error) {
	if gameID == "" {
		return nil, apperror.NewValidationError("gameId", "must not be empty")
	}

	return that.do(ctx, http.MethodGet, "/games/"+gameID, nil)
}

func (that *Client) PostMove(ctx context.Context, gameID string, position int) (json.RawMessage, error) {
	if gameID == "" {
		return nil, apperror.NewValidationError("gameId", "must not be empty")
	}
	if position < 0 || position >= entity.BoardSize {
		return nil, apperror.NewValidationError("position", "must be between 0 and 8")
	}

	body := map[string]int{"position": position}

	return that.do(ctx, http.MethodPost, "/games/"+gameID+"/moves", body)
}

func (that *Client) GetHistory(ctx context.Context, gameID string) (json.RawMessage, error) {
	if gameID == "" {
		return nil, apperror.NewValidationError("gameId", "must not be empty")
	}

	return that.do(ctx, http.MethodGet, "/games/"+gameID+"/history", nil)
}

func (that *Client) GetLeaderboard(ctx context.Context) (json.RawMessage, error) {
	return that.do(ctx, http.MethodGet, "/leaderboard", nil)
}

func (that *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, that.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("could not build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := that.httpClient.Do(req)
	if err != nil {
		that.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return nil, &apperror.RemoteError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperror.RemoteError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		that.logger.Debug("non-success response", "method", method, "path", path, "status", resp.StatusCode)
		return nil, newStatusError(resp, raw)
	}

	return raw, nil
}

// newStatusError - wraps a non-2xx response, parsing the body as JSON when
// the content type says so, keeping it as text otherwise.
func newStatusError(resp *http.Response, raw []byte) *apperror.RemoteError {
	remoteErr := &apperror.RemoteError{
		StatusCode: resp.StatusCode,
		Raw:        raw,
	}

	if len(raw) == 0 {
		return remoteErr
	}

	if strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err == nil {
			remoteErr.Body = parsed
			return remoteErr
		}
	}

	remoteErr.Body = string(raw)

	return remoteErr
}
