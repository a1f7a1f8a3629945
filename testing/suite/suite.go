package suite

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

const maxWaitDuration = 30 * time.Second

// Suite - an in-process fake remote authority. Tests register handlers on
// Router to script responses and failure modes per endpoint.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Router  *mux.Router
	BaseURL string
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	router := mux.NewRouter()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return ctx, &Suite{
		T:      t,
		Logger: logger,

		Router:  router,
		BaseURL: server.URL,
	}
}

// NewUnreachable - a suite whose base URL refuses every connection, for
// exercising the offline fallback paths.
func NewUnreachable(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close() // the port is now dead, every request fails at transport level

	return ctx, &Suite{
		T:      t,
		Logger: logger,

		BaseURL: baseURL,
	}
}

// RespondJSON - registers a canned JSON response for a route. Path variables
// follow gorilla/mux syntax, e.g. /games/{id}/moves.
func (that *Suite) RespondJSON(method, path string, status int, body string) {
	that.Helper()

	that.Router.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}).Methods(method)
}

// RespondText - registers a canned plain-text response for a route.
func (that *Suite) RespondText(method, path string, status int, body string) {
	that.Helper()

	that.Router.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}).Methods(method)
}
