package application

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-client/internal/config"
	"github.com/rocketscienceinc/tictactoe-client/internal/panel"
	"github.com/rocketscienceinc/tictactoe-client/internal/remote"
	"github.com/rocketscienceinc/tictactoe-client/internal/session"
	"github.com/rocketscienceinc/tictactoe-client/transport/console"
)

// RunApp - wires the client together and runs the console until quit or signal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	baseURL := conf.API.ResolveBaseURL()
	log.Info("Using remote authority", "base_url", baseURL)

	// no client-side timeout: deadlines are the environment's business
	client := remote.New(logger, baseURL, &http.Client{})

	notifier := session.NewNotifier()
	engine := session.NewEngine(logger, client, notifier, conf.PlayerXName, conf.PlayerOName)

	history := panel.NewHistory(logger, client, notifier)
	leaderboard := panel.NewLeaderboard(logger, client)

	shell := console.New(logger, engine, history, leaderboard, os.Stdin, os.Stdout)

	return shell.Run(ctx)
}
