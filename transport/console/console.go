package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-client/internal/panel"
	"github.com/rocketscienceinc/tictactoe-client/internal/session"
)

const helpText = `commands:
  1-9      place your mark on that cell
  new      start a fresh game
  board    redraw the board
  history  show the move log
  top      show the leaderboard
  sync     pull the latest game state from the server
  quit     leave`

// Console is the shell around the session engine: it renders state and
// forwards user intents. No game logic lives here.
type Console struct {
	logger      *slog.Logger
	engine      *session.Engine
	history     *panel.History
	leaderboard *panel.Leaderboard

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, engine *session.Engine, history *panel.History, leaderboard *panel.Leaderboard, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:      logger.With("component", "console"),
		engine:      engine,
		history:     history,
		leaderboard: leaderboard,

		in:  in,
		out: out,
	}
}

// Run - the command loop. Blocks until quit, EOF or context cancellation.
func (that *Console) Run(ctx context.Context) error {
	fmt.Fprintln(that.out, "tic-tac-toe")
	fmt.Fprintln(that.out, helpText)

	that.show(that.engine.Start(ctx))

	scanner := bufio.NewScanner(that.in)
	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(that.out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		if quit := that.dispatch(ctx, strings.TrimSpace(scanner.Text())); quit {
			return nil
		}
	}
}

func (that *Console) dispatch(ctx context.Context, input string) bool {
	switch input {
	case "":
		return false
	case "quit", "exit", "q":
		fmt.Fprintln(that.out, "bye")
		return true
	case "help", "?":
		fmt.Fprintln(that.out, helpText)
	case "new", "reset":
		that.show(that.engine.Reset(ctx))
	case "board":
		that.show(that.engine.Snapshot())
	case "sync":
		snapshot, ok := that.engine.Sync(ctx)
		if !ok {
			fmt.Fprintln(that.out, "nothing to sync")
		}
		that.show(snapshot)
	case "history":
		that.history.Refresh(ctx)
		fmt.Fprint(that.out, RenderHistory(that.history))
	case "top", "leaderboard":
		that.leaderboard.Refresh(ctx)
		fmt.Fprint(that.out, RenderLeaderboard(that.leaderboard))
	default:
		that.handleCell(ctx, input)
	}

	return false
}

func (that *Console) handleCell(ctx context.Context, input string) {
	number, err := strconv.Atoi(input)
	if err != nil || number < 1 || number > 9 {
		that.logger.Debug("unknown command", "input", input)
		fmt.Fprintln(that.out, "unknown command, type 'help'")
		return
	}

	snapshot, applied := that.engine.SubmitMove(ctx, number-1)
	if !applied {
		fmt.Fprintln(that.out, "that move is not available")
	}
	that.show(snapshot)
}

func (that *Console) show(s session.Session) {
	fmt.Fprint(that.out, RenderBoard(s))
	fmt.Fprintln(that.out, RenderStatus(s))

	if s.LastErr != nil {
		fmt.Fprintln(that.out, "note: playing offline, the server could not be reached")
	}
}
