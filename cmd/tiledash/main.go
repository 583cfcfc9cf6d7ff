// Command tiledash runs a four-panel terminal dashboard until q or Ctrl+C.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tiledash/internal/engine"
	"tiledash/internal/telemetry"
	"tiledash/internal/term"
	"tiledash/internal/ui"
	"tiledash/internal/ui/panels"
)

// Version is set at build time via ldflags.
var Version = "dev"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiledash",
		Short: "Tiled terminal dashboard",
		Long: `tiledash shows a counter, a fruit selector, a progress gauge and a
scrolling sample chart in a 2x2 grid.

Keys:
  up/down      change the counter
  left/right   move the selection
  q, ctrl+c    quit`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "tiledash: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := newLogger(os.Stderr)

	tp, err := telemetry.NewProvider(ctx)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			log.Warn("telemetry shutdown", "err", err)
		}
	}()

	terminal := term.New(term.WithLogger(log))
	loop := engine.New(terminal, terminal,
		engine.WithLogger(log),
		engine.WithTracer(tp.Tracer()),
	)

	if err := registerPanels(loop); err != nil {
		return err
	}
	return loop.Run(ctx)
}

// registerPanels fills the grid left to right, top to bottom.
func registerPanels(loop *engine.Loop) error {
	tx := loop.Sender()
	for _, p := range []struct {
		id    string
		panel ui.Panel
	}{
		{panels.CounterID, panels.NewCounter(tx)},
		{panels.SelectorID, panels.NewSelector(tx, nil)},
		{"gauge", panels.NewGauge()},
		{"sparkline", panels.NewSparkline(nil)},
	} {
		if err := loop.Register(p.id, p.panel); err != nil {
			return err
		}
	}
	return nil
}

// newLogger writes text logs to w unless w is the terminal the dashboard
// draws on.
func newLogger(w io.Writer) *slog.Logger {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
