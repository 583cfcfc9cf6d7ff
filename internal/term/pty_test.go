package term_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiledash/internal/engine"
	"tiledash/internal/term"
	"tiledash/internal/ui/panels"
)

var (
	_ engine.Display     = (*term.Terminal)(nil)
	_ engine.InputSource = (*term.Terminal)(nil)
)

// TestTerminal_PTY drives a full dashboard through a pseudo-terminal: two
// up arrows followed by the quit key.
func TestTerminal_PTY(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping pty test in short mode")
	}
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()
	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}))

	// The program writes nothing until the tty is in raw mode.
	drawing := make(chan struct{})
	go func() {
		buf := make([]byte, 1)
		if _, err := ptmx.Read(buf); err == nil {
			close(drawing)
		}
		_, _ = io.Copy(io.Discard, ptmx)
	}()

	display := term.New(term.WithInput(tty), term.WithOutput(tty), term.WithStartTimeout(2*time.Second))
	loop := engine.New(display, display, engine.WithInterval(20*time.Millisecond))
	counter := panels.NewCounter(loop.Sender())
	require.NoError(t, loop.Register(panels.CounterID, counter))
	require.NoError(t, loop.Register(panels.SelectorID, panels.NewSelector(loop.Sender(), nil)))

	errc := make(chan error, 1)
	go func() { errc <- loop.Run(context.Background()) }()

	select {
	case <-drawing:
	case <-time.After(5 * time.Second):
		t.Fatal("dashboard never drew")
	}
	for _, in := range []string{"\x1b[A", "\x1b[A", "q"} {
		time.Sleep(50 * time.Millisecond)
		_, err := ptmx.Write([]byte(in))
		require.NoError(t, err)
	}

	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dashboard did not quit")
	}
	assert.Equal(t, 2, counter.Count())

	w, h := display.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}
