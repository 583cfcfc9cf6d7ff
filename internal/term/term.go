// Package term is the terminal backend for the dashboard loop. It hosts a
// Bubble Tea program on the alternate screen, feeds its key messages to the
// loop's poll/read calls and shows whatever the loop draws.
package term

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tiledash/internal/keys"
	"tiledash/internal/ui"
)

var (
	// ErrClosed is returned once the terminal program has exited.
	ErrClosed = errors.New("term: terminal closed")
	// ErrNotStarted is returned by Poll, Read and Draw before Enter.
	ErrNotStarted = errors.New("term: terminal not entered")
)

const (
	keyBuffer           = 256
	defaultStartTimeout = 500 * time.Millisecond
	fallbackWidth       = 80
	fallbackHeight      = 24
)

type options struct {
	input        io.Reader
	output       io.Writer
	width        int
	height       int
	startTimeout time.Duration
	logger       *slog.Logger
}

// Option configures a Terminal.
type Option func(*options)

// WithInput reads keys from r instead of stdin.
func WithInput(r io.Reader) Option {
	return func(o *options) { o.input = r }
}

// WithOutput draws to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithSize pins the frame size and ignores resize reports.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithStartTimeout bounds how long Enter waits for the first size report.
func WithStartTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.startTimeout = d
		}
	}
}

// WithLogger sets the logger for lifecycle and dropped-key messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// frameMsg carries a finished frame into the program.
type frameMsg string

// Terminal implements the loop's Display and InputSource on top of a
// Bubble Tea program. Poll, Read and Draw must be called from one
// goroutine.
type Terminal struct {
	opts options
	prog *tea.Program

	keys    chan keys.Event
	pending keys.Event
	hasKey  bool

	mu     sync.Mutex
	width  int
	height int
	fixed  bool

	ready     chan struct{}
	readyOnce sync.Once
	done      chan struct{}
	err       error
	leaveOnce sync.Once
	leaveErr  error
}

// New creates a terminal. Nothing touches the tty until Enter.
func New(opts ...Option) *Terminal {
	o := options{
		startTimeout: defaultStartTimeout,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	t := &Terminal{
		opts:   o,
		keys:   make(chan keys.Event, keyBuffer),
		width:  fallbackWidth,
		height: fallbackHeight,
		ready:  make(chan struct{}),
		done:   make(chan struct{}),
	}
	if o.width > 0 {
		t.width, t.height, t.fixed = o.width, o.height, true
	}
	return t
}

// Enter switches to the alternate screen and starts reading keys. It
// returns once the terminal size is known, or after the start timeout with
// an 80×24 fallback.
func (t *Terminal) Enter() error {
	if t.prog != nil {
		return errors.New("term: already entered")
	}
	popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}
	if t.opts.input != nil {
		popts = append(popts, tea.WithInput(t.opts.input))
	}
	if t.opts.output != nil {
		popts = append(popts, tea.WithOutput(t.opts.output))
	}
	t.prog = tea.NewProgram(model{t: t}, popts...)

	go func() {
		defer close(t.done)
		if _, err := t.prog.Run(); err != nil {
			t.err = err
		}
	}()

	if t.fixed {
		return nil
	}
	select {
	case <-t.ready:
	case <-t.done:
		if t.err != nil {
			return fmt.Errorf("start terminal: %w", t.err)
		}
		return ErrClosed
	case <-time.After(t.opts.startTimeout):
		t.opts.logger.Warn("no terminal size reported, using fallback",
			"width", fallbackWidth, "height", fallbackHeight)
	}
	return nil
}

// Leave stops the program and restores the terminal. Safe to call more
// than once and before Enter.
func (t *Terminal) Leave() error {
	if t.prog == nil {
		return nil
	}
	t.leaveOnce.Do(func() {
		t.prog.Quit()
		<-t.done
		if t.err != nil && !errors.Is(t.err, tea.ErrProgramKilled) {
			t.leaveErr = fmt.Errorf("stop terminal: %w", t.err)
		}
	})
	return t.leaveErr
}

// Poll waits up to timeout for a key and reports whether one is ready.
func (t *Terminal) Poll(timeout time.Duration) (bool, error) {
	if t.prog == nil {
		return false, ErrNotStarted
	}
	if t.hasKey {
		return true, nil
	}
	select {
	case k := <-t.keys:
		t.hold(k)
		return true, nil
	default:
	}
	select {
	case <-t.done:
		return false, t.closedErr()
	default:
	}
	if timeout <= 0 {
		return false, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case k := <-t.keys:
		t.hold(k)
		return true, nil
	case <-t.done:
		return false, t.closedErr()
	case <-timer.C:
		return false, nil
	}
}

// Read returns the key found by Poll, or blocks for the next one.
func (t *Terminal) Read() (keys.Event, error) {
	if t.prog == nil {
		return keys.Event{}, ErrNotStarted
	}
	if t.hasKey {
		t.hasKey = false
		return t.pending, nil
	}
	select {
	case k := <-t.keys:
		return k, nil
	case <-t.done:
		return keys.Event{}, t.closedErr()
	}
}

// Draw hands fn a blank frame of the current size and shows the result.
func (t *Terminal) Draw(fn func(f *ui.Frame)) error {
	if t.prog == nil {
		return ErrNotStarted
	}
	select {
	case <-t.done:
		return t.closedErr()
	default:
	}
	w, h := t.Size()
	f := ui.NewFrame(w, h)
	fn(f)
	t.prog.Send(frameMsg(f.String()))
	return nil
}

// Size returns the frame size the next Draw will use.
func (t *Terminal) Size() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

func (t *Terminal) hold(k keys.Event) {
	t.pending, t.hasKey = k, true
}

func (t *Terminal) closedErr() error {
	if t.err != nil {
		return fmt.Errorf("%w: %w", ErrClosed, t.err)
	}
	return ErrClosed
}

// push is called from the program goroutine.
func (t *Terminal) push(k keys.Event) {
	select {
	case t.keys <- k:
	default:
		t.opts.logger.Debug("key buffer full, dropping", "key", k.String())
	}
}

func (t *Terminal) resize(w, h int) {
	if !t.fixed && w > 0 && h > 0 {
		t.mu.Lock()
		t.width, t.height = w, h
		t.mu.Unlock()
	}
	t.readyOnce.Do(func() { close(t.ready) })
}

// model is the Bubble Tea side of a Terminal. It holds no dashboard state,
// only the last frame drawn.
type model struct {
	t    *Terminal
	view string
}

var _ tea.Model = model{}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.t.push(keys.FromTea(msg))
	case tea.WindowSizeMsg:
		m.t.resize(msg.Width, msg.Height)
	case frameMsg:
		m.view = string(msg)
	}
	return m, nil
}

func (m model) View() string {
	return m.view
}
