package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tiledash/internal/bus"
	"tiledash/internal/keys"
	"tiledash/internal/ui"
)

var (
	// ErrStopped is returned when a loop that already shut down is run or
	// stepped again.
	ErrStopped = errors.New("engine: loop stopped")
	// ErrRunning is returned by Register once the loop has started.
	ErrRunning = errors.New("engine: loop already running")
	// ErrGridFull is returned by Register when every layout cell is taken.
	ErrGridFull = errors.New("engine: no free layout cell")
)

// Display is the output backend. Enter and Leave bracket the terminal
// session; Draw supplies a frame to fn and shows it, once per call.
type Display interface {
	Enter() error
	Leave() error
	Draw(fn func(f *ui.Frame)) error
}

// InputSource is the raw key source. Poll waits up to timeout for a key
// and reports whether one is ready; Read pops it.
type InputSource interface {
	Poll(timeout time.Duration) (bool, error)
	Read() (keys.Event, error)
}

type slot struct {
	id    string
	panel ui.Panel
}

// Loop owns the panels, the bus receiver and the tick schedule.
type Loop struct {
	display Display
	input   InputSource
	opts    options

	tx *bus.Sender
	rx *bus.Receiver

	slots      []slot
	dispatcher *Dispatcher
	renderer   *Renderer
	scheduler  *Scheduler

	state   State
	tick    int64
	started bool
}

// New creates a loop drawing to display and reading from input.
func New(display Display, input InputSource, opts ...Option) *Loop {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	tx, rx := bus.New(o.busOpts...)
	return &Loop{
		display:    display,
		input:      input,
		opts:       o,
		tx:         tx,
		rx:         rx,
		dispatcher: NewDispatcher(tx),
		renderer:   NewRenderer(ui.GridLayout(o.rows, o.cols)),
		state:      StatePolling,
	}
}

// Sender returns the bus handle to inject into interactive panels.
func (l *Loop) Sender() *bus.Sender {
	return l.tx
}

// State returns the phase the loop is in.
func (l *Loop) State() State {
	return l.state
}

// Register appends a panel under id. Registration order fixes both the
// dispatch order and the layout cell. Panels implementing ui.InputHandler
// receive keys.
func (l *Loop) Register(id string, p ui.Panel) error {
	if l.started {
		return ErrRunning
	}
	if len(l.slots) >= l.opts.rows*l.opts.cols {
		return fmt.Errorf("register %q: %w", id, ErrGridFull)
	}
	l.slots = append(l.slots, slot{id: id, panel: p})
	if h, ok := p.(ui.InputHandler); ok {
		l.dispatcher.Add(h)
	}
	l.renderer.Add(p)
	return nil
}

// Run enters the display, steps until quit, an error, or ctx is done, and
// always leaves the display on the way out. Cancellation is only observed
// between ticks.
func (l *Loop) Run(ctx context.Context) (err error) {
	if l.state == StateShuttingDown {
		return ErrStopped
	}
	if l.started {
		return ErrRunning
	}
	l.started = true
	log := l.opts.logger

	if err := l.display.Enter(); err != nil {
		l.shutdown()
		if lerr := l.display.Leave(); lerr != nil {
			log.Warn("leave display after failed enter", "err", lerr)
		}
		return fmt.Errorf("enter display: %w", err)
	}
	log.Info("dashboard started", "loop", l, "interval", l.opts.interval)

	defer func() {
		l.shutdown()
		if lerr := l.display.Leave(); lerr != nil {
			if err == nil {
				err = fmt.Errorf("leave display: %w", lerr)
			} else {
				log.Warn("leave display", "err", lerr)
			}
		}
		log.Info("dashboard stopped", "ticks", l.tick, "dropped", l.rx.Dropped())
	}()

	for {
		if ctx.Err() != nil {
			log.Info("context done", "err", context.Cause(ctx))
			return nil
		}
		st, err := l.Step(ctx)
		if err != nil {
			return err
		}
		if st == StateShuttingDown {
			return nil
		}
	}
}

// Step runs one tick and returns the state it ended in: StatePolling when
// the loop should continue, StateShuttingDown after the quit key or a
// fatal error. The first Step fixes the set of registered panels.
func (l *Loop) Step(ctx context.Context) (State, error) {
	if l.state == StateShuttingDown {
		return l.state, ErrStopped
	}
	if l.scheduler == nil {
		l.started = true
		l.scheduler = NewScheduler(l.opts.interval, l.opts.clock())
	}
	l.tick++
	_, span := l.opts.tracer.Start(ctx, "tick",
		trace.WithAttributes(attribute.Int64("tiledash.tick", l.tick)))
	defer span.End()

	st, err := l.step(span)
	if err != nil {
		// Poll, read and draw failures are fatal.
		l.shutdown()
		st = l.state
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.String("tiledash.state", st.String()))
	return st, err
}

func (l *Loop) step(span trace.Span) (State, error) {
	l.state = StatePolling
	ready, err := l.input.Poll(l.scheduler.Timeout(l.opts.clock()))
	if err != nil {
		return l.state, fmt.Errorf("poll input: %w", err)
	}
	if ready {
		k, err := l.input.Read()
		if err != nil {
			return l.state, fmt.Errorf("read input: %w", err)
		}
		l.state = StateDispatching
		span.SetAttributes(attribute.String("tiledash.key", k.String()))
		if l.dispatcher.Dispatch(k) == Stop {
			l.opts.logger.Info("quit key", "key", k.String())
			l.shutdown()
			return l.state, nil
		}
	}

	l.state = StateDraining
	events := l.rx.Drain()
	span.SetAttributes(attribute.Int("tiledash.events", len(events)))
	for _, ev := range events {
		l.handle(ev)
	}

	l.state = StateRendering
	if err := l.display.Draw(l.renderer.Render); err != nil {
		return l.state, fmt.Errorf("draw frame: %w", err)
	}

	l.state = StateThrottling
	l.scheduler.Advance(l.opts.clock())

	l.state = StatePolling
	return l.state, nil
}

func (l *Loop) handle(ev bus.Event) {
	switch ev.Kind {
	case bus.KindNotification:
		l.opts.logger.Info("received", "source", ev.Source, "text", ev.Text)
	case bus.KindKeyObserved:
		l.opts.logger.Debug("keypress", "key", ev.Key.String())
	}
	if l.opts.onEvent != nil {
		l.opts.onEvent(ev)
	}
}

func (l *Loop) shutdown() {
	l.state = StateShuttingDown
	l.rx.Close()
}

// Ticks returns how many ticks have started.
func (l *Loop) Ticks() int64 {
	return l.tick
}

// LogValue lets a Loop be logged as a group of its panel IDs.
func (l *Loop) LogValue() slog.Value {
	ids := make([]string, len(l.slots))
	for i, s := range l.slots {
		ids[i] = s.id
	}
	return slog.GroupValue(
		slog.Any("panels", ids),
		slog.String("state", l.state.String()),
		slog.Int64("ticks", l.tick),
	)
}
