package engine

import (
	"fmt"
	"time"

	"tiledash/internal/bus"
	"tiledash/internal/keys"
	"tiledash/internal/ui"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time      { return c.now }
func (c *fakeClock) Add(d time.Duration) { c.now = c.now.Add(d) }

// fakeInput replays scripted keys, one per poll. An empty poll advances the
// clock by the full timeout, as a real wait would.
type fakeInput struct {
	clock    *fakeClock
	pending  []keys.Event
	timeouts []time.Duration
	reads    int
	pollErr  error
	readErr  error
}

func (in *fakeInput) Poll(timeout time.Duration) (bool, error) {
	in.timeouts = append(in.timeouts, timeout)
	if in.pollErr != nil {
		return false, in.pollErr
	}
	if len(in.pending) > 0 {
		return true, nil
	}
	if in.clock != nil {
		in.clock.Add(timeout)
	}
	return false, nil
}

func (in *fakeInput) Read() (keys.Event, error) {
	if in.readErr != nil {
		return keys.Event{}, in.readErr
	}
	if len(in.pending) == 0 {
		return keys.Event{}, fmt.Errorf("read with nothing pending")
	}
	k := in.pending[0]
	in.pending = in.pending[1:]
	in.reads++
	return k, nil
}

// fakeDisplay counts lifecycle calls and keeps the last frame.
type fakeDisplay struct {
	width, height int
	entered       int
	left          int
	draws         int
	last          *ui.Frame
	enterErr      error
	leaveErr      error
	drawErr       error
	onDraw        func()
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{width: 80, height: 24}
}

func (d *fakeDisplay) Enter() error {
	d.entered++
	return d.enterErr
}

func (d *fakeDisplay) Leave() error {
	d.left++
	return d.leaveErr
}

func (d *fakeDisplay) Draw(fn func(f *ui.Frame)) error {
	if d.drawErr != nil {
		return d.drawErr
	}
	d.draws++
	f := ui.NewFrame(d.width, d.height)
	fn(f)
	d.last = f
	if d.onDraw != nil {
		d.onDraw()
	}
	return nil
}

// probePanel records every call made to it into a shared trace.
type probePanel struct {
	name    string
	trace   *[]string
	tx      *bus.Sender
	inputs  []keys.Event
	regions []ui.Rect
}

func (p *probePanel) Render(f *ui.Frame, r ui.Rect) {
	p.regions = append(p.regions, r)
	if p.trace != nil {
		*p.trace = append(*p.trace, "render:"+p.name)
	}
}

func (p *probePanel) HandleInput(k keys.Event) {
	p.inputs = append(p.inputs, k)
	if p.trace != nil {
		*p.trace = append(*p.trace, "input:"+p.name+":"+k.String())
	}
	p.tx.Send(bus.Notification(p.name, p.name+" saw "+k.String()))
}

// staticPanel renders but never handles input.
type staticPanel struct {
	renders int
}

func (p *staticPanel) Render(f *ui.Frame, r ui.Rect) {
	p.renders++
	f.Put(r, "static")
}
