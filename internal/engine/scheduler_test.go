package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_Timeout(t *testing.T) {
	start := time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)
	s := NewScheduler(250*time.Millisecond, start)

	tests := []struct {
		elapsed time.Duration
		want    time.Duration
	}{
		{0, 250 * time.Millisecond},
		{100 * time.Millisecond, 150 * time.Millisecond},
		{249 * time.Millisecond, time.Millisecond},
		{250 * time.Millisecond, 0},
		{time.Second, 0},
		{time.Hour, 0},
		{-time.Second, 250 * time.Millisecond},
	}
	for _, tt := range tests {
		got := s.Timeout(start.Add(tt.elapsed))
		assert.Equal(t, tt.want, got, "elapsed %v", tt.elapsed)
	}
}

func TestScheduler_TimeoutBounds(t *testing.T) {
	start := time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)
	s := NewScheduler(DefaultInterval, start)
	for ms := -500; ms <= 2000; ms += 7 {
		got := s.Timeout(start.Add(time.Duration(ms) * time.Millisecond))
		assert.GreaterOrEqual(t, got, time.Duration(0))
		assert.LessOrEqual(t, got, DefaultInterval)
	}
}

func TestScheduler_Advance(t *testing.T) {
	start := time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)
	s := NewScheduler(250*time.Millisecond, start)

	assert.False(t, s.Advance(start.Add(100*time.Millisecond)))
	assert.Equal(t, start, s.LastTick(), "partial interval keeps the window")

	later := start.Add(250 * time.Millisecond)
	assert.True(t, s.Advance(later))
	assert.Equal(t, later, s.LastTick())
	assert.Equal(t, 250*time.Millisecond, s.Timeout(later))

	wayLater := later.Add(10 * time.Second)
	assert.True(t, s.Advance(wayLater))
	assert.Equal(t, wayLater, s.LastTick(), "late ticks restart from now, not catch up")
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Polling", StatePolling.String())
	assert.Equal(t, "Dispatching", StateDispatching.String())
	assert.Equal(t, "Draining", StateDraining.String())
	assert.Equal(t, "Rendering", StateRendering.String())
	assert.Equal(t, "Throttling", StateThrottling.String())
	assert.Equal(t, "ShuttingDown", StateShuttingDown.String())
	assert.Equal(t, "Unknown", State(99).String())
}
