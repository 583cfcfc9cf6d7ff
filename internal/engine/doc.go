// Package engine runs the dashboard: a fixed-cadence loop that polls for one
// key per tick, dispatches it to the registered panels, drains the
// notification bus, and redraws every panel into a tiled layout.
//
// Each tick moves through the states
//
//	Polling → Dispatching → Draining → Rendering → Throttling → Polling
//
// and leaves for ShuttingDown when the dispatched key is the quit key.
// Everything runs on the caller's goroutine; the only place a tick waits is
// the bounded input poll.
package engine
