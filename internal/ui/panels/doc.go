// Package panels holds the leaf content of the dashboard.
//
// Counter and Selector are interactive: they implement ui.InputHandler and
// report state changes as notifications on the bus sender passed to their
// constructors. Gauge and Sparkline are display-only and drive themselves
// from Render, which advances their state on every call. Rendering one of
// them twice produces two different frames.
package panels
