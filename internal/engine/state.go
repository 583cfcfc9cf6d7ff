package engine

// State is the phase of the loop within a tick.
type State int

const (
	StatePolling State = iota
	StateDispatching
	StateDraining
	StateRendering
	StateThrottling
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StatePolling:
		return "Polling"
	case StateDispatching:
		return "Dispatching"
	case StateDraining:
		return "Draining"
	case StateRendering:
		return "Rendering"
	case StateThrottling:
		return "Throttling"
	case StateShuttingDown:
		return "ShuttingDown"
	default:
		return "Unknown"
	}
}
