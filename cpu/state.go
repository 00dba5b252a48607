package cpu

// State of a thread within one run cycle.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_IDLE      = State(0) // idle
	STATE_FETCHING  = State(1) // fetching
	STATE_EXECUTING = State(2) // executing
	STATE_NOTIFYING = State(3) // notifying
)
