package engine

import "fmt"

// State is a step of the apply state machine.
type State int

const (
	StateValidating State = iota + 1
	StateResolvingScheme
	StateResolvingItems
	StateRunningHooks
	StatePersistingState
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateValidating:      "validating",
	StateResolvingScheme: "resolving-scheme",
	StateResolvingItems:  "resolving-items",
	StateRunningHooks:    "running-hooks",
	StatePersistingState: "persisting-state",
	StateDone:            "done",
	StateFailed:          "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// MarshalText renders the state by name in JSON output.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
