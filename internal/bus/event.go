package bus

import "time"

// Event is a toolkit notification published on the bus. Kind is a dotted
// name such as "action.enter"; subscribers filter on its prefix.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Namespace returns the part of Kind up to and including the first dot, or
// Kind itself when it has none.
func (e Event) Namespace() string {
	for i := 0; i < len(e.Kind); i++ {
		if e.Kind[i] == '.' {
			return e.Kind[:i+1]
		}
	}
	return e.Kind
}
