package status

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/matheus3301/tuikit/internal/bus"
)

// State represents the lifecycle state of the open document.
type State string

const (
	Empty    State = "EMPTY"
	Clean    State = "CLEAN"
	Modified State = "MODIFIED"
	Saving   State = "SAVING"
	Error    State = "ERROR"
)

// KindChanged is the bus event kind published on every transition.
const KindChanged = "document.state_changed"

// validTransitions defines allowed state transitions.
var validTransitions = map[State][]State{
	Empty:    {Clean, Modified},
	Clean:    {Modified, Clean, Empty},
	Modified: {Saving, Clean, Empty},
	Saving:   {Clean, Error},
	Error:    {Saving, Modified, Clean, Empty},
}

// Machine tracks and enforces document state transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
	bus     *bus.Bus
}

// NewMachine creates a new state machine starting in Empty state.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{
		current: Empty,
		bus:     b,
	}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Dirty reports whether the document holds edits that are not in the store.
func (m *Machine) Dirty() bool {
	switch m.Current() {
	case Modified, Error:
		return true
	}
	return false
}

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	allowed := validTransitions[m.current]
	if !slices.Contains(allowed, to) {
		from := m.current
		m.mu.Unlock()
		return fmt.Errorf("invalid transition from %s to %s", from, to)
	}
	from := m.current
	m.current = to
	m.mu.Unlock()

	if m.bus != nil {
		m.bus.Publish(bus.Event{
			Kind:      KindChanged,
			Timestamp: time.Now(),
			Payload: StatusChange{
				From: from,
				To:   to,
			},
		})
	}
	return nil
}

// MarkModified moves to Modified unless the document is already dirty.
// Saving documents stay in Saving; the edit is picked up by the next save.
func (m *Machine) MarkModified() error {
	switch m.Current() {
	case Modified, Saving:
		return nil
	}
	return m.Transition(Modified)
}

// StatusChange is the payload for status change events.
type StatusChange struct {
	From State
	To   State
}
