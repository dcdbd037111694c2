// Package state tracks the engine lifecycle as a small atomic state
// machine.
package state

import "sync/atomic"

// EngineState is one phase of the engine lifecycle.
type EngineState int32

const (
	Uninitialized EngineState = iota
	Initializing
	Running
	Paused
	ShuttingDown
	Terminated
)

func (s EngineState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case ShuttingDown:
		return "shutting down"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Manager holds the current engine state. Reads and transitions are safe
// from any goroutine. The zero value starts Uninitialized.
type Manager struct {
	current atomic.Int32
}

// CurrentState returns the engine state.
func (m *Manager) CurrentState() EngineState {
	return EngineState(m.current.Load())
}

// SetState overrides the state unconditionally. Prefer TryTransition in
// normal pipeline flow.
func (m *Manager) SetState(s EngineState) {
	m.current.Store(int32(s))
}

// TryTransition moves from the expected state to next atomically. It
// returns false when the current state was not the expected one.
func (m *Manager) TryTransition(from, to EngineState) bool {
	return m.current.CompareAndSwap(int32(from), int32(to))
}
