// Package session tracks the emulation session lifecycle and talks to the
// session daemon.
package session

import (
	"errors"
	"fmt"

	"netlab-designer/internal/logger"
)

// Phase is the session lifecycle phase. Transitions are strictly
// Design -> Starting -> Running -> Stopping -> Design.
type Phase int

const (
	PhaseDesign Phase = iota
	PhaseStarting
	PhaseRunning
	PhaseStopping
)

func (p Phase) String() string {
	switch p {
	case PhaseDesign:
		return "design"
	case PhaseStarting:
		return "starting"
	case PhaseRunning:
		return "running"
	case PhaseStopping:
		return "stopping"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ErrInvalidTransition reports a lifecycle request issued from the wrong
// phase. Correct UI wiring disables the triggering controls, so hitting this
// indicates a programming error rather than a user action.
var ErrInvalidTransition = errors.New("invalid session transition")

// Machine is the session lifecycle state machine. It is owned by the UI
// event loop and must only be mutated from there; the phase never changes
// on a rejected request.
type Machine struct {
	phase Phase
	log   logger.Logger
}

func NewMachine(log logger.Logger) *Machine {
	return &Machine{phase: PhaseDesign, log: log}
}

func (m *Machine) Phase() Phase {
	return m.phase
}

// RequestStart moves the session from design to starting.
func (m *Machine) RequestStart() error {
	return m.transition(PhaseDesign, PhaseStarting, "start")
}

// CompleteStart resolves a pending start: running on success, back to
// design on failure.
func (m *Machine) CompleteStart(ok bool) error {
	if ok {
		return m.transition(PhaseStarting, PhaseRunning, "start complete")
	}
	return m.transition(PhaseStarting, PhaseDesign, "start failed")
}

// RequestStop moves the session from running to stopping.
func (m *Machine) RequestStop() error {
	return m.transition(PhaseRunning, PhaseStopping, "stop")
}

// CompleteStop resolves a pending stop, returning to design.
func (m *Machine) CompleteStop() error {
	return m.transition(PhaseStopping, PhaseDesign, "stop complete")
}

func (m *Machine) transition(from, to Phase, op string) error {
	if m.phase != from {
		return fmt.Errorf("%s requested in phase %s: %w", op, m.phase, ErrInvalidTransition)
	}
	m.log.Debug("session", "phase transition", map[string]interface{}{
		"op":   op,
		"from": from.String(),
		"to":   to.String(),
	})
	m.phase = to
	return nil
}
