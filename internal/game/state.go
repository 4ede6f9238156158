package game

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// State is the top-level phase of the game.
type State int

const (
	Loading State = iota
	Menu
	Playing
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	}
	return "unknown"
}

// allowed lists the legal transitions. Playing can fall back to Menu.
var allowed = map[State][]State{
	Loading: {Menu},
	Menu:    {Playing},
	Playing: {Menu},
}

// Machine holds the current state and runs enter hooks on transitions.
type Machine struct {
	current State
	onEnter map[State][]func()
	log     *zap.Logger
}

// NewMachine returns a machine in Loading.
func NewMachine(log *zap.Logger) *Machine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Machine{
		current: Loading,
		onEnter: make(map[State][]func()),
		log:     log,
	}
}

// Current returns the active state.
func (m *Machine) Current() State {
	return m.current
}

// In reports whether s is the active state.
func (m *Machine) In(s State) bool {
	return m.current == s
}

// OnEnter registers fn to run every time the machine enters s.
func (m *Machine) OnEnter(s State, fn func()) {
	m.onEnter[s] = append(m.onEnter[s], fn)
}

// Transition moves to next if the move is legal and runs its enter hooks in registration order.
func (m *Machine) Transition(next State) error {
	ok := false
	for _, s := range allowed[m.current] {
		if s == next {
			ok = true
			break
		}
	}
	if !ok {
		return errors.Errorf("game: cannot go from %s to %s", m.current, next)
	}
	m.log.Info("state change", zap.Stringer("from", m.current), zap.Stringer("to", next))
	m.current = next
	for _, fn := range m.onEnter[next] {
		fn()
	}
	return nil
}
