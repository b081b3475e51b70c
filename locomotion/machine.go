// Package locomotion drives the actor's locomotion mode (idle, walking) and
// the clip playback that goes with it.
package locomotion

import (
	"errors"
	"log"

	"github.com/automoto/strider/assets/animations"
	cfg "github.com/automoto/strider/config"
)

// ErrEmptyRegistry is returned when a machine is built without any states.
var ErrEmptyRegistry = errors.New("locomotion: no states registered")

// Input is the read-only view of the InputState a machine consumes.
type Input interface {
	Pressed(id cfg.ActionID) bool
	AnyDirection() bool
}

// Clips resolves a state name to its animation binding.
type Clips interface {
	Get(name string) (animations.Entry, bool)
}

// Funcs is the behaviour of one state. Any hook may be nil.
type Funcs struct {
	Enter  func(s *State, prev *State)
	Exit   func(s *State)
	Update func(s *State, dt float64, in Input)
}

// Table is the dispatch table indexed by StateID. A nil slot is an
// unregistered state.
type Table [cfg.StateCount]*Funcs

// Machine holds at most one active State. A State is built on every entry
// and dropped on exit.
type Machine struct {
	CrossFade float64 // seconds used to fade clips in and out
	Select    func(in Input) cfg.StateID

	table   Table
	clips   Clips
	current *State
}

// NewMachine validates table and returns an inactive machine. Nothing plays
// until the first SetState.
func NewMachine(table Table, clips Clips) (*Machine, error) {
	registered := false
	for _, f := range table {
		if f != nil {
			registered = true
			break
		}
	}
	if !registered {
		return nil, ErrEmptyRegistry
	}
	return &Machine{
		CrossFade: cfg.Animation.CrossFade,
		Select:    SelectState,
		table:     table,
		clips:     clips,
	}, nil
}

// SelectState is the default input mapping: walking while any directional
// intent is held, idle otherwise.
func SelectState(in Input) cfg.StateID {
	if in.AnyDirection() {
		return cfg.Walking
	}
	return cfg.Idle
}

// Current returns the active state, or nil before the first activation.
func (m *Machine) Current() *State {
	return m.current
}

// CurrentID returns the active state's id, or StateNone.
func (m *Machine) CurrentID() cfg.StateID {
	if m.current == nil {
		return cfg.StateNone
	}
	return m.current.ID
}

// SetState transitions to id. Requesting the active state does nothing.
// The first activation only installs the state: Exit and Enter run for
// transitions between two states.
func (m *Machine) SetState(id cfg.StateID) {
	prev := m.current
	if prev != nil && prev.ID == id {
		return
	}

	funcs := m.lookup(id)
	if funcs == nil {
		log.Printf("[locomotion] ignoring unregistered state %v (%d)", id, id)
		return
	}

	if prev != nil && prev.funcs.Exit != nil {
		prev.funcs.Exit(prev)
	}

	next := &State{ID: id, machine: m, funcs: funcs}
	m.current = next
	if prev != nil && funcs.Enter != nil {
		funcs.Enter(next, prev)
	}
}

// SetStateByName transitions to the state registered under name.
func (m *Machine) SetStateByName(name string) {
	m.SetState(cfg.StateFromName(name))
}

func (m *Machine) lookup(id cfg.StateID) *Funcs {
	if id < 0 || id >= cfg.StateCount {
		return nil
	}
	return m.table[id]
}

// Update re-evaluates the input mapping and runs the active state's update.
// An inactive machine stays inactive.
func (m *Machine) Update(dt float64, in Input) {
	if m.current == nil {
		return
	}
	m.SetState(m.Select(in))

	s := m.current
	if s.funcs.Update != nil {
		s.funcs.Update(s, dt, in)
	}
	s.Elapsed += dt
}
