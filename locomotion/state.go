package locomotion

import (
	"github.com/automoto/strider/assets/animations"
	cfg "github.com/automoto/strider/config"
)

// State is one activation of a locomotion state.
type State struct {
	ID      cfg.StateID
	Elapsed float64 // seconds since entry

	machine *Machine
	funcs   *Funcs
	action  *animations.Action
}

func (s *State) Name() string {
	return s.ID.String()
}

func (s *State) Machine() *Machine {
	return s.machine
}

// Action returns the playback handle this activation started, if any.
func (s *State) Action() *animations.Action {
	return s.action
}

// Play starts the clip bound to this state's name. It reports false while no
// clip is bound. A rebound clip replaces the one this activation was playing.
func (s *State) Play() bool {
	if s.machine.clips == nil {
		return false
	}
	entry, ok := s.machine.clips.Get(s.Name())
	if !ok || entry.Action == nil {
		return false
	}
	if s.action == entry.Action && s.action.Running() && !s.action.Stopping() {
		return true
	}
	if s.action != nil && s.action != entry.Action {
		s.action.Stop(s.machine.CrossFade)
	}
	s.action = entry.Action
	s.action.Play(s.machine.CrossFade)
	return true
}

// Stop fades out whatever this activation started.
func (s *State) Stop() {
	if s.action == nil {
		return
	}
	s.action.Stop(s.machine.CrossFade)
	s.action = nil
}
