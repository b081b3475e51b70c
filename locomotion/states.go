package locomotion

import cfg "github.com/automoto/strider/config"

// DefaultTable registers the idle and walking states.
func DefaultTable() Table {
	var t Table
	t[cfg.Idle] = &Funcs{
		Enter:  func(s *State, _ *State) { s.Play() },
		Exit:   (*State).Stop,
		Update: func(s *State, _ float64, _ Input) { s.Play() },
	}
	t[cfg.Walking] = &Funcs{
		Enter: func(s *State, _ *State) { s.Play() },
		Exit: func(s *State) {
			if s.action != nil {
				s.action.TimeScale = 1
			}
			s.Stop()
		},
		Update: updateWalking,
	}
	return t
}

// updateWalking keeps the walk clip playing and runs it faster while sprinting.
func updateWalking(s *State, _ float64, in Input) {
	if !s.Play() {
		return
	}
	scale := 1.0
	if in.Pressed(cfg.ActionSprint) {
		scale = cfg.Movement.SprintMultiplier
	}
	s.action.TimeScale = scale
}
