package config

// StateID identifies a locomotion state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	// Locomotion states
	Idle StateID = iota - 1
	Walking
	StateCount // Must be last - used for dispatch table sizing
)

// StateNames maps StateID to the name used for animation bindings and clip files.
var StateNames = map[StateID]string{
	Idle:    "idle",
	Walking: "walking",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}

// StateFromName resolves a state name. Unknown names report StateNone.
func StateFromName(name string) StateID {
	for id, n := range StateNames {
		if n == name {
			return id
		}
	}
	return StateNone
}
