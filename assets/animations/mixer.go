package animations

import "math"

// Mixer is the playback engine for a single model. It owns one Action per
// clip and advances all of them with the same delta time.
type Mixer struct {
	Model   *Model
	actions map[string]*Action
	order   []*Action
}

func NewMixer(model *Model) *Mixer {
	return &Mixer{
		Model:   model,
		actions: make(map[string]*Action),
	}
}

// ClipAction returns the action for clip, creating it on first use. A clip
// reloaded under an existing name gets a fresh action.
func (m *Mixer) ClipAction(clip *Clip) *Action {
	if a, ok := m.actions[clip.Name]; ok && a.Clip == clip {
		return a
	}
	a := newAction(clip)
	if old, ok := m.actions[clip.Name]; ok {
		old.halt()
		m.remove(old)
	}
	m.actions[clip.Name] = a
	m.order = append(m.order, a)
	return a
}

func (m *Mixer) remove(a *Action) {
	for i, cur := range m.order {
		if cur == a {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

func (m *Mixer) Update(dt float64) {
	for _, a := range m.order {
		a.Update(dt)
	}
}

// RootOffset blends the vertical root motion of every running action by weight.
func (m *Mixer) RootOffset() float64 {
	var offset float64
	for _, a := range m.order {
		if !a.Running() || a.Clip.Bob == 0 {
			continue
		}
		offset += a.Weight() * a.Clip.Bob * math.Abs(math.Sin(2*math.Pi*a.Phase()))
	}
	return offset * m.Model.Scale
}

// Running returns the names of clips currently playing, in creation order.
func (m *Mixer) Running() []string {
	var names []string
	for _, a := range m.order {
		if a.Running() {
			names = append(names, a.Clip.Name)
		}
	}
	return names
}
