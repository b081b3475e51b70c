package animations

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action is the playback handle for one clip on one mixer.
type Action struct {
	Clip      *Clip
	TimeScale float64
	Looped    bool // set once a looping clip wraps

	time     float64
	weight   float32
	fade     *gween.Tween
	running  bool
	stopping bool
}

func newAction(clip *Clip) *Action {
	return &Action{
		Clip:      clip,
		TimeScale: 1,
	}
}

// Play starts the clip, fading its weight in over fade seconds. Playing an
// action that is fading out reverses the fade without restarting the clip.
func (a *Action) Play(fade float64) {
	if !a.running {
		a.Restart()
	}
	a.running = true
	a.stopping = false
	a.fadeTo(1, fade)
}

// Stop fades the clip out over fade seconds and then halts it.
func (a *Action) Stop(fade float64) {
	if !a.running || a.stopping {
		return
	}
	a.stopping = true
	a.fadeTo(0, fade)
	if a.fade == nil {
		a.halt()
	}
}

func (a *Action) fadeTo(target float32, fade float64) {
	if fade <= 0 {
		a.weight = target
		a.fade = nil
		return
	}
	a.fade = gween.New(a.weight, target, float32(fade), ease.Linear)
}

func (a *Action) halt() {
	a.running = false
	a.stopping = false
	a.weight = 0
	a.fade = nil
}

// Update advances clip time and the fade by dt seconds.
func (a *Action) Update(dt float64) {
	if !a.running {
		return
	}
	if a.fade != nil {
		w, done := a.fade.Update(float32(dt))
		a.weight = w
		if done {
			a.fade = nil
			if a.stopping {
				a.halt()
				return
			}
		}
	}

	a.time += dt * a.TimeScale
	if a.time < a.Clip.Duration {
		return
	}
	if a.Clip.Loop {
		a.Looped = true
		a.time = math.Mod(a.time, a.Clip.Duration)
		return
	}
	// Stay on the last frame
	a.time = a.Clip.Duration
}

// Restart rewinds the clip to its first frame.
func (a *Action) Restart() {
	a.time = 0
	a.Looped = false
}

// Running reports whether the action is playing, including while fading out.
func (a *Action) Running() bool {
	return a.running
}

// Stopping reports whether the action is fading out.
func (a *Action) Stopping() bool {
	return a.stopping
}

func (a *Action) Weight() float64 {
	return float64(a.weight)
}

func (a *Action) Time() float64 {
	return a.time
}

// Frame returns the discrete pose index for the current clip time.
func (a *Action) Frame() int {
	frame := int(a.time / a.Clip.Duration * float64(a.Clip.Frames))
	if frame >= a.Clip.Frames {
		frame = a.Clip.Frames - 1
	}
	return frame
}

// Phase returns the clip progress in [0, 1).
func (a *Action) Phase() float64 {
	return a.time / a.Clip.Duration
}
