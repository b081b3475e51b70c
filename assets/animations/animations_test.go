package animations

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func testClip(name string, loop bool) *Clip {
	return &Clip{Name: name, Duration: 1, Frames: 10, Loop: loop, Bob: 0.1}
}

func TestParseClip(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
		want    Clip
	}{
		{
			name:    "valid",
			content: "name: walking\nduration: 0.8\nframes: 8\nloop: true\nbob: 0.05\n",
			want:    Clip{Name: "walking", Duration: 0.8, Frames: 8, Loop: true, Bob: 0.05},
		},
		{
			name:    "frames default to one",
			content: "name: idle\nduration: 2\n",
			want:    Clip{Name: "idle", Duration: 2, Frames: 1},
		},
		{name: "missing name", content: "duration: 1\n", wantErr: "no name"},
		{name: "zero duration", content: "name: idle\n", wantErr: "duration"},
		{name: "bad yaml", content: "name: [", wantErr: "decode clip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClip([]byte(tt.content))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseClip() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClip() unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("ParseClip() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestParseModel(t *testing.T) {
	m, err := ParseModel([]byte("name: ty\nbones: [hips, spine]\n"))
	if err != nil {
		t.Fatalf("ParseModel() error = %v", err)
	}
	if m.Scale != 1 {
		t.Errorf("Scale = %v, want default 1", m.Scale)
	}
	if _, err := ParseModel([]byte("name: ty\n")); err == nil {
		t.Error("ParseModel() without bones returned nil error")
	}
}

func TestActionFadeInAndOut(t *testing.T) {
	a := newAction(testClip("walking", true))

	a.Play(0.2)
	if !a.Running() {
		t.Fatal("Running() = false after Play")
	}
	a.Update(0.1)
	if w := a.Weight(); math.Abs(w-0.5) > 1e-6 {
		t.Errorf("Weight() halfway through fade in = %v, want 0.5", w)
	}
	a.Update(0.1)
	if w := a.Weight(); math.Abs(w-1) > 1e-6 {
		t.Errorf("Weight() after fade in = %v, want 1", w)
	}

	a.Stop(0.2)
	if !a.Stopping() || !a.Running() {
		t.Fatal("Stop() with a fade halted immediately")
	}
	a.Update(0.2)
	if a.Running() {
		t.Error("Running() = true after fade out completed")
	}
	if a.Weight() != 0 {
		t.Errorf("Weight() after stop = %v, want 0", a.Weight())
	}
}

func TestActionImmediate(t *testing.T) {
	a := newAction(testClip("idle", true))
	a.Play(0)
	if a.Weight() != 1 {
		t.Errorf("Weight() after Play(0) = %v, want 1", a.Weight())
	}
	a.Stop(0)
	if a.Running() {
		t.Error("Running() = true after Stop(0)")
	}
}

func TestActionReplayDuringFadeOut(t *testing.T) {
	a := newAction(testClip("walking", true))
	a.Play(0)
	a.Update(0.3)
	a.Stop(1)
	a.Update(0.5)
	a.Play(0.5)
	if a.Stopping() {
		t.Error("Stopping() = true after Play during fade out")
	}
	if math.Abs(a.Time()-0.8) > 1e-6 {
		t.Errorf("Time() = %v, want 0.8 (no restart while running)", a.Time())
	}
}

func TestActionLoopAndClamp(t *testing.T) {
	loop := newAction(testClip("walking", true))
	loop.Play(0)
	loop.Update(1.25)
	if !loop.Looped || math.Abs(loop.Time()-0.25) > 1e-9 {
		t.Errorf("looping clip: Looped = %v, Time() = %v, want true, 0.25", loop.Looped, loop.Time())
	}
	if got := loop.Frame(); got != 2 {
		t.Errorf("Frame() = %d, want 2", got)
	}

	once := newAction(testClip("wave", false))
	once.Play(0)
	once.Update(3)
	if once.Time() != 1 {
		t.Errorf("one-shot clip Time() = %v, want clamped to 1", once.Time())
	}
	if got := once.Frame(); got != 9 {
		t.Errorf("one-shot Frame() = %d, want last frame 9", got)
	}
}

func TestActionTimeScale(t *testing.T) {
	a := newAction(testClip("walking", true))
	a.TimeScale = 2
	a.Play(0)
	a.Update(0.25)
	if math.Abs(a.Time()-0.5) > 1e-9 {
		t.Errorf("Time() = %v, want 0.5", a.Time())
	}
}

func TestMixerClipAction(t *testing.T) {
	m := NewMixer(&Model{Name: "ty", Scale: 1, Bones: []string{"hips"}})
	clip := testClip("walking", true)

	a := m.ClipAction(clip)
	if again := m.ClipAction(clip); again != a {
		t.Error("ClipAction() returned a new action for the same clip")
	}

	a.Play(0)
	reloaded := testClip("walking", true)
	b := m.ClipAction(reloaded)
	if b == a {
		t.Fatal("ClipAction() reused the action of a replaced clip")
	}
	if a.Running() {
		t.Error("replaced action still running")
	}

	b.Play(0)
	m.Update(0.25)
	if got := m.Running(); !reflect.DeepEqual(got, []string{"walking"}) {
		t.Errorf("Running() = %v, want [walking]", got)
	}
	if off := m.RootOffset(); math.Abs(off-0.1) > 1e-9 {
		t.Errorf("RootOffset() at quarter phase = %v, want 0.1", off)
	}
}

func TestBinding(t *testing.T) {
	b := NewBinding()
	if _, ok := b.Get("walking"); ok {
		t.Fatal("Get() on an empty binding reported an entry")
	}

	first := Entry{Clip: testClip("walking", true)}
	b.Set("walking", first)
	second := Entry{Clip: testClip("walking", true)}
	b.Set("walking", second)
	b.Set("idle", Entry{Clip: testClip("idle", true)})

	got, ok := b.Get("walking")
	if !ok || got.Clip != second.Clip {
		t.Errorf("Get(walking) = %+v, %v, want the replacement entry", got, ok)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	if names := b.Names(); !reflect.DeepEqual(names, []string{"idle", "walking"}) {
		t.Errorf("Names() = %v, want [idle walking]", names)
	}
}
