package animations

import "sort"

// Entry is one resolved clip and its playback handle.
type Entry struct {
	Clip   *Clip
	Action *Action
}

// Binding maps locomotion state names to their resolved clips. Entries are
// never removed; Set replaces a name's entry as a whole.
type Binding struct {
	entries map[string]Entry
}

func NewBinding() *Binding {
	return &Binding{entries: make(map[string]Entry)}
}

// Set binds name to entry, replacing any earlier binding.
func (b *Binding) Set(name string, entry Entry) {
	b.entries[name] = entry
}

// Get returns the entry for name. A state whose clip has not resolved, or
// failed to load, reports false.
func (b *Binding) Get(name string) (Entry, bool) {
	e, ok := b.entries[name]
	return e, ok
}

func (b *Binding) Len() int {
	return len(b.entries)
}

// Names returns the bound state names in sorted order.
func (b *Binding) Names() []string {
	names := make([]string, 0, len(b.entries))
	for name := range b.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
