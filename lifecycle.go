package clicktrack

// Lifecycle starts and stops click tracking as windows move between
// foreground and background.
type Lifecycle struct {
	gen *Generator
}

// NewLifecycle creates a Lifecycle driving gen.
func NewLifecycle(gen *Generator) *Lifecycle {
	return &Lifecycle{gen: gen}
}

// OnForeground starts tracking w. Any previously tracked window is released.
func (l *Lifecycle) OnForeground(w Window) {
	l.gen.StartTracking(w)
}

// OnBackground stops tracking.
func (l *Lifecycle) OnBackground() {
	l.gen.StopTracking()
}
