package game

// DefaultSpinRate is the yaw added per tick, in radians.
const DefaultSpinRate float32 = 0.01

// referenceFPS converts a per-frame rate into a per-second one in time scaled mode.
const referenceFPS = 60

// Spinner turns whatever is selected around its vertical axis while enabled.
// It follows the selection, so a new selection keeps spinning.
type Spinner struct {
	selection  *Selection
	Rate       float32
	TimeScaled bool
	spinning   bool
}

func NewSpinner(selection *Selection, rate float32, timeScaled bool) *Spinner {
	return &Spinner{
		selection:  selection,
		Rate:       rate,
		TimeScaled: timeScaled,
	}
}

// Toggle flips the spin flag and returns the new value.
func (s *Spinner) Toggle() bool {
	s.spinning = !s.spinning
	return s.spinning
}

func (s *Spinner) Spinning() bool {
	return s.spinning
}

// Reset stops spinning. Called when the viewport goes away.
func (s *Spinner) Reset() {
	s.spinning = false
}

// Tick advances the selected entity's yaw by one step and refreshes the
// snapshot so the inspector shows the new yaw. It reports whether anything was rotated.
func (s *Spinner) Tick(dt float32) bool {
	if !s.spinning {
		return false
	}
	e := s.selection.Entity()
	if e == nil {
		return false
	}
	step := s.Rate
	if s.TimeScaled {
		step = s.Rate * referenceFPS * dt
	}
	e.Transform.Rotation.Y += step
	s.selection.Refresh()
	return true
}
