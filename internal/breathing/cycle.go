package breathing

import "time"

// TickInterval is the cadence the UI drives the cycle at. The cycle
// itself has no timer; whoever schedules ticks passes the current time
// in, which is what makes the machine testable with synthetic clocks.
const TickInterval = 30 * time.Millisecond

// Phase is one state of the breathing cycle.
type Phase int

const (
	// PhaseIdle is the initial state and the only state reachable
	// via Stop.
	PhaseIdle Phase = iota

	// PhaseInhale grows the circle.
	PhaseInhale

	// PhaseHold pins the circle at full size.
	PhaseHold

	// PhaseExhale shrinks the circle.
	PhaseExhale
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseInhale:
		return "inhale"
	case PhaseHold:
		return "hold"
	case PhaseExhale:
		return "exhale"
	default:
		return "idle"
	}
}

// next returns the following phase in the Inhale → Hold → Exhale →
// Inhale cycle. Idle has no successor; the cycle only leaves Idle via
// Start.
func (p Phase) next() Phase {
	switch p {
	case PhaseInhale:
		return PhaseHold
	case PhaseHold:
		return PhaseExhale
	case PhaseExhale:
		return PhaseInhale
	default:
		return PhaseIdle
	}
}

// Cycle is the breathing exercise state machine.
//
// Once started it cycles Inhale → Hold → Exhale → Inhale indefinitely;
// Stop is the only way back to Idle. Progress within a phase runs from
// 0 to 1 and resets on every phase entry.
//
// Cycle is deliberately scheduler-free: Tick takes the current time as
// an argument, so production code can drive it from a 30 ms UI timer
// while tests feed it synthetic timestamps.
//
// Example:
//
//	c := breathing.NewCycle()
//	c.Start(4*time.Second, 4*time.Second, 6*time.Second, time.Now())
//	// every TickInterval:
//	running := c.Tick(time.Now())
//	phase, progress := c.Phase(), c.Progress()
type Cycle struct {
	running    bool
	phase      Phase
	progress   float64
	phaseStart time.Time

	inhale time.Duration
	hold   time.Duration
	exhale time.Duration
}

// NewCycle returns a Cycle in the Idle state.
func NewCycle() *Cycle {
	return &Cycle{phase: PhaseIdle}
}

// Start begins a cycle at Inhale with progress 0.
//
// Calling Start while a cycle is already running is a no-op; callers
// must Stop first. The phase clock starts at now.
func (c *Cycle) Start(inhale, hold, exhale time.Duration, now time.Time) {
	if c.running {
		return
	}

	c.inhale = inhale
	c.hold = hold
	c.exhale = exhale

	c.running = true
	c.enterPhase(PhaseInhale, now)
}

// Tick advances the machine to the given time and reports whether the
// cycle is still running (i.e. whether another tick should be
// scheduled).
//
// Progress is clamped to [0,1]; when it reaches 1 the next phase is
// entered with progress reset to 0. A phase with a nonpositive
// duration (a zero-second hold, typically) completes on its first
// tick.
func (c *Cycle) Tick(now time.Time) bool {
	if !c.running {
		return false
	}

	c.progress = c.phaseProgress(now)
	if c.progress >= 1.0 {
		c.enterPhase(c.phase.next(), now)
	}
	return true
}

// Stop halts the cycle: running=false, phase=Idle, progress=0.
// Idempotent; ticks scheduled before Stop observe running=false and do
// nothing.
func (c *Cycle) Stop() {
	c.running = false
	c.phase = PhaseIdle
	c.progress = 0
}

// Running reports whether a cycle is active.
func (c *Cycle) Running() bool {
	return c.running
}

// Phase returns the current phase.
func (c *Cycle) Phase() Phase {
	return c.phase
}

// Progress returns the position within the current phase in [0,1].
func (c *Cycle) Progress() float64 {
	return c.progress
}

// Period returns the configured length of one full breath,
// inhale + hold + exhale.
func (c *Cycle) Period() time.Duration {
	return c.inhale + c.hold + c.exhale
}

// Radius maps the current phase and progress onto a circle radius:
// Inhale interpolates min→max, Hold pins max, Exhale interpolates
// max→min, Idle pins min. The UI uses min = 0.3 × max.
func (c *Cycle) Radius(min, max float64) float64 {
	switch c.phase {
	case PhaseInhale:
		return min + (max-min)*c.progress
	case PhaseHold:
		return max
	case PhaseExhale:
		return max - (max-min)*c.progress
	default:
		return min
	}
}

// enterPhase resets progress and the phase clock for the given phase.
func (c *Cycle) enterPhase(phase Phase, now time.Time) {
	c.phase = phase
	c.progress = 0
	c.phaseStart = now
}

// phaseProgress computes clamp(elapsed/duration, 0, 1) for the current
// phase at the given time.
func (c *Cycle) phaseProgress(now time.Time) float64 {
	duration := c.phaseDuration()
	if duration <= 0 {
		return 1.0
	}

	progress := float64(now.Sub(c.phaseStart)) / float64(duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1.0
	}
	return progress
}

func (c *Cycle) phaseDuration() time.Duration {
	switch c.phase {
	case PhaseInhale:
		return c.inhale
	case PhaseHold:
		return c.hold
	case PhaseExhale:
		return c.exhale
	default:
		return 0
	}
}
