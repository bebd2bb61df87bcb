// Package wave holds the point sources of the simulation and the pure
// functions that decide, for any simulation time, what each source looks
// like and whether it is still rendered.
package wave

import "math"

// Params are the propagation parameters captured when a wave is created.
type Params struct {
	CarrierFrequency float64
	GaussianWidth    float64
}

// Wave is a point source of a travelling radial pulse. Values are copied
// out of the Registry, so a Wave never changes after creation.
type Wave struct {
	ID        string
	X, Y      float64
	CreatedAt float64

	CarrierFrequency float64
	GaussianWidth    float64
}

// Phase is the lifecycle classification of a wave at one instant.
type Phase uint8

const (
	PhasePending Phase = iota
	PhaseActive
	PhaseDisintegrating
	PhaseRemoved
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseActive:
		return "active"
	case PhaseDisintegrating:
		return "disintegrating"
	case PhaseRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Disintegration configures the timed fade-out and noise phase.
type Disintegration struct {
	Enabled     bool
	StartAge    float64
	Transition  float64
	Persistence float64
}

// Window is the total time after the trigger during which a
// disintegrating wave stays in the active set.
func (d Disintegration) Window() float64 {
	return d.Transition + d.Persistence
}

// Lifecycle holds the configuration that drives classification.
type Lifecycle struct {
	Speed          float64
	Lifetime       float64
	EdgeFactor     float64
	Disintegration Disintegration
}

// MaxAge is the oldest a wave can be and still be classified Active or
// Disintegrating. Waves older than this can be forgotten safely.
func (lc Lifecycle) MaxAge() float64 {
	age := lc.Lifetime
	if d := lc.Disintegration; d.Enabled {
		age = math.Max(age, d.StartAge+d.Window())
	}
	return age
}

// Bounds is the canvas extent used for corner-distance removal.
type Bounds struct {
	Width, Height float64
}

// FarthestCorner returns the largest distance from (x, y) to any of the
// four canvas corners.
func (b Bounds) FarthestCorner(x, y float64) float64 {
	d := math.Hypot(x, y)
	d = math.Max(d, math.Hypot(b.Width-x, y))
	d = math.Max(d, math.Hypot(x, b.Height-y))
	return math.Max(d, math.Hypot(b.Width-x, b.Height-y))
}

// State is the per-evaluation view of a wave. It is recomputed from time on
// every call and never stored.
type State struct {
	Wave

	Age            float64
	Radius         float64
	Disintegrating bool
	SinceTrigger   float64
	Progress       float64
}

// Amplitude is the scale applied to the wave's field contribution: 1 while
// normal, falling linearly to 0 over the transition.
func (s State) Amplitude() float64 {
	if !s.Disintegrating {
		return 1
	}
	return 1 - s.Progress
}

// Evaluate classifies w at time t. The returned State is only meaningful
// when the phase is Active or Disintegrating.
func (lc Lifecycle) Evaluate(w Wave, t float64, b Bounds) (State, Phase) {
	st := State{Wave: w, Age: t - w.CreatedAt}
	if st.Age < 0 {
		return st, PhasePending
	}
	st.Radius = st.Age * lc.Speed

	dis := lc.Disintegration
	if dis.Enabled && st.Age > dis.StartAge {
		st.Disintegrating = true
		st.SinceTrigger = t - (w.CreatedAt + dis.StartAge)
		st.Progress = progress(st.SinceTrigger, dis.Transition)
		if st.SinceTrigger < dis.Window() {
			return st, PhaseDisintegrating
		}
		return st, PhaseRemoved
	}

	limit := b.FarthestCorner(w.X, w.Y) + w.GaussianWidth*lc.EdgeFactor
	if st.Radius <= limit && st.Age < lc.Lifetime {
		return st, PhaseActive
	}
	return st, PhaseRemoved
}

func progress(since, transition float64) float64 {
	if transition <= 0 {
		return 1
	}
	p := since / transition
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
