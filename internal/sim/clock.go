package sim

import "math"

// ClockState is the play/pause state of the simulation clock.
type ClockState uint8

const (
	Playing ClockState = iota
	Paused
)

func (s ClockState) String() string {
	if s == Paused {
		return "paused"
	}
	return "playing"
}

// Clock is the simulation time source. Time only advances through Tick
// while Playing; Seek moves it in either state.
type Clock struct {
	now   float64
	state ClockState
}

// Now returns the current simulation time in seconds.
func (c *Clock) Now() float64 { return c.now }

// State returns Playing or Paused.
func (c *Clock) State() ClockState { return c.state }

// Tick advances time by dt seconds and reports whether time moved.
func (c *Clock) Tick(dt float64) bool {
	if c.state != Playing || !(dt > 0) || math.IsInf(dt, 0) {
		return false
	}
	c.now += dt
	return true
}

// Seek jumps to t, clamped to zero.
func (c *Clock) Seek(t float64) {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	c.now = t
}

func (c *Clock) Play()  { c.state = Playing }
func (c *Clock) Pause() { c.state = Paused }

// Toggle flips between Playing and Paused and returns the new state.
func (c *Clock) Toggle() ClockState {
	if c.state == Playing {
		c.state = Paused
	} else {
		c.state = Playing
	}
	return c.state
}
