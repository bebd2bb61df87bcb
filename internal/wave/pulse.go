package wave

import "math"

// Pulse returns the contribution of a single wave at the given radial
// distance: a sinusoid of frequency fc, phase-referenced to the ring centre
// tau, under a Gaussian envelope of width sig.
func Pulse(distance, fc, tau, sig float64) float64 {
	if sig == 0 {
		return 0
	}
	d := distance - tau
	z := d / sig
	envelope := math.Exp(-0.5 * z * z)
	return envelope * math.Sin(2*math.Pi*fc*d)
}

// Envelope returns only the Gaussian part of Pulse. It is 1 at d == tau.
func Envelope(distance, tau, sig float64) float64 {
	if sig == 0 {
		if distance == tau {
			return 1
		}
		return 0
	}
	z := (distance - tau) / sig
	return math.Exp(-0.5 * z * z)
}
