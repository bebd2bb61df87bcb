package main

import (
	"math"
	"sync"
)

// centerAudioStream turns the field value at the canvas centre into 16-bit
// stereo PCM. The game pushes one value per frame; Read ramps from the
// previous value to the latest across each buffer so frame-rate steps do
// not click.
type centerAudioStream struct {
	mu     sync.Mutex
	target float64
	last   float64
	dc     float64
	gain   float64
}

func newCenterAudioStream(maxAmplitude float64) *centerAudioStream {
	gain := 1.0
	if maxAmplitude > 0 {
		gain = 1 / maxAmplitude
	}
	return &centerAudioStream{gain: gain}
}

// SetSample records the latest field value. NaN is treated as silence.
func (s *centerAudioStream) SetSample(v float64) {
	if math.IsNaN(v) {
		v = 0
	}
	v = math.Max(-1, math.Min(1, v*s.gain))
	s.mu.Lock()
	// AC coupling: a stationary field is silent.
	const alpha = 0.001
	s.dc += alpha * (v - s.dc)
	s.target = v - s.dc
	s.mu.Unlock()
}

func (s *centerAudioStream) Read(p []byte) (int, error) {
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	from, to := s.last, s.target
	s.last = to
	s.mu.Unlock()

	frames := frameBytes / 4
	for i := 0; i < frames; i++ {
		v := from + (to-from)*float64(i+1)/float64(frames)
		pcm := int16(v * pcm16MaxValue)
		o := i * 4
		p[o] = byte(pcm)
		p[o+1] = byte(pcm >> 8)
		p[o+2] = p[o]
		p[o+3] = p[o+1]
	}
	return frameBytes, nil
}

func (s *centerAudioStream) Close() error {
	return nil
}
