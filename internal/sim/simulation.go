// Package sim ties the wave registry, the compositor and the noise overlay
// to a clock. A Simulation owns all mutable state of one running visual;
// several can exist side by side.
package sim

import (
	"image"
	"math/rand"
	"time"

	"pulsefield/internal/config"
	"pulsefield/internal/field"
	"pulsefield/internal/log"
	"pulsefield/internal/wave"
)

// Options are the runtime choices that do not come from the config document.
type Options struct {
	// Seed drives wave placement in auto mode and the noise overlay.
	Seed int64
	// Workers is passed to the compositor; zero uses every CPU.
	Workers int
	Logger  *log.Logger
}

// Stats describes the last evaluated frame.
type Stats struct {
	Time           float64
	Active         int
	Disintegrating int
	History        int
	NoiseBlocks    int
	RenderTime     time.Duration
}

// Simulation is the aggregate the driver steps once per frame.
type Simulation struct {
	cfg        config.Config
	clock      Clock
	registry   *wave.Registry
	lifecycle  wave.Lifecycle
	compositor *field.Compositor
	overlay    *field.Overlay
	rng        *rand.Rand
	logger     *log.Logger

	width, height int
	frame         *image.RGBA
	active        []wave.State
	nextSpawn     float64
	dirty         bool
	stats         Stats
}

// New builds a simulation sized to the configured canvas and seeds the
// initial waves. cfg is expected to be validated.
func New(cfg config.Config, opts Options) *Simulation {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	cm := cfg.Colormap()
	lc := cfg.Lifecycle()
	d := cfg.Disintegration
	s := &Simulation{
		cfg:       cfg,
		registry:  wave.NewRegistry(cfg.Interaction.MaxConcurrentWaves),
		lifecycle: lc,
		compositor: &field.Compositor{
			Colormap:       cm,
			GridResolution: cfg.Visual.GridResolution,
			MaxAmplitude:   cfg.Visual.MaxAmplitude,
			EdgeFactor:     cfg.Waves.WaveRemovalEdgeFactor,
			Background:     cfg.Visual.BackgroundColor.RGBA(),
			Workers:        opts.Workers,
		},
		overlay: field.NewOverlay(cm, field.NoiseSettings{
			StartSize: d.NoiseBlockStartSize,
			EndSize:   d.NoiseBlockEndSize,
			Count:     d.NoiseBlockCount,
			MaxAlpha:  d.MaxNoiseBlockAlpha,
			Spread:    d.NoiseSpreadFactor,
		}, lc.Disintegration, opts.Seed),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		logger: logger,
	}
	s.Resize(cfg.Canvas.Width, cfg.Canvas.Height)
	s.seedInitial()
	return s
}

func (s *Simulation) seedInitial() {
	n := s.cfg.Interaction.InitialWaveCount
	if n <= 0 {
		return
	}
	stagger := s.cfg.Interaction.AutoSpawnIntervalSeconds / float64(n)
	for i := 0; i < n; i++ {
		s.spawnRandom(s.clock.Now() + float64(i)*stagger)
	}
	s.nextSpawn = s.clock.Now() + s.cfg.Interaction.AutoSpawnIntervalSeconds
}

func (s *Simulation) spawnRandom(at float64) wave.Wave {
	x := s.rng.Float64() * float64(s.width)
	y := s.rng.Float64() * float64(s.height)
	return s.CreateWaveAt(x, y, at)
}

// SetIDSource replaces the wave identifier generator.
func (s *Simulation) SetIDSource(fn func() string) { s.registry.SetIDSource(fn) }

// CreateWave starts a wave at (x, y) at the current simulation time.
func (s *Simulation) CreateWave(x, y float64) wave.Wave {
	return s.CreateWaveAt(x, y, s.clock.Now())
}

// CreateWaveAt starts a wave at (x, y) at time at, with parameters taken
// from the configuration as it is now.
func (s *Simulation) CreateWaveAt(x, y, at float64) wave.Wave {
	w := s.registry.Create(x, y, at, s.cfg.WaveParams())
	s.dirty = true
	s.logger.Debugf("wave %s at (%.1f, %.1f) t=%.3f", w.ID, x, y, at)
	return w
}

// Click handles a pointer press in surface coordinates. It creates a wave
// only in interactive mode and reports whether it did.
func (s *Simulation) Click(x, y float64) bool {
	if !s.cfg.Interaction.Interactive {
		return false
	}
	s.CreateWave(x, y)
	return true
}

// Resize informs the simulation of new surface bounds. Existing waves keep
// their absolute origins.
func (s *Simulation) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if s.frame != nil && width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.frame = field.NewFrame(width, height)
	s.dirty = true
}

// Size returns the current surface bounds.
func (s *Simulation) Size() (int, int) { return s.width, s.height }

// Step advances the clock by dt seconds when playing, runs auto-seeding and
// history pruning, and re-evaluates the frame if anything changed.
func (s *Simulation) Step(dt float64) *image.RGBA {
	s.Advance(dt)
	if s.dirty {
		s.Evaluate()
	}
	return s.frame
}

// Advance is Step without rendering. It reports whether time moved.
func (s *Simulation) Advance(dt float64) bool {
	if !s.clock.Tick(dt) {
		return false
	}
	s.autoSpawn()
	s.prune()
	s.dirty = true
	return true
}

// AdvanceTo replays time in increments of at most step seconds until the
// clock reaches t, then evaluates once. It is how headless snapshots reach a
// given time with the same auto-seeding a live run would have seen.
func (s *Simulation) AdvanceTo(t, step float64) *image.RGBA {
	if step <= 0 {
		step = t - s.clock.Now()
	}
	for s.clock.Now() < t {
		if !s.Advance(min(step, t-s.clock.Now())) {
			break
		}
	}
	return s.Evaluate()
}

func (s *Simulation) autoSpawn() {
	ic := s.cfg.Interaction
	if ic.Interactive {
		return
	}
	now := s.clock.Now()
	if now < s.nextSpawn {
		return
	}
	s.nextSpawn = now + ic.AutoSpawnIntervalSeconds
	active := s.registry.Active(now, s.lifecycle, s.bounds())
	if ic.MaxConcurrentWaves > 0 && len(active) >= ic.MaxConcurrentWaves {
		return
	}
	s.spawnRandom(now)
}

func (s *Simulation) prune() {
	retention := s.cfg.Interaction.HistoryRetentionSeconds
	if retention <= 0 {
		return
	}
	// Never forget a wave that could still be live.
	keep := max(retention, s.lifecycle.MaxAge())
	if n := s.registry.Prune(s.clock.Now() - keep); n > 0 {
		s.logger.Debugf("pruned %d waves from history", n)
	}
}

func (s *Simulation) bounds() wave.Bounds {
	return wave.Bounds{Width: float64(s.width), Height: float64(s.height)}
}

// Evaluate recomputes the active set at the current time and redraws the
// whole frame: background, field, then noise. It works in either clock state.
func (s *Simulation) Evaluate() *image.RGBA {
	start := time.Now()
	now := s.clock.Now()
	s.active = s.registry.AppendActive(s.active, now, s.lifecycle, s.bounds())
	s.compositor.Render(s.frame, s.active)

	blocks := 0
	if s.lifecycle.Disintegration.Enabled {
		blocks = s.overlay.Draw(s.frame, s.active, now)
	}
	dis := 0
	for i := range s.active {
		if s.active[i].Disintegrating {
			dis++
		}
	}
	s.stats = Stats{
		Time:           now,
		Active:         len(s.active),
		Disintegrating: dis,
		History:        s.registry.Len(),
		NoiseBlocks:    blocks,
		RenderTime:     time.Since(start),
	}
	s.dirty = false
	return s.frame
}

// Frame returns the last evaluated frame. The buffer is reused across frames.
func (s *Simulation) Frame() *image.RGBA { return s.frame }

// Active returns the active set of the last evaluation. The slice is reused.
func (s *Simulation) Active() []wave.State { return s.active }

// History returns a copy of the retained wave history.
func (s *Simulation) History() []wave.Wave { return s.registry.History() }

// SampleAt returns the field value at (x, y) for the last evaluation.
func (s *Simulation) SampleAt(x, y float64) float64 {
	return s.compositor.SampleAt(x, y, s.active)
}

// Stats describes the last evaluation.
func (s *Simulation) Stats() Stats { return s.stats }

// Config returns the settings the simulation was built with.
func (s *Simulation) Config() config.Config { return s.cfg }

// Now returns the simulation time.
func (s *Simulation) Now() float64 { return s.clock.Now() }

// Seek moves the clock to t; the next Step re-evaluates at that time.
func (s *Simulation) Seek(t float64) {
	s.clock.Seek(t)
	s.dirty = true
}

// Scrub moves the clock by delta seconds.
func (s *Simulation) Scrub(delta float64) { s.Seek(s.clock.Now() + delta) }

// Span returns the time range tooling should offer for scrubbing.
func (s *Simulation) Span() float64 {
	if s.registry.Len() == 0 {
		return s.clock.Now()
	}
	return max(s.registry.Latest()+s.lifecycle.MaxAge(), s.clock.Now())
}

// TogglePause flips Playing/Paused.
func (s *Simulation) TogglePause() ClockState { return s.clock.Toggle() }

// Pause stops time from advancing.
func (s *Simulation) Pause() { s.clock.Pause() }

// Play resumes time.
func (s *Simulation) Play() { s.clock.Play() }

// State returns the clock state.
func (s *Simulation) State() ClockState { return s.clock.State() }

// Reset forgets every wave, rewinds the clock to zero and seeds the initial
// waves again. The clock state is kept.
func (s *Simulation) Reset() {
	s.registry.Reset()
	s.clock.Seek(0)
	s.nextSpawn = 0
	s.active = s.active[:0]
	s.seedInitial()
	s.dirty = true
}
