// Package config defines the grouped settings of the renderer, their
// defaults, and loading from a JSON document.
package config

import (
	"errors"
	"fmt"
	"image/color"

	"pulsefield/internal/colormap"
	"pulsefield/internal/wave"
)

// ErrInvalid marks configuration values that failed validation.
var ErrInvalid = errors.New("invalid configuration")

// RGB is a colour written as a [r, g, b] JSON array.
type RGB [3]uint8

// RGBA converts to an opaque color.RGBA.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// Canvas controls the initial surface size.
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Visual controls appearance.
type Visual struct {
	ColormapPreset  string            `json:"colormapPreset"`
	Colormap        colormap.Colormap `json:"colormap"`
	PositiveColor   RGB               `json:"positiveColor"`
	NegativeColor   RGB               `json:"negativeColor"`
	BackgroundColor RGB               `json:"backgroundColor"`
	GridResolution  int               `json:"gridResolution"`
	MaxAmplitude    float64           `json:"maxAmplitude"`
}

// Waves controls propagation of newly created waves and their removal.
type Waves struct {
	CarrierFrequency      float64 `json:"carrierFrequency"`
	GaussianWidth         float64 `json:"gaussianWidth"`
	WaveSpeed             float64 `json:"waveSpeed"`
	WaveLifetimeSeconds   float64 `json:"waveLifetimeSeconds"`
	WaveRemovalEdgeFactor float64 `json:"waveRemovalEdgeFactor"`
}

// Interaction selects between click-driven and auto-seeded operation.
type Interaction struct {
	Interactive              bool    `json:"interactive"`
	MaxConcurrentWaves       int     `json:"maxConcurrentWaves"`
	InitialWaveCount         int     `json:"initialWaveCount"`
	AutoSpawnIntervalSeconds float64 `json:"autoSpawnIntervalSeconds"`
	HistoryRetentionSeconds  float64 `json:"historyRetentionSeconds"`
}

// Disintegration controls the fade-out and noise phase.
type Disintegration struct {
	Enabled                         bool    `json:"enabled"`
	StartAgeSeconds                 float64 `json:"startAgeSeconds"`
	TransitionDurationSeconds       float64 `json:"transitionDurationSeconds"`
	NoisePersistenceDurationSeconds float64 `json:"noisePersistenceDurationSeconds"`
	NoiseBlockStartSize             float64 `json:"noiseBlockStartSize"`
	NoiseBlockEndSize               float64 `json:"noiseBlockEndSize"`
	NoiseBlockCount                 int     `json:"noiseBlockCount"`
	MaxNoiseBlockAlpha              float64 `json:"maxNoiseBlockAlpha"`
	NoiseSpreadFactor               float64 `json:"noiseSpreadFactor"`
}

// Config is the full settings document.
type Config struct {
	Canvas         Canvas         `json:"canvas"`
	Visual         Visual         `json:"visual"`
	Waves          Waves          `json:"waves"`
	Interaction    Interaction    `json:"interaction"`
	Disintegration Disintegration `json:"disintegration"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 800, Height: 600},
		Visual: Visual{
			ColormapPreset:  "diverging",
			PositiveColor:   RGB{255, 80, 40},
			NegativeColor:   RGB{40, 120, 255},
			BackgroundColor: RGB{0, 0, 0},
			GridResolution:  4,
			MaxAmplitude:    1,
		},
		Waves: Waves{
			CarrierFrequency:      0.05,
			GaussianWidth:         20,
			WaveSpeed:             50,
			WaveLifetimeSeconds:   15,
			WaveRemovalEdgeFactor: 3,
		},
		Interaction: Interaction{
			Interactive:              true,
			MaxConcurrentWaves:       10,
			InitialWaveCount:         3,
			AutoSpawnIntervalSeconds: 2,
			HistoryRetentionSeconds:  120,
		},
		Disintegration: Disintegration{
			Enabled:                         false,
			StartAgeSeconds:                 8,
			TransitionDurationSeconds:       5,
			NoisePersistenceDurationSeconds: 2,
			NoiseBlockStartSize:             2,
			NoiseBlockEndSize:               8,
			NoiseBlockCount:                 150,
			MaxNoiseBlockAlpha:              0.8,
			NoiseSpreadFactor:               3,
		},
	}
}

// Validate checks every group and replaces unusable values with defaults.
// The returned error joins one entry per corrected field; the Config is
// usable either way.
func (c *Config) Validate() error {
	def := Default()
	var errs []error
	fix := func(bad bool, field string, apply func()) {
		if bad {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, field))
			apply()
		}
	}

	fix(c.Canvas.Width <= 0, "canvas.width", func() { c.Canvas.Width = def.Canvas.Width })
	fix(c.Canvas.Height <= 0, "canvas.height", func() { c.Canvas.Height = def.Canvas.Height })

	fix(c.Visual.GridResolution < 1, "visual.gridResolution", func() { c.Visual.GridResolution = def.Visual.GridResolution })
	fix(c.Visual.MaxAmplitude <= 0, "visual.maxAmplitude", func() { c.Visual.MaxAmplitude = def.Visual.MaxAmplitude })
	if len(c.Visual.Colormap) > 0 {
		if err := c.Visual.Colormap.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: visual.colormap: %w", ErrInvalid, err))
			c.Visual.Colormap = nil
		}
	} else if _, err := colormap.Preset(c.Visual.ColormapPreset, color.RGBA{}, color.RGBA{}); err != nil {
		errs = append(errs, fmt.Errorf("%w: visual.colormapPreset: %w", ErrInvalid, err))
		c.Visual.ColormapPreset = def.Visual.ColormapPreset
	}

	fix(c.Waves.GaussianWidth < 0, "waves.gaussianWidth", func() { c.Waves.GaussianWidth = def.Waves.GaussianWidth })
	fix(c.Waves.WaveSpeed < 0, "waves.waveSpeed", func() { c.Waves.WaveSpeed = def.Waves.WaveSpeed })
	fix(c.Waves.WaveLifetimeSeconds <= 0, "waves.waveLifetimeSeconds", func() { c.Waves.WaveLifetimeSeconds = def.Waves.WaveLifetimeSeconds })
	fix(c.Waves.WaveRemovalEdgeFactor < 0, "waves.waveRemovalEdgeFactor", func() { c.Waves.WaveRemovalEdgeFactor = def.Waves.WaveRemovalEdgeFactor })

	fix(c.Interaction.MaxConcurrentWaves < 0, "interaction.maxConcurrentWaves", func() { c.Interaction.MaxConcurrentWaves = def.Interaction.MaxConcurrentWaves })
	fix(c.Interaction.InitialWaveCount < 0, "interaction.initialWaveCount", func() { c.Interaction.InitialWaveCount = def.Interaction.InitialWaveCount })
	fix(c.Interaction.AutoSpawnIntervalSeconds <= 0, "interaction.autoSpawnIntervalSeconds", func() {
		c.Interaction.AutoSpawnIntervalSeconds = def.Interaction.AutoSpawnIntervalSeconds
	})
	fix(c.Interaction.HistoryRetentionSeconds < 0, "interaction.historyRetentionSeconds", func() {
		c.Interaction.HistoryRetentionSeconds = def.Interaction.HistoryRetentionSeconds
	})

	d := &c.Disintegration
	fix(d.StartAgeSeconds < 0, "disintegration.startAgeSeconds", func() { d.StartAgeSeconds = def.Disintegration.StartAgeSeconds })
	fix(d.TransitionDurationSeconds < 0, "disintegration.transitionDurationSeconds", func() {
		d.TransitionDurationSeconds = def.Disintegration.TransitionDurationSeconds
	})
	fix(d.NoisePersistenceDurationSeconds < 0, "disintegration.noisePersistenceDurationSeconds", func() {
		d.NoisePersistenceDurationSeconds = def.Disintegration.NoisePersistenceDurationSeconds
	})
	fix(d.NoiseBlockStartSize < 1, "disintegration.noiseBlockStartSize", func() { d.NoiseBlockStartSize = def.Disintegration.NoiseBlockStartSize })
	fix(d.NoiseBlockEndSize < 1, "disintegration.noiseBlockEndSize", func() { d.NoiseBlockEndSize = def.Disintegration.NoiseBlockEndSize })
	fix(d.NoiseBlockCount < 0, "disintegration.noiseBlockCount", func() { d.NoiseBlockCount = def.Disintegration.NoiseBlockCount })
	fix(d.MaxNoiseBlockAlpha < 0 || d.MaxNoiseBlockAlpha > 1, "disintegration.maxNoiseBlockAlpha", func() {
		d.MaxNoiseBlockAlpha = def.Disintegration.MaxNoiseBlockAlpha
	})
	fix(d.NoiseSpreadFactor < 0, "disintegration.noiseSpreadFactor", func() { d.NoiseSpreadFactor = def.Disintegration.NoiseSpreadFactor })

	return errors.Join(errs...)
}

// Colormap resolves the explicit colormap, or the preset when none is set.
func (c Config) Colormap() colormap.Colormap {
	if len(c.Visual.Colormap) > 0 {
		return c.Visual.Colormap
	}
	cm, err := colormap.Preset(c.Visual.ColormapPreset, c.Visual.NegativeColor.RGBA(), c.Visual.PositiveColor.RGBA())
	if err != nil {
		return colormap.Diverging()
	}
	return cm
}

// WaveParams snapshots the parameters for a wave created now.
func (c Config) WaveParams() wave.Params {
	return wave.Params{
		CarrierFrequency: c.Waves.CarrierFrequency,
		GaussianWidth:    c.Waves.GaussianWidth,
	}
}

// Lifecycle builds the classification settings.
func (c Config) Lifecycle() wave.Lifecycle {
	d := c.Disintegration
	return wave.Lifecycle{
		Speed:      c.Waves.WaveSpeed,
		Lifetime:   c.Waves.WaveLifetimeSeconds,
		EdgeFactor: c.Waves.WaveRemovalEdgeFactor,
		Disintegration: wave.Disintegration{
			Enabled:     d.Enabled,
			StartAge:    d.StartAgeSeconds,
			Transition:  d.TransitionDurationSeconds,
			Persistence: d.NoisePersistenceDurationSeconds,
		},
	}
}
