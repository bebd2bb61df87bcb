package config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"pulsefield/internal/colormap"
)

func TestDefaultValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults fail validation: %v", err)
	}
	if got := cfg.Colormap(); got.Validate() != nil || len(got) != len(colormap.Diverging()) {
		t.Errorf("default colormap = %+v", got)
	}
}

func TestParseGroupMerge(t *testing.T) {
	doc := `{
		"waves": {"gaussianWidth": 35},
		"disintegration": {"enabled": true, "noiseBlockCount": 10}
	}`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	def := Default()

	if cfg.Waves.GaussianWidth != 35 {
		t.Errorf("gaussianWidth = %v, want 35", cfg.Waves.GaussianWidth)
	}
	if cfg.Waves.WaveSpeed != def.Waves.WaveSpeed {
		t.Errorf("waveSpeed = %v, want default %v", cfg.Waves.WaveSpeed, def.Waves.WaveSpeed)
	}
	if !cfg.Disintegration.Enabled || cfg.Disintegration.NoiseBlockCount != 10 {
		t.Errorf("disintegration = %+v", cfg.Disintegration)
	}
	if cfg.Disintegration.StartAgeSeconds != def.Disintegration.StartAgeSeconds {
		t.Errorf("startAgeSeconds = %v, want default", cfg.Disintegration.StartAgeSeconds)
	}
	if cfg.Visual.GridResolution != def.Visual.GridResolution || cfg.Visual.ColormapPreset != def.Visual.ColormapPreset {
		t.Errorf("missing visual group changed: %+v", cfg.Visual)
	}
	if cfg.Interaction != def.Interaction {
		t.Errorf("missing interaction group changed: %+v", cfg.Interaction)
	}
}

func TestParseColormapReplaces(t *testing.T) {
	doc := `{"visual": {"colormap": [[0, [0, 0, 0]], [1, [255, 255, 255]]]}}`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cm := cfg.Colormap()
	if len(cm) != 2 || cm[1].R != 255 {
		t.Errorf("colormap = %+v", cm)
	}
	if cfg.Visual.GridResolution != Default().Visual.GridResolution {
		t.Errorf("gridResolution changed to %d", cfg.Visual.GridResolution)
	}
}

func TestParseInvalidValuesCorrected(t *testing.T) {
	doc := `{
		"visual": {"gridResolution": 0, "colormap": [[0.8, [0,0,0]], [0.2, [1,1,1]]]},
		"disintegration": {"maxNoiseBlockAlpha": 4}
	}`
	cfg, err := Parse([]byte(doc))
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
	if cfg.Visual.GridResolution != Default().Visual.GridResolution {
		t.Errorf("gridResolution = %d, want default", cfg.Visual.GridResolution)
	}
	if cfg.Visual.Colormap != nil {
		t.Errorf("unsorted colormap kept: %+v", cfg.Visual.Colormap)
	}
	if cfg.Disintegration.MaxNoiseBlockAlpha != Default().Disintegration.MaxNoiseBlockAlpha {
		t.Errorf("maxNoiseBlockAlpha = %v", cfg.Disintegration.MaxNoiseBlockAlpha)
	}
}

func TestParseMalformed(t *testing.T) {
	cfg, err := Parse([]byte(`{"waves": `))
	if err == nil {
		t.Fatal("expected error")
	}
	if cfg.Waves != Default().Waves {
		t.Errorf("malformed doc did not fall back to defaults: %+v", cfg.Waves)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"canvas": {"width": 320}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvas.Width != 320 || cfg.Canvas.Height != Default().Canvas.Height {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
	if cfg.Canvas != Default().Canvas {
		t.Errorf("cfg not default: %+v", cfg.Canvas)
	}
}

func TestLoadEmptySource(t *testing.T) {
	if _, err := Load(context.Background(), ""); err != nil {
		t.Errorf("empty source: %v", err)
	}
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/config.json":
			_, _ = w.Write([]byte(`{"interaction": {"interactive": false}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg, err := Load(context.Background(), srv.URL+"/config.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Interaction.Interactive {
		t.Error("interactive = true, want false")
	}
	if cfg.Interaction.MaxConcurrentWaves != Default().Interaction.MaxConcurrentWaves {
		t.Errorf("maxConcurrentWaves = %d", cfg.Interaction.MaxConcurrentWaves)
	}

	if _, err := Load(context.Background(), srv.URL+"/missing.json"); err == nil {
		t.Error("expected error for 404")
	}
}

func TestLifecycleMapping(t *testing.T) {
	cfg := Default()
	cfg.Disintegration.Enabled = true
	lc := cfg.Lifecycle()
	if lc.Speed != 50 || lc.Lifetime != 15 || lc.EdgeFactor != 3 {
		t.Errorf("lifecycle = %+v", lc)
	}
	if !lc.Disintegration.Enabled || lc.Disintegration.Window() != 7 {
		t.Errorf("disintegration = %+v", lc.Disintegration)
	}
	p := cfg.WaveParams()
	if p.CarrierFrequency != 0.05 || p.GaussianWidth != 20 {
		t.Errorf("params = %+v", p)
	}
}

func TestSignedPresetUsesColours(t *testing.T) {
	cfg := Default()
	cfg.Visual.ColormapPreset = "signed"
	cm := cfg.Colormap()
	if got := cm.ColorAt(1); got != cfg.Visual.PositiveColor.RGBA() {
		t.Errorf("positive = %v, want %v", got, cfg.Visual.PositiveColor.RGBA())
	}
	if got := cm.ColorAt(-1); got != cfg.Visual.NegativeColor.RGBA() {
		t.Errorf("negative = %v", got)
	}
}
