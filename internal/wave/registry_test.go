package wave

import (
	"fmt"
	"math"
	"testing"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("w%d", n)
	}
}

func newTestRegistry(maxVisible int) *Registry {
	r := NewRegistry(maxVisible)
	r.SetIDSource(sequentialIDs())
	return r
}

var defaultParams = Params{CarrierFrequency: 0.05, GaussianWidth: 20}

func plainLifecycle() Lifecycle {
	return Lifecycle{Speed: 50, Lifetime: 15, EdgeFactor: 3}
}

func TestAgeAndPendingWaves(t *testing.T) {
	r := newTestRegistry(0)
	r.Create(100, 100, 2, defaultParams)
	b := Bounds{Width: 10000, Height: 10000}
	lc := plainLifecycle()

	if got := r.Active(1.999, lc, b); len(got) != 0 {
		t.Fatalf("wave active before creation: %+v", got)
	}
	got := r.Active(2, lc, b)
	if len(got) != 1 {
		t.Fatalf("want 1 active wave at creation time, got %d", len(got))
	}
	if got[0].Age != 0 || got[0].Radius != 0 {
		t.Errorf("age/radius at creation = %v/%v, want 0/0", got[0].Age, got[0].Radius)
	}
	if _, phase := lc.Evaluate(r.History()[0], 1, b); phase != PhasePending {
		t.Errorf("phase before creation = %v, want pending", phase)
	}
}

func TestLifetimeRemoval(t *testing.T) {
	r := newTestRegistry(0)
	r.Create(500, 500, 0, defaultParams)
	lc := plainLifecycle()
	// Huge canvas: the ring never reaches a corner within the lifetime.
	b := Bounds{Width: 1e6, Height: 1e6}

	if got := r.Active(14.999, lc, b); len(got) != 1 {
		t.Fatalf("wave missing before lifetime, got %d", len(got))
	}
	if got := r.Active(15.001, lc, b); len(got) != 0 {
		t.Fatalf("wave still active after lifetime: %+v", got)
	}
	if got := r.Active(15, lc, b); len(got) != 0 {
		t.Fatalf("wave active at age == lifetime")
	}
}

func TestCornerRemoval(t *testing.T) {
	r := newTestRegistry(0)
	w := r.Create(0, 0, 0, defaultParams)
	lc := plainLifecycle()
	b := Bounds{Width: 300, Height: 400}
	// Farthest corner is 500 away, plus 20*3 margin: radius limit 560.
	limit := b.FarthestCorner(w.X, w.Y) + w.GaussianWidth*lc.EdgeFactor
	if limit != 560 {
		t.Fatalf("limit = %v, want 560", limit)
	}
	if _, phase := lc.Evaluate(w, 560.0/50, b); phase != PhaseActive {
		t.Errorf("phase at limit = %v, want active", phase)
	}
	if _, phase := lc.Evaluate(w, 561.0/50, b); phase != PhaseRemoved {
		t.Errorf("phase beyond limit = %v, want removed", phase)
	}
}

func TestFarthestCorner(t *testing.T) {
	b := Bounds{Width: 300, Height: 400}
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"top left", 0, 0, 500},
		{"bottom right", 300, 400, 500},
		{"centre", 150, 200, 250},
		{"outside", -300, 0, math.Hypot(600, 400)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.FarthestCorner(tt.x, tt.y); got != tt.want {
				t.Errorf("FarthestCorner(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func disintegratingLifecycle() Lifecycle {
	lc := plainLifecycle()
	lc.Disintegration = Disintegration{Enabled: true, StartAge: 8, Transition: 5, Persistence: 2}
	return lc
}

func TestDisintegrationTiming(t *testing.T) {
	lc := disintegratingLifecycle()
	b := Bounds{Width: 1e6, Height: 1e6}
	w := Wave{ID: "a", X: 10, Y: 10, CreatedAt: 0, CarrierFrequency: 0.05, GaussianWidth: 20}

	st, phase := lc.Evaluate(w, 7.9, b)
	if st.Disintegrating || phase != PhaseActive {
		t.Fatalf("t=7.9: disintegrating=%v phase=%v, want false/active", st.Disintegrating, phase)
	}
	st, phase = lc.Evaluate(w, 8.1, b)
	if !st.Disintegrating || phase != PhaseDisintegrating {
		t.Fatalf("t=8.1: disintegrating=%v phase=%v, want true/disintegrating", st.Disintegrating, phase)
	}
	st, _ = lc.Evaluate(w, 13.0, b)
	if st.Progress != 1.0 {
		t.Errorf("progress at t=13 = %v, want 1", st.Progress)
	}
	st, _ = lc.Evaluate(w, 10.5, b)
	if st.Progress != 0.5 {
		t.Errorf("progress at t=10.5 = %v, want 0.5", st.Progress)
	}
	if got := st.Amplitude(); got != 0.5 {
		t.Errorf("amplitude at t=10.5 = %v, want 0.5", got)
	}
	// Effect window is transition + persistence = 7s after the trigger.
	if _, phase = lc.Evaluate(w, 14.99, b); phase != PhaseDisintegrating {
		t.Errorf("t=14.99 phase = %v, want disintegrating", phase)
	}
	if _, phase = lc.Evaluate(w, 15.0, b); phase != PhaseRemoved {
		t.Errorf("t=15 phase = %v, want removed", phase)
	}
}

func TestDisintegrationIgnoresCornerAndLifetime(t *testing.T) {
	lc := disintegratingLifecycle()
	lc.Lifetime = 9
	w := Wave{X: 0, Y: 0, GaussianWidth: 20}
	// Tiny canvas, ring long gone past the corners.
	st, phase := lc.Evaluate(w, 12, Bounds{Width: 10, Height: 10})
	if phase != PhaseDisintegrating || st.Amplitude() >= 1 {
		t.Errorf("phase = %v amplitude = %v, want disintegrating and faded", phase, st.Amplitude())
	}
}

func TestZeroTransition(t *testing.T) {
	lc := disintegratingLifecycle()
	lc.Disintegration.Transition = 0
	lc.Disintegration.Persistence = 0
	w := Wave{GaussianWidth: 20}
	if _, phase := lc.Evaluate(w, 8.5, Bounds{Width: 1e6, Height: 1e6}); phase != PhaseRemoved {
		t.Errorf("phase = %v, want removed with empty window", phase)
	}
}

func TestActiveSetDeterministic(t *testing.T) {
	r := newTestRegistry(0)
	for i := 0; i < 20; i++ {
		r.Create(float64(i*37%400), float64(i*53%300), float64(i)*0.7, defaultParams)
	}
	lc := disintegratingLifecycle()
	b := Bounds{Width: 400, Height: 300}
	a := r.Active(9.3, lc, b)
	c := r.Active(9.3, lc, b)
	if len(a) != len(c) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(c))
	}
	for i := range a {
		if a[i] != c[i] {
			t.Errorf("state %d differs: %+v vs %+v", i, a[i], c[i])
		}
	}
	// Scrubbing back reproduces the earlier set.
	early := r.Active(2.0, lc, b)
	_ = r.Active(12.0, lc, b)
	again := r.Active(2.0, lc, b)
	if len(early) != len(again) {
		t.Fatalf("scrub back changed active set: %d vs %d", len(early), len(again))
	}
}

func TestVisibleCapKeepsNewest(t *testing.T) {
	r := newTestRegistry(2)
	for i := 0; i < 5; i++ {
		r.Create(10, 10, 0, defaultParams)
	}
	got := r.Active(1, plainLifecycle(), Bounds{Width: 1000, Height: 1000})
	if len(got) != 2 {
		t.Fatalf("want 2 visible waves, got %d", len(got))
	}
	if got[0].ID != "w4" || got[1].ID != "w5" {
		t.Errorf("visible ids = %s,%s, want w4,w5", got[0].ID, got[1].ID)
	}
	if r.Len() != 5 {
		t.Errorf("history len = %d, want 5", r.Len())
	}
}

func TestPrune(t *testing.T) {
	r := newTestRegistry(0)
	for i := 0; i < 6; i++ {
		r.Create(0, 0, float64(i), defaultParams)
	}
	if n := r.Prune(3); n != 3 {
		t.Fatalf("pruned %d, want 3", n)
	}
	h := r.History()
	if len(h) != 3 || h[0].CreatedAt != 3 {
		t.Errorf("history after prune = %+v", h)
	}
	if r.Latest() != 5 {
		t.Errorf("latest = %v, want 5", r.Latest())
	}
}

func TestCreateSnapshotsParams(t *testing.T) {
	r := NewRegistry(0)
	p := Params{CarrierFrequency: 0.1, GaussianWidth: 5}
	w := r.Create(1, 2, 3, p)
	p.GaussianWidth = 99
	if w.GaussianWidth != 5 || r.History()[0].GaussianWidth != 5 {
		t.Errorf("wave params changed after creation")
	}
	if w.ID == "" {
		t.Error("empty id")
	}
	if w2 := r.Create(1, 2, 3, p); w2.ID == w.ID {
		t.Error("duplicate ids")
	}
}

func TestLifecycleMaxAge(t *testing.T) {
	tests := []struct {
		name string
		lc   Lifecycle
		want float64
	}{
		{"lifetime only", Lifecycle{Lifetime: 15}, 15},
		{"disabled disintegration ignored", Lifecycle{Lifetime: 15, Disintegration: Disintegration{StartAge: 40, Transition: 5}}, 15},
		{"disintegration window longer", Lifecycle{Lifetime: 15, Disintegration: Disintegration{Enabled: true, StartAge: 8, Transition: 5, Persistence: 4}}, 17},
		{"lifetime longer", Lifecycle{Lifetime: 30, Disintegration: Disintegration{Enabled: true, StartAge: 8, Transition: 5, Persistence: 2}}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lc.MaxAge(); got != tt.want {
				t.Errorf("MaxAge() = %v, want %v", got, tt.want)
			}
		})
	}
}
