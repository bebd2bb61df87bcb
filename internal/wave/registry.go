package wave

import (
	"github.com/google/uuid"
)

// Registry owns the creation history of waves. The history is append-only
// apart from explicit pruning; the active set is recomputed from it for any
// time value, so scrubbing backwards is always possible within the retained
// history.
type Registry struct {
	history []Wave

	// MaxVisible caps how many waves Active returns. The newest waves win.
	// Zero means no cap. The cap never evicts history.
	MaxVisible int

	newID func() string
}

// NewRegistry returns an empty registry issuing UUID identifiers.
func NewRegistry(maxVisible int) *Registry {
	return &Registry{MaxVisible: maxVisible, newID: uuid.NewString}
}

// SetIDSource replaces the identifier generator. Tests use it for
// predictable IDs.
func (r *Registry) SetIDSource(fn func() string) {
	if fn == nil {
		fn = uuid.NewString
	}
	r.newID = fn
}

// Create appends a wave starting at time at with parameters p.
func (r *Registry) Create(x, y, at float64, p Params) Wave {
	if r.newID == nil {
		r.newID = uuid.NewString
	}
	w := Wave{
		ID:               r.newID(),
		X:                x,
		Y:                y,
		CreatedAt:        at,
		CarrierFrequency: p.CarrierFrequency,
		GaussianWidth:    p.GaussianWidth,
	}
	r.history = append(r.history, w)
	return w
}

// Active returns the waves to render at time t, in creation order.
func (r *Registry) Active(t float64, lc Lifecycle, b Bounds) []State {
	return r.AppendActive(nil, t, lc, b)
}

// AppendActive is Active writing into dst[:0] to reuse its storage.
func (r *Registry) AppendActive(dst []State, t float64, lc Lifecycle, b Bounds) []State {
	dst = dst[:0]
	for _, w := range r.history {
		st, phase := lc.Evaluate(w, t, b)
		if phase == PhaseActive || phase == PhaseDisintegrating {
			dst = append(dst, st)
		}
	}
	if r.MaxVisible > 0 && len(dst) > r.MaxVisible {
		n := copy(dst, dst[len(dst)-r.MaxVisible:])
		dst = dst[:n]
	}
	return dst
}

// Prune drops waves created before the given time and returns how many were
// removed.
func (r *Registry) Prune(before float64) int {
	kept := r.history[:0]
	for _, w := range r.history {
		if w.CreatedAt >= before {
			kept = append(kept, w)
		}
	}
	removed := len(r.history) - len(kept)
	for i := len(kept); i < len(r.history); i++ {
		r.history[i] = Wave{}
	}
	r.history = kept
	return removed
}

// Latest returns the largest creation time in the history, or 0 if empty.
func (r *Registry) Latest() float64 {
	latest := 0.0
	for _, w := range r.history {
		if w.CreatedAt > latest {
			latest = w.CreatedAt
		}
	}
	return latest
}

// Len reports the size of the history.
func (r *Registry) Len() int { return len(r.history) }

// History returns a copy of every retained wave in creation order.
func (r *Registry) History() []Wave {
	out := make([]Wave, len(r.history))
	copy(out, r.history)
	return out
}

// Reset forgets every wave.
func (r *Registry) Reset() {
	r.history = r.history[:0]
}
