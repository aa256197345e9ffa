package testing

import (
	"sync"

	"github.com/go-motion/motion/pkg/widget"
)

// RecorderRenderer is a widget.Renderer that records every visual
// snapshot it receives instead of drawing. Attach it with
// [widget.Button.SetRenderer] to assert on animation output without a
// toolkit.
type RecorderRenderer struct {
	mu     sync.Mutex
	frames []widget.Visual
}

// NewRecorderRenderer returns an empty recorder.
func NewRecorderRenderer() *RecorderRenderer {
	return &RecorderRenderer{}
}

// Render implements widget.Renderer. The recorder has no native handle,
// so it returns itself.
func (r *RecorderRenderer) Render(parent any) (any, error) {
	return r, nil
}

// UpdateAppearance implements widget.Renderer.
func (r *RecorderRenderer) UpdateAppearance(v widget.Visual) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, v)
}

// Frames returns a copy of every snapshot recorded so far.
func (r *RecorderRenderer) Frames() []widget.Visual {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]widget.Visual, len(r.frames))
	copy(out, r.frames)
	return out
}

// Last returns the most recent snapshot, or the zero Visual when none
// was recorded.
func (r *RecorderRenderer) Last() widget.Visual {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return widget.Visual{}
	}
	return r.frames[len(r.frames)-1]
}

// Count returns the number of snapshots recorded.
func (r *RecorderRenderer) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Reset discards all recorded snapshots.
func (r *RecorderRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = nil
}
