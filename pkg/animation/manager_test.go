package animation

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-motion/motion/pkg/errors"
)

// fakeClock pins manager time so tests can drive ticks explicitly.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// captureHandler records reported errors.
type captureHandler struct {
	mu   sync.Mutex
	errs []*errors.Error
}

func (h *captureHandler) HandleError(err *errors.Error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

func (h *captureHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.errs)
}

// recorder collects dispatched values.
type recorder struct {
	mu     sync.Mutex
	values []float64
}

func (r *recorder) add(v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

func (r *recorder) countOf(v float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.values {
		if got == v {
			n++
		}
	}
	return n
}

func (r *recorder) last() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		return 0
	}
	return r.values[len(r.values)-1]
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func newTestManager(t *testing.T) (*Manager, *fakeClock, *captureHandler) {
	t.Helper()
	m := NewManager()
	clk := newFakeClock()
	h := &captureHandler{}
	m.SetClock(clk)
	m.SetErrorHandler(h)
	// No background goroutine; every tick in these tests is explicit.
	m.SetExternalTicks(true)
	t.Cleanup(m.StopAll)
	return m, clk, h
}

func TestManagerActiveCount(t *testing.T) {
	m, clk, _ := newTestManager(t)
	if got := m.ActiveCount(); got != 0 {
		t.Fatalf("initial ActiveCount = %d, want 0", got)
	}

	cfg := Config{Duration: 100 * time.Millisecond, Easing: Linear}
	for _, id := range []string{"a", "b", "c"} {
		if err := m.AnimateFloat(id, 0, 1, func(float64) {}, cfg, nil); err != nil {
			t.Fatalf("Animate(%s): %v", id, err)
		}
	}
	if got := m.ActiveCount(); got != 3 {
		t.Fatalf("ActiveCount = %d, want 3", got)
	}

	m.Tick(clk.Now().Add(time.Second))
	if got := m.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount after completion = %d, want 0", got)
	}
}

func TestManagerReplaceSameID(t *testing.T) {
	m, clk, _ := newTestManager(t)
	first := &recorder{}
	second := &recorder{}

	cfg := Config{Duration: 100 * time.Millisecond, Easing: Linear}
	if err := m.AnimateFloat("x", 0, 100, first.add, cfg, nil); err != nil {
		t.Fatal(err)
	}
	if err := m.AnimateFloat("x", 0, 50, second.add, cfg, nil); err != nil {
		t.Fatal(err)
	}

	if got := m.ActiveCount(); got != 1 {
		t.Fatalf("ActiveCount after replacement = %d, want 1", got)
	}

	firstBefore := first.count()
	m.Tick(clk.Now().Add(50 * time.Millisecond))
	m.Tick(clk.Now().Add(100 * time.Millisecond))

	if got := first.count(); got != firstBefore {
		t.Errorf("superseded callback fired %d more times after replacement", got-firstBefore)
	}
	if second.last() != 50 {
		t.Errorf("replacement last value = %v, want 50", second.last())
	}
}

func TestManagerReplaceKeepsOldOnValidationError(t *testing.T) {
	m, _, _ := newTestManager(t)
	cfg := Config{Duration: time.Hour, Easing: Linear}
	if err := m.AnimateFloat("x", 0, 1, func(float64) {}, cfg, nil); err != nil {
		t.Fatal(err)
	}

	err := m.AnimateFloat("x", 0, 1, func(float64) {}, Config{Easing: EasingKind(99)}, nil)
	if !errors.IsKind(err, errors.KindEasing) {
		t.Fatalf("expected KindEasing error, got %v", err)
	}
	if !m.IsAnimating("x") {
		t.Error("existing record lost after rejected replacement")
	}
}

func TestManagerStop(t *testing.T) {
	m, clk, _ := newTestManager(t)
	completed := false

	cfg := Config{Duration: 100 * time.Millisecond, Easing: Linear}
	if err := m.AnimateFloat("x", 0, 1, func(float64) {}, cfg, func() { completed = true }); err != nil {
		t.Fatal(err)
	}
	if !m.IsAnimating("x") {
		t.Fatal("expected IsAnimating before stop")
	}

	m.Stop("x")
	if m.IsAnimating("x") {
		t.Error("IsAnimating true after stop")
	}

	m.Tick(clk.Now().Add(time.Second))
	if completed {
		t.Error("completion callback fired for stopped animation")
	}

	// Unknown ids are a no-op, not an error.
	m.Stop("never-registered")
}

func TestManagerStopAll(t *testing.T) {
	m, _, _ := newTestManager(t)
	cfg := Config{Duration: time.Hour, Easing: Linear}
	for _, id := range []string{"a", "b", "c"} {
		m.AnimateFloat(id, 0, 1, func(float64) {}, cfg, nil)
	}
	m.StopAll()
	if got := m.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount after StopAll = %d, want 0", got)
	}
}

func TestManagerRepeatReachesEndThreeTimes(t *testing.T) {
	m, clk, _ := newTestManager(t)
	rec := &recorder{}
	var completions int
	var mu sync.Mutex
	done := make(chan struct{})

	cfg := Config{Duration: 100 * time.Millisecond, Easing: Linear, RepeatCount: 3}
	err := m.AnimateFloat("rep", 0, 100, rec.add, cfg, func() {
		mu.Lock()
		completions++
		mu.Unlock()
		close(done)
	})
	if err != nil {
		t.Fatal(err)
	}

	now := clk.Now()
	for i := 0; i < 3; i++ {
		now = now.Add(100 * time.Millisecond)
		m.Tick(now)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("completion never fired")
	}
	if got := rec.countOf(100); got != 3 {
		t.Errorf("end value reached %d times, want 3", got)
	}
	mu.Lock()
	defer mu.Unlock()
	if completions != 1 {
		t.Errorf("completion fired %d times, want 1", completions)
	}
}

func TestManagerAutoReverseReturnsToStart(t *testing.T) {
	m, clk, _ := newTestManager(t)
	rec := &recorder{}
	done := make(chan struct{})

	cfg := Config{Duration: 100 * time.Millisecond, Easing: Linear, AutoReverse: true}
	err := m.AnimateFloat("pp", 10, 90, rec.add, cfg, func() { close(done) })
	if err != nil {
		t.Fatal(err)
	}

	now := clk.Now()
	for i := 0; i < 2; i++ {
		now = now.Add(100 * time.Millisecond)
		m.Tick(now)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("completion never fired")
	}
	if got := rec.countOf(90); got != 1 {
		t.Errorf("end value reached %d times, want 1", got)
	}
	if rec.last() != 10 {
		t.Errorf("final value = %v, want start value 10", rec.last())
	}
}

func TestManagerDelayDefersUpdates(t *testing.T) {
	m, clk, _ := newTestManager(t)
	rec := &recorder{}

	cfg := Config{Duration: 100 * time.Millisecond, Easing: Linear, Delay: time.Hour}
	if err := m.AnimateFloat("d", 0, 1, rec.add, cfg, nil); err != nil {
		t.Fatal(err)
	}
	if !m.IsAnimating("d") {
		t.Error("pending record should count as animating")
	}

	m.Tick(clk.Now().Add(time.Minute))
	if got := rec.count(); got != 0 {
		t.Errorf("update fired %d times during delay, want 0", got)
	}

	m.Tick(clk.Now().Add(time.Hour))
	if got := rec.count(); got != 1 {
		t.Errorf("update fired %d times at delay boundary, want 1", got)
	}
}

func TestManagerCallbackPanicCancelsOnlyOffender(t *testing.T) {
	m, clk, h := newTestManager(t)
	sibling := &recorder{}

	cfg := Config{Duration: 100 * time.Millisecond, Easing: Linear}
	err := m.AnimateFloat("bad", 0, 1, func(float64) { panic("boom") }, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AnimateFloat("good", 0, 1, sibling.add, cfg, nil); err != nil {
		t.Fatal(err)
	}

	m.Tick(clk.Now().Add(50 * time.Millisecond))

	waitFor(t, time.Second, func() bool { return h.count() >= 1 })
	h.mu.Lock()
	kind := h.errs[0].Kind
	id := h.errs[0].ID
	h.mu.Unlock()
	if kind != errors.KindCallback || id != "bad" {
		t.Errorf("reported kind=%v id=%q, want callback/bad", kind, id)
	}

	if m.IsAnimating("bad") {
		t.Error("panicking record still active")
	}
	if !m.IsAnimating("good") {
		t.Error("sibling record was cancelled")
	}
	if sibling.count() == 0 {
		t.Error("sibling update never fired")
	}
}

func TestManagerTickIntervalTracksMaxFPS(t *testing.T) {
	m, _, _ := newTestManager(t)

	m.AnimateFloat("slow", 0, 1, func(float64) {}, Config{Duration: time.Hour, FPS: 30}, nil)
	m.AnimateFloat("fast", 0, 1, func(float64) {}, Config{Duration: time.Hour, FPS: 120}, nil)

	m.mu.Lock()
	got := m.interval
	m.mu.Unlock()
	if got != time.Second/120 {
		t.Errorf("interval = %v, want %v", got, time.Second/120)
	}

	m.Stop("fast")
	m.mu.Lock()
	got = m.interval
	m.mu.Unlock()
	if got != time.Second/30 {
		t.Errorf("interval after stop = %v, want %v", got, time.Second/30)
	}
}

func TestManagerConcurrentAnimate(t *testing.T) {
	m := NewManager()
	t.Cleanup(m.StopAll)

	const n = 100
	cfg := Config{Duration: time.Hour, Easing: Linear}

	var wg sync.WaitGroup
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("anim-%03d", i)
	}
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := m.AnimateFloat(id, 0, 1, func(float64) {}, cfg, nil); err != nil {
				t.Errorf("Animate(%s): %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	if got := m.ActiveCount(); got != n {
		t.Fatalf("ActiveCount = %d, want %d", got, n)
	}
	for _, id := range ids {
		if !m.IsAnimating(id) {
			t.Fatalf("lost record %s", id)
		}
	}

	m.StopAll()
	if got := m.ActiveCount(); got != 0 {
		t.Errorf("ActiveCount after StopAll = %d, want 0", got)
	}
}

func TestManagerLoopStopsWhenDrained(t *testing.T) {
	m := NewManager()
	done := make(chan struct{})
	cfg := Config{Duration: 10 * time.Millisecond, Easing: Linear, FPS: 120}
	err := m.AnimateFloat("x", 0, 1, func(float64) {}, cfg, func() { close(done) })
	if err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("animation never completed under the real clock")
	}

	waitFor(t, time.Second, func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		return !m.running
	})
}
