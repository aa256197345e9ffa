package animation

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-motion/motion/pkg/errors"
	"github.com/go-motion/motion/pkg/graphics"
)

// Manager schedules flat, independently keyed animations.
//
// Each animation is registered under a string id; registering under an id
// already in use atomically cancels the previous record, so at most one
// record exists per id. A single background goroutine ticks all active
// records at the highest FPS any of them requests, starting lazily on the
// first registration and exiting when the active set drains.
//
// All methods are safe for concurrent use. Update and completion callbacks
// run on the tick goroutine; callback bodies must not block. A panic inside
// a callback cancels only the offending record and is reported through the
// error handler, never returned to the tick loop. A failed record is
// retired as-is: the manager does not jump it to its end value. Callers
// that need that fallback can apply the end value themselves when the
// handler observes a callback failure.
//
// Create Managers explicitly and share them by reference; there is no
// package-level instance.
type Manager struct {
	mu       sync.Mutex
	clock    Clock
	handler  errors.Handler
	records  map[string]*record
	interval time.Duration
	running  bool
	external bool
}

// NewManager returns an empty manager using the system clock.
func NewManager() *Manager {
	return &Manager{
		clock:    realClock{},
		records:  make(map[string]*record),
		interval: time.Second / DefaultFPS,
	}
}

// SetClock replaces the manager's time source. Intended for tests; call
// before registering animations.
func (m *Manager) SetClock(c Clock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c != nil {
		m.clock = c
	}
}

// SetErrorHandler routes asynchronous callback failures to h instead of
// the global errors handler. Pass nil to restore the global handler.
func (m *Manager) SetErrorHandler(h errors.Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = h
}

// SetExternalTicks, when external is true, suppresses the background tick
// goroutine; the caller becomes responsible for calling [Manager.Tick]
// once per frame. Programs embedding the manager in a game or render loop
// use this to keep animation updates on the frame thread. Call before
// registering animations.
func (m *Manager) SetExternalTicks(external bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.external = external
}

// Tick advances every active animation to now and dispatches callbacks on
// the calling goroutine. Only useful with external ticking; with the
// background goroutine running it merely adds extra updates.
func (m *Manager) Tick(now time.Time) {
	m.step(now)
}

// Animate registers an animation of start toward end under id, replacing
// any record already registered there. update receives the interpolated
// value once per tick; complete, if non-nil, fires exactly once when the
// terminal repeat finishes. Validation errors (unknown easing kind,
// mismatched value kinds) are returned synchronously and leave any
// existing record under id untouched.
func (m *Manager) Animate(id string, start, end Value, update func(Value), cfg Config, complete func()) error {
	const op = "animation.Manager.Animate"
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := newRecord(op, id, start, end, update, cfg, complete, m.clock.Now())
	if err != nil {
		return err
	}
	m.registerLocked(rec)
	return nil
}

// AnimateFloat is Animate for scalar values.
func (m *Manager) AnimateFloat(id string, start, end float64, update func(float64), cfg Config, complete func()) error {
	return m.Animate(id, Float(start), Float(end), func(v Value) {
		update(float64(v.(Float)))
	}, cfg, complete)
}

// AnimateColor is Animate for color values.
func (m *Manager) AnimateColor(id string, start, end graphics.Color, update func(graphics.Color), cfg Config, complete func()) error {
	return m.Animate(id, Color(start), Color(end), func(v Value) {
		update(graphics.Color(v.(Color)))
	}, cfg, complete)
}

// AnimateOffset is Animate for positional values.
func (m *Manager) AnimateOffset(id string, start, end graphics.Offset, update func(graphics.Offset), cfg Config, complete func()) error {
	return m.Animate(id, Offset(start), Offset(end), func(v Value) {
		update(graphics.Offset(v.(Offset)))
	}, cfg, complete)
}

// registerLocked replaces any record under rec.id and ensures the tick
// goroutine is running. Caller holds the lock.
func (m *Manager) registerLocked(rec *record) {
	if old, ok := m.records[rec.id]; ok {
		old.state = StateCancelled
	}
	m.records[rec.id] = rec
	m.recomputeIntervalLocked()
	if !m.running && !m.external {
		m.running = true
		go m.loop()
	}
}

// Stop cancels the animation under id without invoking its completion
// callback. Unknown ids are a no-op.
func (m *Manager) Stop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec, ok := m.records[id]; ok {
		rec.state = StateCancelled
		delete(m.records, id)
		m.recomputeIntervalLocked()
	}
}

// StopAll cancels every active animation. Used for teardown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, rec := range m.records {
		rec.state = StateCancelled
		delete(m.records, id)
	}
}

// IsAnimating reports whether an animation is registered under id and has
// not yet completed or been cancelled.
func (m *Manager) IsAnimating(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	return ok && (rec.state == StatePending || rec.state == StateRunning)
}

// ActiveCount returns a snapshot count of non-terminal records.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// recomputeIntervalLocked sets the tick interval from the highest FPS any
// active record requests. Caller holds the lock.
func (m *Manager) recomputeIntervalLocked() {
	maxFPS := 0
	for _, rec := range m.records {
		if rec.cfg.FPS > maxFPS {
			maxFPS = rec.cfg.FPS
		}
	}
	if maxFPS > 0 {
		m.interval = time.Second / time.Duration(maxFPS)
	}
}

// loop is the tick goroutine. It exits when the active set drains; the
// next registration starts a new one.
func (m *Manager) loop() {
	for {
		m.mu.Lock()
		if len(m.records) == 0 {
			m.running = false
			m.mu.Unlock()
			return
		}
		d := m.interval
		m.mu.Unlock()

		time.Sleep(d)
		m.step(m.clock.Now())
	}
}

// dispatchItem is one callback invocation owed after a step.
type dispatchItem struct {
	rec      *record
	val      Value
	complete func()
}

// step advances every active record to now and dispatches the resulting
// callbacks. Record mutation happens under the lock; callbacks run after
// it is released, each guarded by a currency re-check so a record stopped
// or replaced mid-step never fires again.
func (m *Manager) step(now time.Time) {
	m.mu.Lock()
	work := make([]dispatchItem, 0, len(m.records))
	var failed []*errors.Error
	for id, rec := range m.records {
		val, dispatch, done, err := rec.advance(now)
		if err != nil {
			rec.state = StateCancelled
			delete(m.records, id)
			failed = append(failed, asError(err, id))
			continue
		}
		if !dispatch {
			continue
		}
		item := dispatchItem{rec: rec, val: val}
		if done {
			delete(m.records, id)
			item.complete = rec.complete
		}
		work = append(work, item)
	}
	m.recomputeIntervalLocked()
	handler := m.handler
	m.mu.Unlock()

	for _, err := range failed {
		m.report(handler, err)
	}
	for _, item := range work {
		m.dispatch(item, handler)
	}
}

// dispatch runs one record's update (and completion, when owed) with
// panic isolation.
func (m *Manager) dispatch(item dispatchItem, handler errors.Handler) {
	rec := item.rec

	m.mu.Lock()
	cancelled := rec.state == StateCancelled
	m.mu.Unlock()
	if cancelled {
		return
	}

	if !m.invoke("animation.updateCallback", rec, item.val, handler) {
		return
	}
	if item.complete != nil {
		m.invokeCompletion(rec, item.complete, handler)
	}
}

// invoke calls the record's update callback, cancelling the record on
// panic. Returns false when the record was cancelled.
func (m *Manager) invoke(op string, rec *record, val Value, handler errors.Handler) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			m.cancelRecord(rec)
			m.report(handler, &errors.Error{
				Op:         op,
				Kind:       errors.KindCallback,
				ID:         rec.id,
				Err:        fmt.Errorf("panic: %v", r),
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
			ok = false
		}
	}()
	rec.update(val)
	return true
}

// invokeCompletion runs the completion callback with panic isolation. The
// record is already removed, so a panic here only gets reported.
func (m *Manager) invokeCompletion(rec *record, complete func(), handler errors.Handler) {
	defer func() {
		if r := recover(); r != nil {
			m.report(handler, &errors.Error{
				Op:         "animation.completionCallback",
				Kind:       errors.KindCallback,
				ID:         rec.id,
				Err:        fmt.Errorf("panic: %v", r),
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	complete()
}

// cancelRecord removes rec if it is still the current record under its id.
func (m *Manager) cancelRecord(rec *record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.state = StateCancelled
	if cur, ok := m.records[rec.id]; ok && cur == rec {
		delete(m.records, rec.id)
		m.recomputeIntervalLocked()
	}
}

func (m *Manager) report(handler errors.Handler, err *errors.Error) {
	if handler != nil {
		handler.HandleError(err)
		return
	}
	errors.Report(err)
}

func asError(err error, id string) *errors.Error {
	if e, ok := err.(*errors.Error); ok {
		e.ID = id
		return e
	}
	return &errors.Error{Op: "animation.Manager.step", Kind: errors.KindUnknown, ID: id, Err: err}
}
