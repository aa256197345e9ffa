package widget

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-motion/motion/pkg/errors"
)

// EventType identifies a widget event observers can subscribe to.
type EventType int

const (
	// EventClick fires on a completed press/release inside the widget.
	EventClick EventType = iota
	// EventHoverEnter fires when the pointer enters the widget.
	EventHoverEnter
	// EventHoverLeave fires when the pointer leaves the widget.
	EventHoverLeave
	// EventValueChanged fires when a widget's value changes.
	EventValueChanged
	// EventStateChanged fires on visual state transitions with the old and
	// new [VisualState] as arguments.
	EventStateChanged
	// EventFocusIn fires when the widget gains keyboard focus.
	EventFocusIn
	// EventFocusOut fires when the widget loses keyboard focus.
	EventFocusOut
)

func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventHoverEnter:
		return "hover_enter"
	case EventHoverLeave:
		return "hover_leave"
	case EventValueChanged:
		return "value_changed"
	case EventStateChanged:
		return "state_changed"
	case EventFocusIn:
		return "focus_in"
	case EventFocusOut:
		return "focus_out"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Events is a multi-subscriber observer registry. The zero value is ready
// to use. All methods are safe for concurrent use.
type Events struct {
	mu        sync.Mutex
	listeners map[EventType]map[int]func(args ...any)
	nextID    int
}

// Bind subscribes fn to an event type and returns an unsubscribe function.
func (e *Events) Bind(t EventType, fn func(args ...any)) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners == nil {
		e.listeners = make(map[EventType]map[int]func(args ...any))
	}
	if e.listeners[t] == nil {
		e.listeners[t] = make(map[int]func(args ...any))
	}
	id := e.nextID
	e.nextID++
	e.listeners[t][id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners[t], id)
	}
}

// Trigger invokes every listener bound to the event type. A panicking
// listener is reported through the global error handler and does not
// prevent the remaining listeners from running.
func (e *Events) Trigger(t EventType, args ...any) {
	e.mu.Lock()
	fns := make([]func(args ...any), 0, len(e.listeners[t]))
	for _, fn := range e.listeners[t] {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		e.invoke(t, fn, args)
	}
}

func (e *Events) invoke(t EventType, fn func(args ...any), args []any) {
	defer func() {
		if r := recover(); r != nil {
			errors.Report(&errors.Error{
				Op:         "widget.Events.Trigger",
				Kind:       errors.KindCallback,
				ID:         t.String(),
				Err:        fmt.Errorf("panic: %v", r),
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
		}
	}()
	fn(args...)
}
