package animation

import (
	"fmt"
	"time"

	"github.com/go-motion/motion/pkg/errors"
)

// State is the lifecycle phase of one animation record.
//
//	Pending ──delay elapsed──► Running ──terminal repeat──► Completed
//	    │                         │
//	    └───────── Stop ──────────┴──────► Cancelled
//
// Completed and Cancelled records are removed from the manager; they are
// never re-entered.
type State int

const (
	// StatePending means the record is registered but its delay has not elapsed.
	StatePending State = iota
	// StateRunning means the record is actively updating.
	StateRunning
	// StateCompleted means the record reached its terminal repeat.
	StateCompleted
	// StateCancelled means the record was stopped or superseded.
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type direction int

const (
	forward direction = iota
	reverse
)

// record is the mutable state of one in-flight animation. It is owned by a
// Manager and mutated only under the manager lock; advance never invokes
// callbacks so dispatch can happen off-lock.
type record struct {
	id       string
	start    Value
	end      Value
	update   func(Value)
	complete func()
	cfg      Config
	easing   func(float64) float64
	spring   *springState

	state        State
	dir          direction
	repeat       int
	registeredAt time.Time
	cycleStart   time.Time
}

// advance moves the record forward to now. It returns the value to
// dispatch (when dispatch is true) and whether the record reached its
// terminal repeat this tick. The returned error signals a value pair that
// stopped interpolating, which cancels the record.
func (r *record) advance(now time.Time) (val Value, dispatch, done bool, err error) {
	if r.state == StatePending {
		if now.Sub(r.registeredAt) < r.cfg.Delay {
			return nil, false, false, nil
		}
		r.state = StateRunning
		r.cycleStart = r.registeredAt.Add(r.cfg.Delay)
	}

	if r.spring != nil {
		return r.advanceSpring()
	}

	progress := float64(now.Sub(r.cycleStart)) / float64(r.cfg.Duration)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	eased := r.easing(progress)
	if r.dir == reverse {
		eased = 1 - eased
	}

	val, err = lerpValues("animation.record.advance", r.start, r.end, eased)
	if err != nil {
		return nil, false, false, err
	}

	if progress >= 1 {
		switch {
		case r.cfg.AutoReverse && r.dir == forward:
			// The backward half of a ping-pong pass does not consume a repeat.
			r.dir = reverse
			r.cycleStart = now
		case r.cfg.RepeatCount == RepeatForever || r.repeat+1 < r.cfg.RepeatCount:
			r.repeat++
			r.dir = forward
			r.cycleStart = now
		default:
			r.repeat++
			r.state = StateCompleted
			done = true
		}
	}
	return val, true, done, nil
}

// newRecord validates inputs and builds a pending record. now is the
// registration instant.
func newRecord(op, id string, start, end Value, update func(Value), cfg Config, complete func(), now time.Time) (*record, error) {
	if id == "" {
		return nil, errors.New(op, errors.KindValue, "empty animation id")
	}
	if update == nil {
		return nil, errors.New(op, errors.KindValue, "nil update callback")
	}
	if err := checkValues(op, start, end); err != nil {
		e := err.(*errors.Error)
		e.ID = id
		return nil, e
	}
	cfg = cfg.withDefaults()
	easing, err := cfg.easingFunc()
	if err != nil {
		e := err.(*errors.Error)
		e.Op, e.ID = op, id
		return nil, e
	}
	return &record{
		id:           id,
		start:        start,
		end:          end,
		update:       update,
		complete:     complete,
		cfg:          cfg,
		easing:       easing,
		state:        StatePending,
		dir:          forward,
		registeredAt: now,
	}, nil
}
