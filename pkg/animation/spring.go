package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/go-motion/motion/pkg/errors"
)

// SpringConfig describes a damped-spring animation. Unlike a curve-based
// [Config] it has no duration; the animation runs until the simulated
// value settles on its target.
type SpringConfig struct {
	// FPS is the simulation step rate. Defaults to 60. The spring assumes
	// its FPS matches the manager tick cadence, so give concurrent springs
	// the same rate as the fastest curve animation.
	FPS int

	// AngularFrequency controls stiffness. Higher values oscillate faster.
	// Defaults to 6.0.
	AngularFrequency float64

	// Damping controls how quickly oscillation dies out. Values below 1
	// overshoot; 1 is critically damped. Defaults to 0.8.
	Damping float64
}

func (c SpringConfig) withDefaults() SpringConfig {
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.AngularFrequency == 0 {
		c.AngularFrequency = 6.0
	}
	if c.Damping == 0 {
		c.Damping = 0.8
	}
	return c
}

// settleEpsilon bounds position and velocity error below which a spring
// counts as settled.
const settleEpsilon = 1e-3

// springState is the per-record simulation state for spring animations.
type springState struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// AnimateSpring registers a damped-spring animation of a scalar from start
// toward target under id, replacing any record already registered there.
// Springs share the record lifecycle with curve animations: Stop, StopAll,
// IsAnimating and replacement behave identically.
func (m *Manager) AnimateSpring(id string, start, target float64, update func(float64), cfg SpringConfig, complete func()) error {
	const op = "animation.Manager.AnimateSpring"
	if update == nil {
		return errors.New(op, errors.KindValue, "nil update callback")
	}
	cfg = cfg.withDefaults()

	wrapped := func(v Value) { update(float64(v.(Float))) }
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := newRecord(op, id, Float(start), Float(target), wrapped, Config{FPS: cfg.FPS}, complete, m.clock.Now())
	if err != nil {
		return err
	}
	rec.spring = &springState{
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.AngularFrequency, cfg.Damping),
		pos:    start,
		target: target,
	}
	m.registerLocked(rec)
	return nil
}

// advanceSpring steps the simulation one tick. Called from record.advance
// once the record is running.
func (r *record) advanceSpring() (Value, bool, bool, error) {
	s := r.spring
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)

	if math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon {
		s.pos = s.target
		r.state = StateCompleted
		return Float(s.pos), true, true, nil
	}
	return Float(s.pos), true, false, nil
}
