// Package animation drives time-based property transitions for widgets.
//
// # Core Components
//
//   - [Manager]: a concurrent scheduler that advances many independently
//     keyed animations at a target frame rate, applies easing, and
//     dispatches per-frame and completion callbacks.
//
//   - [EasingKind]: a closed set of easing curves (quad, cubic, bounce,
//     elastic, back, circ). [CubicBezier] builds custom curves matching
//     CSS cubic-bezier().
//
//   - [Tween]: interpolates between begin and end values of any type.
//     [LerpFloat64], [LerpColor] and [LerpOffset] cover the common ones.
//
//   - [SpringConfig]: physics-based spring animation for natural
//     overshoot, backed by charmbracelet/harmonica.
//
// # Basic Usage
//
// Create a manager, register animations by id, and push values into your
// widget from the update callback:
//
//	mgr := animation.NewManager()
//	err := mgr.AnimateFloat("fade", 0, 1, func(v float64) {
//	    w.SetOpacity(v)
//	}, animation.FadeConfig(300*time.Millisecond), func() {
//	    w.SetOpacity(1)
//	})
//
// Registering a second animation under "fade" atomically replaces the
// first; the superseded callback never fires again. Callbacks run on the
// manager's tick goroutine and must not block.
//
// # Failure Semantics
//
// Validation problems (unknown easing, mismatched value kinds) are
// returned from Animate synchronously. A panic inside a callback is
// recovered at the record boundary, reported through the error handler,
// and cancels only that record; the tick loop and sibling animations are
// unaffected. Callers that need a guaranteed end state can re-apply the
// end value themselves when a callback failure is reported.
package animation
