// Package testing provides test helpers for animated widgets.
//
// # Deterministic Time
//
// [FakeClock] replaces the animation manager's clock so tests control
// every tick:
//
//	mgr := animation.NewManager()
//	clk := motiontest.NewFakeClock()
//	mgr.SetClock(clk)
//	mgr.SetExternalTicks(true)
//
//	mgr.AnimateFloat("x", 0, 1, onUpdate, cfg, nil)
//	clk.Step(30, 60, mgr.Tick)
//
// # Headless Rendering
//
// [RecorderRenderer] stands in for a toolkit driver and records every
// visual snapshot a widget pushes:
//
//	rec := motiontest.NewRecorderRenderer()
//	btn := widget.NewButton("Save")
//	btn.SetRenderer(rec)
//
//	btn.HandleHoverEnter()
//	clk.Step(30, 60, btn.Manager().Tick)
//	got := rec.Last().Color
//
// Import under the name motiontest to avoid shadowing the standard
// library's testing package.
package testing
