// Command showcase renders a grid of animated buttons in an Ebitengine
// window, driven by a YAML scene file:
//
//	go run ./cmd/showcase --config=cmd/showcase/config.yaml
//
// Clicking a button plays its configured effect.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/go-motion/motion/pkg/animation"
	"github.com/go-motion/motion/pkg/driver/ebitendriver"
	"github.com/go-motion/motion/pkg/errors"
	"github.com/go-motion/motion/pkg/graphics"
	"github.com/go-motion/motion/pkg/widget"
)

var (
	configPath = flag.String("config", "cmd/showcase/config.yaml", "scene file path")
	verbose    = flag.Bool("verbose", false, "log animation errors verbosely")
)

// showcaseButton pairs a button with its renderer and effect.
type showcaseButton struct {
	btn      *widget.Button
	renderer *ebitendriver.ButtonRenderer
	effect   string
}

// Game drives the scene. All buttons share one animation manager ticked
// from Update, so callbacks stay on the game goroutine.
type Game struct {
	cfg     *ShowcaseConfig
	mgr     *animation.Manager
	buttons []*showcaseButton
}

func NewGame(cfg *ShowcaseConfig) (*Game, error) {
	mgr := animation.NewManager()
	mgr.SetExternalTicks(true)

	g := &Game{cfg: cfg, mgr: mgr}
	for _, bc := range cfg.Buttons {
		sb, err := buildButton(bc, mgr)
		if err != nil {
			return nil, err
		}
		g.buttons = append(g.buttons, sb)
	}
	log.Printf("scene ready: %d buttons", len(g.buttons))
	return g, nil
}

func buildButton(bc ButtonConfig, mgr *animation.Manager) (*showcaseButton, error) {
	btn := widget.NewButton(bc.Label).WithManager(mgr)

	cfg := btn.Config
	cfg.Width = int(bc.Width)
	cfg.Height = int(bc.Height)
	cfg.AnimationDuration = bc.duration()
	if bc.Easing != "" {
		kind, err := animation.ParseEasing(bc.Easing)
		if err != nil {
			return nil, err
		}
		cfg.TransitionEasing = kind
	}
	btn.WithConfig(cfg)

	style := btn.Style
	if bc.NormalColor != "" {
		style.NormalColor = graphics.MustParseColor(bc.NormalColor)
		style.PressedColor = style.NormalColor.Darken(0.3)
	}
	if bc.HoverColor != "" {
		style.HoverColor = graphics.MustParseColor(bc.HoverColor)
	} else if bc.NormalColor != "" {
		style.HoverColor = style.NormalColor.Darken(0.15)
	}
	btn.WithStyle(style)

	handle, err := btn.Render(nil, "ebiten")
	if err != nil {
		return nil, err
	}
	renderer := handle.(*ebitendriver.ButtonRenderer)
	renderer.SetBounds(graphics.Rect{X: bc.X, Y: bc.Y, Width: bc.Width, Height: bc.Height})

	sb := &showcaseButton{btn: btn, renderer: renderer, effect: bc.Effect}
	btn.Events.Bind(widget.EventClick, func(...any) { sb.playEffect() })
	return sb, nil
}

func (s *showcaseButton) playEffect() {
	switch s.effect {
	case "pulse":
		s.btn.Pulse(1.15, 200*time.Millisecond)
	case "flash":
		s.btn.Flash(150 * time.Millisecond)
	case "shake":
		s.btn.Shake(8, 400*time.Millisecond)
	case "bounce":
		s.btn.Bounce(12, 500*time.Millisecond)
	case "spring":
		s.btn.SpringPress()
	}
}

func (g *Game) Update() error {
	for _, sb := range g.buttons {
		sb.renderer.Update()
	}
	g.mgr.Tick(time.Now())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x1e, G: 0x27, B: 0x2e, A: 0xff})
	for _, sb := range g.buttons {
		sb.renderer.Draw(screen)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("active animations: %d", g.mgr.ActiveCount()))
}

func (g *Game) Layout(int, int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	flag.Parse()
	errors.SetHandler(&errors.LogHandler{Verbose: *verbose})

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
