//go:build ebiten

package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/game-of-colors/driver"
	"github.com/sheikhrachel/game-of-colors/tui"
	"github.com/sheikhrachel/game-of-colors/utils"
)

// windowGame adapts a driver to the ebiten.Game interface
type windowGame struct {
	driver *driver.Driver
	pacer  *driver.FixedStep

	img  *ebiten.Image
	buf  []byte
	w, h int

	scale    int
	paused   bool
	tickOnce bool
}

func newWindowGame(d *driver.Driver, scale int) *windowGame {
	if scale <= 0 {
		scale = 1
	}
	return &windowGame{
		driver: d,
		pacer:  driver.NewFixedStep(d.Config().TickInterval()),
		scale:  scale,
	}
}

// Update handles per-frame logic and advances the simulation
func (g *windowGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.driver.Reset(g.driver.Seed()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.driver.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	step := g.pacer.ShouldStep()
	if (!g.paused && step) || g.tickOnce {
		g.tickOnce = false
		return g.driver.Tick()
	}
	return nil
}

// Draw uploads the committed generation and scales it onto the screen
func (g *windowGame) Draw(screen *ebiten.Image) {
	snap := g.driver.Snapshot()
	if g.img == nil || snap.Width != g.w || snap.Height != g.h {
		g.w, g.h = snap.Width, snap.Height
		g.img = ebiten.NewImage(g.w, g.h)
		g.buf = make([]byte, 4*g.w*g.h)
	}

	tui.FillRGBA(g.buf, snap.Cells)
	g.img.WritePixels(g.buf)

	screen.Fill(tui.BackgroundRGBA)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size
func (g *windowGame) Layout(_, _ int) (int, int) {
	config := g.driver.Config()
	return config.Width * g.scale, config.Height * g.scale
}

func runWindow(config utils.Config, scale int, logger *log.Logger) error {
	d, err := driver.New(config, driver.WithLogger(logger))
	if err != nil {
		return err
	}
	game := newWindowGame(d, scale)

	ebiten.SetWindowTitle("Game of Colors")
	ebiten.SetWindowSize(config.Width*game.scale, config.Height*game.scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
