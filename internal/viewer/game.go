//go:build ebiten

package viewer

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ngmaloney/seastate/internal/seasurface"
	"github.com/ngmaloney/seastate/internal/wave"
)

// Game adapts a sea surface to the ebiten.Game interface.
type Game struct {
	field *seasurface.Field
	img   *ebiten.Image
	buf   []byte

	scale  int
	step   float64
	time   float64
	paused bool
	err    error
}

// New constructs a Game that advances field by step seconds per tick and
// draws each control point as a scale by scale block.
func New(field *seasurface.Field, scale int, step float64) *Game {
	n := field.ControlPointCount()
	return &Game{
		field: field,
		img:   ebiten.NewImage(n, n),
		buf:   make([]byte, 4*n*n),
		scale: scale,
		step:  step,
	}
}

// Update handles input and advances the sea.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.time = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.err = g.field.SetWindSpeed(g.field.WindSpeed() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.field.WindSpeed() > 1 {
		g.err = g.field.SetWindSpeed(g.field.WindSpeed() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.err = g.field.SetWindDirection(wave.NormalizeAngle(g.field.WindDirection() - wave.Deg2Rad(15)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.err = g.field.SetWindDirection(wave.NormalizeAngle(g.field.WindDirection() + wave.Deg2Rad(15)))
	}

	if !g.paused {
		g.time += g.step
	}
	if g.paused && g.field.State() == seasurface.StateReady {
		return nil
	}
	return g.field.AdvanceTo(g.time)
}

// Draw renders the current heights.
func (g *Game) Draw(screen *ebiten.Image) {
	hs := g.field.Spectrum().SignificantWaveHeight()
	fillHeightRGBA(g.buf, g.field.Heights(), hs)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	msg := fmt.Sprintf("t=%.1fs  Hs=%.2fm  wind %.1fm/s toward %03.0f",
		g.time, hs, g.field.WindSpeed(), wave.Rad2Deg(g.field.WindDirection()))
	if g.err != nil {
		msg += "\n" + g.err.Error()
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.field.ControlPointCount()
	return n * g.scale, n * g.scale
}
