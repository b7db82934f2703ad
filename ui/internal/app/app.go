// Package app adapts a precomputed terrain-erosion frame sequence to the
// ebiten.Game interface. The whole timeline is computed up front, so the
// UI's job is only playback and scrubbing, never stepping the simulation
// itself.
package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"terra/internal/heightmap"
	"terra/ui/internal/render"
	"terra/ui/internal/ui"
)

// Game holds the full computed frame history and drives playback.
type Game struct {
	frames  []*heightmap.Grid
	painter *render.GridPainter
	hud     *ui.HUD

	scale   int
	current int
	playing bool
}

// New constructs a Game over the given frame-0..frame-N sequence.
func New(frames []*heightmap.Grid, scale int) *Game {
	w, h := frames[0].W, frames[0].H
	return &Game{
		frames:  frames,
		painter: render.NewGridPainter(w, h),
		hud:     ui.NewHUD(),
		scale:   scale,
		playing: true,
	}
}

// Update handles per-frame input: space toggles playback, arrow keys
// scrub, Q/Escape quits.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playing = !g.playing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.playing = false
		g.step(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.playing = false
		g.step(1)
	}
	if g.playing {
		g.step(1)
	}
	return nil
}

func (g *Game) step(delta int) {
	next := g.current + delta
	if next < 0 {
		next = 0
	}
	if next >= len(g.frames) {
		next = len(g.frames) - 1
		g.playing = false
	}
	g.current = next
}

// Draw renders the current frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.frames[g.current]
	g.painter.Blit(screen, frame, g.scale)
	g.hud.Draw(screen, g.current, len(g.frames)-1)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	frame := g.frames[0]
	return frame.W * g.scale, frame.H * g.scale
}
