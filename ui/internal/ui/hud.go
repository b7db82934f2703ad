// Package ui draws the small HUD overlay on top of the terrain preview: a
// single frame/total readout.
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the current frame index over the playback view.
type HUD struct {
	face *basicfont.Face
}

// NewHUD constructs a HUD using the bundled basic bitmap font.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13}
}

// Draw writes "frame N/total" plus playback hints in the top-left corner.
func (h *HUD) Draw(dst *ebiten.Image, current, total int) {
	text.Draw(dst, fmt.Sprintf("frame %d/%d  [space] play/pause  [<-/->] scrub  [q] quit", current, total), h.face, 6, 16, color.White)
}
