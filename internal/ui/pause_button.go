// internal/ui/pause_button.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-core-defense/internal/config"
)

// PauseButton is the clickable pause toggle in the screen corner. It draws
// the pause bars while running and a play triangle while paused.
type PauseButton struct {
	X, Y     float32
	Size     float32
	IsPaused bool
}

func NewPauseButton(x, y, size float32) *PauseButton {
	return &PauseButton{X: x, Y: y, Size: size}
}

// Contains reports whether a screen point falls inside the hit box.
func (b *PauseButton) Contains(x, y float64) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X-b.Size && fx <= b.X+b.Size &&
		fy >= b.Y-b.Size && fy <= b.Y+b.Size
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	if b.IsPaused {
		// Play triangle, approximated with strokes.
		vector.StrokeLine(screen, b.X-b.Size*0.6, b.Y-b.Size, b.X-b.Size*0.6, b.Y+b.Size, 2, config.PauseColor, true)
		vector.StrokeLine(screen, b.X-b.Size*0.6, b.Y-b.Size, b.X+b.Size*0.8, b.Y, 2, config.PauseColor, true)
		vector.StrokeLine(screen, b.X-b.Size*0.6, b.Y+b.Size, b.X+b.Size*0.8, b.Y, 2, config.PauseColor, true)
		return
	}
	w := b.Size * 0.45
	vector.DrawFilledRect(screen, b.X-w-b.Size*0.25, b.Y-b.Size, w, b.Size*2, config.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+b.Size*0.25, b.Y-b.Size, w, b.Size*2, config.PauseColor, true)
}
