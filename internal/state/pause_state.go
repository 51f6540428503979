// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the simulation, keeps drawing the frozen game behind a
// dim overlay and returns to the previous state on the pause keys.
type PauseState struct {
	sm       *StateMachine
	previous State
	game     *app.Game
	face     font.Face
}

func NewPauseState(sm *StateMachine, previous State, game *app.Game, face font.Face) *PauseState {
	return &PauseState{sm: sm, previous: previous, game: game, face: face}
}

func (s *PauseState) Enter() {
	s.game.SetPaused(true)
}

func (s *PauseState) Exit() {
	s.game.SetPaused(false)
}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	overlay := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	overlay.Fill(color.RGBA{0, 0, 0, 128})
	screen.DrawImage(overlay, nil)

	label := "PAUSED"
	bounds := text.BoundString(s.face, label)
	text.Draw(screen, label, s.face,
		config.ScreenWidth/2-bounds.Dx()/2, config.ScreenHeight/2, config.PauseColor)
}
