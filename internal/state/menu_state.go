// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
)

// MenuState is the title screen.
type MenuState struct {
	sm   *StateMachine
	game *app.Game
	face font.Face
}

func NewMenuState(sm *StateMachine, game *app.Game, face font.Face) *MenuState {
	return &MenuState{sm: sm, game: game, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Exit() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.game, m.face))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "CORE DEFENSE"
	bounds := text.BoundString(m.face, title)
	text.Draw(screen, title, m.face,
		config.ScreenWidth/2-bounds.Dx()/2, config.ScreenHeight/2-30, config.CoreColor)

	hint := "click or press space to start"
	bounds = text.BoundString(m.face, hint)
	text.Draw(screen, hint, m.face,
		config.ScreenWidth/2-bounds.Dx()/2, config.ScreenHeight/2+10, config.TextDimColor)
}
