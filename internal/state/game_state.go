// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/ui"
)

// runUpgradeKeys binds the number row to the run-upgrade shop.
var runUpgradeKeys = []struct {
	key ebiten.Key
	id  string
}{
	{ebiten.Key1, defs.UpgradeClickDamage},
	{ebiten.Key2, defs.UpgradeAutoDamage},
	{ebiten.Key3, defs.UpgradeFireRate},
	{ebiten.Key4, defs.UpgradeCritChance},
	{ebiten.Key5, defs.UpgradeMaxHP},
	{ebiten.Key6, defs.UpgradeRegen},
	{ebiten.Key7, defs.UpgradeScrapGain},
}

// GameState is the playing screen: it routes input into the session and
// draws the world plus the HUD.
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	face          font.Face
	hud           *ui.HUD
	waveIndicator *ui.WaveIndicator
	pauseButton   *ui.PauseButton
}

func NewGameState(sm *StateMachine, game *app.Game, face font.Face) *GameState {
	return &GameState{
		sm:            sm,
		game:          game,
		face:          face,
		hud:           ui.NewHUD(face),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 64, face),
		pauseButton:   ui.NewPauseButton(config.ScreenWidth-36, 28, 10),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g, g.game, g.face))
		return
	}

	g.handleInput()
	g.game.Update(deltaTime)
}

func (g *GameState) handleInput() {
	if g.game.IsGameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.game.Reset()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			if !g.game.Prestige() {
				g.game.Reset()
			}
		}
		return
	}

	for _, bind := range runUpgradeKeys {
		if inpututil.IsKeyJustPressed(bind.key) {
			g.game.BuyRunUpgrade(bind.id)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.game.Prestige()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF6) {
		// Debug skip: jump ten waves ahead with a clean field.
		g.game.SetWave(g.game.Level()+10, true)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.pauseButton.Contains(float64(x), float64(y)) {
			g.sm.SetState(NewPauseState(g.sm, g, g.game, g.face))
			return
		}
		g.game.HandleClick(float64(x), float64(y))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.RenderSystem.Draw(screen, g.game.GameTime())

	hp, maxHP := g.game.CoreHP()
	g.hud.Draw(screen, ui.HUDStats{
		CoreHP:        hp,
		CoreMax:       maxHP,
		Scrap:         g.game.Scrap(),
		Cores:         g.game.Cores(),
		Essence:       g.game.Essence(),
		Prisms:        g.game.Prisms(),
		Wave:          g.game.Level(),
		Kills:         g.game.Kills(),
		PrestigeYield: g.game.PrestigeYield(),
	})
	g.waveIndicator.Draw(screen, g.game.Level())
	g.pauseButton.IsPaused = g.game.IsPaused()
	g.pauseButton.Draw(screen)

	if g.game.IsGameOver() {
		g.drawGameOver(screen)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 160}, false)

	title := "CORE LOST"
	bounds := text.BoundString(g.face, title)
	text.Draw(screen, title, g.face,
		config.ScreenWidth/2-bounds.Dx()/2, config.ScreenHeight/2-20, config.CoreHurtColor)

	hint := fmt.Sprintf("R restart  -  P prestige (+%.0f cores)", g.game.PrestigeYield())
	bounds = text.BoundString(g.face, hint)
	text.Draw(screen, hint, g.face,
		config.ScreenWidth/2-bounds.Dx()/2, config.ScreenHeight/2+12, config.TextLightColor)
}
