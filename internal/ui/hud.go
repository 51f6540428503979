// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-core-defense/internal/config"
)

// HUDStats is the read-only snapshot the HUD renders each frame.
type HUDStats struct {
	CoreHP, CoreMax float64
	Scrap           float64
	Cores           float64
	Essence         float64
	Prisms          float64
	Wave            int
	Kills           int
	PrestigeYield   float64
}

// HUD draws the fixed overlay: core HP bar, the currency row and the kill
// counter. The wave indicator and pause button are separate widgets.
type HUD struct {
	face font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{face: face}
}

func (h *HUD) Draw(screen *ebiten.Image, stats HUDStats) {
	h.drawHealthBar(screen, stats.CoreHP, stats.CoreMax)
	h.drawCurrencies(screen, stats)

	kills := fmt.Sprintf("Kills %d", stats.Kills)
	text.Draw(screen, kills, h.face, 16, config.ScreenHeight-16, config.TextDimColor)

	if stats.PrestigeYield > 0 {
		label := fmt.Sprintf("Prestige ready: +%.0f cores [P]", stats.PrestigeYield)
		bounds := text.BoundString(h.face, label)
		text.Draw(screen, label, h.face,
			config.ScreenWidth-bounds.Dx()-16, config.ScreenHeight-16, config.CritTextColor)
	}
}

func (h *HUD) drawHealthBar(screen *ebiten.Image, hp, max float64) {
	const barW, barH = 320.0, 14.0
	x := float32(config.ScreenWidth-barW) / 2
	y := float32(16)

	frac := 0.0
	if max > 0 {
		frac = hp / max
		if frac < 0 {
			frac = 0
		}
	}
	vector.DrawFilledRect(screen, x, y, barW, barH, config.HealthBarBack, true)
	vector.DrawFilledRect(screen, x, y, float32(barW*frac), barH, config.HealthBarFront, true)

	label := fmt.Sprintf("%.0f / %.0f", hp, max)
	bounds := text.BoundString(h.face, label)
	text.Draw(screen, label, h.face,
		config.ScreenWidth/2-bounds.Dx()/2, int(y)+int(barH)+16, config.TextLightColor)
}

func (h *HUD) drawCurrencies(screen *ebiten.Image, stats HUDStats) {
	rows := []struct {
		label string
		tint  color.RGBA
	}{
		{fmt.Sprintf("Scrap %.0f", stats.Scrap), config.ScrapColor},
		{fmt.Sprintf("Cores %.0f", stats.Cores), config.CoreColor},
		{fmt.Sprintf("Essence %.0f", stats.Essence), config.EssenceColor},
		{fmt.Sprintf("Prisms %.0f", stats.Prisms), config.PrismColor},
	}
	y := 28
	for _, r := range rows {
		vector.DrawFilledCircle(screen, 20, float32(y)-4, 5, r.tint, true)
		text.Draw(screen, r.label, h.face, 32, y, config.TextLightColor)
		y += 22
	}
}
