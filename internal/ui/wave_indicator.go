// internal/ui/wave_indicator.go
package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-core-defense/internal/config"
)

// WaveIndicator shows the current wave as a roman numeral at the top of the
// screen, switching to the alert color on boss waves.
type WaveIndicator struct {
	X, Y int
	face font.Face
}

func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, face: face}
}

// toRoman converts a positive integer to a roman numeral.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int) {
	if wave <= 0 {
		return
	}
	label := toRoman(wave)
	c := config.TextLightColor
	if wave%config.BossWaveInterval == 0 {
		c = config.CoreHurtColor
	}
	bounds := text.BoundString(i.face, label)
	text.Draw(screen, label, i.face, i.X-bounds.Dx()/2, i.Y, c)
}
