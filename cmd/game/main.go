// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/defs"
	"go-core-defense/internal/save"
	"go-core-defense/internal/state"
)

const startFromGame = false // true skips the menu, handy while tuning

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func loadFace() font.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatal(err)
	}
	return face
}

func main() {
	tuning := flag.String("tuning", "", "optional JSON file with enemy tuning overrides")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 uses the clock")
	flag.Parse()

	if *tuning != "" {
		if err := defs.LoadEnemyOverrides(*tuning); err != nil {
			log.Printf("tuning: %v", err)
		}
	}

	// A failed data dir leaves the save manager in memory-only mode; the
	// game still runs, it just forgets.
	store, err := gdata.Open(gdata.Config{AppName: "core-defense"})
	if err != nil {
		log.Printf("save storage unavailable: %v", err)
		store = nil
	}
	saveManager := save.NewManager(store)

	face := loadFace()
	game := app.NewGame(saveManager, face, *seed)

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, game, face))
	} else {
		sm.SetState(state.NewMenuState(sm, game, face))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Core Defense")
	if err := ebiten.RunGame(&AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}); err != nil {
		log.Fatal(err)
	}
}
