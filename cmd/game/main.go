// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Bassie1994/Towerz-sub000/internal/config"
	"github.com/Bassie1994/Towerz-sub000/internal/defs"
	"github.com/Bassie1994/Towerz-sub000/internal/state"
	"github.com/Bassie1994/Towerz-sub000/internal/ui"
)

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

func main() {
	towersPath := flag.String("towers", "", "JSON file overriding tower definitions")
	enemiesPath := flag.String("enemies", "", "JSON file overriding enemy definitions")
	skipMenu := flag.Bool("skip-menu", false, "start straight into the game")
	flag.Parse()

	if *towersPath != "" {
		if err := defs.LoadTowerDefinitions(*towersPath); err != nil {
			log.Fatalf("load tower definitions: %v", err)
		}
	}
	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatalf("load enemy definitions: %v", err)
		}
	}

	face, err := ui.LoadFace(16)
	if err != nil {
		log.Fatalf("load font: %v", err)
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, face))
	} else {
		sm.SetState(state.NewMenuState(sm, face))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Towerz")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
