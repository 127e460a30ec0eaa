// cmd/game/main.go
package main

import (
	"context"
	"time"

	"candy-defense/internal/app"
	"candy-defense/internal/config"
	"candy-defense/internal/defs"
	"candy-defense/internal/server"
	"candy-defense/internal/state"
	"candy-defense/internal/ui"
	"candy-defense/pkg/gridmap"
	"candy-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

const startFromGame = false // true — начинать с игры, false — с меню выбора сложности

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
	logger.Init()
	rt := config.LoadRuntime()

	lib, err := loadLibrary(rt)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load definitions")
	}

	store := server.NewSnapshotStore()
	broadcaster := server.NewBroadcaster()
	var debugServer *server.Server
	if rt.DebugAddr != "" {
		debugServer = server.New(rt.DebugAddr, store, broadcaster)
		go func() {
			if err := debugServer.Run(); err != nil {
				logger.Log.WithError(err).Error("debug server stopped")
			}
		}()
	}

	// Every game, including ones started from the menu, feeds the debug server.
	newGame := func(difficulty string) (*app.Game, error) {
		m, err := gridmap.Load(rt.MapName)
		if err != nil {
			return nil, err
		}
		g, err := app.NewGame(m, lib, difficulty, rt.Seed)
		if err != nil {
			return nil, err
		}
		g.EventDispatcher.SubscribeAll(broadcaster)
		g.SetSink(store)
		return g, nil
	}

	session := &state.Session{
		Lib:               lib,
		Faces:             ui.LoadFaces(),
		NewGame:           newGame,
		DefaultDifficulty: rt.Difficulty,
	}
	sm := state.NewStateMachine()
	if startFromGame {
		g, err := newGame(rt.Difficulty)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to start game")
		}
		sm.SetState(state.NewGameState(sm, session, g))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	logger.Log.WithFields(logrus.Fields{
		"map":        rt.MapName,
		"difficulty": rt.Difficulty,
		"seed":       rt.Seed,
		"debug_addr": rt.DebugAddr,
	}).Info("starting candy defense")

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Candy Defense")
	ebiten.SetTPS(config.TPS)
	runErr := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()})

	if debugServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := debugServer.Shutdown(ctx); err != nil {
			logger.Log.WithError(err).Warn("debug server shutdown")
		}
		cancel()
	}
	if runErr != nil {
		logger.Log.WithError(runErr).Fatal("game loop failed")
	}
}

func loadLibrary(rt config.Runtime) (*defs.Library, error) {
	if rt.DefsDir != "" {
		logger.Log.WithField("dir", rt.DefsDir).Info("loading definitions from disk")
		return defs.LoadDir(rt.DefsDir)
	}
	return defs.LoadDefault()
}
