package main

import (
	"log"
	"os"
	"time"

	"classic-snake/audio"
	"classic-snake/game"
	"classic-snake/game/loop"
	"classic-snake/game/types"
	"classic-snake/ui"
)

func main() {
	logger := log.New(os.Stderr, "snake: ", log.LstdFlags)

	cfg := types.DefaultConfig()
	g, err := game.NewGame(cfg)
	if err != nil {
		logger.Fatalf("new game: %v", err)
	}

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Printf("audio disabled: %v", err)
	}
	defer sounds.Cleanup()

	window := ui.NewWindow(cfg, "Snake")
	window.Open()
	defer window.Close()

	queue := loop.NewDirectionQueue()
	l := loop.New(g, queue, window, logger, sounds)
	if err := l.Start(); err != nil {
		logger.Printf("%v", err)
		return
	}

	// One Step per frame; SetTargetFPS(TickRate) holds the frame rate.
	for !window.ShouldClose() {
		window.PollInput(queue)
		snap, err := l.Step()
		if err != nil {
			logger.Printf("%v", err)
			return
		}
		if snap.GameOver {
			window.Hold(snap, cfg.GameOverHold)
			if !sounds.Wait(time.Second) {
				logger.Printf("audio still playing at exit")
			}
			return
		}
	}
	logger.Printf("game %s closed after %d ticks", g.ID(), g.Ticks())
}
