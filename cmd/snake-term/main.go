package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"time"

	"classic-snake/audio"
	"classic-snake/game"
	"classic-snake/game/loop"
	"classic-snake/game/types"
	"classic-snake/ui/term"
)

func main() {
	// The screen owns stdout while the game runs; keep log lines until it is released.
	var logBuf bytes.Buffer
	logger := log.New(&logBuf, "snake: ", log.LstdFlags)
	defer func() { os.Stderr.Write(logBuf.Bytes()) }()

	if err := run(logger); err != nil {
		logger.Printf("%v", err)
		os.Stderr.Write(logBuf.Bytes())
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	cfg := types.DefaultConfig()
	g, err := game.NewGame(cfg)
	if err != nil {
		return err
	}

	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		logger.Printf("audio disabled: %v", err)
	}
	defer sounds.Cleanup()

	terminal, err := term.New()
	if err != nil {
		return err
	}
	defer terminal.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := loop.NewDirectionQueue()
	go terminal.Listen(queue, cancel)

	l := loop.New(g, queue, terminal, logger, sounds)
	err = l.Run(ctx, loop.NewTickerClock(cfg.TickRate))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	// Keep the game over frame up and let its cue finish before the
	// deferred teardown releases the screen and the speaker.
	loop.Hold(ctx, cfg.GameOverHold, terminal.KeyPressed())
	if !sounds.Wait(time.Second) {
		logger.Printf("audio still playing at exit")
	}
	return nil
}
