// Package loop drives a Game at a fixed tick rate: drain input, advance,
// notify listeners, render.
package loop

import (
	"context"
	"fmt"
	"io"
	"log"

	"classic-snake/game"
)

// Renderer draws one snapshot. It must not retain the snapshot's slices
// past the call unless it copies them.
type Renderer interface {
	Draw(snap game.Snapshot) error
}

// EventSink is told about food eaten and game over, e.g. to play a sound.
type EventSink interface {
	OnEvent(ev game.Event)
}

type Loop struct {
	game     *game.Game
	input    InputSource
	renderer Renderer
	sinks    []EventSink
	logger   *log.Logger
}

// New wires a loop. A nil logger discards log output.
func New(g *game.Game, input InputSource, renderer Renderer, logger *log.Logger, sinks ...EventSink) *Loop {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Loop{
		game:     g,
		input:    input,
		renderer: renderer,
		sinks:    sinks,
		logger:   logger,
	}
}

// Step runs exactly one tick and renders its result.
func (l *Loop) Step() (game.Snapshot, error) {
	if dir, ok := l.input.Latest(); ok {
		l.game.SetDirection(dir)
	}

	ev := l.game.Advance()
	if ev != game.EventNone {
		for _, sink := range l.sinks {
			sink.OnEvent(ev)
		}
	}

	snap := l.game.Snapshot()
	if ev.Has(game.EventGameOver) {
		l.logger.Printf("game %s over: cause=%v ticks=%d length=%d", snap.UUID, snap.Cause, snap.Tick, snap.Length())
	}

	if err := l.renderer.Draw(snap); err != nil {
		return snap, fmt.Errorf("render tick %d: %w", snap.Tick, err)
	}
	return snap, nil
}

// Start logs the session parameters and draws the frame before the first
// tick. Run calls it; front ends that drive Step themselves call it once.
func (l *Loop) Start() error {
	cfg := l.game.Config()
	l.logger.Printf("game %s started: seed=%d food=%v grid=%dx%d rate=%d",
		l.game.ID(), l.game.Seed(), cfg.FoodPlacement,
		cfg.GridWidth, cfg.GridHeight, cfg.TickRate)

	if err := l.renderer.Draw(l.game.Snapshot()); err != nil {
		return fmt.Errorf("render initial frame: %w", err)
	}
	return nil
}

// Run steps once per clock tick until the game ends, ctx is cancelled or
// rendering fails. A finished game returns nil after its last frame is drawn.
func (l *Loop) Run(ctx context.Context, clock Clock) error {
	defer clock.Stop()

	if err := l.Start(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			l.logger.Printf("game %s stopped after %d ticks", l.game.ID(), l.game.Ticks())
			return ctx.Err()
		case <-clock.Ticks():
			snap, err := l.Step()
			if err != nil {
				return err
			}
			if snap.GameOver {
				return nil
			}
		}
	}
}

func (l *Loop) Game() *game.Game {
	return l.game
}
