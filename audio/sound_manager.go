// Package audio plays short cues for game events through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"classic-snake/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferTime = time.Second / 10
	volume     = 0.25
	pollPeriod = 10 * time.Millisecond
)

// SoundManager turns game events into sounds. Until Initialize succeeds
// every Play call is silently dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferTime)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and releases the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Wait blocks until every queued cue has been played or timeout passes.
// It reports whether the mixer drained. Call it before Cleanup so the last
// cue is not cut off.
func (sm *SoundManager) Wait(timeout time.Duration) bool {
	sm.mu.Lock()
	initialized := sm.initialized
	sm.mu.Unlock()
	if !initialized {
		return true
	}
	if !waitUntil(sm.idle, timeout, pollPeriod) {
		return false
	}
	// The speaker still holds up to one buffer of samples.
	time.Sleep(bufferTime)
	return true
}

// idle reports whether the mixer has nothing left to stream. Finished
// streamers are dropped by the mixer itself.
func (sm *SoundManager) idle() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len() == 0
}

// waitUntil polls done every poll until it holds or timeout passes.
func waitUntil(done func() bool, timeout, poll time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if done() {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(poll)
	}
}

// OnEvent plays the cue for ev. Game over takes precedence over eating.
func (sm *SoundManager) OnEvent(ev game.Event) {
	switch {
	case ev.Has(game.EventGameOver):
		sm.play(GameOverCue())
	case ev.Has(game.EventAte):
		sm.play(EatCue())
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// EatCue is a short upward chirp.
func EatCue() beep.Streamer {
	return NewSweepGenerator(sampleRate, 520, 880, sampleRate.N(80*time.Millisecond), volume)
}

// GameOverCue is a slow falling tone.
func GameOverCue() beep.Streamer {
	return NewSweepGenerator(sampleRate, 440, 110, sampleRate.N(600*time.Millisecond), volume)
}
