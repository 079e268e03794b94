package audio

import (
	"testing"
	"time"

	"classic-snake/game"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestSweepGenerator_Length(t *testing.T) {
	rate := beep.SampleRate(44100)
	length := rate.N(50 * time.Millisecond)
	gen := NewSweepGenerator(rate, 300, 600, length, 0.5)

	total, peak := drain(gen)

	assert.Equal(t, length, total)
	assert.LessOrEqual(t, peak, 0.5)
	assert.Greater(t, peak, 0.1)
	assert.NoError(t, gen.Err())
}

func TestSweepGenerator_ExhaustedReturnsNotOK(t *testing.T) {
	gen := NewSweepGenerator(beep.SampleRate(8000), 200, 200, 10, 1)
	drain(gen)

	n, ok := gen.Stream(make([][2]float64, 4))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestSweepGenerator_StereoChannelsMatch(t *testing.T) {
	gen := NewSweepGenerator(beep.SampleRate(44100), 440, 220, 1000, 0.3)
	buf := make([][2]float64, 1000)
	n, ok := gen.Stream(buf)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		assert.Equal(t, buf[i][0], buf[i][1])
	}
}

func TestEnvelope(t *testing.T) {
	assert.Equal(t, 0.0, envelope(0, 100, 10))
	assert.Equal(t, 0.5, envelope(5, 100, 10))
	assert.Equal(t, 1.0, envelope(50, 100, 10))
	assert.Equal(t, 0.1, envelope(99, 100, 10))
	assert.Equal(t, 1.0, envelope(0, 100, 0))
}

func TestCues(t *testing.T) {
	eat, _ := drain(EatCue())
	over, _ := drain(GameOverCue())
	assert.Equal(t, sampleRate.N(80*time.Millisecond), eat)
	assert.Equal(t, sampleRate.N(600*time.Millisecond), over)
}

func TestSoundManager_UninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.OnEvent(game.EventAte)
		sm.OnEvent(game.EventAte | game.EventGameOver)
		sm.Cleanup()
	})
}

func TestWaitUntil(t *testing.T) {
	t.Run("done after a few polls", func(t *testing.T) {
		calls := 0
		ok := waitUntil(func() bool {
			calls++
			return calls == 3
		}, time.Second, time.Millisecond)
		assert.True(t, ok)
		assert.Equal(t, 3, calls)
	})

	t.Run("times out", func(t *testing.T) {
		start := time.Now()
		ok := waitUntil(func() bool { return false }, 20*time.Millisecond, time.Millisecond)
		assert.False(t, ok)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("already done ignores timeout", func(t *testing.T) {
		assert.True(t, waitUntil(func() bool { return true }, 0, time.Hour))
	})
}

func TestSoundManager_IdleAfterCueDrains(t *testing.T) {
	sm := NewSoundManager()
	assert.True(t, sm.idle())

	// Feed the mixer by hand, the way the speaker would.
	sm.mixer.Add(EatCue())
	assert.False(t, sm.idle())

	buf := make([][2]float64, 512)
	for i := 0; i < 100 && !sm.idle(); i++ {
		sm.mixer.Stream(buf)
	}
	assert.True(t, sm.idle(), "mixer should drop the finished cue")
}

func TestSoundManager_WaitWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager()
	sm.OnEvent(game.EventGameOver)

	start := time.Now()
	assert.True(t, sm.Wait(time.Second))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
