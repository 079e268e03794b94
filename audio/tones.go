package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// SweepGenerator plays a sine whose pitch glides linearly from one frequency
// to another over a fixed number of samples, with a short fade at both ends.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
	volume   float64
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64, length int, volume float64) *SweepGenerator {
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: length,
		volume: volume,
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		progress := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := math.Sin(g.phase) * g.volume * envelope(g.pos, g.length, int(g.sr)/200)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// envelope ramps linearly over the first and last fade samples.
func envelope(pos, length, fade int) float64 {
	if fade <= 0 {
		return 1
	}
	if pos < fade {
		return float64(pos) / float64(fade)
	}
	if rest := length - pos; rest < fade {
		return float64(rest) / float64(fade)
	}
	return 1
}
