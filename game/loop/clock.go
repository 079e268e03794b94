package loop

import "time"

// Clock delivers ticks at a fixed rate.
type Clock interface {
	Ticks() <-chan time.Time
	Stop()
}

type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock ticks rate times per second.
func NewTickerClock(rate int) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

func (c *TickerClock) Ticks() <-chan time.Time {
	return c.ticker.C
}

func (c *TickerClock) Stop() {
	c.ticker.Stop()
}
