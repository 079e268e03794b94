package loop

import (
	"context"
	"time"
)

// Hold keeps the final frame up after a game ends. It returns once d has
// elapsed, ctx is done or dismiss fires, and reports whether the player
// dismissed it. A nil dismiss channel never fires.
func Hold(ctx context.Context, d time.Duration, dismiss <-chan struct{}) bool {
	if d <= 0 {
		return false
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-dismiss:
		return true
	case <-ctx.Done():
		return false
	case <-timer.C:
		return false
	}
}
