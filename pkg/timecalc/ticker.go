package timecalc

import (
	"context"
	"time"

	"github.com/iwvelando/calckit/pkg/datetime"
)

// Tick calls fn with the clock's time immediately and then every interval
// until ctx is done or fn returns false. Live countdown and world clock
// displays refresh through it.
func Tick(ctx context.Context, interval time.Duration, clock datetime.Clock, fn func(now time.Time) bool) error {
	if clock == nil {
		clock = datetime.SystemClock{}
	}
	if !fn(clock.Now()) {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !fn(clock.Now()) {
				return nil
			}
		}
	}
}
