package game

import (
	"context"
	"time"

	"blockworld/internal/config"
)

// TickLimiter paces the simulation loop to the configured tick interval.
type TickLimiter struct {
	next time.Time
}

func NewTickLimiter() *TickLimiter {
	return &TickLimiter{}
}

// Wait blocks until the next tick is due or ctx is cancelled.
// Uses a hybrid sleep/spin approach for better precision on short intervals.
func (f *TickLimiter) Wait(ctx context.Context) error {
	target := config.GetTickInterval()

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			t := time.NewTimer(remaining - 200*time.Microsecond)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
		// busy-wait for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// If we're significantly late (e.g., hitch), resync to avoid drift
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
	return nil
}
