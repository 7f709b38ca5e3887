// Package latency stands in for the response time of external services the
// mock providers imitate.
package latency

import (
	"context"
	"time"
)

// Simulator scales nominal delays. A zero Scale disables waiting entirely.
type Simulator struct {
	Scale float64
}

func New(scale float64) Simulator { return Simulator{Scale: scale} }

// Wait blocks for base*Scale or until ctx is done.
func (s Simulator) Wait(ctx context.Context, base time.Duration) error {
	d := time.Duration(float64(base) * s.Scale)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
