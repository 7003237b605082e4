package ingest

import (
	"context"
	"math/rand"
	"time"
)

// Pacer spaces out consecutive external fetches with random jitter so batch
// runs do not hammer the provider at a fixed rate.
type Pacer struct {
	min time.Duration
	max time.Duration
}

func NewPacer(minMillis, maxMillis int) *Pacer {
	min := time.Duration(minMillis) * time.Millisecond
	max := time.Duration(maxMillis) * time.Millisecond
	if max < min {
		max = min
	}
	return &Pacer{min: min, max: max}
}

// Wait blocks for a random duration in [min, max], or until the context is
// cancelled.
func (p *Pacer) Wait(ctx context.Context) error {
	delay := p.min
	if span := p.max - p.min; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span) + 1))
	}
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
