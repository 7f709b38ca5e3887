package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWait_ZeroScaleReturnsImmediately(t *testing.T) {
	start := time.Now()
	assert.NoError(t, New(0).Wait(context.Background(), time.Hour))
	assert.Less(t, time.Since(start), time.Second)
}

func TestWait_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := New(1).Wait(ctx, time.Hour)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWait_Elapses(t *testing.T) {
	start := time.Now()
	assert.NoError(t, New(0.5).Wait(context.Background(), 20*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}
