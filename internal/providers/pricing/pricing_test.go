package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/example/carecompanion/internal/cache"
	"github.com/example/carecompanion/internal/knowledge"
	"github.com/example/carecompanion/internal/latency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

type countingProvider struct {
	calls int
	next  Provider
}

func (c *countingProvider) Lookup(ctx context.Context, name string) (knowledge.DrugPricing, bool, error) {
	c.calls++
	return c.next.Lookup(ctx, name)
}

func TestStatic_Lookup(t *testing.T) {
	s := NewStatic(latency.New(0))

	p, ok, err := s.Lookup(context.Background(), "Atorvastatin")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Lipitor"}, p.BrandNames)

	_, ok, err = s.Lookup(context.Background(), "lisinopril 10 mg")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCached_MissThenStore(t *testing.T) {
	mc := new(mockCache)
	mc.On("Get", mock.Anything, "pricing:v1:metformin").Return(nil, cache.ErrMiss).Once()
	mc.On("Set", mock.Anything, "pricing:v1:metformin", mock.AnythingOfType("[]uint8"), time.Hour).Return(nil).Once()

	next := &countingProvider{next: NewStatic(latency.New(0))}
	c := &Cached{Next: next, Cache: mc, TTL: time.Hour}

	p, ok, err := c.Lookup(context.Background(), " Metformin")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 204.0, p.AnnualSavings)
	assert.Equal(t, 1, next.calls)
	mc.AssertExpectations(t)
}

func TestCached_HitSkipsProvider(t *testing.T) {
	want, _ := knowledge.LookupPricing("lisinopril")
	raw, err := json.Marshal(entry{Found: true, Pricing: want})
	require.NoError(t, err)

	mc := new(mockCache)
	mc.On("Get", mock.Anything, "pricing:v1:lisinopril").Return(raw, nil).Once()

	next := &countingProvider{next: NewStatic(latency.New(0))}
	c := &Cached{Next: next, Cache: mc, TTL: time.Hour}

	p, ok, err := c.Lookup(context.Background(), "lisinopril")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, p)
	assert.Zero(t, next.calls)
	mc.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCached_CacheDownStillServes(t *testing.T) {
	mc := new(mockCache)
	mc.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	mc.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	c := &Cached{Next: NewStatic(latency.New(0)), Cache: mc, TTL: time.Minute}
	_, ok, err := c.Lookup(context.Background(), "aspirin")
	require.NoError(t, err)
	assert.False(t, ok)
}
