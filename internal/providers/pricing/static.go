// Package pricing looks up generic and brand costs for medications.
package pricing

import (
	"context"
	"time"

	"github.com/example/carecompanion/internal/knowledge"
	"github.com/example/carecompanion/internal/latency"
)

const lookupDelay = 200 * time.Millisecond

// Static serves the built-in cost table. Only hits pay the simulated
// lookup delay.
type Static struct {
	lat latency.Simulator
}

func NewStatic(lat latency.Simulator) *Static {
	return &Static{lat: lat}
}

func (s *Static) Lookup(ctx context.Context, medication string) (knowledge.DrugPricing, bool, error) {
	p, ok := knowledge.LookupPricing(medication)
	if !ok {
		return knowledge.DrugPricing{}, false, nil
	}
	if err := s.lat.Wait(ctx, lookupDelay); err != nil {
		return knowledge.DrugPricing{}, false, err
	}
	return p, true, nil
}
