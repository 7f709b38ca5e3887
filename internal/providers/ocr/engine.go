// Package ocr turns document images into text.
package ocr

import (
	"context"
	"fmt"

	"github.com/example/carecompanion/internal/latency"
)

// Input is a single image to transcribe.
type Input struct {
	Filename  string
	Image     []byte
	Languages []string
}

// Result is the raw transcription before normalization.
type Result struct {
	Text       string
	Confidence float64
	Method     string
}

// Engine is implemented by every OCR backend.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, in Input) (Result, error)
}

// New selects an engine by provider name.
func New(provider string, lat latency.Simulator) (Engine, error) {
	switch provider {
	case "", "mock":
		return NewMockEngine(lat), nil
	case "tesseract":
		if e := newTesseractEngine(); e != nil {
			return e, nil
		}
		return nil, fmt.Errorf("ocr: tesseract support not compiled in, rebuild with -tags tesseract")
	}
	return nil, fmt.Errorf("ocr: unknown provider %q", provider)
}
