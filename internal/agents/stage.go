package agents

import (
	"context"

	"github.com/example/carecompanion/internal/knowledge"
	"github.com/example/carecompanion/internal/models"
	"github.com/example/carecompanion/internal/providers/ocr"
)

// Stage names, as reported in StageResult.AgentName and failure messages.
const (
	NameExtraction  = "Extraction"
	NameExplanation = "Explanation"
	NameResource    = "Resource"
	NamePlanning    = "Planning"
)

// Stage is one step of the document pipeline. Process reads the context and
// returns the delta it contributes; it must not mutate the context itself.
type Stage interface {
	Name() string
	Process(ctx context.Context, pc *models.PipelineContext) (models.Delta, error)
}

// ExtractionProvider turns image bytes into text.
type ExtractionProvider = ocr.Engine

// ExplanationProvider explains a term that is not in the static table.
type ExplanationProvider interface {
	Explain(ctx context.Context, term string, dt models.DocumentType) (models.SimplifiedTerm, error)
}

// PricingProvider finds cost data for a medication name.
type PricingProvider interface {
	Lookup(ctx context.Context, medication string) (knowledge.DrugPricing, bool, error)
}
