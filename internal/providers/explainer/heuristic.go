// Package explainer produces plain-language explanations for medical terms
// that are not in the static term table.
package explainer

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/example/carecompanion/internal/latency"
	"github.com/example/carecompanion/internal/medtext"
	"github.com/example/carecompanion/internal/models"
)

const heuristicDelay = 500 * time.Millisecond

// Heuristic guesses a category from the shape of the term.
type Heuristic struct {
	lat latency.Simulator
}

func NewHeuristic(lat latency.Simulator) *Heuristic {
	return &Heuristic{lat: lat}
}

func (h *Heuristic) Name() string { return "heuristic" }

func (h *Heuristic) Explain(ctx context.Context, term string, _ models.DocumentType) (models.SimplifiedTerm, error) {
	if err := h.lat.Wait(ctx, heuristicDelay); err != nil {
		return models.SimplifiedTerm{}, err
	}
	return Classify(term), nil
}

// Classify applies the shape rules without any delay.
func Classify(term string) models.SimplifiedTerm {
	lower := strings.ToLower(term)
	switch {
	case strings.Contains(lower, "mg") || strings.IndexFunc(lower, unicode.IsDigit) >= 0:
		return models.SimplifiedTerm{
			Term:        term,
			Explanation: "This appears to be a medication dosage. The specific medication and dosage should be discussed with your healthcare provider.",
			Importance:  "Important to take exactly as prescribed by your doctor.",
			Category:    models.CategoryMedication,
		}
	case medtext.ContainsAny(lower, "test", "level", "count", "panel"):
		return models.SimplifiedTerm{
			Term:        term,
			Explanation: "This appears to be a medical test or measurement. Your doctor will explain what the results mean for your health.",
			Importance:  "Test results help your doctor monitor your health and adjust treatment if needed.",
			Category:    models.CategoryLabValue,
		}
	}
	return models.SimplifiedTerm{
		Term:        term,
		Explanation: "This is a medical term that should be explained by your healthcare provider. Don't hesitate to ask questions about any medical terms you don't understand.",
		Importance:  "Understanding medical terms helps you better manage your health and follow your treatment plan.",
		Category:    models.CategoryGeneral,
	}
}
