package agents

import (
	"context"
	"testing"

	"github.com/example/carecompanion/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestHandoffVerifier(t *testing.T) {
	v := &HandoffVerifier{}
	ok := func(d models.Delta) *models.StageResult {
		return &models.StageResult{Status: models.StageSuccess, Result: d}
	}
	plan := &models.Plan{CarePlan: models.EmptyCarePlan()}

	cases := []struct {
		name  string
		stage string
		res   *models.StageResult
		want  bool
	}{
		{"nil result", NameExtraction, nil, false},
		{"error result", NameExtraction, &models.StageResult{Status: models.StageError, Error: "x"}, false},
		{"no output", NameExtraction, ok(nil), false},
		{"extraction ok", NameExtraction, ok(&models.Extraction{DocumentType: models.DocLabResults, ConfidenceScore: 0.95}), true},
		{"empty text is not a verifier concern", NameExtraction, ok(&models.Extraction{DocumentType: models.DocUnknown}), true},
		{"confidence out of range", NameExtraction, ok(&models.Extraction{DocumentType: models.DocUnknown, ConfidenceScore: 1.2}), false},
		{"bad document type", NameExtraction, ok(&models.Extraction{DocumentType: "memo"}), false},
		{"wrong stage", NameResource, ok(&models.Extraction{DocumentType: models.DocUnknown}), false},
		{"bad category", NameExplanation, ok(&models.Explanation{SimplifiedTerms: []models.SimplifiedTerm{{Term: "X", Category: "food"}}}), false},
		{"explanation ok", NameExplanation, ok(&models.Explanation{TranslationConfidence: 0.92}), true},
		{"negative savings", NameResource, ok(&models.Resources{TotalPotentialSavings: -1}), false},
		{"resources ok", NameResource, ok(&models.Resources{}), true},
		{"plan missing lists", NamePlanning, ok(&models.Plan{}), false},
		{"plan ok", NamePlanning, ok(plan), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, reason := v.Verify(context.Background(), tc.stage, tc.res)
			assert.Equal(t, tc.want, got, reason)
		})
	}
}
