package agents

import (
	"context"
	"fmt"

	"github.com/example/carecompanion/internal/models"
)

// Verifier checks a stage's delta before it is merged.
type Verifier interface {
	Verify(ctx context.Context, stage string, res *models.StageResult) (bool, string)
}

// HandoffVerifier performs structural checks: the delta has the type the stage
// owns, scores are in range and enumerations hold known values.
type HandoffVerifier struct{}

func (v *HandoffVerifier) Verify(ctx context.Context, stage string, res *models.StageResult) (bool, string) {
	if res == nil {
		return false, "no result"
	}
	if res.Error != "" {
		return false, "execution error returned"
	}
	if res.Result == nil {
		return false, "stage returned no output"
	}
	switch d := res.Result.(type) {
	case *models.Extraction:
		if stage != NameExtraction {
			return false, mismatch(stage, d)
		}
		if !inUnit(d.ConfidenceScore) {
			return false, fmt.Sprintf("confidence %.3f out of range", d.ConfidenceScore)
		}
		if !knownDocType(d.DocumentType) {
			return false, fmt.Sprintf("unknown document type %q", d.DocumentType)
		}
	case *models.Explanation:
		if stage != NameExplanation {
			return false, mismatch(stage, d)
		}
		if !inUnit(d.TranslationConfidence) {
			return false, fmt.Sprintf("confidence %.3f out of range", d.TranslationConfidence)
		}
		for _, t := range d.SimplifiedTerms {
			if !knownCategory(t.Category) {
				return false, fmt.Sprintf("term %q has unknown category %q", t.Term, t.Category)
			}
		}
	case *models.Resources:
		if stage != NameResource {
			return false, mismatch(stage, d)
		}
		if d.TotalPotentialSavings < 0 {
			return false, "negative savings"
		}
	case *models.Plan:
		if stage != NamePlanning {
			return false, mismatch(stage, d)
		}
		if d.CarePlan.FollowUpInstructions == nil || d.CarePlan.EmergencyContacts == nil {
			return false, "care plan lists missing"
		}
	default:
		return false, fmt.Sprintf("unexpected output %T", d)
	}
	return true, "ok"
}

func mismatch(stage string, d any) string {
	return fmt.Sprintf("%s stage returned %T", stage, d)
}

func inUnit(f float64) bool { return f >= 0 && f <= 1 }

func knownDocType(dt models.DocumentType) bool {
	switch dt {
	case models.DocPrescription, models.DocDischargeSummary, models.DocLabResults, models.DocUnknown:
		return true
	}
	return false
}

func knownCategory(c models.Category) bool {
	switch c {
	case models.CategoryMedication, models.CategoryCondition, models.CategoryLabValue, models.CategoryGeneral:
		return true
	}
	return false
}
