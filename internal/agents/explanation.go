package agents

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/example/carecompanion/internal/errors"
	"github.com/example/carecompanion/internal/knowledge"
	"github.com/example/carecompanion/internal/latency"
	"github.com/example/carecompanion/internal/medtext"
	"github.com/example/carecompanion/internal/models"
)

const (
	summaryDelay          = 300 * time.Millisecond
	translationConfidence = 0.92
)

// ExplanationStage finds medical terms in the extracted text and explains
// them in plain language.
type ExplanationStage struct {
	Provider ExplanationProvider
	Latency  latency.Simulator
}

func NewExplanationStage(provider ExplanationProvider, lat latency.Simulator) *ExplanationStage {
	return &ExplanationStage{Provider: provider, Latency: lat}
}

func (s *ExplanationStage) Name() string { return NameExplanation }

func (s *ExplanationStage) Process(ctx context.Context, pc *models.PipelineContext) (models.Delta, error) {
	text := pc.RawText()
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("no text provided for translation")
	}
	docType := pc.DocumentType()

	candidates := CandidateTerms(text)
	terms := make([]models.SimplifiedTerm, 0, len(candidates))
	for _, term := range candidates {
		if info, ok := knowledge.LookupTerm(term); ok {
			terms = append(terms, models.SimplifiedTerm{
				Term:        medtext.TitleCase(term),
				Explanation: info.Explanation,
				Importance:  info.Importance,
				Category:    info.Category,
			})
			continue
		}
		st, err := s.Provider.Explain(ctx, term, docType)
		if err != nil {
			return nil, fmt.Errorf("explain %q: %w", term, err)
		}
		st.Term = medtext.TitleCase(term)
		terms = append(terms, st)
	}

	if err := s.Latency.Wait(ctx, summaryDelay); err != nil {
		return nil, err
	}

	return &models.Explanation{
		SimplifiedTerms:       terms,
		DocumentSummary:       knowledge.Summary(docType),
		MedicalTermsFound:     len(terms),
		TranslationConfidence: translationConfidence,
	}, nil
}

// CandidateTerms lists the lower-cased terms worth explaining: table keys
// found in the text, then medication-like tokens, then lab keywords, without
// repeats.
func CandidateTerms(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, t := range knowledge.Terms {
		if strings.Contains(lower, t.Key) {
			found = append(found, t.Key)
		}
	}
	found = append(found, medtext.MedicationTokens(text)...)
	found = append(found, medtext.LabKeywords(text)...)
	return medtext.Dedupe(found)
}
