package orchestrator

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/example/carecompanion/internal/agents"
	"github.com/example/carecompanion/internal/latency"
	"github.com/example/carecompanion/internal/models"
	"github.com/example/carecompanion/internal/providers/explainer"
	"github.com/example/carecompanion/internal/providers/ocr"
	"github.com/example/carecompanion/internal/providers/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noDelay = latency.New(0)

var fixedNow = func() time.Time { return time.Date(2024, 9, 27, 9, 30, 0, 0, time.UTC) }

// blankEngine recognizes nothing, which forces the explanation stage to fail.
type blankEngine struct{}

func (blankEngine) Name() string { return "blank" }

func (blankEngine) Recognize(context.Context, ocr.Input) (ocr.Result, error) {
	return ocr.Result{Text: "   \n\t\n", Confidence: 0.1, Method: "blank"}, nil
}

// countingStage records how often the wrapped stage runs.
type countingStage struct {
	agents.Stage
	calls int
}

func (s *countingStage) Process(ctx context.Context, pc *models.PipelineContext) (models.Delta, error) {
	s.calls++
	return s.Stage.Process(ctx, pc)
}

type fixture struct {
	coord       *Coordinator
	extraction  *countingStage
	explanation *countingStage
	resource    *countingStage
	planning    *countingStage
}

func newFixture(engine agents.ExtractionProvider) *fixture {
	f := &fixture{
		extraction:  &countingStage{Stage: agents.NewExtractionStage(engine, false, nil)},
		explanation: &countingStage{Stage: agents.NewExplanationStage(explainer.NewHeuristic(noDelay), noDelay)},
		resource:    &countingStage{Stage: agents.NewResourceStage(pricing.NewStatic(noDelay), noDelay)},
		planning:    &countingStage{Stage: &agents.PlanningStage{Now: fixedNow}},
	}
	f.coord = New(f.extraction, f.explanation, f.resource, f.planning,
		agents.NewStageExecutor(nil), &agents.HandoffVerifier{}, nil)
	return f
}

func TestProcessDocument_Prescription(t *testing.T) {
	f := newFixture(ocr.NewMockEngine(noDelay))
	status, resp := f.coord.ProcessDocument(context.Background(), []byte("image bytes"), "prescription.jpg")

	require.Equal(t, models.StatusCompleted, status)
	assert.Equal(t, models.StatusCompleted, resp.Status)
	assert.Equal(t, models.DocPrescription, resp.DocumentType)
	assert.Contains(t, resp.RawText, "LISINOPRIL")
	assert.Nil(t, resp.ErrorMessage)
	assert.InDelta(t, 0.921, resp.ConfidenceScore, 1e-9)
	assert.NotEmpty(t, resp.CarePlan.Medications)
	assert.GreaterOrEqual(t, resp.ProcessingTimeSeconds, 0.0)

	require.Len(t, resp.AgentResults, 4)
	for i, name := range []string{agents.NameExtraction, agents.NameExplanation, agents.NameResource, agents.NamePlanning} {
		assert.Equal(t, name, resp.AgentResults[i].AgentName)
		assert.True(t, resp.AgentResults[i].OK())
	}
}

func TestProcessDocument_ShortCircuitsOnExplanationFailure(t *testing.T) {
	f := newFixture(blankEngine{})
	status, resp := f.coord.ProcessDocument(context.Background(), []byte("image bytes"), "scan.png")

	assert.Equal(t, models.StatusFailed, status)
	assert.Equal(t, models.StatusFailed, resp.Status)
	require.NotNil(t, resp.ErrorMessage)
	assert.Equal(t, "Explanation stage failed: no text provided for translation", *resp.ErrorMessage)
	assert.Equal(t, models.DocUnknown, resp.DocumentType)
	assert.Empty(t, resp.RawText)
	assert.Zero(t, resp.ConfidenceScore)
	assert.Equal(t, models.EmptyCarePlan(), resp.CarePlan)

	assert.Equal(t, 1, f.extraction.calls)
	assert.Equal(t, 1, f.explanation.calls)
	assert.Zero(t, f.resource.calls)
	assert.Zero(t, f.planning.calls)
	require.Len(t, resp.AgentResults, 2)
	assert.Equal(t, models.StageError, resp.AgentResults[1].Status)
}

func TestProcessDocument_EmptyContentFailsAtExtraction(t *testing.T) {
	f := newFixture(ocr.NewMockEngine(noDelay))
	status, resp := f.coord.ProcessDocument(context.Background(), nil, "prescription.png")

	assert.Equal(t, models.StatusFailed, status)
	require.NotNil(t, resp.ErrorMessage)
	assert.True(t, strings.HasPrefix(*resp.ErrorMessage, "Extraction stage failed:"))
	assert.Zero(t, f.explanation.calls)
}

func TestProcessDocument_FailedCarePlanEncodesEmptyLists(t *testing.T) {
	f := newFixture(blankEngine{})
	_, resp := f.coord.ProcessDocument(context.Background(), []byte("x"), "x.png")

	b, err := json.Marshal(resp.CarePlan)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "null")
}

func TestProcessDocument_Idempotent(t *testing.T) {
	f := newFixture(ocr.NewMockEngine(noDelay))
	for _, name := range []string{"prescription.png", "discharge_summary.png", "lab_report.png"} {
		_, first := f.coord.ProcessDocument(context.Background(), []byte("same bytes"), name)
		_, second := f.coord.ProcessDocument(context.Background(), []byte("same bytes"), name)

		assert.Equal(t, first.DocumentType, second.DocumentType, name)
		assert.Equal(t, first.RawText, second.RawText, name)
		assert.Equal(t, first.CarePlan, second.CarePlan, name)
		assert.Equal(t, first.ConfidenceScore, second.ConfidenceScore, name)
	}
}

func TestProcessDocument_CanceledContext(t *testing.T) {
	slow := latency.New(1)
	coord := New(
		agents.NewExtractionStage(ocr.NewMockEngine(slow), false, nil),
		agents.NewExplanationStage(explainer.NewHeuristic(slow), slow),
		agents.NewResourceStage(pricing.NewStatic(slow), slow),
		agents.NewPlanningStage(),
		agents.NewStageExecutor(nil), &agents.HandoffVerifier{}, nil,
	)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	status, resp := coord.ProcessDocument(ctx, []byte("x"), "prescription.png")
	assert.Equal(t, models.StatusFailed, status)
	require.NotNil(t, resp.ErrorMessage)
	assert.Contains(t, *resp.ErrorMessage, "Extraction stage failed")
	assert.Less(t, resp.ProcessingTimeSeconds, 1.0)
}

func TestConfidence(t *testing.T) {
	pc := models.NewPipelineContext(nil, "")
	pc.Merge(&models.Extraction{ConfidenceScore: 0.95})
	pc.Merge(&models.Explanation{TranslationConfidence: 0.92})

	ok := func(name string) *models.StageResult {
		return &models.StageResult{AgentName: name, Status: models.StageSuccess}
	}
	failed := func(name string) *models.StageResult {
		return &models.StageResult{AgentName: name, Status: models.StageError}
	}

	all := []*models.StageResult{ok(agents.NameResource), ok(agents.NamePlanning)}
	assert.InDelta(t, 0.921, Confidence(pc, all), 1e-9)

	partial := []*models.StageResult{failed(agents.NameResource), ok(agents.NamePlanning)}
	assert.InDelta(t, 0.841, Confidence(pc, partial), 1e-9)

	pc.Merge(&models.Extraction{ConfidenceScore: 5})
	assert.Equal(t, 1.0, Confidence(pc, all))
}
