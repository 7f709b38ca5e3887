package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/example/carecompanion/internal/agents"
	"github.com/example/carecompanion/internal/models"
	"github.com/example/carecompanion/internal/observability"
	"go.opentelemetry.io/otel/attribute"
)

const (
	weightExtraction  = 0.3
	weightExplanation = 0.3
	weightResource    = 0.2
	weightPlanning    = 0.2

	scoreSucceeded = 0.9
	scoreFailed    = 0.5
)

// Coordinator walks a document through the four pipeline stages in order.
type Coordinator struct {
	Extraction  agents.Stage
	Explanation agents.Stage
	Resource    agents.Stage
	Planning    agents.Stage

	Executor agents.Executor
	Verifier agents.Verifier
	Metrics  *observability.Metrics
	Now      func() time.Time
}

func New(extraction, explanation, resource, planning agents.Stage, executor agents.Executor, verifier agents.Verifier, metrics *observability.Metrics) *Coordinator {
	return &Coordinator{
		Extraction:  extraction,
		Explanation: explanation,
		Resource:    resource,
		Planning:    planning,
		Executor:    executor,
		Verifier:    verifier,
		Metrics:     metrics,
		Now:         time.Now,
	}
}

func (c *Coordinator) stages() []agents.Stage {
	return []agents.Stage{c.Extraction, c.Explanation, c.Resource, c.Planning}
}

// ProcessDocument runs every stage against one upload. The first stage
// failure ends the run; no later stage is invoked and no partial plan is
// returned.
func (c *Coordinator) ProcessDocument(ctx context.Context, content []byte, filename string) (models.Status, *models.ProcessResponse) {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	ctx, span := observability.StartSpan(ctx, "pipeline.process_document")
	defer span.End()
	logger := observability.LoggerFromContext(ctx).With().Str("filename", filename).Logger()

	start := now()
	logger.Info().Int("size", len(content)).Msg("processing document")

	pc := models.NewPipelineContext(content, filename)
	results := make([]*models.StageResult, 0, 4)

	for _, stage := range c.stages() {
		res := c.Executor.Execute(ctx, stage, pc)
		results = append(results, res)
		if res.OK() && c.Verifier != nil {
			if ok, reason := c.Verifier.Verify(ctx, stage.Name(), res); !ok {
				logger.Warn().Str("stage", stage.Name()).Str("reason", reason).Msg("stage output rejected")
				res.Status = models.StageError
				res.Result = nil
				res.Error = "invalid stage output: " + reason
			}
		}
		if !res.OK() {
			elapsed := now().Sub(start)
			msg := fmt.Sprintf("%s stage failed: %s", stage.Name(), res.Error)
			logger.Error().Dur("elapsed", elapsed).Msg(msg)
			observability.RecordDocumentMetric(ctx, c.Metrics, string(models.StatusFailed), string(models.DocUnknown))
			observability.SetSpanAttributes(span, attribute.String("pipeline.failed_stage", stage.Name()))
			return models.StatusFailed, &models.ProcessResponse{
				Status:                models.StatusFailed,
				DocumentType:          models.DocUnknown,
				RawText:               "",
				CarePlan:              models.EmptyCarePlan(),
				ProcessingTimeSeconds: elapsed.Seconds(),
				ConfidenceScore:       0,
				ErrorMessage:          &msg,
				AgentResults:          results,
			}
		}
		pc.Merge(res.Result)
	}

	elapsed := now().Sub(start)
	confidence := Confidence(pc, results)
	docType := pc.DocumentType()
	observability.RecordDocumentMetric(ctx, c.Metrics, string(models.StatusCompleted), string(docType))
	observability.SetSpanAttributes(span,
		attribute.String("pipeline.document_type", string(docType)),
		attribute.Float64("pipeline.confidence", confidence),
	)
	logger.Info().
		Str("document_type", string(docType)).
		Float64("confidence", confidence).
		Dur("elapsed", elapsed).
		Msg("document processed")

	return models.StatusCompleted, &models.ProcessResponse{
		Status:                models.StatusCompleted,
		DocumentType:          docType,
		RawText:               pc.RawText(),
		CarePlan:              pc.Plan.CarePlan,
		ProcessingTimeSeconds: elapsed.Seconds(),
		ConfidenceScore:       confidence,
		AgentResults:          results,
	}
}

// Confidence is the weighted blend of the stage confidence signals, clamped
// to [0, 1]. Resource and Planning have no score of their own and count as
// 0.9 when they succeeded, 0.5 otherwise.
func Confidence(pc *models.PipelineContext, results []*models.StageResult) float64 {
	var extraction, explanation float64
	if pc.Extraction != nil {
		extraction = pc.Extraction.ConfidenceScore
	}
	if pc.Explanation != nil {
		explanation = pc.Explanation.TranslationConfidence
	}
	score := weightExtraction*extraction +
		weightExplanation*explanation +
		weightResource*stageScore(results, agents.NameResource) +
		weightPlanning*stageScore(results, agents.NamePlanning)
	return min(max(score, 0), 1)
}

func stageScore(results []*models.StageResult, name string) float64 {
	for _, r := range results {
		if r.AgentName == name && r.OK() {
			return scoreSucceeded
		}
	}
	return scoreFailed
}
