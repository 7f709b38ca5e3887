package agents

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/example/carecompanion/internal/models"
	"github.com/example/carecompanion/internal/observability"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Executor runs a stage and reports the outcome without propagating failure.
type Executor interface {
	Execute(ctx context.Context, stage Stage, pc *models.PipelineContext) *models.StageResult
}

// StageExecutor times each stage, converts errors and panics into error
// results, and logs and traces every invocation.
type StageExecutor struct {
	Metrics *observability.Metrics
	Now     func() time.Time
}

func NewStageExecutor(metrics *observability.Metrics) *StageExecutor {
	return &StageExecutor{Metrics: metrics, Now: time.Now}
}

func (e *StageExecutor) Execute(ctx context.Context, stage Stage, pc *models.PipelineContext) (res *models.StageResult) {
	name := stage.Name()
	now := e.Now
	if now == nil {
		now = time.Now
	}
	ctx, span := observability.StartSpan(ctx, "stage."+name)
	defer span.End()
	logger := observability.LoggerFromContext(ctx).With().Str("stage", name).Logger()

	start := now()
	logger.Info().Msg("stage started")

	res = &models.StageResult{AgentName: name}
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("stack", string(debug.Stack())).Msgf("stage panicked: %v", r)
			res.Status = models.StageError
			res.Result = nil
			res.Error = fmt.Sprintf("internal error: %v", r)
		}
		elapsed := now().Sub(start)
		res.ProcessingTime = elapsed.Seconds()
		observability.RecordStageMetric(ctx, e.Metrics, name, res.OK(), elapsed)
		observability.SetSpanAttributes(span,
			attribute.String("pipeline.stage", name),
			attribute.Bool("pipeline.stage.success", res.OK()),
		)
		if res.OK() {
			logger.Info().Dur("elapsed", elapsed).Msg("stage completed")
		} else {
			span.SetStatus(codes.Error, res.Error)
			logger.Error().Dur("elapsed", elapsed).Str("error", res.Error).Msg("stage failed")
		}
	}()

	delta, err := stage.Process(ctx, pc)
	if err != nil {
		observability.RecordError(span, err)
		res.Status = models.StageError
		res.Error = err.Error()
		return res
	}
	res.Status = models.StageSuccess
	res.Result = delta
	return res
}
