package agents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/carecompanion/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcStage struct {
	name string
	fn   func(ctx context.Context, pc *models.PipelineContext) (models.Delta, error)
}

func (s funcStage) Name() string { return s.name }

func (s funcStage) Process(ctx context.Context, pc *models.PipelineContext) (models.Delta, error) {
	return s.fn(ctx, pc)
}

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestExecute_Success(t *testing.T) {
	ex := &StageExecutor{Now: stepClock(1500 * time.Millisecond)}
	want := &models.Extraction{RawText: "hello", DocumentType: models.DocUnknown}
	res := ex.Execute(context.Background(), funcStage{name: NameExtraction, fn: func(context.Context, *models.PipelineContext) (models.Delta, error) {
		return want, nil
	}}, models.NewPipelineContext([]byte("x"), "a.png"))

	require.True(t, res.OK())
	assert.Equal(t, NameExtraction, res.AgentName)
	assert.Same(t, want, res.Result)
	assert.Empty(t, res.Error)
	assert.InDelta(t, 1.5, res.ProcessingTime, 1e-9)
}

func TestExecute_ErrorIsCaptured(t *testing.T) {
	ex := NewStageExecutor(nil)
	res := ex.Execute(context.Background(), funcStage{name: NameResource, fn: func(context.Context, *models.PipelineContext) (models.Delta, error) {
		return &models.Resources{}, errors.New("lookup failed")
	}}, models.NewPipelineContext(nil, ""))

	assert.False(t, res.OK())
	assert.Equal(t, models.StageError, res.Status)
	assert.Nil(t, res.Result)
	assert.Equal(t, "lookup failed", res.Error)
	assert.GreaterOrEqual(t, res.ProcessingTime, 0.0)
}

func TestExecute_PanicIsCaptured(t *testing.T) {
	ex := NewStageExecutor(nil)
	var res *models.StageResult
	assert.NotPanics(t, func() {
		res = ex.Execute(context.Background(), funcStage{name: NamePlanning, fn: func(context.Context, *models.PipelineContext) (models.Delta, error) {
			panic("boom")
		}}, models.NewPipelineContext(nil, ""))
	})
	require.NotNil(t, res)
	assert.Equal(t, models.StageError, res.Status)
	assert.Nil(t, res.Result)
	assert.Contains(t, res.Error, "boom")
}
