package explainer

import (
	"context"
	"errors"
	"testing"

	"github.com/example/carecompanion/internal/latency"
	"github.com/example/carecompanion/internal/models"
	"github.com/example/carecompanion/internal/providers/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		term string
		want models.Category
	}{
		{"lisinopril 10 mg", models.CategoryMedication},
		{"amg", models.CategoryMedication},
		{"b12", models.CategoryMedication},
		{"thyroid panel", models.CategoryLabValue},
		{"platelet count", models.CategoryLabValue},
		{"creatinine", models.CategoryGeneral},
	}
	for _, tt := range tests {
		got := Classify(tt.term)
		assert.Equal(t, tt.want, got.Category, tt.term)
		assert.Equal(t, tt.term, got.Term)
		assert.NotEmpty(t, got.Explanation)
		assert.NotEmpty(t, got.Importance)
	}
}

func TestHeuristic_Explain(t *testing.T) {
	h := NewHeuristic(latency.New(0))
	got, err := h.Explain(context.Background(), "bun", models.DocLabResults)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryGeneral, got.Category)
}

func TestLLM_ParsesFencedJSON(t *testing.T) {
	client := &llm.MockClient{Response: "```json\n{\"explanation\":\"Kidney waste marker.\",\"importance\":\"Shows kidney health.\",\"category\":\"lab_value\"}\n```"}
	e := NewLLM(client, NewHeuristic(latency.New(0)))

	got, err := e.Explain(context.Background(), "creatinine", models.DocLabResults)
	require.NoError(t, err)
	assert.Equal(t, "Kidney waste marker.", got.Explanation)
	assert.Equal(t, models.CategoryLabValue, got.Category)
	require.Len(t, client.Prompts(), 1)
	assert.Contains(t, client.Prompts()[0], "creatinine")
	assert.Equal(t, "llm:mock", e.Name())
}

func TestLLM_UnknownCategoryUsesShapeRules(t *testing.T) {
	client := &llm.MockClient{Response: `Sure! {"explanation":"A dose.","importance":"Take it.","category":"drug"}`}
	got, err := NewLLM(client, NewHeuristic(latency.New(0))).Explain(context.Background(), "aspirin 81 mg", models.DocPrescription)
	require.NoError(t, err)
	assert.Equal(t, "A dose.", got.Explanation)
	assert.Equal(t, models.CategoryMedication, got.Category)
}

func TestLLM_FallsBack(t *testing.T) {
	fallback := NewHeuristic(latency.New(0))
	want := Classify("sodium")

	for name, client := range map[string]*llm.MockClient{
		"error":    {Err: errors.New("quota exceeded")},
		"empty":    {},
		"not json": {Response: "sodium is a salt"},
		"no text":  {Response: `{"explanation":""}`},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := NewLLM(client, fallback).Explain(context.Background(), "sodium", models.DocLabResults)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLLM_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLLM(&llm.MockClient{}, NewHeuristic(latency.New(0))).Explain(ctx, "x", models.DocUnknown)
	assert.ErrorIs(t, err, context.Canceled)
}
