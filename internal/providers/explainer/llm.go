package explainer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/example/carecompanion/internal/models"
	"github.com/example/carecompanion/internal/observability"
	"github.com/example/carecompanion/internal/providers/llm"
)

// Fallback is consulted whenever the model cannot produce a usable answer.
type Fallback interface {
	Explain(ctx context.Context, term string, dt models.DocumentType) (models.SimplifiedTerm, error)
}

// LLM asks a language model for an explanation and falls back to the
// heuristic rules on any error or unparseable reply.
type LLM struct {
	Client   llm.Client
	Fallback Fallback
}

func NewLLM(client llm.Client, fallback Fallback) *LLM {
	return &LLM{Client: client, Fallback: fallback}
}

func (e *LLM) Name() string { return "llm:" + e.Client.Name() }

type llmVerdict struct {
	Explanation string `json:"explanation"`
	Importance  string `json:"importance"`
	Category    string `json:"category"`
}

func (e *LLM) Explain(ctx context.Context, term string, dt models.DocumentType) (models.SimplifiedTerm, error) {
	logger := observability.LoggerFromContext(ctx)
	raw, err := e.Client.GenerateText(ctx, buildPrompt(term, dt))
	if err != nil || strings.TrimSpace(raw) == "" {
		if ctx.Err() != nil {
			return models.SimplifiedTerm{}, ctx.Err()
		}
		logger.Debug().Err(err).Str("term", term).Msg("llm explainer: falling back")
		return e.Fallback.Explain(ctx, term, dt)
	}
	var v llmVerdict
	if err := json.Unmarshal([]byte(normalizeJSONText(raw)), &v); err != nil || strings.TrimSpace(v.Explanation) == "" {
		logger.Debug().Err(err).Str("term", term).Msgf("llm explainer: unusable reply %.200q", raw)
		return e.Fallback.Explain(ctx, term, dt)
	}
	return models.SimplifiedTerm{
		Term:        term,
		Explanation: strings.TrimSpace(v.Explanation),
		Importance:  strings.TrimSpace(v.Importance),
		Category:    parseCategory(v.Category, term),
	}, nil
}

func parseCategory(s, term string) models.Category {
	switch c := models.Category(strings.ToLower(strings.TrimSpace(s))); c {
	case models.CategoryMedication, models.CategoryCondition, models.CategoryLabValue, models.CategoryGeneral:
		return c
	}
	return Classify(term).Category
}

func buildPrompt(term string, dt models.DocumentType) string {
	return fmt.Sprintf(`A patient found the term below in a medical document (%s).
Explain it in one or two short sentences a patient without medical training can follow,
then say in one sentence why it matters to them.
Output ONLY a JSON object, no prose, no code fences:
{"explanation": "...", "importance": "...", "category": "medication"|"condition"|"lab_value"|"general"}

Term: %s`, dt, term)
}

// normalizeJSONText strips code fences and isolates the first JSON object.
func normalizeJSONText(s string) string {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "```") {
		t = strings.TrimPrefix(t, "```")
		if idx := strings.IndexByte(t, '\n'); idx != -1 {
			t = t[idx+1:]
		}
		if j := strings.LastIndex(t, "```"); j != -1 {
			t = t[:j]
		}
		t = strings.TrimSpace(t)
	}
	if !strings.HasPrefix(t, "{") {
		if obj := extractJSONObject(t); obj != "" {
			return obj
		}
	}
	return t
}

// extractJSONObject is a crude extractor for the first top-level object.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
