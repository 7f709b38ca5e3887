package llm

import (
	"context"
)

// Client is the minimal text-completion surface the explainer needs.
// Any provider implementation should satisfy this.
type Client interface {
	Name() string
	GenerateText(ctx context.Context, prompt string) (string, error)
}
