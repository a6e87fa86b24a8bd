package ports

import (
	"context"

	"github.com/HarshitaThota/OneiroNet-AI/internal/domain"
)

// Generator produces free-form text for one composed prompt via an LLM.
type Generator interface {
	Generate(ctx context.Context, prompt domain.ComposedPrompt) (string, error)
}
