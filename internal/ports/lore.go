package ports

import (
	"context"

	"github.com/HarshitaThota/OneiroNet-AI/internal/domain"
)

// LoreStore provides the static symbol and ritual lookup tables.
type LoreStore interface {
	// Symbol returns the per-lens snippets for term (lower-cased and
	// trimmed). Unknown terms yield a zero entry, not an error.
	Symbol(ctx context.Context, term string) (domain.SymbolEntry, error)

	// Ritual returns the suggestion bundle for a dream type.
	Ritual(ctx context.Context, dreamType domain.DreamType) (domain.RitualBundle, error)
}
