// Package lore serves the static dream-symbol and ritual tables from
// embedded JSON. The tables are loaded once and never mutated.
package lore

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/HarshitaThota/OneiroNet-AI/internal/domain"
)

//go:embed data/*.json
var loreFS embed.FS

const (
	symbolsFile = "data/symbols.json"
	ritualsFile = "data/rituals.json"
)

// EmbeddedStore implements ports.LoreStore from embedded JSON files.
type EmbeddedStore struct {
	once    sync.Once
	symbols map[string]domain.SymbolEntry
	rituals map[domain.DreamType]domain.RitualBundle
	err     error
}

func NewEmbeddedStore() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	raw, err := loreFS.ReadFile(symbolsFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded symbols: %w", err)
		return
	}
	if err := json.Unmarshal(raw, &s.symbols); err != nil {
		s.err = fmt.Errorf("parse embedded symbols: %w", err)
		return
	}

	raw, err = loreFS.ReadFile(ritualsFile)
	if err != nil {
		s.err = fmt.Errorf("read embedded rituals: %w", err)
		return
	}
	if err := json.Unmarshal(raw, &s.rituals); err != nil {
		s.err = fmt.Errorf("parse embedded rituals: %w", err)
		return
	}
	if _, ok := s.rituals[domain.DreamUnknown]; !ok {
		s.err = fmt.Errorf("embedded rituals missing %q fallback", domain.DreamUnknown)
	}
}

// Symbol returns the entry for term, keyed lower-cased and trimmed.
// Unknown terms return a zero entry, not an error.
func (s *EmbeddedStore) Symbol(_ context.Context, term string) (domain.SymbolEntry, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.SymbolEntry{}, s.err
	}
	return s.symbols[strings.ToLower(strings.TrimSpace(term))], nil
}

// Ritual returns the bundle for dreamType, falling back to the unknown
// bundle for any type outside the table.
func (s *EmbeddedStore) Ritual(_ context.Context, dreamType domain.DreamType) (domain.RitualBundle, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return domain.RitualBundle{}, s.err
	}
	if bundle, ok := s.rituals[dreamType]; ok {
		return bundle, nil
	}
	return s.rituals[domain.DreamUnknown], nil
}
