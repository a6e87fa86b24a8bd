package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/HarshitaThota/OneiroNet-AI/internal/domain"
	"github.com/HarshitaThota/OneiroNet-AI/internal/ports"
)

// InterpretRequest is the application-level input (no HTTP types).
type InterpretRequest struct {
	DreamText string
	Answers   map[string]string
	SunSign   string
	DreamDate string // YYYY-MM-DD or RFC 3339; empty means now
}

// InterpretResult is the application-level output: the shared moon
// context plus one text per lens. Agents always holds exactly one
// entry per lens in domain.Lenses, even when a lens failed.
type InterpretResult struct {
	Moon   domain.MoonPhase
	Agents map[domain.Lens]string
}

// DreamService orchestrates moon calculation, prompt composition and
// the per-lens generation fan-out.
type DreamService struct {
	generator   ports.Generator
	lore        ports.LoreStore
	lensTimeout time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

func NewDreamService(gen ports.Generator, lore ports.LoreStore, lensTimeout time.Duration, logger *slog.Logger) *DreamService {
	return &DreamService{
		generator:   gen,
		lore:        lore,
		lensTimeout: lensTimeout,
		logger:      logger,
		now:         time.Now,
	}
}

// Interpret runs the full pipeline for one dream. The five lens calls
// run concurrently; a failed lens degrades to an inline error marker
// in its own entry and never aborts the request or its siblings.
func (s *DreamService) Interpret(ctx context.Context, req InterpretRequest) (InterpretResult, error) {
	dream := strings.TrimSpace(req.DreamText)
	if dream == "" {
		return InterpretResult{}, domain.ErrEmptyDream
	}

	at, err := s.resolveInstant(req.DreamDate)
	if err != nil {
		return InterpretResult{}, err
	}

	// Shared, read-only inputs for every lens: computed once, before
	// any generation call starts.
	moon := domain.MoonPhaseAt(at)
	meta := domain.UserMeta{
		SunSign:   normalizeSunSign(req.SunSign),
		Stressors: req.Answers["stressors"],
	}

	// One slot per lens; each goroutine writes only its own index.
	texts := make([]string, len(domain.Lenses))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, lens := range domain.Lenses {
		i, lens := i, lens
		eg.Go(func() error {
			prompt, err := domain.ComposePrompt(lens, dream, req.Answers, moon, meta)
			if err != nil {
				// Unreachable for the fixed lens set; an internal fault
				// if it ever fires.
				return fmt.Errorf("compose %s prompt: %w", lens, err)
			}

			lensCtx, cancel := context.WithTimeout(egCtx, s.lensTimeout)
			defer cancel()

			text, genErr := s.generator.Generate(lensCtx, prompt)
			if genErr != nil {
				s.logger.WarnContext(egCtx, "lens generation failed",
					"lens", string(lens), "error", genErr)
				texts[i] = fmt.Sprintf("[generation error: %v]", genErr)
				return nil
			}
			texts[i] = text
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return InterpretResult{}, err
	}

	agents := make(map[domain.Lens]string, len(domain.Lenses))
	for i, lens := range domain.Lenses {
		agents[lens] = texts[i]
	}

	return InterpretResult{Moon: moon, Agents: agents}, nil
}

// MoonPhase answers the phase-only query. An empty date means now.
func (s *DreamService) MoonPhase(dateStr string) (domain.MoonPhase, error) {
	at, err := s.resolveInstant(dateStr)
	if err != nil {
		return domain.MoonPhase{}, err
	}
	return domain.MoonPhaseAt(at), nil
}

// Symbol looks up the per-lens snippets for a free-text term. Returns
// the normalized term alongside the entry.
func (s *DreamService) Symbol(ctx context.Context, term string) (string, domain.SymbolEntry, error) {
	t := strings.ToLower(strings.TrimSpace(term))
	entry, err := s.lore.Symbol(ctx, t)
	if err != nil {
		return t, domain.SymbolEntry{}, fmt.Errorf("symbol lookup: %w", err)
	}
	return t, entry, nil
}

// Ritual suggests a bundle for a dream type; unrecognized types fold
// to the unknown bundle.
func (s *DreamService) Ritual(ctx context.Context, dreamType string) (domain.RitualBundle, error) {
	bundle, err := s.lore.Ritual(ctx, domain.NormalizeDreamType(dreamType))
	if err != nil {
		return domain.RitualBundle{}, fmt.Errorf("ritual lookup: %w", err)
	}
	return bundle, nil
}

func (s *DreamService) resolveInstant(raw string) (time.Time, error) {
	if raw == "" {
		return s.now().UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, raw)
	}
	return t, nil
}

func normalizeSunSign(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Unknown"
	}
	return cases.Title(language.English).String(strings.ToLower(raw))
}
