package lore_test

import (
	"context"
	"testing"

	"github.com/HarshitaThota/OneiroNet-AI/internal/adapters/lore"
	"github.com/HarshitaThota/OneiroNet-AI/internal/domain"
)

func TestSymbol_NormalizesTerm(t *testing.T) {
	store := lore.NewEmbeddedStore()
	ctx := context.Background()

	canonical, err := store.Symbol(ctx, "snake")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canonical.Jungian == "" {
		t.Fatal("expected non-empty jungian snippet for snake")
	}

	for _, term := range []string{"SNAKE ", " Snake", "sNaKe"} {
		entry, err := store.Symbol(ctx, term)
		if err != nil {
			t.Fatalf("term %q: unexpected error: %v", term, err)
		}
		if entry != canonical {
			t.Errorf("term %q: expected same entry as %q", term, "snake")
		}
	}
}

func TestSymbol_UnknownTermIsEmptyNotError(t *testing.T) {
	store := lore.NewEmbeddedStore()

	entry, err := store.Symbol(context.Background(), "unicorn")
	if err != nil {
		t.Fatalf("unknown term must not error: %v", err)
	}
	if entry != (domain.SymbolEntry{}) {
		t.Errorf("expected all-empty entry for unknown term, got %+v", entry)
	}
}

func TestRitual_KnownTypes(t *testing.T) {
	store := lore.NewEmbeddedStore()
	ctx := context.Background()

	for _, dt := range []domain.DreamType{
		domain.DreamNightmare, domain.DreamFlying, domain.DreamProphetic, domain.DreamUnknown,
	} {
		bundle, err := store.Ritual(ctx, dt)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", dt, err)
		}
		if bundle.Breath == "" || bundle.Affirm == "" || bundle.Prompt == "" {
			t.Errorf("%s: incomplete bundle: %+v", dt, bundle)
		}
	}
}

func TestRitual_UnrecognizedTypeFallsBackToUnknown(t *testing.T) {
	store := lore.NewEmbeddedStore()
	ctx := context.Background()

	unknown, err := store.Ritual(ctx, domain.DreamUnknown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both the normalization path and a raw out-of-set type must land
	// on the unknown bundle.
	got, err := store.Ritual(ctx, domain.NormalizeDreamType("spaceship"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != unknown {
		t.Errorf("normalized spaceship: expected unknown bundle, got %+v", got)
	}

	got, err = store.Ritual(ctx, domain.DreamType("spaceship"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != unknown {
		t.Errorf("raw spaceship: expected unknown bundle, got %+v", got)
	}
}
