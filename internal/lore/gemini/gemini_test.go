package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/ephemera/internal/lore"
	"github.com/vovakirdan/ephemera/internal/species"
)

func TestRegistered(t *testing.T) {
	if !lore.Exists("gemini") {
		t.Fatal("gemini provider should register itself")
	}
	g, err := lore.Create("gemini", lore.Options{MaxLevel: 8})
	if err != nil {
		t.Fatalf("Create(gemini) failed: %v", err)
	}
	if gen, ok := g.(*Generator); !ok || gen.model != DefaultModel {
		t.Errorf("Create(gemini) = %#v", g)
	}
}

func TestNoAPIKeyIsUnavailable(t *testing.T) {
	g := New(lore.Options{Model: "custom-model"})
	if g.model != "custom-model" {
		t.Errorf("model = %q, expected custom-model", g.model)
	}

	_, err := g.Generate(context.Background(), 2, species.Default().Lookup(2))
	if !errors.Is(err, lore.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable without a key, got %v", err)
	}
}

func TestFallbackWithoutKey(t *testing.T) {
	info := species.Default().Lookup(2)
	f := lore.NewFallback(New(lore.Options{}), 0, nil)
	if got := f.Describe(context.Background(), 2, info); got != info.Description {
		t.Errorf("Describe() = %q, expected static description", got)
	}
}
