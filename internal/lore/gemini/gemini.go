// Package gemini registers the "gemini" lore provider backed by the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"github.com/vovakirdan/ephemera/internal/lore"
	"github.com/vovakirdan/ephemera/internal/species"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

func init() {
	lore.Register("gemini", func(opts lore.Options) (lore.Generator, error) {
		return New(opts), nil
	})
}

// Generator calls the Gemini API. The client is created lazily on first use,
// so constructing a Generator never touches the network.
type Generator struct {
	model    string
	apiKey   string
	maxLevel int

	once    sync.Once
	client  *genai.Client
	initErr error
}

// New creates a Gemini generator. Without an API key every call returns
// lore.ErrUnavailable.
func New(opts lore.Options) *Generator {
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	return &Generator{
		model:    model,
		apiKey:   opts.APIKey,
		maxLevel: opts.MaxLevel,
	}
}

// Generate asks the model for a short description of the species.
func (g *Generator) Generate(ctx context.Context, level int, info species.Info) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini: no API key: %w", lore.ErrUnavailable)
	}

	g.once.Do(func() {
		g.client, g.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	if g.initErr != nil {
		return "", fmt.Errorf("gemini: create client: %w", g.initErr)
	}

	maxLevel := g.maxLevel
	if maxLevel < level {
		maxLevel = level
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(lore.Prompt(level, maxLevel, info)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}
