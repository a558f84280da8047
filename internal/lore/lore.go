// Package lore produces flavor text for evolution screens.
//
// Generators may fail or be slow; Fallback wraps one so callers always get
// text back: the species' static description whenever generation does not
// produce anything usable.
package lore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ephemera/internal/species"
)

// ErrUnavailable is returned by generators that cannot run, for example
// because no credential is configured.
var ErrUnavailable = errors.New("lore: generator unavailable")

// Generator produces flavor text for a species the player just reached.
type Generator interface {
	Generate(ctx context.Context, level int, info species.Info) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, level int, info species.Info) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, level int, info species.Info) (string, error) {
	return f(ctx, level, info)
}

// Static returns the species description unchanged. It never fails.
type Static struct{}

// Generate returns info.Description.
func (Static) Generate(_ context.Context, _ int, info species.Info) (string, error) {
	return info.Description, nil
}

// Prompt builds the narrator prompt sent to text-generation models.
func Prompt(level, maxLevel int, info species.Info) string {
	var sb strings.Builder
	sb.WriteString("You are the narrator of a biological evolution game.\n")
	fmt.Fprintf(&sb, "The player has just evolved to Level %d / %d.\n", level, maxLevel)
	fmt.Fprintf(&sb, "Species Name: %s.\n", info.Name)
	fmt.Fprintf(&sb, "Base Characteristics: %s.\n\n", info.Description)
	sb.WriteString("Generate a short, atmospheric, and inspiring description (max 2 sentences) for this new evolutionary stage.\n")
	sb.WriteString("Focus on their new capabilities or their place in the food chain.\n")
	sb.WriteString("The tone should be scientific yet mythical.\n")
	sb.WriteString("Return ONLY the text.")
	return sb.String()
}

// Fallback wraps a Generator so that Describe never fails.
type Fallback struct {
	gen     Generator
	timeout time.Duration
	logger  *log.Logger
}

// NewFallback wraps gen. A zero timeout leaves the deadline to the caller's context.
func NewFallback(gen Generator, timeout time.Duration, logger *log.Logger) *Fallback {
	if gen == nil {
		gen = Static{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Fallback{gen: gen, timeout: timeout, logger: logger}
}

// Describe returns generated text for the species, or info.Description if the
// generator fails, returns blank text, or ctx ends first. Failures are logged,
// never retried.
func (f *Fallback) Describe(ctx context.Context, level int, info species.Info) string {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	text, err := f.gen.Generate(ctx, level, info)
	switch {
	case err != nil:
		if errors.Is(err, context.Canceled) {
			f.logger.Debug("lore request cancelled", "level", level)
		} else {
			f.logger.Warn("lore generation failed", "level", level, "species", info.Name, "err", err)
		}
		return info.Description
	case strings.TrimSpace(text) == "":
		f.logger.Warn("lore generation returned no text", "level", level, "species", info.Name)
		return info.Description
	default:
		return strings.TrimSpace(text)
	}
}
