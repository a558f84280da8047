package lore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ephemera/internal/species"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func larva() species.Info {
	return species.Default().Lookup(3)
}

func TestStatic(t *testing.T) {
	info := larva()
	text, err := Static{}.Generate(context.Background(), 3, info)
	if err != nil {
		t.Fatalf("Static should never fail: %v", err)
	}
	if text != info.Description {
		t.Errorf("Static text = %q, expected %q", text, info.Description)
	}
}

func TestFallbackDescribe(t *testing.T) {
	info := larva()

	tests := []struct {
		name string
		gen  Generator
		want string
	}{
		{
			name: "success",
			gen: GeneratorFunc(func(context.Context, int, species.Info) (string, error) {
				return "  A hungry larva stirs.\n", nil
			}),
			want: "A hungry larva stirs.",
		},
		{
			name: "error",
			gen: GeneratorFunc(func(context.Context, int, species.Info) (string, error) {
				return "", errors.New("boom")
			}),
			want: info.Description,
		},
		{
			name: "unavailable",
			gen: GeneratorFunc(func(context.Context, int, species.Info) (string, error) {
				return "", ErrUnavailable
			}),
			want: info.Description,
		},
		{
			name: "blank text",
			gen: GeneratorFunc(func(context.Context, int, species.Info) (string, error) {
				return "   \n", nil
			}),
			want: info.Description,
		},
		{
			name: "nil generator",
			gen:  nil,
			want: info.Description,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFallback(tt.gen, 0, testLogger())
			if got := f.Describe(context.Background(), 3, info); got != tt.want {
				t.Errorf("Describe() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestFallbackTimeout(t *testing.T) {
	info := larva()
	slow := GeneratorFunc(func(ctx context.Context, _ int, _ species.Info) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return "too late", nil
		}
	})

	f := NewFallback(slow, 10*time.Millisecond, testLogger())
	start := time.Now()
	got := f.Describe(context.Background(), 3, info)

	if got != info.Description {
		t.Errorf("timed out request should fall back, got %q", got)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Describe should honour the timeout, took %v", elapsed)
	}
}

func TestFallbackCancelled(t *testing.T) {
	info := larva()
	blocking := GeneratorFunc(func(ctx context.Context, _ int, _ species.Info) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFallback(blocking, 0, testLogger())
	if got := f.Describe(ctx, 3, info); got != info.Description {
		t.Errorf("cancelled request should fall back, got %q", got)
	}
}

func TestPrompt(t *testing.T) {
	info := larva()
	p := Prompt(3, 8, info)

	for _, want := range []string{"Level 3 / 8", info.Name, info.Description, "Return ONLY the text."} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt should contain %q:\n%s", want, p)
		}
	}
}

func TestRegistry(t *testing.T) {
	if !Exists("static") {
		t.Fatal("static provider should be registered")
	}

	g, err := Create("static", Options{})
	if err != nil {
		t.Fatalf("Create(static) failed: %v", err)
	}
	if _, ok := g.(Static); !ok {
		t.Errorf("Create(static) returned %T", g)
	}

	if _, err := Create("nope", Options{}); err == nil {
		t.Error("unknown provider should fail")
	}

	Register("test-failing", func(Options) (Generator, error) {
		return nil, errors.New("no")
	})
	if _, err := Create("test-failing", Options{}); err == nil {
		t.Error("factory error should propagate")
	}

	found := false
	for _, name := range Providers() {
		if name == "static" {
			found = true
		}
	}
	if !found {
		t.Errorf("Providers() = %v should include static", Providers())
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("static", func(Options) (Generator, error) { return Static{}, nil })
}
