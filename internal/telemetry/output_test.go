package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ephemera/internal/config"
	"github.com/vovakirdan/ephemera/internal/games/ephemera"
)

func TestNilRecorderIsNoop(t *testing.T) {
	r, err := NewRecorder("")
	if err != nil {
		t.Fatalf("NewRecorder(\"\") failed: %v", err)
	}
	if r != nil {
		t.Fatal("empty dir should disable output")
	}

	if err := r.WriteSample(Record{}); err != nil {
		t.Errorf("nil WriteSample: %v", err)
	}
	if err := r.WriteEvent(Event{}); err != nil {
		t.Errorf("nil WriteEvent: %v", err)
	}
	if err := r.WriteConfig(config.DefaultConfig()); err != nil {
		t.Errorf("nil WriteConfig: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
	if r.Dir() != "" {
		t.Errorf("nil Dir() = %q", r.Dir())
	}
}

func TestWriteSamples(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r, err := NewRecorder(dir)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}

	samples := []ephemera.Telemetry{
		{Tick: 4, Score: 10, Level: 1, Experience: 1, Ceiling: 60, Particles: 21},
		{Tick: 8, Score: 20, Level: 1, Experience: 2, Ceiling: 60, Particles: 21.5},
	}
	for _, s := range samples {
		if err := r.WriteSample(FromTelemetry(s)); err != nil {
			t.Fatalf("WriteSample failed: %v", err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), data)
	}
	if lines[0] != "tick,score,level,experience,ceiling,particles" {
		t.Errorf("header = %q", lines[0])
	}

	var got []Record
	if err := gocsv.UnmarshalBytes(data, &got); err != nil {
		t.Fatalf("output should parse back: %v", err)
	}
	if got[1].Tick != 8 || got[1].Particles != 21.5 {
		t.Errorf("second row = %+v", got[1])
	}
}

func TestWriteEvents(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRecorder(dir)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}

	if err := r.WriteEvent(Event{Tick: 100, Kind: EventEvolution, Level: 2, Score: 600}); err != nil {
		t.Fatal(err)
	}
	if err := r.WriteEvent(Event{Tick: 900, Kind: EventGameOver, Level: 2, Score: 1400}); err != nil {
		t.Fatal(err)
	}
	r.Close()

	data, err := os.ReadFile(filepath.Join(dir, "events.csv"))
	if err != nil {
		t.Fatal(err)
	}
	want := "tick,kind,level,score\n100,evolution,2,600\n900,game_over,2,1400\n"
	if string(data) != want {
		t.Errorf("events.csv = %q, expected %q", data, want)
	}
}

func TestWriteConfig(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRecorder(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	cfg := config.DefaultConfig()
	cfg.Population.Enemies = 7
	if err := r.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var back config.Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("config.yaml should parse: %v", err)
	}
	if back.Population.Enemies != 7 || len(back.Species) != 8 {
		t.Errorf("config round trip lost data: %+v", back.Population)
	}
}
