// Package telemetry writes headless run output as CSV files.
package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ephemera/internal/config"
	"github.com/vovakirdan/ephemera/internal/games/ephemera"
)

// Record is one HUD telemetry sample.
type Record struct {
	Tick       uint64  `csv:"tick"`
	Score      int     `csv:"score"`
	Level      int     `csv:"level"`
	Experience int     `csv:"experience"`
	Ceiling    int     `csv:"ceiling"`
	Particles  float64 `csv:"particles"`
}

// FromTelemetry converts an engine telemetry event.
func FromTelemetry(t ephemera.Telemetry) Record {
	return Record{
		Tick:       t.Tick,
		Score:      t.Score,
		Level:      t.Level,
		Experience: t.Experience,
		Ceiling:    t.Ceiling,
		Particles:  t.Particles,
	}
}

// EventKind names a discrete run event.
type EventKind string

const (
	EventEvolution EventKind = "evolution"
	EventVictory   EventKind = "victory"
	EventGameOver  EventKind = "game_over"
)

// Event is a discrete run event.
type Event struct {
	Tick  uint64    `csv:"tick"`
	Kind  EventKind `csv:"kind"`
	Level int       `csv:"level"`
	Score int       `csv:"score"`
}

// Recorder handles structured run output with CSV logging.
// A nil *Recorder is valid and discards everything.
type Recorder struct {
	dir        string
	samplesOut *os.File
	eventsOut  *os.File

	// Track if headers have been written
	samplesHeader bool
	eventsHeader  bool
}

// NewRecorder creates the output directory and its CSV files.
// Returns nil if dir is empty (output disabled).
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: creating output directory: %w", err)
	}

	r := &Recorder{dir: dir}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating telemetry.csv: %w", err)
	}
	r.samplesOut = f

	f, err = os.Create(filepath.Join(dir, "events.csv"))
	if err != nil {
		r.samplesOut.Close()
		return nil, fmt.Errorf("telemetry: creating events.csv: %w", err)
	}
	r.eventsOut = f

	return r, nil
}

// Dir returns the output directory.
func (r *Recorder) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// WriteConfig saves the configuration the run used as YAML.
func (r *Recorder) WriteConfig(cfg config.Config) error {
	if r == nil {
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("telemetry: encoding config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.dir, "config.yaml"), data, 0o644); err != nil {
		return fmt.Errorf("telemetry: writing config: %w", err)
	}
	return nil
}

// WriteSample appends a telemetry record to telemetry.csv.
func (r *Recorder) WriteSample(rec Record) error {
	if r == nil {
		return nil
	}
	if err := writeCSV(r.samplesOut, []Record{rec}, &r.samplesHeader); err != nil {
		return fmt.Errorf("telemetry: writing sample: %w", err)
	}
	return nil
}

// WriteEvent appends an event to events.csv.
func (r *Recorder) WriteEvent(ev Event) error {
	if r == nil {
		return nil
	}
	if err := writeCSV(r.eventsOut, []Event{ev}, &r.eventsHeader); err != nil {
		return fmt.Errorf("telemetry: writing event: %w", err)
	}
	return nil
}

// writeCSV includes headers only on the first write to f.
func writeCSV(f *os.File, records any, headerWritten *bool) error {
	if !*headerWritten {
		if err := gocsv.Marshal(records, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, f)
}

// Close flushes and closes the output files.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	return errors.Join(r.samplesOut.Close(), r.eventsOut.Close())
}
