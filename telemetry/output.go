package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/barrage/config"
)

// Files written into a run's output directory.
const (
	TelemetryFile = "telemetry.csv"
	VariantsFile  = "variants.csv"
	PerfFile      = "perf.csv"
	BookmarksFile = "bookmarks.csv"
	ConfigFile    = "config.yaml"
)

// csvSink appends gocsv records to one file, header first.
type csvSink struct {
	name   string
	f      *os.File
	header bool
}

func (s *csvSink) write(records any) error {
	var err error
	if s.header {
		err = gocsv.MarshalWithoutHeaders(records, s.f)
	} else {
		err = gocsv.Marshal(records, s.f)
		s.header = err == nil
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", s.name, err)
	}
	return nil
}

// OutputManager writes a run's CSV logs and config into one directory.
// A nil manager discards everything.
type OutputManager struct {
	dir       string
	telemetry *csvSink
	variants  *csvSink
	perf      *csvSink
	bookmarks *csvSink
}

// NewOutputManager creates dir and its CSV files. An empty dir disables
// output and returns nil.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	for _, s := range []struct {
		dst  **csvSink
		name string
	}{
		{&om.telemetry, TelemetryFile},
		{&om.variants, VariantsFile},
		{&om.perf, PerfFile},
		{&om.bookmarks, BookmarksFile},
	} {
		f, err := os.Create(filepath.Join(dir, s.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", s.name, err)
		}
		*s.dst = &csvSink{name: s.name, f: f}
	}
	return om, nil
}

// WriteConfig saves cfg as YAML next to the logs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, ConfigFile))
}

// WriteTelemetry appends the window totals to telemetry.csv and its
// per-variant breakdown to variants.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.telemetry.write([]WindowStats{stats}); err != nil {
		return err
	}
	if len(stats.Variants) == 0 {
		return nil
	}
	return om.variants.write(stats.Variants)
}

// WritePerf appends the perf window ending at windowEnd.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return om.perf.write([]PerfRow{stats.Row(windowEnd)})
}

// WriteBookmark appends b to bookmarks.csv.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}
	return om.bookmarks.write([]Bookmark{b})
}

// Dir returns the output directory, or "" when disabled.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes every open file and reports all close errors.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var errs []error
	for _, s := range []*csvSink{om.telemetry, om.variants, om.perf, om.bookmarks} {
		if s == nil || s.f == nil {
			continue
		}
		if err := s.f.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", s.name, err))
		}
		s.f = nil
	}
	return errors.Join(errs...)
}
