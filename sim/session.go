// Package sim runs a barrage game without any presentation attached: it
// owns the registry, the frame driver and the telemetry pipeline, and is
// shared by the raylib window, the terminal frontend and headless runs.
package sim

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/barrage/config"
	"github.com/pthm-cable/barrage/entity"
	"github.com/pthm-cable/barrage/systems"
	"github.com/pthm-cable/barrage/telemetry"
)

// Options configures a Session.
type Options struct {
	Seed             int64
	LogStats         bool
	StatsWindowTicks int // 0 = use config
	SnapshotDir      string
	OutputDir        string
	StepsPerUpdate   int  // 0 = use config
	Autofire         bool // drive input with the autopilot
	Config           *config.Config

	// StatsCallback is invoked with each flushed telemetry window.
	StatsCallback func(stats telemetry.WindowStats)
}

// Session holds one running game.
type Session struct {
	cfg     *config.Config
	reg     *entity.Registry
	driver  *systems.Driver
	rngSeed int64

	tick           int32
	stepsPerUpdate int
	autofire       bool

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool
	snapshotDir      string
	statsCallback    func(stats telemetry.WindowStats)
}

// NewSession creates a session and opens its output directory, if any.
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	window := opts.StatsWindowTicks
	if window <= 0 {
		window = cfg.Telemetry.StatsWindowTicks
	}

	reg := entity.NewRegistry(opts.Seed)
	s := &Session{
		cfg:              cfg,
		reg:              reg,
		driver:           systems.NewDriver(reg),
		rngSeed:          opts.Seed,
		autofire:         opts.Autofire,
		collector:        telemetry.NewCollector(window),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		bookmarkDetector: telemetry.NewBookmarkDetector(cfg.Telemetry.BookmarkHistorySize),
		logStats:         opts.LogStats,
		snapshotDir:      opts.SnapshotDir,
		statsCallback:    opts.StatsCallback,
	}
	reg.SetRecorder(s.collector)
	s.driver.SetPhaseTimer(s.perfCollector)

	s.stepsPerUpdate = cfg.Frame.StepsPerUpdate
	if opts.StepsPerUpdate > 0 {
		s.stepsPerUpdate = opts.StepsPerUpdate
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	s.outputManager = om

	return s, nil
}

// Step runs exactly one tick with the given input, drawing into d.
func (s *Session) Step(in entity.Input, d entity.Drawer) {
	s.perfCollector.StartTick()

	s.reg.Input = in
	s.driver.ProcessFrame(d)
	s.tick = int32(s.reg.State.Ticks)

	s.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	s.flushTelemetry()

	s.perfCollector.EndTick()
}

// UpdateHeadless runs StepsPerUpdate ticks without drawing. Input comes
// from the autopilot when autofire is on and is idle otherwise.
func (s *Session) UpdateHeadless() {
	for i := 0; i < s.stepsPerUpdate; i++ {
		s.Step(s.HeadlessInput(), entity.Discard)
	}
}

// HeadlessInput returns the input used when no player is attached.
func (s *Session) HeadlessInput() entity.Input {
	if s.autofire {
		return Autopilot(s.cfg.Autopilot, s.reg.State)
	}
	return entity.DefaultInput()
}

// Tick returns the number of completed ticks.
func (s *Session) Tick() int32 {
	return s.tick
}

// Seed returns the RNG seed the session was created with.
func (s *Session) Seed() int64 {
	return s.rngSeed
}

// Registry returns the simulated registry.
func (s *Session) Registry() *entity.Registry {
	return s.reg
}

// Driver returns the frame driver.
func (s *Session) Driver() *systems.Driver {
	return s.driver
}

// Config returns the session configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// StepsPerUpdate returns how many ticks run per update call.
func (s *Session) StepsPerUpdate() int {
	return s.stepsPerUpdate
}

// SetStepsPerUpdate sets the ticks per update, clamped to [1, Frame.MaxSteps].
func (s *Session) SetStepsPerUpdate(n int) {
	if n < 1 {
		n = 1
	}
	if n > s.cfg.Frame.MaxSteps {
		n = s.cfg.Frame.MaxSteps
	}
	s.stepsPerUpdate = n
}

// Autofire reports whether the autopilot is engaged.
func (s *Session) Autofire() bool {
	return s.autofire
}

// SetAutofire engages or releases the autopilot.
func (s *Session) SetAutofire(on bool) {
	s.autofire = on
}

// RecordFrame marks a rendered frame for FPS tracking.
func (s *Session) RecordFrame() {
	s.perfCollector.RecordFrame()
}

// PerfStats returns the current performance window.
func (s *Session) PerfStats() telemetry.PerfStats {
	return s.perfCollector.Stats()
}

// Close flushes and closes output files.
func (s *Session) Close() error {
	if s.outputManager == nil {
		return nil
	}
	err := s.outputManager.Close()
	s.outputManager = nil
	if err != nil {
		slog.Error("failed to close output", "error", err)
	}
	return err
}
