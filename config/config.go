// Package config provides configuration loading and access for barrage.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime configuration parameters. Gameplay thresholds
// are compile-time constants in the entity and systems packages.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Frame      FrameConfig      `yaml:"frame"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Bookmarks  BookmarksConfig  `yaml:"bookmarks"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Background BackgroundConfig `yaml:"background"`
	Autopilot  AutopilotConfig  `yaml:"autopilot"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// FrameConfig holds frame pacing.
type FrameConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"` // Wall-clock time per tick
	StepsPerUpdate int `yaml:"steps_per_update"` // Ticks per rendered frame
	MaxSteps       int `yaml:"max_steps"`        // Upper bound of the speed slider
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowTicks    int `yaml:"stats_window_ticks"`
	BookmarkHistorySize int `yaml:"bookmark_history_size"`
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// BookmarksConfig holds bookmark detection thresholds.
type BookmarksConfig struct {
	TierScores   []int              `yaml:"tier_scores"`
	EnemySurge   EnemySurgeConfig   `yaml:"enemy_surge"`
	FieldCleared FieldClearedConfig `yaml:"field_cleared"`
}

// EnemySurgeConfig holds enemy surge detection parameters.
type EnemySurgeConfig struct {
	Multiplier float64 `yaml:"multiplier"`
	MinEnemies int     `yaml:"min_enemies"`
}

// FieldClearedConfig holds field cleared detection parameters.
type FieldClearedConfig struct {
	DropPercent float64 `yaml:"drop_percent"`
	MinPeak     int     `yaml:"min_peak"`
}

// TerminalConfig holds terminal frontend geometry.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`  // Arena units per terminal column
	CellHeight int `yaml:"cell_height"` // Arena units per terminal row
}

// BackgroundConfig holds starfield parameters.
type BackgroundConfig struct {
	StarCount int     `yaml:"star_count"`
	MinSpeed  float64 `yaml:"min_speed"` // Arena units per tick
	MaxSpeed  float64 `yaml:"max_speed"`
}

// AutopilotConfig shapes the scripted sweep used for autofire, headless
// runs and tuning.
type AutopilotConfig struct {
	Y         int     `yaml:"y"`          // Cursor row of the sweep
	Margin    int     `yaml:"margin"`     // Distance kept from the side walls
	Period    int     `yaml:"period"`     // Ticks per one-way sweep
	AltCharge float64 `yaml:"alt_charge"` // Charge fraction that triggers the charged shot
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TickInterval time.Duration // Frame.TickIntervalMS as a duration
	ScreenW32    float32       // Screen.Width as float32
	ScreenH32    float32       // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Frame.TickIntervalMS <= 0:
		return fmt.Errorf("frame.tick_interval_ms must be positive, got %d", c.Frame.TickIntervalMS)
	case c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0:
		return fmt.Errorf("terminal cell size must be positive, got %dx%d", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TickInterval = time.Duration(c.Frame.TickIntervalMS) * time.Millisecond
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Frame.StepsPerUpdate < 1 {
		c.Frame.StepsPerUpdate = 1
	}
	if c.Frame.MaxSteps < c.Frame.StepsPerUpdate {
		c.Frame.MaxSteps = c.Frame.StepsPerUpdate
	}
	if c.Autopilot.Period < 1 {
		c.Autopilot.Period = 1
	}
	if c.Autopilot.Margin < 0 {
		c.Autopilot.Margin = 0
	}
	if c.Autopilot.AltCharge <= 0 || c.Autopilot.AltCharge > 1 {
		c.Autopilot.AltCharge = 1
	}
	if c.Background.MaxSpeed < c.Background.MinSpeed {
		c.Background.MinSpeed, c.Background.MaxSpeed = c.Background.MaxSpeed, c.Background.MinSpeed
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
