package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/barrage/config"
	"github.com/pthm-cable/barrage/game"
	"github.com/pthm-cable/barrage/sim"
	"github.com/pthm-cable/barrage/terminal"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run parses args and runs the selected frontend. The returned error has
// already been logged; deferred cleanup has run by the time it returns.
func run(args []string) (err error) {
	fs := flag.NewFlagSet("barrage", flag.ContinueOnError)

	// CLI flags
	configPath := fs.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := fs.Bool("headless", false, "Run without graphics")
	term := fs.Bool("terminal", false, "Run in the terminal instead of a window")
	logStats := fs.Bool("log-stats", false, "Output stats via slog")
	logFile := fs.String("log-file", "", "Write logs to this file instead of stdout (defaults to barrage.log in terminal mode)")
	statsWindow := fs.Int("stats-window", 0, "Stats window size in ticks (0 = use config)")
	snapshotDir := fs.String("snapshot-dir", "", "Directory for snapshot files")
	outputDir := fs.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := fs.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := fs.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := fs.Int("steps-per-update", 0, "Simulation ticks per update call (0 = use config)")
	autofire := fs.Bool("autofire", false, "Let the autopilot fly the player")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// The terminal owns stdout, so logs go to a file there.
	var logOut io.Writer = os.Stdout
	logPath := *logFile
	if logPath == "" && *term {
		logPath = "barrage.log"
	}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			slog.Error("failed to open log file", "path", logPath, "error", err)
			return err
		}
		defer f.Close()
		logOut = f
	}

	// Set up slog (JSON for structured logging)
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))
	defer slog.SetDefault(prev)
	defer func() {
		if err != nil {
			slog.Error("barrage exited", "error", err)
		}
	}()

	if err := config.Init(*configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := sim.Options{
		Seed:             rngSeed,
		LogStats:         *logStats,
		StatsWindowTicks: *statsWindow,
		SnapshotDir:      *snapshotDir,
		OutputDir:        *outputDir,
		StepsPerUpdate:   *stepsPerUpdate,
		Autofire:         *autofire,
		Config:           cfg,
	}

	switch {
	case *headless:
		return runHeadless(opts, *maxTicks)
	case *term:
		return runTerminal(opts, cfg)
	default:
		return runWindow(opts, cfg, *maxTicks)
	}
}

// runHeadless steps the simulation as fast as possible.
func runHeadless(opts sim.Options, maxTicks int) error {
	s, err := sim.NewSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"steps_per_update", s.StepsPerUpdate(),
		"autofire", opts.Autofire,
	)

	if maxTicks <= 0 && !opts.Autofire {
		slog.Warn("headless run has no tick limit and no autopilot; the player idles until interrupted")
	}

	for {
		s.UpdateHeadless()

		if maxTicks > 0 && int(s.Tick()) >= maxTicks {
			slog.Info("max ticks reached",
				"tick", s.Tick(),
				"score", s.Registry().State.Score,
			)
			return nil
		}
	}
}

// runTerminal plays the game on a tcell screen until quit or interrupt.
func runTerminal(opts sim.Options, cfg *config.Config) error {
	s, err := sim.NewSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting terminal session", "seed", opts.Seed)

	f := terminal.NewFrontend(screen, s, cfg.Derived.TickInterval, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	err = f.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	slog.Info("terminal session ended", "tick", s.Tick(), "score", s.Registry().State.Score)
	return err
}

// runWindow opens a raylib window.
func runWindow(opts sim.Options, cfg *config.Config, maxTicks int) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(rl.KeyQ)

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	slog.Info("starting window", "seed", opts.Seed, "autofire", opts.Autofire)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	return nil
}
