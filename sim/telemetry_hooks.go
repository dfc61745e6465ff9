package sim

import (
	"log/slog"

	"github.com/pthm-cable/barrage/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (s *Session) flushTelemetry() {
	if !s.collector.ShouldFlush(s.tick) {
		return
	}

	stats := s.collector.Flush(s.tick, s.reg)
	perfStats := s.perfCollector.Stats()

	// Call stats callback if provided
	if s.statsCallback != nil {
		s.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if s.outputManager != nil {
		if err := s.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := s.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	// Snapshot first so the bookmark row can point at the file.
	for _, bm := range s.bookmarkDetector.Check(stats) {
		if s.snapshotDir != "" {
			bm.Snapshot = s.saveSnapshot(&bm)
		}
		if s.logStats {
			bm.LogBookmark()
		}
		if err := s.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// saveSnapshot creates and saves a snapshot to disk.
func (s *Session) saveSnapshot(bookmark *telemetry.Bookmark) string {
	snapshot := telemetry.NewSnapshot(s.reg, s.rngSeed, bookmark)

	path, err := telemetry.SaveSnapshot(snapshot, s.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return ""
	}

	slog.Info("snapshot saved", "path", path, "tick", s.tick)
	return path
}

// SaveSnapshot writes an unbookmarked snapshot of the current state to
// the snapshot directory and returns its path, or "" when snapshots are
// disabled or the write failed.
func (s *Session) SaveSnapshot() string {
	if s.snapshotDir == "" {
		return ""
	}
	return s.saveSnapshot(nil)
}
