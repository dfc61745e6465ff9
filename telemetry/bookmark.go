package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/barrage/config"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkTierReached  BookmarkType = "tier_reached"
	BookmarkPlayerLost   BookmarkType = "player_lost"
	BookmarkEnemySurge   BookmarkType = "enemy_surge"
	BookmarkFieldCleared BookmarkType = "field_cleared"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type" json:"type"`
	Tick        int32        `csv:"tick" json:"tick"`
	Description string       `csv:"description" json:"description"`

	// Snapshot is the file saved for this bookmark, if any.
	Snapshot string `csv:"snapshot" json:"-"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	attrs := []any{
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	}
	if b.Snapshot != "" {
		attrs = append(attrs, "snapshot", b.Snapshot)
	}
	slog.Info("bookmark", attrs...)
}

// BookmarkDetector detects interesting moments in a run.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	lastScore   int
	enemiesPeak int
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkTierReached(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkPlayerLost(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkEnemySurge(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkFieldCleared(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	bd.lastScore = stats.Score
	if stats.Enemies > bd.enemiesPeak {
		bd.enemiesPeak = stats.Enemies
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkTierReached(stats WindowStats) *Bookmark {
	for _, tier := range config.Cfg().Bookmarks.TierScores {
		if bd.lastScore < tier && stats.Score >= tier {
			return &Bookmark{
				Type:        BookmarkTierReached,
				Tick:        stats.WindowEndTick,
				Description: fmt.Sprintf("Score %d crossed tier %d", stats.Score, tier),
			}
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkPlayerLost(stats WindowStats) *Bookmark {
	if stats.PlayerDeaths == 0 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkPlayerLost,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Player destroyed %d time(s) at score %d", stats.PlayerDeaths, stats.Score),
	}
}

func (bd *BookmarkDetector) checkEnemySurge(stats WindowStats) *Bookmark {
	cfg := config.Cfg().Bookmarks.EnemySurge
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Enemies
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.Enemies) > avg*cfg.Multiplier && stats.Enemies >= cfg.MinEnemies {
		return &Bookmark{
			Type:        BookmarkEnemySurge,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Enemies %d are %.1fx average (%.1f)", stats.Enemies, float64(stats.Enemies)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkFieldCleared(stats WindowStats) *Bookmark {
	cfg := config.Cfg().Bookmarks.FieldCleared
	if bd.enemiesPeak < cfg.MinPeak {
		return nil
	}

	drop := 1.0 - float64(stats.Enemies)/float64(bd.enemiesPeak)
	if drop > cfg.DropPercent {
		// Reset peak after triggering
		oldPeak := bd.enemiesPeak
		bd.enemiesPeak = stats.Enemies

		return &Bookmark{
			Type:        BookmarkFieldCleared,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Enemies dropped %.0f%% from peak %d to %d", drop*100, oldPeak, stats.Enemies),
		}
	}
	return nil
}
