package telemetry

import (
	"testing"

	"github.com/pthm-cable/barrage/config"
)

func init() {
	config.MustInit("")
}

func hasBookmark(bms []Bookmark, typ BookmarkType) bool {
	for _, bm := range bms {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_TierReached(t *testing.T) {
	bd := NewBookmarkDetector(10)

	if bms := bd.Check(WindowStats{WindowEndTick: 600, Score: 450}); hasBookmark(bms, BookmarkTierReached) {
		t.Error("unexpected tier bookmark below the first tier")
	}
	bms := bd.Check(WindowStats{WindowEndTick: 1200, Score: 520})
	if !hasBookmark(bms, BookmarkTierReached) {
		t.Fatal("expected tier_reached bookmark when crossing 500")
	}
	if bms := bd.Check(WindowStats{WindowEndTick: 1800, Score: 600}); hasBookmark(bms, BookmarkTierReached) {
		t.Error("tier bookmark should fire once per crossing")
	}
}

func TestBookmarkDetector_PlayerLost(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bms := bd.Check(WindowStats{WindowEndTick: 600, PlayerDeaths: 1, Score: 120})
	if !hasBookmark(bms, BookmarkPlayerLost) {
		t.Fatal("expected player_lost bookmark")
	}
	if bms := bd.Check(WindowStats{WindowEndTick: 1200}); hasBookmark(bms, BookmarkPlayerLost) {
		t.Error("player_lost without deaths")
	}
}

func TestBookmarkDetector_EnemySurge(t *testing.T) {
	bd := NewBookmarkDetector(10)
	cfg := config.Cfg().Bookmarks.EnemySurge

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Enemies: cfg.MinEnemies / 2})
	}

	surge := int(float64(cfg.MinEnemies/2)*cfg.Multiplier) + cfg.MinEnemies
	bms := bd.Check(WindowStats{WindowEndTick: 3000, Enemies: surge})
	if !hasBookmark(bms, BookmarkEnemySurge) {
		t.Errorf("expected enemy_surge bookmark for %d enemies", surge)
	}
}

func TestBookmarkDetector_EnemySurgeNeedsHistory(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(WindowStats{Enemies: 5})
	bms := bd.Check(WindowStats{Enemies: 500})
	if hasBookmark(bms, BookmarkEnemySurge) {
		t.Error("surge detected with fewer than three windows of history")
	}
}

func TestBookmarkDetector_FieldCleared(t *testing.T) {
	bd := NewBookmarkDetector(10)
	cfg := config.Cfg().Bookmarks.FieldCleared

	peak := cfg.MinPeak * 2
	bd.Check(WindowStats{WindowEndTick: 600, Enemies: peak})

	bms := bd.Check(WindowStats{WindowEndTick: 1200, Enemies: 0})
	if !hasBookmark(bms, BookmarkFieldCleared) {
		t.Fatal("expected field_cleared bookmark")
	}

	// Peak was reset to the low value, so no second trigger.
	if bms := bd.Check(WindowStats{WindowEndTick: 1800, Enemies: 0}); hasBookmark(bms, BookmarkFieldCleared) {
		t.Error("field_cleared fired twice without a new peak")
	}
}

func TestBookmarkDetector_FieldClearedBelowMinPeak(t *testing.T) {
	bd := NewBookmarkDetector(10)
	cfg := config.Cfg().Bookmarks.FieldCleared

	bd.Check(WindowStats{Enemies: cfg.MinPeak - 1})
	if bms := bd.Check(WindowStats{Enemies: 0}); hasBookmark(bms, BookmarkFieldCleared) {
		t.Error("field_cleared below minimum peak")
	}
}

func TestBookmarkDetector_HistoryWraps(t *testing.T) {
	bd := NewBookmarkDetector(3)
	for i := 0; i < 7; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i)})
	}
	if got := len(bd.getHistory()); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
}
