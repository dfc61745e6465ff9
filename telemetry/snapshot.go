package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/barrage/entity"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds the observable state of a run at one tick.
type Snapshot struct {
	Version int   `json:"version"`
	RNGSeed int64 `json:"rng_seed"`
	Tick    int32 `json:"tick"`

	State entity.State `json:"state"`

	Allies  []EntityState `json:"allies"`
	Enemies []EntityState `json:"enemies"`
	Debris  int           `json:"debris"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// EntityState holds one object's state.
type EntityState struct {
	Variant string `json:"variant"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	W       int    `json:"w"`
	H       int    `json:"h"`
	Energy  int    `json:"energy"`
}

// NewSnapshot captures r. Debris is only counted.
func NewSnapshot(r *entity.Registry, seed int64, bookmark *Bookmark) *Snapshot {
	return &Snapshot{
		Version:  SnapshotVersion,
		RNGSeed:  seed,
		Tick:     int32(r.State.Ticks),
		State:    r.State,
		Allies:   entityStates(r.Allies),
		Enemies:  entityStates(r.Enemies),
		Debris:   r.Debris.Len(),
		Bookmark: bookmark,
	}
}

func entityStates(c *entity.Container) []EntityState {
	out := make([]EntityState, 0, c.Len())
	c.Scan(func(o *entity.Object) bool {
		out = append(out, EntityState{
			Variant: o.Variant.String(),
			X:       o.X,
			Y:       o.Y,
			W:       o.W,
			H:       o.H,
			Energy:  o.Energy,
		})
		return true
	})
	return out
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	// Build filename
	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Bookmark != nil {
		// Sanitize bookmark type for filename
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Tick, sanitized)
	}
	name += ".json"

	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
