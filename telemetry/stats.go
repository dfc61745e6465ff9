package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Game state at window end
	Score      int `csv:"score"`
	ScoreDelta int `csv:"score_delta"`
	Allies     int `csv:"allies"`
	Enemies    int `csv:"enemies"`
	Debris     int `csv:"debris"`
	GroundPop  int `csv:"ground_pop"`
	Charge     int `csv:"charge"`

	// Events during window
	Spawns       int `csv:"spawns"`
	Kills        int `csv:"kills"`
	EnemyKills   int `csv:"enemy_kills"`
	PlayerDeaths int `csv:"player_deaths"`
	Asteroids    int `csv:"asteroids"`
	Missiles     int `csv:"missiles"`

	// Enemy hull energy (sampled at window end)
	EnemyEnergyMean float64 `csv:"enemy_energy_mean"`
	EnemyEnergyStd  float64 `csv:"enemy_energy_std"`
	EnemyEnergyMax  float64 `csv:"enemy_energy_max"`
	EnemyEnergyP10  float64 `csv:"enemy_energy_p10"`
	EnemyEnergyP50  float64 `csv:"enemy_energy_p50"`
	EnemyEnergyP90  float64 `csv:"enemy_energy_p90"`

	// Per-variant events, written to their own file
	Variants []VariantCount `csv:"-"`
}

// VariantCount is one variant's spawns and kills within a window.
type VariantCount struct {
	WindowEnd int32  `csv:"window_end"`
	Variant   string `csv:"variant"`
	Spawned   int    `csv:"spawned"`
	Killed    int    `csv:"killed"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// EnergyStats summarizes a set of hull energies.
type EnergyStats struct {
	Mean, Std, Max float64
	P10, P50, P90  float64
}

// ComputeEnergyStats calculates mean, spread and percentiles of values.
// Std is the sample standard deviation and is 0 for fewer than two values.
func ComputeEnergyStats(values []float64) EnergyStats {
	n := len(values)
	if n == 0 {
		return EnergyStats{}
	}

	var s EnergyStats
	s.Mean = stat.Mean(values, nil)
	if n > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	s.Max = floats.Max(values)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s.P10 = Percentile(sorted, 0.10)
	s.P50 = Percentile(sorted, 0.50)
	s.P90 = Percentile(sorted, 0.90)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("score", s.Score),
		slog.Int("score_delta", s.ScoreDelta),
		slog.Int("allies", s.Allies),
		slog.Int("enemies", s.Enemies),
		slog.Int("debris", s.Debris),
		slog.Int("ground_pop", s.GroundPop),
		slog.Int("charge", s.Charge),
		slog.Int("spawns", s.Spawns),
		slog.Int("kills", s.Kills),
		slog.Int("enemy_kills", s.EnemyKills),
		slog.Int("player_deaths", s.PlayerDeaths),
		slog.Int("asteroids", s.Asteroids),
		slog.Int("missiles", s.Missiles),
		slog.Float64("enemy_energy_mean", s.EnemyEnergyMean),
		slog.Float64("enemy_energy_std", s.EnemyEnergyStd),
		slog.Float64("enemy_energy_max", s.EnemyEnergyMax),
		slog.Float64("enemy_energy_p10", s.EnemyEnergyP10),
		slog.Float64("enemy_energy_p50", s.EnemyEnergyP50),
		slog.Float64("enemy_energy_p90", s.EnemyEnergyP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"score", s.Score,
		"score_delta", s.ScoreDelta,
		"allies", s.Allies,
		"enemies", s.Enemies,
		"debris", s.Debris,
		"ground_pop", s.GroundPop,
		"charge", s.Charge,
		"spawns", s.Spawns,
		"kills", s.Kills,
		"enemy_kills", s.EnemyKills,
		"player_deaths", s.PlayerDeaths,
		"enemy_energy_mean", s.EnemyEnergyMean,
		"enemy_energy_p50", s.EnemyEnergyP50,
		"enemy_energy_max", s.EnemyEnergyMax,
	)
}
