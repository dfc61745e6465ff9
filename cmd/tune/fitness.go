package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/barrage/config"
	"github.com/pthm-cable/barrage/sim"
	"github.com/pthm-cable/barrage/telemetry"
)

// FitnessEvaluator runs autopiloted headless sessions and scores them.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	statsWindow int

	mu          sync.Mutex
	lastResult  EvalResult // from the most recent Evaluate call
	bestFitness float64
}

// EvalResult aggregates one evaluation across seeds.
type EvalResult struct {
	Fitness      float64
	MeanScore    float64
	StdScore     float64
	PlayerDeaths float64 // mean per seed
	Quality      float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 500,
		bestFitness: math.Inf(1),
	}
}

// LastResult returns the aggregate of the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() EvalResult {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastResult
}

// runResult holds the results from a single simulation run.
type runResult struct {
	score       int
	windowStats []telemetry.WindowStats // collected via StatsCallback each window
	err         error
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negated mean final score, scaled by up to 20% for runs
// that lose fewer ships.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(x, s)
		}(i, seed)
	}
	wg.Wait()

	res := aggregate(results)

	fe.mu.Lock()
	if res.Fitness < fe.bestFitness {
		fe.bestFitness = res.Fitness
	}
	fe.lastResult = res
	fe.mu.Unlock()

	return res.Fitness
}

// aggregate folds per-seed runs into one result. Failed runs score zero.
func aggregate(results []runResult) EvalResult {
	if len(results) == 0 {
		return EvalResult{}
	}
	scores := make([]float64, len(results))
	deaths := make([]float64, len(results))
	qualities := make([]float64, len(results))
	for i, r := range results {
		if r.err != nil {
			continue
		}
		scores[i] = float64(r.score)
		deaths[i] = float64(totalDeaths(r.windowStats))
		qualities[i] = computeQuality(r.windowStats)
	}

	res := EvalResult{
		MeanScore:    stat.Mean(scores, nil),
		PlayerDeaths: stat.Mean(deaths, nil),
		Quality:      stat.Mean(qualities, nil),
	}
	if len(scores) > 1 {
		res.StdScore = stat.StdDev(scores, nil)
	}
	res.Fitness = -(res.MeanScore * (1.0 + 0.2*res.Quality))
	return res
}

// runSimulation executes a single headless session for maxTicks ticks.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) runResult {
	cfg := copyConfig(fe.baseConfig)
	fe.params.ApplyToConfig(cfg, x)

	var result runResult
	s, err := sim.NewSession(sim.Options{
		Seed:             seed,
		StatsWindowTicks: fe.statsWindow,
		StepsPerUpdate:   1,
		Autofire:         true,
		Config:           cfg,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	if err != nil {
		result.err = err
		return result
	}
	defer s.Close()

	for s.Tick() < fe.maxTicks {
		s.UpdateHeadless()
	}
	result.score = s.Registry().State.Score
	return result
}

// copyConfig creates a copy of base that a session may own.
func copyConfig(base *config.Config) *config.Config {
	cfg := *base
	cfg.Bookmarks.TierScores = append([]int(nil), base.Bookmarks.TierScores...)
	return &cfg
}

func totalDeaths(windows []telemetry.WindowStats) int {
	n := 0
	for _, w := range windows {
		n += w.PlayerDeaths
	}
	return n
}

// qualityWarmupWindows are skipped while the first wave forms.
const qualityWarmupWindows = 1

// computeQuality rates a run in [0, 1]: the share of windows after warmup
// in which no ship was lost, weighted with how steadily the score rose.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	clean := 0
	deltas := make([]float64, len(valid))
	for i, w := range valid {
		if w.PlayerDeaths == 0 {
			clean++
		}
		deltas[i] = float64(w.ScoreDelta)
	}
	survival := float64(clean) / float64(len(valid))

	steadiness := 0.0
	if mean := stat.Mean(deltas, nil); mean > 0 && len(deltas) > 1 {
		cv := stat.StdDev(deltas, nil) / mean
		steadiness = math.Exp(-cv * cv)
	}

	return clamp01(0.7*survival + 0.3*steadiness)
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
