package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase names for the simulation step.
const (
	PhaseUpdate    = "update"
	PhaseCollide   = "collide"
	PhaseDraw      = "draw"
	PhaseSpawn     = "spawn"
	PhaseTelemetry = "telemetry"
)

const numPhases = 5

// phaseOrder lists phases in frame order; a sample's phase slots follow it.
var phaseOrder = [numPhases]string{PhaseUpdate, PhaseCollide, PhaseDraw, PhaseSpawn, PhaseTelemetry}

// Phases returns the phase names in frame order.
func Phases() []string {
	out := make([]string, numPhases)
	copy(out, phaseOrder[:])
	return out
}

func phaseIndex(name string) int {
	for i, p := range phaseOrder {
		if p == name {
			return i
		}
	}
	return -1
}

// tickSample is the cost of one tick. A phase entered several times in a
// tick accumulates into one slot.
type tickSample struct {
	total  time.Duration
	phases [numPhases]time.Duration
	passes int
}

// PerfCollector times frame phases and counts collision passes over the
// last window ticks. It implements systems.PhaseTimer.
type PerfCollector struct {
	now func() time.Time

	ring  []tickSample
	next  int
	count int

	cur        tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      int

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over window ticks.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		now:   time.Now,
		ring:  make([]tickSample, window),
		phase: -1,
	}
}

// StartTick begins a new tick sample.
func (p *PerfCollector) StartTick() {
	p.cur = tickSample{}
	p.tickStart = p.now()
	p.phase = -1
}

// StartPhase closes the running phase and opens name. Time spent in a
// phase outside phaseOrder still counts toward the tick total.
func (p *PerfCollector) StartPhase(name string) {
	t := p.now()
	p.closePhase(t)
	p.phase = phaseIndex(name)
	p.phaseStart = t
}

// RecordPasses adds the collision passes a resolve took this tick.
func (p *PerfCollector) RecordPasses(n int) {
	p.cur.passes += n
}

// EndTick closes the running phase and stores the sample.
func (p *PerfCollector) EndTick() {
	t := p.now()
	p.closePhase(t)
	p.cur.total = t.Sub(p.tickStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	if p.count < len(p.ring) {
		p.count++
	}
}

func (p *PerfCollector) closePhase(t time.Time) {
	if p.phase >= 0 {
		p.cur.phases[p.phase] += t.Sub(p.phaseStart)
	}
	p.phase = -1
}

// RecordFrame measures the interval between presented frames.
func (p *PerfCollector) RecordFrame() {
	t := p.now()
	if !p.lastFrame.IsZero() {
		p.frame = t.Sub(p.lastFrame)
	}
	p.lastFrame = t
}

// PhaseTiming is one phase's average cost over the window.
type PhaseTiming struct {
	Name string
	Avg  time.Duration
	Pct  float64 // share of the average tick
}

// PerfStats summarizes the collector window.
type PerfStats struct {
	Ticks          int
	AvgTick        time.Duration
	MaxTick        time.Duration
	TicksPerSecond float64

	// Phases in frame order.
	Phases []PhaseTiming

	// Collision passes per tick; a pass that removes nothing ends a resolve,
	// so a quiet tick costs exactly one.
	AvgPasses float64
	MaxPasses int

	FrameDuration time.Duration
	FPS           float64
}

// Phase returns the timing for name, or a zero timing.
func (s PerfStats) Phase(name string) PhaseTiming {
	for _, pt := range s.Phases {
		if pt.Name == name {
			return pt
		}
	}
	return PhaseTiming{Name: name}
}

// Stats aggregates the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		Ticks:         p.count,
		FrameDuration: p.frame,
		Phases:        make([]PhaseTiming, numPhases),
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	for i, name := range phaseOrder {
		s.Phases[i].Name = name
	}
	if p.count == 0 {
		return s
	}

	totals := make([]float64, p.count)
	passes := make([]float64, p.count)
	var phaseCols [numPhases][]float64
	for i := range phaseCols {
		phaseCols[i] = make([]float64, p.count)
	}
	for i, smp := range p.ring[:p.count] {
		totals[i] = float64(smp.total)
		passes[i] = float64(smp.passes)
		for ph, d := range smp.phases {
			phaseCols[ph][i] = float64(d)
		}
	}

	avg := stat.Mean(totals, nil)
	s.AvgTick = time.Duration(avg)
	s.MaxTick = time.Duration(floats.Max(totals))
	s.AvgPasses = stat.Mean(passes, nil)
	s.MaxPasses = int(floats.Max(passes))
	if avg > 0 {
		s.TicksPerSecond = float64(time.Second) / avg
	}
	for i := range s.Phases {
		pa := stat.Mean(phaseCols[i], nil)
		s.Phases[i].Avg = time.Duration(pa)
		if avg > 0 {
			s.Phases[i].Pct = pa / avg * 100
		}
	}
	return s
}

// LogStats logs the window at debug level.
func (s PerfStats) LogStats() {
	slog.Debug("perf", "window", s)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTick.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTick.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
		slog.Float64("avg_passes", s.AvgPasses),
		slog.Int("max_passes", s.MaxPasses),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for _, pt := range s.Phases {
		if pt.Pct > 0.1 {
			attrs = append(attrs, slog.Float64(pt.Name+"_pct", float64(int(pt.Pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfRow is one perf.csv record.
type PerfRow struct {
	WindowEnd    int32   `csv:"window_end"`
	Ticks        int     `csv:"ticks"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	AvgPasses    float64 `csv:"avg_collide_passes"`
	MaxPasses    int     `csv:"max_collide_passes"`
	UpdatePct    float64 `csv:"update_pct"`
	CollidePct   float64 `csv:"collide_pct"`
	DrawPct      float64 `csv:"draw_pct"`
	SpawnPct     float64 `csv:"spawn_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// Row flattens s for perf.csv.
func (s PerfStats) Row(windowEnd int32) PerfRow {
	return PerfRow{
		WindowEnd:    windowEnd,
		Ticks:        s.Ticks,
		AvgTickUS:    s.AvgTick.Microseconds(),
		MaxTickUS:    s.MaxTick.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		AvgPasses:    s.AvgPasses,
		MaxPasses:    s.MaxPasses,
		UpdatePct:    s.Phase(PhaseUpdate).Pct,
		CollidePct:   s.Phase(PhaseCollide).Pct,
		DrawPct:      s.Phase(PhaseDraw).Pct,
		SpawnPct:     s.Phase(PhaseSpawn).Pct,
		TelemetryPct: s.Phase(PhaseTelemetry).Pct,
	}
}
