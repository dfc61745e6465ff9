package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/barrage/config"
)

func TestParamVectorNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	def := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(def))
	for i := range def {
		if math.Abs(back[i]-def[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, def[i], back[i])
		}
	}
}

func TestParamVectorDefaultsMatchConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	got := pv.ExtractFromConfig(cfg)
	def := pv.DefaultVector()
	for i := range def {
		if got[i] != def[i] {
			t.Errorf("%s: config %v, default %v", pv.Specs[i].Name, got[i], def[i])
		}
	}
}

func TestApplyToConfigClampsAndRounds(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	pv := NewParamVector()
	pv.ApplyToConfig(cfg, []float64{1000, -10, 99.6, 0.5})

	want := config.AutopilotConfig{Y: 470, Margin: 0, Period: 100, AltCharge: 0.5}
	if cfg.Autopilot != want {
		t.Errorf("autopilot = %+v, want %+v", cfg.Autopilot, want)
	}
}
