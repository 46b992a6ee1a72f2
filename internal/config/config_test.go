package config

import (
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FAIR_ROUNDS", "FAIR_TOLERANCE", "FAIR_SEED",
		"FAIR_SESSION_SIZE", "FAIR_OUTPUT_DIR", "FAIR_PRESET",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.Rounds != 1_000_000 {
		t.Errorf("rounds %d", cfg.Simulation.Rounds)
	}
	if cfg.Simulation.Tolerance != 0.001 {
		t.Errorf("tolerance %v", cfg.Simulation.Tolerance)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("seed %d", cfg.Simulation.Seed)
	}
	if cfg.Simulation.SessionSize != 1000 {
		t.Errorf("session size %d", cfg.Simulation.SessionSize)
	}
	if cfg.Report.OutputDir != "." || cfg.Report.Preset != "v1_defaults" {
		t.Errorf("report config %+v", cfg.Report)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FAIR_ROUNDS", "500000")
	t.Setenv("FAIR_TOLERANCE", "0.01")
	t.Setenv("FAIR_SEED", "7")
	t.Setenv("FAIR_PRESET", "v2_defaults")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.Rounds != 500_000 || cfg.Simulation.Tolerance != 0.01 || cfg.Simulation.Seed != 7 {
		t.Errorf("overrides not applied: %+v", cfg.Simulation)
	}
	if cfg.Report.Preset != "v2_defaults" {
		t.Errorf("preset %q", cfg.Report.Preset)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("FAIR_ROUNDS", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("negative rounds accepted")
	}

	clearEnv(t)
	t.Setenv("FAIR_TOLERANCE", "1.5")
	if _, err := Load(); err == nil {
		t.Fatal("tolerance above one accepted")
	}
}

func TestLoadIgnoresUnparseable(t *testing.T) {
	clearEnv(t)
	t.Setenv("FAIR_ROUNDS", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.Rounds != 1_000_000 {
		t.Errorf("rounds %d, want the default", cfg.Simulation.Rounds)
	}
}
