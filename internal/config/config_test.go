package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/war0/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "war0.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10000, cfg.Simulation.Iterations)
	assert.Equal(t, runtime.NumCPU(), cfg.Simulation.Workers)
	assert.Equal(t, []string{"RANDOM", "EASY", "PRO", "HARD+"}, cfg.Simulation.Tiers)
	assert.Equal(t, log.InfoLevel, cfg.Level())
	assert.True(t, cfg.Report.Color)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Full(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

simulation {
  iterations = 2500
  seed       = 99
  workers    = 2
  duplicate  = true
  tiers      = ["pro", "hard+", "counter"]
}

report {
  color    = false
  progress = false
}

matchup "pro-vs-easy" {
  a = "PRO"
  b = "EASY"
}

matchup "hard-mirror" {
  a          = "HARD+"
  b          = "HARD+"
  iterations = 500
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, Simulation{
		Iterations: 2500,
		Seed:       99,
		Workers:    2,
		Duplicate:  true,
		Tiers:      []string{"pro", "hard+", "counter"},
	}, cfg.Simulation)
	assert.Equal(t, Report{}, cfg.Report)

	tiers, err := cfg.MatrixTiers()
	require.NoError(t, err)
	assert.Equal(t, []strategy.Difficulty{strategy.Pro, strategy.HardPlus, strategy.Counter}, tiers)

	require.Len(t, cfg.Matchups, 2)
	m := cfg.GetMatchup("hard-mirror")
	require.NotNil(t, m)
	assert.Equal(t, 500, m.IterationsOr(cfg.Simulation.Iterations))
	assert.Equal(t, 2500, cfg.GetMatchup("pro-vs-easy").IterationsOr(cfg.Simulation.Iterations))
	assert.Nil(t, cfg.GetMatchup("nope"))

	a, b, err := cfg.GetMatchup("pro-vs-easy").Tiers()
	require.NoError(t, err)
	assert.Equal(t, strategy.Pro, a)
	assert.Equal(t, strategy.Easy, b)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
simulation {
  seed = 7
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.Simulation.Seed = 7
	assert.Equal(t, want, cfg)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, `simulation {`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse HCL file")
}

func TestLoad_DecodeError(t *testing.T) {
	path := writeConfig(t, `
matchup "missing-b" {
  a = "PRO"
}
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"negative iterations", func(c *Config) { c.Simulation.Iterations = -1 }, "iterations must not be negative"},
		{"negative workers", func(c *Config) { c.Simulation.Workers = -1 }, "workers must not be negative"},
		{"unknown tier", func(c *Config) { c.Simulation.Tiers = []string{"PRO", "GOD"} }, "unknown difficulty"},
		{"no tiers", func(c *Config) { c.Simulation.Tiers = nil }, "no tiers configured"},
		{"duplicate matchup", func(c *Config) {
			c.Matchups = []Matchup{{Name: "x", A: "PRO", B: "EASY"}, {Name: "x", A: "PRO", B: "EASY"}}
		}, "defined more than once"},
		{"bad matchup tier", func(c *Config) {
			c.Matchups = []Matchup{{Name: "x", A: "PRO", B: "MEDIUM"}}
		}, "matchup x"},
		{"negative matchup iterations", func(c *Config) {
			c.Matchups = []Matchup{{Name: "x", A: "PRO", B: "EASY", Iterations: -3}}
		}, "iterations must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
