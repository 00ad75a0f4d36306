package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/war0/internal/strategy"
)

// Config represents the complete war0 configuration
type Config struct {
	LogLevel   string
	Simulation Simulation
	Report     Report
	Matchups   []Matchup
}

// Simulation contains the defaults for every match
type Simulation struct {
	Iterations int
	Seed       int64
	Workers    int
	Duplicate  bool
	Tiers      []string // tiers of the matrix command
}

// Report controls terminal output
type Report struct {
	Color    bool
	Progress bool
}

// Matchup is a named match run by the run command
type Matchup struct {
	Name       string
	A          string
	B          string
	Iterations int // 0 uses the simulation default
}

// fileConfig mirrors the HCL layout. Pointer fields are optional attributes
// that fall back to the defaults when absent.
type fileConfig struct {
	LogLevel   *string          `hcl:"log_level,optional"`
	Simulation *fileSimulation  `hcl:"simulation,block"`
	Report     *fileReport      `hcl:"report,block"`
	Matchups   []fileMatchupDef `hcl:"matchup,block"`
}

type fileSimulation struct {
	Iterations *int     `hcl:"iterations,optional"`
	Seed       *int64   `hcl:"seed,optional"`
	Workers    *int     `hcl:"workers,optional"`
	Duplicate  *bool    `hcl:"duplicate,optional"`
	Tiers      []string `hcl:"tiers,optional"`
}

type fileReport struct {
	Color    *bool `hcl:"color,optional"`
	Progress *bool `hcl:"progress,optional"`
}

type fileMatchupDef struct {
	Name       string `hcl:"name,label"`
	A          string `hcl:"a"`
	B          string `hcl:"b"`
	Iterations *int   `hcl:"iterations,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Simulation: Simulation{
			Iterations: 10000,
			Seed:       1,
			Workers:    runtime.NumCPU(),
			Tiers:      tierNames(strategy.Tiers),
		},
		Report: Report{
			Color:    true,
			Progress: true,
		},
	}
}

func tierNames(tiers []strategy.Difficulty) []string {
	names := make([]string, len(tiers))
	for i, t := range tiers {
		names[i] = t.String()
	}
	return names
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return fc.apply(Default()), nil
}

// apply overlays the values present in the file onto cfg.
func (fc *fileConfig) apply(cfg *Config) *Config {
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if sim := fc.Simulation; sim != nil {
		if sim.Iterations != nil {
			cfg.Simulation.Iterations = *sim.Iterations
		}
		if sim.Seed != nil {
			cfg.Simulation.Seed = *sim.Seed
		}
		if sim.Workers != nil {
			cfg.Simulation.Workers = *sim.Workers
		}
		if sim.Duplicate != nil {
			cfg.Simulation.Duplicate = *sim.Duplicate
		}
		if len(sim.Tiers) > 0 {
			cfg.Simulation.Tiers = sim.Tiers
		}
	}
	if rep := fc.Report; rep != nil {
		if rep.Color != nil {
			cfg.Report.Color = *rep.Color
		}
		if rep.Progress != nil {
			cfg.Report.Progress = *rep.Progress
		}
	}
	for _, m := range fc.Matchups {
		mu := Matchup{Name: m.Name, A: m.A, B: m.B}
		if m.Iterations != nil {
			mu.Iterations = *m.Iterations
		}
		cfg.Matchups = append(cfg.Matchups, mu)
	}
	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Simulation.Iterations < 0 {
		return fmt.Errorf("simulation: iterations must not be negative: %d", c.Simulation.Iterations)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation: workers must not be negative: %d", c.Simulation.Workers)
	}
	if _, err := c.MatrixTiers(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	seen := make(map[string]bool)
	for _, m := range c.Matchups {
		if seen[m.Name] {
			return fmt.Errorf("matchup %s: defined more than once", m.Name)
		}
		seen[m.Name] = true
		if _, _, err := m.Tiers(); err != nil {
			return fmt.Errorf("matchup %s: %w", m.Name, err)
		}
		if m.Iterations < 0 {
			return fmt.Errorf("matchup %s: iterations must not be negative: %d", m.Name, m.Iterations)
		}
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// MatrixTiers parses the configured matrix tiers.
func (c *Config) MatrixTiers() ([]strategy.Difficulty, error) {
	tiers := make([]strategy.Difficulty, 0, len(c.Simulation.Tiers))
	for _, name := range c.Simulation.Tiers {
		d, err := strategy.ParseDifficulty(name)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, d)
	}
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers configured", strategy.ErrUnknownDifficulty)
	}
	return tiers, nil
}

// GetMatchup returns a matchup by name
func (c *Config) GetMatchup(name string) *Matchup {
	for i := range c.Matchups {
		if c.Matchups[i].Name == name {
			return &c.Matchups[i]
		}
	}
	return nil
}

// Tiers parses both sides of the matchup.
func (m Matchup) Tiers() (a, b strategy.Difficulty, err error) {
	if a, err = strategy.ParseDifficulty(m.A); err != nil {
		return a, b, err
	}
	b, err = strategy.ParseDifficulty(m.B)
	return a, b, err
}

// IterationsOr returns the matchup's own iteration count, or def when unset.
func (m Matchup) IterationsOr(def int) int {
	if m.Iterations > 0 {
		return m.Iterations
	}
	return def
}
