package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/war0/internal/config"
	"github.com/lox/war0/internal/report"
	"github.com/lox/war0/internal/simulator"
)

// Globals are the flags shared by every command. Zero values leave the
// config file setting in place.
type Globals struct {
	Config     string `short:"c" default:"war0.hcl" help:"HCL config file (missing file uses defaults)"`
	Iterations int    `short:"n" help:"Deals per match (overrides config)"`
	Seed       int64  `help:"Run seed (overrides config)"`
	Workers    int    `short:"w" help:"Parallel workers (overrides config)"`
	Duplicate  bool   `help:"Replay every deal with seats swapped"`
	Debug      bool   `help:"Enable debug logging, including every lane decision"`
	NoColor    bool   `help:"Disable colored output"`
	NoProgress bool   `help:"Hide the progress bar"`

	stdout io.Writer
	stderr io.Writer
	clock  quartz.Clock
}

func (g *Globals) out() io.Writer {
	if g.stdout == nil {
		return os.Stdout
	}
	return g.stdout
}

func (g *Globals) errOut() io.Writer {
	if g.stderr == nil {
		return os.Stderr
	}
	return g.stderr
}

// load reads the config file and applies the command line overrides.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if g.Iterations != 0 {
		cfg.Simulation.Iterations = g.Iterations
	}
	if g.Seed != 0 {
		cfg.Simulation.Seed = g.Seed
	}
	if g.Workers != 0 {
		cfg.Simulation.Workers = g.Workers
	}
	if g.Duplicate {
		cfg.Simulation.Duplicate = true
	}
	if g.Debug {
		cfg.LogLevel = "debug"
	}
	if g.NoColor {
		cfg.Report.Color = false
	}
	if g.NoProgress {
		cfg.Report.Progress = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (g *Globals) logger(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(g.errOut(), log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		Prefix:          "war0",
	})
}

func (g *Globals) printer(cfg *config.Config) *report.Printer {
	return report.New(g.out(), cfg.Report.Color)
}

// simulator builds a simulator from the config. iterations overrides the
// configured deal count when positive.
func (g *Globals) simulator(cfg *config.Config, logger *log.Logger, iterations int) *simulator.Simulator {
	if iterations <= 0 {
		iterations = cfg.Simulation.Iterations
	}
	sc := simulator.Config{
		Iterations: iterations,
		Seed:       cfg.Simulation.Seed,
		Workers:    cfg.Simulation.Workers,
		Duplicate:  cfg.Simulation.Duplicate,
		Logger:     logger,
	}
	// Debug logs every decision, which a redrawn bar would garble.
	if cfg.Report.Progress && cfg.Level() > log.DebugLevel {
		clock := g.clock
		if clock == nil {
			clock = quartz.NewReal()
		}
		sc.Progress = report.NewProgressBar(g.errOut(), clock, cfg.Report.Color)
	}
	return simulator.New(sc)
}
