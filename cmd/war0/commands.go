package main

import (
	"context"
	"fmt"

	"github.com/lox/war0/internal/randutil"
	"github.com/lox/war0/internal/simulator"
	"github.com/lox/war0/internal/strategy"
)

type MatrixCmd struct {
	Tiers string `help:"Comma separated tiers (default from config)"`
	All   bool   `help:"Include the experimental tiers"`
}

func (c *MatrixCmd) Run(g *Globals, ctx context.Context) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	var tiers []strategy.Difficulty
	switch {
	case c.Tiers != "":
		tiers, err = strategy.ParseDifficulties(c.Tiers)
	case c.All:
		tiers = strategy.AllTiers
	default:
		tiers, err = cfg.MatrixTiers()
	}
	if err != nil {
		return err
	}

	logger := g.logger(cfg)
	m, err := g.simulator(cfg, logger, 0).RunMatrix(ctx, tiers)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out(), g.printer(cfg).Matrix(m))
	return nil
}

type MatchCmd struct {
	A strategy.Difficulty `arg:"" help:"Tier seated as P1 (random, easy, pro, hard+, counter, lookahead)"`
	B strategy.Difficulty `arg:"" help:"Tier seated as P2"`
}

func (c *MatchCmd) Run(g *Globals, ctx context.Context) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	logger := g.logger(cfg)
	stats, err := g.simulator(cfg, logger, 0).RunTiers(ctx, c.A, c.B)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out(), g.printer(cfg).Match(stats))
	return nil
}

type ReplayCmd struct {
	A        strategy.Difficulty `arg:"" help:"Tier seated as P1"`
	B        strategy.Difficulty `arg:"" help:"Tier seated as P2"`
	Game     int                 `default:"0" help:"Index of the game within the run seed"`
	GameSeed int64               `help:"Seed of the game itself, as logged by a match (overrides --game)"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Game < 0 {
		return fmt.Errorf("game index must not be negative: %d", c.Game)
	}

	logger := g.logger(cfg)
	a, err := strategy.New(c.A, logger)
	if err != nil {
		return err
	}
	b, err := strategy.New(c.B, logger)
	if err != nil {
		return err
	}

	seed := c.GameSeed
	if seed == 0 {
		seed = randutil.GameSeed(cfg.Simulation.Seed, c.Game)
	}
	st, err := simulator.PlayGame(seed, a, b)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out(), g.printer(cfg).Replay(st, [2]string{c.A.String(), c.B.String()}, seed))
	return nil
}

type RunCmd struct {
	Names []string `arg:"" optional:"" help:"Matchups to run (default all)"`
}

func (c *RunCmd) Run(g *Globals, ctx context.Context) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}

	matchups := cfg.Matchups
	if len(c.Names) > 0 {
		matchups = nil
		for _, name := range c.Names {
			m := cfg.GetMatchup(name)
			if m == nil {
				return fmt.Errorf("matchup %q not found in %s", name, g.Config)
			}
			matchups = append(matchups, *m)
		}
	}
	if len(matchups) == 0 {
		return fmt.Errorf("no matchups defined in %s", g.Config)
	}

	logger := g.logger(cfg)
	p := g.printer(cfg)
	for _, m := range matchups {
		a, b, err := m.Tiers()
		if err != nil {
			return fmt.Errorf("matchup %s: %w", m.Name, err)
		}
		stats, err := g.simulator(cfg, logger, m.IterationsOr(cfg.Simulation.Iterations)).RunTiers(ctx, a, b)
		if err != nil {
			return fmt.Errorf("matchup %s: %w", m.Name, err)
		}
		fmt.Fprintln(g.out(), p.Match(stats))
	}
	return nil
}
