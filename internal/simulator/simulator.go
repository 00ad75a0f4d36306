package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/war0/internal/deck"
	"github.com/lox/war0/internal/game"
	"github.com/lox/war0/internal/randutil"
	"github.com/lox/war0/internal/statistics"
	"github.com/lox/war0/internal/strategy"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidIterations = errors.New("iterations must not be negative")
	ErrInvalidWorkers    = errors.New("workers must not be negative")
)

// ProgressReporter receives match progress. OnGameComplete may be called
// concurrently from several workers.
type ProgressReporter interface {
	OnMatchStart(a, b string, games int)
	OnGameComplete(completed, total int)
	OnMatchComplete(stats *statistics.MatchStats)
}

// Config holds configuration for running simulations
type Config struct {
	Iterations int   // deals per match
	Seed       int64 // run seed, each deal derives its own
	Workers    int   // 0 or 1 plays sequentially
	Duplicate  bool  // replay every deal with seats swapped
	Logger     *log.Logger
	Progress   ProgressReporter
}

// Validate checks the configuration before any game is played.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, c.Iterations)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// Games returns the number of games a match plays.
func (c Config) Games() int {
	if c.Duplicate {
		return 2 * c.Iterations
	}
	return c.Iterations
}

// Simulator plays matches between strategies
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulator{config: config, logger: logger}
}

// Run plays a match with a seated as P1 and b as P2. Every deal gets a seed
// derived from the run seed and its index, so the result does not depend on
// the number of workers.
func (s *Simulator) Run(ctx context.Context, a, b strategy.Strategy) (*statistics.MatchStats, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	nameA, nameB := a.Difficulty().String(), b.Difficulty().String()
	stats := statistics.New(nameA, nameB)
	games := s.config.Games()
	results := make([]statistics.GameResult, games)

	s.logger.Info("Match started", "a", nameA, "b", nameB, "games", games, "seed", s.config.Seed, "workers", s.config.Workers)
	if s.config.Progress != nil {
		s.config.Progress.OnMatchStart(nameA, nameB, games)
	}
	start := time.Now()

	var completed atomic.Int64
	play := func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := s.playDeal(i, a, b)
		if err != nil {
			return err
		}
		results[i] = r
		if s.config.Progress != nil {
			s.config.Progress.OnGameComplete(int(completed.Add(1)), games)
		}
		return nil
	}

	if s.config.Workers <= 1 {
		for i := range results {
			if err := play(i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.config.Workers)
		for i := range results {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error { return play(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		// errgroup cancels gctx on the first error only, so a parent
		// cancellation that stopped scheduling must still be reported.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	// Fold in index order so the recent history is deterministic.
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	if s.config.Progress != nil {
		s.config.Progress.OnMatchComplete(stats)
	}
	s.logger.Info("Match finished",
		"a", nameA, "b", nameB,
		"record", fmt.Sprintf("%d-%d-%d", stats.WinsA, stats.WinsB, stats.Draws),
		"win_rate", fmt.Sprintf("%.3f", stats.WinRate()),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return stats, nil
}

// playDeal plays game i of a match. In duplicate mode odd games replay the
// previous deal with seats swapped.
func (s *Simulator) playDeal(i int, a, b strategy.Strategy) (statistics.GameResult, error) {
	deal, seat := i, statistics.SeatP1
	if s.config.Duplicate {
		deal = i / 2
		if i%2 == 1 {
			seat = statistics.SeatP2
		}
	}
	seed := randutil.GameSeed(s.config.Seed, deal)

	p1, p2 := a, b
	if seat == statistics.SeatP2 {
		p1, p2 = b, a
	}
	st, err := PlayGame(seed, p1, p2)
	if err != nil {
		return statistics.GameResult{}, fmt.Errorf("game %d (seed %d): %w", i, seed, err)
	}

	res := st.Result()
	sideA := game.P1
	if seat == statistics.SeatP2 {
		sideA = game.P2
	}
	outcome := statistics.Draw
	if winner, ok := res.Winner(); ok {
		if winner == sideA {
			outcome = statistics.WinA
		} else {
			outcome = statistics.WinB
		}
	}
	return statistics.GameResult{
		Outcome:  outcome,
		Seed:     seed,
		Seat:     seat,
		LanesWon: [2]int{res.LanesWon[sideA], res.LanesWon[sideA.Opponent()]},
		Rounds:   st.Round(),
	}, nil
}

// PlayGame plays one full game from seed. Both decks and every random
// decision come from the same seeded source, so a seed replays exactly.
func PlayGame(seed int64, p1, p2 strategy.Strategy) (*game.State, error) {
	rng := randutil.New(seed)
	st := game.New(deck.New(rng), deck.New(rng))
	for !st.IsOver() {
		// Both sides commit before either card is revealed.
		d1 := p1.Decide(st, game.P1, rng)
		d2 := p2.Decide(st, game.P2, rng)
		if !d1.Lane.Valid() {
			return nil, fmt.Errorf("%s chose %w %d", p1.Difficulty(), game.ErrInvalidLane, int(d1.Lane))
		}
		if !d2.Lane.Valid() {
			return nil, fmt.Errorf("%s chose %w %d", p2.Difficulty(), game.ErrInvalidLane, int(d2.Lane))
		}
		st.PlayRound(d1.Lane, d2.Lane)
	}
	return st, nil
}

// RunTiers builds strategies for two tiers and plays a match between them.
func (s *Simulator) RunTiers(ctx context.Context, a, b strategy.Difficulty) (*statistics.MatchStats, error) {
	sa, err := strategy.New(a, s.logger)
	if err != nil {
		return nil, err
	}
	sb, err := strategy.New(b, s.logger)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, sa, sb)
}

// Simulate is a convenience function returning the fraction of games tier a
// wins against tier b over iterations deals.
func Simulate(ctx context.Context, a, b strategy.Difficulty, iterations int, seed int64) (float64, error) {
	stats, err := New(Config{Iterations: iterations, Seed: seed}).RunTiers(ctx, a, b)
	if err != nil {
		return 0, err
	}
	return stats.WinRate(), nil
}
