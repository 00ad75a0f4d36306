package simulator

import (
	"context"
	"fmt"

	"github.com/lox/war0/internal/statistics"
	"github.com/lox/war0/internal/strategy"
)

// Matrix holds one match per ordered pair of tiers. Cells[i][j] is Tiers[i]
// seated as P1 against Tiers[j].
type Matrix struct {
	Tiers []strategy.Difficulty
	Cells [][]*statistics.MatchStats
}

// Get returns the match between a and b, or nil when either tier is absent.
func (m *Matrix) Get(a, b strategy.Difficulty) *statistics.MatchStats {
	i, j := m.index(a), m.index(b)
	if i < 0 || j < 0 {
		return nil
	}
	return m.Cells[i][j]
}

func (m *Matrix) index(d strategy.Difficulty) int {
	for i, t := range m.Tiers {
		if t == d {
			return i
		}
	}
	return -1
}

// RunMatrix plays every ordered pair of tiers, mirror matches included. All
// cells share the run seed, so every pairing sees the same deals.
func (s *Simulator) RunMatrix(ctx context.Context, tiers []strategy.Difficulty) (*Matrix, error) {
	for _, t := range tiers {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %d", strategy.ErrUnknownDifficulty, int(t))
		}
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	m := &Matrix{
		Tiers: append([]strategy.Difficulty(nil), tiers...),
		Cells: make([][]*statistics.MatchStats, len(tiers)),
	}
	for i, a := range tiers {
		m.Cells[i] = make([]*statistics.MatchStats, len(tiers))
		for j, b := range tiers {
			stats, err := s.RunTiers(ctx, a, b)
			if err != nil {
				return nil, fmt.Errorf("%s vs %s: %w", a, b, err)
			}
			m.Cells[i][j] = stats
		}
	}
	return m, nil
}
