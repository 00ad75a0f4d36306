package strategy

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/war0/internal/game"
)

// Decision is a chosen lane with a human-readable explanation.
type Decision struct {
	Lane      game.Lane
	Reasoning string
}

// Strategy picks a lane for one side. Implementations read the view and never
// modify it; rng is the only source of randomness they may use.
type Strategy interface {
	Difficulty() Difficulty
	Decide(v game.View, side game.Side, rng *rand.Rand) Decision
}

// New returns the strategy for a difficulty tier.
func New(d Difficulty, logger *log.Logger) (Strategy, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := base{logger: logger.With("tier", d.String())}
	switch d {
	case Random:
		return &RandomStrategy{b}, nil
	case Easy:
		return &EasyStrategy{b}, nil
	case Pro:
		return &ProStrategy{b}, nil
	case HardPlus:
		return &HardStrategy{b}, nil
	case Counter:
		return &CounterStrategy{b}, nil
	case Lookahead:
		return &LookaheadStrategy{b}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
}

type base struct {
	logger *log.Logger
}

func (b base) decide(v game.View, side game.Side, lane game.Lane, reasoning string) Decision {
	b.logger.Debug("lane chosen", "round", v.Round()+1, "side", side, "lane", lane, "reason", reasoning)
	return Decision{Lane: lane, Reasoning: reasoning}
}

// RandomStrategy picks a lane uniformly at random.
type RandomStrategy struct{ base }

func (s *RandomStrategy) Difficulty() Difficulty { return Random }

func (s *RandomStrategy) Decide(v game.View, side game.Side, rng *rand.Rand) Decision {
	lane := game.Lanes[rng.IntN(game.NumLanes)]
	return s.decide(v, side, lane, "random lane")
}

// EasyStrategy spreads its first cards two per lane and stays out of lanes it
// is already losing badly. Once every lane holds two of its cards it plays
// at random.
type EasyStrategy struct{ base }

const (
	easyGiveUpDiff = -30
	easyLaneCards  = 2
)

func (s *EasyStrategy) Difficulty() Difficulty { return Easy }

func (s *EasyStrategy) Decide(v game.View, side game.Side, rng *rand.Rand) Decision {
	var candidates, withSpace []game.Lane
	for _, l := range game.Lanes {
		ls := v.Lane(l)
		if ls.Cards[side] >= easyLaneCards {
			continue
		}
		withSpace = append(withSpace, l)
		if ls.Diff(side) > easyGiveUpDiff {
			candidates = append(candidates, l)
		}
	}

	switch {
	case len(candidates) > 0:
		return s.decide(v, side, candidates[rng.IntN(len(candidates))], "open lane not yet lost")
	case len(withSpace) > 0:
		return s.decide(v, side, withSpace[rng.IntN(len(withSpace))], "open lane, all others full")
	}
	return s.decide(v, side, game.Lanes[rng.IntN(game.NumLanes)], "every lane full, random lane")
}
