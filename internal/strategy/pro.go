package strategy

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/war0/internal/game"
)

// ProStrategy evaluates every lane, concedes lanes that are lost and plays
// the second-best remaining lane so two lanes stay competitive.
type ProStrategy struct{ base }

func (s *ProStrategy) Difficulty() Difficulty { return Pro }

func (s *ProStrategy) Decide(v game.View, side game.Side, _ *rand.Rand) Decision {
	sel := selectTarget(evaluate(v, side))
	return s.decide(v, side, sel.lane, sel.reason)
}

// HardStrategy is Pro plus a peek at its own next card, used to rescue a
// trailing best lane, sweep a third lane or snipe with a high card.
type HardStrategy struct{ base }

func (s *HardStrategy) Difficulty() Difficulty { return HardPlus }

func (s *HardStrategy) Decide(v game.View, side game.Side, _ *rand.Rand) Decision {
	sel := selectTarget(evaluate(v, side))
	if !sel.open {
		return s.decide(v, side, sel.lane, sel.reason)
	}

	card := peekValue(v, side, 0, emptyOwnCard)
	best, second := sel.best(), sel.second()

	if best.diff < 0 {
		return s.decide(v, side, best.lane, "rescuing trailing best lane")
	}
	if second.diff > 0 && len(sel.playable) > 2 {
		if third := sel.playable[2]; third.diff+card > 0 {
			return s.decide(v, side, third.lane, fmt.Sprintf("sweeping third lane with %d", card))
		}
	}
	if card >= snipeCard {
		return s.decide(v, side, second.lane, fmt.Sprintf("sniping second lane with %d", card))
	}
	return s.decide(v, side, second.lane, sel.reason)
}
