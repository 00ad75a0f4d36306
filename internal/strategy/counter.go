package strategy

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/war0/internal/game"
)

// CounterStrategy is an elevated-information tier. On top of the Pro
// shortcuts it peeks both its own and the opponent's next card, predicts the
// opponent's lane by assuming it plays Pro, and picks the candidate lane whose
// resulting board has the best second-largest diff.
type CounterStrategy struct{ base }

func (s *CounterStrategy) Difficulty() Difficulty { return Counter }

func (s *CounterStrategy) Decide(v game.View, side game.Side, _ *rand.Rand) Decision {
	b := evaluate(v, side)
	sel := selectTarget(b)
	if !sel.open {
		return s.decide(v, side, sel.lane, sel.reason)
	}

	mine := peekValue(v, side, 0, emptyOwnCard)
	theirs := peekValue(v, side.Opponent(), 0, averageCard)
	predicted := selectTarget(b.mirror()).lane

	bestLane, bestScore := sel.second().lane, minScore
	for _, c := range sel.candidates() {
		d := b.diffs()
		d[c.lane] += mine
		d[predicted] -= theirs
		if score := secondLargest(d); score > bestScore {
			bestLane, bestScore = c.lane, score
		}
	}
	return s.decide(v, side, bestLane,
		fmt.Sprintf("countering predicted %s (%d vs %d), margin %d", predicted, mine, theirs, bestScore))
}

// LookaheadStrategy peeks its own next two cards and searches both of its
// next placements, ignoring the opponent.
type LookaheadStrategy struct{ base }

func (s *LookaheadStrategy) Difficulty() Difficulty { return Lookahead }

func (s *LookaheadStrategy) Decide(v game.View, side game.Side, _ *rand.Rand) Decision {
	b := evaluate(v, side)
	sel := selectTarget(b)
	if !sel.open {
		return s.decide(v, side, sel.lane, sel.reason)
	}

	first := peekValue(v, side, 0, emptyOwnCard)
	next := peekValue(v, side, 1, averageCard)
	candidates := sel.candidates()

	bestLane, bestScore := sel.second().lane, minScore
	for _, c1 := range candidates {
		d := b.diffs()
		d[c1.lane] += first

		branch := minScore
		for _, c2 := range candidates {
			d2 := d
			d2[c2.lane] += next
			branch = max(branch, secondLargest(d2))
		}
		if branch > bestScore {
			bestLane, bestScore = c1.lane, branch
		}
	}
	return s.decide(v, side, bestLane, fmt.Sprintf("two-card lookahead (%d, %d), margin %d", first, next, bestScore))
}
