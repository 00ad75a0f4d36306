package strategy

import (
	"math"
	"slices"

	"github.com/lox/war0/internal/game"
)

const (
	lostDiff   = -25 // below this a lane is conceded
	secureDiff = 25  // above this a lane is considered won

	snipeCard = 8 // own card value worth spending on the second lane

	// Assumed card values when a peek finds the deck empty.
	emptyOwnCard = 5
	averageCard  = 6
)

// laneEval is one lane seen from one side.
type laneEval struct {
	lane   game.Lane
	diff   int
	mine   int
	theirs int
}

func (e laneEval) lost() bool   { return e.diff < lostDiff }
func (e laneEval) secure() bool { return e.diff > secureDiff }

type board [game.NumLanes]laneEval

func evaluate(v game.View, side game.Side) board {
	var b board
	for _, l := range game.Lanes {
		ls := v.Lane(l)
		b[l] = laneEval{
			lane:   l,
			diff:   ls.Diff(side),
			mine:   ls.Cards[side],
			theirs: ls.Cards[side.Opponent()],
		}
	}
	return b
}

// mirror returns the board as the opponent sees it.
func (b board) mirror() board {
	var m board
	for i, e := range b {
		m[i] = laneEval{lane: e.lane, diff: -e.diff, mine: e.theirs, theirs: e.mine}
	}
	return m
}

func (b board) diffs() [game.NumLanes]int {
	var d [game.NumLanes]int
	for i, e := range b {
		d[i] = e.diff
	}
	return d
}

// playable returns the lanes that are not lost, best diff first. Equal diffs
// keep board order.
func (b board) playable() []laneEval {
	var out []laneEval
	for _, e := range b {
		if !e.lost() {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(x, y laneEval) int { return y.diff - x.diff })
	return out
}

// leastBad returns the lane with the highest diff, first in board order on ties.
func (b board) leastBad() laneEval {
	best := b[0]
	for _, e := range b[1:] {
		if e.diff > best.diff {
			best = e
		}
	}
	return best
}

// selection is the outcome of the Pro target rule.
type selection struct {
	lane     game.Lane
	reason   string
	playable []laneEval
	// open is set when two or more targets exist and neither the undefended
	// nor the secure shortcut fired. Higher tiers refine only this case.
	open bool
}

func (s selection) best() laneEval   { return s.playable[0] }
func (s selection) second() laneEval { return s.playable[1] }

// candidates returns up to the top three playable lanes.
func (s selection) candidates() []laneEval {
	return s.playable[:min(3, len(s.playable))]
}

// selectTarget applies the Pro rule to a board. Every tier that needs "what
// would a Pro player do here" calls this, including the Counter tier's model
// of its opponent.
func selectTarget(b board) selection {
	playable := b.playable()
	if len(playable) == 0 {
		return selection{lane: b.leastBad().lane, reason: "all lanes lost, conceding least-bad lane"}
	}

	targets := playable[:min(2, len(playable))]
	sel := selection{playable: playable}
	switch {
	case len(targets) == 0:
		sel.lane, sel.reason = game.Center, "no target, defaulting to center"
	case len(targets) == 1:
		sel.lane, sel.reason = targets[0].lane, "only playable lane"
	case targets[1].theirs == 0:
		sel.lane, sel.reason = targets[1].lane, "second lane undefended"
	case targets[0].secure():
		sel.lane, sel.reason = targets[1].lane, "best lane secure, reinforcing second"
	default:
		sel.lane, sel.reason, sel.open = targets[1].lane, "balancing second-best lane", true
	}
	return sel
}

// secondLargest scores a hypothetical board by its second-best lane diff, the
// margin of the weaker of the two lanes a side needs to win.
func secondLargest(d [game.NumLanes]int) int {
	s := d
	slices.Sort(s[:])
	return s[game.NumLanes-2]
}

func peekValue(v game.View, side game.Side, n, fallback int) int {
	if c, ok := v.Peek(side, n); ok {
		return c.Value
	}
	return fallback
}

const minScore = math.MinInt
