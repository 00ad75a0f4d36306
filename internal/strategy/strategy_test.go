package strategy

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/war0/internal/deck"
	"github.com/lox/war0/internal/game"
	"github.com/lox/war0/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type move struct{ p1, p2 game.Lane }

const (
	L = game.Left
	C = game.Center
	R = game.Right
)

// play builds a game by playing fixed decks through the given moves. The
// decks must outlast the moves so the state is still live.
func play(t *testing.T, p1, p2 []int, moves ...move) *game.State {
	t.Helper()
	s := game.New(deck.FromValues(p1...), deck.FromValues(p2...))
	for _, m := range moves {
		require.True(t, s.PlayRound(m.p1, m.p2))
	}
	require.False(t, s.IsOver(), "fixture must leave cards to peek")
	require.NoError(t, s.Validate())
	return s
}

func newStrategy(t *testing.T, d Difficulty) Strategy {
	t.Helper()
	s, err := New(d, log.New(io.Discard))
	require.NoError(t, err)
	require.Equal(t, d, s.Difficulty())
	return s
}

func decide(t *testing.T, d Difficulty, s *game.State, side game.Side) Decision {
	t.Helper()
	return newStrategy(t, d).Decide(s, side, randutil.New(1))
}

func diffs(s *game.State, side game.Side) [3]int {
	var d [3]int
	for _, l := range game.Lanes {
		d[l] = s.Lane(l).Diff(side)
	}
	return d
}

// left +30 (secure), center -10, right +5, next P1 card 9.
func workedExample(t *testing.T) *game.State {
	return play(t,
		[]int{10, 10, 10, 5, 9, 9, 2, 2},
		[]int{5, 4, 6, 2, 2, 3, 2, 2},
		move{L, L}, move{L, C}, move{L, C}, move{L, R}, move{R, R},
	)
}

func TestWorkedExampleProAndHardAgree(t *testing.T) {
	s := workedExample(t)
	require.Equal(t, [3]int{30, -10, 5}, diffs(s, game.P1))
	next, _ := s.Peek(game.P1, 0)
	require.Equal(t, 9, next.Value)

	pro := decide(t, Pro, s, game.P1)
	hard := decide(t, HardPlus, s, game.P1)
	assert.Equal(t, game.Right, pro.Lane)
	assert.Equal(t, game.Right, hard.Lane)
	assert.Equal(t, pro.Lane, hard.Lane)
}

// left +8, center +4, right -3, one opponent card in every lane.
func sweepBoard(t *testing.T, p1Next, p2Next int) *game.State {
	s := play(t,
		[]int{10, 7, 2, p1Next, 2, 2},
		[]int{3, 5, 2, p2Next, 2, 2},
		move{L, C}, move{C, R}, move{R, L},
	)
	require.Equal(t, [3]int{8, 4, -3}, diffs(s, game.P1))
	return s
}

func TestProPlaysSecondBestLane(t *testing.T) {
	d := decide(t, Pro, sweepBoard(t, 5, 9), game.P1)
	assert.Equal(t, game.Center, d.Lane)
	assert.Equal(t, "balancing second-best lane", d.Reasoning)
}

func TestHardPlusHeuristics(t *testing.T) {
	tests := []struct {
		name   string
		state  func(t *testing.T) *game.State
		lane   game.Lane
		reason string
	}{
		{
			name:   "sweep third lane when the peeked card flips it",
			state:  func(t *testing.T) *game.State { return sweepBoard(t, 5, 9) },
			lane:   game.Right,
			reason: "sweeping",
		},
		{
			name:   "sweep takes priority over snipe",
			state:  func(t *testing.T) *game.State { return sweepBoard(t, 9, 9) },
			lane:   game.Right,
			reason: "sweeping",
		},
		{
			name:   "low card falls back to second",
			state:  func(t *testing.T) *game.State { return sweepBoard(t, 2, 9) },
			lane:   game.Center,
			reason: "balancing",
		},
		{
			name: "rescue a trailing best lane",
			state: func(t *testing.T) *game.State {
				s := play(t, []int{2, 2, 2, 3, 2, 2}, []int{5, 7, 10, 4, 2, 2},
					move{L, L}, move{C, C}, move{R, R})
				require.Equal(t, [3]int{-3, -5, -8}, diffs(s, game.P1))
				return s
			},
			lane:   game.Left,
			reason: "rescuing",
		},
		{
			name:   "snipe second lane with a high card",
			state:  func(t *testing.T) *game.State { return snipeBoard(t, 9) },
			lane:   game.Center,
			reason: "sniping",
		},
		{
			name:   "no snipe with a low card",
			state:  func(t *testing.T) *game.State { return snipeBoard(t, 3) },
			lane:   game.Center,
			reason: "balancing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decide(t, HardPlus, tt.state(t), game.P1)
			assert.Equal(t, tt.lane, d.Lane)
			assert.Contains(t, d.Reasoning, tt.reason)
		})
	}
}

// left +5, center -4, right -8.
func snipeBoard(t *testing.T, p1Next int) *game.State {
	s := play(t,
		[]int{7, 2, 2, p1Next, 2, 2},
		[]int{6, 10, 2, 4, 2, 2},
		move{L, C}, move{C, R}, move{R, L},
	)
	require.Equal(t, [3]int{5, -4, -8}, diffs(s, game.P1))
	return s
}

func TestShortcutsPrecedeHeuristics(t *testing.T) {
	// left +6, center +2 with no opponent cards, right -10.
	s := play(t, []int{8, 2, 9, 2}, []int{10, 2, 9, 2}, move{L, R}, move{C, L})
	require.Equal(t, [3]int{6, 2, -10}, diffs(s, game.P1))

	for _, d := range AllTiers[Pro:] {
		got := decide(t, d, s, game.P1)
		assert.Equal(t, game.Center, got.Lane, d.String())
		assert.Equal(t, "second lane undefended", got.Reasoning, d.String())
	}
}

func TestAllLanesLostConcedesLeastBad(t *testing.T) {
	var p1, p2 []int
	var moves []move
	for i := 0; i < 12; i++ {
		v := 2
		if i == 2 {
			v = 5
		}
		p1 = append(p1, v)
		p2 = append(p2, 10)
		l := game.Lanes[i%3]
		moves = append(moves, move{l, l})
	}
	s := play(t, append(p1, 2, 2), append(p2, 2, 2), moves...)
	require.Equal(t, [3]int{-32, -32, -29}, diffs(s, game.P1))

	for _, d := range AllTiers[Pro:] {
		got := decide(t, d, s, game.P1)
		assert.Equal(t, game.Right, got.Lane, d.String())
		assert.Contains(t, got.Reasoning, "all lanes lost", d.String())
	}
}

func TestSinglePlayableLane(t *testing.T) {
	s := play(t,
		[]int{2, 2, 2, 2, 2, 2, 2},
		[]int{10, 10, 10, 10, 10, 10, 2},
		move{R, L}, move{R, L}, move{R, L}, move{R, C}, move{R, C}, move{R, C},
	)
	require.Equal(t, [3]int{-30, -30, 12}, diffs(s, game.P1))

	for _, d := range AllTiers[Pro:] {
		got := decide(t, d, s, game.P1)
		assert.Equal(t, game.Right, got.Lane, d.String())
		assert.Equal(t, "only playable lane", got.Reasoning)
	}
}

func TestPerspectiveIsSymmetric(t *testing.T) {
	// The sweep board with the seats swapped, decided for P2.
	s := play(t,
		[]int{3, 5, 2, 9, 2, 2},
		[]int{10, 7, 2, 5, 2, 2},
		move{C, L}, move{R, C}, move{L, R},
	)
	require.Equal(t, [3]int{8, 4, -3}, diffs(s, game.P2))

	assert.Equal(t, game.Center, decide(t, Pro, s, game.P2).Lane)
	assert.Equal(t, game.Right, decide(t, HardPlus, s, game.P2).Lane)
	assert.Equal(t, game.Right, decide(t, Counter, s, game.P2).Lane)
}

func TestCounterUsesOpponentModel(t *testing.T) {
	// The opponent sees -8/-4/+3 and, playing Pro, reinforces center.
	assert.Equal(t, game.Center, selectTarget(evaluate(sweepBoard(t, 5, 9), game.P2)).lane)

	tests := []struct {
		name         string
		mine, theirs int
		lane         game.Lane
	}{
		// right: 8/-5/2 keeps a +2 second lane.
		{name: "big opponent card", mine: 5, theirs: 9, lane: game.Right},
		// center: 8/12/-3 beats right's 8/2/7.
		{name: "big own card", mine: 10, theirs: 2, lane: game.Center},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decide(t, Counter, sweepBoard(t, tt.mine, tt.theirs), game.P1)
			assert.Equal(t, tt.lane, d.Lane)
			assert.Contains(t, d.Reasoning, "predicted center")
		})
	}
}

func TestCounterAndMirrorAgreeWithSelectTarget(t *testing.T) {
	s := sweepBoard(t, 5, 9)
	fromP2 := selectTarget(evaluate(s, game.P2))
	mirrored := selectTarget(evaluate(s, game.P1).mirror())
	assert.Equal(t, fromP2.lane, mirrored.lane)
	assert.Equal(t, fromP2.reason, mirrored.reason)
}

func TestLookaheadSearchesTwoPlacements(t *testing.T) {
	// Next two P1 cards are 5 and 5. Left then center reaches 13/9/-3.
	s := play(t, []int{10, 7, 2, 5, 5, 2}, []int{3, 5, 2, 9, 2, 2},
		move{L, C}, move{C, R}, move{R, L})
	d := decide(t, Lookahead, s, game.P1)
	assert.Equal(t, game.Left, d.Lane)
	assert.Contains(t, d.Reasoning, "margin 9")
}

func TestStrategiesDoNotMutateState(t *testing.T) {
	s := sweepBoard(t, 5, 9)
	before := s.LaneStates()
	remaining := [2]int{s.Remaining(game.P1), s.Remaining(game.P2)}

	for _, d := range AllTiers {
		for _, side := range game.Sides {
			got := decide(t, d, s, side)
			assert.True(t, got.Lane.Valid())
		}
	}
	assert.Equal(t, before, s.LaneStates())
	assert.Equal(t, remaining, [2]int{s.Remaining(game.P1), s.Remaining(game.P2)})
	assert.Equal(t, 3, s.Round())
}

func TestDeterministicTiersIgnoreRNG(t *testing.T) {
	s := workedExample(t)
	for _, d := range AllTiers[Pro:] {
		st := newStrategy(t, d)
		want := st.Decide(s, game.P1, randutil.New(1))
		for seed := int64(2); seed < 20; seed++ {
			assert.Equal(t, want, st.Decide(s, game.P1, randutil.New(seed)), d.String())
		}
	}
}

func TestEasyAvoidsFullAndLostLanes(t *testing.T) {
	st := newStrategy(t, Easy)
	rng := randutil.New(3)

	// Center holds two P1 cards, left trails by 20.
	s := play(t, []int{2, 2, 2}, []int{10, 10, 2}, move{C, L}, move{C, L})
	seen := map[game.Lane]int{}
	for i := 0; i < 300; i++ {
		seen[st.Decide(s, game.P1, rng).Lane]++
	}
	assert.Zero(t, seen[game.Center])
	assert.Positive(t, seen[game.Left])
	assert.Positive(t, seen[game.Right])

	// Left trails by 40 and is the only lane with space left.
	s = play(t, []int{2, 2, 2, 2, 2}, []int{10, 10, 10, 10, 2},
		move{C, L}, move{C, L}, move{R, L}, move{R, L})
	for i := 0; i < 50; i++ {
		d := st.Decide(s, game.P1, rng)
		require.Equal(t, game.Left, d.Lane)
		assert.Equal(t, "open lane, all others full", d.Reasoning)
	}

	// Every lane full: any lane.
	s = play(t, []int{2, 2, 2, 2, 2, 2, 2}, []int{2, 2, 2, 2, 2, 2, 2},
		move{L, L}, move{L, L}, move{C, C}, move{C, C}, move{R, R}, move{R, R})
	seen = map[game.Lane]int{}
	for i := 0; i < 300; i++ {
		seen[st.Decide(s, game.P1, rng).Lane]++
	}
	assert.Len(t, seen, 3)
}

func TestRandomIsUniform(t *testing.T) {
	st := newStrategy(t, Random)
	rng := randutil.New(11)
	s := game.NewRandom(rng)

	counts := map[game.Lane]int{}
	const n = 3000
	for i := 0; i < n; i++ {
		counts[st.Decide(s, game.P1, rng).Lane]++
	}
	for _, l := range game.Lanes {
		assert.InDelta(t, n/3, counts[l], 150, l.String())
	}
}

func TestNewRejectsUnknownDifficulty(t *testing.T) {
	_, err := New(Difficulty(42), nil)
	assert.ErrorIs(t, err, ErrUnknownDifficulty)

	st, err := New(Pro, nil)
	require.NoError(t, err)
	assert.Equal(t, Pro, st.Difficulty())
}

func TestSecondLargest(t *testing.T) {
	assert.Equal(t, 4, secondLargest([3]int{8, 4, -3}))
	assert.Equal(t, 5, secondLargest([3]int{5, 5, 1}))
	assert.Equal(t, -2, secondLargest([3]int{-9, -2, 0}))
}
