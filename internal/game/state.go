package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/war0/internal/deck"
)

// View is the read-only window onto a game that strategies decide from.
type View interface {
	// Lane returns the tally of one lane.
	Lane(l Lane) LaneState
	// Peek returns the card n positions from the front of side's deck.
	Peek(side Side, n int) (deck.Card, bool)
	// Remaining returns the number of undrawn cards in side's deck.
	Remaining(side Side) int
	// Round returns the number of rounds played so far.
	Round() int
}

// Round records both commitments of one resolved round.
type Round struct {
	Number int
	Lanes  [2]Lane
	Cards  [2]deck.Card
}

// State owns both decks and the three lanes of a single game.
type State struct {
	decks  [2]*deck.Deck
	lanes  [NumLanes]LaneState
	rounds []Round
	drawn  [2]int
	over   bool
}

var _ View = (*State)(nil)

// New creates a game from two decks. The state is terminal immediately when
// either deck starts empty.
func New(deck1, deck2 *deck.Deck) *State {
	if deck1 == nil {
		deck1 = deck.FromValues()
	}
	if deck2 == nil {
		deck2 = deck.FromValues()
	}
	s := &State{decks: [2]*deck.Deck{deck1, deck2}}
	s.over = deck1.IsEmpty() || deck2.IsEmpty()
	return s
}

// NewRandom creates a game with two freshly shuffled full decks drawn from rng.
func NewRandom(rng *rand.Rand) *State {
	d1 := deck.New(rng)
	d2 := deck.New(rng)
	return New(d1, d2)
}

// PlayRound resolves one simultaneous round: the front card of each deck is
// added to the lane its owner chose. When either deck is already empty the
// call only marks the game over and returns false. The game becomes terminal
// as soon as either deck is empty after the draw.
//
// Both lanes must be valid; strategies are checked by the caller.
func (s *State) PlayRound(p1, p2 Lane) bool {
	if !p1.Valid() || !p2.Valid() {
		panic(fmt.Sprintf("game: PlayRound(%v, %v): %v", p1, p2, ErrInvalidLane))
	}
	if s.decks[P1].IsEmpty() || s.decks[P2].IsEmpty() {
		s.over = true
		return false
	}

	c1, _ := s.decks[P1].Draw()
	c2, _ := s.decks[P2].Draw()
	s.drawn[P1]++
	s.drawn[P2]++

	s.lanes[p1].add(P1, c1)
	s.lanes[p2].add(P2, c2)

	s.rounds = append(s.rounds, Round{
		Number: len(s.rounds) + 1,
		Lanes:  [2]Lane{p1, p2},
		Cards:  [2]deck.Card{c1, c2},
	})

	if s.decks[P1].IsEmpty() || s.decks[P2].IsEmpty() {
		s.over = true
	}
	return true
}

// IsOver reports whether the game has reached a terminal state.
func (s *State) IsOver() bool {
	return s.over
}

// Lane returns the tally of one lane.
func (s *State) Lane(l Lane) LaneState {
	return s.lanes[l]
}

// LaneStates returns all three lane tallies in board order.
func (s *State) LaneStates() [NumLanes]LaneState {
	return s.lanes
}

// Peek returns the card n positions from the front of side's deck.
func (s *State) Peek(side Side, n int) (deck.Card, bool) {
	return s.decks[side].PeekAt(n)
}

// Remaining returns the number of undrawn cards in side's deck.
func (s *State) Remaining(side Side) int {
	return s.decks[side].Len()
}

// Drawn returns the number of cards side has drawn so far.
func (s *State) Drawn(side Side) int {
	return s.drawn[side]
}

// Round returns the number of rounds played so far.
func (s *State) Round() int {
	return len(s.rounds)
}

// Rounds returns a copy of the round log.
func (s *State) Rounds() []Round {
	return append([]Round(nil), s.rounds...)
}

// Result scores the board. It is meaningful at any point but is only the game
// result once IsOver is true.
func (s *State) Result() Result {
	var r Result
	for _, l := range Lanes {
		ls := s.lanes[l]
		r.Scores[l] = ls.Score
		if side, ok := ls.Winner(); ok {
			r.LanesWon[side]++
		}
	}
	return r
}

// Validate checks the bookkeeping invariants: each side's lane card counts
// add up to the cards it drew, and every lane score equals the sum of the
// cards recorded in its history.
func (s *State) Validate() error {
	var cards [2]int
	for _, l := range Lanes {
		ls := s.lanes[l]
		var sum, count [2]int
		for _, p := range ls.History {
			sum[p.Side] += p.Card.Value
			count[p.Side]++
		}
		for _, side := range Sides {
			if sum[side] != ls.Score[side] {
				return fmt.Errorf("%s lane: %s score %d does not match history sum %d", l, side, ls.Score[side], sum[side])
			}
			if count[side] != ls.Cards[side] {
				return fmt.Errorf("%s lane: %s card count %d does not match history length %d", l, side, ls.Cards[side], count[side])
			}
			cards[side] += ls.Cards[side]
		}
	}
	for _, side := range Sides {
		if cards[side] != s.drawn[side] {
			return fmt.Errorf("%s played %d cards across lanes but drew %d", side, cards[side], s.drawn[side])
		}
	}
	return nil
}

// Result is the lane-by-lane outcome of a game.
type Result struct {
	Scores   [NumLanes][2]int
	LanesWon [2]int
}

// Winner returns the side that won a strict majority of the decided lanes.
// ok is false for a draw.
func (r Result) Winner() (side Side, ok bool) {
	switch {
	case r.LanesWon[P1] > r.LanesWon[P2]:
		return P1, true
	case r.LanesWon[P2] > r.LanesWon[P1]:
		return P2, true
	}
	return 0, false
}

// IsDraw reports whether neither side won more lanes.
func (r Result) IsDraw() bool {
	_, ok := r.Winner()
	return !ok
}

func (r Result) String() string {
	if side, ok := r.Winner(); ok {
		return fmt.Sprintf("%s wins %d-%d", side, r.LanesWon[side], r.LanesWon[side.Opponent()])
	}
	return fmt.Sprintf("draw %d-%d", r.LanesWon[P1], r.LanesWon[P2])
}
