package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/war0/internal/deck"
)

// ErrInvalidLane is returned when a lane name or index does not name one of
// the three lanes.
var ErrInvalidLane = errors.New("invalid lane")

// Lane identifies one of the three independent sub-contests.
type Lane int

const (
	Left Lane = iota
	Center
	Right
)

// NumLanes is the number of lanes on the board.
const NumLanes = 3

// Lanes lists every lane in board order.
var Lanes = [NumLanes]Lane{Left, Center, Right}

// String returns the lowercase lane name.
func (l Lane) String() string {
	switch l {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("lane(%d)", int(l))
	}
}

// Valid reports whether l is one of Left, Center or Right.
func (l Lane) Valid() bool {
	return l >= Left && l <= Right
}

// ParseLane converts a lane name (case-insensitive) into a Lane.
func ParseLane(name string) (Lane, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left", "l":
		return Left, nil
	case "center", "centre", "c":
		return Center, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLane, name)
}

// Side is one of the two players. Side values index the per-side arrays of
// LaneState.
type Side int

const (
	P1 Side = iota
	P2
)

// Sides lists both players.
var Sides = [2]Side{P1, P2}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return 1 - s
}

func (s Side) String() string {
	switch s {
	case P1:
		return "p1"
	case P2:
		return "p2"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Play is one card committed to a lane.
type Play struct {
	Side Side
	Card deck.Card
}

// LaneState is the running tally of one lane.
type LaneState struct {
	Score   [2]int // sum of card values played by each side
	Cards   [2]int // number of cards played by each side
	History []Play // plays in order; shared with the State, do not modify
}

// Diff returns the lane score differential from side's perspective.
func (ls LaneState) Diff(side Side) int {
	return ls.Score[side] - ls.Score[side.Opponent()]
}

// Winner returns the side with the strictly higher score. ok is false when
// the lane is tied.
func (ls LaneState) Winner() (side Side, ok bool) {
	switch {
	case ls.Score[P1] > ls.Score[P2]:
		return P1, true
	case ls.Score[P2] > ls.Score[P1]:
		return P2, true
	}
	return 0, false
}

func (ls *LaneState) add(side Side, card deck.Card) {
	ls.Score[side] += card.Value
	ls.Cards[side]++
	ls.History = append(ls.History, Play{Side: side, Card: card})
}
