package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit represents a card suit. Suits are cosmetic: only the value of a card
// matters to the game.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// Suits lists the four suits in deck construction order.
var Suits = [4]Suit{Spades, Hearts, Clubs, Diamonds}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

const (
	// MinValue and MaxValue bound the face value of every card.
	MinValue = 2
	MaxValue = 10
)

// Card is a single playing card. Value is the number of points the card adds
// to the lane it is played in.
type Card struct {
	Value int
	Suit  Suit
}

// NewCard creates a card, rejecting values outside [MinValue, MaxValue].
func NewCard(value int, suit Suit) (Card, error) {
	if value < MinValue || value > MaxValue {
		return Card{}, fmt.Errorf("card value %d out of range [%d,%d]", value, MinValue, MaxValue)
	}
	return Card{Value: value, Suit: suit}, nil
}

// String returns a short form such as "10♥".
func (c Card) String() string {
	return strconv.Itoa(c.Value) + c.Suit.String()
}

// FormatCards joins cards with spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
