package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a full deck: values 2..10 in each of four suits.
const Size = (MaxValue - MinValue + 1) * len(Suits)

// Deck is an ordered pile of cards consumed from the front.
type Deck struct {
	cards []Card
}

// New creates a full 36-card deck shuffled with rng.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, Size)}
	for _, suit := range Suits {
		for value := MinValue; value <= MaxValue; value++ {
			d.cards = append(d.cards, Card{Value: value, Suit: suit})
		}
	}
	d.Shuffle(rng)
	return d
}

// FromValues creates an unshuffled deck whose draw order is values. Suits
// cycle through Suits. Intended for fixtures and replays.
func FromValues(values ...int) *Deck {
	d := &Deck{cards: make([]Card, len(values))}
	for i, v := range values {
		d.cards[i] = Card{Value: v, Suit: Suits[i%len(Suits)]}
	}
	return d
}

// FromCards creates a deck that deals cards in the given order.
func FromCards(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the front card of the deck
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Peek returns the front card without removing it from the deck
func (d *Deck) Peek() (Card, bool) {
	return d.PeekAt(0)
}

// PeekAt returns the card n positions from the front without removing it.
func (d *Deck) PeekAt(n int) (Card, bool) {
	if n < 0 || n >= len(d.cards) {
		return Card{}, false
	}
	return d.cards[n], true
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards in draw order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Total returns the sum of the remaining card values.
func (d *Deck) Total() int {
	total := 0
	for _, c := range d.cards {
		total += c.Value
	}
	return total
}
