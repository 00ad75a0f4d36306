package deck

import (
	"testing"

	"github.com/lox/war0/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckComposition(t *testing.T) {
	d := New(randutil.New(1))
	require.Equal(t, Size, d.Len())
	assert.Equal(t, 36, d.Len())

	counts := make(map[int]int)
	for _, c := range d.Cards() {
		counts[c.Value]++
	}
	for v := MinValue; v <= MaxValue; v++ {
		assert.Equal(t, 4, counts[v], "value %d", v)
	}
	assert.Equal(t, 4*54, d.Total())
}

func TestNewDeckIsDeterministicPerSeed(t *testing.T) {
	a := New(randutil.New(99)).Cards()
	b := New(randutil.New(99)).Cards()
	c := New(randutil.New(100)).Cards()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestDrawIsFIFO(t *testing.T) {
	d := FromValues(3, 7, 10)

	top, ok := d.Peek()
	require.True(t, ok)
	assert.Equal(t, 3, top.Value)

	second, ok := d.PeekAt(1)
	require.True(t, ok)
	assert.Equal(t, 7, second.Value)

	for _, want := range []int{3, 7, 10} {
		c, ok := d.Draw()
		require.True(t, ok)
		assert.Equal(t, want, c.Value)
	}

	assert.True(t, d.IsEmpty())
	_, ok = d.Draw()
	assert.False(t, ok)
	_, ok = d.Peek()
	assert.False(t, ok)
}

func TestPeekAtOutOfRange(t *testing.T) {
	d := FromValues(5)
	_, ok := d.PeekAt(1)
	assert.False(t, ok)
	_, ok = d.PeekAt(-1)
	assert.False(t, ok)
}

func TestCardsReturnsCopy(t *testing.T) {
	d := FromValues(2, 3)
	cards := d.Cards()
	cards[0].Value = 9
	top, _ := d.Peek()
	assert.Equal(t, 2, top.Value)
}

func TestNewCardValidation(t *testing.T) {
	_, err := NewCard(1, Spades)
	assert.Error(t, err)
	_, err = NewCard(11, Hearts)
	assert.Error(t, err)

	c, err := NewCard(10, Hearts)
	require.NoError(t, err)
	assert.Equal(t, "10♥", c.String())
	assert.True(t, c.Suit.IsRed())
}

func TestFormatCards(t *testing.T) {
	d := FromValues(2, 3)
	assert.Equal(t, "2♠ 3♥", FormatCards(d.Cards()))
}
