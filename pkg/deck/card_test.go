package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "2♣", (&Card{Rank: 2, Suit: Clubs}).String())
	assert.Equal(t, "10♢", (&Card{Rank: 10, Suit: Diamonds}).String())
	assert.Equal(t, "J♡", (&Card{Rank: Jack, Suit: Hearts}).String())
	assert.Equal(t, "Q♠", (&Card{Rank: Queen, Suit: Spades}).String())
	assert.Equal(t, "K♣", (&Card{Rank: King, Suit: Clubs}).String())
	assert.Equal(t, "A♠", (&Card{Rank: Ace, Suit: Spades}).String())
}

func TestCard_Equal(t *testing.T) {
	a := &Card{Rank: 5, Suit: Hearts}
	b := &Card{Rank: 5, Suit: Hearts}
	c := &Card{Rank: 5, Suit: Spades}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, (&Card{Rank: Ace, Suit: Clubs}).AceLowRank())
	assert.Equal(t, King, (&Card{Rank: King, Suit: Clubs}).AceLowRank())
}

func TestCardFromString(t *testing.T) {
	card := CardFromString("14s")
	assert.Equal(t, Ace, card.Rank)
	assert.Equal(t, Spades, card.Suit)

	card = CardFromString("2d")
	assert.Equal(t, 2, card.Rank)
	assert.Equal(t, Diamonds, card.Suit)

	assert.Nil(t, CardFromString(""))

	assert.PanicsWithValue(t, "could not parse card: 15s", func() {
		CardFromString("15s")
	})

	assert.Panics(t, func() {
		CardFromString("2x")
	})
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("2c,13h,14s")
	assert.Len(t, cards, 3)
	assert.Equal(t, "2c,13h,14s", CardsToString(cards))

	assert.Len(t, CardsFromString(""), 0)
}

func TestCardToString(t *testing.T) {
	assert.Equal(t, "", CardToString(nil))
	assert.Equal(t, "11h", CardToString(&Card{Rank: Jack, Suit: Hearts}))
}
