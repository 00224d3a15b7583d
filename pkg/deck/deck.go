package deck

import (
	"errors"

	"knockpoker-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck.
// Cards are drawn from the front of the slice.
type Deck struct {
	Cards []*Card `json:"cards"`
	rand  rng.Generator
}

// New returns a new deck of cards built from the provided random source.
// Pass nil to use a wall-clock seeded source.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New(rand rng.Generator) *Deck {
	if rand == nil {
		rand = rng.NewTimeSource()
	}

	d := &Deck{
		rand: rand,
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle performs a uniform Fisher–Yates shuffle of the remaining cards
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rand.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// TopCard returns the next card to be drawn without drawing it, or nil if the deck is empty
func (d *Deck) TopCard() *Card {
	if len(d.Cards) == 0 {
		return nil
	}

	return d.Cards[0]
}
