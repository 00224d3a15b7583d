package deck

// Pile is a stack of discarded cards; the most recently added card is on top
type Pile struct {
	cards []*Card
}

// NewPile returns a new, empty pile
func NewPile() *Pile {
	return &Pile{
		cards: make([]*Card, 0, 52),
	}
}

// Add places a card on top of the pile
func (p *Pile) Add(card *Card) {
	p.cards = append(p.cards, card)
}

// TopCard returns the most recently added card, or nil if the pile is empty
func (p *Pile) TopCard() *Card {
	if len(p.cards) == 0 {
		return nil
	}

	return p.cards[len(p.cards)-1]
}

// Size returns the number of cards in the pile
func (p *Pile) Size() int {
	return len(p.cards)
}

// Cards returns a copy of the pile from bottom to top
func (p *Pile) Cards() []*Card {
	cards := make([]*Card, len(p.cards))
	copy(cards, p.cards)

	return cards
}

// Clear empties the pile
func (p *Pile) Clear() {
	p.cards = p.cards[:0]
}
