package knockpoker

import (
	"knockpoker-server/pkg/deck"
)

// Participant is a player in a game of knock poker
type Participant struct {
	Seat int
	Name string

	hand      deck.Hand
	tokens    int
	freeEntry bool
}

func newParticipant(seat int, name string, tokens int) *Participant {
	return &Participant{
		Seat:   seat,
		Name:   name,
		tokens: tokens,
	}
}

// Tokens returns the participant's current token balance
func (p *Participant) Tokens() int {
	return p.tokens
}

// FreeEntry returns true if the participant holds a free-entry credit
func (p *Participant) FreeEntry() bool {
	return p.freeEntry
}

// Hand returns the participant's current hand
func (p *Participant) Hand() deck.Hand {
	return p.hand
}
