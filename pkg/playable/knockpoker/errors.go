package knockpoker

import (
	"errors"
	"fmt"
)

// ErrGameNotStarted is an error when an action arrives before cards are dealt
var ErrGameNotStarted = errors.New("the game has not started")

// ErrGameOver is an error when an action arrives after the game ended
var ErrGameOver = errors.New("the game is over")

// ErrNotPlayersTurn is returned when it's not the player's turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrBurnRequired is returned when a draw or knock arrives while a burn is owed
var ErrBurnRequired = errors.New("a card must be burned first")

// ErrBurnOwedByOtherPlayer is returned when a player burns while another player owes the burn
var ErrBurnOwedByOtherPlayer = errors.New("another player owes the burn")

// ErrIncompleteHands is an error when not every player holds exactly five cards
var ErrIncompleteHands = errors.New("every player must hold five cards")

// ErrDeckExhausted is an error when a draw is attempted with no cards left
var ErrDeckExhausted = errors.New("no cards remain in the deck")

// ErrInsufficientTokens is an error when a charge would make a balance negative
var ErrInsufficientTokens = errors.New("player does not have enough tokens")

// ErrInvalidCardSelection is an error when a burn names a card the player cannot burn
var ErrInvalidCardSelection = errors.New("invalid card selection")

// ErrKnockDuringFinalRound is an error when someone knocks after a knock already happened
var ErrKnockDuringFinalRound = errors.New("cannot knock during the final round")

// ErrInvalidSeat is an error when the seat is not in the range 0-3
var ErrInvalidSeat = errors.New("seat must be between 0 and 3")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d players, got %d", numSeats, int(p))
}
