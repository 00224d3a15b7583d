package knockpoker

import (
	"fmt"
	"time"

	"knockpoker-server/internal/rng"
	"knockpoker-server/pkg/deck"
	"knockpoker-server/pkg/playable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const numSeats = 4
const handSize = 5

// noSeat marks the turn, burn, and knocker trackers as unset
const noSeat = -1

// Game is a game of knock poker
type Game struct {
	options      Options
	participants [numSeats]*Participant
	deck         *deck.Deck
	burnPile     *deck.Pile
	rand         rng.Generator

	pot   int
	phase Phase

	// currentTurn is the seat of the last player to take a turn, or noSeat before the first draw
	currentTurn int

	// owingBurn is the seat holding six cards, or noSeat when no burn is owed
	owingBurn int

	knocker        int
	knockWasForced bool

	// drawQueue holds the seats still owed a draw during the final round
	drawQueue []int

	// potAwarded is true if the last settlement paid the pot to the knocker
	potAwarded bool

	// result is populated when the final round completes; its token movements
	// are applied once, when the settle dealer action fires
	result  *Result
	settled bool

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage

	pendingDealerAction *pendingDealerAction
}

// NewGame returns a new knock poker game with no cards dealt
// names must contain exactly four entries, one per seat
func NewGame(logger logrus.FieldLogger, names []string, opts Options) (*Game, error) {
	if len(names) != numSeats {
		return nil, PlayerCountError(len(names))
	}

	if opts.Ante < 0 || opts.StartingTokens <= 0 {
		return nil, fmt.Errorf("invalid options: ante=%d, startingTokens=%d", opts.Ante, opts.StartingTokens)
	}

	g := &Game{
		options:     opts,
		burnPile:    deck.NewPile(),
		phase:       PhaseNotStarted,
		currentTurn: noSeat,
		owingBurn:   noSeat,
		knocker:     noSeat,
		logger:      logger,
		logChan:     make(chan []*playable.LogMessage, 256),
	}

	for seat, name := range names {
		g.participants[seat] = newParticipant(seat, name, opts.StartingTokens)
	}

	return g, nil
}

// StartNewGame deals a fresh game
// It always succeeds: an unsettled previous game is settled first, and
// cross-game carry-over (pot and free-entry credits) is preserved
func (g *Game) StartNewGame() {
	if g.result != nil && !g.settled {
		g.applySettlement()
	}
	g.pendingDealerAction = nil

	d := deck.New(g.rand)
	d.Shuffle()
	g.deck = d
	g.burnPile.Clear()

	for _, p := range g.participants {
		p.hand = deck.Hand{}
	}

	for i := 0; i < handSize; i++ {
		for _, p := range g.participants {
			card, err := g.deck.Draw()
			if err != nil {
				panic(fmt.Sprintf("could not deal from a fresh deck: %v", err))
			}

			p.hand.AddCard(card)
		}
	}

	// the pot only resets if the previous game's pot was won
	if g.potAwarded {
		g.pot = 0
	}
	g.potAwarded = false

	messages := []*playable.LogMessage{newLogMessage(noSeat, nil, "A new game of Knock Poker started")}
	for _, p := range g.participants {
		if p.freeEntry {
			p.freeEntry = false
			messages = append(messages, newLogMessage(p.Seat, nil, "{} enters for free"))
			continue
		}

		p.tokens -= g.options.Ante
		g.pot += g.options.Ante
		messages = append(messages, newLogMessage(p.Seat, nil, "{} paid the %d token ante", g.options.Ante))
	}

	g.phase = PhaseAwaitingAction
	g.currentTurn = noSeat
	g.owingBurn = noSeat
	g.knocker = noSeat
	g.knockWasForced = false
	g.drawQueue = nil
	g.result = nil
	g.settled = false

	g.sendLogMessages(messages...)
}

// ResetGame force-returns the game to its initial state
// All players go back to the starting token count, the pot empties, and
// any carried free-entry credit is discarded
func (g *Game) ResetGame() {
	g.pendingDealerAction = nil
	g.deck = nil
	g.burnPile.Clear()

	for _, p := range g.participants {
		p.hand = nil
		p.tokens = g.options.StartingTokens
		p.freeEntry = false
	}

	g.pot = 0
	g.phase = PhaseNotStarted
	g.currentTurn = noSeat
	g.owingBurn = noSeat
	g.knocker = noSeat
	g.knockWasForced = false
	g.drawQueue = nil
	g.potAwarded = false
	g.result = nil
	g.settled = false

	g.sendLogMessages(newLogMessage(noSeat, nil, "The game was reset"))
}

// DrawCard draws a replacement card for the given seat
// Outside the final round the draw costs one token, paid into the pot, and a
// seat out of tokens is redirected into a forced knock instead
func (g *Game) DrawCard(seat int) error {
	if err := g.validateSeat(seat); err != nil {
		return err
	}

	if err := g.validatePhase(); err != nil {
		return err
	}

	if g.owingBurn != noSeat {
		return ErrBurnRequired
	}

	if g.phase == PhaseFinalRound {
		return g.drawFinalRound(seat)
	}

	if g.currentTurn != noSeat && seat != (g.currentTurn+1)%numSeats {
		return ErrNotPlayersTurn
	}

	if !g.allHandsComplete() {
		return ErrIncompleteHands
	}

	if !g.deck.CanDraw(1) {
		return ErrDeckExhausted
	}

	p := g.participants[seat]
	if p.tokens <= 0 {
		// forced knock. Not an error: the knock transition runs instead
		g.knockWasForced = true
		g.recordKnock(seat)
		return nil
	}

	if err := g.charge(p, 1); err != nil {
		return err
	}

	card, err := g.deck.Draw()
	if err != nil {
		panic(fmt.Sprintf("deck was non-empty: %v", err))
	}

	p.hand.AddCard(card)
	g.currentTurn = seat
	g.owingBurn = seat
	g.phase = PhaseAwaitingBurn

	g.sendLogMessages(newLogMessage(seat, nil, "{} paid 1 token and drew a card"))
	return nil
}

// drawFinalRound performs a free draw for the seat at the front of the queue
func (g *Game) drawFinalRound(seat int) error {
	if len(g.drawQueue) == 0 || seat != g.drawQueue[0] {
		return ErrNotPlayersTurn
	}

	if !g.deck.CanDraw(1) {
		return ErrDeckExhausted
	}

	card, err := g.deck.Draw()
	if err != nil {
		panic(fmt.Sprintf("deck was non-empty: %v", err))
	}

	g.participants[seat].hand.AddCard(card)
	g.drawQueue = g.drawQueue[1:]
	g.currentTurn = seat
	g.owingBurn = seat

	g.sendLogMessages(newLogMessage(seat, nil, "{} drew a final-round card"))
	return nil
}

// Knock ends open play and starts the final round
// The remaining three seats are queued in order after the knocker
func (g *Game) Knock(seat int) error {
	if err := g.validateSeat(seat); err != nil {
		return err
	}

	if err := g.validatePhase(); err != nil {
		return err
	}

	if g.owingBurn != noSeat {
		return ErrBurnRequired
	}

	if g.phase == PhaseFinalRound {
		return ErrKnockDuringFinalRound
	}

	if g.currentTurn != noSeat && seat != (g.currentTurn+1)%numSeats {
		return ErrNotPlayersTurn
	}

	if !g.allHandsComplete() {
		return ErrIncompleteHands
	}

	g.recordKnock(seat)
	return nil
}

// recordKnock performs the knock transition for the seat
// Callers are responsible for the legality chain
func (g *Game) recordKnock(seat int) {
	g.knocker = seat
	g.currentTurn = seat
	g.drawQueue = make([]int, 0, numSeats-1)
	for i := 1; i < numSeats; i++ {
		g.drawQueue = append(g.drawQueue, (seat+i)%numSeats)
	}

	g.phase = PhaseFinalRound

	if g.knockWasForced {
		g.sendLogMessages(newLogMessage(seat, nil, "{} is out of tokens and must knock"))
	} else {
		g.sendLogMessages(newLogMessage(seat, nil, "{} knocked"))
	}
}

// BurnCard moves the card at the given index in the seat's hand to the burn pile
func (g *Game) BurnCard(seat, cardIndex int) error {
	if err := g.validateSeat(seat); err != nil {
		return err
	}

	if err := g.validatePhase(); err != nil {
		return err
	}

	if g.owingBurn == noSeat {
		return ErrInvalidCardSelection
	}

	if g.owingBurn != seat {
		return ErrBurnOwedByOtherPlayer
	}

	p := g.participants[seat]
	if len(p.hand) != handSize+1 {
		return ErrInvalidCardSelection
	}

	card := p.hand.RemoveAt(cardIndex)
	if card == nil {
		return ErrInvalidCardSelection
	}

	g.burnPile.Add(card)
	g.owingBurn = noSeat

	g.sendLogMessages(newLogMessage(seat, card, "{} burned a card"))

	if g.phase == PhaseAwaitingBurn {
		g.phase = PhaseAwaitingAction
		return nil
	}

	// final round: the game ends once the queue empties and every hand is back to five
	if len(g.drawQueue) == 0 && g.allHandsComplete() {
		g.endGame()
	}

	return nil
}

// endGame builds the settlement report and schedules the settle dealer action
// Token movements happen when the dealer action fires, not here
func (g *Game) endGame() {
	g.phase = PhaseEnded
	g.result = g.buildResult()
	g.pendingDealerAction = &pendingDealerAction{
		Action:       dealerActionSettle,
		ExecuteAfter: time.Now().Add(g.options.EndGameDelay),
	}

	g.sendLogMessages(newLogMessage(noSeat, nil, "All hands are in. Showdown!"))
}

// charge moves tokens from the participant to the pot
func (g *Game) charge(p *Participant, amount int) error {
	if amount > p.tokens {
		return ErrInsufficientTokens
	}

	p.tokens -= amount
	g.pot += amount
	return nil
}

// validateSeat ensures the seat is in range
func (g *Game) validateSeat(seat int) error {
	if seat < 0 || seat >= numSeats {
		return ErrInvalidSeat
	}

	return nil
}

// validatePhase ensures the game is started and not over
func (g *Game) validatePhase() error {
	if g.phase == PhaseNotStarted {
		return ErrGameNotStarted
	}

	if g.phase == PhaseEnded {
		return ErrGameOver
	}

	return nil
}

// allHandsComplete returns true if every player holds exactly five cards
func (g *Game) allHandsComplete() bool {
	for _, p := range g.participants {
		if len(p.hand) != handSize {
			return false
		}
	}

	return true
}

// Interval determines how often Tick() should be called
func (g *Game) Interval() time.Duration {
	return time.Second
}

// Tick fires the pending dealer action once its time arrives
func (g *Game) Tick() (bool, error) {
	if g.pendingDealerAction == nil {
		return false, nil
	}

	if !time.Now().After(g.pendingDealerAction.ExecuteAfter) {
		return false, nil
	}

	action := g.pendingDealerAction.Action
	g.pendingDealerAction = nil

	switch action {
	case dealerActionSettle:
		g.applySettlement()
	default:
		panic(fmt.Sprintf("unknown dealer action: %d", action))
	}

	return true, nil
}

// Name returns "knock-poker"
func (g *Game) Name() string {
	return "knock-poker"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Action performs an action on behalf of the seat in the payload
func (g *Game) Action(seat int, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	log := g.logger.WithField("seat", seat)

	switch message.Action {
	case "start":
		log.Debug("start new game")
		g.StartNewGame()
		return playable.OK(message.Context), true, nil
	case "draw":
		log.Debug("draw card")
		if err := g.DrawCard(seat); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case "knock":
		log.Debug("knock")
		if err := g.Knock(seat); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case "burn":
		cardIndex, ok := message.AdditionalData.GetInt("cardIndex")
		if !ok {
			return nil, false, ErrInvalidCardSelection
		}

		log.WithField("cardIndex", cardIndex).Debug("burn card")
		if err := g.BurnCard(seat, cardIndex); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case "reset":
		log.Debug("reset game")
		g.ResetGame()
		return playable.OK(message.Context), true, nil
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}
}

// GetEndOfGameDetails returns details once the game has been settled
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if !g.settled || g.result == nil {
		return nil, false
	}

	adjustments := make(map[int]int)
	for _, p := range g.participants {
		adjustments[p.Seat] = p.tokens - g.options.StartingTokens
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                g.result,
	}, true
}

func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	if g.logChan != nil {
		g.logChan <- msg
	}
}

func newLogMessage(seat int, card *deck.Card, format string, a ...interface{}) *playable.LogMessage {
	var seats []int
	if seat >= 0 {
		seats = []int{seat}
	}

	var cards []*deck.Card
	if card != nil {
		cards = append(cards, card)
	}

	return &playable.LogMessage{
		UUID:    uuid.New().String(),
		Seats:   seats,
		Cards:   cards,
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
