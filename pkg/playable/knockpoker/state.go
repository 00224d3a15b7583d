package knockpoker

import (
	"knockpoker-server/pkg/deck"
	"knockpoker-server/pkg/playable"
)

// GameState is the overall game state
// This is safe for all players to see
type GameState struct {
	Phase        Phase              `json:"phase"`
	Players      []*GameStatePlayer `json:"players"`
	Pot          int                `json:"pot"`
	Ante         int                `json:"ante"`
	CardsInDeck  int                `json:"cardsInDeck"`
	DeckTopCard  *deck.Card         `json:"deckTopCard"`
	CardsBurned  int                `json:"cardsBurned"`
	BurnTopCard  *deck.Card         `json:"burnTopCard"`
	CurrentTurn  int                `json:"currentTurn"`
	OwingBurn    int                `json:"owingBurn"`
	Knocker      int                `json:"knocker"`
	DrawQueue    []int              `json:"drawQueue"`
	Result       *Result            `json:"result"`
}

// GameStatePlayer is the state of an individual player
// This is safe for all players to see
type GameStatePlayer struct {
	Seat        int    `json:"seat"`
	Name        string `json:"name"`
	Tokens      int    `json:"tokens"`
	FreeEntry   bool   `json:"freeEntry"`
	CardsInHand int    `json:"cardsInHand"`
}

// Response is the response format for this game
type Response struct {
	GameState *GameState `json:"gameState"`
	// Hand below is player specific, and must only be shown to the intended player
	Hand deck.Hand `json:"hand"`
}

func (g *Game) getGameState() *GameState {
	players := make([]*GameStatePlayer, numSeats)
	for seat, p := range g.participants {
		players[seat] = &GameStatePlayer{
			Seat:        seat,
			Name:        p.Name,
			Tokens:      p.tokens,
			FreeEntry:   p.freeEntry,
			CardsInHand: len(p.hand),
		}
	}

	cardsInDeck := 0
	var deckTopCard *deck.Card
	if g.deck != nil {
		cardsInDeck = g.deck.CardsLeft()
		deckTopCard = g.deck.TopCard()
	}

	var drawQueue []int
	if g.phase == PhaseFinalRound {
		drawQueue = append([]int{}, g.drawQueue...)
	}

	var result *Result
	if g.phase == PhaseEnded {
		result = g.result
	}

	return &GameState{
		Phase:       g.phase,
		Players:     players,
		Pot:         g.pot,
		Ante:        g.options.Ante,
		CardsInDeck: cardsInDeck,
		DeckTopCard: deckTopCard,
		CardsBurned: g.burnPile.Size(),
		BurnTopCard: g.burnPile.TopCard(),
		CurrentTurn: g.currentTurn,
		OwingBurn:   g.owingBurn,
		Knocker:     g.knocker,
		DrawQueue:   drawQueue,
		Result:      result,
	}
}

// GetPlayerState returns the state for the given seat
// An out-of-range seat gets the shared state with no hand, suitable for observers
func (g *Game) GetPlayerState(seat int) (*playable.Response, error) {
	var hand deck.Hand
	if seat >= 0 && seat < numSeats {
		hand = g.participants[seat].hand.Clone()
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data: &Response{
			GameState: g.getGameState(),
			Hand:      hand,
		},
	}, nil
}
