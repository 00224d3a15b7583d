package knockpoker

import (
	"knockpoker-server/pkg/deck"
	"knockpoker-server/pkg/playable/poker/handrank"
)

// Result is the settlement report for a completed game
type Result struct {
	Knocker        int  `json:"knocker"`
	KnockWasForced bool `json:"knockWasForced"`

	// Winner is the canonical winner. On a tie it is the first-evaluated
	// tied seat, scanning in seat order
	Winner  int   `json:"winner"`
	Winners []int `json:"winners"`

	// KnockerWon is true if the knocker held the sole best hand
	KnockerWon bool `json:"knockerWon"`

	// PotAwarded is the number of tokens paid to the knocker, or 0 when
	// the pot carries forward
	PotAwarded int `json:"potAwarded"`

	// FreeEntryAwarded is true if the winner earned a free entry instead of the pot
	FreeEntryAwarded bool `json:"freeEntryAwarded"`

	Hands []*ResultHand `json:"hands"`
}

// ResultHand is one seat's hand in the settlement report
type ResultHand struct {
	Seat     int          `json:"seat"`
	Name     string       `json:"name"`
	Cards    []*deck.Card `json:"cards"`
	HandName string       `json:"handName"`
	IsWinner bool         `json:"isWinner"`
}

// buildResult evaluates all four hands and determines the outcome
// It does not move any tokens
func (g *Game) buildResult() *Result {
	hands := make([]*ResultHand, numSeats)
	evals := make([]*handrank.Evaluation, numSeats)
	for seat, p := range g.participants {
		evals[seat] = handrank.Evaluate(p.hand)
		hands[seat] = &ResultHand{
			Seat:     seat,
			Name:     p.Name,
			Cards:    p.hand.Clone(),
			HandName: evals[seat].Category.String(),
		}
	}

	winners := []int{0}
	for seat := 1; seat < numSeats; seat++ {
		switch evals[seat].Compare(evals[winners[0]]) {
		case 1:
			winners = []int{seat}
		case 0:
			winners = append(winners, seat)
		}
	}

	for _, seat := range winners {
		hands[seat].IsWinner = true
	}

	winner := winners[0]
	knockerWon := len(winners) == 1 && winner == g.knocker

	res := &Result{
		Knocker:        g.knocker,
		KnockWasForced: g.knockWasForced,
		Winner:         winner,
		Winners:        winners,
		KnockerWon:     knockerWon,
		Hands:          hands,
	}

	if knockerWon {
		res.PotAwarded = g.pot
	} else {
		res.FreeEntryAwarded = true
	}

	return res
}

// applySettlement moves tokens per the result, exactly once
func (g *Game) applySettlement() {
	if g.result == nil || g.settled {
		return
	}

	res := g.result
	g.settled = true

	if res.KnockerWon {
		g.participants[res.Winner].tokens += g.pot
		g.pot = 0
		g.potAwarded = true
		g.sendLogMessages(newLogMessage(res.Winner, nil, "{} won the pot of %d tokens", res.PotAwarded))
		return
	}

	g.participants[res.Winner].freeEntry = true
	g.sendLogMessages(newLogMessage(res.Winner, nil, "{} won a free entry; the pot of %d carries over", g.pot))
}
