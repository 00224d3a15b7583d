package knockpoker

import (
	"testing"

	"knockpoker-server/pkg/deck"
	"knockpoker-server/pkg/snapshot"

	"github.com/stretchr/testify/assert"
)

func TestGame_resultSnapshot(t *testing.T) {
	a := assert.New(t)
	g := setupTestGame(t)

	rigHands(g,
		"14s,13s,12s,11s,10s",
		"2c,4d,6h,8s,10c",
		"2d,4h,6s,8c,10d",
		"3c,5d,7h,9s,13c",
	)
	g.deck.Cards = deck.CardsFromString("2h,4s,6c")

	a.NoError(g.Knock(0))
	playOutFinalRound(t, g)

	snapshot.ValidateSnapshot(t, g.result, 0)
}

func TestGame_stateAfterReset(t *testing.T) {
	g := setupTestGame(t)
	g.ResetGame()

	snapshot.ValidateSnapshot(t, g.getGameState(), 0)
}
