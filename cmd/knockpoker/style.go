package main

import (
	"fmt"
	"strings"

	"knockpoker-server/pkg/deck"
	"knockpoker-server/pkg/playable"
	"knockpoker-server/pkg/playable/knockpoker"

	"github.com/pterm/pterm"
)

func drainLogs(game *knockpoker.Game, names []string) {
	for {
		select {
		case messages := <-game.LogChan():
			for _, m := range messages {
				pterm.Println(pterm.Gray(formatLogMessage(m, names)))
			}
		default:
			return
		}
	}
}

func formatLogMessage(m *playable.LogMessage, names []string) string {
	text := m.Message
	if len(m.Seats) > 0 && m.Seats[0] < len(names) {
		text = strings.Replace(text, "{}", names[m.Seats[0]], 1)
	}

	if len(m.Cards) > 0 {
		cards := make([]string, len(m.Cards))
		for i, c := range m.Cards {
			cards[i] = formatCard(c)
		}

		text += " (" + strings.Join(cards, " ") + ")"
	}

	return text
}

func formatCard(c *deck.Card) string {
	if c == nil {
		return "--"
	}

	if c.Suit == deck.Hearts || c.Suit == deck.Diamonds {
		return pterm.LightRed(c.String())
	}

	return pterm.LightWhite(c.String())
}

func renderHand(name string, hand deck.Hand) string {
	cards := make([]string, len(hand))
	for i, card := range hand {
		cards[i] = formatCard(card)
	}

	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(name).WithTitleTopLeft().Sprint(strings.Join(cards, "  "))
}

func renderTable(state *knockpoker.GameState) {
	var playerPanels []pterm.Panel
	for _, p := range state.Players {
		playerPanels = append(playerPanels, pterm.Panel{Data: renderPlayerInfo(state, p)})
	}

	center := pterm.Panel{Data: renderTableInfo(state)}

	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		playerPanels,
		{center},
	}).Render()
}

func renderPlayerInfo(state *knockpoker.GameState, p *knockpoker.GameStatePlayer) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	title := p.Name
	if state.Knocker == p.Seat {
		title += " " + pterm.LightYellow("(knocked)")
	}

	status := ""
	switch {
	case state.OwingBurn == p.Seat:
		status = pterm.LightRed("owes a burn")
	case state.CurrentTurn == p.Seat:
		status = pterm.LightGreen("last to act")
	}

	freeEntry := ""
	if p.FreeEntry {
		freeEntry = "\n" + pterm.LightCyan("free entry")
	}

	return pbox.WithTitle(title).WithTitleTopLeft().
		Sprintf("Tokens: %d\nCards: %d%s\n%s", p.Tokens, p.CardsInHand, freeEntry, status)
}

func renderTableInfo(state *knockpoker.GameState) string {
	burn := "--"
	if state.BurnTopCard != nil {
		burn = formatCard(state.BurnTopCard)
	}

	info := fmt.Sprintf("Pot: %d tokens | Deck: %d cards | Burned: %d (top %s)",
		state.Pot, state.CardsInDeck, state.CardsBurned, burn)

	return pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Sprint(info)
}

func renderResult(res *knockpoker.Result) {
	if res == nil {
		return
	}

	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	var sb strings.Builder
	for _, hand := range res.Hands {
		cards := make([]string, len(hand.Cards))
		for i, c := range hand.Cards {
			cards[i] = formatCard(c)
		}

		marker := ""
		if hand.IsWinner {
			marker = " " + pterm.LightGreen("< winner")
		}

		sb.WriteString(pterm.Sprintfln("%-12s %s  %s%s", hand.Name, strings.Join(cards, " "), hand.HandName, marker))
	}

	if res.KnockerWon {
		sb.WriteString(pterm.Sprintfln("\nThe knocker takes the pot of %d tokens", res.PotAwarded))
	} else {
		sb.WriteString(pterm.Sprintfln("\nThe knocker did not win; the winner earns a free entry and the pot carries over"))
	}

	pterm.Println(pbox.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(sb.String()))
}
