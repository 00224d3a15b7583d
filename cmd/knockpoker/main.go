package main

import (
	"fmt"
	"os"
	"time"

	"knockpoker-server/pkg/deck"
	"knockpoker-server/pkg/playable/knockpoker"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"
)

const numSeats = 4

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	_ = pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Knock ", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Poker", pterm.FgDarkGray.ToStyle()),
	).Render()

	names := make([]string, 0, numSeats)
	for i := 0; i < numSeats; i++ {
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Enter a name for seat %d", i)).
			WithDefaultValue(fmt.Sprintf("Player %d", i+1)).
			Show()
		names = append(names, name)
	}

	game, err := knockpoker.NewGame(logger, names, knockpoker.DefaultOptions())
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	for {
		game.StartNewGame()
		playGame(game, names)

		confirm, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Play another game?").
			WithDefaultValue(true).
			Show()
		if !confirm {
			return
		}
	}
}

func playGame(game *knockpoker.Game, names []string) {
	for {
		drainLogs(game, names)
		state := snapshot(game)

		if state.Phase == knockpoker.PhaseEnded {
			settle(game, names)
			return
		}

		renderTable(state)

		if state.OwingBurn >= 0 {
			promptBurn(game, state.OwingBurn, names)
			continue
		}

		if state.Phase == knockpoker.PhaseFinalRound {
			seat := state.DrawQueue[0]
			pterm.Info.Printfln("%s draws a final card", names[seat])
			if err := game.DrawCard(seat); err != nil {
				pterm.Error.Println(err)
			}
			continue
		}

		promptAction(game, nextSeat(state, names), names)
	}
}

// nextSeat determines who acts; the very first turn of a game is an open choice
func nextSeat(state *knockpoker.GameState, names []string) int {
	if state.CurrentTurn >= 0 {
		return (state.CurrentTurn + 1) % numSeats
	}

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Who goes first?").
		WithOptions(names).
		Show()

	for seat, name := range names {
		if name == choice {
			return seat
		}
	}

	return 0
}

func promptAction(game *knockpoker.Game, seat int, names []string) {
	pterm.Println(renderHand(names[seat], handOf(game, seat)))

	action, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText(fmt.Sprintf("%s, choose your action", names[seat])).
		WithOptions([]string{"Draw a card (1 token)", "Knock"}).
		Show()

	var err error
	if action == "Knock" {
		err = game.Knock(seat)
	} else {
		err = game.DrawCard(seat)
	}

	if err != nil {
		pterm.Error.Println(err)
	}
}

func promptBurn(game *knockpoker.Game, seat int, names []string) {
	hand := handOf(game, seat)
	pterm.Println(renderHand(names[seat], hand))

	options := make([]string, len(hand))
	for i, card := range hand {
		options[i] = fmt.Sprintf("%d: %s", i+1, card.String())
	}

	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText(fmt.Sprintf("%s, choose a card to burn", names[seat])).
		WithOptions(options).
		Show()

	for i, option := range options {
		if option == choice {
			if err := game.BurnCard(seat, i); err != nil {
				pterm.Error.Println(err)
			}

			return
		}
	}
}

func settle(game *knockpoker.Game, names []string) {
	spinner, _ := pterm.DefaultSpinner.Start("All hands are in. Settling up...")
	for {
		update, err := game.Tick()
		if err != nil {
			spinner.Fail()
			pterm.Error.Println(err)
			return
		}

		if update {
			break
		}

		time.Sleep(100 * time.Millisecond)
	}
	spinner.Success()

	drainLogs(game, names)

	state := snapshot(game)
	renderResult(state.Result)

	if details, ok := game.GetEndOfGameDetails(); ok {
		rows := pterm.TableData{{"Seat", "Player", "Net tokens"}}
		for seat := 0; seat < numSeats; seat++ {
			rows = append(rows, []string{
				fmt.Sprintf("%d", seat),
				names[seat],
				fmt.Sprintf("%+d", details.BalanceAdjustments[seat]),
			})
		}

		_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	}
}

func snapshot(game *knockpoker.Game) *knockpoker.GameState {
	res, err := game.GetPlayerState(-1)
	if err != nil {
		panic(err)
	}

	return res.Data.(*knockpoker.Response).GameState
}

func handOf(game *knockpoker.Game, seat int) deck.Hand {
	res, err := game.GetPlayerState(seat)
	if err != nil {
		panic(err)
	}

	return res.Data.(*knockpoker.Response).Hand
}
