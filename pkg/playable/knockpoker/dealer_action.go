package knockpoker

import "time"

// dealerAction is an action the "dealer" takes on the game's behalf, such as settling a finished game
type dealerAction int

const (
	dealerActionSettle dealerAction = iota
)

type pendingDealerAction struct {
	Action       dealerAction
	ExecuteAfter time.Time
}
