package handrank

import (
	"fmt"
	"sort"

	"knockpoker-server/pkg/deck"
)

// HandSize is the number of cards in an evaluable hand
const HandSize = 5

// Evaluation is the result of evaluating a five-card hand.
// Two evaluations in the same category are ordered by comparing the
// tiebreak keys element-wise; the first difference decides.
type Evaluation struct {
	Category  Category `json:"category"`
	Tiebreaks []int    `json:"tiebreaks"`
}

// Evaluate returns the evaluation for a five-card hand.
// It panics if the hand does not contain exactly five cards; that is a
// programming error, not a recoverable game condition.
func Evaluate(cards []*deck.Card) *Evaluation {
	if len(cards) != HandSize {
		panic(fmt.Sprintf("expected %d cards, got %d", HandSize, len(cards)))
	}

	ranks := make([]int, HandSize)
	rankCounts := make(map[int]int)
	suitCounts := make(map[deck.Suit]int)
	for i, card := range cards {
		ranks[i] = card.Rank
		rankCounts[card.Rank]++
		suitCounts[card.Suit]++
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	isFlush := len(suitCounts) == 1
	straightHigh := straightHighCard(rankCounts)

	if isFlush && straightHigh == deck.Ace {
		return &Evaluation{Category: RoyalFlush, Tiebreaks: []int{}}
	}

	if isFlush && straightHigh > 0 {
		return &Evaluation{Category: StraightFlush, Tiebreaks: []int{straightHigh}}
	}

	quads, trips, pairs := groupRanks(rankCounts)

	if len(quads) == 1 {
		kicker := 0
		for _, rank := range ranks {
			if rank != quads[0] {
				kicker = rank
				break
			}
		}

		return &Evaluation{Category: FourOfAKind, Tiebreaks: []int{quads[0], kicker}}
	}

	if len(trips) == 1 && len(pairs) == 1 {
		return &Evaluation{Category: FullHouse, Tiebreaks: []int{trips[0], pairs[0]}}
	}

	if isFlush {
		return &Evaluation{Category: Flush, Tiebreaks: ranks}
	}

	if straightHigh > 0 {
		return &Evaluation{Category: Straight, Tiebreaks: []int{straightHigh}}
	}

	if len(trips) == 1 {
		tiebreaks := []int{trips[0]}
		for _, rank := range ranks {
			if rank != trips[0] {
				tiebreaks = append(tiebreaks, rank)
			}
		}

		return &Evaluation{Category: ThreeOfAKind, Tiebreaks: tiebreaks}
	}

	if len(pairs) == 2 {
		kicker := 0
		for _, rank := range ranks {
			if rank != pairs[0] && rank != pairs[1] {
				kicker = rank
				break
			}
		}

		return &Evaluation{Category: TwoPair, Tiebreaks: []int{pairs[0], pairs[1], kicker}}
	}

	if len(pairs) == 1 {
		tiebreaks := []int{pairs[0]}
		for _, rank := range ranks {
			if rank != pairs[0] {
				tiebreaks = append(tiebreaks, rank)
			}
		}

		return &Evaluation{Category: OnePair, Tiebreaks: tiebreaks}
	}

	return &Evaluation{Category: HighCard, Tiebreaks: ranks}
}

// straightHighCard returns the high card of the straight the ranks form,
// or 0 if they do not form one. The wheel (A-5-4-3-2) reports 5 so it
// ranks below a six-high straight.
func straightHighCard(rankCounts map[int]int) int {
	if len(rankCounts) != HandSize {
		return 0
	}

	high, low := 0, deck.Ace+1
	for rank := range rankCounts {
		if rank > high {
			high = rank
		}
		if rank < low {
			low = rank
		}
	}

	if high-low == HandSize-1 {
		return high
	}

	// wheel straight
	if high == deck.Ace {
		for _, rank := range []int{5, 4, 3, 2} {
			if rankCounts[rank] == 0 {
				return 0
			}
		}

		return 5
	}

	return 0
}

// groupRanks buckets the rank counts into quads, trips, and pairs,
// each sorted with the best rank first
func groupRanks(rankCounts map[int]int) (quads, trips, pairs []int) {
	for rank, count := range rankCounts {
		switch count {
		case 4:
			quads = append(quads, rank)
		case 3:
			trips = append(trips, rank)
		case 2:
			pairs = append(pairs, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(quads)))
	sort.Sort(sort.Reverse(sort.IntSlice(trips)))
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))

	return
}

// Compare orders two evaluations.
// It returns 1 if e wins, -1 if other wins, and 0 on a tie.
func (e *Evaluation) Compare(other *Evaluation) int {
	if e.Category != other.Category {
		if e.Category > other.Category {
			return 1
		}

		return -1
	}

	for i, val := range e.Tiebreaks {
		if i >= len(other.Tiebreaks) {
			break
		}

		if val > other.Tiebreaks[i] {
			return 1
		}
		if val < other.Tiebreaks[i] {
			return -1
		}
	}

	return 0
}

// Strength packs the evaluation into a single integer so that a greater
// strength always means a winning hand and equal strengths mean a tie
func (e *Evaluation) Strength() int {
	strength := int(e.Category)
	for i := 0; i < HandSize; i++ {
		strength *= 15
		if i < len(e.Tiebreaks) {
			strength += e.Tiebreaks[i]
		}
	}

	return strength
}

// Compare evaluates both hands and orders them.
// It returns 1 if a wins, -1 if b wins, and 0 on a tie.
func Compare(a, b []*deck.Card) int {
	return Evaluate(a).Compare(Evaluate(b))
}
