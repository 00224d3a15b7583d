package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Bold", "Quiet", "Sly", "Brave", "Steady", "Wild", "Patient", "Sharp", "Cool",
	"Daring", "Cagey", "Cheery", "Clever", "Fearless", "Gutsy", "Honest", "Jolly", "Keen", "Merry",
	"Nimble", "Plucky", "Savvy", "Shrewd", "Spry", "Stoic", "Swift", "Tricky", "Upbeat", "Wily",
}

var nouns = []string{
	"Shark", "Ace", "Joker", "Maverick", "Gambler", "Bluffer", "Dealer", "Knocker", "Grinder", "Railbird",
	"Whale", "Fish", "Rounder", "Shuffler", "Cutter", "Caller", "Raiser", "Folder", "Stacker", "Sandbagger",
}

// GetRandomName returns a random table name by combining an adjective with a poker archetype
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], nouns[random.Intn(len(nouns))])
}
