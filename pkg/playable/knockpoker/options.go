package knockpoker

import "time"

// Options are options for creating a new knock poker game
type Options struct {
	Ante           int
	StartingTokens int
	EndGameDelay   time.Duration
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Ante:           1,
		StartingTokens: 50,
		EndGameDelay:   time.Second,
	}
}
