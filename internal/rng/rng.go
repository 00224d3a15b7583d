package rng

// Generator produces the random numbers used for shuffling.
// The deck takes one of these so tests can inject a seeded source.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
