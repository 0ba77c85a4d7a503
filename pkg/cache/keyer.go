package cache

// Keyer generates cache keys.
type Keyer interface {
	// SolutionKey identifies the solution of an item set (by content hash)
	// at one capacity.
	SolutionKey(itemsHash string, capacity int, opts SolutionKeyOpts) string
}

// SolutionKeyOpts holds the search settings that are part of a solution key.
type SolutionKeyOpts struct {
	// Iterative results are identical to recursive ones, but keeping them
	// apart lets both formulations be benchmarked against a warm cache.
	Iterative bool `json:"iterative,omitempty"`
}

// DefaultKeyer produces unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolutionKey implements Keyer.
func (DefaultKeyer) SolutionKey(itemsHash string, capacity int, opts SolutionKeyOpts) string {
	return hashKey("solution", itemsHash, capacity, opts)
}
