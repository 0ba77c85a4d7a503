package cache

// ScopedKeyer wraps a Keyer with a prefix so several tenants or environments
// can share one backend (for example one Redis server behind several API
// instances).
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SolutionKey generates a prefixed key for solution caching.
func (k *ScopedKeyer) SolutionKey(itemsHash string, capacity int, opts SolutionKeyOpts) string {
	return k.prefix + k.inner.SolutionKey(itemsHash, capacity, opts)
}
