package cache

// ScopedKeyer prefixes every key of an inner [Keyer].
//
// It separates namespaces that share one backend, for example several
// machines with different solver builds writing to the same Redis:
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "ci:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer means [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SolutionKey implements [Keyer].
func (k *ScopedKeyer) SolutionKey(inputHash string, opts SolutionKeyOpts) string {
	return k.prefix + k.inner.SolutionKey(inputHash, opts)
}
