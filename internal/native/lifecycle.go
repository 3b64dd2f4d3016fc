package native

// LoadAndRelease runs load, hands the result to consume and always passes it
// to release before returning, including when consume panics. It collapses a
// native load/unload pair whose intermediate value is only needed to produce
// a Go-owned copy.
func LoadAndRelease[L, R any](load func() L, release func(L), consume func(L) R) R {
	l := load()
	defer release(l)
	return consume(l)
}
