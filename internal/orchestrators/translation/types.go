package translation

// ResolveInput names one resource to localize
type ResolveInput struct {
	URL      string
	Language string
}

// ResolveOutput is the outcome of a single lookup. Name is empty whenever
// Found is false. Err keeps the upstream cause for diagnostics; callers
// render the empty name rather than failing.
type ResolveOutput struct {
	Name  string
	Found bool
	Err   error
}

// ResolveAllInput names a batch of resources to localize in one language
type ResolveAllInput struct {
	URLs     []string
	Language string
}

// ResolveAllOutput holds one name per input URL, in input order. A failed
// or missing translation is an empty string in its slot.
type ResolveAllOutput struct {
	Names []string
}
