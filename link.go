package ansimd

// PendingLink is a deferred reference link awaiting emission (§3 Link
// entity). Index is assigned in encounter order and never reused.
type PendingLink struct {
	Index       int
	Destination string
	Title       string
}

// LinkRegistry accumulates deferred reference links with monotonically
// increasing indices (§4.3). It is not safe for concurrent use — the
// engine is single-threaded by design (§5).
type LinkRegistry struct {
	next    int
	pending []PendingLink
}

// NewLinkRegistry returns an empty registry whose first Add call yields
// index 1.
func NewLinkRegistry() *LinkRegistry {
	return &LinkRegistry{next: 1}
}

// Add records a pending link and returns its assigned index.
func (r *LinkRegistry) Add(destination, title string) int {
	idx := r.next
	r.next++
	r.pending = append(r.pending, PendingLink{Index: idx, Destination: destination, Title: title})
	return idx
}

// IsEmpty reports whether the registry currently holds no pending links.
func (r *LinkRegistry) IsEmpty() bool {
	return len(r.pending) == 0
}

// Drain returns the pending links in encounter order and empties the
// registry. The next Add call after Drain continues the same monotonic
// sequence — indices are never reused and never decrease (§3 invariant).
func (r *LinkRegistry) Drain() []PendingLink {
	if len(r.pending) == 0 {
		return nil
	}
	out := r.pending
	r.pending = nil
	return out
}
