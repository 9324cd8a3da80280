package feed

// HistoryLimit is the number of entries kept in the operations log.
const HistoryLimit = 9

// History is a bounded, most-recent-first list of entries.
// The zero value is ready to use.
type History struct {
	entries []Entry
}

// Push prepends e and drops the oldest entry once the limit is exceeded.
func (h *History) Push(e Entry) {
	keep := len(h.entries)
	if keep > HistoryLimit-1 {
		keep = HistoryLimit - 1
	}
	next := make([]Entry, 0, keep+1)
	next = append(next, e)
	next = append(next, h.entries[:keep]...)
	h.entries = next
}

// Entries returns a copy of the history, newest first.
func (h *History) Entries() []Entry {
	if len(h.entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(h.entries))
	copy(dup, h.entries)
	return dup
}

// Len returns the number of entries currently held.
func (h *History) Len() int {
	return len(h.entries)
}
