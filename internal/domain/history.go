package domain

// Snapshot is a value copy of both containers taken before a mutation.
type Snapshot struct {
	Queue Queue
	Stack Stack
}

// Restore overwrites q and s with the snapshot contents.
func (snap Snapshot) Restore(q *Queue, s *Stack) {
	*q = snap.Queue.Clone()
	*s = snap.Stack.Clone()
}

// History is a bounded ring of snapshots. Recording into a full ring
// discards the oldest entry.
type History struct {
	entries []Snapshot
	start   int // oldest entry
	count   int
}

// NewHistory returns an empty history. Non-positive capacity falls back to HistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = HistoryCapacity
	}
	return &History{entries: make([]Snapshot, capacity)}
}

func (h *History) Len() int { return h.count }
func (h *History) Cap() int { return len(h.entries) }

// Record deep-copies q and s and appends them as the newest entry.
func (h *History) Record(q *Queue, s *Stack) {
	snap := Snapshot{Queue: q.Clone(), Stack: s.Clone()}
	if h.count == len(h.entries) {
		// Overwrite the oldest slot and advance the ring.
		h.entries[h.start] = snap
		h.start = (h.start + 1) % len(h.entries)
		return
	}
	h.entries[(h.start+h.count)%len(h.entries)] = snap
	h.count++
}

// Undo removes and returns the newest snapshot.
func (h *History) Undo() (Snapshot, bool) {
	if h.count == 0 {
		return Snapshot{}, false
	}
	idx := (h.start + h.count - 1) % len(h.entries)
	snap := h.entries[idx]
	h.entries[idx] = Snapshot{}
	h.count--
	return snap, true
}

// Clear drops every snapshot.
func (h *History) Clear() {
	clear(h.entries)
	h.start, h.count = 0, 0
}
