package domain

// Queue is a fixed-capacity circular FIFO of pieces.
// size is tracked on its own so head == tail is never ambiguous.
type Queue struct {
	items []Piece
	head  int // index of the front piece
	tail  int // index the next enqueue writes to
	size  int
}

// NewQueue returns an empty queue. Non-positive capacity falls back to QueueCapacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = QueueCapacity
	}
	return &Queue{items: make([]Piece, capacity)}
}

func (q *Queue) Len() int      { return q.size }
func (q *Queue) Cap() int      { return len(q.items) }
func (q *Queue) IsEmpty() bool { return q.size == 0 }
func (q *Queue) IsFull() bool  { return q.size == len(q.items) }

// Enqueue appends p at the rear.
func (q *Queue) Enqueue(p Piece) error {
	if q.IsFull() {
		return ErrQueueFull
	}
	q.items[q.tail] = p
	q.tail = q.next(q.tail)
	q.size++
	return nil
}

// Dequeue removes and returns the front piece.
func (q *Queue) Dequeue() (Piece, error) {
	if q.IsEmpty() {
		return Piece{}, ErrQueueEmpty
	}
	p := q.items[q.head]
	q.items[q.head] = Piece{}
	q.head = q.next(q.head)
	q.size--
	return p, nil
}

// Front returns the front piece without removing it.
func (q *Queue) Front() (Piece, bool) {
	if q.IsEmpty() {
		return Piece{}, false
	}
	return q.items[q.head], true
}

// SetFront replaces the front piece in place and returns the one it replaced.
func (q *Queue) SetFront(p Piece) (Piece, error) {
	if q.IsEmpty() {
		return Piece{}, ErrQueueEmpty
	}
	prev := q.items[q.head]
	q.items[q.head] = p
	return prev, nil
}

// Items returns the pieces in front to rear order.
func (q *Queue) Items() []Piece {
	out := make([]Piece, q.size)
	for i := range out {
		out[i] = q.items[(q.head+i)%len(q.items)]
	}
	return out
}

// Reset empties the queue and rewinds its indices.
func (q *Queue) Reset() {
	clear(q.items)
	q.head, q.tail, q.size = 0, 0, 0
}

// Clone returns a deep copy that shares no storage with q.
func (q *Queue) Clone() Queue {
	c := *q
	c.items = append([]Piece(nil), q.items...)
	return c
}

func (q *Queue) next(i int) int {
	return (i + 1) % len(q.items)
}
