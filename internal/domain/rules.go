package domain

// CheckInvert reports whether q and s can exchange their whole contents.
// Each container's current size is compared against the other's capacity,
// queue first.
func CheckInvert(q *Queue, s *Stack) error {
	if q.Len() > s.Cap() {
		return &InvertInfeasibleError{Source: "queue", Target: "stack", Size: q.Len(), Capacity: s.Cap()}
	}
	if s.Len() > q.Cap() {
		return &InvertInfeasibleError{Source: "stack", Target: "queue", Size: s.Len(), Capacity: q.Cap()}
	}
	return nil
}

// Invert exchanges the contents of q and s. The stack bottom becomes the new
// queue front and the old queue rear becomes the new stack top.
func Invert(q *Queue, s *Stack) error {
	if err := CheckInvert(q, s); err != nil {
		return err
	}

	fromQueue := q.Items() // front..rear
	fromStack := s.Items() // bottom..top

	q.Reset()
	s.Reset()

	for _, p := range fromStack {
		mustSucceed(q.Enqueue(p))
	}
	for _, p := range fromQueue {
		mustSucceed(s.Push(p))
	}
	return nil
}

// SwapFrontTop exchanges the queue front with the stack top in place.
func SwapFrontTop(q *Queue, s *Stack) error {
	front, ok := q.Front()
	if !ok {
		return ErrQueueEmpty
	}
	top, ok := s.Top()
	if !ok {
		return ErrStackEmpty
	}
	mustPiece(q.SetFront(top))
	mustPiece(s.SetTop(front))
	return nil
}

// mustSucceed panics on container errors that preconditions already ruled out.
func mustSucceed(err error) {
	if err != nil {
		panic("domain: container invariant violated: " + err.Error())
	}
}

func mustPiece(_ Piece, err error) {
	mustSucceed(err)
}
