package app

import (
	"tilequeue/internal/domain"
)

// Session owns one queue, one stack and their undo history. Every mutating
// operation checks its preconditions, then records the current state, then
// mutates, so a rejected operation never reaches the history.
//
// A Session is not safe for concurrent use.
type Session struct {
	gen     Generator
	queue   *domain.Queue
	stack   *domain.Stack
	history *domain.History
}

// NewSession builds a session with the queue filled to capacity and the stack empty.
// gen may be nil to use a time-seeded RandomGenerator.
func NewSession(gen Generator, caps domain.Capacities) *Session {
	if gen == nil {
		gen = NewRandomGenerator(nil)
	}
	caps = caps.Normalize()

	s := &Session{
		gen:     gen,
		queue:   domain.NewQueue(caps.Queue),
		stack:   domain.NewStack(caps.Stack),
		history: domain.NewHistory(caps.History),
	}
	for !s.queue.IsFull() {
		s.refill()
	}
	return s
}

// Play removes the front piece and refills the queue.
func (s *Session) Play() ([]Event, error) {
	if s.queue.IsEmpty() {
		return nil, domain.ErrQueueEmpty
	}
	s.history.Record(s.queue, s.stack)

	played := s.dequeue()
	queued := s.refill()
	return []Event{
		{Kind: EventPiecePlayed, Payload: PiecePlayedPayload{Piece: played}},
		{Kind: EventPieceQueued, Payload: PieceQueuedPayload{Piece: queued}},
	}, nil
}

// Reserve moves the front piece onto the stack and refills the queue.
func (s *Session) Reserve() ([]Event, error) {
	if s.queue.IsEmpty() {
		return nil, domain.ErrQueueEmpty
	}
	if s.stack.IsFull() {
		return nil, domain.ErrStackFull
	}
	s.history.Record(s.queue, s.stack)

	reserved := s.dequeue()
	if err := s.stack.Push(reserved); err != nil {
		panic("app: push after capacity check: " + err.Error())
	}
	queued := s.refill()
	return []Event{
		{Kind: EventPieceReserved, Payload: PieceReservedPayload{Piece: reserved}},
		{Kind: EventPieceQueued, Payload: PieceQueuedPayload{Piece: queued}},
	}, nil
}

// UseReserved pops and discards the top of the stack.
func (s *Session) UseReserved() ([]Event, error) {
	if s.stack.IsEmpty() {
		return nil, domain.ErrStackEmpty
	}
	s.history.Record(s.queue, s.stack)

	used, err := s.stack.Pop()
	if err != nil {
		panic("app: pop after emptiness check: " + err.Error())
	}
	return []Event{{Kind: EventReserveUsed, Payload: ReserveUsedPayload{Piece: used}}}, nil
}

// SwapTopWithFront exchanges the queue front and the stack top in place.
func (s *Session) SwapTopWithFront() ([]Event, error) {
	front, ok := s.queue.Front()
	if !ok {
		return nil, domain.ErrQueueEmpty
	}
	top, ok := s.stack.Top()
	if !ok {
		return nil, domain.ErrStackEmpty
	}
	s.history.Record(s.queue, s.stack)

	if err := domain.SwapFrontTop(s.queue, s.stack); err != nil {
		panic("app: swap after checks: " + err.Error())
	}
	return []Event{{Kind: EventPiecesSwapped, Payload: PiecesSwappedPayload{ToQueue: top, ToStack: front}}}, nil
}

// Undo restores both containers to the most recent snapshot.
func (s *Session) Undo() ([]Event, error) {
	snap, ok := s.history.Undo()
	if !ok {
		return nil, domain.ErrNothingToUndo
	}
	snap.Restore(s.queue, s.stack)
	return []Event{{Kind: EventUndone, Payload: UndonePayload{Remaining: s.history.Len()}}}, nil
}

// Invert exchanges the whole contents of the queue and the stack. The queue
// is not refilled afterwards.
func (s *Session) Invert() ([]Event, error) {
	if err := domain.CheckInvert(s.queue, s.stack); err != nil {
		return nil, err
	}
	s.history.Record(s.queue, s.stack)

	if err := domain.Invert(s.queue, s.stack); err != nil {
		panic("app: invert after feasibility check: " + err.Error())
	}
	return []Event{{Kind: EventInverted, Payload: InvertedPayload{
		QueueLen: s.queue.Len(),
		StackLen: s.stack.Len(),
	}}}, nil
}

// Queue returns the queued pieces front to rear.
func (s *Session) Queue() []domain.Piece { return s.queue.Items() }

// Stack returns the reserved pieces top to bottom.
func (s *Session) Stack() []domain.Piece { return s.stack.TopDown() }

// HistoryLen returns how many undo steps are available.
func (s *Session) HistoryLen() int { return s.history.Len() }

// Board returns a value view of the session.
func (s *Session) Board() domain.Board {
	return domain.Board{
		Queue:         s.queue.Items(),
		Stack:         s.stack.TopDown(),
		QueueCapacity: s.queue.Cap(),
		StackCapacity: s.stack.Cap(),
		HistoryLen:    s.history.Len(),
	}
}

func (s *Session) dequeue() domain.Piece {
	p, err := s.queue.Dequeue()
	if err != nil {
		panic("app: dequeue after emptiness check: " + err.Error())
	}
	return p
}

func (s *Session) refill() domain.Piece {
	p := s.gen.Next()
	if err := s.queue.Enqueue(p); err != nil {
		panic("app: refill into full queue: " + err.Error())
	}
	return p
}
