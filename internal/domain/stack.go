package domain

// Stack is a fixed-capacity LIFO of reserved pieces.
type Stack struct {
	items []Piece
	size  int // items[size-1] is the top
}

// NewStack returns an empty stack. Non-positive capacity falls back to StackCapacity.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = StackCapacity
	}
	return &Stack{items: make([]Piece, capacity)}
}

func (s *Stack) Len() int      { return s.size }
func (s *Stack) Cap() int      { return len(s.items) }
func (s *Stack) IsEmpty() bool { return s.size == 0 }
func (s *Stack) IsFull() bool  { return s.size == len(s.items) }

// Push places p on top.
func (s *Stack) Push(p Piece) error {
	if s.IsFull() {
		return ErrStackFull
	}
	s.items[s.size] = p
	s.size++
	return nil
}

// Pop removes and returns the top piece.
func (s *Stack) Pop() (Piece, error) {
	if s.IsEmpty() {
		return Piece{}, ErrStackEmpty
	}
	s.size--
	p := s.items[s.size]
	s.items[s.size] = Piece{}
	return p, nil
}

// Top returns the top piece without removing it.
func (s *Stack) Top() (Piece, bool) {
	if s.IsEmpty() {
		return Piece{}, false
	}
	return s.items[s.size-1], true
}

// SetTop replaces the top piece in place and returns the one it replaced.
func (s *Stack) SetTop(p Piece) (Piece, error) {
	if s.IsEmpty() {
		return Piece{}, ErrStackEmpty
	}
	prev := s.items[s.size-1]
	s.items[s.size-1] = p
	return prev, nil
}

// Items returns the pieces bottom to top.
func (s *Stack) Items() []Piece {
	out := make([]Piece, s.size)
	copy(out, s.items[:s.size])
	return out
}

// TopDown returns the pieces top to bottom, the order players read a reserve.
func (s *Stack) TopDown() []Piece {
	out := make([]Piece, s.size)
	for i := range out {
		out[i] = s.items[s.size-1-i]
	}
	return out
}

// Reset empties the stack.
func (s *Stack) Reset() {
	clear(s.items)
	s.size = 0
}

// Clone returns a deep copy that shares no storage with s.
func (s *Stack) Clone() Stack {
	c := *s
	c.items = append([]Piece(nil), s.items...)
	return c
}
