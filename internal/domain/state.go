package domain

import "fmt"

// Kind is the shape tag of a piece.
type Kind string

const (
	KindI Kind = "I"
	KindO Kind = "O"
	KindT Kind = "T"
	KindL Kind = "L"
)

// Kinds lists every piece kind a generator may draw from.
var Kinds = [...]Kind{KindI, KindO, KindT, KindL}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Piece is a single tile. The zero Piece means "no piece".
type Piece struct {
	ID   int
	Kind Kind
}

// IsZero reports whether p is the empty sentinel.
func (p Piece) IsZero() bool {
	return p == Piece{}
}

func (p Piece) String() string {
	if p.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s#%d", p.Kind, p.ID)
}

// Board is a read-only view of a session, used for display and by bots.
type Board struct {
	Queue         []Piece // front to rear
	Stack         []Piece // top to bottom
	QueueCapacity int
	StackCapacity int
	HistoryLen    int
}

// CanPlay reports whether the queue has a front piece.
func (b Board) CanPlay() bool { return len(b.Queue) > 0 }

// CanReserve reports whether the front piece can move onto the stack.
func (b Board) CanReserve() bool {
	return len(b.Queue) > 0 && len(b.Stack) < b.StackCapacity
}

// CanUseReserved reports whether the stack has a top piece.
func (b Board) CanUseReserved() bool { return len(b.Stack) > 0 }

// CanSwap reports whether both the queue front and the stack top exist.
func (b Board) CanSwap() bool { return len(b.Queue) > 0 && len(b.Stack) > 0 }

// CanUndo reports whether any snapshot is recorded.
func (b Board) CanUndo() bool { return b.HistoryLen > 0 }

// CanInvert reports whether each container can hold the other's contents.
func (b Board) CanInvert() bool {
	return len(b.Queue) <= b.StackCapacity && len(b.Stack) <= b.QueueCapacity
}
