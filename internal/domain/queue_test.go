package domain

import (
	"errors"
	"reflect"
	"testing"
	"testing/quick"
)

func pieces(ids ...int) []Piece {
	out := make([]Piece, len(ids))
	for i, id := range ids {
		out[i] = Piece{ID: id, Kind: Kinds[id%len(Kinds)]}
	}
	return out
}

func filledQueue(t *testing.T, capacity int, ids ...int) *Queue {
	t.Helper()
	q := NewQueue(capacity)
	for _, p := range pieces(ids...) {
		if err := q.Enqueue(p); err != nil {
			t.Fatalf("enqueue %v: %v", p, err)
		}
	}
	return q
}

func TestQueueEnqueueUntilFull(t *testing.T) {
	q := filledQueue(t, QueueCapacity, 1, 2, 3, 4, 5)
	if !q.IsFull() {
		t.Fatalf("queue should be full at %d", q.Len())
	}

	err := q.Enqueue(Piece{ID: 6, Kind: KindI})
	if !errors.Is(err, ErrQueueFull) {
		t.Fatalf("enqueue on full queue err = %v, want %v", err, ErrQueueFull)
	}
	if got, want := q.Items(), pieces(1, 2, 3, 4, 5); !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
}

func TestQueueDequeueEmpty(t *testing.T) {
	q := NewQueue(QueueCapacity)
	p, err := q.Dequeue()
	if !errors.Is(err, ErrQueueEmpty) {
		t.Fatalf("dequeue err = %v, want %v", err, ErrQueueEmpty)
	}
	if !p.IsZero() {
		t.Fatalf("dequeue on empty returned %v, want zero piece", p)
	}
	if _, ok := q.Front(); ok {
		t.Fatalf("front on empty queue should report false")
	}
}

func TestQueueWrapsAround(t *testing.T) {
	q := filledQueue(t, 3, 1, 2, 3)
	for want := 1; want <= 2; want++ {
		p, err := q.Dequeue()
		if err != nil {
			t.Fatalf("dequeue: %v", err)
		}
		if p.ID != want {
			t.Fatalf("dequeued %d, want %d", p.ID, want)
		}
	}
	for _, p := range pieces(4, 5) {
		if err := q.Enqueue(p); err != nil {
			t.Fatalf("enqueue after wrap: %v", err)
		}
	}

	if got, want := q.Items(), pieces(3, 4, 5); !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	if front, _ := q.Front(); front.ID != 3 {
		t.Fatalf("front = %v, want id 3", front)
	}
	// head == tail here; size must disambiguate full from empty.
	if q.head != q.tail || !q.IsFull() || q.IsEmpty() {
		t.Fatalf("head=%d tail=%d full=%t empty=%t", q.head, q.tail, q.IsFull(), q.IsEmpty())
	}
}

func TestQueueSetFront(t *testing.T) {
	q := filledQueue(t, QueueCapacity, 1, 2, 3)
	prev, err := q.SetFront(Piece{ID: 9, Kind: KindT})
	if err != nil {
		t.Fatalf("set front: %v", err)
	}
	if prev.ID != 1 {
		t.Fatalf("replaced piece = %v, want id 1", prev)
	}
	if got := q.Items(); got[0].ID != 9 || got[1].ID != 2 || len(got) != 3 {
		t.Fatalf("items = %v", got)
	}

	if _, err := NewQueue(2).SetFront(Piece{ID: 1}); !errors.Is(err, ErrQueueEmpty) {
		t.Fatalf("set front on empty err = %v", err)
	}
}

func TestQueueCloneIsIndependent(t *testing.T) {
	q := filledQueue(t, QueueCapacity, 1, 2)
	c := q.Clone()
	if _, err := q.Dequeue(); err != nil {
		t.Fatalf("dequeue: %v", err)
	}
	if c.Len() != 2 || c.Items()[0].ID != 1 {
		t.Fatalf("clone changed with original: %v", c.Items())
	}
}

func TestQueueNonPositiveCapacityUsesDefault(t *testing.T) {
	if got := NewQueue(0).Cap(); got != QueueCapacity {
		t.Fatalf("cap = %d, want %d", got, QueueCapacity)
	}
}

// Random enqueue/dequeue sequences keep FIFO order and stay within bounds.
func TestQueueFIFOProperty(t *testing.T) {
	property := func(ops []bool) bool {
		q := NewQueue(QueueCapacity)
		var model []Piece
		nextID := 0
		for _, enqueue := range ops {
			if enqueue {
				nextID++
				p := Piece{ID: nextID, Kind: KindO}
				err := q.Enqueue(p)
				if len(model) == QueueCapacity {
					if !errors.Is(err, ErrQueueFull) {
						return false
					}
				} else {
					if err != nil {
						return false
					}
					model = append(model, p)
				}
			} else {
				p, err := q.Dequeue()
				if len(model) == 0 {
					if !errors.Is(err, ErrQueueEmpty) {
						return false
					}
				} else {
					if err != nil || p != model[0] {
						return false
					}
					model = model[1:]
				}
			}
			if q.Len() < 0 || q.Len() > QueueCapacity || q.Len() != len(model) {
				return false
			}
		}
		return reflect.DeepEqual(q.Items(), append([]Piece{}, model...))
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatal(err)
	}
}
