package domain

// Default container capacities.
const (
	QueueCapacity   = 5
	StackCapacity   = 3
	HistoryCapacity = 100
)

// Capacities sizes the containers owned by a session.
type Capacities struct {
	Queue   int
	Stack   int
	History int
}

// DefaultCapacities returns the standard 5/3/100 sizing.
func DefaultCapacities() Capacities {
	return Capacities{
		Queue:   QueueCapacity,
		Stack:   StackCapacity,
		History: HistoryCapacity,
	}
}

// Normalize replaces non-positive fields with their defaults.
func (c Capacities) Normalize() Capacities {
	if c.Queue <= 0 {
		c.Queue = QueueCapacity
	}
	if c.Stack <= 0 {
		c.Stack = StackCapacity
	}
	if c.History <= 0 {
		c.History = HistoryCapacity
	}
	return c
}
