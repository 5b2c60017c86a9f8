package domain

import (
	"errors"
	"fmt"
)

var (
	ErrQueueFull        = errors.New("queue full")
	ErrQueueEmpty       = errors.New("queue empty")
	ErrStackFull        = errors.New("stack full")
	ErrStackEmpty       = errors.New("stack empty")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrInvertInfeasible = errors.New("invert infeasible")
)

// InvertInfeasibleError reports which container cannot take the other's contents.
// It matches ErrInvertInfeasible under errors.Is.
type InvertInfeasibleError struct {
	Source   string // "queue" or "stack": the container whose contents do not fit
	Target   string
	Size     int
	Capacity int
}

func (e *InvertInfeasibleError) Error() string {
	return fmt.Sprintf("infeasible: %s size %d exceeds %s capacity %d", e.Source, e.Size, e.Target, e.Capacity)
}

func (e *InvertInfeasibleError) Is(target error) bool {
	return target == ErrInvertInfeasible
}
