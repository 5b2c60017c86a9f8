package app

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is returned by Apply for values outside the Op constants.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names one of the session's player actions.
type Operation int

const (
	OpPlay Operation = iota + 1
	OpReserve
	OpUseReserved
	OpSwap
	OpUndo
	OpInvert
)

var operationNames = map[Operation]string{
	OpPlay:        "play",
	OpReserve:     "reserve",
	OpUseReserved: "use_reserved",
	OpSwap:        "swap",
	OpUndo:        "undo",
	OpInvert:      "invert",
}

func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// Apply runs op against the session.
func (s *Session) Apply(op Operation) ([]Event, error) {
	switch op {
	case OpPlay:
		return s.Play()
	case OpReserve:
		return s.Reserve()
	case OpUseReserved:
		return s.UseReserved()
	case OpSwap:
		return s.SwapTopWithFront()
	case OpUndo:
		return s.Undo()
	case OpInvert:
		return s.Invert()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperation, int(op))
	}
}
