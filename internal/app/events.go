package app

import "tilequeue/internal/domain"

// EventKind identifies emitted session events for Nakama dispatch.
type EventKind string

const (
	EventPiecePlayed   EventKind = "piece_played"
	EventPieceQueued   EventKind = "piece_queued"
	EventPieceReserved EventKind = "piece_reserved"
	EventReserveUsed   EventKind = "reserve_used"
	EventPiecesSwapped EventKind = "pieces_swapped"
	EventUndone        EventKind = "undone"
	EventInverted      EventKind = "inverted"
)

// Event is the result of a successful session operation.
type Event struct {
	Kind    EventKind
	Payload any
}

type PiecePlayedPayload struct {
	Piece domain.Piece
}

// PieceQueuedPayload carries the refill generated after a play or reserve.
type PieceQueuedPayload struct {
	Piece domain.Piece
}

type PieceReservedPayload struct {
	Piece domain.Piece
}

type ReserveUsedPayload struct {
	Piece domain.Piece
}

type PiecesSwappedPayload struct {
	ToQueue domain.Piece // old stack top, now at the queue front
	ToStack domain.Piece // old queue front, now on top of the stack
}

type UndonePayload struct {
	Remaining int
}

type InvertedPayload struct {
	QueueLen int
	StackLen int
}
