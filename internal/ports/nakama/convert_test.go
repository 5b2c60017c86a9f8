package nakama

import (
	"encoding/json"
	"fmt"
	"testing"

	"tilequeue/internal/app"
	"tilequeue/internal/domain"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrQueueFull, ErrCodeQueueFull},
		{domain.ErrQueueEmpty, ErrCodeQueueEmpty},
		{domain.ErrStackFull, ErrCodeStackFull},
		{domain.ErrStackEmpty, ErrCodeStackEmpty},
		{domain.ErrNothingToUndo, ErrCodeNothingToUndo},
		{&domain.InvertInfeasibleError{Source: "queue", Target: "stack", Size: 4, Capacity: 3}, ErrCodeInvertInfeasible},
		{ErrNotOwner, ErrCodeNotOwner},
		{fmt.Errorf("%w: 9", app.ErrUnknownOperation), ErrCodeUnknownOpcode},
		{fmt.Errorf("boom"), ErrCodeInternal},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			if got := errorCode(test.err); got != test.want {
				t.Fatalf("errorCode(%v) = %s, want %s", test.err, got, test.want)
			}
		})
	}
}

func TestEventToStruct(t *testing.T) {
	piece := domain.Piece{ID: 3, Kind: domain.KindT}
	other := domain.Piece{ID: 4, Kind: domain.KindI}

	tests := []struct {
		name   string
		event  app.Event
		opCode int64
		field  string
	}{
		{"Played", app.Event{Kind: app.EventPiecePlayed, Payload: app.PiecePlayedPayload{Piece: piece}}, OpPiecePlayed, "piece"},
		{"Queued", app.Event{Kind: app.EventPieceQueued, Payload: app.PieceQueuedPayload{Piece: piece}}, OpPieceQueued, "piece"},
		{"Reserved", app.Event{Kind: app.EventPieceReserved, Payload: app.PieceReservedPayload{Piece: piece}}, OpPieceReserved, "piece"},
		{"Used", app.Event{Kind: app.EventReserveUsed, Payload: app.ReserveUsedPayload{Piece: piece}}, OpReserveUsed, "piece"},
		{"Swapped", app.Event{Kind: app.EventPiecesSwapped, Payload: app.PiecesSwappedPayload{ToQueue: piece, ToStack: other}}, OpPiecesSwapped, "to_stack"},
		{"Undone", app.Event{Kind: app.EventUndone, Payload: app.UndonePayload{Remaining: 2}}, OpUndone, "remaining"},
		{"Inverted", app.Event{Kind: app.EventInverted, Payload: app.InvertedPayload{QueueLen: 1, StackLen: 2}}, OpInverted, "stack_len"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			opCode, payload, err := eventToStruct(test.event)
			if err != nil {
				t.Fatalf("eventToStruct error: %v", err)
			}
			if opCode != test.opCode {
				t.Fatalf("opCode = %d, want %d", opCode, test.opCode)
			}
			if _, ok := payload.AsMap()[test.field]; !ok {
				t.Fatalf("payload %v missing %q", payload.AsMap(), test.field)
			}
		})
	}

	if _, _, err := eventToStruct(app.Event{Kind: app.EventUndone, Payload: "wrong"}); err == nil {
		t.Fatalf("expected error for mismatched payload")
	}
}

func TestBoardToStruct_StackTopFirst(t *testing.T) {
	board := domain.Board{
		Queue:         []domain.Piece{{ID: 5, Kind: domain.KindO}},
		Stack:         []domain.Piece{{ID: 2, Kind: domain.KindL}, {ID: 1, Kind: domain.KindI}},
		QueueCapacity: 5,
		StackCapacity: 3,
		HistoryLen:    4,
	}
	s, err := boardToStruct(board)
	if err != nil {
		t.Fatalf("boardToStruct error: %v", err)
	}
	raw, err := json.Marshal(s.AsMap())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"history":4,"queue":[{"id":5,"kind":"O"}],"queue_capacity":5,"stack":[{"id":2,"kind":"L"},{"id":1,"kind":"I"}],"stack_capacity":3}`
	if string(raw) != want {
		t.Fatalf("board = %s, want %s", raw, want)
	}
}

func TestMatchLabel(t *testing.T) {
	label, err := matchLabel(true, "user-1")
	if err != nil {
		t.Fatalf("matchLabel error: %v", err)
	}
	var got map[string]interface{}
	if err := json.Unmarshal([]byte(label), &got); err != nil {
		t.Fatalf("label %q is not JSON: %v", label, err)
	}
	if got["game"] != GameLabel || got["open"] != true || got["owner"] != "user-1" {
		t.Fatalf("unexpected label %v", got)
	}
}
