package nakama

import (
	"errors"
	"fmt"

	"tilequeue/internal/app"
	"tilequeue/internal/domain"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrNotOwner rejects operations sent by spectators.
var ErrNotOwner = errors.New("only the match owner may act")

// clientOps maps client op codes to session operations.
var clientOps = map[int64]app.Operation{
	OpPlay:        app.OpPlay,
	OpReserve:     app.OpReserve,
	OpUseReserved: app.OpUseReserved,
	OpSwap:        app.OpSwap,
	OpUndo:        app.OpUndo,
	OpInvert:      app.OpInvert,
}

var eventOpCodes = map[app.EventKind]int64{
	app.EventPiecePlayed:   OpPiecePlayed,
	app.EventPieceQueued:   OpPieceQueued,
	app.EventPieceReserved: OpPieceReserved,
	app.EventReserveUsed:   OpReserveUsed,
	app.EventPiecesSwapped: OpPiecesSwapped,
	app.EventUndone:        OpUndone,
	app.EventInverted:      OpInverted,
}

func pieceToValue(p domain.Piece) map[string]interface{} {
	return map[string]interface{}{
		"id":   p.ID,
		"kind": string(p.Kind),
	}
}

// piecesToList keeps the element type []interface{}, which is what structpb accepts.
func piecesToList(pieces []domain.Piece) []interface{} {
	out := make([]interface{}, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, pieceToValue(p))
	}
	return out
}

func boardToStruct(b domain.Board) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"queue":          piecesToList(b.Queue),
		"stack":          piecesToList(b.Stack),
		"history":        b.HistoryLen,
		"queue_capacity": b.QueueCapacity,
		"stack_capacity": b.StackCapacity,
	})
}

// eventToStruct returns the op code and payload for a session event.
func eventToStruct(ev app.Event) (int64, *structpb.Struct, error) {
	opCode, ok := eventOpCodes[ev.Kind]
	if !ok {
		return 0, nil, fmt.Errorf("unknown event kind %q", ev.Kind)
	}

	var fields map[string]interface{}
	switch p := ev.Payload.(type) {
	case app.PiecePlayedPayload:
		fields = map[string]interface{}{"piece": pieceToValue(p.Piece)}
	case app.PieceQueuedPayload:
		fields = map[string]interface{}{"piece": pieceToValue(p.Piece)}
	case app.PieceReservedPayload:
		fields = map[string]interface{}{"piece": pieceToValue(p.Piece)}
	case app.ReserveUsedPayload:
		fields = map[string]interface{}{"piece": pieceToValue(p.Piece)}
	case app.PiecesSwappedPayload:
		fields = map[string]interface{}{
			"to_queue": pieceToValue(p.ToQueue),
			"to_stack": pieceToValue(p.ToStack),
		}
	case app.UndonePayload:
		fields = map[string]interface{}{"remaining": p.Remaining}
	case app.InvertedPayload:
		fields = map[string]interface{}{
			"queue_len": p.QueueLen,
			"stack_len": p.StackLen,
		}
	default:
		return 0, nil, fmt.Errorf("unexpected payload %T for %s", ev.Payload, ev.Kind)
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return 0, nil, err
	}
	return opCode, s, nil
}

// errorCode classifies err into the wire error code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrQueueFull):
		return ErrCodeQueueFull
	case errors.Is(err, domain.ErrQueueEmpty):
		return ErrCodeQueueEmpty
	case errors.Is(err, domain.ErrStackFull):
		return ErrCodeStackFull
	case errors.Is(err, domain.ErrStackEmpty):
		return ErrCodeStackEmpty
	case errors.Is(err, domain.ErrNothingToUndo):
		return ErrCodeNothingToUndo
	case errors.Is(err, domain.ErrInvertInfeasible):
		return ErrCodeInvertInfeasible
	case errors.Is(err, ErrNotOwner):
		return ErrCodeNotOwner
	case errors.Is(err, app.ErrUnknownOperation):
		return ErrCodeUnknownOpcode
	default:
		return ErrCodeInternal
	}
}

func errorToStruct(err error) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"code":    errorCode(err),
		"message": err.Error(),
	})
}

func encodeStruct(s *structpb.Struct) ([]byte, error) {
	return proto.Marshal(s)
}

// matchLabel renders the label Nakama indexes for match listing.
func matchLabel(open bool, owner string) (string, error) {
	s, err := structpb.NewStruct(map[string]interface{}{
		"game":  GameLabel,
		"open":  open,
		"owner": owner,
	})
	if err != nil {
		return "", err
	}
	b, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
