package nakama

const (
	// RpcCreateMatch is the Nakama RPC id clients call to start their own session match.
	RpcCreateMatch = "tilequeue_create"

	// RpcJoinTicket issues a spectator ticket for an existing match.
	RpcJoinTicket = "tilequeue_ticket"

	// MatchNameTileQueue is the authoritative match handler name registered with Nakama.
	MatchNameTileQueue = "tilequeue_match"

	// GameLabel identifies tilequeue matches in label queries.
	GameLabel = "tilequeue"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpPlay         int64 = 1
	OpReserve      int64 = 2
	OpUseReserved  int64 = 3
	OpSwap         int64 = 4
	OpUndo         int64 = 5
	OpInvert       int64 = 6
	OpRequestState int64 = 7

	// Server -> Client events
	OpBoardState    int64 = 100
	OpPiecePlayed   int64 = 101
	OpPieceQueued   int64 = 102
	OpPieceReserved int64 = 103
	OpReserveUsed   int64 = 104
	OpPiecesSwapped int64 = 105
	OpUndone        int64 = 106
	OpInverted      int64 = 107
	OpError         int64 = 110 // send privately
)

// Error codes carried in OpError payloads.
const (
	ErrCodeQueueFull        = "queue_full"
	ErrCodeQueueEmpty       = "queue_empty"
	ErrCodeStackFull        = "stack_full"
	ErrCodeStackEmpty       = "stack_empty"
	ErrCodeNothingToUndo    = "nothing_to_undo"
	ErrCodeInvertInfeasible = "invert_infeasible"
	ErrCodeNotOwner         = "not_owner"
	ErrCodeUnknownOpcode    = "unknown_opcode"
	ErrCodeInternal         = "internal"
)

// Nakama RPC status codes (gRPC numbering).
const (
	statusInvalidArgument = 3
	statusInternal        = 13
	statusUnauthenticated = 16
)
