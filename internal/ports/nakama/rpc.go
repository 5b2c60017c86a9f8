package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"tilequeue/internal/app"
	"tilequeue/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// CreateMatchResponse is returned by RpcCreateMatch. Ticket is empty when
// the server runs without a ticket secret.
type CreateMatchResponse struct {
	MatchID string `json:"match_id"`
	Ticket  string `json:"ticket"`
}

// JoinTicketRequest is the payload of RpcJoinTicket.
type JoinTicketRequest struct {
	MatchID string `json:"match_id"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcCreateMatch, rpcCreateMatch); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcJoinTicket, rpcJoinTicket)
}

// runtimeConfig parses the Nakama env map carried by ctx.
func runtimeConfig(ctx context.Context) (config.RuntimeConfig, error) {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	return config.ParseRuntimeEnv(env)
}

// rpcCreateMatch creates a match owned by the caller and returns its id with
// a join ticket for the caller.
func rpcCreateMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("authentication required", statusUnauthenticated)
	}

	rc, err := runtimeConfig(ctx)
	if err != nil {
		logger.Error("rpcCreateMatch [User:%s]: %v", userID, err)
		return "", runtime.NewError("Internal error", statusInternal)
	}

	// Ownership is fixed at creation; MatchJoin only assigns it when no owner was requested.
	matchID, err := nk.MatchCreate(ctx, MatchNameTileQueue, map[string]interface{}{
		paramOwner: userID,
	})
	if err != nil {
		logger.Error("rpcCreateMatch [User:%s]: Failed to create match: %v", userID, err)
		return "", err
	}

	resp := CreateMatchResponse{MatchID: matchID}
	tickets := app.NewTicketService(rc.TicketSecret, rc.TicketTTL)
	if tickets.Enabled() {
		resp.Ticket, err = tickets.Issue(userID, matchID)
		if err != nil {
			logger.Error("rpcCreateMatch [User:%s]: Failed to issue ticket: %v", userID, err)
			return "", runtime.NewError("Internal error", statusInternal)
		}
	}

	logger.Info("rpcCreateMatch [User:%s]: Created match %s", userID, matchID)
	return marshalResponse(logger, resp)
}

// rpcJoinTicket issues a ticket letting the caller join an existing match,
// normally as a spectator.
func rpcJoinTicket(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("authentication required", statusUnauthenticated)
	}

	var req JoinTicketRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil || req.MatchID == "" {
		return "", runtime.NewError("Invalid payload", statusInvalidArgument)
	}

	rc, err := runtimeConfig(ctx)
	if err != nil {
		logger.Error("rpcJoinTicket [User:%s]: %v", userID, err)
		return "", runtime.NewError("Internal error", statusInternal)
	}

	resp := CreateMatchResponse{MatchID: req.MatchID}
	tickets := app.NewTicketService(rc.TicketSecret, rc.TicketTTL)
	if tickets.Enabled() {
		resp.Ticket, err = tickets.Issue(userID, req.MatchID)
		if err != nil {
			logger.Error("rpcJoinTicket [User:%s]: Failed to issue ticket: %v", userID, err)
			return "", runtime.NewError("Internal error", statusInternal)
		}
	}

	return marshalResponse(logger, resp)
}

// marshalResponse encodes an RPC response as JSON.
func marshalResponse(logger runtime.Logger, resp interface{}) (string, error) {
	b, err := json.Marshal(resp)
	if err != nil {
		logger.Error("Failed to marshal RPC response: %v", err)
		return "", runtime.NewError("Internal error", statusInternal)
	}
	return string(b), nil
}
