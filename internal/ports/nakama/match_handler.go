package nakama

import (
	"context"
	"database/sql"
	"math/rand"
	"time"

	"tilequeue/internal/app"
	"tilequeue/internal/bot"
	"tilequeue/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
)

const (
	paramOwner     = "owner"  // MatchCreate param naming the owning user
	metadataTicket = "ticket" // join metadata key carrying the signed ticket
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	MatchID       string                      `json:"match_id"`
	OwnerUserID   string                      `json:"owner_user_id"`   // Only the owner may operate the session
	Tick          int64                       `json:"tick"`            // Current tick of the match
	LastInputTick int64                       `json:"last_input_tick"` // Tick of the owner's last operation, accepted or not
	BotWaitUntil  int64                       `json:"bot_wait_until"`  // Tick when the bot should act, 0 when unscheduled
	MaxSpectators int                         `json:"max_spectators"`
	Bot           config.BotConfig            `json:"bot"`
	Presences     map[string]runtime.Presence `json:"-"` // Map UserId -> Presence for targeted messaging
	Session       *app.Session                `json:"-"`
	Tickets       *app.TicketService          `json:"-"`
	Agent         *bot.Agent                  `json:"-"` // Acts for an idle owner when bots are enabled
	rng           *rand.Rand
}

// SpectatorCount returns the number of present users other than the owner.
func (ms *MatchState) SpectatorCount() int {
	count := len(ms.Presences)
	if _, ok := ms.Presences[ms.OwnerUserID]; ok {
		count--
	}
	return count
}

// IsOpen reports whether the match accepts another joiner.
func (ms *MatchState) IsOpen() bool {
	if ms.OwnerUserID == "" {
		return true
	}
	if _, ok := ms.Presences[ms.OwnerUserID]; !ok {
		return true
	}
	return ms.SpectatorCount() < ms.MaxSpectators
}

// canJoin reports whether userID may take a place in the match.
func (ms *MatchState) canJoin(userID string) bool {
	if ms.OwnerUserID == "" || userID == ms.OwnerUserID {
		return true
	}
	if _, ok := ms.Presences[userID]; ok {
		return true
	}
	return ms.SpectatorCount() < ms.MaxSpectators
}

// matchRandom returns the piece generator source for seed and a bot source
// derived from it.
func matchRandom(seed int64) (pieces, bots *rand.Rand) {
	pieces = rand.New(rand.NewSource(seed))
	bots = rand.New(rand.NewSource(pieces.Int63()))
	return pieces, bots
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return newMatchHandler(), nil
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	rc, err := runtimeConfig(ctx)
	if err != nil {
		logger.Error("MatchInit: Invalid runtime environment: %v", err)
		return nil, 0, ""
	}

	if err := config.LoadGameConfig(rc.ConfigPath); err != nil {
		logger.Warn("MatchInit: Could not load game config, using defaults: %v", err)
	}
	gameCfg := config.GetGameConfig()

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pieceRng, rng := matchRandom(seed)

	state := &MatchState{
		MaxSpectators: rc.MaxSpectators,
		Bot:           gameCfg.BotSettings(),
		Presences:     make(map[string]runtime.Presence),
		Session:       app.NewSession(app.NewRandomGenerator(pieceRng), gameCfg.Capacities()),
		Tickets:       app.NewTicketService(rc.TicketSecret, rc.TicketTTL),
		rng:           rng,
	}
	state.MatchID, _ = ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	if owner, ok := params[paramOwner].(string); ok {
		state.OwnerUserID = owner
	}

	if state.Bot.Enabled {
		agent, err := bot.NewAgent(state.OwnerUserID, bot.BotLevel(state.Bot.Level), rng)
		if err != nil {
			logger.Warn("MatchInit: Bot disabled: %v", err)
			state.Bot.Enabled = false
		} else {
			state.Agent = agent
		}
	}

	label, err := matchLabel(state.IsOpen(), state.OwnerUserID)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	return state, rc.TickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	userID := presence.GetUserId()
	if matchState.Tickets.Enabled() {
		if _, err := matchState.Tickets.Verify(metadata[metadataTicket], userID, matchState.MatchID); err != nil {
			logger.Warn("MatchJoinAttempt: Rejected %s: %v", userID, err)
			return state, false, "invalid ticket"
		}
	}

	if !matchState.canJoin(userID) {
		return state, false, "Match full"
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if matchState.OwnerUserID == "" {
			matchState.OwnerUserID = p.GetUserId()
			if matchState.Agent != nil {
				matchState.Agent.ID = p.GetUserId()
			}
			logger.Debug("MatchJoin: Owner set to %s.", p.GetUserId())
		}
		if p.GetUserId() == matchState.OwnerUserID {
			matchState.LastInputTick = tick
			matchState.BotWaitUntil = 0
		} else {
			logger.Debug("MatchJoin: %s joined as spectator.", p.GetUserId())
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastBoard(matchState, dispatcher, logger, nil)

	return matchState
}

// MatchLeave is called when one or more users leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		if p.GetUserId() == matchState.OwnerUserID {
			logger.Debug("MatchLeave: Owner %s left; the seat stays reserved.", p.GetUserId())
		}
	}

	if len(matchState.Presences) == 0 {
		logger.Info("MatchLeave: Terminating empty match.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch op := msg.GetOpCode(); op {
		case OpRequestState:
			mh.sendBoard(matchState, dispatcher, logger, msg.GetUserId())
		case OpPlay, OpReserve, OpUseReserved, OpSwap, OpUndo, OpInvert:
			mh.handleOperation(matchState, dispatcher, logger, msg.GetUserId(), clientOps[op])
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", op)
			mh.sendError(matchState, dispatcher, logger, msg.GetUserId(), app.ErrUnknownOperation)
		}
	}

	if matchState.Bot.Enabled {
		mh.processBot(matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) handleOperation(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string, op app.Operation) {
	if senderID != state.OwnerUserID {
		logger.Warn("handleOperation: User %s tried %s but is not owner (owner=%s)", senderID, op, state.OwnerUserID)
		mh.sendError(state, dispatcher, logger, senderID, ErrNotOwner)
		return
	}

	// Any owner input counts as activity, accepted or not.
	state.LastInputTick = state.Tick
	state.BotWaitUntil = 0

	events, err := state.Session.Apply(op)
	if err != nil {
		logger.Warn("handleOperation: User %s failed to %s: %v", senderID, op, err)
		mh.sendError(state, dispatcher, logger, senderID, err)
		return
	}

	mh.broadcastEvents(state, dispatcher, logger, events)
}

// processBot lets the agent act for an owner idle for at least Bot.IdleTicks.
func (mh *matchHandler) processBot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Agent == nil || state.OwnerUserID == "" {
		return
	}
	if state.Tick-state.LastInputTick < int64(state.Bot.IdleTicks) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.rng.Intn(state.Bot.MaxDelayTicks-state.Bot.MinDelayTicks+1) + state.Bot.MinDelayTicks
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBot: Bot for %s will act at tick %d (current %d)", state.OwnerUserID, state.BotWaitUntil, state.Tick)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0 // Reset for next move

	move := state.Agent.Play(state.Session.Board())
	if move.Idle() {
		return
	}

	events, err := state.Session.Apply(move.Op)
	if err != nil {
		logger.Warn("processBot: Bot move %s rejected: %v; falling back to play", move.Op, err)
		events, err = state.Session.Play()
		if err != nil {
			logger.Warn("processBot: Fallback play rejected: %v", err)
			return
		}
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

// broadcastEvents sends each event followed by the resulting board to everyone.
func (mh *matchHandler) broadcastEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, payload, err := eventToStruct(ev)
		if err != nil {
			logger.Warn("Unknown event kind: %v", err)
			continue
		}
		bytes, err := encodeStruct(payload)
		if err != nil {
			logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
			continue
		}
		dispatcher.BroadcastMessage(opCode, bytes, nil, nil, true)
	}
	mh.broadcastBoard(state, dispatcher, logger, nil)
}

// broadcastBoard sends the board to recipients, or to everyone when recipients is nil.
func (mh *matchHandler) broadcastBoard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, recipients []runtime.Presence) {
	payload, err := boardToStruct(state.Session.Board())
	if err != nil {
		logger.Error("Failed to build board state: %v", err)
		return
	}
	bytes, err := encodeStruct(payload)
	if err != nil {
		logger.Error("Failed to marshal board state: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpBoardState, bytes, recipients, nil, true)
}

func (mh *matchHandler) sendBoard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send board to %s: Presence not found", userID)
		return
	}
	mh.broadcastBoard(state, dispatcher, logger, []runtime.Presence{presence})
}

// sendError sends an error event to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, cause error) {
	payload, err := errorToStruct(cause)
	if err != nil {
		logger.Error("Failed to build error event: %v", err)
		return
	}
	bytes, err := encodeStruct(payload)
	if err != nil {
		logger.Error("Failed to marshal error event: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := matchLabel(state.IsOpen(), state.OwnerUserID)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds", graceSeconds)
	return state
}

// MatchSignal replies with the current board as JSON.
func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, ""
	}
	payload, err := boardToStruct(matchState.Session.Board())
	if err != nil {
		logger.Error("MatchSignal: Failed to build board: %v", err)
		return state, ""
	}
	b, err := protojson.Marshal(payload)
	if err != nil {
		logger.Error("MatchSignal: Failed to marshal board: %v", err)
		return state, ""
	}
	return state, string(b)
}
