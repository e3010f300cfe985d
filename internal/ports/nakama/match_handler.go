package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/joengyn/killer-13-sub000/internal/app"
	"github.com/joengyn/killer-13-sub000/internal/bot"
	"github.com/joengyn/killer-13-sub000/internal/config"
	"github.com/joengyn/killer-13-sub000/internal/domain"
)

const botUserIDPrefix = "bot:"

var botDisplayNames = []string{"Hai", "Tu", "Khang", "Linh"}

func botUserID(seat int) string {
	return fmt.Sprintf("%s%d", botUserIDPrefix, seat+1)
}

// isBotUserID reports whether the given user id represents a bot seat.
func isBotUserID(userID string) bool {
	return strings.HasPrefix(userID, botUserIDPrefix)
}

func botDisplayName(userID string) string {
	n, err := strconv.Atoi(strings.TrimPrefix(userID, botUserIDPrefix))
	if err != nil || n < 1 {
		return "Bot"
	}
	return botDisplayNames[(n-1)%len(botDisplayNames)]
}

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats     [4]string                   `json:"seats"`      // user IDs, empty string means the seat is free
	OwnerSeat int                         `json:"owner_seat"` // seat index of the match owner
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"` // userID -> presence for targeted messaging

	Session     *app.Session `json:"-"` // active match, nil while in the lobby
	PlayerSeats []string     `json:"-"` // session seat -> user ID, set at game start

	BotsEnabled          bool                  `json:"bots_enabled"`
	BotLevel             bot.Level             `json:"bot_level"`
	BotMinDelay          int                   `json:"bot_min_delay"`       // min seconds a bot waits
	BotMaxDelay          int                   `json:"bot_max_delay"`       // max seconds a bot waits
	BotAutoFillDelay     int                   `json:"bot_auto_fill_delay"` // seconds before bots fill a solo lobby
	BotWaitUntil         int64                 `json:"bot_wait_until"`
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent `json:"-"`

	rng *rand.Rand
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserID(seat) {
			count++
		}
	}
	return count
}

// sessionSeat maps a user to their seat in the running session, or -1.
func (ms *MatchState) sessionSeat(userID string) int {
	for seat, id := range ms.PlayerSeats {
		if id == userID {
			return seat
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !isBotUserID(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !isBotUserID(userID) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	state := &MatchState{
		Tick:      time.Now().Unix(),
		Presences: make(map[string]runtime.Presence),
		OwnerSeat: -1,
		Bots:      make(map[string]*bot.Agent),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	level, err := bot.ParseLevel(config.BotLevel())
	if err != nil {
		logger.Warn("MatchInit: %v, falling back to simple bots", err)
	}
	state.BotLevel = level

	// Environment variables override the config file for operational tuning.
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["thirteen_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["thirteen_bot_level"]; ok {
		if lvl, err := bot.ParseLevel(val); err == nil {
			state.BotLevel = lvl
		} else {
			logger.Warn("MatchInit: %v", err)
		}
	}
	if val, ok := env["thirteen_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["thirteen_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["thirteen_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}

	if state.BotMinDelay == 0 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay == 0 {
		state.BotMaxDelay = 3
	}
	if state.BotAutoFillDelay == 0 {
		if cfg := config.GetGameConfig(); cfg != nil && cfg.BotAutoFillDelaySeconds > 0 {
			state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
		} else {
			state.BotAutoFillDelay = 5
		}
	}

	label, err := marshalLabel(state.GetOpenSeatsCount(), domain.PhaseLobby)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join when a seat is free, or when a bot can be displaced
	// before the game starts.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Session == nil {
			for _, seat := range matchState.Seats {
				if isBotUserID(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
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

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Session == nil {
			for i, seatUserID := range matchState.Seats {
				if isBotUserID(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	// The owner seat always belongs to a human.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserID := range matchState.Seats {
			if seatUserID == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
				break
			}
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats[:])
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		}
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
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
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(matchState, dispatcher, logger, msg)
		case OpPassTurn:
			mh.handlePassTurn(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill the lobby when a lone human has waited long enough.
	if state.Session == nil {
		humanCount := state.GetHumanPlayerCount()
		if humanCount == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					botID := botUserID(i)
					state.Seats[i] = botID

					strategy, err := bot.NewBrain(state.BotLevel)
					if err != nil {
						logger.Error("processBots: Failed to create bot brain for %s: %v", botID, err)
						continue
					}
					state.Bots[botID] = &bot.Agent{
						Name:     botDisplayName(botID),
						Strategy: strategy,
					}
					logger.Info("processBots: Added bot %s to seat %d", botID, i)
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastMatchState(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// Drive the bot whose turn it is, after a humanizing delay.
	game := state.Session.Game()
	if game.State.GameOver() {
		return
	}

	currentSeat := game.State.CurrentPlayer()
	currentUserID := state.PlayerSeats[currentSeat]
	if !isBotUserID(currentUserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.rng.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s (seat %d) will act at tick %d (current %d)", currentUserID, currentSeat, state.BotWaitUntil, state.Tick)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[currentUserID]
	if !exists {
		strategy, err := bot.NewBrain(state.BotLevel)
		if err != nil {
			logger.Error("processBots: Failed to create fallback agent: %v", err)
			return
		}
		agent = &bot.Agent{Seat: currentSeat, Name: botDisplayName(currentUserID), Strategy: strategy}
		state.Bots[currentUserID] = agent
	}

	events, err := state.Session.Autoplay(agent.Strategy)
	if err != nil {
		logger.Error("processBots: Bot %s failed to act: %v", currentUserID, err)
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := -1
	for i, seatUserID := range state.Seats {
		if seatUserID == senderID {
			senderSeat = i
			break
		}
	}

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if state.Session != nil {
		logger.Warn("StartGame: Game already running.")
		return
	}
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}

	// Seat the occupied lobby seats as session seats, in order.
	var playerSeats []string
	for _, seatUserID := range state.Seats {
		if seatUserID != "" {
			playerSeats = append(playerSeats, seatUserID)
		}
	}
	if len(playerSeats) < app.MinPlayers {
		logger.Warn("StartGame: Cannot start with %d players. Need at least %d.", len(playerSeats), app.MinPlayers)
		return
	}

	session, events, err := app.NewSession(len(playerSeats), state.rng)
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		return
	}

	state.Session = session
	state.PlayerSeats = playerSeats

	// Re-seat bot agents by their session seat.
	for seat, userID := range playerSeats {
		if agent, ok := state.Bots[userID]; ok {
			agent.Seat = seat
		}
	}

	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(state, dispatcher, logger, events)

	logger.Info("StartGame: Game started with %d players.", len(playerSeats))
}

func (mh *matchHandler) handlePlayCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	if state.Session == nil {
		logger.Warn("handlePlayCards: Game not started.")
		return
	}
	senderSeat := state.sessionSeat(senderID)
	if senderSeat < 0 {
		logger.Warn("handlePlayCards: User %s is not seated in the game.", senderID)
		return
	}

	var request playCardsRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handlePlayCards: Failed to unmarshal request: %v", err)
		return
	}

	events, err := state.Session.SubmitPlay(senderSeat, cardsFromWire(request.Cards))
	if err != nil {
		logger.Warn("handlePlayCards: User %s (seat %d) failed to play cards: %v. Requested: %+v", senderID, senderSeat, err, request.Cards)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePassTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()

	if state.Session == nil {
		logger.Warn("handlePassTurn: Game not started.")
		return
	}
	senderSeat := state.sessionSeat(senderID)
	if senderSeat < 0 {
		logger.Warn("handlePassTurn: User %s is not seated in the game.", senderID)
		return
	}

	events, err := state.Session.SubmitPass(senderSeat)
	if err != nil {
		logger.Warn("handlePassTurn: User %s (seat %d) failed to pass turn: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.dispatchEvents(state, dispatcher, logger, events)
}

// dispatchEvents broadcasts session events in order and returns the match to
// the lobby once a winner is announced.
func (mh *matchHandler) dispatchEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)

		if ev.Kind == app.EventGameEnded {
			state.Session = nil
			state.PlayerSeats = nil
			state.BotWaitUntil = 0
			mh.updateLabel(state, dispatcher, logger)
		}
	}
}

// broadcastEvent converts an app event to its wire form and dispatches it.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var payload any

	switch ev.Kind {
	case app.EventGameStarted:
		p := ev.Payload.(app.GameStartedPayload)
		opCode = OpGameStarted
		payload = gameStartedMsg{
			NumPlayers:  p.NumPlayers,
			OpeningSeat: p.OpeningSeat,
			SeatUserIDs: state.PlayerSeats,
		}
	case app.EventHandDealt:
		p := ev.Payload.(app.HandDealtPayload)
		opCode = OpHandDealt
		payload = handDealtMsg{Seat: p.Seat, Cards: cardsToWire(p.Hand)}
	case app.EventPlayAccepted:
		p := ev.Payload.(app.PlayAcceptedPayload)
		opCode = OpPlayAccepted
		payload = playAcceptedMsg{Seat: p.Seat, Cards: cardsToWire(p.Cards), Opening: p.Opening}
	case app.EventTurnPassed:
		p := ev.Payload.(app.TurnPassedPayload)
		opCode = OpTurnPassed
		payload = turnPassedMsg{Seat: p.Seat}
	case app.EventRoundReset:
		p := ev.Payload.(app.RoundResetPayload)
		opCode = OpRoundReset
		payload = roundResetMsg{WinnerSeat: p.WinnerSeat}
	case app.EventTurnChanged:
		p := ev.Payload.(app.TurnChangedPayload)
		opCode = OpTurnChanged
		payload = turnChangedMsg{Seat: p.Seat}
	case app.EventGameEnded:
		p := ev.Payload.(app.GameEndedPayload)
		opCode = OpGameEnded
		winnerID := ""
		if p.WinnerSeat >= 0 && p.WinnerSeat < len(state.PlayerSeats) {
			winnerID = state.PlayerSeats[p.WinnerSeat]
		}
		payload = gameEndedMsg{WinnerSeat: p.WinnerSeat, WinnerUserID: winnerID}
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Targeted events go only to the connected presences of their seats.
	// Bots have no presence; if nobody is connected the event is dropped
	// rather than leaked to the whole match.
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, seat := range ev.Recipients {
			if seat < 0 || seat >= len(state.PlayerSeats) {
				continue
			}
			if p, ok := state.Presences[state.PlayerSeats[seat]]; ok {
				recipients = append(recipients, p)
			}
		}
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// sendError sends a gameErrorMsg to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(gameErrorMsg{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal error event: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

// broadcastMatchState pushes a lobby snapshot to every presence.
func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var players []playerSnapshot
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if isBotUserID(userID) {
			displayName = botDisplayName(userID)
		}

		cardsRemaining := 0
		if state.Session != nil {
			if seat := state.sessionSeat(userID); seat >= 0 {
				cardsRemaining = len(state.Session.Game().PlayerAt(seat).Hand)
			}
		}

		players = append(players, playerSnapshot{
			UserID:         userID,
			Seat:           i,
			IsOwner:        i == state.OwnerSeat,
			IsBot:          isBotUserID(userID),
			DisplayName:    displayName,
			CardsRemaining: cardsRemaining,
		})
	}

	snapshot := matchSnapshotMsg{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Players:   players,
	}
	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to marshal match snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchSnapshot, bytes, nil, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := domain.PhaseLobby
	if state.Session != nil {
		phase = domain.PhasePlaying
	}

	label, err := marshalLabel(state.GetOpenSeatsCount(), phase)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
