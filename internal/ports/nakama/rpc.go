package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gofish/internal/app"
	"gofish/internal/config"
	"gofish/internal/matchmaker"
	"gofish/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RPC identifiers registered with the Nakama runtime.
const (
	RpcIDJoinMatch = "gofish_join"
	RpcIDRunPlay   = "gofish_play"
	RpcIDMatchView = "gofish_view"
)

var errNoUserID = errors.New("rpc requires an authenticated user")

// rpcDeps carries the wired collaborators shared by the RPC handlers.
type rpcDeps struct {
	svc   *app.Service
	mm    *matchmaker.MatchMaker
	store ports.MatchStore

	mu      sync.Mutex
	matchMu map[string]*sync.Mutex
}

// lockMatch serializes the load-mutate-save cycle per match id so concurrent
// plays on one match cannot overwrite each other's snapshot. Returns the
// unlock function.
func (d *rpcDeps) lockMatch(matchID string) func() {
	d.mu.Lock()
	if d.matchMu == nil {
		d.matchMu = make(map[string]*sync.Mutex)
	}
	mu, ok := d.matchMu[matchID]
	if !ok {
		mu = &sync.Mutex{}
		d.matchMu[matchID] = mu
	}
	d.mu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// JoinRequest asks to be seated in a match of the given party size.
type JoinRequest struct {
	NumPlayers int `json:"num_players"`
}

// JoinResponse reports the matchmaking state after a join attempt.
type JoinResponse struct {
	Queued  bool   `json:"queued"`
	MatchID string `json:"match_id,omitempty"`
}

// PlayRequest asks an opponent for every card of a rank.
type PlayRequest struct {
	MatchID        string `json:"match_id"`
	OpponentUserID string `json:"opponent_user_id"`
	Rank           string `json:"rank"`
}

// ViewRequest fetches the caller's projection of a match.
type ViewRequest struct {
	MatchID string `json:"match_id"`
}

// ErrorResponse mirrors the legacy JSON error shape clients already parse.
type ErrorResponse struct {
	Error string `json:"error"`
}

func errorPayload(message string) string {
	b, _ := json.Marshal(ErrorResponse{Error: message})
	return string(b)
}

// rpcJoinMatch puts the caller into the matchmaking pool and spawns the
// delayed fill. The fill runs detached: it must fire even if the caller's
// request cycle is long gone, and it cannot be cancelled once started.
func rpcJoinMatch(deps *rpcDeps) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if userID == "" {
			return "", errNoUserID
		}

		request := JoinRequest{}
		if payload != "" {
			if err := json.Unmarshal([]byte(payload), &request); err != nil {
				logger.Warn("rpcJoinMatch: invalid payload from %s: %v", userID, err)
				return errorPayload("invalid request"), nil
			}
		}

		min, max := config.GetPlayerRange()
		numPlayers := request.NumPlayers
		if numPlayers < min {
			numPlayers = min
		}
		if numPlayers > max {
			numPlayers = max
		}

		if matchID, ok := deps.mm.MatchID(userID); ok {
			b, _ := json.Marshal(JoinResponse{Queued: false, MatchID: matchID})
			return string(b), nil
		}

		participant := app.Participant{UserID: userID, Name: userID}
		if username, ok := ctx.Value(runtime.RUNTIME_CTX_USERNAME).(string); ok && username != "" {
			participant.Name = username
		}
		if account, err := nk.AccountGetId(ctx, userID); err == nil && account.User != nil {
			if account.User.DisplayName != "" {
				participant.Name = account.User.DisplayName
			}
			participant.Icon = account.User.AvatarUrl
		}

		deps.mm.Join(participant, numPlayers)

		wait := time.Duration(config.GetMatchWaitSeconds()) * time.Second
		go func() {
			match, err := deps.mm.StartMatchAfterDelay(context.Background(), userID, wait)
			switch {
			case errors.Is(err, matchmaker.ErrAlreadyMatched):
				// A concurrent fill won the race; nothing to do.
			case err != nil:
				logger.Error("rpcJoinMatch: delayed fill for %s failed: %v", userID, err)
			default:
				logger.Info("rpcJoinMatch: created match %s with %d seats", match.ID, len(match.Seats))
			}
		}()

		b, _ := json.Marshal(JoinResponse{Queued: true})
		return string(b), nil
	}
}

// rpcRunPlay loads the caller's match, applies one play (plus any AI
// follow-up turns) and returns the caller's refreshed view.
func rpcRunPlay(deps *rpcDeps) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if userID == "" {
			return "", errNoUserID
		}

		request := PlayRequest{}
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Warn("rpcRunPlay: invalid payload from %s: %v", userID, err)
			return errorPayload("invalid request"), nil
		}

		unlock := deps.lockMatch(request.MatchID)
		defer unlock()

		match, errPayload, err := loadMatch(ctx, deps, request.MatchID)
		if match == nil {
			return errPayload, err
		}

		requester := match.Player(userID)
		if requester == nil {
			return errorPayload("unauthorized match"), nil
		}
		opponent := match.Player(request.OpponentUserID)
		if opponent == nil {
			return errorPayload("opponent not found"), nil
		}

		deps.svc.RunPlay(ctx, match, requester, opponent, request.Rank)

		snapshot, err := deps.svc.EncodeMatch(match)
		if err != nil {
			return "", err
		}
		if err := deps.store.Save(ctx, match.ID, snapshot); err != nil {
			return "", err
		}

		b, _ := json.Marshal(match.View(userID))
		return string(b), nil
	}
}

// rpcMatchView returns the caller's projection of a match, or the
// unauthorized error payload for users without a seat in it.
func rpcMatchView(deps *rpcDeps) func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error) {
	return func(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
		userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
		if userID == "" {
			return "", errNoUserID
		}

		request := ViewRequest{}
		if err := json.Unmarshal([]byte(payload), &request); err != nil {
			logger.Warn("rpcMatchView: invalid payload from %s: %v", userID, err)
			return errorPayload("invalid request"), nil
		}

		match, errPayload, err := loadMatch(ctx, deps, request.MatchID)
		if match == nil {
			return errPayload, err
		}

		view := match.View(userID)
		if view == nil {
			return errorPayload("unauthorized match"), nil
		}

		b, _ := json.Marshal(view)
		return string(b), nil
	}
}

// loadMatch loads and decodes a match snapshot. A missing match is reported
// to the client as a payload; infrastructure failures surface as errors.
func loadMatch(ctx context.Context, deps *rpcDeps, matchID string) (*app.Match, string, error) {
	if matchID == "" {
		return nil, errorPayload("match not found"), nil
	}
	snapshot, err := deps.store.Load(ctx, matchID)
	if errors.Is(err, ports.ErrMatchNotFound) {
		return nil, errorPayload("match not found"), nil
	}
	if err != nil {
		return nil, "", err
	}
	match, err := deps.svc.DecodeMatch(snapshot)
	if err != nil {
		return nil, "", err
	}
	return match, "", nil
}
