package nakama

import (
	"context"
	"database/sql"

	"gofish/internal/app"
	"gofish/internal/bot"
	"gofish/internal/config"
	"gofish/internal/matchmaker"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the Go Fish services and registers the RPC endpoints with
// the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("InitModule: Could not load game config: %v", err)
	}
	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("InitModule: Could not load bot identities: %v", err)
	}

	svc := app.NewService(nil, NewNakamaStats(nk))
	deps := &rpcDeps{
		svc:   svc,
		mm:    matchmaker.New(svc, NewNakamaMatchStore(nk), NewNakamaNotifier(nk), config.GetHandSize()),
		store: NewNakamaMatchStore(nk),
	}

	if err := initializer.RegisterRpc(RpcIDJoinMatch, rpcJoinMatch(deps)); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcIDRunPlay, rpcRunPlay(deps)); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcIDMatchView, rpcMatchView(deps)); err != nil {
		return err
	}

	logger.Info("Go Fish module loaded.")
	return nil
}
