package components

import (
	"context"
	"log/slog"

	"cozycup/internal/infra/db"
	"cozycup/internal/infra/readstore"
	"cozycup/internal/infra/uow"
	"cozycup/internal/infra/walletstore"
	"cozycup/internal/pkg/config"
	"cozycup/internal/usecase/queries"
	"cozycup/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewMenuReadStore,
			fx.As(new(queries.MenuReadStore)),
		),
		fx.Annotate(
			readstore.NewPoolReadStore,
			fx.As(new(queries.PoolReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewPackageReadStore,
			fx.As(new(queries.PackageReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
	),
)

var writeModule = fx.Module("persistence/write",
	fx.Provide(
		uow.NewPostgresUoW,
		NewWalletStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewWalletStore picks the purchase/redemption backend from WALLET_BACKEND.
func NewWalletStore(lc fx.Lifecycle, cfg config.Config, pool *pgxpool.Pool, logger *slog.Logger) (shared.WalletStore, error) {
	if cfg.Wallet.Backend != "mongo" {
		return walletstore.NewPostgresStore(pool), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	store := walletstore.NewMongoStore(ctx, client.Database(cfg.Mongo.Database), logger)
	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Warn("failed to ensure wallet indexes", "error", err.Error())
	}
	return store, nil
}
