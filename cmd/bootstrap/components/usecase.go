package components

import (
	"log/slog"

	"cozycup/internal/domain/policy"
	"cozycup/internal/domain/reservation"
	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/config"
	"cozycup/internal/pkg/qrtoken"
	"cozycup/internal/usecase"
	"cozycup/internal/usecase/capacity"
	"cozycup/internal/usecase/commands"
	"cozycup/internal/usecase/queries"
	"cozycup/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		reservation.NewDefaultPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	fx.Annotate(
		func(s *qrtoken.Service) *qrtoken.Service { return s },
		fx.As(new(commands.CheckInTokens)),
		fx.As(new(commands.RedeemTokens)),
	),
	func(cfg config.Config) policy.CancelWindows {
		return policy.CancelWindows{
			Order:   cfg.Policy.OrderCancelWindow(),
			Booking: cfg.Policy.BookingCancelWindow(),
		}
	},
	func(cfg config.Config) policy.CheckInWindow {
		return policy.CheckInWindow{
			Early:     cfg.QR.EarlyWindow(),
			LateGrace: cfg.QR.LateGrace(),
		}
	},
	capacity.NewService,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewMenuCommands,
		commands.NewPoolCommands,
		commands.NewOrderCommands,
		commands.NewBookingCommands,
		commands.NewCheckInCommands,
		newWalletCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewMenuQueries,
		queries.NewPoolQueries,
		queries.NewReservationQueries,
		queries.NewWalletQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newWalletCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	store shared.WalletStore,
	tokens commands.RedeemTokens,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) commands.WalletCommands {
	return commands.NewWalletCommands(uow, store, tokens, publisher, cfg.Wallet.RedeemMaxRetries, clk, logger)
}
