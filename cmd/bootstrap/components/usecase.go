package components

import (
	"log/slog"

	"retreat-api/internal/pkg/clock"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/usecase"
	"retreat-api/internal/usecase/commands"
	"retreat-api/internal/usecase/queries"
	"retreat-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(store shared.KVStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) usecase.SpamGate {
		return usecase.NewSpamGate(store, clk, cfg.AntiSpam, logger)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(gate usecase.SpamGate, mailer shared.Mailer, trips shared.TripResolver, cfg config.Config, logger *slog.Logger) commands.InquiryCommands {
			return commands.NewInquiryCommands(gate, mailer, trips, cfg.EmailJS.Timeout, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewContentQueries,
	),
)
