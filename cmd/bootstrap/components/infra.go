package components

import (
	"log/slog"

	"retreat-api/internal/infra/content"
	"retreat-api/internal/infra/emailjs"
	"retreat-api/internal/pkg/clock"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/usecase/queries"
	"retreat-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewContentStore,
		func(s *content.Store) queries.ContentSource { return s },
		func(s *content.Store) shared.TripResolver { return s },
		fx.Annotate(
			NewMailer,
			fx.As(new(shared.Mailer)),
		),
	),
)

func NewMailer(cfg config.Config, logger *slog.Logger) *emailjs.Client {
	return emailjs.NewClient(cfg.EmailJS, cfg.App, logger)
}

func NewContentStore(clk clock.Clock, logger *slog.Logger) (*content.Store, error) {
	store, err := content.NewEmbeddedStore(clk)
	if err != nil {
		return nil, err
	}
	logger.Info("site content loaded", "sections", store.SectionNames(), "trips", len(store.Trips()))
	return store, nil
}
