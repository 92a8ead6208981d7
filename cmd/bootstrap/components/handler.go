package components

import (
	"retreat-api/internal/handler"
	"retreat-api/internal/handler/api"
	"retreat-api/internal/handler/middleware"
	"retreat-api/internal/pkg/config"
	"retreat-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewInquiryHandler,
		api.NewFormHandler,
		api.NewContentHandler,
		handler.NewEngine,
		newSessionMiddleware,
		newHandlers,
		newMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In
	Inquiry *api.InquiryHandler
	Form    *api.FormHandler
	Content *api.ContentHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Inquiry: p.Inquiry,
		Form:    p.Form,
		Content: p.Content,
	}
}

type middlewareParams struct {
	fx.In
	Config   config.Config
	Logger   *middleware.Logger
	Session  *middleware.SessionMiddleware
}

func newMiddlewares(p middlewareParams) handler.Middlewares {
	return handler.Middlewares{
		Logger:        p.Logger,
		CORS:          middleware.NewCORSMiddleware(p.Config.CORS),
		Session:       p.Session,
		Throttle:      middleware.NewIPThrottle(p.Config.Throttle),
		StartThrottle: middleware.NewIPThrottle(p.Config.Throttle.FormStart()),
	}
}

func newSessionMiddleware(cfg config.Config, svc *jwt.Service) *middleware.SessionMiddleware {
	return middleware.NewSessionMiddleware(svc, cfg.Cookie)
}
