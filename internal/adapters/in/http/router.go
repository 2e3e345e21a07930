package http

import (
	"log/slog"
	"net/http"

	"littlelemon/internal/adapters/in/http/auth"
	"littlelemon/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries the collaborators of the HTTP surface.
type RouterConfig struct {
	Logger      *slog.Logger
	LogLevel    log.Lvl
	Document    *openapi3.T
	Tokens      *auth.Tokens
	Users       auth.PrincipalResolver
	RateLimiter middleware.RateLimiterStore
}

// NewRouter builds the echo instance serving si. API routes are authenticated, rate
// limited and validated against the OpenAPI document in that order.
func NewRouter(si servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	validate, err := ValidateRequests(cfg.Document)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(cfg.Logger))
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("",
		auth.Middleware(cfg.Tokens, cfg.Users),
		RateLimiter(cfg.RateLimiter),
		validate,
	)
	servers.RegisterHandlers(api, si)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if p := auth.PrincipalFrom(c); p.IsAuthenticated() {
				attrs = append(attrs, slog.Int64("user_id", p.UserID.Int64()))
			}

			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
