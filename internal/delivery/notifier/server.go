// Package notifier serves the webhook endpoint that fans matched events out
// to email, push and chat.
package notifier

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"gtfstrigger/config"
	"gtfstrigger/internal/delivery"
	apimiddleware "gtfstrigger/internal/delivery/api/middleware"
	"gtfstrigger/internal/delivery/middleware"
	"gtfstrigger/internal/delivery/notifier/handler"
	"gtfstrigger/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notifierServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the notifier server
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RelayHandler *handler.RelayHandler
}

// NewServer creates the notifier HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &notifierServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	e.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/notify", params.RelayHandler.Notify)

	return e
}

// Serve starts the notifier HTTP server
func (s *notifierServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Notifier HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *notifierServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Notifier HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
