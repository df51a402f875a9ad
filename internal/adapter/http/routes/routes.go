package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "logistica_cotizaciones/docs" // swag generated
	"logistica_cotizaciones/internal/adapter/http/handlers"
	"logistica_cotizaciones/internal/adapter/http/middleware"
	"logistica_cotizaciones/internal/infrastructure/config"
	"logistica_cotizaciones/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	APIBasePath = "/v1"
	PathPing    = "/ping"
)

// Server owns the gin engine and the HTTP listener.
type Server struct {
	engine *gin.Engine
	cfg    config.ServerConfig
	logger *zap.Logger

	quotes        *handlers.QuoteHandler
	notifications *handlers.NotificationHandler
	auth          *handlers.AuthHandler
	users         *handlers.UserHandler
	authUseCase   usecase.IAuthUseCase
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	quotes *handlers.QuoteHandler,
	notifications *handlers.NotificationHandler,
	auth *handlers.AuthHandler,
	users *handlers.UserHandler,
	authUseCase usecase.IAuthUseCase,
) *Server {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}
	s := &Server{
		engine:        gin.New(),
		cfg:           cfg.Server,
		logger:        logger,
		quotes:        quotes,
		notifications: notifications,
		auth:          auth,
		users:         users,
		authUseCase:   authUseCase,
	}
	s.setMiddlewares()
	s.setRoutes()
	return s
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests
// for at most the configured shutdown timeout.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) setMiddlewares() {
	s.engine.Use(gin.Logger())
	s.engine.Use(middleware.Recovery(s.logger))
}

func (s *Server) setRoutes() {
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.engine.Group(APIBasePath)
	v1.GET(PathPing, handlers.Ping)

	authenticated := middleware.Authenticate(s.authUseCase, s.logger)
	addAuthRoutes(v1, s.auth, authenticated)
	addQuoteRoutes(v1, s.quotes, authenticated)
	addNotificationRoutes(v1, s.notifications, authenticated)
	addUserRoutes(v1, s.users, authenticated)
}
