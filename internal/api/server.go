package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youstats/infrastructure/repository"
	"github.com/vfg2006/youstats/internal/api/handler"
	"github.com/vfg2006/youstats/internal/api/handler/router"
	"github.com/vfg2006/youstats/internal/config"
	"github.com/vfg2006/youstats/internal/usecases/analyzing"
	"github.com/vfg2006/youstats/internal/usecases/authenticating"
	"github.com/vfg2006/youstats/internal/usecases/comparing"
	"github.com/vfg2006/youstats/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API.
// Store e Syncer podem ser nil quando desativados na configuração.
type Services struct {
	Authenticator authenticating.Authenticator
	Comparing     comparing.ComparingService
	Analyzer      analyzing.AnalyzingService
	Store         repository.SnapshotRepository
	Syncer        handler.ComparisonSyncer
}

func New(config *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, errors.New("authenticator is required")
	}
	if services.Comparing == nil {
		return nil, errors.New("comparing service is required")
	}
	if services.Analyzer == nil {
		services.Analyzer = analyzing.NewAnalyzingService()
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Comparisons(services.Comparing, services.Store, services.Analyzer)...),
		router.WithRoutes(handler.Channels(services.Store, services.Analyzer)...),
		router.WithRoutes(handler.CronJobs(services.Syncer)...),
	)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	).Then(rt)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
