package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youstats/infrastructure/database/postgres"
	"github.com/vfg2006/youstats/infrastructure/export/jsonfile"
	"github.com/vfg2006/youstats/infrastructure/integrator/youtube/ytclient"
	"github.com/vfg2006/youstats/infrastructure/repository"
	"github.com/vfg2006/youstats/internal/api"
	"github.com/vfg2006/youstats/internal/config"
	"github.com/vfg2006/youstats/internal/scheduler"
	"github.com/vfg2006/youstats/internal/usecases/analyzing"
	"github.com/vfg2006/youstats/internal/usecases/authenticating"
	"github.com/vfg2006/youstats/internal/usecases/comparing"
	"github.com/vfg2006/youstats/internal/usecases/harvesting"
	"github.com/vfg2006/youstats/pkg/log"
)

func main() {
	// formato padrão até a configuração ser carregada
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.WithError(err).Warn("Nível de log inválido, usando 'info'")
		_ = log.Setup("info")
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	comparingOpts := []comparing.Option{}

	var store repository.SnapshotRepository
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		store = repository.NewSnapshotRepository(pgConn)
		comparingOpts = append(comparingOpts, comparing.WithStore(store))
	} else {
		logrus.Info("Armazenamento de snapshots desativado por configuração")
	}

	if cfg.Export.Enabled {
		comparingOpts = append(comparingOpts, comparing.WithExporter(jsonfile.NewWriter(cfg)))
		logrus.WithField("directory", cfg.Export.Directory).Info("Exportação de relatórios habilitada")
	}

	sessions := ytclient.NewFactory(cfg)
	pipeline := harvesting.NewPipeline(sessions, cfg, harvesting.WithStateObserver(logTransition))

	comparingService := comparing.NewComparingService(pipeline, comparingOpts...)
	analyzer := analyzing.NewAnalyzingService()
	authenticator := authenticating.NewService(cfg)

	comparisonSyncService := scheduler.NewComparisonSyncService(comparingService, cfg)
	if err := comparisonSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de comparações")
	} else {
		logrus.Info("Agendador de comparações iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Comparing:     comparingService,
		Analyzer:      analyzer,
		Store:         store,
		Syncer:        comparisonSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func logTransition(channelID string, from, to harvesting.State) {
	logrus.WithFields(logrus.Fields{
		"channel": channelID,
		"from":    from.String(),
		"to":      to.String(),
	}).Debug("Transição de estado da coleta")
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
