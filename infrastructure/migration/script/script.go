package main

import (
	"context"
	"flag"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/youstats/infrastructure/database/postgres"
	"github.com/vfg2006/youstats/internal/config"
)

type migration struct {
	Name       string
	Statements []string
}

var migrations = []migration{
	{
		Name: "channel_snapshots",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS channel_snapshots (
				id              VARCHAR(32) PRIMARY KEY,
				channel_id      TEXT        NOT NULL,
				channel_name    TEXT        NOT NULL,
				has_profile     BOOLEAN     NOT NULL DEFAULT FALSE,
				header_name     TEXT,
				subscribers_num BIGINT,
				videos_num      BIGINT,
				join_date       VARCHAR(10),
				total_views     BIGINT,
				years_active    TEXT[]      NOT NULL DEFAULT '{}',
				harvested_at    TIMESTAMPTZ NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS idx_channel_snapshots_name_harvested
				ON channel_snapshots (channel_name, harvested_at DESC)`,
		},
	},
	{
		Name: "channel_videos",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS channel_videos (
				snapshot_id VARCHAR(32) NOT NULL REFERENCES channel_snapshots (id) ON DELETE CASCADE,
				position    INTEGER     NOT NULL,
				title       TEXT        NOT NULL,
				views       BIGINT      NOT NULL CHECK (views >= 0),
				posted_on   VARCHAR(10) NOT NULL,
				description TEXT        NOT NULL DEFAULT '',
				link        TEXT        NOT NULL,
				PRIMARY KEY (snapshot_id, position)
			)`,
		},
	},
}

var dropStatements = []string{
	`DROP TABLE IF EXISTS channel_videos`,
	`DROP TABLE IF EXISTS channel_snapshots`,
}

func main() {
	drop := flag.Bool("drop", false, "remove as tabelas antes de criar")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		return apply(ctx, q, plan(*drop))
	}); err != nil {
		logrus.WithError(err).Fatal("Migração desfeita")
	}

	logrus.WithField("duration", time.Since(startTime).String()).Info("Migração concluída com sucesso")
}

// plan devolve as migrações na ordem de execução
func plan(drop bool) []migration {
	if !drop {
		return migrations
	}
	return append([]migration{{Name: "drop", Statements: dropStatements}}, migrations...)
}

func apply(ctx context.Context, q postgres.Queryer, steps []migration) error {
	for _, step := range steps {
		for i, statement := range step.Statements {
			if _, err := q.ExecContext(ctx, statement); err != nil {
				return errors.Wrapf(err, "migração %s, comando %d", step.Name, i+1)
			}
		}
		logrus.WithField("migration", step.Name).Info("Migração aplicada")
	}
	return nil
}
