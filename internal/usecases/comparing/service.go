package comparing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"

	"github.com/vfg2006/youstats/infrastructure/repository"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/internal/usecases/reporting"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Uma coleta por canal da comparação
const maxConcurrentHarvests = 2

// Harvester coleta o snapshot de um canal
type Harvester interface {
	Harvest(ctx context.Context, channelID string) (*domain.ChannelSnapshot, error)
}

type ComparingService interface {
	Run(ctx context.Context, pivotID, targetID string) (*domain.Comparison, error)
}

type Option func(*Service)

// WithStore grava cada snapshot coletado com sucesso
func WithStore(store repository.SnapshotRepository) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithExporter exporta o relatório tabular de cada snapshot coletado com sucesso
func WithExporter(exporter reporting.ReportWriter) Option {
	return func(s *Service) {
		s.exporter = exporter
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	harvester Harvester
	store     repository.SnapshotRepository
	exporter  reporting.ReportWriter
	now       func() time.Time
}

func NewComparingService(harvester Harvester, opts ...Option) *Service {
	s := &Service{
		harvester: harvester,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run coleta os dois canais em paralelo, cada um com sua própria sessão.
// A falha de um lado só marca aquele lado como indisponível.
func (s *Service) Run(ctx context.Context, pivotID, targetID string) (*domain.Comparison, error) {
	pivotID = strings.TrimSpace(pivotID)
	targetID = strings.TrimSpace(targetID)

	if pivotID == "" || targetID == "" {
		return nil, ErrMissingChannelIdentifier
	}

	comparison := &domain.Comparison{}

	p := pool.New().WithMaxGoroutines(maxConcurrentHarvests)
	p.Go(func() {
		comparison.Pivot = s.harvestSide(ctx, pivotID)
	})
	p.Go(func() {
		comparison.Target = s.harvestSide(ctx, targetID)
	})
	p.Wait()

	logrus.WithFields(logrus.Fields{
		"pivot":            pivotID,
		"pivot_available":  comparison.Pivot.Available(),
		"target":           targetID,
		"target_available": comparison.Target.Available(),
	}).Info("Comparação de canais concluída")

	return comparison, nil
}

func (s *Service) harvestSide(ctx context.Context, channelID string) *domain.ComparisonSide {
	side := &domain.ComparisonSide{ChannelID: channelID}
	logger := logrus.WithField("channel", channelID)

	snapshot, err := s.harvester.Harvest(ctx, channelID)
	if err != nil {
		logger.WithError(err).Error("Canal indisponível para comparação")
		side.Err = err
		return side
	}
	side.Snapshot = snapshot

	if s.store != nil {
		if err := s.store.SaveSnapshot(ctx, snapshot); err != nil {
			logger.WithError(err).Error("Erro ao salvar snapshot")
		}
	}

	if s.exporter != nil {
		s.export(ctx, logger, snapshot)
	}

	return side
}

func (s *Service) export(ctx context.Context, logger *logrus.Entry, snapshot *domain.ChannelSnapshot) {
	report, err := reporting.BuildReport(snapshot, s.now())
	if err != nil && !errors.Is(err, domain.ErrEmptyResult) {
		logger.WithError(err).Error("Erro ao montar relatório")
		return
	}

	if err := s.exporter.WriteTabularReport(ctx, report.Name, report); err != nil {
		logger.WithError(err).Error("Erro ao exportar relatório")
	}
}
