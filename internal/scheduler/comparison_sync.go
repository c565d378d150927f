package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/youstats/internal/config"
	"github.com/vfg2006/youstats/internal/usecases/comparing"
)

var ErrInvalidPair = errors.New("invalid comparison pair")

// ComparisonPair é um par pivô/alvo comparado periodicamente
type ComparisonPair struct {
	Pivot  string `json:"pivot"`
	Target string `json:"target"`
}

func (p ComparisonPair) String() string {
	return p.Pivot + ":" + p.Target
}

// ParsePairs lê pares no formato "@pivo:@alvo". Entradas inválidas são
// reportadas no erro e as válidas são retornadas mesmo assim.
func ParsePairs(values []string) ([]ComparisonPair, error) {
	pairs := make([]ComparisonPair, 0, len(values))
	var errs []error

	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		pivot, target, ok := strings.Cut(value, ":")
		pivot, target = strings.TrimSpace(pivot), strings.TrimSpace(target)
		if !ok || pivot == "" || target == "" {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidPair, value))
			continue
		}

		pairs = append(pairs, ComparisonPair{Pivot: pivot, Target: target})
	}

	return pairs, errors.Join(errs...)
}

// ComparisonSyncConfig representa a configuração do agendador de comparações
type ComparisonSyncConfig struct {
	CronSchedule       string
	MaxConcurrentPairs int
	SyncEnabled        bool
	Pairs              []ComparisonPair
}

// PairResult é o resultado da última execução de um par
type PairResult struct {
	Pair            ComparisonPair `json:"pair"`
	PivotAvailable  bool           `json:"pivot_available"`
	TargetAvailable bool           `json:"target_available"`
	Error           string         `json:"error,omitempty"`
	FinishedAt      time.Time      `json:"finished_at"`
}

// ComparisonSyncService coleta periodicamente os pares configurados
type ComparisonSyncService struct {
	scheduler           *gocron.Scheduler
	config              ComparisonSyncConfig
	comparingService    comparing.ComparingService
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResults         []PairResult
}

func NewComparisonSyncService(comparingService comparing.ComparingService, appConfig *config.Config) *ComparisonSyncService {
	pairs, err := ParsePairs(appConfig.ComparisonSync.Pairs)
	if err != nil {
		logrus.WithError(err).Warn("Pares de comparação inválidos ignorados")
	}

	syncConfig := ComparisonSyncConfig{
		CronSchedule:       appConfig.ComparisonSync.CronSchedule,
		MaxConcurrentPairs: max(appConfig.ComparisonSync.MaxConcurrentPairs, 1),
		SyncEnabled:        appConfig.ComparisonSync.Enabled,
		Pairs:              pairs,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":        syncConfig.CronSchedule,
		"max_concurrent_pairs": syncConfig.MaxConcurrentPairs,
		"sync_enabled":         syncConfig.SyncEnabled,
		"pairs":                len(syncConfig.Pairs),
	}).Info("Configuração do agendador de comparações carregada")

	return &ComparisonSyncService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           syncConfig,
		comparingService: comparingService,
		ctx:              context.Background(),
		lastResults:      []PairResult{},
	}
}

// Start inicia o agendador
func (s *ComparisonSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de comparações desabilitada por configuração")
		return nil
	}

	s.ctx = ctx

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de comparações")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncComparisons()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de comparações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de comparações")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ComparisonSyncService) syncComparisons() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de comparações já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if len(s.config.Pairs) == 0 {
		logrus.Info("Nenhum par configurado para sincronização de comparações")
		return
	}

	logrus.WithField("pairs", len(s.config.Pairs)).Info("Iniciando sincronização de comparações")

	results := s.processPairs(s.config.Pairs)

	s.syncMutex.Lock()
	s.lastResults = results
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"pairs":    len(results),
	}).Info("Sincronização de comparações concluída")
}

func (s *ComparisonSyncService) processPairs(pairs []ComparisonPair) []PairResult {
	results := make([]PairResult, len(pairs))

	semaphore := make(chan struct{}, s.config.MaxConcurrentPairs)
	var wg sync.WaitGroup

	for i, pair := range pairs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int, pair ComparisonPair) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			results[idx] = s.processPair(pair)
		}(i, pair)
	}

	wg.Wait()
	return results
}

func (s *ComparisonSyncService) processPair(pair ComparisonPair) PairResult {
	result := PairResult{Pair: pair}
	logger := logrus.WithField("pair", pair.String())

	comparison, err := s.comparingService.Run(s.ctx, pair.Pivot, pair.Target)
	result.FinishedAt = time.Now()
	if err != nil {
		logger.WithError(err).Error("Erro ao comparar par")
		result.Error = err.Error()
		return result
	}

	result.PivotAvailable = comparison.Pivot.Available()
	result.TargetAvailable = comparison.Target.Available()

	logger.WithFields(logrus.Fields{
		"pivot_available":  result.PivotAvailable,
		"target_available": result.TargetAvailable,
	}).Info("Par comparado")

	return result
}

// TriggerManualSync inicia manualmente uma sincronização de comparações.
// Retorna false quando já existe uma sincronização em andamento.
func (s *ComparisonSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de comparações já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de comparações")
	go s.syncComparisons()
	return true
}

// GetStatus retorna o status atual da sincronização
func (s *ComparisonSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"pairs":                  s.config.Pairs,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_results":           s.lastResults,
	}
}
