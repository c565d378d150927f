package harvesting

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/youstats/infrastructure/integrator/youtube"
	"github.com/vfg2006/youstats/internal/config"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/pkg/utils"
)

const (
	defaultWaitTimeout       = 10 * time.Second
	defaultMaxScrollAttempts = 200
)

type Option func(*Pipeline)

// WithStateObserver registra uma função chamada a cada transição de estado
func WithStateObserver(observer StateObserver) Option {
	return func(p *Pipeline) {
		p.observer = observer
	}
}

// WithSelectors troca os seletores usados para ler a página
func WithSelectors(selectors youtube.Selectors) Option {
	return func(p *Pipeline) {
		p.selectors = selectors
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// Pipeline transforma o identificador de um canal em um snapshot normalizado.
// O Pipeline não guarda estado de coleta; cada chamada de Harvest cria o seu.
type Pipeline struct {
	sessions          youtube.SessionFactory
	selectors         youtube.Selectors
	baseURL           string
	waitTimeout       time.Duration
	maxScrollAttempts int
	observer          StateObserver
	now               func() time.Time
	newID             func() (string, error)
}

func NewPipeline(sessions youtube.SessionFactory, cfg *config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		sessions:          sessions,
		selectors:         youtube.DefaultSelectors(),
		baseURL:           youtube.DefaultBaseURL,
		waitTimeout:       defaultWaitTimeout,
		maxScrollAttempts: defaultMaxScrollAttempts,
		now:               time.Now,
		newID:             utils.GenerateID,
	}

	if cfg != nil {
		if cfg.Scraper.BaseURL != "" {
			p.baseURL = cfg.Scraper.BaseURL
		}
		if cfg.Scraper.WaitTimeoutSeconds > 0 {
			p.waitTimeout = cfg.Scraper.WaitTimeout()
		}
		if cfg.Scraper.MaxScrollAttempts > 0 {
			p.maxScrollAttempts = cfg.Scraper.MaxScrollAttempts
		}
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Harvest executa os passos da coleta em sequência. Apenas a falha ao abrir o
// canal (ou ao confirmar o consentimento) é retornada como erro; as demais
// falhas são registradas e o snapshot sai sem o dado correspondente.
func (p *Pipeline) Harvest(ctx context.Context, channelID string) (*domain.ChannelSnapshot, error) {
	r := &run{
		pipeline:  p,
		channelID: strings.TrimSpace(channelID),
		state:     StatePending,
		videos:    make([]domain.VideoRecord, 0),
	}
	r.logger = logrus.WithField("channel", r.channelID)

	r.transition(StateFetchingProfile)
	r.logger.Info("Iniciando coleta do canal")

	if r.channelID == "" {
		r.transition(StateFailed)
		return nil, &ChannelResolutionError{ChannelID: r.channelID, Step: StepOpenChannel, Err: ErrEmptyChannelID}
	}

	session, err := p.sessions.NewSession(ctx)
	if err != nil {
		r.transition(StateFailed)
		return nil, &ChannelResolutionError{ChannelID: r.channelID, Step: StepOpenChannel, Err: err}
	}
	r.session = session
	defer r.finalize()

	if err := r.openChannel(ctx); err != nil {
		r.transition(StateFailed)
		return nil, err
	}

	if err := r.dismissConsent(ctx); err != nil {
		r.transition(StateFailed)
		return nil, err
	}

	r.extractProfile(ctx)

	r.transition(StateFetchingVideoList)
	r.enumerateVideos(ctx)

	r.transition(StateFetchingVideoDetails)
	r.extractVideoDetails(ctx)

	r.transition(StateAggregating)
	snapshot := r.buildSnapshot()

	r.transition(StateComplete)
	r.logger.WithFields(logrus.Fields{
		"videos":       len(snapshot.Videos),
		"years_active": snapshot.YearsActive,
		"has_profile":  snapshot.Profile != nil,
	}).Info("Coleta do canal concluída")

	return snapshot, nil
}
