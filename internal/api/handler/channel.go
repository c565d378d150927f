package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/youstats/infrastructure/repository"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/internal/usecases/analyzing"
	"github.com/vfg2006/youstats/internal/usecases/reporting"
	"github.com/vfg2006/youstats/pkg/apiErrors"
	"github.com/vfg2006/youstats/pkg/log"
)

// HistogramResponse é o histograma de um canal para a métrica pedida
type HistogramResponse struct {
	Channel   string                     `json:"channel"`
	Metric    domain.Metric              `json:"metric"`
	Years     []string                   `json:"years"`
	Histogram domain.YearMonthHistogram  `json:"histogram"`
	Series    []domain.ChannelYearSeries `json:"series"`
}

// loadSnapshot busca o snapshot mais recente e já escreve o erro quando não há
func loadSnapshot(ctx context.Context, w http.ResponseWriter, store repository.SnapshotRepository, channel string) (*domain.ChannelSnapshot, bool) {
	logger := log.ForContext(ctx).WithField("channel", channel)

	if store == nil {
		apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Armazenamento de snapshots desativado", nil)
		return nil, false
	}

	if channel == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do canal é obrigatório", nil)
		return nil, false
	}

	snapshot, err := store.GetLatestSnapshot(ctx, channel)
	if err != nil {
		logger.WithError(err).Error("channels: erro ao buscar snapshot")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot", nil)
		return nil, false
	}

	if snapshot == nil {
		apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Nenhum snapshot coletado para o canal", map[string]any{
			"channel": channel,
		})
		return nil, false
	}

	return snapshot, true
}

// GetChannelSnapshot retorna o snapshot mais recente do canal
func GetChannelSnapshot(store repository.SnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		channel := channelParam(httprouter.ParamsFromContext(r.Context()).ByName("name"))

		snapshot, ok := loadSnapshot(r.Context(), w, store, channel)
		if !ok {
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

// GetChannelHistogram agrega os vídeos do último snapshot por ano e mês
func GetChannelHistogram(store repository.SnapshotRepository, analyzer analyzing.AnalyzingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		channel := channelParam(httprouter.ParamsFromContext(r.Context()).ByName("name"))

		metric, ok := parseMetric(w, r)
		if !ok {
			return
		}

		snapshot, ok := loadSnapshot(r.Context(), w, store, channel)
		if !ok {
			return
		}

		histogram, err := analyzer.Histogram(snapshot, metric)
		if err != nil && !errors.Is(err, domain.ErrEmptyResult) {
			logger.WithError(err).Error("histogram: erro ao agregar vídeos")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar histograma", nil)
			return
		}

		years := analyzing.YearsOf(histogram)
		series, err := analyzer.ChannelSeries(snapshot, metric, years)
		if err != nil && !errors.Is(err, domain.ErrEmptyResult) {
			logger.WithError(err).Error("histogram: erro ao montar séries")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar histograma", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, HistogramResponse{
			Channel:   snapshot.ChannelName,
			Metric:    metric,
			Years:     years,
			Histogram: histogram,
			Series:    series,
		})
	})
}

// GetChannelReport monta o relatório tabular (general, videos, statistics)
func GetChannelReport(store repository.SnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		channel := channelParam(httprouter.ParamsFromContext(r.Context()).ByName("name"))

		snapshot, ok := loadSnapshot(r.Context(), w, store, channel)
		if !ok {
			return
		}

		report, err := reporting.BuildReport(snapshot, snapshot.HarvestedAt)
		if err != nil && !errors.Is(err, domain.ErrEmptyResult) {
			log.ForContext(r.Context()).WithError(err).Error("report: erro ao montar relatório")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar relatório", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}
