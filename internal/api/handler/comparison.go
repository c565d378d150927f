package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/youstats/infrastructure/repository"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/internal/usecases/analyzing"
	"github.com/vfg2006/youstats/internal/usecases/comparing"
	"github.com/vfg2006/youstats/pkg/apiErrors"
	"github.com/vfg2006/youstats/pkg/log"
	"github.com/vfg2006/youstats/pkg/utils"
)

type ComparisonRequest struct {
	Pivot  string `json:"pivot"`
	Target string `json:"target"`
}

// SideSummary resume um lado da comparação
type SideSummary struct {
	ChannelID    string                 `json:"channel_id"`
	ChannelName  string                 `json:"channel_name,omitempty"`
	Available    bool                   `json:"available"`
	Error        string                 `json:"error,omitempty"`
	Profile      *domain.ChannelProfile `json:"profile,omitempty"`
	VideoCount   int                    `json:"video_count"`
	AverageViews float64                `json:"average_views"`
	YearsActive  []string               `json:"years_active,omitempty"`
}

type ComparisonResponse struct {
	Pivot       SideSummary `json:"pivot"`
	Target      SideSummary `json:"target"`
	CommonYears []string    `json:"common_years"`
}

func summarize(side *domain.ComparisonSide) SideSummary {
	if side == nil {
		return SideSummary{}
	}

	summary := SideSummary{
		ChannelID: side.ChannelID,
		Available: side.Available(),
	}

	if side.Err != nil {
		summary.Error = side.Err.Error()
	}

	if side.Snapshot != nil {
		summary.ChannelName = side.Snapshot.ChannelName
		summary.Profile = side.Snapshot.Profile
		summary.VideoCount = len(side.Snapshot.Videos)
		summary.YearsActive = side.Snapshot.YearsActive

		if summary.VideoCount > 0 {
			var total int64
			for _, video := range side.Snapshot.Videos {
				total += video.Views
			}
			summary.AverageViews = utils.RoundWithTwoDecimalPlace(float64(total) / float64(summary.VideoCount))
		}
	}

	return summary
}

// CreateComparison coleta os dois canais e devolve o resumo com os anos em comum
func CreateComparison(service comparing.ComparingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req ComparisonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"pivot":  req.Pivot,
			"target": req.Target,
		}).Info("comparisons: iniciando comparação")

		comparison, err := service.Run(r.Context(), req.Pivot, req.Target)
		if err != nil {
			if errors.Is(err, comparing.ErrMissingChannelIdentifier) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o canal pivô e o canal alvo", nil)
				return
			}
			logger.WithError(err).Error("comparisons: erro ao comparar canais")
			apiErr := apiErrors.FromError(err, apiErrors.ErrExternalService)
			apiErrors.WriteError(w, apiErr.Code, "Erro ao comparar canais", apiErr.Message)
			return
		}

		response := ComparisonResponse{
			Pivot:  summarize(comparison.Pivot),
			Target: summarize(comparison.Target),
		}

		// anos em comum só fazem sentido com os dois lados coletados
		if comparison.Available() {
			response.CommonYears = analyzing.CommonYears(comparison.Pivot.Snapshot.YearsActive, comparison.Target.Snapshot.YearsActive)
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

// GetCommonYears compara os últimos snapshots gravados de dois canais
func GetCommonYears(store repository.SnapshotRepository, analyzer analyzing.AnalyzingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		pivot := channelParam(query.Get("pivot"))
		target := channelParam(query.Get("target"))
		if pivot == "" || target == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o canal pivô e o canal alvo", nil)
			return
		}

		metric, ok := parseMetric(w, r)
		if !ok {
			return
		}

		pivotSnapshot, ok := loadSnapshot(r.Context(), w, store, pivot)
		if !ok {
			return
		}

		targetSnapshot, ok := loadSnapshot(r.Context(), w, store, target)
		if !ok {
			return
		}

		series, err := analyzer.CompareYears(pivotSnapshot, targetSnapshot, metric)
		if err != nil && !errors.Is(err, domain.ErrEmptyResult) {
			logger.WithError(err).WithFields(log.Fields{
				"pivot":  pivot,
				"target": target,
			}).Error("common-years: erro ao comparar séries")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao comparar canais", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, series)
	})
}
