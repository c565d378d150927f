package handler

import (
	"net/http"

	"github.com/vfg2006/youstats/pkg/apiErrors"
	"github.com/vfg2006/youstats/pkg/log"
)

// ComparisonSyncer é o agendador de comparações visto pela API
type ComparisonSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunComparisonSync dispara manualmente a coleta dos pares configurados
func RunComparisonSync(syncer ComparisonSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Agendador de comparações não disponível", nil)
			return
		}

		if !syncer.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização de comparações já está em andamento", nil)
			return
		}

		logger.Info("cron: sincronização de comparações disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Sincronização de comparações iniciada com sucesso",
			"type":    "comparisons",
		})
	})
}

// GetCronStatus retorna o status do agendador de comparações
func GetCronStatus(syncer ComparisonSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Agendador de comparações não disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"comparisons": syncer.GetStatus(),
		})
	})
}
