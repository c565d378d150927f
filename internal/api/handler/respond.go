package handler

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/youstats/internal/domain"
	"github.com/vfg2006/youstats/pkg/apiErrors"
	"github.com/vfg2006/youstats/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

// channelParam normaliza o identificador recebido para o nome gravado no banco
func channelParam(value string) string {
	return domain.DisplayChannelName(strings.TrimSpace(value))
}

func parseMetric(w http.ResponseWriter, r *http.Request) (domain.Metric, bool) {
	raw := r.URL.Query().Get("metric")
	metric, ok := domain.ParseMetric(raw)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrUnknownMetric, "Métrica inválida. Valores aceitos: posts, views", map[string]any{
			"metric": raw,
		})
		return "", false
	}
	return metric, true
}
