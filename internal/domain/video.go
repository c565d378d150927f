package domain

import (
	"fmt"

	"github.com/vfg2006/youstats/pkg/utils"
)

// VideoRecord representa um vídeo coletado do canal, já normalizado
type VideoRecord struct {
	Title       string `json:"title"`
	Views       int64  `json:"views"`
	PostedOn    string `json:"date"` // MM/DD/YYYY
	Description string `json:"description"`
	Link        string `json:"link"`
}

// NewVideoRecord valida os campos normalizados antes de criar o registro
func NewVideoRecord(title string, views int64, postedOn, description, link string) (VideoRecord, error) {
	if views < 0 {
		return VideoRecord{}, fmt.Errorf("%w: views negativas (%d)", ErrInvalidVideoRecord, views)
	}

	if !utils.IsCanonicalDate(postedOn) {
		return VideoRecord{}, fmt.Errorf("%w: data fora do formato MM/DD/YYYY (%q)", ErrInvalidVideoRecord, postedOn)
	}

	return VideoRecord{
		Title:       title,
		Views:       views,
		PostedOn:    postedOn,
		Description: description,
		Link:        link,
	}, nil
}

// Year retorna o ano (últimos 4 caracteres) da data de publicação
func (v VideoRecord) Year() string {
	return v.PostedOn[len(v.PostedOn)-4:]
}

// MonthKey retorna o prefixo de dois dígitos do mês da data de publicação
func (v VideoRecord) MonthKey() string {
	return v.PostedOn[0:2]
}
