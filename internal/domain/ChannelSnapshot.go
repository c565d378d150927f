package domain

import (
	"sort"
	"strings"
	"time"
)

// ChannelProfile contém as informações do cabeçalho do canal (aba "general" do relatório)
type ChannelProfile struct {
	DisplayName     string `json:"header_name"`
	SubscriberCount int64  `json:"subscribers_num"`
	VideoCount      int64  `json:"videos_num"`
	JoinedOn        string `json:"join_date"` // MM/DD/YYYY
	TotalViews      int64  `json:"total_views"`
}

// ChannelSnapshot é o conjunto de dados normalizados de um canal em uma execução
type ChannelSnapshot struct {
	ID          string          `json:"id"`
	ChannelID   string          `json:"channel_id"`
	ChannelName string          `json:"channel_name"`
	Profile     *ChannelProfile `json:"profile,omitempty"`
	Videos      []VideoRecord   `json:"videos"`
	YearsActive []string        `json:"years_active"`
	HarvestedAt time.Time       `json:"harvested_at"`
}

// NewChannelSnapshot monta o snapshot e deriva os anos de atividade a partir dos vídeos
func NewChannelSnapshot(id, channelID string, profile *ChannelProfile, videos []VideoRecord, harvestedAt time.Time) *ChannelSnapshot {
	owned := make([]VideoRecord, len(videos))
	copy(owned, videos)

	return &ChannelSnapshot{
		ID:          id,
		ChannelID:   channelID,
		ChannelName: DisplayChannelName(channelID),
		Profile:     profile,
		Videos:      owned,
		YearsActive: YearsActiveOf(owned),
		HarvestedAt: harvestedAt,
	}
}

// DisplayChannelName remove o marcador "@" do identificador do canal
func DisplayChannelName(channelID string) string {
	return strings.TrimPrefix(strings.TrimSpace(channelID), "@")
}

// YearsActiveOf retorna os anos distintos das datas de publicação, em ordem crescente
func YearsActiveOf(videos []VideoRecord) []string {
	seen := make(map[string]struct{}, len(videos))
	years := make([]string, 0)

	for _, video := range videos {
		year := video.Year()
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		years = append(years, year)
	}

	sort.Strings(years)
	return years
}

// IsEmpty indica que o snapshot não possui vídeos
func (s *ChannelSnapshot) IsEmpty() bool {
	return s == nil || len(s.Videos) == 0
}
