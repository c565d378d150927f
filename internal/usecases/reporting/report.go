package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/youstats/internal/domain"
)

//go:generate mockgen -source=report.go -destination=mocks/report.go -package=mocks

// ReportWriter persiste o relatório tabular de um canal
type ReportWriter interface {
	WriteTabularReport(ctx context.Context, name string, report *domain.TabularReport) error
}

var (
	generalColumns    = []string{"header_name", "subscribers_num", "videos_num", "join_date", "total_views"}
	videosColumns     = []string{"", "title", "views", "date", "description", "link"}
	statisticsColumns = []string{"", "views"}
)

// ReportName monta o nome do relatório: <canal>&DD_MM_YYYY&HH_MM_SS
func ReportName(channelName string, at time.Time) string {
	return fmt.Sprintf("%s&%s", domain.DisplayChannelName(channelName), at.Format("02_01_2006&15_04_05"))
}

// BuildReport monta as três tabelas do relatório do canal. Sem vídeos, o
// relatório é montado mesmo assim e domain.ErrEmptyResult é retornado.
func BuildReport(snapshot *domain.ChannelSnapshot, at time.Time) (*domain.TabularReport, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: snapshot ausente", domain.ErrEmptyResult)
	}

	report := &domain.TabularReport{
		Name: ReportName(snapshot.ChannelName, at),
		Sheets: []domain.Sheet{
			generalSheet(snapshot.Profile),
			videosSheet(snapshot.Videos),
			statisticsSheet(snapshot.Videos),
		},
	}

	if snapshot.IsEmpty() {
		return report, domain.ErrEmptyResult
	}

	return report, nil
}

func generalSheet(profile *domain.ChannelProfile) domain.Sheet {
	sheet := domain.Sheet{Name: domain.SheetGeneral, Columns: generalColumns, Rows: [][]any{}}
	if profile == nil {
		return sheet
	}

	sheet.Rows = append(sheet.Rows, []any{
		profile.DisplayName,
		profile.SubscriberCount,
		profile.VideoCount,
		profile.JoinedOn,
		profile.TotalViews,
	})
	return sheet
}

// videosSheet numera as linhas a partir de 1
func videosSheet(videos []domain.VideoRecord) domain.Sheet {
	sheet := domain.Sheet{Name: domain.SheetVideos, Columns: videosColumns, Rows: make([][]any, 0, len(videos))}

	for i, video := range videos {
		sheet.Rows = append(sheet.Rows, []any{
			i + 1,
			video.Title,
			video.Views,
			video.PostedOn,
			video.Description,
			video.Link,
		})
	}
	return sheet
}

func statisticsSheet(videos []domain.VideoRecord) domain.Sheet {
	views := make([]float64, 0, len(videos))
	for _, video := range videos {
		views = append(views, float64(video.Views))
	}

	summary := Describe(views)

	return domain.Sheet{
		Name:    domain.SheetStatistics,
		Columns: statisticsColumns,
		Rows: [][]any{
			{"count", float64(summary.Count)},
			{"mean", cell(summary.Mean)},
			{"std", cell(summary.Std)},
			{"min", cell(summary.Min)},
			{"25%", cell(summary.Q25)},
			{"50%", cell(summary.Q50)},
			{"75%", cell(summary.Q75)},
			{"max", cell(summary.Max)},
		},
	}
}

// Valores indefinidos saem como célula vazia
func cell(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}
