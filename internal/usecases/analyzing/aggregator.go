package analyzing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/youstats/internal/domain"
)

// GroupPostsByYearMonth conta as publicações por ano e mês
func GroupPostsByYearMonth(videos []domain.VideoRecord) domain.YearMonthHistogram {
	return group(videos, func(domain.VideoRecord) int64 { return 1 })
}

// GroupViewsByYearMonth soma as visualizações por ano e mês de publicação
func GroupViewsByYearMonth(videos []domain.VideoRecord) domain.YearMonthHistogram {
	return group(videos, func(video domain.VideoRecord) int64 { return video.Views })
}

// GroupByMetric escolhe o agrupamento pela métrica
func GroupByMetric(videos []domain.VideoRecord, metric domain.Metric) (domain.YearMonthHistogram, error) {
	switch metric {
	case domain.MetricPosts:
		return GroupPostsByYearMonth(videos), nil
	case domain.MetricViews:
		return GroupViewsByYearMonth(videos), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
}

func group(videos []domain.VideoRecord, valueOf func(domain.VideoRecord) int64) domain.YearMonthHistogram {
	histogram := make(domain.YearMonthHistogram)

	for _, video := range videos {
		monthIdx, ok := domain.MonthIndex(video.MonthKey())
		if !ok {
			continue
		}
		histogram.Add(video.Year(), monthIdx, valueOf(video))
	}

	return histogram
}

// YearsOf retorna os anos do histograma em ordem crescente
func YearsOf(histogram domain.YearMonthHistogram) []string {
	years := make([]string, 0, len(histogram))
	for year := range histogram {
		years = append(years, year)
	}

	sort.Strings(years)
	return years
}

// CommonYears é a interseção ordenada dos anos dos dois canais.
// O resultado vazio é um slice vazio, nunca nil.
func CommonYears(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, year := range b {
		inB[year] = struct{}{}
	}

	seen := make(map[string]struct{})
	common := make([]string, 0)
	for _, year := range a {
		if _, ok := inB[year]; !ok {
			continue
		}
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		common = append(common, year)
	}

	sort.Strings(common)
	return common
}

// Legend monta o texto da legenda do gráfico: um "Mês: valor" por linha
func Legend(values *domain.MonthlyValues) string {
	if values == nil {
		values = &domain.MonthlyValues{}
	}

	lines := make([]string, 0, len(domain.Months))
	for i, month := range domain.Months {
		lines = append(lines, fmt.Sprintf("%s: %d", month, values[i]))
	}

	return strings.Join(lines, "\n")
}
