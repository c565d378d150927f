package analyzing

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/youstats/internal/domain"
)

type AnalyzingService interface {
	Histogram(snapshot *domain.ChannelSnapshot, metric domain.Metric) (domain.YearMonthHistogram, error)
	CompareYears(pivot, target *domain.ChannelSnapshot, metric domain.Metric) (*domain.ComparisonSeries, error)
	ChannelSeries(snapshot *domain.ChannelSnapshot, metric domain.Metric, years []string) ([]domain.ChannelYearSeries, error)
}

type Service struct{}

func NewAnalyzingService() AnalyzingService {
	return &Service{}
}

// Histogram agrupa os vídeos do snapshot. Sem vídeos, retorna o histograma
// vazio junto de domain.ErrEmptyResult.
func (s *Service) Histogram(snapshot *domain.ChannelSnapshot, metric domain.Metric) (domain.YearMonthHistogram, error) {
	if snapshot == nil {
		return nil, ErrMissingSnapshot
	}

	histogram, err := GroupByMetric(snapshot.Videos, metric)
	if err != nil {
		return nil, err
	}

	if len(histogram) == 0 {
		return histogram, domain.ErrEmptyResult
	}

	return histogram, nil
}

// CompareYears monta as séries dos dois canais para cada ano em comum.
// Sem anos em comum, retorna a comparação vazia junto de domain.ErrEmptyResult.
func (s *Service) CompareYears(pivot, target *domain.ChannelSnapshot, metric domain.Metric) (*domain.ComparisonSeries, error) {
	if pivot == nil || target == nil {
		return nil, ErrMissingSnapshot
	}

	pivotHistogram, err := GroupByMetric(pivot.Videos, metric)
	if err != nil {
		return nil, err
	}

	targetHistogram, err := GroupByMetric(target.Videos, metric)
	if err != nil {
		return nil, err
	}

	common := CommonYears(YearsOf(pivotHistogram), YearsOf(targetHistogram))

	comparison := &domain.ComparisonSeries{
		Metric:      metric,
		PivotName:   pivot.ChannelName,
		TargetName:  target.ChannelName,
		CommonYears: common,
		Series:      make([]domain.YearSeries, 0, len(common)),
	}

	for _, year := range common {
		pivotValues := pivotHistogram[year]
		targetValues := targetHistogram[year]

		comparison.Series = append(comparison.Series, domain.YearSeries{
			Year:         year,
			Pivot:        *pivotValues,
			Target:       *targetValues,
			PivotLegend:  Legend(pivotValues),
			TargetLegend: Legend(targetValues),
		})
	}

	logrus.WithFields(logrus.Fields{
		"pivot":        pivot.ChannelName,
		"target":       target.ChannelName,
		"metric":       metric,
		"common_years": common,
	}).Debug("Comparação por anos em comum calculada")

	if len(common) == 0 {
		return comparison, domain.ErrEmptyResult
	}

	return comparison, nil
}

// ChannelSeries monta a série de um canal para os anos pedidos.
// Sem anos, usa todos os anos ativos do canal.
func (s *Service) ChannelSeries(snapshot *domain.ChannelSnapshot, metric domain.Metric, years []string) ([]domain.ChannelYearSeries, error) {
	histogram, err := s.Histogram(snapshot, metric)
	if err != nil {
		return []domain.ChannelYearSeries{}, err
	}

	if len(years) == 0 {
		years = YearsOf(histogram)
	}

	series := make([]domain.ChannelYearSeries, 0, len(years))
	for _, year := range years {
		values, ok := histogram[year]
		if !ok {
			return nil, fmt.Errorf("%w: ano %s sem vídeos para %s", domain.ErrEmptyResult, year, snapshot.ChannelName)
		}

		series = append(series, domain.ChannelYearSeries{
			Year:   year,
			Values: *values,
			Legend: Legend(values),
		})
	}

	return series, nil
}
