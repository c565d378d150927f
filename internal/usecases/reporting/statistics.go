package reporting

import (
	"math"
	"sort"
)

// Summary é o resumo descritivo de uma coluna numérica.
// Campos nil representam valores indefinidos (ex.: desvio padrão de uma amostra só).
type Summary struct {
	Count int
	Mean  *float64
	Std   *float64
	Min   *float64
	Q25   *float64
	Q50   *float64
	Q75   *float64
	Max   *float64
}

// Describe calcula count, média, desvio padrão amostral, mínimo, quartis
// (interpolação linear) e máximo
func Describe(values []float64) Summary {
	summary := Summary{Count: len(values)}
	if len(values) == 0 {
		return summary
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, value := range sorted {
		sum += value
	}
	mean := sum / float64(len(sorted))

	summary.Mean = &mean
	summary.Min = &sorted[0]
	summary.Max = &sorted[len(sorted)-1]
	summary.Q25 = ptr(quantile(sorted, 0.25))
	summary.Q50 = ptr(quantile(sorted, 0.50))
	summary.Q75 = ptr(quantile(sorted, 0.75))

	if len(sorted) > 1 {
		var squares float64
		for _, value := range sorted {
			squares += (value - mean) * (value - mean)
		}
		summary.Std = ptr(math.Sqrt(squares / float64(len(sorted)-1)))
	}

	return summary
}

func quantile(sorted []float64, q float64) float64 {
	position := q * float64(len(sorted)-1)
	lower := int(math.Floor(position))
	upper := int(math.Ceil(position))

	if lower == upper {
		return sorted[lower]
	}

	fraction := position - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*fraction
}

func ptr(value float64) *float64 {
	return &value
}
