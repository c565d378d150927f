package domain

// ComparisonSide é o resultado da coleta de um dos canais da comparação
type ComparisonSide struct {
	ChannelID string           `json:"channel_id"`
	Snapshot  *ChannelSnapshot `json:"snapshot,omitempty"`
	Err       error            `json:"-"`
}

// Available indica se o snapshot do lado está disponível
func (s *ComparisonSide) Available() bool {
	return s != nil && s.Err == nil && s.Snapshot != nil
}

// Comparison agrupa o canal pivô e o canal alvo de uma mesma análise
type Comparison struct {
	Pivot  *ComparisonSide `json:"pivot"`
	Target *ComparisonSide `json:"target"`
}

// Available indica se os dois lados foram coletados com sucesso
func (c *Comparison) Available() bool {
	return c != nil && c.Pivot.Available() && c.Target.Available()
}

// YearSeries são os valores mensais dos dois canais para um ano em comum
type YearSeries struct {
	Year         string        `json:"year"`
	Pivot        MonthlyValues `json:"pivot"`
	Target       MonthlyValues `json:"target"`
	PivotLegend  string        `json:"pivot_legend"`
	TargetLegend string        `json:"target_legend"`
}

// ComparisonSeries é a série por ano usada pela camada de visualização
type ComparisonSeries struct {
	Metric      Metric       `json:"metric"`
	PivotName   string       `json:"pivot_name"`
	TargetName  string       `json:"target_name"`
	CommonYears []string     `json:"common_years"`
	Series      []YearSeries `json:"series"`
}

// ChannelYearSeries é a série de um único canal para um ano
type ChannelYearSeries struct {
	Year   string        `json:"year"`
	Values MonthlyValues `json:"values"`
	Legend string        `json:"legend"`
}
