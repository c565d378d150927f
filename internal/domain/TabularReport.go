package domain

const (
	SheetGeneral    = "general"
	SheetVideos     = "videos"
	SheetStatistics = "statistics"
)

// Sheet é uma tabela nomeada do relatório
type Sheet struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// TabularReport é o relatório exportado por canal: general, videos e statistics
type TabularReport struct {
	Name   string  `json:"name"`
	Sheets []Sheet `json:"sheets"`
}

// Sheet busca a tabela pelo nome
func (r *TabularReport) Sheet(name string) (*Sheet, bool) {
	for i := range r.Sheets {
		if r.Sheets[i].Name == name {
			return &r.Sheets[i], true
		}
	}
	return nil, false
}
