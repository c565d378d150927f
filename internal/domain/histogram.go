package domain

import (
	"bytes"
	"fmt"
	"strconv"
)

// Months são os nomes canônicos dos meses, em ordem de calendário
var Months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthsMapping = map[string]int{
	"01": 0, "02": 1, "03": 2, "04": 3, "05": 4, "06": 5,
	"07": 6, "08": 7, "09": 8, "10": 9, "11": 10, "12": 11,
}

// MonthIndex converte o prefixo de dois dígitos ("01".."12") no índice do mês
func MonthIndex(key string) (int, bool) {
	idx, ok := monthsMapping[key]
	return idx, ok
}

// MonthName retorna o nome do mês para o prefixo de dois dígitos
func MonthName(key string) (string, bool) {
	idx, ok := monthsMapping[key]
	if !ok {
		return "", false
	}
	return Months[idx], true
}

// MonthlyValues guarda um valor por mês; todos os 12 meses sempre existem
type MonthlyValues [12]int64

// Get retorna o valor para o nome do mês
func (m *MonthlyValues) Get(month string) int64 {
	for i, name := range Months {
		if name == month {
			return m[i]
		}
	}
	return 0
}

// Total soma os valores dos 12 meses
func (m *MonthlyValues) Total() int64 {
	var total int64
	for _, value := range m {
		total += value
	}
	return total
}

// Max retorna o maior valor mensal
func (m *MonthlyValues) Max() int64 {
	var highest int64
	for _, value := range m {
		if value > highest {
			highest = value
		}
	}
	return highest
}

// MarshalJSON mantém os meses na ordem do calendário
func (m MonthlyValues) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range Months {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:%s", name, strconv.FormatInt(m[i], 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// YearMonthHistogram agrupa valores por ano ("2022") e mês
type YearMonthHistogram map[string]*MonthlyValues

// Add soma o valor no ano/mês, criando o ano com os 12 meses zerados quando necessário
func (h YearMonthHistogram) Add(year string, monthIdx int, value int64) {
	values, ok := h[year]
	if !ok {
		values = &MonthlyValues{}
		h[year] = values
	}
	values[monthIdx] += value
}

// Metric identifica qual valor do vídeo é agregado no histograma
type Metric string

const (
	MetricPosts Metric = "posts"
	MetricViews Metric = "views"
)

// ParseMetric valida o nome da métrica recebido externamente
func ParseMetric(value string) (Metric, bool) {
	switch Metric(value) {
	case MetricPosts, "":
		return MetricPosts, true
	case MetricViews:
		return MetricViews, true
	default:
		return "", false
	}
}
