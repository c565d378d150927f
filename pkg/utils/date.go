package utils

import (
	"strings"
	"time"
)

const (
	// CanonicalDateLayout é o formato MM/DD/YYYY usado em todos os snapshots
	CanonicalDateLayout = "01/02/2006"

	pageDateLayout = "Jan 2, 2006"
)

var datePrefixes = []string{"Premiered ", "Joined "}

// ParseVideoDate converte datas da página ("Nov 27, 2021", "Premiered Nov 27, 2021",
// "Joined Nov 27, 2021") para o formato canônico MM/DD/YYYY
func ParseVideoDate(text string) (string, error) {
	value := strings.TrimSpace(text)

	for _, prefix := range datePrefixes {
		if strings.HasPrefix(value, prefix) {
			value = strings.TrimPrefix(value, prefix)
			break
		}
	}

	date, err := time.Parse(pageDateLayout, value)
	if err != nil {
		return "", &MalformedDateError{Input: text, Err: err}
	}

	// time.Parse ignora a caixa do mês; a página sempre usa "Jan", "Feb", ...
	if !strings.HasPrefix(value, date.Month().String()[:3]) {
		return "", &MalformedDateError{Input: text}
	}

	return date.Format(CanonicalDateLayout), nil
}

// IsCanonicalDate verifica se a data já está no formato MM/DD/YYYY
func IsCanonicalDate(value string) bool {
	if len(value) != len(CanonicalDateLayout) {
		return false
	}

	_, err := time.Parse(CanonicalDateLayout, value)
	return err == nil
}
