package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	compactCountPattern = regexp.MustCompile(`^([0-9][0-9.,]*)\s*([KMB])?(?:\s|$)`)

	// agrupamento de milhar em blocos de três dígitos, ou sem separador
	viewCountPattern = regexp.MustCompile(`^(?:[0-9]{1,3}(?:,[0-9]{3})*|[0-9]+)$`)

	unitMultipliers = map[string]int64{
		"K": 1_000,
		"M": 1_000_000,
		"B": 1_000_000_000,
	}
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseCompactCount converte contagens no formato abreviado da página do canal
// ("235", "2.37K", "5.347M", "1,024 subscribers") em inteiro.
//
// Com sufixo de unidade o resultado é dígitos × (U / 10^d), onde d é a
// quantidade de casas após o ponto removido.
func ParseCompactCount(text string) (int64, error) {
	value := strings.TrimSpace(text)

	match := compactCountPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, &MalformedCountError{Input: text}
	}

	number, unit := match[1], match[2]

	digits, err := parseDigits(number)
	if err != nil {
		return 0, &MalformedCountError{Input: text}
	}

	if unit == "" {
		return digits, nil
	}

	fractional := 0
	if idx := strings.LastIndex(number, "."); idx >= 0 {
		fractional = len(number) - idx - 1
	}

	multiplier := unitMultipliers[unit]
	scale := int64(math.Pow10(fractional))

	if scale <= multiplier {
		factor := multiplier / scale
		if digits > math.MaxInt64/factor {
			return 0, &MalformedCountError{Input: text}
		}

		return digits * factor, nil
	}

	// Mais casas decimais do que a unidade comporta: trunca o excedente
	return digits / (scale / multiplier), nil
}

// ParseViewCount converte textos como "3,130 views" em inteiro
func ParseViewCount(text string) (int64, error) {
	value := strings.TrimSpace(text)
	value = strings.TrimSuffix(value, " views")
	value = strings.TrimSuffix(value, " view")

	if !viewCountPattern.MatchString(value) {
		return 0, &MalformedCountError{Input: text}
	}

	views, err := strconv.ParseUint(strings.ReplaceAll(value, ",", ""), 10, 63)
	if err != nil {
		return 0, &MalformedCountError{Input: text}
	}

	return int64(views), nil
}

func parseDigits(number string) (int64, error) {
	clean := strings.NewReplacer(".", "", ",", "").Replace(number)
	if clean == "" {
		return 0, ErrMalformedCount
	}

	value, err := strconv.ParseUint(clean, 10, 63)
	if err != nil {
		return 0, err
	}

	return int64(value), nil
}
