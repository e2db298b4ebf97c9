package utils

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var impressoraPtBR = message.NewPrinter(language.BrazilianPortuguese)

// ToNumero converte qualquer valor monetário/percentual vindo do JSON em
// float64. Nulo, ausente ou imprestável vira 0 — nunca NaN numa soma.
func ToNumero(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// FormatarMoeda formata um valor em reais: 1234.5 -> "R$ 1.234,50".
func FormatarMoeda(v float64) string {
	return impressoraPtBR.Sprintf("R$ %.2f", v)
}

// FormatarMoedaCurta abrevia valores grandes para os cards do dashboard.
func FormatarMoedaCurta(v float64) string {
	switch {
	case v >= 1e9:
		return impressoraPtBR.Sprintf("R$ %.1f bi", v/1e9)
	case v >= 1e6:
		return impressoraPtBR.Sprintf("R$ %.1f mi", v/1e6)
	case v >= 1e3:
		return impressoraPtBR.Sprintf("R$ %.1f mil", v/1e3)
	default:
		return FormatarMoeda(v)
	}
}

// FormatarData formata datas no padrão brasileiro.
func FormatarData(t time.Time) string {
	return t.Format("02/01/2006")
}
