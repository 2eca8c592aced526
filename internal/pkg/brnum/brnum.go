// Package brnum interpreta valores numéricos no formato brasileiro usado nos
// CSVs do IBGE ("." como separador de milhar, "," como separador decimal) e
// reconhece os sentinelas de dado indisponível.
package brnum

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/textnorm"
)

// Sentinelas aceitos pelos datasets para "sem dado". A comparação é feita
// sobre a forma normalizada, então variações de caixa e acento também casam.
var unavailable = map[string]struct{}{
	"-":                   {},
	"...":                 {},
	"DADO NAO DISPONIVEL": {},
}

// IsUnavailable informa se o valor bruto é um sentinela de indisponibilidade.
func IsUnavailable(raw string) bool {
	_, ok := unavailable[textnorm.Normalize(raw)]
	return ok
}

// Parse converte um valor no formato brasileiro para decimal. Sentinelas e
// strings não numéricas retornam ok=false; nada aqui gera pânico.
func Parse(raw string) (decimal.Decimal, bool) {
	if IsUnavailable(raw) {
		return decimal.Zero, false
	}
	clean := strings.TrimSpace(raw)
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseFloat é o atalho usado pelo ranqueamento: sentinelas e lixo valem 0.
func ParseFloat(raw string) (float64, bool) {
	d, ok := Parse(raw)
	if !ok {
		return 0, false
	}
	return d.InexactFloat64(), true
}

// StripThousands remove apenas o separador de milhar, preservando o restante
// da string para exibição com sufixo de unidade.
func StripThousands(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), ".", "")
}
