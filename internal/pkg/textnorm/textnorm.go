// Package textnorm concentra a normalização de texto usada como chave de
// junção entre os datasets: remoção de sufixos entre parênteses, remoção de
// acentos e caixa alta. Todas as funções são puras e totais.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	parenthetical = regexp.MustCompile(`\s*\([^)]*\)`)
	dashSuffix    = regexp.MustCompile(`\s*-\s*[\p{L}\d\s]+$`)
)

// asciiFolder monta o transformador NFKD + remoção de marcas combinantes +
// descarte de qualquer rune restante fora do ASCII. O descarte total (e não
// só das marcas) garante que nomes com dupla codificação colapsem para a
// mesma chave que a forma limpa. Transformers do x/text carregam estado,
// então cada chamada usa o seu.
func asciiFolder() transform.Transformer {
	return transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
}

// Normalize produz a chave de junção estável: sem parênteses, sem acentos,
// caixa alta e sem espaços nas pontas. Nunca falha; entrada inválida degrada
// para a própria string em caixa alta.
func Normalize(s string) string {
	s = parenthetical.ReplaceAllString(s, "")
	stripped, _, err := transform.String(asciiFolder(), s)
	if err != nil {
		stripped = s
	}
	return strings.ToUpper(strings.TrimSpace(stripped))
}

// StripParenthetical limpa o nome de exibição para consulta na API de clima,
// que rejeita sufixos como " (SP)" ou " - Zona Rural".
func StripParenthetical(s string) string {
	s = parenthetical.ReplaceAllString(s, "")
	s = dashSuffix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// RepairMojibake tenta corrigir nomes gravados com bytes UTF-8 lidos como
// Latin-1 (ex.: "AlgodÃ£o"). Reencoda para Latin-1 e, se os bytes resultarem
// em UTF-8 válido com conteúdo não ASCII, devolve a forma corrigida; em
// qualquer outro caso devolve a string original.
func RepairMojibake(s string) string {
	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return s
	}
	if raw == s {
		return s
	}
	if utf8.ValidString(raw) {
		return raw
	}
	return s
}

// TitleCase formata nomes de produto para exibição (pt-BR). Casers do
// x/text também carregam estado, então cada chamada constrói o seu.
func TitleCase(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}
