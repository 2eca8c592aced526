// Package dataset carrega os extratos municipais do IBGE (CSV) e os JSONs de
// referência de cultura para um cache em memória, chaveado por cidade e
// produto normalizados.
package dataset

// Chaves semânticas dos datasets quantitativos.
const (
	KeyQuantidade = "Quantidade produzida"
	KeyRendimento = "Rendimento médio"
	KeyValor      = "Valor da produção"
	KeyAreaColh   = "Área colhida"
	KeyAreaDest   = "Área destinada"
)

// Chaves dos arquivos de referência JSON.
const (
	RefCotacao      = "cotacao"
	RefFichaBase    = "ficha_base"
	RefSazonalidade = "sazonalidade"
)

// CSVConfig descreve um dataset quantitativo: o arquivo, a linha (zero-based)
// onde está o cabeçalho de produtos e o rótulo de unidade dos valores.
type CSVConfig struct {
	Key            string
	File           string
	HeaderRowIndex int
	Unit           string
}

// JSONConfig descreve um arquivo de referência: o campo nomeado que vira a
// chave normalizada do índice.
type JSONConfig struct {
	Key       string
	File      string
	NameField string
}

// Os cinco extratos do IBGE compartilham o mesmo layout com cabeçalho na
// linha de índice 4.
var CSVConfigs = []CSVConfig{
	{Key: KeyQuantidade, File: "Quantidade produzida (Toneladas).csv", HeaderRowIndex: 4, Unit: "Toneladas"},
	{Key: KeyRendimento, File: "Rendimento médio da produção (Quilogramas por Hectare).csv", HeaderRowIndex: 4, Unit: "Quilogramas por Hectare"},
	{Key: KeyValor, File: "Valor da produção (Reais).csv", HeaderRowIndex: 4, Unit: "Mil Reais"},
	{Key: KeyAreaColh, File: "Área colhida (Hectares).csv", HeaderRowIndex: 4, Unit: "Hectares"},
	{Key: KeyAreaDest, File: "Área destinada à colheita.csv", HeaderRowIndex: 4, Unit: "Hectares"},
}

var JSONConfigs = []JSONConfig{
	{Key: RefCotacao, File: "cotacao_media.json", NameField: "produto"},
	{Key: RefFichaBase, File: "ficha_producao.json", NameField: "cultura_produto"},
	{Key: RefSazonalidade, File: "sazonalidade.json", NameField: "produto"},
}

// UnitFor devolve o rótulo de unidade de um dataset quantitativo.
func UnitFor(key string) string {
	for _, cfg := range CSVConfigs {
		if cfg.Key == key {
			return cfg.Unit
		}
	}
	return ""
}
