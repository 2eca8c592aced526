package domain

// RefRecord é um registro descritivo vindo dos JSONs de referência
// (cotação, ficha de produção, sazonalidade), indexado pela chave
// normalizada do produto. Os campos variam por arquivo, então o registro
// permanece semiestruturado.
type RefRecord = map[string]interface{}

// FichaTecnica é a ficha consolidada de um par produto/cidade, sem os dados
// de clima (que entram só na FichaCompleta).
type FichaTecnica struct {
	// Um campo por dataset quantitativo: valor com sufixo de unidade,
	// "Dado não disponível" quando o valor é sentinela ou
	// "Cidade não possui dados cadastrados" quando a cidade não tem linha.
	Quantitativos map[string]string `json:"dados_quantitativos"`

	Cotacao      map[string]interface{} `json:"cotacao"`
	PMA2024RS    string                 `json:"pma_2024_rs"`
	FichaBase    FichaBase              `json:"ficha_base"`
	Sazonalidade Sazonalidade           `json:"sazonalidade"`
}

type FichaBase struct {
	Ciclo               string `json:"ciclo"`
	TemperaturaC        string `json:"temperatura_c"`
	TipoSolo            string `json:"tipo_solo"`
	PHIdealH2O          string `json:"ph_ideal_h2o"`
	PrecipitacaoAnualMM string `json:"precipitacao_anual_mm"`
}

type Sazonalidade struct {
	Plantio  string `json:"plantio"`
	Colheita string `json:"colheita"`
}

// FichaCompleta é a ficha achatada servida ao front, combinando a
// FichaTecnica com o clima atual. Campos vazios são omitidos da resposta.
// Os campos marcados como demonstrativos carregam valores fixos que os
// datasets não cobrem; consumidores não devem tratá-los como medidos.
type FichaCompleta struct {
	Produto  string `json:"produto,omitempty"`
	CityName string `json:"city_name,omitempty"`

	TipoSolo               string `json:"tipo_solo,omitempty"`
	CicloVidaDias          string `json:"ciclo_vida_dias,omitempty"`
	FertilizanteEssencial  string `json:"fertilizante_essencial,omitempty"`  // demonstrativo
	StatusSustentabilidade string `json:"status_sustentabilidade,omitempty"` // demonstrativo

	TemperaturaIdealC      string `json:"temperatura_ideal_c,omitempty"`
	PrecipitacaoMinMM      string `json:"precipitacao_min_mm,omitempty"`
	PeriodoPlantioSugerido string `json:"periodo_plantio_sugerido,omitempty"`
	AltitudeMediaM         string `json:"altitude_media_m,omitempty"` // demonstrativo

	ProdutividadeMediaKgHa    string `json:"produtividade_media_kg_ha,omitempty"`
	NecessidadeHidricaTotalMM string `json:"necessidade_hidrica_total_mm,omitempty"` // demonstrativo
	TempoColheitaMeses        string `json:"tempo_colheita_meses,omitempty"`
	CondicaoIdealColheita     string `json:"condicao_ideal_colheita,omitempty"` // demonstrativo

	VulnerabilidadePragas string `json:"vulnerabilidade_pragas,omitempty"` // demonstrativo
	AnosEstudoLocalIBGE   string `json:"anos_estudo_local_ibge,omitempty"` // demonstrativo
	CotacaoPMARS          string `json:"cotacao_pma_rs,omitempty"`
	PHSoloIdeal           string `json:"ph_solo_ideal,omitempty"`

	ClimaAtualTemperatura string `json:"clima_atual_temperatura,omitempty"`
	ClimaAtualCondicao    string `json:"clima_atual_condicao,omitempty"`
	ClimaAtualUmidade     string `json:"clima_atual_umidade,omitempty"`
	ClimaAtualVento       string `json:"clima_atual_vento,omitempty"`
}
