package domain

// Clima é o resumo de condições atuais servido pela API, com os numéricos
// já formatados com uma casa decimal e sufixo de unidade.
type Clima struct {
	TemperaturaC    string `json:"temperatura_c"`
	Condicao        string `json:"condicao"`
	Umidade         string `json:"umidade"`
	VelocidadeVento string `json:"velocidade_vento"`

	SensacaoTermicaC string `json:"sensacao_termica_c"`
	TempMinC         string `json:"temp_min_c"`
	TempMaxC         string `json:"temp_max_c"`
	PressaoHPA       string `json:"pressao_hpa"`
}
