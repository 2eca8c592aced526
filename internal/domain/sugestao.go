package domain

// RankedProduct é o esquema único de saída do ranqueamento. Todos os
// caminhos de chamada (oportunidade, lucratividade, preço) servem este
// mesmo formato.
type RankedProduct struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`

	// Score de oportunidade em [0, 100]; zero quando a ordenação em uso
	// não calcula score (listagem bruta de dados por produto).
	Score float64 `json:"score"`

	RendimentoNum    float64 `json:"rendimento_num"`
	ValorProducaoNum float64 `json:"valor_producao_num"`

	RendimentoDisplay    string `json:"rendimento_display"`
	ValorProducaoDisplay string `json:"valor_producao_display"`

	// Preenchido apenas na ordenação por preço unitário (R$/kg).
	PrecoPorQuilo float64 `json:"preco_por_quilo,omitempty"`
}

// ProdutoCidade identifica um produto com dado de produção registrado para
// uma cidade.
type ProdutoCidade struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}
