package domain

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Localidade é uma entrada de estado ou município do IBGE, na forma reduzida
// consumida pelos selects do front.
type Localidade struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}
