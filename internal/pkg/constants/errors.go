package constants

import "net/http"

// CodedError é um erro com código HTTP associado. O error handler central da
// API percorre a cadeia de Unwrap procurando por um *CodedError para decidir
// o status da resposta.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrBadRequest         = NewCodedError(http.StatusBadRequest, "parâmetros inválidos")
	ErrNotFound           = NewCodedError(http.StatusNotFound, "dados não encontrados")
	ErrUpstream           = NewCodedError(http.StatusBadGateway, "serviço externo indisponível")
	ErrDatasetsNotLoaded  = NewCodedError(http.StatusServiceUnavailable, "datasets não carregados")
	ErrCityNotResolved    = NewCodedError(http.StatusNotFound, "cidade não encontrada")
	ErrProductNotResolved = NewCodedError(http.StatusNotFound, "produto não encontrado")
)
