package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Guisbeghendev/univespi4-v2/internal/domain"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
)

// httpErrorHandler converte a cadeia de erros em uma resposta JSON única. O
// código vem do primeiro CodedError da cadeia; erros de roteamento do próprio
// echo mantêm o código deles; o resto vira 500.
func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	var coded *constants.CodedError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &coded):
		code = coded.Code()
	case errors.As(err, &httpErr):
		code = httpErr.Code
		msg = fmt.Sprintf("%v", httpErr.Message)
	}

	if c.Response().Committed {
		return
	}
	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
