package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
)

// GetClima consulta o clima atual de uma cidade pelo nome.
func (c *Controller) GetClima(ctx echo.Context) error {
	cidade := ctx.QueryParam("cidade")
	if cidade == "" {
		return fmt.Errorf("parâmetro cidade obrigatório: %w", constants.ErrBadRequest)
	}

	clima, err := c.clima.Current(ctx.Request().Context(), cidade)
	if err != nil {
		return fmt.Errorf("clima de %q: %s: %w", cidade, err.Error(), constants.ErrUpstream)
	}
	return ctx.JSON(http.StatusOK, clima)
}
