package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
)

// GetEstados repassa a lista de estados do IBGE.
func (c *Controller) GetEstados(ctx echo.Context) error {
	estados, err := c.localidades.ListEstados(ctx.Request().Context())
	if err != nil {
		return fmt.Errorf("estados: %s: %w", err.Error(), constants.ErrUpstream)
	}
	return ctx.JSON(http.StatusOK, estados)
}

// GetMunicipios repassa os municípios de um estado do IBGE.
func (c *Controller) GetMunicipios(ctx echo.Context) error {
	estadoID := ctx.Param("id")
	municipios, err := c.localidades.ListMunicipios(ctx.Request().Context(), estadoID)
	if err != nil {
		return fmt.Errorf("municípios de %s: %s: %w", estadoID, err.Error(), constants.ErrUpstream)
	}
	return ctx.JSON(http.StatusOK, municipios)
}
