package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/textnorm"
)

// GetFichaCompleta serve a ficha técnica achatada, com clima atual.
func (c *Controller) GetFichaCompleta(ctx echo.Context) error {
	produto := c.productDisplayName(ctx.Param("produto"))
	cidadeID := ctx.Param("cidade_id")

	completa, err := c.ficha.GetFichaCompleta(ctx.Request().Context(), produto, cidadeID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, completa)
}

// GetFichaBase serve a ficha consolidada sem os dados de clima.
func (c *Controller) GetFichaBase(ctx echo.Context) error {
	produto := ctx.Param("produto")
	cidadeID := ctx.Param("cidade_id")

	reqCtx := ctx.Request().Context()
	_, cityKey := c.localidades.ResolveCity(reqCtx, cidadeID)
	if cityKey == "" {
		return fmt.Errorf("cidade %s: %w", cidadeID, constants.ErrCityNotResolved)
	}

	sheet, err := c.ficha.GenerateSheet(reqCtx, textnorm.Normalize(produto), cityKey)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sheet)
}

// productDisplayName aceita tanto o id normalizado (ex.: "SOJA", como vem da
// lista de produtos) quanto o nome de exibição. Ids são convertidos de volta
// ao nome original dos datasets; nomes passam direto.
func (c *Controller) productDisplayName(produto string) string {
	if textnorm.Normalize(produto) != produto {
		return produto
	}
	if nome, ok := c.localidades.ResolveProductDisplayName(produto); ok {
		return nome
	}
	return produto
}
