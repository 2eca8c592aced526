package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Guisbeghendev/univespi4-v2/internal/service/sugestao"
)

type sugestoesQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=20"`
}

// GetSugestoes serve o ranking de oportunidade da cidade.
func (c *Controller) GetSugestoes(ctx echo.Context) error {
	var q sugestoesQuery
	if err := ctx.Bind(&q); err != nil {
		return err
	}
	if err := ctx.Validate(&q); err != nil {
		return err
	}
	if q.Limit == 0 {
		q.Limit = sugestao.DefaultTopN
	}

	ranking, err := c.sugestao.RankProductsForCity(ctx.Request().Context(), ctx.Param("cidade_id"), q.Limit)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ranking)
}

// GetSugestoesLucratividade ordena pelo valor total de produção.
func (c *Controller) GetSugestoesLucratividade(ctx echo.Context) error {
	ranking, err := c.sugestao.RankByLucratividade(ctx.Request().Context(), ctx.Param("cidade_id"), sugestao.DefaultTopN)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ranking)
}

// GetSugestoesPreco ordena pelo preço unitário (R$/kg) crescente.
func (c *Controller) GetSugestoesPreco(ctx echo.Context) error {
	ranking, err := c.sugestao.RankByPreco(ctx.Request().Context(), ctx.Param("cidade_id"), sugestao.DefaultTopN)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ranking)
}

// GetProdutos lista os produtos com produção registrada na cidade.
func (c *Controller) GetProdutos(ctx echo.Context) error {
	produtos, err := c.sugestao.ListProductsForCity(ctx.Request().Context(), ctx.Param("cidade_id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, produtos)
}
