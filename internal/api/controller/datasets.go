package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
)

// ReloadDatasets força a recarga do cache de datasets a partir do disco.
func (c *Controller) ReloadDatasets(ctx echo.Context) error {
	status, err := c.cache.Reload(ctx.Request().Context())
	if err != nil {
		return fmt.Errorf("%s: %w", status, constants.ErrDatasetsNotLoaded)
	}
	return ctx.JSON(http.StatusOK, map[string]string{"status": status})
}
