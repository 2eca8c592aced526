package api

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
)

// Binder liga path e query params pelo binder padrão do echo e decodifica
// corpos JSON com sonic.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.fallback.BindPathParams(c, i); err != nil {
		return fmt.Errorf("path params: %s: %w", err.Error(), constants.ErrBadRequest)
	}
	if err := b.fallback.BindQueryParams(c, i); err != nil {
		return fmt.Errorf("query params: %s: %w", err.Error(), constants.ErrBadRequest)
	}

	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		if err := b.fallback.BindBody(c, i); err != nil {
			return fmt.Errorf("body: %s: %w", err.Error(), constants.ErrBadRequest)
		}
		return nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := sonic.Unmarshal(body, i); err != nil {
		return fmt.Errorf("json body: %s: %w", err.Error(), constants.ErrBadRequest)
	}
	return nil
}
