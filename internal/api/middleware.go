package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/logger"
)

// requestID propaga o X-Request-ID do chamador ou gera um novo.
func requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Response().Header().Set(echo.HeaderXRequestID, id)
		return next(ctx)
	}
}

// requestLogger registra método, rota, status e duração de cada requisição.
func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		err := next(ctx)
		if err != nil {
			// Entrega ao error handler antes de ler o status final; o
			// handler ignora a segunda chamada por Committed.
			ctx.Error(err)
		}

		req := ctx.Request()
		logger.Infof(req.Context(), "%s %s -> %d em %s id=%s",
			req.Method,
			req.URL.Path,
			ctx.Response().Status,
			time.Since(start),
			ctx.Response().Header().Get(echo.HeaderXRequestID),
		)
		return err
	}
}
