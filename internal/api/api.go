package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/Guisbeghendev/univespi4-v2/internal/api/controller"
	"github.com/Guisbeghendev/univespi4-v2/internal/clients/clima"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/dataset"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/logger"
	"github.com/Guisbeghendev/univespi4-v2/internal/service/ficha"
	"github.com/Guisbeghendev/univespi4-v2/internal/service/localidades"
	"github.com/Guisbeghendev/univespi4-v2/internal/service/sugestao"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(
	cache *dataset.Cache,
	fichaSvc *ficha.Service,
	sugestaoSvc *sugestao.Service,
	localidadesSvc *localidades.Service,
	climaClient *clima.Client,
) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(requestID, requestLogger)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOrigins),
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(cache, fichaSvc, sugestaoSvc, localidadesSvc, climaClient)

	fichas := api.Group("/fichas")
	fichas.GET("/:produto/cidades/:cidade_id", cntrl.GetFichaCompleta)
	fichas.GET("/:produto/cidades/:cidade_id/base", cntrl.GetFichaBase)

	cidades := api.Group("/cidades")
	cidades.GET("/:cidade_id/produtos", cntrl.GetProdutos)
	cidades.GET("/:cidade_id/sugestoes", cntrl.GetSugestoes)
	cidades.GET("/:cidade_id/sugestoes/lucratividade", cntrl.GetSugestoesLucratividade)
	cidades.GET("/:cidade_id/sugestoes/preco", cntrl.GetSugestoesPreco)

	api.GET("/clima", cntrl.GetClima)

	loc := api.Group("/localidades")
	loc.GET("/estados", cntrl.GetEstados)
	loc.GET("/estados/:id/municipios", cntrl.GetMunicipios)

	api.POST("/datasets/reload", cntrl.ReloadDatasets)

	return svc, nil
}
