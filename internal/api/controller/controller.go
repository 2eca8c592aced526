package controller

import (
	"github.com/Guisbeghendev/univespi4-v2/internal/clients/clima"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/dataset"
	"github.com/Guisbeghendev/univespi4-v2/internal/service/ficha"
	"github.com/Guisbeghendev/univespi4-v2/internal/service/localidades"
	"github.com/Guisbeghendev/univespi4-v2/internal/service/sugestao"
)

type Controller struct {
	cache       *dataset.Cache
	ficha       *ficha.Service
	sugestao    *sugestao.Service
	localidades *localidades.Service
	clima       *clima.Client
}

func NewController(
	cache *dataset.Cache,
	fichaSvc *ficha.Service,
	sugestaoSvc *sugestao.Service,
	localidadesSvc *localidades.Service,
	climaClient *clima.Client,
) *Controller {
	return &Controller{
		cache:       cache,
		ficha:       fichaSvc,
		sugestao:    sugestaoSvc,
		localidades: localidadesSvc,
		clima:       climaClient,
	}
}
