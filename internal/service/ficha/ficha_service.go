// Package ficha monta a Ficha Técnica consolidada de um par produto/cidade a
// partir do cache de datasets, e a versão completa enriquecida com o clima
// atual.
package ficha

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Guisbeghendev/univespi4-v2/internal/domain"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/brnum"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/dataset"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/logger"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/textnorm"
)

// Marcadores distintos de ausência: valor sentinela no dataset versus cidade
// sem linha registrada. Os dois são dado, não erro.
const (
	MarkUnavailable = "Dado não disponível"
	MarkCityMissing = "Cidade não possui dados cadastrados"

	placeholder = "N/A"
)

// Valores fixos de demonstração para campos que os datasets não cobrem.
const (
	demoFertilizante   = "Fosfato e Potássio (Base)"
	demoSustentabilid  = "Média/Alta"
	demoAltitude       = "450"
	demoNecessidadeHid = "700-1100"
	demoCondColheita   = "Clima Seco e Estável"
	demoPragas         = "Baixa (Monitoramento Semanal)"
	demoAnosEstudo     = "2019-2023"
)

// CityResolver é a fatia do serviço de localidades usada aqui.
type CityResolver interface {
	ResolveCity(ctx context.Context, cityID string) (display, key string)
}

// WeatherProvider é a fatia do cliente de clima usada aqui.
type WeatherProvider interface {
	Current(ctx context.Context, cityName string) (*domain.Clima, error)
}

type Service struct {
	cache    *dataset.Cache
	resolver CityResolver
	weather  WeatherProvider
}

func NewService(cache *dataset.Cache, resolver CityResolver, weather WeatherProvider) *Service {
	return &Service{cache: cache, resolver: resolver, weather: weather}
}

// GenerateSheet monta a ficha de um produto/cidade (chaves normalizadas). O
// cache é populado na primeira chamada; falha de carga volta como erro
// explícito, nunca como pânico.
func (s *Service) GenerateSheet(ctx context.Context, produtoKey, cidadeKey string) (*domain.FichaTecnica, error) {
	if status, err := s.cache.Load(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", status, constants.ErrDatasetsNotLoaded)
	}

	quantitativos := make(map[string]string, len(dataset.CSVConfigs))
	for _, cfg := range dataset.CSVConfigs {
		table, ok := s.cache.Table(cfg.Key)
		if !ok {
			quantitativos[cfg.Key] = MarkUnavailable
			continue
		}
		raw, cityOK := table.Value(cidadeKey, produtoKey)
		switch {
		case !cityOK:
			quantitativos[cfg.Key] = MarkCityMissing
		case raw == "" || brnum.IsUnavailable(raw):
			quantitativos[cfg.Key] = MarkUnavailable
		default:
			quantitativos[cfg.Key] = brnum.StripThousands(raw) + " " + cfg.Unit
		}
	}

	cotacao := s.cache.Ref(dataset.RefCotacao)[produtoKey]
	base := s.cache.Ref(dataset.RefFichaBase)[produtoKey]
	sazonalidade := s.cache.Ref(dataset.RefSazonalidade)[produtoKey]

	return &domain.FichaTecnica{
		Quantitativos: quantitativos,
		Cotacao:       mapField(cotacao, "precos_2025_rs"),
		PMA2024RS:     stringField(cotacao, "pma_2024_rs"),
		FichaBase: domain.FichaBase{
			Ciclo:               stringField(base, "ciclo"),
			TemperaturaC:        stringField(base, "temperatura_c"),
			TipoSolo:            stringField(base, "tipo_solo"),
			PHIdealH2O:          stringField(base, "ph_ideal_h2o"),
			PrecipitacaoAnualMM: stringField(base, "precipitacao_anual_mm"),
		},
		Sazonalidade: domain.Sazonalidade{
			Plantio:  stringField(sazonalidade, "plantio"),
			Colheita: stringField(sazonalidade, "colheita"),
		},
	}, nil
}

// GetFichaCompleta resolve a cidade, gera a ficha e anexa o clima atual,
// achatando tudo no formato final servido ao front.
func (s *Service) GetFichaCompleta(ctx context.Context, produtoDisplay, cidadeID string) (*domain.FichaCompleta, error) {
	cityDisplay, cityKey := s.resolver.ResolveCity(ctx, cidadeID)
	if cityKey == "" {
		return nil, fmt.Errorf("cidade %s: %w", cidadeID, constants.ErrCityNotResolved)
	}

	sheet, err := s.GenerateSheet(ctx, textnorm.Normalize(produtoDisplay), cityKey)
	if err != nil {
		return nil, fmt.Errorf("ficha de %q: %w", produtoDisplay, err)
	}

	clima := s.currentWeather(ctx, cityDisplay)

	return &domain.FichaCompleta{
		Produto:  produtoDisplay,
		CityName: cityDisplay,

		TipoSolo:               sheet.FichaBase.TipoSolo,
		CicloVidaDias:          sheet.FichaBase.Ciclo,
		FertilizanteEssencial:  demoFertilizante,
		StatusSustentabilidade: demoSustentabilid,

		TemperaturaIdealC:      sheet.FichaBase.TemperaturaC,
		PrecipitacaoMinMM:      sheet.FichaBase.PrecipitacaoAnualMM,
		PeriodoPlantioSugerido: sheet.Sazonalidade.Plantio,
		AltitudeMediaM:         demoAltitude,

		ProdutividadeMediaKgHa:    sheet.Quantitativos[dataset.KeyRendimento],
		NecessidadeHidricaTotalMM: demoNecessidadeHid,
		TempoColheitaMeses:        sheet.Sazonalidade.Colheita,
		CondicaoIdealColheita:     demoCondColheita,

		VulnerabilidadePragas: demoPragas,
		AnosEstudoLocalIBGE:   demoAnosEstudo,
		CotacaoPMARS:          sheet.PMA2024RS,
		PHSoloIdeal:           sheet.FichaBase.PHIdealH2O,

		ClimaAtualTemperatura: climaField(clima, func(c *domain.Clima) string { return c.TemperaturaC }),
		ClimaAtualCondicao:    climaField(clima, func(c *domain.Clima) string { return c.Condicao }),
		ClimaAtualUmidade:     climaField(clima, func(c *domain.Clima) string { return c.Umidade }),
		ClimaAtualVento:       climaField(clima, func(c *domain.Clima) string { return c.VelocidadeVento }),
	}, nil
}

// currentWeather busca o clima com o nome sem sufixo de UF; falha degrada
// para nil e os campos de clima saem com placeholder.
func (s *Service) currentWeather(ctx context.Context, cityDisplay string) *domain.Clima {
	clima, err := s.weather.Current(ctx, textnorm.StripParenthetical(cityDisplay))
	if err != nil {
		logger.Warnf(ctx, "clima indisponível para %q: %s", cityDisplay, err.Error())
		return nil
	}
	return clima
}

func climaField(clima *domain.Clima, pick func(*domain.Clima) string) string {
	if clima == nil {
		return placeholder
	}
	if v := pick(clima); v != "" {
		return v
	}
	return placeholder
}

// stringField extrai um campo textual de um registro semiestruturado,
// formatando números quando o JSON de origem não padroniza o tipo.
func stringField(rec domain.RefRecord, key string) string {
	if rec == nil {
		return placeholder
	}
	switch v := rec[key].(type) {
	case string:
		if v == "" {
			return placeholder
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return placeholder
	}
}

func mapField(rec domain.RefRecord, key string) map[string]interface{} {
	if rec != nil {
		if m, ok := rec[key].(map[string]interface{}); ok {
			return m
		}
	}
	return map[string]interface{}{}
}
