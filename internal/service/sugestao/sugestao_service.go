// Package sugestao calcula os ranqueamentos de cultivo de uma cidade sobre os
// datasets históricos: score de oportunidade, lucratividade e preço unitário.
// Todos os caminhos compartilham o mesmo conjunto de candidatos e o mesmo
// esquema de saída.
package sugestao

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Guisbeghendev/univespi4-v2/internal/domain"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/brnum"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/dataset"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/textnorm"
)

const (
	// DefaultTopN é o tamanho padrão das listas de sugestão.
	DefaultTopN = 5
	// MaxTopN limita o que um chamador pode pedir de uma vez.
	MaxTopN = 20

	markUnavailable = "Dado não disponível"
)

// CityResolver é a fatia do serviço de localidades usada aqui.
type CityResolver interface {
	ResolveCity(ctx context.Context, cityID string) (display, key string)
}

type Service struct {
	cache    *dataset.Cache
	resolver CityResolver
}

func NewService(cache *dataset.Cache, resolver CityResolver) *Service {
	return &Service{cache: cache, resolver: resolver}
}

// ProductDataForCity retorna o registro numérico e de exibição de cada
// produto com algum dado de rendimento ou valor para a cidade, em ordem
// estável de chave.
func (s *Service) ProductDataForCity(ctx context.Context, cidadeID string) ([]domain.RankedProduct, error) {
	return s.candidates(ctx, cidadeID)
}

// RankProductsForCity ordena os produtos da cidade pelo score de
// oportunidade: média entre rendimento e valor de produção, cada um
// normalizado pelo máximo local da própria cidade. Só entram produtos com as
// duas métricas positivas.
func (s *Service) RankProductsForCity(ctx context.Context, cidadeID string, topN int) ([]domain.RankedProduct, error) {
	cands, err := s.positiveCandidates(ctx, cidadeID)
	if err != nil {
		return nil, err
	}

	var maxRend, maxValor float64
	for _, c := range cands {
		maxRend = math.Max(maxRend, c.RendimentoNum)
		maxValor = math.Max(maxValor, c.ValorProducaoNum)
	}
	if maxRend == 0 || maxValor == 0 {
		return []domain.RankedProduct{}, nil
	}

	for i := range cands {
		score := (cands[i].RendimentoNum/maxRend)*50 + (cands[i].ValorProducaoNum/maxValor)*50
		cands[i].Score = math.Round(score*100) / 100
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		if cands[i].RendimentoNum != cands[j].RendimentoNum {
			return cands[i].RendimentoNum > cands[j].RendimentoNum
		}
		return cands[i].ID < cands[j].ID
	})
	return truncate(cands, topN), nil
}

// RankByLucratividade ordena pelo valor total de produção, do maior para o
// menor.
func (s *Service) RankByLucratividade(ctx context.Context, cidadeID string, topN int) ([]domain.RankedProduct, error) {
	cands, err := s.positiveCandidates(ctx, cidadeID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].ValorProducaoNum != cands[j].ValorProducaoNum {
			return cands[i].ValorProducaoNum > cands[j].ValorProducaoNum
		}
		return cands[i].ID < cands[j].ID
	})
	return truncate(cands, topN), nil
}

// RankByPreco ordena pelo preço unitário (valor de produção dividido pelo
// rendimento), do menor para o maior.
func (s *Service) RankByPreco(ctx context.Context, cidadeID string, topN int) ([]domain.RankedProduct, error) {
	cands, err := s.positiveCandidates(ctx, cidadeID)
	if err != nil {
		return nil, err
	}
	for i := range cands {
		valor := decimal.NewFromFloat(cands[i].ValorProducaoNum)
		rendimento := decimal.NewFromFloat(cands[i].RendimentoNum)
		cands[i].PrecoPorQuilo = valor.Div(rendimento).InexactFloat64()
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].PrecoPorQuilo != cands[j].PrecoPorQuilo {
			return cands[i].PrecoPorQuilo < cands[j].PrecoPorQuilo
		}
		return cands[i].ID < cands[j].ID
	})
	return truncate(cands, topN), nil
}

// ListProductsForCity lista os produtos com "Quantidade produzida" disponível
// para a cidade, com o nome de exibição reparado.
func (s *Service) ListProductsForCity(ctx context.Context, cidadeID string) ([]domain.ProdutoCidade, error) {
	cityKey, err := s.resolveLoaded(ctx, cidadeID)
	if err != nil {
		return nil, err
	}

	table, ok := s.cache.Table(dataset.KeyQuantidade)
	if !ok {
		return []domain.ProdutoCidade{}, nil
	}
	if _, ok := table.Row(cityKey); !ok {
		return []domain.ProdutoCidade{}, nil
	}

	keys := table.ProductKeys()
	sort.Strings(keys)

	produtos := make([]domain.ProdutoCidade, 0, len(keys))
	for _, key := range keys {
		raw, _ := table.Value(cityKey, key)
		if raw == "" || brnum.IsUnavailable(raw) {
			continue
		}
		produtos = append(produtos, domain.ProdutoCidade{
			ID:   key,
			Nome: displayName(table.HeaderMap[key]),
		})
	}
	return produtos, nil
}

// candidates monta o conjunto compartilhado: um registro por produto da
// tabela de rendimento, com sentinela valendo zero no campo numérico e o
// marcador original no campo de exibição.
func (s *Service) candidates(ctx context.Context, cidadeID string) ([]domain.RankedProduct, error) {
	cityKey, err := s.resolveLoaded(ctx, cidadeID)
	if err != nil {
		return nil, err
	}

	rendTable, okR := s.cache.Table(dataset.KeyRendimento)
	valorTable, okV := s.cache.Table(dataset.KeyValor)
	if !okR || !okV {
		return []domain.RankedProduct{}, nil
	}
	if _, ok := rendTable.Row(cityKey); !ok {
		return []domain.RankedProduct{}, nil
	}

	keys := rendTable.ProductKeys()
	sort.Strings(keys)

	cands := make([]domain.RankedProduct, 0, len(keys))
	for _, key := range keys {
		rendRaw, _ := rendTable.Value(cityKey, key)
		valorRaw, _ := valorTable.Value(cityKey, key)

		rendimento, rendOK := brnum.ParseFloat(rendRaw)
		valor, valorOK := brnum.ParseFloat(valorRaw)
		if !rendOK && !valorOK {
			continue
		}

		cands = append(cands, domain.RankedProduct{
			ID:                   key,
			Nome:                 displayName(rendTable.HeaderMap[key]),
			RendimentoNum:        rendimento,
			ValorProducaoNum:     valor,
			RendimentoDisplay:    numericDisplay(rendRaw, rendOK, "%s Kg/Ha"),
			ValorProducaoDisplay: numericDisplay(valorRaw, valorOK, "R$ %s"),
		})
	}
	return cands, nil
}

func (s *Service) positiveCandidates(ctx context.Context, cidadeID string) ([]domain.RankedProduct, error) {
	cands, err := s.candidates(ctx, cidadeID)
	if err != nil {
		return nil, err
	}
	kept := cands[:0]
	for _, c := range cands {
		if c.RendimentoNum > 0 && c.ValorProducaoNum > 0 {
			kept = append(kept, c)
		}
	}
	return kept, nil
}

// resolveLoaded garante cache carregado e cidade resolvida; os ranqueamentos
// não funcionam sem as duas coisas.
func (s *Service) resolveLoaded(ctx context.Context, cidadeID string) (string, error) {
	if status, err := s.cache.Load(ctx); err != nil {
		return "", fmt.Errorf("%s: %w", status, constants.ErrDatasetsNotLoaded)
	}
	_, cityKey := s.resolver.ResolveCity(ctx, cidadeID)
	if cityKey == "" {
		return "", fmt.Errorf("cidade %s: %w", cidadeID, constants.ErrCityNotResolved)
	}
	return cityKey, nil
}

func displayName(original string) string {
	return textnorm.TitleCase(textnorm.RepairMojibake(original))
}

func numericDisplay(raw string, ok bool, format string) string {
	if !ok {
		return markUnavailable
	}
	d, _ := brnum.Parse(raw)
	return fmt.Sprintf(format, d.String())
}

func truncate(cands []domain.RankedProduct, topN int) []domain.RankedProduct {
	switch {
	case topN <= 0:
		topN = DefaultTopN
	case topN > MaxTopN:
		topN = MaxTopN
	}
	if len(cands) > topN {
		cands = cands[:topN]
	}
	return cands
}
