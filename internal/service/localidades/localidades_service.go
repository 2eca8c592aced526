// Package localidades resolve identificadores externos de cidade (IDs IBGE)
// para as chaves normalizadas usadas na junção dos datasets, e traduz chaves
// de produto de volta para nomes de exibição.
package localidades

import (
	"context"

	"github.com/Guisbeghendev/univespi4-v2/internal/clients/ibge"
	"github.com/Guisbeghendev/univespi4-v2/internal/domain"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/dataset"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/logger"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/textnorm"
)

// Lookup é a fatia do cliente IBGE que o serviço usa.
type Lookup interface {
	GetMunicipio(ctx context.Context, id string) (*ibge.Municipio, error)
	ListEstados(ctx context.Context) ([]domain.Localidade, error)
	ListMunicipios(ctx context.Context, estadoID string) ([]domain.Localidade, error)
}

// Fallback resolve um ID de cidade quando o IBGE está fora ou a resposta não
// pôde ser aproveitada. É um remendo estreito, não uma estratégia geral:
// chamadores precisam tolerar miss para qualquer cidade fora da tabela.
// TODO: substituir a tabela estática por um índice reverso construído a
// partir da própria coluna de cidades dos datasets.
type Fallback interface {
	Resolve(cityID string) (display, key string, ok bool)
}

// StaticFallback resolve a partir de uma tabela fixa ID → nome de exibição.
type StaticFallback struct {
	entries map[string]string
}

// NewStaticFallback monta o fallback a partir de um mapa de configuração.
// IDs passam pelo normalizador para aceitar variações como zeros à esquerda
// já cadastradas ("3506003" e "03506003").
func NewStaticFallback(entries map[string]string) *StaticFallback {
	normalized := make(map[string]string, len(entries))
	for id, display := range entries {
		normalized[textnorm.Normalize(id)] = display
	}
	return &StaticFallback{entries: normalized}
}

// DefaultFallback cobre as cidades de teste conhecidas.
func DefaultFallback() *StaticFallback {
	return NewStaticFallback(map[string]string{
		"3506003":  "Bauru (SP)",
		"03506003": "Bauru (SP)",
	})
}

func (f *StaticFallback) Resolve(cityID string) (string, string, bool) {
	display, ok := f.entries[textnorm.Normalize(cityID)]
	if !ok {
		return "", "", false
	}
	return display, textnorm.Normalize(display), true
}

type Service struct {
	lookup   Lookup
	fallback Fallback
	cache    *dataset.Cache
}

func NewService(lookup Lookup, fallback Fallback, cache *dataset.Cache) *Service {
	if fallback == nil {
		fallback = DefaultFallback()
	}
	return &Service{lookup: lookup, fallback: fallback, cache: cache}
}

// ResolveCity traduz um ID IBGE para (nome de exibição, chave normalizada).
// Caminho primário é o IBGE; em falha, a tabela de fallback. Miss nos dois
// caminhos devolve strings vazias — ausência é dado, não erro.
func (s *Service) ResolveCity(ctx context.Context, cityID string) (display, key string) {
	if cityID == "" {
		return "", ""
	}

	m, err := s.lookup.GetMunicipio(ctx, cityID)
	if err == nil && m.Nome != "" {
		display = m.Nome
		if m.UF != "" {
			display = m.Nome + " (" + m.UF + ")"
		}
		return display, textnorm.Normalize(m.Nome)
	}
	if err != nil {
		logger.Warnf(ctx, "ibge indisponível para cidade %s, tentando fallback: %s", cityID, err.Error())
	}

	if display, key, ok := s.fallback.Resolve(cityID); ok {
		return display, key
	}
	return "", ""
}

// ResolveProductDisplayName varre os mapas de cabeçalho carregados atrás da
// chave normalizada e devolve o primeiro nome de exibição encontrado, já com
// o reparo de dupla codificação aplicado quando possível.
func (s *Service) ResolveProductDisplayName(productKey string) (string, bool) {
	normalized := textnorm.Normalize(productKey)
	if normalized == "" {
		return "", false
	}

	// Ordem fixa dos datasets para um "primeiro match" determinístico.
	for _, cfg := range dataset.CSVConfigs {
		table, ok := s.cache.Table(cfg.Key)
		if !ok {
			continue
		}
		if original, ok := table.HeaderMap[normalized]; ok {
			return textnorm.TitleCase(textnorm.RepairMojibake(original)), true
		}
	}
	return "", false
}

// ListEstados repassa a lista de estados do IBGE.
func (s *Service) ListEstados(ctx context.Context) ([]domain.Localidade, error) {
	return s.lookup.ListEstados(ctx)
}

// ListMunicipios repassa a lista de municípios de um estado.
func (s *Service) ListMunicipios(ctx context.Context, estadoID string) ([]domain.Localidade, error) {
	return s.lookup.ListMunicipios(ctx, estadoID)
}
