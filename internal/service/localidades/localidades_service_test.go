package localidades

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Guisbeghendev/univespi4-v2/internal/clients/ibge"
	"github.com/Guisbeghendev/univespi4-v2/internal/domain"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/dataset"
)

type fakeLookup struct {
	municipio *ibge.Municipio
	err       error
}

func (f *fakeLookup) GetMunicipio(context.Context, string) (*ibge.Municipio, error) {
	return f.municipio, f.err
}

func (f *fakeLookup) ListEstados(context.Context) ([]domain.Localidade, error) {
	return nil, f.err
}

func (f *fakeLookup) ListMunicipios(context.Context, string) ([]domain.Localidade, error) {
	return nil, f.err
}

// newTestCache monta um cache carregado cujo dataset de quantidade tem uma
// coluna com nome corrompido por dupla codificação ("Algodão" lido como
// Latin-1).
func newTestCache(t *testing.T) *dataset.Cache {
	t.Helper()
	dir := t.TempDir()

	header := "Município;Ano;Soja (em grão);AlgodÃ£o herbÃ¡ceo"
	body := "t1\nt2\nt3\nt4\n" + header + "\nBauru (SP);2023;100;50\n"
	for _, cfg := range dataset.CSVConfigs {
		if err := os.WriteFile(filepath.Join(dir, cfg.File), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	for _, cfg := range dataset.JSONConfigs {
		if err := os.WriteFile(filepath.Join(dir, cfg.File), []byte("[]"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cache := dataset.NewCache(dir)
	if _, err := cache.Load(context.Background()); err != nil {
		t.Fatalf("cache load: %v", err)
	}
	return cache
}

func TestResolveCityPrimaryPath(t *testing.T) {
	svc := NewService(&fakeLookup{municipio: &ibge.Municipio{Nome: "Bauru", UF: "SP"}}, nil, newTestCache(t))

	display, key := svc.ResolveCity(context.Background(), "3506003")
	if display != "Bauru (SP)" || key != "BAURU" {
		t.Fatalf("got (%q, %q), want (Bauru (SP), BAURU)", display, key)
	}
}

func TestResolveCityFallback(t *testing.T) {
	svc := NewService(&fakeLookup{err: errors.New("ibge fora do ar")}, nil, newTestCache(t))

	display, key := svc.ResolveCity(context.Background(), "3506003")
	if display != "Bauru (SP)" || key != "BAURU" {
		t.Fatalf("fallback got (%q, %q)", display, key)
	}

	// Variação com zero à esquerda cadastrada na tabela padrão.
	if _, key := svc.ResolveCity(context.Background(), "03506003"); key != "BAURU" {
		t.Fatalf("leading-zero id got key %q", key)
	}
}

func TestResolveCityMiss(t *testing.T) {
	svc := NewService(&fakeLookup{err: errors.New("ibge fora do ar")}, nil, newTestCache(t))

	display, key := svc.ResolveCity(context.Background(), "99999999")
	if display != "" || key != "" {
		t.Fatalf("unresolved city should miss, got (%q, %q)", display, key)
	}
}

func TestResolveCityInjectedFallback(t *testing.T) {
	fb := NewStaticFallback(map[string]string{"1234567": "Pederneiras (SP)"})
	svc := NewService(&fakeLookup{err: errors.New("fora")}, fb, newTestCache(t))

	display, key := svc.ResolveCity(context.Background(), "1234567")
	if display != "Pederneiras (SP)" || key != "PEDERNEIRAS" {
		t.Fatalf("got (%q, %q)", display, key)
	}
}

func TestResolveProductDisplayNameRepairsEncoding(t *testing.T) {
	svc := NewService(&fakeLookup{}, nil, newTestCache(t))

	nome, ok := svc.ResolveProductDisplayName("ALGODAO HERBACEO")
	if !ok {
		t.Fatal("product not found")
	}
	if nome != "Algodão Herbáceo" {
		t.Fatalf("display name = %q, want repaired accented form", nome)
	}
}

func TestResolveProductDisplayNameCleanAndMiss(t *testing.T) {
	svc := NewService(&fakeLookup{}, nil, newTestCache(t))

	nome, ok := svc.ResolveProductDisplayName("soja")
	if !ok || nome != "Soja (Em Grão)" {
		t.Fatalf("got (%q, %v), want (Soja (Em Grão), true)", nome, ok)
	}
	if _, ok := svc.ResolveProductDisplayName("INEXISTENTE"); ok {
		t.Fatal("unexpected match for unknown product")
	}
}
