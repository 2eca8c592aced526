package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/brnum"
)

const csvPreamble = "Tabela - Produção Agrícola Municipal\n\"Extraído em 2024\"\n\nLavouras temporárias e permanentes\n"

// writeCSV grava um extrato sintético com o cabeçalho na linha de índice 4.
func writeCSV(t *testing.T, dir, file, header string, rows ...string) {
	t.Helper()
	content := csvPreamble + header + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
		t.Fatalf("writeCSV %s: %v", file, err)
	}
}

// writeFixtures monta um diretório de dados completo: cinco CSVs e três
// JSONs, com BAURU e MARILIA como cidades.
func writeFixtures(t *testing.T, dir string) {
	t.Helper()
	header := "Município;Ano;Soja (em grão);Milho (em grão)"
	for _, cfg := range CSVConfigs {
		switch cfg.Key {
		case KeyRendimento:
			writeCSV(t, dir, cfg.File, header,
				"Bauru (SP);2023;1.234;2.000",
				"Marília (SP);2023;-;...")
		case KeyValor:
			writeCSV(t, dir, cfg.File, header,
				"Bauru (SP);2023;500;800",
				"Marília (SP);2023;-;-")
		default:
			writeCSV(t, dir, cfg.File, header,
				"Bauru (SP);2023;100;200",
				"Marília (SP);2023;Dado não disponível;300")
		}
	}

	refs := map[string]string{
		"cotacao_media.json":  `[{"produto": "Soja", "pma_2024_rs": "120,50", "precos_2025_rs": {"jan": "118,00"}}]`,
		"ficha_producao.json": `[{"cultura_produto": "Soja", "ciclo": "100-130 dias", "temperatura_c": "20-30", "tipo_solo": "Latossolo", "ph_ideal_h2o": "5,5-6,5", "precipitacao_anual_mm": "700-1200"}]`,
		"sazonalidade.json":   `[{"produto": "Soja", "plantio": "Set-Dez", "colheita": "Jan-Mar"}]`,
	}
	for file, body := range refs {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", file, err)
		}
	}
}

func TestCacheLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	cache := NewCache(dir)
	status, err := cache.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if status != StatusOK {
		t.Fatalf("status = %q, want %q", status, StatusOK)
	}
	if !cache.IsLoaded() {
		t.Fatal("IsLoaded = false after successful Load")
	}

	table, ok := cache.Table(KeyRendimento)
	if !ok {
		t.Fatal("rendimento table missing")
	}
	raw, ok := table.Value("BAURU", "SOJA")
	if !ok {
		t.Fatal("BAURU row missing")
	}
	got, ok := brnum.ParseFloat(raw)
	if !ok || got != 1234 {
		t.Fatalf("rendimento BAURU/SOJA = (%v, %v), want (1234, true)", got, ok)
	}

	// Chaves das colunas e do header map coincidem.
	for _, key := range table.ProductKeys() {
		if _, ok := table.HeaderMap[key]; !ok {
			t.Fatalf("column %q absent from header map", key)
		}
	}

	// Referências JSON reindexadas pela chave normalizada.
	if _, ok := cache.Ref(RefCotacao)["SOJA"]; !ok {
		t.Fatal("cotacao ref missing SOJA key")
	}
}

func TestCacheLoadMissingCSVAborts(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	if err := os.Remove(filepath.Join(dir, CSVConfigs[2].File)); err != nil {
		t.Fatal(err)
	}

	cache := NewCache(dir)
	status, err := cache.Load(context.Background())
	if err == nil {
		t.Fatal("Load succeeded with a missing CSV")
	}
	if cache.IsLoaded() {
		t.Fatal("half-populated cache promoted to loaded")
	}
	if !strings.Contains(status, CSVConfigs[2].Key) {
		t.Fatalf("status %q does not name the failing dataset", status)
	}
}

func TestCacheJSONSoftFail(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "sazonalidade.json"), []byte("{corrompido"), 0o644); err != nil {
		t.Fatal(err)
	}

	cache := NewCache(dir)
	if _, err := cache.Load(context.Background()); err != nil {
		t.Fatalf("Load failed on a corrupt reference JSON: %v", err)
	}
	if got := cache.Ref(RefSazonalidade); len(got) != 0 {
		t.Fatalf("corrupt reference should degrade to empty, got %d entries", len(got))
	}
	if len(cache.Ref(RefCotacao)) == 0 {
		t.Fatal("independent reference was lost")
	}
}

func TestCacheFirstCallWins(t *testing.T) {
	dir := t.TempDir()
	writeFixtures(t, dir)

	cache := NewCache(dir)
	if _, err := cache.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Reescreve o arquivo: Load não deve enxergar, Reload deve.
	cfg := CSVConfigs[1]
	writeCSV(t, dir, cfg.File, "Município;Ano;Soja (em grão);Milho (em grão)",
		"Bauru (SP);2023;9.999;2.000")

	if _, err := cache.Load(context.Background()); err != nil {
		t.Fatalf("re-Load: %v", err)
	}
	table, _ := cache.Table(KeyRendimento)
	if raw, _ := table.Value("BAURU", "SOJA"); raw != "1.234" {
		t.Fatalf("Load refreshed a populated cache: got %q", raw)
	}

	if _, err := cache.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	table, _ = cache.Table(KeyRendimento)
	if raw, _ := table.Value("BAURU", "SOJA"); raw != "9.999" {
		t.Fatalf("Reload did not refresh: got %q", raw)
	}
}

func TestLoadCSVLatin1Fallback(t *testing.T) {
	dir := t.TempDir()
	// "Feijão (em grão)" com ã em Latin-1 (0xE3), inválido como UTF-8.
	content := csvPreamble + "Munic\xedpio;Ano;Feij\xe3o (em gr\xe3o)\nMar\xedlia (SP);2023;42\n"
	cfg := CSVConfig{Key: "t", File: "latin1.csv", HeaderRowIndex: 4, Unit: "Toneladas"}
	if err := os.WriteFile(filepath.Join(dir, cfg.File), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := loadCSV(dir, cfg)
	if err != nil {
		t.Fatalf("loadCSV: %v", err)
	}
	if _, ok := table.HeaderMap["FEIJAO"]; !ok {
		t.Fatalf("latin-1 header not recovered: %v", table.HeaderMap)
	}
	if raw, _ := table.Value("MARILIA", "FEIJAO"); raw != "42" {
		t.Fatalf("latin-1 row not recovered: %q", raw)
	}
}

func TestLoadCSVHeaderCollisionOverwrites(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "colisao.csv", "Município;Ano;Café (arábica);CAFE",
		"Bauru (SP);2023;1;2")

	table, err := loadCSV(dir, CSVConfig{Key: "t", File: "colisao.csv", HeaderRowIndex: 4})
	if err != nil {
		t.Fatalf("loadCSV: %v", err)
	}
	if len(table.HeaderMap) != 1 {
		t.Fatalf("colliding keys should merge, got %v", table.HeaderMap)
	}
	if table.HeaderMap["CAFE"] != "CAFE" {
		t.Fatalf("last column should win the display name, got %q", table.HeaderMap["CAFE"])
	}
	if raw, _ := table.Value("BAURU", "CAFE"); raw != "2" {
		t.Fatalf("colliding column value = %q, want %q", raw, "2")
	}
}
