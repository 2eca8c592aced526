package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"golang.org/x/text/encoding/charmap"

	"github.com/Guisbeghendev/univespi4-v2/internal/domain"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/textnorm"
)

// readFileUTF8 lê o arquivo e garante texto UTF-8 válido, refazendo a
// decodificação como Latin-1 quando necessário (os extratos do IBGE circulam
// nas duas codificações).
func readFileUTF8(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decodificação latin-1: %w", err)
	}
	return string(decoded), nil
}

// parseLine interpreta uma única linha física como registro CSV com ";".
func parseLine(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.Read()
}

// loadCSV carrega um extrato quantitativo. O offset de cabeçalho conta
// linhas físicas do arquivo (inclusive vazias), por isso a quebra em linhas
// vem antes do parse CSV. A primeira coluna é a cidade e a segunda é a
// coluna de ano/metadado, descartada.
func loadCSV(dir string, cfg CSVConfig) (*Table, error) {
	path := filepath.Join(dir, cfg.File)
	content, err := readFileUTF8(path)
	if err != nil {
		return nil, fmt.Errorf("leitura de %s: %w", cfg.File, err)
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if len(lines) <= cfg.HeaderRowIndex+1 {
		return nil, fmt.Errorf("%s: sem linhas de dados abaixo do cabeçalho (índice %d)", cfg.File, cfg.HeaderRowIndex)
	}

	header, err := parseLine(lines[cfg.HeaderRowIndex])
	if err != nil {
		return nil, fmt.Errorf("cabeçalho de %s: %w", cfg.File, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%s: menos de 2 colunas no cabeçalho", cfg.File)
	}

	// Mapeia o índice de cada coluna de produto para sua chave normalizada,
	// guardando o nome original para exibição.
	headerMap := make(map[string]string)
	colKeys := make([]string, len(header))
	for i, original := range header {
		if i <= 1 {
			continue
		}
		key := textnorm.Normalize(original)
		if key == "" {
			continue
		}
		colKeys[i] = key
		headerMap[key] = strings.TrimSpace(original)
	}

	rows := make(map[string]map[string]string)
	for _, line := range lines[cfg.HeaderRowIndex+1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("linha de dados de %s: %w", cfg.File, err)
		}
		cityKey := textnorm.Normalize(record[0])
		if cityKey == "" {
			continue
		}
		row := make(map[string]string, len(headerMap))
		for i := 2; i < len(record) && i < len(colKeys); i++ {
			if colKeys[i] == "" {
				continue
			}
			row[colKeys[i]] = strings.TrimSpace(record[i])
		}
		if _, exists := rows[cityKey]; !exists {
			rows[cityKey] = row
		}
	}

	return &Table{Key: cfg.Key, Rows: rows, HeaderMap: headerMap}, nil
}

// loadJSON carrega um arquivo de referência e o reindexa pela chave
// normalizada do campo nomeado. Registros sem o campo (ou com campo não
// textual) são ignorados, espelhando a tolerância do dado de origem.
func loadJSON(dir string, cfg JSONConfig) (map[string]domain.RefRecord, error) {
	raw, err := os.ReadFile(filepath.Join(dir, cfg.File))
	if err != nil {
		return nil, fmt.Errorf("leitura de %s: %w", cfg.File, err)
	}

	var list []domain.RefRecord
	if err := sonic.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse de %s: %w", cfg.File, err)
	}

	indexed := make(map[string]domain.RefRecord, len(list))
	for _, rec := range list {
		name, ok := rec[cfg.NameField].(string)
		if !ok || name == "" {
			continue
		}
		indexed[textnorm.Normalize(name)] = rec
	}
	return indexed, nil
}
