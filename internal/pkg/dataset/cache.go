package dataset

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Guisbeghendev/univespi4-v2/internal/domain"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/logger"
)

const StatusOK = "Sucesso (Cache carregado)"

// Cache mantém todos os datasets em memória pelo tempo de vida do processo.
// A população é first-call-wins: um cache carregado é devolvido inalterado
// por chamadas subsequentes de Load; Reload é o gatilho explícito de
// recarga. O mutex cobre a população inteira, então primeiras requisições
// concorrentes não disparam parses redundantes.
type Cache struct {
	dir string

	mu     sync.Mutex
	loaded bool
	status string
	tables map[string]*Table
	refs   map[string]map[string]domain.RefRecord
}

func NewCache(dir string) *Cache {
	return &Cache{dir: dir, status: "não carregado"}
}

// Load popula o cache na primeira chamada e devolve o status. Uma falha em
// qualquer CSV configurado aborta a carga inteira sem promover estado
// parcial; falhas nos JSONs de referência degradam para índices vazios.
func (c *Cache) Load(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.status, nil
	}
	return c.loadLocked(ctx)
}

// Reload descarta o conteúdo atual e refaz a carga.
func (c *Cache) Reload(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loaded = false
	return c.loadLocked(ctx)
}

func (c *Cache) loadLocked(ctx context.Context) (string, error) {
	tables := make(map[string]*Table, len(CSVConfigs))
	refs := make(map[string]map[string]domain.RefRecord, len(JSONConfigs))

	var resMu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)

	for _, cfg := range CSVConfigs {
		cfg := cfg
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			table, err := loadCSV(c.dir, cfg)
			if err != nil {
				return fmt.Errorf("dataset %q: %w", cfg.Key, err)
			}
			resMu.Lock()
			defer resMu.Unlock()
			tables[cfg.Key] = table
			return nil
		})
	}

	for _, cfg := range JSONConfigs {
		cfg := cfg
		eg.Go(func() error {
			indexed, err := loadJSON(c.dir, cfg)
			if err != nil {
				// Referências descritivas são independentes da carga
				// principal: degradam para vazio sem abortar.
				logger.Warnf(egCtx, "referência %q indisponível: %s", cfg.Key, err.Error())
				indexed = map[string]domain.RefRecord{}
			}
			resMu.Lock()
			defer resMu.Unlock()
			refs[cfg.Key] = indexed
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		c.status = fmt.Sprintf("Falha na carga dos dados principais: %s", err.Error())
		return c.status, err
	}

	c.tables = tables
	c.refs = refs
	c.loaded = true
	c.status = StatusOK
	return c.status, nil
}

// IsLoaded informa se o cache foi populado com sucesso.
func (c *Cache) IsLoaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Status devolve a última mensagem de status da carga.
func (c *Cache) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Table devolve um dataset quantitativo carregado.
func (c *Cache) Table(key string) (*Table, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return nil, false
	}
	t, ok := c.tables[key]
	return t, ok
}

// Ref devolve um índice de referência JSON; um índice ausente volta vazio,
// nunca nil.
func (c *Cache) Ref(key string) map[string]domain.RefRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return map[string]domain.RefRecord{}
	}
	idx, ok := c.refs[key]
	if !ok {
		return map[string]domain.RefRecord{}
	}
	return idx
}

// HeaderMaps devolve os mapas de nome de exibição de todas as tabelas,
// chaveados pela chave do dataset.
func (c *Cache) HeaderMaps() map[string]map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	maps := make(map[string]map[string]string, len(c.tables))
	for key, t := range c.tables {
		maps[key] = t.HeaderMap
	}
	return maps
}
