// Package ibge consulta a API de localidades do IBGE (estados e
// municípios). As falhas voltam como erro para o chamador decidir a
// degradação; nenhum resultado parcial é inventado aqui.
package ibge

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"

	"github.com/Guisbeghendev/univespi4-v2/internal/domain"
)

const (
	DefaultBaseURL = "https://servicodados.ibge.gov.br/api/v1/localidades"

	retryInterval = 200 * time.Millisecond
	maxRetries    = 3
)

type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Municipio é o resultado reduzido da consulta com view=nivel.
type Municipio struct {
	Nome string
	UF   string
}

// A sigla da UF fica enterrada em regiao-imediata → regiao-intermediaria →
// UF; qualquer nível ausente degrada para sigla vazia.
type municipioPayload struct {
	Nome           string `json:"nome"`
	RegiaoImediata *struct {
		RegiaoIntermediaria *struct {
			UF *struct {
				Sigla string `json:"sigla"`
			} `json:"UF"`
		} `json:"regiao-intermediaria"`
	} `json:"regiao-imediata"`
}

type localidadePayload struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	err := backoff.Retry(
		func() error {
			req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if reqErr != nil {
				return backoff.Permanent(reqErr)
			}
			resp, httpErr := c.httpc.Do(req)
			if httpErr != nil {
				return fmt.Errorf("http.Do: %w", httpErr)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("status code error: %d %s", resp.StatusCode, resp.Status)
			}

			var readErr error
			body, readErr = io.ReadAll(resp.Body)
			if readErr != nil {
				return fmt.Errorf("leitura do corpo: %w", readErr)
			}
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), maxRetries),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

// GetMunicipio resolve um ID de município para nome e sigla de UF.
func (c *Client) GetMunicipio(ctx context.Context, id string) (*Municipio, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/municipios/%s/?view=nivel", c.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("municipio %s: %w", id, err)
	}

	var payload municipioPayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("municipio %s: parse: %w", id, err)
	}
	if payload.Nome == "" {
		return nil, fmt.Errorf("municipio %s: resposta sem nome", id)
	}

	m := &Municipio{Nome: payload.Nome}
	if payload.RegiaoImediata != nil &&
		payload.RegiaoImediata.RegiaoIntermediaria != nil &&
		payload.RegiaoImediata.RegiaoIntermediaria.UF != nil {
		m.UF = payload.RegiaoImediata.RegiaoIntermediaria.UF.Sigla
	}
	return m, nil
}

// ListEstados lista os estados ordenados por nome.
func (c *Client) ListEstados(ctx context.Context) ([]domain.Localidade, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/estados?orderBy=nome", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("estados: %w", err)
	}
	return parseLocalidades(body)
}

// ListMunicipios lista os municípios de um estado ordenados por nome.
func (c *Client) ListMunicipios(ctx context.Context, estadoID string) ([]domain.Localidade, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/estados/%s/municipios?orderBy=nome", c.baseURL, estadoID))
	if err != nil {
		return nil, fmt.Errorf("municipios do estado %s: %w", estadoID, err)
	}
	return parseLocalidades(body)
}

func parseLocalidades(body []byte) ([]domain.Localidade, error) {
	var payload []localidadePayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse de localidades: %w", err)
	}
	out := make([]domain.Localidade, 0, len(payload))
	for _, p := range payload {
		out = append(out, domain.Localidade{ID: p.ID, Nome: p.Nome})
	}
	return out, nil
}
