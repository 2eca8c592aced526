// Package clima consulta o OpenWeatherMap para condições atuais de uma
// cidade. A chamada é best-effort e sem retry: quem consome trata falha
// como "clima indisponível".
package clima

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bytedance/sonic"

	"github.com/Guisbeghendev/univespi4-v2/internal/domain"
)

const DefaultBaseURL = "http://api.openweathermap.org/data/2.5/weather"

type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type currentPayload struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current busca as condições atuais para o nome de cidade informado (já sem
// sufixo de UF, que a API rejeita). Unidades métricas, descrições em pt-BR.
func (c *Client) Current(ctx context.Context, cityName string) (*domain.Clima, error) {
	if cityName == "" {
		return nil, fmt.Errorf("nome de cidade vazio")
	}

	params := url.Values{}
	params.Set("q", cityName)
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "pt_br")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("clima para %q: %w", cityName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("clima para %q: status code error: %d %s", cityName, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("clima para %q: leitura do corpo: %w", cityName, err)
	}

	var payload currentPayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("clima para %q: parse: %w", cityName, err)
	}

	condicao := ""
	if len(payload.Weather) > 0 {
		condicao = capitalize(payload.Weather[0].Description)
	}

	return &domain.Clima{
		TemperaturaC:    fmt.Sprintf("%.1f°C", payload.Main.Temp),
		Condicao:        condicao,
		Umidade:         fmt.Sprintf("%d%%", payload.Main.Humidity),
		VelocidadeVento: fmt.Sprintf("%.1f m/s", payload.Wind.Speed),

		SensacaoTermicaC: fmt.Sprintf("%.1f°C", payload.Main.FeelsLike),
		TempMinC:         fmt.Sprintf("%.1f°C", payload.Main.TempMin),
		TempMaxC:         fmt.Sprintf("%.1f°C", payload.Main.TempMax),
		PressaoHPA:       fmt.Sprintf("%d hPa", payload.Main.Pressure),
	}, nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
