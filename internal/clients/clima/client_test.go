package clima

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const currentBody = `{
	"weather": [{"description": "céu limpo"}],
	"main": {"temp": 27.34, "feels_like": 28.9, "temp_min": 21.0, "temp_max": 30.55, "pressure": 1015, "humidity": 48},
	"wind": {"speed": 3.62}
}`

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "Bauru" {
			t.Errorf("q = %q, want Bauru", q.Get("q"))
		}
		if q.Get("units") != "metric" || q.Get("lang") != "pt_br" {
			t.Errorf("missing units/lang params: %q", r.URL.RawQuery)
		}
		if q.Get("appid") != "chave" {
			t.Errorf("appid = %q", q.Get("appid"))
		}
		_, _ = w.Write([]byte(currentBody))
	}))
	defer srv.Close()

	clima, err := NewClient(srv.URL, "chave", 2*time.Second).Current(context.Background(), "Bauru")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	if clima.TemperaturaC != "27.3°C" {
		t.Errorf("TemperaturaC = %q", clima.TemperaturaC)
	}
	if clima.Condicao != "Céu limpo" {
		t.Errorf("Condicao = %q", clima.Condicao)
	}
	if clima.Umidade != "48%" {
		t.Errorf("Umidade = %q", clima.Umidade)
	}
	if clima.VelocidadeVento != "3.6 m/s" {
		t.Errorf("VelocidadeVento = %q", clima.VelocidadeVento)
	}
	if clima.SensacaoTermicaC != "28.9°C" || clima.TempMinC != "21.0°C" || clima.TempMaxC != "30.6°C" {
		t.Errorf("temps = %q %q %q", clima.SensacaoTermicaC, clima.TempMinC, clima.TempMaxC)
	}
	if clima.PressaoHPA != "1015 hPa" {
		t.Errorf("PressaoHPA = %q", clima.PressaoHPA)
	}
}

func TestCurrentCityNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, "chave", 2*time.Second).Current(context.Background(), "Cidade Inexistente"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestCurrentEmptyCity(t *testing.T) {
	if _, err := NewClient("http://invalid", "chave", time.Second).Current(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty city name")
	}
}
