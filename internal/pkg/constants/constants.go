package constants

// Chaves de configuração (viper).
const (
	ViperDebug          = "debug"
	ViperListenAddr     = "listen_addr"
	ViperDataDir        = "data_dir"
	ViperIBGEBaseURL    = "ibge_base_url"
	ViperClimaBaseURL   = "clima_base_url"
	ViperClimaAPIKey    = "clima_api_key"
	ViperHTTPTimeout    = "http_timeout"
	ViperCORSOrigins    = "cors_origins"
	ViperFallbackCities = "fallback_cities"
)
