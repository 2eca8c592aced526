package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/Guisbeghendev/univespi4-v2/internal/api"
	"github.com/Guisbeghendev/univespi4-v2/internal/clients/clima"
	"github.com/Guisbeghendev/univespi4-v2/internal/clients/ibge"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/constants"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/dataset"
	"github.com/Guisbeghendev/univespi4-v2/internal/pkg/logger"
	"github.com/Guisbeghendev/univespi4-v2/internal/service/ficha"
	"github.com/Guisbeghendev/univespi4-v2/internal/service/localidades"
	"github.com/Guisbeghendev/univespi4-v2/internal/service/sugestao"
)

func main() {
	initConfig()

	ctx := context.Background()
	if err := logger.Init(viper.GetBool(constants.ViperDebug)); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	cache := dataset.NewCache(viper.GetString(constants.ViperDataDir))
	if status, err := cache.Load(ctx); err != nil {
		// Primeira requisição tenta de novo; o serviço sobe mesmo assim.
		logger.Warnf(ctx, "datasets não carregados no boot: %s", status)
	} else {
		logger.Infof(ctx, "%s", status)
	}

	timeout := viper.GetDuration(constants.ViperHTTPTimeout)
	ibgeClient := ibge.NewClient(viper.GetString(constants.ViperIBGEBaseURL), timeout)
	climaClient := clima.NewClient(
		viper.GetString(constants.ViperClimaBaseURL),
		viper.GetString(constants.ViperClimaAPIKey),
		timeout,
	)

	var fallback localidades.Fallback
	if entries := viper.GetStringMapString(constants.ViperFallbackCities); len(entries) > 0 {
		fallback = localidades.NewStaticFallback(entries)
	}
	localidadesSvc := localidades.NewService(ibgeClient, fallback, cache)
	fichaSvc := ficha.NewService(cache, localidadesSvc, climaClient)
	sugestaoSvc := sugestao.NewService(cache, localidadesSvc)

	apiSvc, err := api.NewAPIService(cache, fichaSvc, sugestaoSvc, localidadesSvc, climaClient)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := apiSvc.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
		}
	}()

	logger.Infof(ctx, "escutando em %s", viper.GetString(constants.ViperListenAddr))
	apiSvc.Serve(viper.GetString(constants.ViperListenAddr))
}

func initConfig() {
	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperDataDir, "./data")
	viper.SetDefault(constants.ViperIBGEBaseURL, ibge.DefaultBaseURL)
	viper.SetDefault(constants.ViperClimaBaseURL, clima.DefaultBaseURL)
	viper.SetDefault(constants.ViperHTTPTimeout, 5*time.Second)
	viper.SetDefault(constants.ViperCORSOrigins, []string{"http://localhost:3000"})

	viper.SetEnvPrefix("AGRODATA")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Fatal(context.Background(), err)
		}
	}
}
