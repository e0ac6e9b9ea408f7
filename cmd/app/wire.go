//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/daily-look/internal/bootstrap"
	"github.com/yanqian/daily-look/internal/domain/dailylook"
	"github.com/yanqian/daily-look/internal/domain/imagegen"
	"github.com/yanqian/daily-look/internal/domain/weather"
	"github.com/yanqian/daily-look/internal/infra/config"
	"github.com/yanqian/daily-look/internal/infra/llm/gemini"
	"github.com/yanqian/daily-look/internal/infra/weather/openweather"
	httpiface "github.com/yanqian/daily-look/internal/interface/http"
	"github.com/yanqian/daily-look/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideWeatherConfig,
		provideWeatherClient,
		provideWeatherCache,
		provideImageGenConfig,
		provideGeminiClient,
		provideObjectStorage,
		provideSubscriberStore,
		provideSubscriberRepository,
		provideDeliveryRepository,
		provideDailyLookConfig,
		weather.NewService,
		imagegen.NewOrchestrator,
		imagegen.NewBatch,
		dailylook.NewService,
		wire.Bind(new(weather.Provider), new(*openweather.Client)),
		wire.Bind(new(imagegen.Editor), new(*gemini.Client)),
		wire.Bind(new(imagegen.Generator), new(*imagegen.Orchestrator)),
		wire.Bind(new(dailylook.WeatherSource), new(*weather.Service)),
		wire.Bind(new(dailylook.LookGenerator), new(*imagegen.Batch)),
		wire.Bind(new(httpiface.DailyLookService), new(*dailylook.Service)),
		wire.Bind(new(bootstrap.DailyRunner), new(*dailylook.Service)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
