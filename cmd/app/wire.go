//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/outfit-advisor/internal/bootstrap"
	"github.com/yanqian/outfit-advisor/internal/domain/auth"
	"github.com/yanqian/outfit-advisor/internal/domain/wardrobe"
	"github.com/yanqian/outfit-advisor/internal/infra/config"
	httpiface "github.com/yanqian/outfit-advisor/internal/interface/http"
	"github.com/yanqian/outfit-advisor/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideWardrobeConfig,
		provideEngine,
		providePostgresPool,
		provideAuthRepository,
		provideItemRepository,
		provideImageStorage,
		provideCaptioner,
		provideWeatherClient,
		provideWeatherCache,
		auth.NewService,
		wardrobe.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
