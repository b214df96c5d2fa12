package fx

import (
	"league-threats/internal/config"
	"league-threats/internal/database"
	"league-threats/internal/ddragon"
	"league-threats/internal/logger"
	"league-threats/internal/repository"
	"league-threats/internal/server"
	"league-threats/internal/service"
	"league-threats/internal/storage"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	fx.Provide(storage.NewCache),
	// repos
	fx.Provide(repository.NewChampionRepository),
	fx.Provide(repository.NewSettingsRepository),
	// data dragon client
	fx.Provide(ddragon.NewClient),
	// svc
	fx.Provide(service.NewChampionService),
	fx.Provide(service.NewThreatService),
	fx.Provide(service.NewSettingsService),
	// server
	fx.Provide(server.New),
)
