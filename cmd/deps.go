package cmd

import (
	"fmt"
	"time"

	"stockalloc/api"
	"stockalloc/internal"
	"stockalloc/internal/app"
	"stockalloc/internal/repository"
	"stockalloc/internal/service"
)

func InitializeDependencies() (*api.ApiHandler, *internal.Config, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	quoteRepository := repository.NewQuoteRepository()
	universeRepository := repository.NewUniverseRepository(config.UniverseFile)

	priceService := service.NewPriceService(
		quoteRepository,
		time.Duration(config.QuoteCacheTtlSeconds)*time.Second,
	)

	handler := &api.ApiHandler{
		AllocatorHandler: app.AllocatorHandler{
			PriceService: priceService,
		},
		UniverseRepository: universeRepository,
	}

	return handler, config, nil
}
