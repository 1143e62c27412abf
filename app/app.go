// Package app assembles the dependency graph shared by every command.
package app

import (
	"go.uber.org/fx"

	"github.com/diafit-org/summaries/config"
	"github.com/diafit-org/summaries/events"
	"github.com/diafit-org/summaries/logger"
	"github.com/diafit-org/summaries/store"
	"github.com/diafit-org/summaries/summaries"
	"github.com/diafit-org/summaries/users"
)

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.New,
			store.NewConfig,
			store.NewClient,
			store.NewDatabase,
			events.NewGlucoseRepository,
			events.NewBolusRepository,
			events.NewMealRepository,
			events.NewSleepRepository,
			users.NewService,
			summaries.NewRepository,
			summaries.NewRunner,
		),
	}
}
