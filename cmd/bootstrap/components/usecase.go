package components

import (
	"time"

	"event-reservation/internal/pkg/clock"
	"event-reservation/internal/pkg/config"
	"event-reservation/internal/usecase"
	"event-reservation/internal/usecase/commands"
	"event-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewBusinessClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationUseCase,
		commands.NewUserAdminUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBusinessClock(cfg config.Config) (clock.Clock, error) {
	loc, err := time.LoadLocation(cfg.App.BusinessTimeZone)
	if err != nil {
		return nil, err
	}
	return clock.NewRealClockIn(loc), nil
}
