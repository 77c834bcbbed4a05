package main

import (
	"context"
	"log/slog"
	"os"

	"eligibility/config"
	"eligibility/internal/delivery"
	"eligibility/internal/delivery/worker"
	"eligibility/internal/delivery/worker/handler"
	"eligibility/internal/domain/repository"
	logs "eligibility/internal/infra/log"
	"eligibility/internal/infra/persistence/memory"
	"eligibility/internal/infra/persistence/postgres"
	"eligibility/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newAuditRepository,
		),
	)
}

// newAuditRepository stores audits in Postgres when configured, otherwise in memory
func newAuditRepository(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.EligibilityAuditRepository, error) {
	if cfg.Postgres == nil {
		logger.Warn("Postgres not configured, eligibility audits are kept in memory")

		return memory.NewEligibilityAuditRepository(), nil
	}

	db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
	if err != nil {
		return nil, err
	}

	return postgres.NewEligibilityAuditRepository(db), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEligibilityAuditService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewAuditHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
