package main

import (
	"context"
	"log/slog"
	"os"

	"quill/config"
	"quill/internal/delivery"
	"quill/internal/delivery/http"
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"
	"quill/internal/domain/repository"
	"quill/internal/infra/auth"
	logs "quill/internal/infra/log"
	"quill/internal/infra/persistence/postgres"
	"quill/internal/infra/persistence/redis"
	"quill/internal/infra/pubsub"
	"quill/internal/infra/ratelimit"
	"quill/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPostRepository,
			postgres.NewCommentRepository,
			postgres.NewCategoryRepository,
			postgres.NewTransactionManager,
			newResetTokenRepository,
		),
	)
}

// newResetTokenRepository picks the reset token backend from config
func newResetTokenRepository(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB, logger *slog.Logger) (repository.ResetTokenRepository, error) {
	if cfg.ResetToken.Store != config.ResetTokenStoreRedis {
		return postgres.NewResetTokenRepository(db), nil
	}

	client, err := redis.New(lc, cfg, logger)
	if err != nil {
		return nil, err
	}

	return redis.NewResetTokenRepository(client, cfg.ResetToken.TTL), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewArgon2idHasher,
			auth.NewJWTService,
			ratelimit.NewFixedWindowLimiter,
			pubsub.NewResetNotifier,
			impl.NewAuthorizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewPostService,
			impl.NewCommentService,
			impl.NewCategoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewPostHandler,
			handler.NewCommentHandler,
			handler.NewCategoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
