package pubsub

import (
	"context"
	"log/slog"

	"quill/config"
	"quill/internal/domain/service"
	"quill/internal/infra/notification"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Publisher is a ResetNotifier holding a connection that must be released.
type Publisher interface {
	service.ResetNotifier
	Close() error
}

// PublisherParams holds dependencies for the reset notifier, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewResetNotifier picks the reset notification transport from configuration.
// Without a provider the token is only written to the log.
func NewResetNotifier(params PublisherParams) (service.ResetNotifier, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, reset tokens go to the log")

		return notification.NewLogNotifier(logger), nil
	}

	var publisher Publisher
	var err error

	switch cfg.Provider {
	case config.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for reset notifications",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case config.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing reset notification publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}
