package bootstrap

import (
	"context"
	"sync"

	"github.com/muhammadchandra19/quotestream/pkg/config"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/muhammadchandra19/quotestream/pkg/postgresql"
	"github.com/muhammadchandra19/quotestream/pkg/redis"
	"go.uber.org/multierr"
)

// Bootstrap wires the quote stream service.
type Bootstrap struct {
	Config     *config.Config
	Logger     logger.Interface
	Repository Repository
	Usecase    Usecase
	Transport  Transport

	PostgreSQL postgresql.PostgreSQLClient
	Redis      redis.Client

	startOnce sync.Once
	started   bool
}

// BootstrapConfig holds the connected clients the service is built on.
// Redis is nil when the last tick cache is disabled.
type BootstrapConfig struct {
	Config     *config.Config
	PostgreSQL postgresql.PostgreSQLClient
	Redis      redis.Client
	Logger     logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(cfg BootstrapConfig) *Bootstrap {
	b.Config = cfg.Config
	b.PostgreSQL = cfg.PostgreSQL
	b.Redis = cfg.Redis
	b.Logger = cfg.Logger

	b.registerRepository()
	b.registerUsecase()
	b.registerTransport()

	return b
}

// Start runs the pipeline and the HTTP server in the background. The returned channel
// reports a server failure.
func (b *Bootstrap) Start(ctx context.Context) (<-chan error, error) {
	var (
		errCh <-chan error
		err   error
	)

	b.startOnce.Do(func() {
		b.Usecase.Aggregator.Start(ctx)
		b.Usecase.Orchestrator.Start(ctx)
		b.Usecase.FeedClient.Start(ctx)

		errCh, err = b.Transport.HTTPServer.Start()
		b.started = true
	})

	return errCh, err
}

// Shutdown stops the service in dependency order: HTTP, feed, orchestrator drain,
// aggregator flush, subscribers, publishers, then the database.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var err error

	if b.started {
		err = multierr.Append(err, b.Transport.HTTPServer.Shutdown(ctx))
		err = multierr.Append(err, b.Usecase.FeedClient.Shutdown(ctx))
		err = multierr.Append(err, b.Usecase.Orchestrator.Wait(ctx))
		b.Usecase.Aggregator.Stop(ctx)
	}
	b.Usecase.Hub.Close()

	if b.Repository.AveragePublisher != nil {
		err = multierr.Append(err, b.Repository.AveragePublisher.Close())
	}
	if b.Redis != nil {
		err = multierr.Append(err, b.Redis.Disconnect(ctx))
	}
	if b.PostgreSQL != nil {
		b.PostgreSQL.Close()
	}

	if err != nil {
		b.Logger.Error(errors.TracerFromError(err), logger.NewField("action", "shutdown"))
	}
	return err
}
