package rest

import (
	"context"

	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/internal/usecase/orchestrator"
	"github.com/muhammadchandra19/quotestream/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/quotestream/pkg/postgresql"
)

// FeedStatus is the part of the feed client the readiness probe reads.
type FeedStatus interface {
	Status() quoteV1.ConnectionStatus
	IsConnected() bool
}

// SystemStatusReporter exposes the pipeline snapshot.
type SystemStatusReporter interface {
	SystemStatus() orchestrator.SystemStatus
}

// DatabaseCheck is up when the database answers a ping.
func DatabaseCheck(db postgresql.PostgreSQLClient) healthcheck.Check {
	return healthcheck.Check{
		Name: "database",
		Fn: func(ctx context.Context) healthcheck.Result {
			health := postgresql.CheckHealth(ctx, db)
			status := healthcheck.StatusUp
			if health.Status != postgresql.StatusUp {
				status = healthcheck.StatusDown
			}
			return healthcheck.Result{Status: status, Details: health}
		},
	}
}

// FeedCheck is up while the upstream connection is open or being opened.
func FeedCheck(feed FeedStatus) healthcheck.Check {
	return healthcheck.Check{
		Name: "feed",
		Fn: func(context.Context) healthcheck.Result {
			status := feed.Status()
			result := healthcheck.Result{
				Status: healthcheck.StatusDown,
				Details: map[string]any{
					"connectionStatus": status,
					"connected":        feed.IsConnected(),
				},
			}
			if status == quoteV1.StatusConnected || status == quoteV1.StatusConnecting {
				result.Status = healthcheck.StatusUp
			}
			return result
		},
	}
}

// SystemCheck is always up and carries the pipeline snapshot.
func SystemCheck(reporter SystemStatusReporter) healthcheck.Check {
	return healthcheck.Check{
		Name: "system",
		Fn: func(context.Context) healthcheck.Result {
			return healthcheck.Result{Status: healthcheck.StatusUp, Details: reporter.SystemStatus()}
		},
	}
}
