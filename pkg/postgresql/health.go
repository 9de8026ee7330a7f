package postgresql

import (
	"context"
	"time"
)

// HealthCheck represents database health information
type HealthCheck struct {
	Status       string        `json:"status"`
	ResponseTime time.Duration `json:"response_time"`
	ActiveConns  int32         `json:"active_connections"`
	IdleConns    int32         `json:"idle_connections"`
	MaxConns     int32         `json:"max_connections"`
	DatabaseName string        `json:"database_name"`
	Error        string        `json:"error,omitempty"`
}

const (
	// StatusUp is reported when the database answered a ping.
	StatusUp = "up"
	// StatusDown is reported when the ping failed.
	StatusDown = "down"
)

// CheckHealth pings the database and reports pool statistics.
func CheckHealth(ctx context.Context, db PostgreSQLClient) *HealthCheck {
	start := time.Now()

	health := &HealthCheck{
		DatabaseName: db.DatabaseName(),
		Status:       StatusUp,
	}

	if stats := db.Stats(); stats != nil {
		health.ActiveConns = stats.AcquiredConns()
		health.IdleConns = stats.IdleConns()
		health.MaxConns = stats.MaxConns()
	}

	if err := db.Ping(ctx); err != nil {
		health.Status = StatusDown
		health.Error = err.Error()
	}

	health.ResponseTime = time.Since(start)
	return health
}
