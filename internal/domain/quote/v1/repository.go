package v1

import (
	"context"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

// Repository persists hourly averages and last ticks.
type Repository interface {
	UpsertLastTick(ctx context.Context, tick Tick) error
	UpsertHourlyAverage(ctx context.Context, avg HourlyAverage) error
	HourlyAverages(ctx context.Context, filter AverageFilter) ([]HourlyAverage, error)
	LastTicks(ctx context.Context) ([]LastTick, error)
}

// LastTickCache mirrors the last tick of each pair in a fast store.
type LastTickCache interface {
	Set(ctx context.Context, tick LastTick) error
	// Delete evicts pair so reads fall through to the repository.
	Delete(ctx context.Context, pair Pair) error
	All(ctx context.Context) ([]LastTick, error)
}

// AveragePublisher announces flushed hourly averages to downstream consumers.
type AveragePublisher interface {
	Publish(ctx context.Context, avg HourlyAverage) error
	Close() error
}
