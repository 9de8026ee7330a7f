package quote

import (
	"context"

	v1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Store is what the aggregation engine persists through. Both writes are
// update-or-insert on their key.
type Store interface {
	UpsertLastTick(ctx context.Context, tick v1.Tick) error
	UpsertHourlyAverage(ctx context.Context, avg v1.HourlyAverage) error
}

// Usecase is the read side served over HTTP.
type Usecase interface {
	HourlyAverages(ctx context.Context, filter v1.AverageFilter) ([]v1.HourlyAverage, error)
	LastTicks(ctx context.Context) (map[v1.Pair]v1.LastTick, error)
}
