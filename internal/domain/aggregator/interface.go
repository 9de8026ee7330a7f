package aggregator

import (
	"context"

	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Aggregator keeps one live hourly accumulator per pair.
type Aggregator interface {
	ProcessTick(ctx context.Context, tick quoteV1.Tick) (quoteV1.HourlySnapshot, error)
	CurrentHourAverage(pair quoteV1.Pair) (quoteV1.HourlySnapshot, bool)
	AllCurrentHourAverages() []quoteV1.HourlySnapshot
}
