package quote

import (
	"context"
	"time"

	quoteDomain "github.com/muhammadchandra19/quotestream/internal/domain/quote"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
)

// Option customizes a Usecase.
type Option func(*Usecase)

// WithLastTickCache mirrors every last tick write into cache and serves reads from it first.
func WithLastTickCache(cache quoteV1.LastTickCache) Option {
	return func(u *Usecase) {
		u.cache = cache
	}
}

// WithAveragePublisher announces every persisted hourly average through publisher.
func WithAveragePublisher(publisher quoteV1.AveragePublisher) Option {
	return func(u *Usecase) {
		u.publisher = publisher
	}
}

// WithKnownPairs sets the pairs a cached read must cover to be served without the database.
func WithKnownPairs(pairs ...quoteV1.Pair) Option {
	return func(u *Usecase) {
		u.pairs = pairs
	}
}

// WithClock replaces the clock stamping cached last ticks.
func WithClock(now func() time.Time) Option {
	return func(u *Usecase) {
		u.now = now
	}
}

// Usecase is the persistence side used by the aggregator and the read side used by the API.
type Usecase struct {
	repository quoteV1.Repository
	cache      quoteV1.LastTickCache
	publisher  quoteV1.AveragePublisher
	logger     logger.Interface
	now        func() time.Time
	pairs      []quoteV1.Pair
}

var (
	_ quoteDomain.Store   = (*Usecase)(nil)
	_ quoteDomain.Usecase = (*Usecase)(nil)
)

// NewUsecase creates a new quote usecase.
func NewUsecase(repository quoteV1.Repository, log logger.Interface, opts ...Option) *Usecase {
	u := &Usecase{
		repository: repository,
		logger:     log,
		now:        time.Now,
		pairs:      quoteV1.AllPairs(),
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// UpsertLastTick stores tick as the pair's last known trade. The cache is best effort:
// when the write does not reach it the pair is evicted so reads fall through to the database.
func (u *Usecase) UpsertLastTick(ctx context.Context, tick quoteV1.Tick) error {
	if err := u.repository.UpsertLastTick(ctx, tick); err != nil {
		return errors.TracerFromError(err)
	}

	if u.cache == nil {
		return nil
	}

	err := u.cache.Set(ctx, quoteV1.LastTick{
		Pair:      tick.Pair,
		Price:     tick.Price,
		Ts:        tick.Ts,
		UpdatedAt: u.now().UTC(),
	})
	if err != nil {
		u.logger.WarnContext(ctx, "failed to cache last tick",
			logger.NewField("pair", tick.Pair),
			logger.NewField("error", err.Error()),
		)

		if err := u.cache.Delete(ctx, tick.Pair); err != nil {
			u.logger.WarnContext(ctx, "failed to evict cached last tick",
				logger.NewField("pair", tick.Pair),
				logger.NewField("error", err.Error()),
			)
		}
	}

	return nil
}

// UpsertHourlyAverage persists a completed hour and then publishes it. A publish failure
// is logged, the row is already stored.
func (u *Usecase) UpsertHourlyAverage(ctx context.Context, avg quoteV1.HourlyAverage) error {
	if err := u.repository.UpsertHourlyAverage(ctx, avg); err != nil {
		return errors.TracerFromError(err)
	}

	if u.publisher == nil {
		return nil
	}

	if err := u.publisher.Publish(ctx, avg); err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err),
			logger.NewField("action", "publish hourly average"),
			logger.NewField("pair", avg.Pair),
		)
	}

	return nil
}

// HourlyAverages returns persisted hours of one pair in [From, To], oldest first.
func (u *Usecase) HourlyAverages(ctx context.Context, filter quoteV1.AverageFilter) ([]quoteV1.HourlyAverage, error) {
	if filter.Pair == "" {
		return nil, errors.NewErrorDetails("pair is required", string(errors.GeneralBadRequestError), "pair")
	}
	if filter.To.Before(filter.From) {
		return nil, errors.NewErrorDetails("from must not be after to", string(errors.GeneralBadRequestError), "from")
	}

	averages, err := u.repository.HourlyAverages(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return averages, nil
}

// LastTicks returns the last trade of every pair. The cache answers alone only when it
// holds every known pair; otherwise the database is read and, per pair, the newer tick wins.
func (u *Usecase) LastTicks(ctx context.Context) (map[quoteV1.Pair]quoteV1.LastTick, error) {
	var cached map[quoteV1.Pair]quoteV1.LastTick
	if u.cache != nil {
		ticks, err := u.cache.All(ctx)
		if err != nil {
			u.logger.WarnContext(ctx, "last tick cache unavailable, reading database",
				logger.NewField("error", err.Error()),
			)
		} else {
			cached = toMap(ticks)
			if u.covers(cached) {
				return cached, nil
			}
		}
	}

	ticks, err := u.repository.LastTicks(ctx)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	out := toMap(ticks)
	for pair, tick := range cached {
		if stored, ok := out[pair]; !ok || tick.Ts > stored.Ts {
			out[pair] = tick
		}
	}
	return out, nil
}

func (u *Usecase) covers(ticks map[quoteV1.Pair]quoteV1.LastTick) bool {
	if len(u.pairs) == 0 {
		return false
	}
	for _, pair := range u.pairs {
		if _, ok := ticks[pair]; !ok {
			return false
		}
	}
	return true
}

func toMap(ticks []quoteV1.LastTick) map[quoteV1.Pair]quoteV1.LastTick {
	out := make(map[quoteV1.Pair]quoteV1.LastTick, len(ticks))
	for _, tick := range ticks {
		out[tick.Pair] = tick
	}
	return out
}
