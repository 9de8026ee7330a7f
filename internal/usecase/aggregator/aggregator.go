package aggregator

import (
	"context"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	aggregatorDomain "github.com/muhammadchandra19/quotestream/internal/domain/aggregator"
	"github.com/muhammadchandra19/quotestream/internal/domain/quote"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/config"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/muhammadchandra19/quotestream/pkg/util"
)

// accumulator is the running state of one pair for one UTC hour.
type accumulator struct {
	hourStart time.Time
	sum       float64
	count     int64
	lastTs    int64
	lastPrice float64
}

func (a *accumulator) add(tick quoteV1.Tick) {
	a.sum += tick.Price
	a.count++
	if tick.Ts >= a.lastTs {
		a.lastTs = tick.Ts
		a.lastPrice = tick.Price
	}
}

func (a *accumulator) snapshot(pair quoteV1.Pair) quoteV1.HourlySnapshot {
	return quoteV1.HourlySnapshot{
		Pair:         pair,
		HourStartUTC: a.hourStart,
		Avg:          a.sum / float64(a.count),
		Count:        a.count,
		LastTs:       a.lastTs,
	}
}

// Option customizes an Aggregator.
type Option func(*Aggregator)

// WithClock replaces the wall clock used by the stale bucket sweep.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// Aggregator keeps one live hourly accumulator per pair and persists each hour
// when it completes.
type Aggregator struct {
	store  quote.Store
	logger logger.Interface
	cfg    config.AggregatorConfig
	now    func() time.Time

	mu           sync.Mutex
	accumulators map[quoteV1.Pair]*accumulator

	done     chan struct{}
	wg       sync.WaitGroup
	runOnce  sync.Once
	stopOnce sync.Once
}

var _ aggregatorDomain.Aggregator = (*Aggregator)(nil)

// NewAggregator creates a new Aggregator. The sweep does not run until Start.
func NewAggregator(store quote.Store, cfg config.AggregatorConfig, log logger.Interface, opts ...Option) *Aggregator {
	a := &Aggregator{
		store:        store,
		logger:       log.With(logger.NewField("component", "aggregator")),
		cfg:          cfg,
		now:          time.Now,
		accumulators: make(map[quoteV1.Pair]*accumulator),
		done:         make(chan struct{}),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start runs the stale bucket sweep every SweepInterval until Stop.
func (a *Aggregator) Start(ctx context.Context) {
	a.runOnce.Do(func() {
		if a.cfg.SweepInterval <= 0 {
			return
		}

		a.wg.Add(1)
		go func() {
			defer a.wg.Done()

			ticker := time.NewTicker(a.cfg.SweepInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					a.Sweep(ctx)
				case <-a.done:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	})
}

// Stop ends the sweep and flushes every live accumulator. Only the first call flushes.
func (a *Aggregator) Stop(ctx context.Context) {
	a.stopOnce.Do(func() {
		close(a.done)
		a.wg.Wait()

		flushed := a.FlushAll(ctx)
		a.logger.Info("aggregator stopped", logger.NewField("flushed", flushed))
	})
}

// ProcessTick adds tick to its pair's current hour and returns the updated snapshot.
// A tick from a different hour than the live accumulator flushes that hour first.
// The last tick is recorded on every call; a failure there is logged, not returned.
func (a *Aggregator) ProcessTick(ctx context.Context, tick quoteV1.Tick) (quoteV1.HourlySnapshot, error) {
	if math.IsNaN(tick.Price) || math.IsInf(tick.Price, 0) {
		return quoteV1.HourlySnapshot{}, errors.NewErrorDetails("tick price is not a finite number", string(errors.GeneralBadRequestError), "price")
	}

	bucket := util.HourBucket(tick.Ts)

	a.mu.Lock()
	acc, ok := a.accumulators[tick.Pair]
	if ok && !acc.hourStart.Equal(bucket) {
		a.flushLocked(ctx, tick.Pair, acc)
		ok = false
	}
	if !ok {
		acc = &accumulator{hourStart: bucket}
		a.accumulators[tick.Pair] = acc
	}
	acc.add(tick)
	snapshot := acc.snapshot(tick.Pair)
	a.mu.Unlock()

	persistCtx, cancel := a.persistContext(ctx)
	defer cancel()

	if err := a.store.UpsertLastTick(persistCtx, tick); err != nil {
		a.logger.ErrorContext(ctx, errors.TracerFromError(err),
			logger.NewField("action", "upsert last tick"),
			logger.NewField("pair", tick.Pair),
		)
	}

	return snapshot, nil
}

// CurrentHourAverage returns the live snapshot of pair, false when none exists.
func (a *Aggregator) CurrentHourAverage(pair quoteV1.Pair) (quoteV1.HourlySnapshot, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	acc, ok := a.accumulators[pair]
	if !ok || acc.count == 0 {
		return quoteV1.HourlySnapshot{}, false
	}

	return acc.snapshot(pair), true
}

// AllCurrentHourAverages returns every live snapshot ordered by pair.
func (a *Aggregator) AllCurrentHourAverages() []quoteV1.HourlySnapshot {
	a.mu.Lock()
	snapshots := make([]quoteV1.HourlySnapshot, 0, len(a.accumulators))
	for pair, acc := range a.accumulators {
		if acc.count == 0 {
			continue
		}
		snapshots = append(snapshots, acc.snapshot(pair))
	}
	a.mu.Unlock()

	slices.SortFunc(snapshots, func(x, y quoteV1.HourlySnapshot) int {
		return strings.Compare(string(x.Pair), string(y.Pair))
	})

	return snapshots
}

// Sweep flushes every accumulator whose hour is not the current wall clock hour.
// It returns the number of hours flushed.
func (a *Aggregator) Sweep(ctx context.Context) int {
	current := util.HourFloorUTC(a.now())

	a.mu.Lock()
	defer a.mu.Unlock()

	flushed := 0
	for pair, acc := range a.accumulators {
		if acc.hourStart.Equal(current) {
			continue
		}
		if a.flushLocked(ctx, pair, acc) {
			flushed++
		}
	}

	if flushed > 0 {
		a.logger.Info("flushed stale hours", logger.NewField("count", flushed))
	}
	return flushed
}

// FlushAll flushes every live accumulator regardless of its hour.
func (a *Aggregator) FlushAll(ctx context.Context) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	flushed := 0
	for pair, acc := range a.accumulators {
		if a.flushLocked(ctx, pair, acc) {
			flushed++
		}
	}
	return flushed
}

// flushLocked removes acc from the live map and persists it. The caller holds a.mu.
// Persistence errors are logged and the hour is dropped.
func (a *Aggregator) flushLocked(ctx context.Context, pair quoteV1.Pair, acc *accumulator) bool {
	delete(a.accumulators, pair)
	if acc.count == 0 {
		return false
	}

	avg := quoteV1.HourlyAverage{
		Pair:          pair,
		HourStartUTC:  acc.hourStart,
		AvgPrice:      acc.sum / float64(acc.count),
		TickCount:     acc.count,
		LastTickPrice: acc.lastPrice,
		UpdatedAt:     a.now().UTC(),
	}

	persistCtx, cancel := a.persistContext(ctx)
	defer cancel()

	if err := a.store.UpsertHourlyAverage(persistCtx, avg); err != nil {
		a.logger.ErrorContext(ctx, errors.TracerFromError(err),
			logger.NewField("action", "flush hourly average"),
			logger.NewField("pair", pair),
			logger.NewField("hourStartUtc", acc.hourStart.Format(util.HourlyBucketLayout)),
			logger.NewField("tickCount", acc.count),
		)
		return false
	}

	a.logger.InfoContext(ctx, "flushed hourly average",
		logger.NewField("pair", pair),
		logger.NewField("hourStartUtc", acc.hourStart.Format(util.HourlyBucketLayout)),
		logger.NewField("avg", avg.AvgPrice),
		logger.NewField("tickCount", avg.TickCount),
	)
	return true
}

func (a *Aggregator) persistContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.PersistTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.PersistTimeout)
}
