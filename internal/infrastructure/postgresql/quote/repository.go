package quote

import (
	"context"
	"time"

	"github.com/google/uuid"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/muhammadchandra19/quotestream/pkg/postgresql"
)

const (
	upsertLastTickQuery = `INSERT INTO last_ticks (pair, price, ts, updated_at) VALUES ($1, $2::numeric, $3, $4)
ON CONFLICT (pair) DO UPDATE SET price = EXCLUDED.price, ts = EXCLUDED.ts, updated_at = EXCLUDED.updated_at`

	upsertHourlyAverageQuery = `INSERT INTO hourly_averages (id, pair, hour_start_utc, avg_price, tick_count, last_tick_price, updated_at) VALUES ($1, $2, $3, $4::numeric, $5, $6::numeric, $7)
ON CONFLICT (pair, hour_start_utc) DO UPDATE SET avg_price = EXCLUDED.avg_price, tick_count = EXCLUDED.tick_count, last_tick_price = EXCLUDED.last_tick_price, updated_at = EXCLUDED.updated_at`

	hourlyAveragesQuery = `SELECT pair, hour_start_utc, avg_price::text, tick_count, last_tick_price::text, updated_at FROM hourly_averages
WHERE pair = $1 AND hour_start_utc >= $2 AND hour_start_utc <= $3 ORDER BY hour_start_utc ASC`

	lastTicksQuery = `SELECT pair, price::text, ts, updated_at FROM last_ticks ORDER BY pair ASC`
)

// Repository stores hourly averages and last ticks in PostgreSQL.
type Repository struct {
	db     postgresql.Querier
	logger logger.Interface
	now    func() time.Time
	newID  func() string
}

var _ quoteV1.Repository = (*Repository)(nil)

// NewRepository creates a new repository.
func NewRepository(db postgresql.Querier, logger logger.Interface) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// UpsertLastTick replaces the last tick of the pair.
func (r *Repository) UpsertLastTick(ctx context.Context, tick quoteV1.Tick) error {
	_, err := r.db.Exec(ctx, upsertLastTickQuery,
		string(tick.Pair),
		numeric(tick.Price),
		tick.Ts,
		r.now().UTC(),
	)
	if err != nil {
		return errors.TracerFromError(err)
	}

	return nil
}

// UpsertHourlyAverage inserts the hour or overwrites the row already stored for (pair, hour).
func (r *Repository) UpsertHourlyAverage(ctx context.Context, avg quoteV1.HourlyAverage) error {
	updatedAt := avg.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = r.now()
	}

	cmd, err := r.db.Exec(ctx, upsertHourlyAverageQuery,
		r.newID(),
		string(avg.Pair),
		avg.HourStartUTC.UTC(),
		numeric(avg.AvgPrice),
		avg.TickCount,
		numeric(avg.LastTickPrice),
		updatedAt.UTC(),
	)
	if err != nil {
		return errors.TracerFromError(err)
	}

	r.logger.Debug("Upserted hourly average", logger.Field{
		Key:   "commandTag",
		Value: cmd.String(),
	})

	return nil
}

// HourlyAverages lists the hours of filter.Pair between From and To inclusive, oldest first.
func (r *Repository) HourlyAverages(ctx context.Context, filter quoteV1.AverageFilter) ([]quoteV1.HourlyAverage, error) {
	rows, err := r.db.Query(ctx, hourlyAveragesQuery,
		string(filter.Pair),
		filter.From.UTC(),
		filter.To.UTC(),
	)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	averages := make([]quoteV1.HourlyAverage, 0)
	for rows.Next() {
		var row hourlyAverageRow
		if err := rows.Scan(
			&row.Pair,
			&row.HourStartUTC,
			&row.AvgPrice,
			&row.TickCount,
			&row.LastTickPrice,
			&row.UpdatedAt,
		); err != nil {
			return nil, errors.TracerFromError(err)
		}

		avg, err := row.toDomain()
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		averages = append(averages, avg)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	return averages, nil
}

// LastTicks returns the stored last tick of every pair.
func (r *Repository) LastTicks(ctx context.Context) ([]quoteV1.LastTick, error) {
	rows, err := r.db.Query(ctx, lastTicksQuery)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	ticks := make([]quoteV1.LastTick, 0)
	for rows.Next() {
		var row lastTickRow
		if err := rows.Scan(&row.Pair, &row.Price, &row.Ts, &row.UpdatedAt); err != nil {
			return nil, errors.TracerFromError(err)
		}

		tick, err := row.toDomain()
		if err != nil {
			return nil, errors.TracerFromError(err)
		}
		ticks = append(ticks, tick)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	return ticks, nil
}
