package lasttick

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"

	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/muhammadchandra19/quotestream/pkg/redis"
)

// HashName is the redis hash, before prefixing, that holds one field per pair.
const HashName = "last_ticks"

// Cache keeps the last tick of every pair in a single redis hash.
// The hash expires ttl after the last write, so a stopped feed does not
// leave ticks behind forever.
type Cache struct {
	key         string
	ttl         time.Duration
	redisclient redis.Client
	logger      logger.Interface
}

var _ quoteV1.LastTickCache = (*Cache)(nil)

// NewCache creates a Cache writing to key. A ttl of zero never expires the hash.
func NewCache(redisclient redis.Client, key string, ttl time.Duration, log logger.Interface) *Cache {
	return &Cache{
		key:         key,
		ttl:         ttl,
		redisclient: redisclient,
		logger:      log,
	}
}

// Set overwrites the cached tick of tick.Pair.
func (c *Cache) Set(ctx context.Context, tick quoteV1.LastTick) error {
	buf, err := json.Marshal(tick)
	if err != nil {
		return errors.NewTracer("last_tick_marshal_error").Wrap(err)
	}

	if _, err := c.redisclient.HSet(ctx, c.key, map[string]any{string(tick.Pair): buf}); err != nil {
		return errors.NewTracer("last_tick_store_error").Wrap(err)
	}

	if c.ttl > 0 {
		if _, err := c.redisclient.Expire(ctx, c.key, c.ttl); err != nil {
			return errors.NewTracer("last_tick_expire_error").Wrap(err)
		}
	}

	return nil
}

// Delete removes the cached tick of pair. A missing field is not an error.
func (c *Cache) Delete(ctx context.Context, pair quoteV1.Pair) error {
	if _, err := c.redisclient.HDel(ctx, c.key, string(pair)); err != nil {
		return errors.NewTracer("last_tick_evict_error").Wrap(err)
	}
	return nil
}

// All returns every cached tick ordered by pair. Entries that no longer decode are skipped.
func (c *Cache) All(ctx context.Context) ([]quoteV1.LastTick, error) {
	fields, err := c.redisclient.HGetAll(ctx, c.key)
	if err != nil {
		return nil, errors.NewTracer("last_tick_load_error").Wrap(err)
	}

	ticks := make([]quoteV1.LastTick, 0, len(fields))
	for pair, raw := range fields {
		var tick quoteV1.LastTick
		if err := json.Unmarshal([]byte(raw), &tick); err != nil {
			c.logger.WarnContext(ctx, "dropping undecodable cached tick",
				logger.NewField("pair", pair),
				logger.NewField("error", err.Error()),
			)
			continue
		}
		ticks = append(ticks, tick)
	}

	slices.SortFunc(ticks, func(x, y quoteV1.LastTick) int {
		return strings.Compare(string(x.Pair), string(y.Pair))
	})

	return ticks, nil
}
