package lasttick

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/muhammadchandra19/quotestream/pkg/redis"
	redisMock "github.com/muhammadchandra19/quotestream/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cfg := redis.DefaultConfig()
	cfg.Addrs = []string{mr.Addr()}
	cfg.ConnectTimeout = time.Second

	client := redis.NewClient(logger.NewNop(), cfg)
	require.NoError(t, client.Connect(context.Background()))
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return NewCache(client, cfg.Key(HashName), 24*time.Hour, logger.NewNop()), mr
}

func TestCache_SetAndAll(t *testing.T) {
	ctx := context.Background()
	cache, mr := newMiniredisCache(t)
	updatedAt := time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC)

	require.NoError(t, cache.Set(ctx, quoteV1.LastTick{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: 1, UpdatedAt: updatedAt}))
	require.NoError(t, cache.Set(ctx, quoteV1.LastTick{Pair: quoteV1.PairETHBTC, Price: 0.05, Ts: 2, UpdatedAt: updatedAt}))
	require.NoError(t, cache.Set(ctx, quoteV1.LastTick{Pair: quoteV1.PairETHUSDT, Price: 3010.5, Ts: 3, UpdatedAt: updatedAt}))

	ticks, err := cache.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []quoteV1.LastTick{
		{Pair: quoteV1.PairETHBTC, Price: 0.05, Ts: 2, UpdatedAt: updatedAt},
		{Pair: quoteV1.PairETHUSDT, Price: 3010.5, Ts: 3, UpdatedAt: updatedAt},
	}, ticks)

	assert.True(t, mr.Exists("quotestream:last_ticks"))
	fields, err := mr.HKeys("quotestream:last_ticks")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ETHBTC", "ETHUSDT"}, fields)
	assert.Equal(t, 24*time.Hour, mr.TTL("quotestream:last_ticks"))
}

func TestCache_AllSkipsUndecodableEntries(t *testing.T) {
	ctx := context.Background()
	cache, mr := newMiniredisCache(t)

	require.NoError(t, cache.Set(ctx, quoteV1.LastTick{Pair: quoteV1.PairETHUSDC, Price: 2999, Ts: 1}))
	mr.HSet("quotestream:last_ticks", "ETHBTC", "not-json")

	ticks, err := cache.All(ctx)
	require.NoError(t, err)
	require.Len(t, ticks, 1)
	assert.Equal(t, quoteV1.PairETHUSDC, ticks[0].Pair)
}

func TestCache_Delete(t *testing.T) {
	ctx := context.Background()
	cache, _ := newMiniredisCache(t)

	require.NoError(t, cache.Set(ctx, quoteV1.LastTick{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: 1}))
	require.NoError(t, cache.Set(ctx, quoteV1.LastTick{Pair: quoteV1.PairETHBTC, Price: 0.05, Ts: 2}))

	require.NoError(t, cache.Delete(ctx, quoteV1.PairETHUSDT))
	require.NoError(t, cache.Delete(ctx, quoteV1.PairETHUSDC))

	ticks, err := cache.All(ctx)
	require.NoError(t, err)
	require.Len(t, ticks, 1)
	assert.Equal(t, quoteV1.PairETHBTC, ticks[0].Pair)
}

func TestCache_Empty(t *testing.T) {
	cache, _ := newMiniredisCache(t)

	ticks, err := cache.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ticks)
}

func TestCache_ClientErrors(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(client *redisMock.MockClient)
		actionFn func(c *Cache) error
		expected string
	}{
		{
			name: "set",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().HSet(gomock.Any(), "key", gomock.Any()).Return(int64(0), fmt.Errorf("readonly replica"))
			},
			actionFn: func(c *Cache) error {
				return c.Set(context.Background(), quoteV1.LastTick{Pair: quoteV1.PairETHUSDT, Price: 1, Ts: 1})
			},
			expected: "last_tick_store_error",
		},
		{
			name: "expire",
			mockFn: func(client *redisMock.MockClient) {
				gomock.InOrder(
					client.EXPECT().HSet(gomock.Any(), "key", gomock.Any()).Return(int64(1), nil),
					client.EXPECT().Expire(gomock.Any(), "key", time.Minute).Return(false, fmt.Errorf("i/o timeout")),
				)
			},
			actionFn: func(c *Cache) error {
				return c.Set(context.Background(), quoteV1.LastTick{Pair: quoteV1.PairETHUSDT, Price: 1, Ts: 1})
			},
			expected: "last_tick_expire_error",
		},
		{
			name: "delete",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().HDel(gomock.Any(), "key", "ETHUSDT").Return(int64(0), fmt.Errorf("readonly replica"))
			},
			actionFn: func(c *Cache) error {
				return c.Delete(context.Background(), quoteV1.PairETHUSDT)
			},
			expected: "last_tick_evict_error",
		},
		{
			name: "all",
			mockFn: func(client *redisMock.MockClient) {
				client.EXPECT().HGetAll(gomock.Any(), "key").Return(nil, fmt.Errorf("i/o timeout"))
			},
			actionFn: func(c *Cache) error {
				_, err := c.All(context.Background())
				return err
			},
			expected: "last_tick_load_error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := redisMock.NewMockClient(ctrl)
			tc.mockFn(client)

			err := tc.actionFn(NewCache(client, "key", time.Minute, logger.NewNop()))
			assert.EqualError(t, err, tc.expected)
		})
	}
}
