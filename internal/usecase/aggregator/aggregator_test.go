package aggregator

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	quoteMock "github.com/muhammadchandra19/quotestream/internal/domain/quote/mock"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/config"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	hour10 = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	hour11 = time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)
	now    = time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC)
)

func at(hour time.Time, minutes int) int64 {
	return hour.Add(time.Duration(minutes) * time.Minute).UnixMilli()
}

func testConfig() config.AggregatorConfig {
	return config.AggregatorConfig{SweepInterval: time.Minute, PersistTimeout: time.Second}
}

func newTestAggregator(store *quoteMock.MockStore, clock time.Time) *Aggregator {
	return NewAggregator(store, testConfig(), logger.NewNop(), WithClock(func() time.Time { return clock }))
}

func TestAggregator_ProcessTick(t *testing.T) {
	testCases := []struct {
		name     string
		ticks    []quoteV1.Tick
		mockFn   func(store *quoteMock.MockStore)
		assertFn func(t *testing.T, a *Aggregator, snapshots []quoteV1.HourlySnapshot, err error)
	}{
		{
			name: "first tick starts the hour",
			ticks: []quoteV1.Tick{
				{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: at(hour10, 5)},
			},
			mockFn: func(store *quoteMock.MockStore) {
				store.EXPECT().UpsertLastTick(gomock.Any(), quoteV1.Tick{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: at(hour10, 5)}).Return(nil)
			},
			assertFn: func(t *testing.T, a *Aggregator, snapshots []quoteV1.HourlySnapshot, err error) {
				require.NoError(t, err)
				assert.Equal(t, quoteV1.HourlySnapshot{
					Pair:         quoteV1.PairETHUSDT,
					HourStartUTC: hour10,
					Avg:          3000,
					Count:        1,
					LastTs:       at(hour10, 5),
				}, snapshots[0])
			},
		},
		{
			name: "ticks in the same hour accumulate",
			ticks: []quoteV1.Tick{
				{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: at(hour10, 5)},
				{Pair: quoteV1.PairETHUSDT, Price: 3010, Ts: at(hour10, 30)},
			},
			mockFn: func(store *quoteMock.MockStore) {
				store.EXPECT().UpsertLastTick(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
			assertFn: func(t *testing.T, a *Aggregator, snapshots []quoteV1.HourlySnapshot, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3005.0, snapshots[1].Avg)
				assert.Equal(t, int64(2), snapshots[1].Count)
				assert.Equal(t, at(hour10, 30), snapshots[1].LastTs)
			},
		},
		{
			name: "out of order tick keeps the latest timestamp",
			ticks: []quoteV1.Tick{
				{Pair: quoteV1.PairETHBTC, Price: 0.05, Ts: at(hour10, 30)},
				{Pair: quoteV1.PairETHBTC, Price: 0.07, Ts: at(hour10, 10)},
			},
			mockFn: func(store *quoteMock.MockStore) {
				store.EXPECT().UpsertLastTick(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
			assertFn: func(t *testing.T, a *Aggregator, snapshots []quoteV1.HourlySnapshot, err error) {
				require.NoError(t, err)
				assert.InDelta(t, 0.06, snapshots[1].Avg, 1e-12)
				assert.Equal(t, at(hour10, 30), snapshots[1].LastTs)
			},
		},
		{
			name: "hour change flushes the previous hour first",
			ticks: []quoteV1.Tick{
				{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: at(hour10, 5)},
				{Pair: quoteV1.PairETHUSDT, Price: 3010, Ts: at(hour10, 30)},
				{Pair: quoteV1.PairETHUSDT, Price: 3050, Ts: at(hour11, 2)},
			},
			mockFn: func(store *quoteMock.MockStore) {
				gomock.InOrder(
					store.EXPECT().UpsertLastTick(gomock.Any(), gomock.Any()).Return(nil).Times(2),
					store.EXPECT().UpsertHourlyAverage(gomock.Any(), quoteV1.HourlyAverage{
						Pair:          quoteV1.PairETHUSDT,
						HourStartUTC:  hour10,
						AvgPrice:      3005,
						TickCount:     2,
						LastTickPrice: 3010,
						UpdatedAt:     now,
					}).Return(nil),
					store.EXPECT().UpsertLastTick(gomock.Any(), quoteV1.Tick{Pair: quoteV1.PairETHUSDT, Price: 3050, Ts: at(hour11, 2)}).Return(nil),
				)
			},
			assertFn: func(t *testing.T, a *Aggregator, snapshots []quoteV1.HourlySnapshot, err error) {
				require.NoError(t, err)
				assert.Equal(t, quoteV1.HourlySnapshot{
					Pair:         quoteV1.PairETHUSDT,
					HourStartUTC: hour11,
					Avg:          3050,
					Count:        1,
					LastTs:       at(hour11, 2),
				}, snapshots[2])

				current, ok := a.CurrentHourAverage(quoteV1.PairETHUSDT)
				require.True(t, ok)
				assert.Equal(t, hour11, current.HourStartUTC)
			},
		},
		{
			name: "pairs are accumulated independently",
			ticks: []quoteV1.Tick{
				{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: at(hour10, 5)},
				{Pair: quoteV1.PairETHUSDC, Price: 2999, Ts: at(hour11, 5)},
			},
			mockFn: func(store *quoteMock.MockStore) {
				store.EXPECT().UpsertLastTick(gomock.Any(), gomock.Any()).Return(nil).Times(2)
			},
			assertFn: func(t *testing.T, a *Aggregator, snapshots []quoteV1.HourlySnapshot, err error) {
				require.NoError(t, err)
				usdt, ok := a.CurrentHourAverage(quoteV1.PairETHUSDT)
				require.True(t, ok)
				assert.Equal(t, hour10, usdt.HourStartUTC)
				assert.Len(t, a.AllCurrentHourAverages(), 2)
			},
		},
		{
			name: "last tick failure does not fail the tick",
			ticks: []quoteV1.Tick{
				{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: at(hour10, 5)},
			},
			mockFn: func(store *quoteMock.MockStore) {
				store.EXPECT().UpsertLastTick(gomock.Any(), gomock.Any()).Return(fmt.Errorf("connection refused"))
			},
			assertFn: func(t *testing.T, a *Aggregator, snapshots []quoteV1.HourlySnapshot, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(1), snapshots[0].Count)
			},
		},
		{
			name: "failed flush drops the hour and keeps going",
			ticks: []quoteV1.Tick{
				{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: at(hour10, 5)},
				{Pair: quoteV1.PairETHUSDT, Price: 3050, Ts: at(hour11, 2)},
			},
			mockFn: func(store *quoteMock.MockStore) {
				store.EXPECT().UpsertLastTick(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				store.EXPECT().UpsertHourlyAverage(gomock.Any(), gomock.Any()).Return(fmt.Errorf("deadlock detected"))
			},
			assertFn: func(t *testing.T, a *Aggregator, snapshots []quoteV1.HourlySnapshot, err error) {
				require.NoError(t, err)
				assert.Equal(t, hour11, snapshots[1].HourStartUTC)
				assert.Equal(t, int64(1), snapshots[1].Count)
			},
		},
		{
			name: "non finite price is rejected",
			ticks: []quoteV1.Tick{
				{Pair: quoteV1.PairETHUSDT, Price: math.NaN(), Ts: at(hour10, 5)},
			},
			mockFn: func(store *quoteMock.MockStore) {},
			assertFn: func(t *testing.T, a *Aggregator, snapshots []quoteV1.HourlySnapshot, err error) {
				require.Error(t, err)
				_, ok := a.CurrentHourAverage(quoteV1.PairETHUSDT)
				assert.False(t, ok)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := quoteMock.NewMockStore(ctrl)
			tc.mockFn(store)

			a := newTestAggregator(store, now)

			var (
				snapshots []quoteV1.HourlySnapshot
				err       error
			)
			for _, tick := range tc.ticks {
				var snapshot quoteV1.HourlySnapshot
				snapshot, err = a.ProcessTick(context.Background(), tick)
				if err != nil {
					break
				}
				snapshots = append(snapshots, snapshot)
			}

			tc.assertFn(t, a, snapshots, err)
		})
	}
}

func TestAggregator_CurrentHourAverage_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestAggregator(quoteMock.NewMockStore(ctrl), now)

	_, ok := a.CurrentHourAverage(quoteV1.PairETHBTC)
	assert.False(t, ok)
	assert.Empty(t, a.AllCurrentHourAverages())
}

func TestAggregator_AllCurrentHourAverages_OrderedByPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := quoteMock.NewMockStore(ctrl)
	store.EXPECT().UpsertLastTick(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	a := newTestAggregator(store, now)
	for _, pair := range []quoteV1.Pair{quoteV1.PairETHUSDT, quoteV1.PairETHBTC, quoteV1.PairETHUSDC} {
		_, err := a.ProcessTick(context.Background(), quoteV1.Tick{Pair: pair, Price: 1, Ts: at(hour11, 1)})
		require.NoError(t, err)
	}

	snapshots := a.AllCurrentHourAverages()
	require.Len(t, snapshots, 3)
	assert.Equal(t, quoteV1.PairETHBTC, snapshots[0].Pair)
	assert.Equal(t, quoteV1.PairETHUSDC, snapshots[1].Pair)
	assert.Equal(t, quoteV1.PairETHUSDT, snapshots[2].Pair)
}

func TestAggregator_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := quoteMock.NewMockStore(ctrl)
	store.EXPECT().UpsertLastTick(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().UpsertHourlyAverage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, avg quoteV1.HourlyAverage) error {
			assert.Equal(t, quoteV1.PairETHBTC, avg.Pair)
			assert.Equal(t, hour10, avg.HourStartUTC)
			assert.Equal(t, int64(1), avg.TickCount)
			return nil
		},
	).Times(1)

	clock := now
	a := NewAggregator(store, testConfig(), logger.NewNop(), WithClock(func() time.Time { return clock }))

	_, err := a.ProcessTick(context.Background(), quoteV1.Tick{Pair: quoteV1.PairETHBTC, Price: 0.05, Ts: at(hour10, 50)})
	require.NoError(t, err)
	_, err = a.ProcessTick(context.Background(), quoteV1.Tick{Pair: quoteV1.PairETHUSDT, Price: 3050, Ts: at(hour11, 2)})
	require.NoError(t, err)

	assert.Equal(t, 1, a.Sweep(context.Background()))
	assert.Equal(t, 0, a.Sweep(context.Background()))

	_, ok := a.CurrentHourAverage(quoteV1.PairETHBTC)
	assert.False(t, ok)
	_, ok = a.CurrentHourAverage(quoteV1.PairETHUSDT)
	assert.True(t, ok)
}

func TestAggregator_StopFlushesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := quoteMock.NewMockStore(ctrl)
	store.EXPECT().UpsertLastTick(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	store.EXPECT().UpsertHourlyAverage(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	a := newTestAggregator(store, now)
	a.Start(context.Background())

	_, err := a.ProcessTick(context.Background(), quoteV1.Tick{Pair: quoteV1.PairETHUSDT, Price: 3050, Ts: at(hour11, 2)})
	require.NoError(t, err)
	_, err = a.ProcessTick(context.Background(), quoteV1.Tick{Pair: quoteV1.PairETHUSDC, Price: 3049, Ts: at(hour11, 3)})
	require.NoError(t, err)

	a.Stop(context.Background())
	a.Stop(context.Background())

	assert.Empty(t, a.AllCurrentHourAverages())
}

// recordingStore counts persisted ticks per hour so concurrent flushes can be checked.
type recordingStore struct {
	mu      sync.Mutex
	flushed map[string]int64
	writes  int
}

func (s *recordingStore) UpsertLastTick(context.Context, quoteV1.Tick) error {
	return nil
}

func (s *recordingStore) UpsertHourlyAverage(_ context.Context, avg quoteV1.HourlyAverage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushed[fmt.Sprintf("%s@%s", avg.Pair, avg.HourStartUTC)] += avg.TickCount
	s.writes++
	return nil
}

func TestAggregator_ConcurrentSweepDoesNotDoubleFlush(t *testing.T) {
	store := &recordingStore{flushed: make(map[string]int64)}
	a := NewAggregator(store, testConfig(), logger.NewNop(), WithClock(func() time.Time { return now }))

	const ticksPerHour = 200
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < ticksPerHour; i++ {
			_, _ = a.ProcessTick(context.Background(), quoteV1.Tick{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: at(hour10, i%60)})
		}
		for i := 0; i < ticksPerHour; i++ {
			_, _ = a.ProcessTick(context.Background(), quoteV1.Tick{Pair: quoteV1.PairETHUSDT, Price: 3100, Ts: at(hour11, i%60)})
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			a.Sweep(context.Background())
		}
	}()

	wg.Wait()
	a.Stop(context.Background())

	store.mu.Lock()
	defer store.mu.Unlock()

	var total int64
	for _, n := range store.flushed {
		total += n
	}
	assert.Equal(t, int64(2*ticksPerHour), total)
	assert.Equal(t, int64(ticksPerHour), store.flushed[fmt.Sprintf("%s@%s", quoteV1.PairETHUSDT, hour11)])
}
