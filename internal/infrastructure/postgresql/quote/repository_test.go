package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	mockLogger "github.com/muhammadchandra19/quotestream/pkg/logger/mock"
	mockPg "github.com/muhammadchandra19/quotestream/pkg/postgresql/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow  = time.Date(2024, 1, 1, 11, 0, 5, 0, time.UTC)
	hourStart = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
)

func newTestRepository(pg *mockPg.MockQuerier, log logger.Interface) *Repository {
	repo := NewRepository(pg, log)
	repo.now = func() time.Time { return fixedNow }
	repo.newID = func() string { return "8d7b1c1e-4a5f-4a4e-9d3c-2f1d5c1e0a01" }
	return repo
}

func TestRepository_UpsertLastTick(t *testing.T) {
	ctx := context.Background()
	tick := quoteV1.Tick{Pair: quoteV1.PairETHUSDT, Price: 3000.123456789, Ts: 1704103500000}

	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockQuerier)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockQuerier) {
				mockpg.EXPECT().
					Exec(ctx, upsertLastTickQuery, "ETHUSDT", "3000.12345679", int64(1704103500000), fixedNow).
					Return(pgconn.CommandTag{}, nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(mockpg *mockPg.MockQuerier) {
				mockpg.EXPECT().
					Exec(ctx, upsertLastTickQuery, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pgconn.CommandTag{}, errors.New("error"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.EqualError(t, err, "error")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockQuerier(ctrl)
			repo := newTestRepository(pg, mockLogger.NewMockInterface(ctrl))

			tc.mockFn(pg)

			tc.assertFn(t, repo.UpsertLastTick(ctx, tick))
		})
	}
}

func TestRepository_UpsertHourlyAverage(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		avg      quoteV1.HourlyAverage
		mockFn   func(mockpg *mockPg.MockQuerier, log *mockLogger.MockInterface)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			avg: quoteV1.HourlyAverage{
				Pair:          quoteV1.PairETHUSDT,
				HourStartUTC:  hourStart,
				AvgPrice:      3005,
				TickCount:     2,
				LastTickPrice: 3010,
				UpdatedAt:     fixedNow,
			},
			mockFn: func(mockpg *mockPg.MockQuerier, log *mockLogger.MockInterface) {
				mockpg.EXPECT().
					Exec(ctx, upsertHourlyAverageQuery,
						"8d7b1c1e-4a5f-4a4e-9d3c-2f1d5c1e0a01",
						"ETHUSDT",
						hourStart,
						"3005",
						int64(2),
						"3010",
						fixedNow,
					).Return(pgconn.CommandTag{}, nil)

				log.EXPECT().
					Debug("Upserted hourly average", logger.Field{
						Key:   "commandTag",
						Value: "",
					})
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "missing updated at uses now",
			avg: quoteV1.HourlyAverage{
				Pair:         quoteV1.PairETHBTC,
				HourStartUTC: hourStart,
				AvgPrice:     0.0512345,
				TickCount:    7,
			},
			mockFn: func(mockpg *mockPg.MockQuerier, log *mockLogger.MockInterface) {
				mockpg.EXPECT().
					Exec(ctx, upsertHourlyAverageQuery, gomock.Any(), "ETHBTC", hourStart, "0.0512345", int64(7), "0", fixedNow).
					Return(pgconn.CommandTag{}, nil)
				log.EXPECT().Debug(gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			avg:  quoteV1.HourlyAverage{Pair: quoteV1.PairETHUSDT, HourStartUTC: hourStart, AvgPrice: 1, TickCount: 1},
			mockFn: func(mockpg *mockPg.MockQuerier, log *mockLogger.MockInterface) {
				mockpg.EXPECT().
					Exec(ctx, upsertHourlyAverageQuery, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(pgconn.CommandTag{}, errors.New("error"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockQuerier(ctrl)
			log := mockLogger.NewMockInterface(ctrl)
			repo := newTestRepository(pg, log)

			tc.mockFn(pg, log)

			tc.assertFn(t, repo.UpsertHourlyAverage(ctx, tc.avg))
		})
	}
}

func TestRepository_HourlyAverages(t *testing.T) {
	ctx := context.Background()
	filter := quoteV1.AverageFilter{Pair: quoteV1.PairETHUSDT, From: hourStart.Add(-time.Hour), To: hourStart}

	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockQuerier, rows *mockPg.MockRows)
		assertFn func(t *testing.T, averages []quoteV1.HourlyAverage, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockQuerier, rows *mockPg.MockRows) {
				mockpg.EXPECT().Query(ctx, hourlyAveragesQuery, "ETHUSDT", filter.From, filter.To).Return(rows, nil)
				gomock.InOrder(
					rows.EXPECT().Next().Return(true),
					rows.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(dest ...any) error {
							*dest[0].(*string) = "ETHUSDT"
							*dest[1].(*time.Time) = hourStart.In(time.FixedZone("WIB", 7*3600))
							*dest[2].(*string) = "3005.50000000"
							*dest[3].(*int64) = 2
							*dest[4].(*string) = "3010.00000000"
							*dest[5].(*time.Time) = fixedNow
							return nil
						}),
					rows.EXPECT().Next().Return(false),
				)
				rows.EXPECT().Err().Return(nil)
				rows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, averages []quoteV1.HourlyAverage, err error) {
				require.NoError(t, err)
				require.Len(t, averages, 1)
				assert.Equal(t, quoteV1.HourlyAverage{
					Pair:          quoteV1.PairETHUSDT,
					HourStartUTC:  hourStart,
					AvgPrice:      3005.5,
					TickCount:     2,
					LastTickPrice: 3010,
					UpdatedAt:     fixedNow,
				}, averages[0])
			},
		},
		{
			name: "empty",
			mockFn: func(mockpg *mockPg.MockQuerier, rows *mockPg.MockRows) {
				mockpg.EXPECT().Query(ctx, hourlyAveragesQuery, gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil)
				rows.EXPECT().Next().Return(false)
				rows.EXPECT().Err().Return(nil)
				rows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, averages []quoteV1.HourlyAverage, err error) {
				require.NoError(t, err)
				assert.NotNil(t, averages)
				assert.Empty(t, averages)
			},
		},
		{
			name: "query error",
			mockFn: func(mockpg *mockPg.MockQuerier, rows *mockPg.MockRows) {
				mockpg.EXPECT().Query(ctx, hourlyAveragesQuery, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))
			},
			assertFn: func(t *testing.T, averages []quoteV1.HourlyAverage, err error) {
				assert.Error(t, err)
				assert.Nil(t, averages)
			},
		},
		{
			name: "scan error",
			mockFn: func(mockpg *mockPg.MockQuerier, rows *mockPg.MockRows) {
				mockpg.EXPECT().Query(ctx, hourlyAveragesQuery, gomock.Any(), gomock.Any(), gomock.Any()).Return(rows, nil)
				rows.EXPECT().Next().Return(true)
				rows.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("scan"))
				rows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, averages []quoteV1.HourlyAverage, err error) {
				assert.EqualError(t, err, "scan")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockQuerier(ctrl)
			rows := mockPg.NewMockRows(ctrl)
			repo := newTestRepository(pg, mockLogger.NewMockInterface(ctrl))

			tc.mockFn(pg, rows)

			averages, err := repo.HourlyAverages(ctx, filter)
			tc.assertFn(t, averages, err)
		})
	}
}

func TestRepository_LastTicks(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pg := mockPg.NewMockQuerier(ctrl)
	rows := mockPg.NewMockRows(ctrl)
	repo := newTestRepository(pg, mockLogger.NewMockInterface(ctrl))

	pg.EXPECT().Query(ctx, lastTicksQuery).Return(rows, nil)
	gomock.InOrder(
		rows.EXPECT().Next().Return(true),
		rows.EXPECT().Scan(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(dest ...any) error {
			*dest[0].(*string) = "ETHBTC"
			*dest[1].(*string) = "0.05123456"
			*dest[2].(*int64) = 1704103500000
			*dest[3].(*time.Time) = fixedNow
			return nil
		}),
		rows.EXPECT().Next().Return(false),
	)
	rows.EXPECT().Err().Return(nil)
	rows.EXPECT().Close()

	ticks, err := repo.LastTicks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []quoteV1.LastTick{{
		Pair:      quoteV1.PairETHBTC,
		Price:     0.05123456,
		Ts:        1704103500000,
		UpdatedAt: fixedNow,
	}}, ticks)
}
