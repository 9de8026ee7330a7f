package quote

import (
	"time"

	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/shopspring/decimal"
)

// priceScale is the scale of every NUMERIC(20, 8) price column.
const priceScale = 8

// hourlyAverageRow is a row of hourly_averages with prices read as text.
type hourlyAverageRow struct {
	Pair          string
	HourStartUTC  time.Time
	AvgPrice      string
	TickCount     int64
	LastTickPrice string
	UpdatedAt     time.Time
}

func (r hourlyAverageRow) toDomain() (quoteV1.HourlyAverage, error) {
	avg, err := decimal.NewFromString(r.AvgPrice)
	if err != nil {
		return quoteV1.HourlyAverage{}, err
	}
	last, err := decimal.NewFromString(r.LastTickPrice)
	if err != nil {
		return quoteV1.HourlyAverage{}, err
	}

	return quoteV1.HourlyAverage{
		Pair:          quoteV1.Pair(r.Pair),
		HourStartUTC:  r.HourStartUTC.UTC(),
		AvgPrice:      avg.InexactFloat64(),
		TickCount:     r.TickCount,
		LastTickPrice: last.InexactFloat64(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}, nil
}

// lastTickRow is a row of last_ticks with the price read as text.
type lastTickRow struct {
	Pair      string
	Price     string
	Ts        int64
	UpdatedAt time.Time
}

func (r lastTickRow) toDomain() (quoteV1.LastTick, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return quoteV1.LastTick{}, err
	}

	return quoteV1.LastTick{
		Pair:      quoteV1.Pair(r.Pair),
		Price:     price.InexactFloat64(),
		Ts:        r.Ts,
		UpdatedAt: r.UpdatedAt.UTC(),
	}, nil
}

// numeric renders a price as the text of a NUMERIC(20, 8) value.
func numeric(price float64) string {
	return decimal.NewFromFloat(price).Round(priceScale).String()
}
