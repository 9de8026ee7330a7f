package feedsim

import "math"

// priceWalk moves each symbol's price by at most volatility per step. Not safe for
// concurrent use.
type priceWalk struct {
	prices     map[string]float64
	volatility float64
	random     func() float64
}

func newPriceWalk(seeds map[string]float64, volatility float64, random func() float64) *priceWalk {
	prices := make(map[string]float64, len(seeds))
	for symbol, price := range seeds {
		prices[symbol] = price
	}
	return &priceWalk{prices: prices, volatility: volatility, random: random}
}

func (w *priceWalk) has(symbol string) bool {
	_, ok := w.prices[symbol]
	return ok
}

// next returns the following price of symbol, rounded to 8 decimals and never below 1e-8.
func (w *priceWalk) next(symbol string) float64 {
	price := w.prices[symbol] * (1 + (w.random()*2-1)*w.volatility)
	price = math.Max(math.Round(price*1e8)/1e8, 1e-8)
	w.prices[symbol] = price
	return price
}

func (w *priceWalk) volume() float64 {
	return math.Round((0.001+w.random()*2)*1e4) / 1e4
}
