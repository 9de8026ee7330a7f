package symbol

import (
	"testing"

	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/stretchr/testify/assert"
)

func TestMapper(t *testing.T) {
	m := NewMapper()

	testCases := []struct {
		name     string
		symbol   string
		expected quoteV1.Pair
		found    bool
	}{
		{name: "ETHUSDC", symbol: "BINANCE:ETHUSDC", expected: quoteV1.PairETHUSDC, found: true},
		{name: "ETHUSDT", symbol: "BINANCE:ETHUSDT", expected: quoteV1.PairETHUSDT, found: true},
		{name: "ETHBTC", symbol: "BINANCE:ETHBTC", expected: quoteV1.PairETHBTC, found: true},
		{name: "unknown symbol", symbol: "BINANCE:BTCUSDT", found: false},
		{name: "bare pair is not a symbol", symbol: "ETHUSDT", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pair, ok := m.ToPair(tc.symbol)

			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, pair)
			if ok {
				assert.Equal(t, tc.symbol, m.ToProviderSymbol(pair))
			}
		})
	}
}

func TestMapper_AllSymbolsOrderAndImmutability(t *testing.T) {
	m := NewMapper()

	symbols := m.AllSymbols()
	assert.Equal(t, []string{"BINANCE:ETHUSDC", "BINANCE:ETHUSDT", "BINANCE:ETHBTC"}, symbols)

	symbols[0] = "mutated"
	assert.Equal(t, "BINANCE:ETHUSDC", m.AllSymbols()[0])

	assert.Equal(t, []quoteV1.Pair{quoteV1.PairETHUSDC, quoteV1.PairETHUSDT, quoteV1.PairETHBTC}, m.AllPairs())
	assert.True(t, m.IsKnownPair(quoteV1.PairETHBTC))
	assert.False(t, m.IsKnownPair("BTCUSDT"))
}

func TestMapper_CustomTable(t *testing.T) {
	m := NewMapper(Mapping{Pair: "BTCUSDT", Symbol: "BINANCE:BTCUSDT"})

	assert.Equal(t, []string{"BINANCE:BTCUSDT"}, m.AllSymbols())
	_, ok := m.ToPair("BINANCE:ETHUSDT")
	assert.False(t, ok)
}
