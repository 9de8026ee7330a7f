package symbol

import (
	feedV1 "github.com/muhammadchandra19/quotestream/internal/domain/feed/v1"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
)

// Mapping binds an internal pair to its provider symbol.
type Mapping struct {
	Pair   quoteV1.Pair
	Symbol string
}

// DefaultMappings is the table of pairs streamed from Binance through the provider.
var DefaultMappings = []Mapping{
	{Pair: quoteV1.PairETHUSDC, Symbol: "BINANCE:ETHUSDC"},
	{Pair: quoteV1.PairETHUSDT, Symbol: "BINANCE:ETHUSDT"},
	{Pair: quoteV1.PairETHBTC, Symbol: "BINANCE:ETHBTC"},
}

// Mapper is immutable after construction and safe for concurrent use.
type Mapper struct {
	toSymbol map[quoteV1.Pair]string
	toPair   map[string]quoteV1.Pair
	symbols  []string
	pairs    []quoteV1.Pair
}

var _ feedV1.SymbolMapper = (*Mapper)(nil)

// NewMapper builds a mapper from mappings, keeping their order.
func NewMapper(mappings ...Mapping) *Mapper {
	if len(mappings) == 0 {
		mappings = DefaultMappings
	}

	m := &Mapper{
		toSymbol: make(map[quoteV1.Pair]string, len(mappings)),
		toPair:   make(map[string]quoteV1.Pair, len(mappings)),
		symbols:  make([]string, 0, len(mappings)),
		pairs:    make([]quoteV1.Pair, 0, len(mappings)),
	}

	for _, mapping := range mappings {
		m.toSymbol[mapping.Pair] = mapping.Symbol
		m.toPair[mapping.Symbol] = mapping.Pair
		m.symbols = append(m.symbols, mapping.Symbol)
		m.pairs = append(m.pairs, mapping.Pair)
	}

	return m
}

// ToProviderSymbol returns the provider symbol for pair.
func (m *Mapper) ToProviderSymbol(pair quoteV1.Pair) string {
	return m.toSymbol[pair]
}

// ToPair returns the pair for a provider symbol. Unknown symbols report false.
func (m *Mapper) ToPair(symbol string) (quoteV1.Pair, bool) {
	pair, ok := m.toPair[symbol]
	return pair, ok
}

// AllSymbols returns the provider symbols in table order.
func (m *Mapper) AllSymbols() []string {
	out := make([]string, len(m.symbols))
	copy(out, m.symbols)
	return out
}

// AllPairs returns the internal pairs in table order.
func (m *Mapper) AllPairs() []quoteV1.Pair {
	out := make([]quoteV1.Pair, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// IsKnownPair reports whether pair is part of the table.
func (m *Mapper) IsKnownPair(pair quoteV1.Pair) bool {
	_, ok := m.toSymbol[pair]
	return ok
}
