package v1

import (
	"context"

	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Client owns the single upstream feed connection.
type Client interface {
	// Start begins connecting in the background. It returns immediately.
	Start(ctx context.Context)
	// Events is closed once the client has fully stopped.
	Events() <-chan Event
	// Shutdown stops reconnecting, cancels timers and closes the socket.
	Shutdown(ctx context.Context) error
	IsConnected() bool
	Status() quoteV1.ConnectionStatus
}

// SymbolMapper translates between internal pairs and provider symbols.
type SymbolMapper interface {
	ToProviderSymbol(pair quoteV1.Pair) string
	ToPair(symbol string) (quoteV1.Pair, bool)
	AllSymbols() []string
}
