package bootstrap

import (
	"time"

	"github.com/muhammadchandra19/quotestream/internal/transport/rest"
	"github.com/muhammadchandra19/quotestream/internal/transport/ws"
	"github.com/muhammadchandra19/quotestream/pkg/httplib/healthcheck"
)

const readinessTimeout = 5 * time.Second

// Transport holds the inbound adapters.
type Transport struct {
	Subscribers *ws.Handler
	Quotes      *rest.QuoteHandler
	HTTPServer  *rest.Server
}

// registerTransport registers the transport.
func (b *Bootstrap) registerTransport() {
	b.Transport.Subscribers = ws.NewHandler(b.Usecase.Hub, b.Config.Hub, b.Logger)
	b.Transport.Quotes = rest.NewQuoteHandler(b.Usecase.QuoteUsecase, b.Usecase.SymbolMapper, b.Logger)

	var origins []string
	if b.Config.App.IsDevelopment() {
		origins = b.Config.App.CORSOrigins
	}

	router := rest.NewRouter(rest.Dependencies{
		Quotes:      b.Transport.Quotes,
		Subscribers: b.Transport.Subscribers,
		Health: healthcheck.New(readinessTimeout,
			rest.DatabaseCheck(b.PostgreSQL),
			rest.FeedCheck(b.Usecase.FeedClient),
			rest.SystemCheck(b.Usecase.Orchestrator),
		),
		CORSOrigins: origins,
		Logger:      b.Logger,
	})

	b.Transport.HTTPServer = rest.NewServer(b.Config.App, router, b.Logger)
}
