package rest

import (
	"net/http"

	"github.com/muhammadchandra19/quotestream/internal/transport/ws"
	"github.com/muhammadchandra19/quotestream/pkg/httplib/healthcheck"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
)

// Dependencies are the handlers mounted by NewRouter.
type Dependencies struct {
	Quotes      *QuoteHandler
	Subscribers http.Handler
	Health      healthcheck.HealthCheck
	CORSOrigins []string
	Logger      logger.Interface
}

// NewRouter mounts the REST API, the subscriber websocket and the health endpoints.
func NewRouter(deps Dependencies) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/averages", deps.Quotes.Averages)
	mux.HandleFunc("GET /api/last", deps.Quotes.Last)
	if deps.Subscribers != nil {
		mux.Handle("GET "+ws.Path, deps.Subscribers)
	}

	handler := deps.Health.Handler(mux)
	handler = CORS(deps.CORSOrigins, handler)
	return RequestID(deps.Logger, handler)
}
