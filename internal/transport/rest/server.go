package rest

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/muhammadchandra19/quotestream/pkg/config"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
)

// Server is the HTTP listener of the service.
type Server struct {
	server *http.Server
	logger logger.Interface
}

// NewServer creates a Server listening on cfg.Port.
func NewServer(cfg config.AppConfig, handler http.Handler, log logger.Interface) *Server {
	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: log,
	}
}

// Serve accepts connections on l until Shutdown. The returned channel yields
// at most one error and is closed when serving stops.
func (s *Server) Serve(l net.Listener) <-chan error {
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)

		s.logger.Info("http server listening", logger.NewField("addr", l.Addr().String()))
		if err := s.server.Serve(l); err != nil && !stdErrors.Is(err, http.ErrServerClosed) {
			s.logger.Error(errors.TracerFromError(err), logger.NewField("action", "http serve"))
			errCh <- err
		}
	}()

	return errCh
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() (<-chan error, error) {
	l, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return nil, errors.NewTracer("http_listen_error").Wrap(err)
	}
	return s.Serve(l), nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
// Hijacked websocket connections are not tracked and must be closed by the hub.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
