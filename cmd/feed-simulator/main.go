package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muhammadchandra19/quotestream/internal/transport/feedsim"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
)

func main() {
	var (
		addr       = flag.String("addr", ":8090", "Listen address")
		token      = flag.String("token", "", "Token clients must present (empty accepts any)")
		interval   = flag.Duration("interval", 250*time.Millisecond, "Delay between trade batches")
		volatility = flag.Float64("volatility", 0.0005, "Maximum relative price move per trade")
		level      = flag.String("log-level", "info", "Log level")
	)
	flag.Parse()

	l, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(*level)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer l.Sync()

	srv := &http.Server{
		Addr: *addr,
		Handler: feedsim.NewServer(feedsim.Config{
			Token:      *token,
			Interval:   *interval,
			Volatility: *volatility,
		}, l),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l.Info("feed simulator listening",
		logger.NewField("addr", *addr),
		logger.NewField("interval", interval.String()),
	)
	if err := run(ctx, srv); err != nil {
		l.Error(err, logger.NewField("action", "serve feed simulator"))
		os.Exit(1)
	}

	l.Info("feed simulator stopped")
}

// run serves srv until ctx is done or the listener fails.
func run(ctx context.Context, srv *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
