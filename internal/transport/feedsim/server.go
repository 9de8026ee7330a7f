// Package feedsim serves a local stand-in for the upstream trade feed. It speaks the
// same subscribe / trade / ping protocol and streams random-walk prices.
package feedsim

import (
	"context"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/muhammadchandra19/quotestream/internal/usecase/feed"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// DefaultSeeds are the starting prices of the simulated symbols.
var DefaultSeeds = map[string]float64{
	"BINANCE:ETHUSDC": 3450.25,
	"BINANCE:ETHUSDT": 3451.10,
	"BINANCE:ETHBTC":  0.05234,
}

// Config configures the simulator.
type Config struct {
	// Token, when set, must match the token query parameter.
	Token      string
	Interval   time.Duration
	Volatility float64
	Seeds      map[string]float64
}

// Server is an http.Handler accepting feed client connections.
type Server struct {
	cfg    Config
	logger logger.Interface
	random func() float64
	now    func() time.Time
}

// NewServer creates a new Server.
func NewServer(cfg Config, log logger.Interface) *Server {
	if cfg.Interval <= 0 {
		cfg.Interval = 250 * time.Millisecond
	}
	if cfg.Seeds == nil {
		cfg.Seeds = DefaultSeeds
	}

	return &Server{
		cfg:    cfg,
		logger: log,
		random: rand.Float64,
		now:    time.Now,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Token != "" && r.URL.Query().Get("token") != s.cfg.Token {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn("accept failed", logger.NewField("error", err.Error()))
		return
	}
	defer conn.CloseNow()

	sess := &session{walk: newPriceWalk(s.cfg.Seeds, s.cfg.Volatility, s.random)}
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go func() {
		defer cancel()
		s.readLoop(ctx, conn, sess)
	}()

	s.logger.Info("feed client connected", logger.NewField("remoteAddr", r.RemoteAddr))

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("feed client disconnected", logger.NewField("remoteAddr", r.RemoteAddr))
			return
		case <-ticker.C:
			trades := sess.trades(s.now().UnixMilli())
			if len(trades) == 0 {
				continue
			}
			if err := wsjson.Write(ctx, conn, feed.InboundMessage{Type: feed.MessageTypeTrade, Data: trades}); err != nil {
				return
			}
		}
	}
}

func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, sess *session) {
	for {
		var msg feed.OutboundMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			return
		}

		switch msg.Type {
		case feed.MessageTypeSubscribe:
			if !sess.subscribe(msg.Symbol) {
				_ = wsjson.Write(ctx, conn, feed.InboundMessage{Type: feed.MessageTypeError, Msg: "unknown symbol " + msg.Symbol})
				continue
			}
			s.logger.Debug("subscribed", logger.NewField("symbol", msg.Symbol))
		case feed.MessageTypePing:
			if err := wsjson.Write(ctx, conn, feed.InboundMessage{Type: feed.MessageTypePong}); err != nil {
				return
			}
		}
	}
}

type session struct {
	mu         sync.Mutex
	walk       *priceWalk
	subscribed []string
}

func (s *session) subscribe(symbol string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.walk.has(symbol) {
		return false
	}
	for _, existing := range s.subscribed {
		if existing == symbol {
			return true
		}
	}
	s.subscribed = append(s.subscribed, symbol)
	return true
}

func (s *session) trades(ts int64) []feed.TradeData {
	s.mu.Lock()
	defer s.mu.Unlock()

	trades := make([]feed.TradeData, 0, len(s.subscribed))
	for _, symbol := range s.subscribed {
		trades = append(trades, feed.TradeData{
			Symbol:    symbol,
			Price:     s.walk.next(symbol),
			Timestamp: ts,
			Volume:    s.walk.volume(),
		})
	}
	return trades
}
