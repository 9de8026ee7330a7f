package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	feedV1 "github.com/muhammadchandra19/quotestream/internal/domain/feed/v1"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/internal/usecase/symbol"
	"github.com/muhammadchandra19/quotestream/pkg/config"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	loggerMock "github.com/muhammadchandra19/quotestream/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func testConfig(token, wsURL string) config.FeedConfig {
	return config.FeedConfig{
		WSURL:                wsURL,
		Token:                token,
		HeartbeatInterval:    time.Hour,
		BaseReconnectDelay:   10 * time.Millisecond,
		MaxReconnectDelay:    50 * time.Millisecond,
		MaxReconnectAttempts: 10,
		JitterRatio:          0.1,
		DialTimeout:          2 * time.Second,
		ReadLimit:            1 << 20,
		EventBuffer:          64,
	}
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func nextEvent(t *testing.T, events <-chan feedV1.Event) feedV1.Event {
	t.Helper()

	select {
	case ev, ok := <-events:
		require.True(t, ok, "event stream closed")
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for feed event")
	}
	return feedV1.Event{}
}

func expectStatus(t *testing.T, events <-chan feedV1.Event, status quoteV1.ConnectionStatus) feedV1.Event {
	t.Helper()

	ev := nextEvent(t, events)
	require.Equal(t, feedV1.EventStatus, ev.Kind)
	require.Equal(t, status, ev.Status.Status, "reason: %s", ev.Status.Reason)
	return ev
}

func readSubscriptions(ctx context.Context, t *testing.T, conn *websocket.Conn, n int) []string {
	symbols := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var msg OutboundMessage
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			t.Errorf("read subscribe: %v", err)
			return symbols
		}
		assert.Equal(t, MessageTypeSubscribe, msg.Type)
		symbols = append(symbols, msg.Symbol)
	}
	return symbols
}

func drainUntilClosed(ctx context.Context, conn *websocket.Conn) {
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

func TestClient_InvalidToken(t *testing.T) {
	testCases := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "placeholder token", token: PlaceholderToken},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var dials atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				dials.Add(1)
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			c := NewClient(testConfig(tc.token, wsURL(srv)), symbol.NewMapper(), logger.NewNop())
			c.Start(context.Background())

			ev := expectStatus(t, c.Events(), quoteV1.StatusError)
			assert.Equal(t, "no valid API token", ev.Status.Reason)
			assert.False(t, c.IsConnected())
			assert.Equal(t, quoteV1.StatusDisconnected, c.Status())

			require.NoError(t, c.Shutdown(context.Background()))
			_, ok := <-c.Events()
			assert.False(t, ok)
			assert.Equal(t, int32(0), dials.Load())
		})
	}
}

func TestClient_StreamsTicks(t *testing.T) {
	subscribed := make(chan []string, 1)
	pong := make(chan OutboundMessage, 1)
	var gotToken atomic.Value

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken.Store(r.URL.Query().Get("token"))
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			t.Errorf("accept: %v", err)
			return
		}
		ctx := r.Context()

		subscribed <- readSubscriptions(ctx, t, conn, 3)

		_ = wsjson.Write(ctx, conn, InboundMessage{Type: MessageTypeTrade, Data: []TradeData{
			{Symbol: "BINANCE:ETHUSDT", Price: 3000, Timestamp: 1_700_000_000_000},
			{Symbol: "BINANCE:DOGEUSDT", Price: 0.1, Timestamp: 1_700_000_000_001},
			{Symbol: "BINANCE:ETHBTC", Price: 0.05, Timestamp: 1_700_000_000_002},
		}})
		_ = conn.Write(ctx, websocket.MessageText, []byte("not json"))
		_ = conn.Write(ctx, websocket.MessageText, []byte(`{"type":"news"}`))
		_ = wsjson.Write(ctx, conn, InboundMessage{Type: MessageTypePing})

		var reply OutboundMessage
		if err := wsjson.Read(ctx, conn, &reply); err == nil {
			pong <- reply
		}

		_ = wsjson.Write(ctx, conn, InboundMessage{Type: MessageTypeTrade, Data: []TradeData{
			{Symbol: "BINANCE:ETHUSDC", Price: 3001.5, Timestamp: 1_700_000_000_003},
		}})

		drainUntilClosed(ctx, conn)
	}))
	defer srv.Close()

	c := NewClient(testConfig("secret token", wsURL(srv)), symbol.NewMapper(), logger.NewNop())
	c.Start(context.Background())

	expectStatus(t, c.Events(), quoteV1.StatusConnecting)
	expectStatus(t, c.Events(), quoteV1.StatusConnected)
	assert.True(t, c.IsConnected())
	assert.Equal(t, quoteV1.StatusConnected, c.Status())

	expectedTicks := []quoteV1.Tick{
		{Pair: quoteV1.PairETHUSDT, Price: 3000, Ts: 1_700_000_000_000},
		{Pair: quoteV1.PairETHBTC, Price: 0.05, Ts: 1_700_000_000_002},
		{Pair: quoteV1.PairETHUSDC, Price: 3001.5, Ts: 1_700_000_000_003},
	}
	for _, expected := range expectedTicks {
		ev := nextEvent(t, c.Events())
		require.Equal(t, feedV1.EventTick, ev.Kind)
		assert.Equal(t, expected, ev.Tick)
	}

	assert.Equal(t, []string{"BINANCE:ETHUSDC", "BINANCE:ETHUSDT", "BINANCE:ETHBTC"}, <-subscribed)
	assert.Equal(t, OutboundMessage{Type: MessageTypePong}, <-pong)
	assert.Equal(t, "secret token", gotToken.Load())

	require.NoError(t, c.Shutdown(context.Background()))
	for ev := range c.Events() {
		assert.NotEqual(t, feedV1.EventStatus, ev.Kind, "status emitted after shutdown: %+v", ev.Status)
	}
	assert.False(t, c.IsConnected())
}

func TestClient_Heartbeat(t *testing.T) {
	pings := make(chan OutboundMessage, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		ctx := r.Context()
		readSubscriptions(ctx, t, conn, 3)

		var msg OutboundMessage
		if err := wsjson.Read(ctx, conn, &msg); err == nil {
			pings <- msg
		}
		drainUntilClosed(ctx, conn)
	}))
	defer srv.Close()

	cfg := testConfig("token", wsURL(srv))
	cfg.HeartbeatInterval = 20 * time.Millisecond

	c := NewClient(cfg, symbol.NewMapper(), logger.NewNop())
	c.Start(context.Background())

	select {
	case msg := <-pings:
		assert.Equal(t, OutboundMessage{Type: MessageTypePing}, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("no heartbeat received")
	}

	require.NoError(t, c.Shutdown(context.Background()))
}

func TestClient_ReconnectsAfterClose(t *testing.T) {
	var dials atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := dials.Add(1)
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		ctx := r.Context()
		readSubscriptions(ctx, t, conn, 3)

		if n == 1 {
			_ = conn.Close(websocket.StatusGoingAway, "restart")
			return
		}
		drainUntilClosed(ctx, conn)
	}))
	defer srv.Close()

	c := NewClient(testConfig("token", wsURL(srv)), symbol.NewMapper(), logger.NewNop(), WithJitter(func() float64 { return 0 }))
	c.Start(context.Background())

	expectStatus(t, c.Events(), quoteV1.StatusConnecting)
	expectStatus(t, c.Events(), quoteV1.StatusConnected)
	ev := expectStatus(t, c.Events(), quoteV1.StatusDisconnected)
	assert.Equal(t, "Connection closed: 1001", ev.Status.Reason)
	expectStatus(t, c.Events(), quoteV1.StatusConnecting)
	expectStatus(t, c.Events(), quoteV1.StatusConnected)

	assert.Equal(t, int32(2), dials.Load())
	require.NoError(t, c.Shutdown(context.Background()))
}

func TestClient_ReconnectBudgetExhausted(t *testing.T) {
	testCases := []struct {
		name        string
		maxAttempts int
	}{
		{name: "small budget", maxAttempts: 2},
		{name: "default budget", maxAttempts: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var dials atomic.Int32

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				dials.Add(1)
				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			cfg := testConfig("token", wsURL(srv))
			cfg.BaseReconnectDelay = time.Millisecond
			cfg.MaxReconnectDelay = time.Millisecond
			cfg.MaxReconnectAttempts = tc.maxAttempts

			c := NewClient(cfg, symbol.NewMapper(), logger.NewNop())
			c.Start(context.Background())

			// the first dial plus one per reconnect attempt
			for i := 0; i < tc.maxAttempts+1; i++ {
				expectStatus(t, c.Events(), quoteV1.StatusConnecting)
				ev := expectStatus(t, c.Events(), quoteV1.StatusError)
				assert.NotEqual(t, "max reconnection attempts reached", ev.Status.Reason)
			}

			ev := expectStatus(t, c.Events(), quoteV1.StatusError)
			assert.Equal(t, "max reconnection attempts reached", ev.Status.Reason)

			select {
			case ev := <-c.Events():
				t.Fatalf("unexpected event after terminal error: %+v", ev)
			case <-time.After(100 * time.Millisecond):
			}

			assert.Equal(t, int32(tc.maxAttempts+1), dials.Load())
			assert.Equal(t, quoteV1.StatusDisconnected, c.Status())
			require.NoError(t, c.Shutdown(context.Background()))
		})
	}
}

func TestClient_ShutdownCancelsPendingReconnect(t *testing.T) {
	var dials atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dials.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := testConfig("token", wsURL(srv))
	cfg.BaseReconnectDelay = time.Hour
	cfg.MaxReconnectDelay = time.Hour

	c := NewClient(cfg, symbol.NewMapper(), logger.NewNop())
	c.Start(context.Background())

	expectStatus(t, c.Events(), quoteV1.StatusConnecting)
	expectStatus(t, c.Events(), quoteV1.StatusError)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, c.Shutdown(ctx))

	_, ok := <-c.Events()
	assert.False(t, ok)
	assert.Equal(t, int32(1), dials.Load())

	// Start after shutdown is a no-op.
	c.Start(context.Background())
	assert.Equal(t, int32(1), dials.Load())
}

func TestClient_DropWarningsAreRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := loggerMock.NewMockInterface(ctrl)
	log.EXPECT().With(gomock.Any()).Return(log)
	log.EXPECT().Warn("failed to parse feed message", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	c := NewClient(testConfig("token", "ws://127.0.0.1:1"), symbol.NewMapper(), log)

	for i := 0; i < 3; i++ {
		c.handleMessage(context.Background(), nil, []byte("{not json"))
	}
	c.handleMessage(context.Background(), nil, []byte(`{"type":"news"}`))

	assert.Equal(t, uint64(4), c.Dropped())
}

func TestBackoff(t *testing.T) {
	base := 500 * time.Millisecond
	maxDelay := 30 * time.Second

	testCases := []struct {
		name     string
		attempt  int
		jitter   float64
		expected time.Duration
	}{
		{name: "first attempt without jitter", attempt: 0, jitter: 0, expected: 500 * time.Millisecond},
		{name: "first attempt with full jitter", attempt: 0, jitter: 1, expected: 550 * time.Millisecond},
		{name: "fourth attempt", attempt: 3, jitter: 0, expected: 4 * time.Second},
		{name: "capped", attempt: 6, jitter: 0, expected: 30 * time.Second},
		{name: "capped with jitter", attempt: 6, jitter: 0.5, expected: 31500 * time.Millisecond},
		{name: "far past the cap", attempt: 2000, jitter: 0, expected: 30 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Backoff(tc.attempt, base, maxDelay, 0.1, tc.jitter))
		})
	}
}

func TestBackoff_WithinBounds(t *testing.T) {
	base := 500 * time.Millisecond
	maxDelay := 30 * time.Second

	for attempt := 0; attempt < 10; attempt++ {
		d := Backoff(attempt, base, maxDelay, 0, 0)
		got := Backoff(attempt, base, maxDelay, 0.1, 0.999)

		assert.GreaterOrEqual(t, got, d)
		assert.LessOrEqual(t, got, d+d/10)
	}
}
