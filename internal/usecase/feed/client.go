package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	feedV1 "github.com/muhammadchandra19/quotestream/internal/domain/feed/v1"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/config"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
	"golang.org/x/time/rate"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// PlaceholderToken is the token shipped in sample env files. It is never dialed with.
const PlaceholderToken = "placeholder_token"

const (
	reasonNoToken     = "no valid API token"
	reasonMaxAttempts = "max reconnection attempts reached"
)

// dropWarnInterval is the minimum spacing of warnings about dropped messages.
const dropWarnInterval = 10 * time.Second

type connState int

const (
	connStateNone connState = iota
	connStateDialing
	connStateOpen
)

// Option customizes a Client.
type Option func(*Client)

// WithJitter replaces the source of the [0, 1) jitter used by reconnect backoff.
func WithJitter(fn func() float64) Option {
	return func(c *Client) {
		c.jitter = fn
	}
}

// WithHTTPHeader adds headers to every dial.
func WithHTTPHeader(key, value string) Option {
	return func(c *Client) {
		if c.dialOptions.HTTPHeader == nil {
			c.dialOptions.HTTPHeader = make(map[string][]string)
		}
		c.dialOptions.HTTPHeader.Add(key, value)
	}
}

// Client keeps one upstream trade feed connection alive and turns it into an
// ordered stream of feed events.
type Client struct {
	cfg         config.FeedConfig
	mapper      feedV1.SymbolMapper
	logger      logger.Interface
	jitter      func() float64
	dialOptions *websocket.DialOptions

	events chan feedV1.Event
	done   chan struct{}
	wg     sync.WaitGroup

	dropLimiter *rate.Limiter
	dropped     atomic.Uint64

	mu           sync.Mutex
	state        connState
	conn         *websocket.Conn
	connCancel   context.CancelFunc
	attempts     int
	started      bool
	shuttingDown bool
	terminal     bool

	shutdownOnce sync.Once
	closeOnce    sync.Once
}

var _ feedV1.Client = (*Client)(nil)

// NewClient creates a feed client. Nothing is dialed until Start.
func NewClient(cfg config.FeedConfig, mapper feedV1.SymbolMapper, log logger.Interface, opts ...Option) *Client {
	buffer := cfg.EventBuffer
	if buffer < 1 {
		buffer = 1
	}

	c := &Client{
		cfg:         cfg,
		mapper:      mapper,
		logger:      log.With(logger.NewField("component", "feed")),
		jitter:      rand.Float64,
		dialOptions: &websocket.DialOptions{},
		events:      make(chan feedV1.Event, buffer),
		done:        make(chan struct{}),
		dropLimiter: rate.NewLimiter(rate.Every(dropWarnInterval), 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Events returns the event stream. It is closed once Shutdown has completed.
func (c *Client) Events() <-chan feedV1.Event {
	return c.events
}

// Start validates the credential and starts the connection loop in the background.
// A missing or placeholder token is reported as a terminal error status and nothing is dialed.
func (c *Client) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started || c.shuttingDown {
		c.mu.Unlock()
		return
	}
	c.started = true

	if c.cfg.Token == "" || c.cfg.Token == PlaceholderToken {
		c.terminal = true
		c.mu.Unlock()

		c.logger.Error(errors.NewErrorDetails(reasonNoToken, string(errors.FeedConfigError), "token"))
		c.emitStatus(quoteV1.StatusError, reasonNoToken)
		return
	}

	c.wg.Add(1)
	c.mu.Unlock()

	go c.run(ctx)
}

// Shutdown stops reconnecting, cancels the heartbeat and closes the socket. No status
// is emitted once it has been called. The event stream is closed when the loop has exited.
func (c *Client) Shutdown(ctx context.Context) error {
	c.shutdownOnce.Do(func() {
		c.mu.Lock()
		c.shuttingDown = true
		conn := c.conn
		cancel := c.connCancel
		c.mu.Unlock()

		close(c.done)
		if cancel != nil {
			cancel()
		}
		if conn != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "shutdown")
		}
		c.logger.Info("feed client shutting down")
	})

	stopped := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(stopped)
	}()

	select {
	case <-stopped:
		c.closeOnce.Do(func() { close(c.events) })
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsConnected reports whether the socket is open.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state == connStateOpen
}

// Status is derived from the socket, independent of the emitted events.
func (c *Client) Status() quoteV1.ConnectionStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case connStateDialing:
		return quoteV1.StatusConnecting
	case connStateOpen:
		return quoteV1.StatusConnected
	default:
		return quoteV1.StatusDisconnected
	}
}

func (c *Client) run(ctx context.Context) {
	defer c.wg.Done()

	for {
		err := c.connectAndServe(ctx)
		if c.stopping(ctx) {
			return
		}
		c.reportDisconnect(err)

		delay, ok := c.nextDelay()
		if !ok {
			c.mu.Lock()
			c.terminal = true
			c.mu.Unlock()

			c.logger.Error(errors.NewErrorDetails(
				fmt.Sprintf("%s (%d)", reasonMaxAttempts, c.cfg.MaxReconnectAttempts),
				string(errors.FeedMaxReconnectError), "",
			))
			c.emitStatus(quoteV1.StatusError, reasonMaxAttempts)
			return
		}

		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-c.done:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

func (c *Client) stopping(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.shuttingDown
}

// nextDelay consumes one reconnect attempt. It reports false once the budget is spent.
func (c *Client) nextDelay() (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attempts >= c.cfg.MaxReconnectAttempts {
		return 0, false
	}

	delay := Backoff(c.attempts, c.cfg.BaseReconnectDelay, c.cfg.MaxReconnectDelay, c.cfg.JitterRatio, c.jitter())
	c.attempts++

	c.logger.Info("scheduling reconnect",
		logger.NewField("delay", delay.String()),
		logger.NewField("attempt", c.attempts),
		logger.NewField("maxAttempts", c.cfg.MaxReconnectAttempts),
	)

	return delay, true
}

func (c *Client) reportDisconnect(err error) {
	if err == nil {
		return
	}

	if code := websocket.CloseStatus(err); code != -1 {
		c.logger.Warn("feed connection closed", logger.NewField("code", int(code)))
		c.emitStatus(quoteV1.StatusDisconnected, fmt.Sprintf("Connection closed: %d", code))
		return
	}

	c.logger.Error(errors.TracerFromError(err), logger.NewField("code", errors.FeedConnectionError))
	c.emitStatus(quoteV1.StatusError, err.Error())
}

// connectAndServe dials, subscribes and reads until the socket fails. It returns nil only
// when the connection ended because of shutdown.
func (c *Client) connectAndServe(ctx context.Context) error {
	c.mu.Lock()
	if c.shuttingDown {
		c.mu.Unlock()
		return nil
	}
	connCtx, cancel := context.WithCancel(ctx)
	c.connCancel = cancel
	c.state = connStateDialing
	c.mu.Unlock()
	defer cancel()

	c.emitStatus(quoteV1.StatusConnecting, "")
	c.logger.Info("connecting to upstream feed", logger.NewField("url", c.cfg.WSURL))

	dialCtx, dialCancel := context.WithTimeout(connCtx, c.cfg.DialTimeout)
	conn, _, err := websocket.Dial(dialCtx, c.dialURL(), c.dialOptions)
	dialCancel()
	if err != nil {
		c.cleanup()
		return err
	}
	if c.cfg.ReadLimit > 0 {
		conn.SetReadLimit(c.cfg.ReadLimit)
	}

	c.mu.Lock()
	if c.shuttingDown {
		c.mu.Unlock()
		_ = conn.Close(websocket.StatusNormalClosure, "shutdown")
		c.cleanup()
		return nil
	}
	c.conn = conn
	c.state = connStateOpen
	c.attempts = 0
	c.mu.Unlock()
	defer c.cleanup()

	c.logger.Info("connected to upstream feed")
	c.emitStatus(quoteV1.StatusConnected, "")

	if err := c.subscribeAll(connCtx, conn); err != nil {
		return err
	}

	heartbeatDone := make(chan struct{})
	heartbeatStopped := make(chan struct{})
	go c.heartbeat(connCtx, conn, heartbeatDone, heartbeatStopped)
	defer func() {
		close(heartbeatDone)
		<-heartbeatStopped
	}()

	for {
		msgType, data, err := conn.Read(connCtx)
		if err != nil {
			return err
		}
		if msgType != websocket.MessageText {
			c.logger.Debug("dropping non-text message", logger.NewField("type", msgType.String()))
			continue
		}
		c.handleMessage(connCtx, conn, data)
	}
}

func (c *Client) dialURL() string {
	return fmt.Sprintf("%s?token=%s", c.cfg.WSURL, url.QueryEscape(c.cfg.Token))
}

func (c *Client) subscribeAll(ctx context.Context, conn *websocket.Conn) error {
	symbols := c.mapper.AllSymbols()
	for _, symbol := range symbols {
		if err := wsjson.Write(ctx, conn, subscribeMessage(symbol)); err != nil {
			return err
		}
	}

	c.logger.Info("subscribed to symbols",
		logger.NewField("count", len(symbols)),
		logger.NewField("symbols", symbols),
	)
	return nil
}

func (c *Client) heartbeat(ctx context.Context, conn *websocket.Conn, done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(c.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !c.IsConnected() {
				continue
			}
			if err := wsjson.Write(ctx, conn, OutboundMessage{Type: MessageTypePing}); err != nil {
				c.logger.Warn("failed to send heartbeat", logger.NewField("error", err.Error()))
			}
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) handleMessage(ctx context.Context, conn *websocket.Conn, data []byte) {
	var msg InboundMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.drop("failed to parse feed message",
			logger.NewField("error", err.Error()),
			logger.NewField("data", string(data)),
		)
		return
	}

	switch msg.Type {
	case MessageTypeTrade:
		c.handleTrades(msg.Data)
	case MessageTypePing:
		if err := wsjson.Write(ctx, conn, OutboundMessage{Type: MessageTypePong}); err != nil {
			c.logger.Warn("failed to answer ping", logger.NewField("error", err.Error()))
		}
	case MessageTypeError:
		c.logger.Warn("upstream reported an error", logger.NewField("msg", msg.Msg))
	default:
		c.drop("dropping unrecognized feed message", logger.NewField("type", msg.Type))
	}
}

// Dropped returns how many upstream messages were discarded as malformed or unrecognized.
func (c *Client) Dropped() uint64 {
	return c.dropped.Load()
}

// drop counts a discarded message. Warnings are rate limited; droppedTotal
// covers the suppressed ones.
func (c *Client) drop(message string, fields ...logger.Field) {
	total := c.dropped.Add(1)
	if !c.dropLimiter.Allow() {
		return
	}

	c.logger.Warn(message, append(fields,
		logger.NewField("code", errors.FeedMalformedMessageError),
		logger.NewField("droppedTotal", total),
	)...)
}

func (c *Client) handleTrades(trades []TradeData) {
	for _, trade := range trades {
		pair, ok := c.mapper.ToPair(trade.Symbol)
		if !ok {
			continue
		}

		c.emit(feedV1.TickEvent(quoteV1.Tick{
			Pair:  pair,
			Price: trade.Price,
			Ts:    trade.Timestamp,
		}))
	}
}

// cleanup forgets the socket. Safe to call any number of times.
func (c *Client) cleanup() {
	c.mu.Lock()
	conn := c.conn
	c.conn = nil
	c.state = connStateNone
	c.connCancel = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}
}

func (c *Client) emitStatus(status quoteV1.ConnectionStatus, reason string) {
	c.mu.Lock()
	shuttingDown := c.shuttingDown
	c.mu.Unlock()

	if shuttingDown {
		return
	}
	c.emit(feedV1.StatusEvent(status, reason))
}

func (c *Client) emit(event feedV1.Event) {
	select {
	case c.events <- event:
	case <-c.done:
	}
}
