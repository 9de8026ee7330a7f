package ws

import (
	"io"
	"net"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
)

const maxFrameSize = 64 * 1024

// subscriber adapts one websocket connection to the hub. Frames queue on send and
// are written by writePump; readPump only watches for close and answers pings.
type subscriber struct {
	id     string
	conn   net.Conn
	logger logger.Interface

	writeTimeout time.Duration
	pingInterval time.Duration

	send    chan []byte
	mu      sync.Mutex
	closed  bool
	writeMu sync.Mutex
}

func newSubscriber(id string, conn net.Conn, queueSize int, writeTimeout, pingInterval time.Duration, log logger.Interface) *subscriber {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &subscriber{
		id:           id,
		conn:         conn,
		logger:       log,
		writeTimeout: writeTimeout,
		pingInterval: pingInterval,
		send:         make(chan []byte, queueSize),
	}
}

func (s *subscriber) ID() string { return s.id }

// Send queues data and reports false when the queue is full or the subscriber is closed.
func (s *subscriber) Send(data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.send <- data:
		return true
	default:
		return false
	}
}

// Close stops accepting frames. writePump sends a close frame and closes the connection.
func (s *subscriber) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	close(s.send)
}

func (s *subscriber) writePump() {
	var pings <-chan time.Time
	if s.pingInterval > 0 {
		ticker := time.NewTicker(s.pingInterval)
		defer ticker.Stop()
		pings = ticker.C
	}
	defer s.conn.Close()

	for {
		select {
		case msg, ok := <-s.send:
			if !ok {
				_ = s.write(func(w io.Writer) error {
					_, err := w.Write(ws.CompiledClose)
					return err
				})
				return
			}
			if err := s.write(func(w io.Writer) error { return wsutil.WriteServerText(w, msg) }); err != nil {
				s.logger.Debug("subscriber write failed",
					logger.NewField("subscriberId", s.id),
					logger.NewField("error", err.Error()),
				)
				return
			}

		case <-pings:
			if err := s.write(func(w io.Writer) error { return wsutil.WriteServerMessage(w, ws.OpPing, nil) }); err != nil {
				return
			}
		}
	}
}

// readPump blocks until the peer closes, a read fails or no frame arrives within
// two ping intervals.
func (s *subscriber) readPump() {
	defer s.conn.Close()

	for {
		if s.pingInterval > 0 {
			_ = s.conn.SetReadDeadline(time.Now().Add(2 * s.pingInterval))
		}

		header, err := ws.ReadHeader(s.conn)
		if err != nil {
			return
		}
		if header.Length > maxFrameSize {
			s.logger.Warn("subscriber frame too large",
				logger.NewField("subscriberId", s.id),
				logger.NewField("size", header.Length),
			)
			return
		}

		payload := make([]byte, header.Length)
		if _, err := io.ReadFull(s.conn, payload); err != nil {
			return
		}
		if header.Masked {
			ws.Cipher(payload, header.Mask, 0)
		}

		switch header.OpCode {
		case ws.OpClose:
			_ = s.write(func(w io.Writer) error {
				return ws.WriteFrame(w, ws.NewCloseFrame(ws.NewCloseFrameBody(ws.StatusNormalClosure, "")))
			})
			return
		case ws.OpPing:
			_ = s.write(func(w io.Writer) error { return ws.WriteFrame(w, ws.NewPongFrame(payload)) })
		}
	}
}

// write serializes frame writes from both pumps.
func (s *subscriber) write(fn func(w io.Writer) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if s.writeTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	return fn(s.conn)
}
