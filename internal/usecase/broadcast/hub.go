package broadcast

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	broadcastDomain "github.com/muhammadchandra19/quotestream/internal/domain/broadcast"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
)

// Hub fans envelopes out to every registered subscriber. Delivery is fire and forget:
// a subscriber whose queue is full misses the frame.
type Hub struct {
	logger logger.Interface

	mu          sync.RWMutex
	subscribers map[string]broadcastDomain.Subscriber
	closed      bool

	dropped atomic.Uint64
}

var _ broadcastDomain.Hub = (*Hub)(nil)

// NewHub creates a new Hub.
func NewHub(log logger.Interface) *Hub {
	return &Hub{
		logger:      log.With(logger.NewField("component", "hub")),
		subscribers: make(map[string]broadcastDomain.Subscriber),
	}
}

// Register greets sub with a connected status and then adds it, so the greeting is
// always its first frame. A subscriber registered under an existing ID replaces the
// previous one, which is closed.
func (h *Hub) Register(sub broadcastDomain.Subscriber) {
	greeting, err := encode(quoteV1.MessageTypeStatus, quoteV1.StatusMessage{Status: quoteV1.StatusConnected})
	if err != nil {
		h.logger.Error(err)
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		sub.Close()
		return
	}
	if greeting != nil && !sub.Send(greeting) {
		h.dropped.Add(1)
	}
	previous, replaced := h.subscribers[sub.ID()]
	h.subscribers[sub.ID()] = sub
	count := len(h.subscribers)
	h.mu.Unlock()

	if replaced && previous != sub {
		previous.Close()
	}

	h.logger.Info("subscriber connected",
		logger.NewField("subscriberId", sub.ID()),
		logger.NewField("subscribers", count),
	)
}

// Unregister removes and closes the subscriber with id. Unknown ids are ignored.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	delete(h.subscribers, id)
	count := len(h.subscribers)
	h.mu.Unlock()

	if !ok {
		return
	}
	sub.Close()

	h.logger.Info("subscriber disconnected",
		logger.NewField("subscriberId", id),
		logger.NewField("subscribers", count),
	)
}

// BroadcastTick sends a tick envelope to every subscriber.
func (h *Hub) BroadcastTick(tick quoteV1.Tick) {
	h.broadcast(quoteV1.MessageTypeTick, tick)
}

// BroadcastAverage sends an avg envelope to every subscriber.
func (h *Hub) BroadcastAverage(snapshot quoteV1.HourlySnapshot) {
	h.broadcast(quoteV1.MessageTypeAverage, snapshot)
}

// BroadcastStatus sends a status envelope to every subscriber.
func (h *Hub) BroadcastStatus(status quoteV1.StatusMessage) {
	h.broadcast(quoteV1.MessageTypeStatus, status)
}

// SubscriberCount returns the number of registered subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}

// Dropped returns how many frames were not accepted by a subscriber queue.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close closes every subscriber. Later registrations are closed immediately.
func (h *Hub) Close() {
	h.mu.Lock()
	subscribers := h.subscribers
	h.subscribers = make(map[string]broadcastDomain.Subscriber)
	h.closed = true
	h.mu.Unlock()

	for _, sub := range subscribers {
		sub.Close()
	}
}

func (h *Hub) broadcast(msgType quoteV1.MessageType, payload any) {
	data, err := encode(msgType, payload)
	if err != nil {
		h.logger.Error(err, logger.NewField("type", msgType))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, sub := range h.subscribers {
		if !sub.Send(data) {
			h.dropped.Add(1)
			h.logger.Debug("subscriber queue full, frame dropped",
				logger.NewField("subscriberId", id),
				logger.NewField("type", msgType),
			)
		}
	}
}

func encode(msgType quoteV1.MessageType, payload any) ([]byte, error) {
	data, err := json.Marshal(quoteV1.Envelope{Type: msgType, Payload: payload})
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return data, nil
}
