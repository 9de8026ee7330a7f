package broadcast

import (
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// Subscriber is a connected consumer of broadcast frames.
type Subscriber interface {
	ID() string
	// Send queues data without blocking and reports whether it was accepted.
	Send(data []byte) bool
	Close()
}

// Hub fans frames out to every registered subscriber.
type Hub interface {
	Register(sub Subscriber)
	Unregister(id string)
	BroadcastTick(tick quoteV1.Tick)
	BroadcastAverage(snapshot quoteV1.HourlySnapshot)
	BroadcastStatus(status quoteV1.StatusMessage)
	SubscriberCount() int
	Close()
}
