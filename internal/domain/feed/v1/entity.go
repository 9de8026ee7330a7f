package v1

import (
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
)

// EventKind discriminates feed events.
type EventKind int

const (
	// EventTick carries a normalized trade.
	EventTick EventKind = iota + 1
	// EventStatus carries a connection status change.
	EventStatus
)

// Event is one item of the feed client's ordered event stream. Exactly one of
// Tick or Status is meaningful, chosen by Kind.
type Event struct {
	Kind   EventKind
	Tick   quoteV1.Tick
	Status quoteV1.StatusMessage
}

// TickEvent wraps a tick.
func TickEvent(tick quoteV1.Tick) Event {
	return Event{Kind: EventTick, Tick: tick}
}

// StatusEvent wraps a status change.
func StatusEvent(status quoteV1.ConnectionStatus, reason string) Event {
	return Event{Kind: EventStatus, Status: quoteV1.StatusMessage{Status: status, Reason: reason}}
}
