package orchestrator

import (
	"context"
	"math/rand/v2"
	"sync"

	aggregatorDomain "github.com/muhammadchandra19/quotestream/internal/domain/aggregator"
	broadcastDomain "github.com/muhammadchandra19/quotestream/internal/domain/broadcast"
	feedV1 "github.com/muhammadchandra19/quotestream/internal/domain/feed/v1"
	quoteV1 "github.com/muhammadchandra19/quotestream/internal/domain/quote/v1"
	"github.com/muhammadchandra19/quotestream/pkg/errors"
	"github.com/muhammadchandra19/quotestream/pkg/logger"
)

// throughputSampleRate is the share of ticks that produce a throughput debug log.
const throughputSampleRate = 0.001

// FeedStatus is the upstream part of SystemStatus.
type FeedStatus struct {
	Status    quoteV1.ConnectionStatus `json:"status"`
	Connected bool                     `json:"connected"`
}

// WebSocketStatus is the subscriber part of SystemStatus.
type WebSocketStatus struct {
	Clients int `json:"clients"`
}

// AggregatorStatus is the live hours part of SystemStatus.
type AggregatorStatus struct {
	CurrentHours []quoteV1.HourlySnapshot `json:"currentHours"`
}

// SystemStatus is the composite view served to probes.
type SystemStatus struct {
	Feed       FeedStatus       `json:"feed"`
	WebSocket  WebSocketStatus  `json:"websocket"`
	Aggregator AggregatorStatus `json:"aggregator"`
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithSampler replaces the [0, 1) source deciding which ticks are logged.
func WithSampler(fn func() float64) Option {
	return func(o *Orchestrator) {
		o.sample = fn
	}
}

// Orchestrator moves feed events through the aggregator to the hub.
type Orchestrator struct {
	feed       feedV1.Client
	aggregator aggregatorDomain.Aggregator
	hub        broadcastDomain.Hub
	logger     logger.Interface
	sample     func() float64

	startOnce sync.Once
	stopped   chan struct{}
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	feed feedV1.Client,
	aggregator aggregatorDomain.Aggregator,
	hub broadcastDomain.Hub,
	log logger.Interface,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		feed:       feed,
		aggregator: aggregator,
		hub:        hub,
		logger:     log,
		sample:     rand.Float64,
		stopped:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Start consumes feed events in the background until the stream closes or ctx is done.
func (o *Orchestrator) Start(ctx context.Context) {
	o.startOnce.Do(func() {
		o.logger.Info("starting quotes orchestrator")
		go func() {
			defer close(o.stopped)
			o.Run(ctx)
		}()
	})
}

// Wait blocks until the loop started by Start has exited or ctx is done.
func (o *Orchestrator) Wait(ctx context.Context) error {
	select {
	case <-o.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run handles events in order on the calling goroutine.
func (o *Orchestrator) Run(ctx context.Context) {
	events := o.feed.Events()
	for {
		select {
		case event, ok := <-events:
			if !ok {
				o.logger.Info("feed event stream closed")
				return
			}
			o.handle(ctx, event)
		case <-ctx.Done():
			return
		}
	}
}

func (o *Orchestrator) handle(ctx context.Context, event feedV1.Event) {
	switch event.Kind {
	case feedV1.EventTick:
		o.HandleTick(ctx, event.Tick)
	case feedV1.EventStatus:
		o.HandleStatus(event.Status)
	default:
		o.logger.Warn("unknown feed event", logger.NewField("kind", int(event.Kind)))
	}
}

// HandleTick aggregates tick and broadcasts the tick followed by the updated average.
// Failures are logged and the tick is skipped.
func (o *Orchestrator) HandleTick(ctx context.Context, tick quoteV1.Tick) {
	snapshot, err := o.aggregator.ProcessTick(ctx, tick)
	if err != nil {
		o.logger.ErrorContext(ctx, errors.TracerFromError(err),
			logger.NewField("action", "handle tick"),
			logger.NewField("pair", tick.Pair),
		)
		return
	}

	o.hub.BroadcastTick(tick)
	o.hub.BroadcastAverage(snapshot)

	if o.sample() < throughputSampleRate {
		o.logger.Debug("processed tick",
			logger.NewField("pair", tick.Pair),
			logger.NewField("price", tick.Price),
			logger.NewField("clients", o.hub.SubscriberCount()),
		)
	}
}

// HandleStatus forwards a feed status change to every subscriber.
func (o *Orchestrator) HandleStatus(status quoteV1.StatusMessage) {
	o.logger.Info("feed status changed",
		logger.NewField("status", status.Status),
		logger.NewField("reason", status.Reason),
	)
	o.hub.BroadcastStatus(status)
}

// SystemStatus returns the upstream connection, subscriber count and live hours.
func (o *Orchestrator) SystemStatus() SystemStatus {
	return SystemStatus{
		Feed: FeedStatus{
			Status:    o.feed.Status(),
			Connected: o.feed.IsConnected(),
		},
		WebSocket: WebSocketStatus{
			Clients: o.hub.SubscriberCount(),
		},
		Aggregator: AggregatorStatus{
			CurrentHours: o.aggregator.AllCurrentHourAverages(),
		},
	}
}
