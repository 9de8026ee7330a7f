package util

import (
	"context"
)

type key string

const (
	clientIPKey     = key("x-forwarded-for")
	subscriberIDKey = key("subscriber-id")
)

// WithClientIP returns a context with a client ip
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP returns client ip from context, empty if not present.
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// WithSubscriberID returns a context carrying the id of a websocket subscriber.
func WithSubscriberID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, subscriberIDKey, id)
}

// GetSubscriberID returns the subscriber id from context, empty if not present.
func GetSubscriberID(ctx context.Context) string {
	id, _ := ctx.Value(subscriberIDKey).(string)
	return id
}
