package common

import "context"

// Payloads

const DefaultWelcomeMessage = "Welcome to the Headers API"

type WelcomePayload struct {
	Message string `json:"message"`
}

type HeadersPayload struct {
	Headers map[string]string `json:"headers"`
}

// Request id

type requestIdKey struct{}

type RequestId string

func WithRequestId(ctx context.Context, id RequestId) context.Context {
	return context.WithValue(ctx, requestIdKey{}, id)
}

// RequestIdFrom returns the id stored by WithRequestId, if any.
func RequestIdFrom(ctx context.Context) (RequestId, bool) {
	id, found := ctx.Value(requestIdKey{}).(RequestId)
	return id, found
}
