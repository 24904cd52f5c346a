package httpclient

import (
	"context"

	"medicare/models"
)

// API is the request surface the domain services depend on.
type API interface {
	Get(ctx context.Context, path string, authRequired bool) models.Envelope
	Post(ctx context.Context, path string, body any, authRequired bool) models.Envelope
	Put(ctx context.Context, path string, body any, authRequired bool) models.Envelope
	Delete(ctx context.Context, path string, authRequired bool) models.Envelope
}

var _ API = (*Client)(nil)
